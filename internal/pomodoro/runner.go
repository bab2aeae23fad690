package pomodoro

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrRunnerClosed is returned by commands sent after Run has returned.
var ErrRunnerClosed = errors.New("runner is not running")

type commandType int

const (
	cmdStart commandType = iota
	cmdSnapshot
	cmdConfigure
)

type command struct {
	kind   commandType
	rounds int
	config Config
	onArm  func()
	reply  chan commandReply
}

type commandReply struct {
	state SessionState
	err   error
}

// Runner owns a Timer on a single goroutine and drives Tick from a ticker.
// Every Timer call happens inside Run, which gives the Timer the serialized
// access it requires. Observer callbacks run on that goroutine, so they may
// call Stop but must not call Start, Configure or Snapshot.
type Runner struct {
	timer    *Timer
	observer Observer
	interval time.Duration

	commands chan command
	wake     chan struct{}
	done     chan struct{}

	// stops is bumped by Stop from any goroutine; armed is the value it had
	// when the current session started and is only touched inside Run.
	stops atomic.Uint64
	armed uint64
}

// NewRunner creates a Runner. A non-positive interval defaults to one second.
func NewRunner(config Config, observer Observer, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	if observer == nil {
		observer = ObserverFuncs{}
	}
	r := &Runner{
		observer: observer,
		interval: interval,
		commands: make(chan command),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	r.timer = New(config, ObserverFuncs{
		PhaseChanged: func(phase Phase, remaining int) {
			if r.stale() {
				return
			}
			r.observer.OnPhaseChanged(phase, remaining)
		},
		Finished: func() {
			if r.stale() {
				return
			}
			r.observer.OnFinished()
		},
	})
	return r
}

// Run processes commands and ticks until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	var ticker *time.Ticker
	var tickC <-chan time.Time
	halt := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer halt()

	for {
		select {
		case <-ctx.Done():
			r.timer.Stop()
			return ctx.Err()
		case <-r.wake:
			if r.stale() {
				r.timer.Stop()
				halt()
			}
		case cmd := <-r.commands:
			switch cmd.kind {
			case cmdStart:
				previous := r.armed
				r.armed = r.stops.Load()
				if cmd.onArm != nil {
					cmd.onArm()
				}
				err := r.timer.Start(cmd.rounds)
				if err != nil {
					r.armed = previous
				} else if r.timer.Running() {
					halt()
					ticker = time.NewTicker(r.interval)
					tickC = ticker.C
				}
				cmd.reply <- commandReply{state: r.timer.State(), err: err}
			case cmdConfigure:
				err := r.timer.SetConfig(cmd.config)
				cmd.reply <- commandReply{state: r.timer.State(), err: err}
			case cmdSnapshot:
				cmd.reply <- commandReply{state: r.timer.State()}
			}
		case <-tickC:
			if r.stale() {
				r.timer.Stop()
				halt()
				continue
			}
			r.timer.Tick()
			if r.stale() {
				r.timer.Stop()
			}
			if !r.timer.Running() {
				halt()
			}
		}
	}
}

// Start begins a session of totalRounds work rounds.
func (r *Runner) Start(ctx context.Context, totalRounds int) (SessionState, error) {
	return r.Begin(ctx, totalRounds, nil)
}

// Begin is Start with a hook. armed runs on the timer goroutine once every
// callback of earlier sessions has returned and before the new session's
// first callback, so it can install per-session state the callbacks read.
// It runs even if totalRounds is then rejected.
func (r *Runner) Begin(ctx context.Context, totalRounds int, armed func()) (SessionState, error) {
	return r.send(ctx, command{kind: cmdStart, rounds: totalRounds, onArm: armed})
}

// Configure replaces the durations for the next session.
func (r *Runner) Configure(ctx context.Context, config Config) error {
	_, err := r.send(ctx, command{kind: cmdConfigure, config: config})
	return err
}

// Snapshot returns the current session state.
func (r *Runner) Snapshot(ctx context.Context) (SessionState, error) {
	return r.send(ctx, command{kind: cmdSnapshot})
}

// Stop cancels the running session. It never blocks and may be called from
// any goroutine, including an observer callback. No callback begins after
// Stop returns, but one already in progress on the timer goroutine may
// still complete. The next Start, Begin or Snapshot is processed only
// after that callback has returned.
func (r *Runner) Stop() {
	r.stops.Add(1)
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) stale() bool {
	return r.stops.Load() != r.armed
}

func (r *Runner) send(ctx context.Context, cmd command) (SessionState, error) {
	cmd.reply = make(chan commandReply, 1)
	select {
	case r.commands <- cmd:
	case <-r.done:
		return SessionState{}, ErrRunnerClosed
	case <-ctx.Done():
		return SessionState{}, ctx.Err()
	}
	select {
	case reply := <-cmd.reply:
		return reply.state, reply.err
	case <-ctx.Done():
		return SessionState{}, ctx.Err()
	}
}
