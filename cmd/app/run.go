package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
	"github.com/akyairhashvil/timeflow/internal/tui"
	"github.com/akyairhashvil/timeflow/internal/util"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pomodoro session in this terminal",
	Long: `Run a pomodoro session without the planner. Phase changes are printed as
they happen; on an interactive terminal the countdown updates in place.
Ctrl+C stops the session.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

type sessionStore interface {
	StartSession(ctx context.Context, cfg pomodoro.Config, totalRounds int, startedAt time.Time) (string, error)
	FinishSession(ctx context.Context, id string, status models.SessionStatus, completedRounds int, endedAt time.Time) error
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	live := false
	if f, ok := out.(*os.File); ok {
		live = term.IsTerminal(int(f.Fd()))
	}
	s := newConsoleSession(out, a.settings.TimerConfig(), a.settings.DefaultRounds, live)
	return s.run(ctx, a.db, time.Second)
}

// consoleSession prints a Runner's progress. Its observer methods run on the
// Runner goroutine; completed is read only after that goroutine exits.
type consoleSession struct {
	out       io.Writer
	cfg       pomodoro.Config
	rounds    int
	live      bool
	completed int
	finished  chan struct{}
}

func newConsoleSession(out io.Writer, cfg pomodoro.Config, rounds int, live bool) *consoleSession {
	return &consoleSession{out: out, cfg: cfg, rounds: rounds, live: live, finished: make(chan struct{})}
}

func (c *consoleSession) OnPhaseChanged(phase pomodoro.Phase, remaining int) {
	if remaining != c.cfg.Seconds(phase) {
		if c.live {
			fmt.Fprintf(c.out, "\r  %s ", util.FormatMMSS(remaining))
		}
		return
	}
	if phase.IsBreak() {
		c.completed++
	}
	if c.live {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintf(c.out, "%-10s %s  %s\n", phaseLabel(phase), util.FormatMMSS(remaining), tui.FormatRounds(c.completed, c.rounds))
}

func (c *consoleSession) OnFinished() {
	c.completed = c.rounds
	if c.live {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, "Great job! Session complete!")
	close(c.finished)
}

// run drives one session to completion or until ctx is cancelled, recording
// it in store either way.
func (c *consoleSession) run(ctx context.Context, store sessionStore, interval time.Duration) error {
	runner := pomodoro.NewRunner(c.cfg, c, interval)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- runner.Run(runCtx) }()

	id, err := store.StartSession(ctx, c.cfg, c.rounds, time.Now())
	util.LogError("record session", err)
	if _, err := runner.Start(runCtx, c.rounds); err != nil {
		cancel()
		<-runErr
		if id != "" {
			util.LogError("close session", store.FinishSession(context.Background(), id, models.SessionStopped, 0, time.Now()))
		}
		return err
	}
	log.Printf("headless pomodoro started: %d rounds", c.rounds)

	status := models.SessionCompleted
	select {
	case <-c.finished:
	case <-ctx.Done():
		status = models.SessionStopped
	}
	cancel()
	<-runErr
	select {
	case <-c.finished:
		status = models.SessionCompleted
	default:
	}

	if id != "" {
		util.LogError("close session", store.FinishSession(context.Background(), id, status, c.completed, time.Now()))
	}
	if status == models.SessionStopped {
		fmt.Fprintf(c.out, "\nStopped after %s.\n", tui.FormatRounds(c.completed, c.rounds))
	}
	log.Printf("headless pomodoro %s after %d rounds", status, c.completed)
	return nil
}

func phaseLabel(phase pomodoro.Phase) string {
	return strings.ToUpper(strings.ReplaceAll(phase.String(), "_", " "))
}
