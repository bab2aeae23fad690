// Package httpapi exposes a pomodoro Runner over HTTP so the timer can be
// driven by scripts, editors or status bars.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
	"github.com/akyairhashvil/timeflow/internal/util"
)

const storeTimeout = 5 * time.Second

// Store records the sessions started through the API.
type Store interface {
	StartSession(ctx context.Context, cfg pomodoro.Config, totalRounds int, startedAt time.Time) (string, error)
	FinishSession(ctx context.Context, id string, status models.SessionStatus, completedRounds int, endedAt time.Time) error
	RecentSessions(ctx context.Context, limit int) ([]models.PomodoroSession, error)
}

// Options tune a Handler. Zero values fall back to one-second ticks and the
// wall clock.
type Options struct {
	Interval time.Duration
	Now      func() time.Time
}

type activeSession struct {
	id        string
	total     int
	completed int
}

// Handler provides the HTTP API and owns the Runner behind it.
type Handler struct {
	runner *pomodoro.Runner
	store  Store
	cfg    pomodoro.Config
	now    func() time.Time
	router chi.Router

	// control serializes start and stop requests; mu guards active, which
	// the Runner callbacks also read.
	control sync.Mutex
	mu      sync.Mutex
	active  *activeSession

	writes sync.WaitGroup
}

// New creates a Handler whose sessions use cfg. Call Run to start the timer
// loop before serving requests.
func New(store Store, cfg pomodoro.Config, opts Options) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Handler{store: store, cfg: cfg, now: opts.Now}
	if h.now == nil {
		h.now = time.Now
	}
	h.runner = pomodoro.NewRunner(cfg, pomodoro.ObserverFuncs{
		PhaseChanged: h.onPhaseChanged,
		Finished:     h.onFinished,
	}, opts.Interval)
	h.router = h.buildRouter()
	return h, nil
}

// Run drives the timer until ctx is cancelled. A session still running at
// that point is recorded as stopped.
func (h *Handler) Run(ctx context.Context) error {
	err := h.runner.Run(ctx)
	h.control.Lock()
	defer h.control.Unlock()
	if a := h.takeActive(); a != nil {
		h.finish(a, models.SessionStopped, a.completed)
	}
	h.writes.Wait()
	return err
}

// Router returns the HTTP router.
func (h *Handler) Router() chi.Router {
	return h.router
}

func (h *Handler) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.Post("/start", h.handleStart)
		r.Post("/stop", h.handleStop)
		r.Get("/status", h.handleStatus)
		r.Get("/sessions", h.handleSessions)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

// --- Request/Response types ---

type startRequest struct {
	Rounds int `json:"rounds"`
}

type statusResponse struct {
	Running          bool   `json:"running"`
	Phase            string `json:"phase"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Remaining        string `json:"remaining"`
	CompletedRounds  int    `json:"completed_rounds"`
	TotalRounds      int    `json:"total_rounds"`
	SessionID        string `json:"session_id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// --- Handlers ---

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<10)
	req := startRequest{Rounds: config.DefaultRounds}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.Rounds < 1 || req.Rounds > config.MaxRounds {
		writeError(w, http.StatusBadRequest, "rounds must be between 1 and "+strconv.Itoa(config.MaxRounds))
		return
	}

	h.control.Lock()
	defer h.control.Unlock()

	// A new start replaces the running session; silence it before its
	// record is closed.
	if prev := h.takeActive(); prev != nil {
		h.runner.Stop()
		h.finish(prev, models.SessionStopped, prev.completed)
	}

	// The record and the Runner must agree even if the client goes away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), storeTimeout)
	defer cancel()
	id, err := h.store.StartSession(ctx, h.cfg, req.Rounds, h.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record session")
		util.LogError("record session", err)
		return
	}

	// Installed on the timer goroutine, after any callback of the replaced
	// session has returned.
	a := &activeSession{id: id, total: req.Rounds}
	state, err := h.runner.Begin(ctx, req.Rounds, func() {
		h.mu.Lock()
		h.active = a
		h.mu.Unlock()
	})
	if err != nil {
		h.runner.Stop()
		h.mu.Lock()
		if h.active == a {
			h.active = nil
		}
		h.mu.Unlock()
		h.finish(a, models.SessionStopped, 0)
		status := http.StatusServiceUnavailable
		if errors.Is(err, pomodoro.ErrInvalidConfiguration) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	log.Printf("pomodoro started over HTTP: %d rounds (session %s)", req.Rounds, id)
	writeJSON(w, http.StatusCreated, toStatus(state, id))
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	h.control.Lock()
	defer h.control.Unlock()
	h.runner.Stop()
	a := h.takeActive()
	if a == nil {
		writeError(w, http.StatusConflict, "no session running")
		return
	}
	h.finish(a, models.SessionStopped, a.completed)
	log.Printf("pomodoro stopped over HTTP after %d rounds", a.completed)

	writeJSON(w, http.StatusOK, statusResponse{
		Phase:           pomodoro.PhaseIdle.String(),
		Remaining:       util.FormatMMSS(0),
		CompletedRounds: a.completed,
		TotalRounds:     a.total,
		SessionID:       a.id,
	})
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	state, err := h.runner.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	var id string
	h.mu.Lock()
	if h.active != nil {
		id = h.active.id
	}
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, toStatus(state, id))
}

func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	sessions, err := h.store.RecentSessions(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		util.LogError("list sessions", err)
		return
	}
	if sessions == nil {
		sessions = []models.PomodoroSession{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

// --- Runner callbacks ---

// onPhaseChanged counts a round each time a break begins. Entering a phase
// is the only notification carrying its full length.
func (h *Handler) onPhaseChanged(phase pomodoro.Phase, remaining int) {
	if remaining != h.cfg.Seconds(phase) {
		return
	}
	log.Printf("pomodoro phase: %s (%s)", phase, util.FormatMMSS(remaining))
	if !phase.IsBreak() {
		return
	}
	h.mu.Lock()
	if h.active != nil {
		h.active.completed++
	}
	h.mu.Unlock()
}

// onFinished runs on the timer goroutine, so the record is written in the
// background. Run waits for it before returning.
func (h *Handler) onFinished() {
	a := h.takeActive()
	if a == nil {
		return
	}
	h.writes.Add(1)
	go func() {
		defer h.writes.Done()
		h.finish(a, models.SessionCompleted, a.total)
		log.Printf("pomodoro session %s completed", a.id)
	}()
}

func (h *Handler) takeActive() *activeSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	a := h.active
	h.active = nil
	return a
}

func (h *Handler) finish(a *activeSession, status models.SessionStatus, completed int) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := h.store.FinishSession(ctx, a.id, status, completed, h.now()); err != nil {
		util.LogError("close session", err)
	}
}

func toStatus(state pomodoro.SessionState, id string) statusResponse {
	return statusResponse{
		Running:          state.Phase.Active(),
		Phase:            state.Phase.String(),
		RemainingSeconds: state.RemainingSeconds,
		Remaining:        util.FormatMMSS(state.RemainingSeconds),
		CompletedRounds:  state.CompletedRounds,
		TotalRounds:      state.TotalRounds,
		SessionID:        id,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
