// TimeFlow is a weekly planner with a pomodoro focus timer.
//
//	timeflow                      Open the planner (terminal UI)
//	timeflow run --rounds 4       Run a pomodoro session in the terminal
//	timeflow serve                Control the timer over HTTP
//	timeflow task list            Manage tasks from the shell
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/database"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/tui"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// timerFlags override config.yaml for a single invocation. Zero means unset.
type timerFlags struct {
	work      time.Duration
	shortBrk  time.Duration
	longBrk   time.Duration
	rounds    int
	longEvery int
}

var (
	configPath string
	overrides  timerFlags
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Weekly planner with a pomodoro focus timer",
	Long: `TimeFlow plans your week and keeps you focused with pomodoro sessions.

  timeflow                              Open the planner
  timeflow run --rounds 4 --work 50m    Headless pomodoro in this terminal
  timeflow serve                        HTTP control API
  timeflow task add "Review PR" --start 09:00 --end 09:30
  timeflow report                       Weekly PDF report`,
	Version:       tui.VersionLabel(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = config.ConfigFileName
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", envOr("TIMEFLOW_CONFIG", defaultConfig), "path to config.yaml")
	flags.DurationVar(&overrides.work, "work", 0, "work interval (e.g. 25m)")
	flags.DurationVar(&overrides.shortBrk, "break", 0, "short break interval")
	flags.DurationVar(&overrides.longBrk, "long-break", 0, "long break interval")
	flags.IntVar(&overrides.rounds, "rounds", 0, "work rounds per session")
	flags.IntVar(&overrides.longEvery, "every", 0, "take a long break after this many rounds")
}

func main() {
	// Graceful shutdown on SIGINT/SIGTERM for the headless hosts.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Alas, there's been an error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// apply merges the flags into settings and validates the result.
func (f timerFlags) apply(s config.Settings) (config.Settings, error) {
	if f.work > 0 {
		s.Work = f.work
	}
	if f.shortBrk > 0 {
		s.ShortBreak = f.shortBrk
	}
	if f.longBrk > 0 {
		s.LongBreak = f.longBrk
	}
	if f.longEvery > 0 {
		s.RoundsBeforeLongBreak = f.longEvery
	}
	if f.rounds != 0 {
		if f.rounds < 1 || f.rounds > config.MaxRounds {
			return s, fmt.Errorf("--rounds must be between 1 and %d", config.MaxRounds)
		}
		s.DefaultRounds = f.rounds
	}
	if err := s.TimerConfig().Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// app bundles what every subcommand needs: settings, the store and the log.
type app struct {
	settings config.Settings
	dataDir  string
	db       *database.Database
	logFile  io.Closer
}

func openApp(ctx context.Context) (*app, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if settings, err = overrides.apply(settings); err != nil {
		return nil, err
	}

	dataDir := util.DataDir(config.AppName, config.DataDirEnv)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	logFile, err := util.SetupLogging(filepath.Join(dataDir, config.LogFileName))
	if err != nil {
		return nil, err
	}
	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	return &app{settings: settings, dataDir: dataDir, db: db, logFile: logFile}, nil
}

func (a *app) Close() {
	util.LogError("close database", a.db.Close())
	_ = a.logFile.Close()
}

// prepareWeek drops tasks outside the visible week and closes session
// records a crashed process left running.
func prepareWeek(ctx context.Context, db *database.Database, now time.Time) {
	week := util.FormatDates(util.WeekDates(now, config.WeekLength), models.DateLayout)
	removed, err := db.CleanupOutsideDates(ctx, week)
	util.LogError("cleanup old tasks", err)
	if removed > 0 {
		log.Printf("removed %d tasks outside %s..%s", removed, week[0], week[len(week)-1])
	}
	closed, err := db.CloseAbandonedSessions(ctx, now)
	util.LogError("close abandoned sessions", err)
	if closed > 0 {
		log.Printf("closed %d abandoned pomodoro sessions", closed)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the planner needs an interactive terminal; try `%s run` for a headless timer", config.AppName)
	}
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Printf("%s %s starting", config.AppName, tui.VersionLabel())
	prepareWeek(ctx, a.db, time.Now())

	model := tui.NewModel(ctx, a.db, tui.Options{Settings: a.settings})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	log.Printf("%s stopped", config.AppName)
	return err
}
