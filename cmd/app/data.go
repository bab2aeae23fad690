package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/database"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/report"
	"github.com/akyairhashvil/timeflow/internal/tui"
	"github.com/akyairhashvil/timeflow/internal/util"
)

var (
	reportOut     string
	exportDir     string
	sessionsLimit int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF report of this week's tasks and focus time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			path, err := writeReport(ctx, db, reportOut, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report saved: %s\n", path)
			return nil
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every task and session as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			path, err := tui.ExportData(ctx, db, exportDir, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Export saved: %s\n", path)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks and sessions from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			data, err := readExport(args[0])
			if err != nil {
				return err
			}
			if err := db.ImportAll(ctx, data); err != nil {
				return err
			}
			log.Printf("imported %d tasks and %d sessions from %s", len(data.Tasks), len(data.Sessions), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks and %d sessions\n", len(data.Tasks), len(data.Sessions))
			return nil
		})
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent pomodoro sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, db *database.Database) error {
			sessions, err := db.RecentSessions(ctx, sessionsLimit)
			if err != nil {
				return err
			}
			return printSessions(cmd.OutOrStdout(), sessions)
		})
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (default Documents/TIMEFLOW)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (default Documents/TIMEFLOW)")
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "number of sessions to show")
	rootCmd.AddCommand(reportCmd, exportCmd, importCmd, sessionsCmd)
}

func writeReport(ctx context.Context, db *database.Database, out string, now time.Time) (string, error) {
	week := util.WeekDates(now, config.WeekLength)
	if out == "" {
		out = filepath.Join(util.ReportsDir(config.AppName), report.DefaultFileName(week[0]))
	}
	if err := report.Generate(ctx, db, week, out); err != nil {
		return "", err
	}
	log.Printf("report written to %s", out)
	return out, nil
}

// readExport accepts both a bare export and the app_version-wrapped file the
// export command writes.
func readExport(path string) (database.Export, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return database.Export{}, fmt.Errorf("read export: %w", err)
	}
	var data database.Export
	if err := json.Unmarshal(raw, &data); err != nil {
		return database.Export{}, fmt.Errorf("parse export: %w", err)
	}
	return data, nil
}

func printSessions(out io.Writer, sessions []models.PomodoroSession) error {
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions found.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tROUNDS\tWORK\tFOCUS\tSTATUS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%dm\t%s\t%s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			tui.FormatRounds(s.CompletedRounds, s.TotalRounds),
			s.WorkSeconds/60,
			tui.FormatDuration(s.FocusTime()),
			s.Status)
	}
	return w.Flush()
}
