// Package report renders the weekly planner and pomodoro log as a PDF.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// Source is the read side of the store the report needs.
type Source interface {
	TasksForDates(ctx context.Context, dates []string) (map[string][]models.Task, error)
	SessionsBetween(ctx context.Context, from, to time.Time) ([]models.PomodoroSession, error)
}

// Week is the data behind one report.
type Week struct {
	Dates    []time.Time
	Tasks    map[string][]models.Task
	Sessions []models.PomodoroSession
}

// FocusByDate sums the focus time of completed rounds per start date.
func (w Week) FocusByDate() map[string]time.Duration {
	out := make(map[string]time.Duration, len(w.Dates))
	for _, s := range w.Sessions {
		day := s.StartedAt.Format(models.DateLayout)
		out[day] += s.FocusTime()
	}
	return out
}

// Load gathers the tasks and sessions for the dates.
func Load(ctx context.Context, src Source, dates []time.Time) (Week, error) {
	if len(dates) == 0 {
		return Week{}, fmt.Errorf("report: no dates")
	}
	keys := util.FormatDates(dates, models.DateLayout)
	tasks, err := src.TasksForDates(ctx, keys)
	if err != nil {
		return Week{}, fmt.Errorf("report tasks: %w", err)
	}
	from := dates[0]
	to := dates[len(dates)-1].AddDate(0, 0, 1)
	sessions, err := src.SessionsBetween(ctx, from, to)
	if err != nil {
		return Week{}, fmt.Errorf("report sessions: %w", err)
	}
	return Week{Dates: dates, Tasks: tasks, Sessions: sessions}, nil
}

// DefaultFileName names the report after the first day of the week.
func DefaultFileName(start time.Time) string {
	return fmt.Sprintf("%s_report_%s.pdf", config.AppName, start.Format(models.DateLayout))
}

// Generate loads the week and writes it to path, creating parent directories.
func Generate(ctx context.Context, src Source, dates []time.Time, path string) error {
	week, err := Load(ctx, src, dates)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report directory: %w", err)
	}
	return Write(week, path)
}

// Write renders week as an A4 PDF at path.
func Write(week Week, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("%s weekly report", config.AppName), true)
	pdf.AddPage()

	first := week.Dates[0].Format(models.DateLayout)
	last := week.Dates[len(week.Dates)-1].Format(models.DateLayout)
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Weekly Report: %s to %s", first, last)))
	pdf.Ln(12)

	focus := week.FocusByDate()
	totalTasks := 0
	for _, date := range week.Dates {
		key := date.Format(models.DateLayout)
		tasks := week.Tasks[key]
		totalTasks += len(tasks)

		pdf.SetFont("Arial", "B", 13)
		header := fmt.Sprintf("%s %s", date.Format("Monday"), key)
		if d := focus[key]; d > 0 {
			header += fmt.Sprintf("  (focus %s)", formatMinutes(d))
		}
		pdf.Cell(0, 9, tr(header))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		if len(tasks) == 0 {
			pdf.Cell(0, 7, "  - No tasks.")
			pdf.Ln(7)
		}
		for _, t := range tasks {
			marker := " "
			if t.Important {
				marker = "!"
			}
			line := fmt.Sprintf("  %s-%s %s %s", t.StartTime, t.EndTime, marker, t.Description)
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
		pdf.Ln(3)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 9, "Pomodoro Sessions")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	if len(week.Sessions) == 0 {
		pdf.Cell(0, 7, "  - No sessions recorded.")
		pdf.Ln(7)
	}
	var totalFocus time.Duration
	completed := 0
	for _, s := range week.Sessions {
		totalFocus += s.FocusTime()
		if s.Status == models.SessionCompleted {
			completed++
		}
		line := fmt.Sprintf("  %s  %d/%d rounds  %s  %s",
			s.StartedAt.Format("2006-01-02 15:04"), s.CompletedRounds, s.TotalRounds,
			formatMinutes(s.FocusTime()), strings.ToUpper(string(s.Status)))
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Tasks planned: %d", totalTasks))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Sessions completed: %d of %d", completed, len(week.Sessions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total focus: %s", formatMinutes(totalFocus)))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func formatMinutes(d time.Duration) string {
	mins := int(d.Minutes())
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
