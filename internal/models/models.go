package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrInvalidTask        = errors.New("invalid task")
	ErrDescriptionMissing = fmt.Errorf("%w: description is required", ErrInvalidTask)
	ErrDescriptionShort   = fmt.Errorf("%w: description must be at least 3 characters", ErrInvalidTask)
	ErrDescriptionLong    = fmt.Errorf("%w: description is too long", ErrInvalidTask)
	ErrInvalidDate        = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidTask)
	ErrInvalidClock       = fmt.Errorf("%w: time must be HH:MM", ErrInvalidTask)
	ErrTimeOrder          = fmt.Errorf("%w: start must be before end", ErrInvalidTask)
	ErrInvalidColor       = fmt.Errorf("%w: color must be #rrggbb", ErrInvalidTask)
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Task is a dated entry in the weekly planner.
type Task struct {
	ID          int64
	Date        string // YYYY-MM-DD
	Description string
	Important   bool
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Color       string
	CreatedAt   time.Time
}

// Validate checks the fields a user can edit. minLen and maxLen bound the
// description in runes.
func (t Task) Validate(minLen, maxLen int) error {
	desc := strings.TrimSpace(t.Description)
	switch n := utf8.RuneCountInString(desc); {
	case n == 0:
		return ErrDescriptionMissing
	case n < minLen:
		return ErrDescriptionShort
	case maxLen > 0 && n > maxLen:
		return ErrDescriptionLong
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	start, err := ParseClock(t.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(t.EndTime)
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return ErrTimeOrder
	}
	if t.Color != "" && !hexColor.MatchString(t.Color) {
		return ErrInvalidColor
	}
	return nil
}

// Span returns the scheduled length, or zero if the times do not parse.
func (t Task) Span() time.Duration {
	start, err := ParseClock(t.StartTime)
	if err != nil {
		return 0
	}
	end, err := ParseClock(t.EndTime)
	if err != nil {
		return 0
	}
	return end.Sub(start)
}

// IsShort reports whether the task is scheduled for less than threshold.
func (t Task) IsShort(threshold time.Duration) bool {
	span := t.Span()
	return span > 0 && span < threshold
}

// ParseClock parses an HH:MM string.
func ParseClock(value string) (time.Time, error) {
	parsed, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidClock
	}
	return parsed, nil
}

// SessionStatus enumerates the lifecycle of a recorded pomodoro session.
type SessionStatus string

const (
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionStopped   SessionStatus = "stopped"
)

// PomodoroSession is the persisted record of one timer session.
type PomodoroSession struct {
	ID               string
	StartedAt        time.Time
	EndedAt          *time.Time
	TotalRounds      int
	CompletedRounds  int
	WorkSeconds      int
	BreakSeconds     int
	LongBreakSeconds int
	Status           SessionStatus
}

// FocusTime is the work time covered by the completed rounds.
func (s PomodoroSession) FocusTime() time.Duration {
	return time.Duration(s.CompletedRounds*s.WorkSeconds) * time.Second
}
