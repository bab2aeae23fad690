package config

import "time"

// Timer defaults.
const (
	WorkDuration          = 25 * time.Minute
	ShortBreakDuration    = 5 * time.Minute
	LongBreakDuration     = 15 * time.Minute
	RoundsBeforeLongBreak = 4
	DefaultRounds         = 4
	MaxRounds             = 8
)

// Setup choices offered by the focus prompt, in minutes.
var (
	WorkChoices  = []int{15, 20, 25, 30, 45, 60}
	BreakChoices = []int{5, 10, 15, 20}
)

// Task defaults and limits.
const (
	DefaultTaskColor     = "#e6e6e6"
	MinDescriptionLength = 3
	MaxDescriptionLength = 500
	ShortTaskThreshold   = 5 * time.Minute
	WeekLength           = 7
)

// Layout constants.
const (
	// MinColumnWidth is the minimum width for a week column.
	MinColumnWidth = 14

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ProgressWidth is the preferred width of the focus progress bar.
	ProgressWidth = 40

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Database/application settings.
const (
	AppName         = "timeflow"
	DBFileName      = "timeflow.db"
	LogFileName     = "timeflow.log"
	ConfigFileName  = "config.yaml"
	DefaultHTTPAddr = "127.0.0.1:7090"
	DataDirEnv      = "TIMEFLOW_DATA_DIR"
)
