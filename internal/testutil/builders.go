package testutil

import (
	"time"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			Date:        "2026-10-19",
			Description: "Test Task",
			StartTime:   "09:00",
			EndTime:     "10:00",
			Color:       config.DefaultTaskColor,
		},
	}
}

func (b *TaskBuilder) WithID(id int64) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithDate(date string) *TaskBuilder {
	b.task.Date = date
	return b
}

func (b *TaskBuilder) WithDescription(d string) *TaskBuilder {
	b.task.Description = d
	return b
}

func (b *TaskBuilder) WithTimes(start, end string) *TaskBuilder {
	b.task.StartTime = start
	b.task.EndTime = end
	return b
}

func (b *TaskBuilder) WithColor(c string) *TaskBuilder {
	b.task.Color = c
	return b
}

func (b *TaskBuilder) Important() *TaskBuilder {
	b.task.Important = true
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// ConfigBuilder provides fluent API for creating timer configurations.
type ConfigBuilder struct {
	cfg pomodoro.Config
}

// NewConfig starts from one-second intervals so tests can drive whole
// sessions with a handful of ticks.
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: pomodoro.Config{
			Work:                  3 * time.Second,
			ShortBreak:            time.Second,
			LongBreak:             2 * time.Second,
			RoundsBeforeLongBreak: config.RoundsBeforeLongBreak,
		},
	}
}

func (b *ConfigBuilder) WithWorkSeconds(n int) *ConfigBuilder {
	b.cfg.Work = seconds(n)
	return b
}

func (b *ConfigBuilder) WithBreakSeconds(n int) *ConfigBuilder {
	b.cfg.ShortBreak = seconds(n)
	return b
}

func (b *ConfigBuilder) WithLongBreakSeconds(n int) *ConfigBuilder {
	b.cfg.LongBreak = seconds(n)
	return b
}

func (b *ConfigBuilder) WithLongBreakEvery(n int) *ConfigBuilder {
	b.cfg.RoundsBeforeLongBreak = n
	return b
}

func (b *ConfigBuilder) Build() pomodoro.Config {
	return b.cfg
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
