package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/timeflow/internal/pomodoro"
	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable values loaded from config.yaml.
type Settings struct {
	Work                  time.Duration
	ShortBreak            time.Duration
	LongBreak             time.Duration
	RoundsBeforeLongBreak int
	DefaultRounds         int
	HTTPAddr              string
}

type yamlSettings struct {
	WorkMinutes           int    `yaml:"work_minutes"`
	ShortBreakMinutes     int    `yaml:"short_break_minutes"`
	LongBreakMinutes      int    `yaml:"long_break_minutes"`
	RoundsBeforeLongBreak int    `yaml:"rounds_before_long_break"`
	DefaultRounds         int    `yaml:"default_rounds"`
	HTTPAddr              string `yaml:"http_addr,omitempty"`
}

// DefaultSettings returns the built-in timer defaults.
func DefaultSettings() Settings {
	return Settings{
		Work:                  WorkDuration,
		ShortBreak:            ShortBreakDuration,
		LongBreak:             LongBreakDuration,
		RoundsBeforeLongBreak: RoundsBeforeLongBreak,
		DefaultRounds:         DefaultRounds,
		HTTPAddr:              DefaultHTTPAddr,
	}
}

// TimerConfig converts the settings into a pomodoro configuration.
func (s Settings) TimerConfig() pomodoro.Config {
	return pomodoro.Config{
		Work:                  s.Work,
		ShortBreak:            s.ShortBreak,
		LongBreak:             s.LongBreak,
		RoundsBeforeLongBreak: s.RoundsBeforeLongBreak,
	}
}

// DefaultPath resolves <user config dir>/timeflow/config.yaml.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, ConfigFileName), nil
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes settings to path, creating the directory if needed.
func Save(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:           int(settings.Work / time.Minute),
		ShortBreakMinutes:     int(settings.ShortBreak / time.Minute),
		LongBreakMinutes:      int(settings.LongBreak / time.Minute),
		RoundsBeforeLongBreak: settings.RoundsBeforeLongBreak,
		DefaultRounds:         settings.DefaultRounds,
		HTTPAddr:              settings.HTTPAddr,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.Work = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreak = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreak = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.RoundsBeforeLongBreak > 0 {
		settings.RoundsBeforeLongBreak = fileData.RoundsBeforeLongBreak
	}
	if fileData.DefaultRounds > 0 && fileData.DefaultRounds <= MaxRounds {
		settings.DefaultRounds = fileData.DefaultRounds
	}
	if fileData.HTTPAddr != "" {
		settings.HTTPAddr = fileData.HTTPAddr
	}
}
