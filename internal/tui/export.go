package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/database"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// Exporter is the store side of a JSON export.
type Exporter interface {
	ExportAll(ctx context.Context) (database.Export, error)
}

type exportFile struct {
	AppVersion string `json:"app_version"`
	database.Export
}

// ExportData writes every task and session as JSON into dir and returns the
// file path. An empty dir means the user's documents folder.
func ExportData(ctx context.Context, db Exporter, dir string, now time.Time) (string, error) {
	data, err := db.ExportAll(ctx)
	if err != nil {
		return "", err
	}
	payload, err := json.MarshalIndent(exportFile{AppVersion: AppVersion, Export: data}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, database.DefaultExportName(now))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
