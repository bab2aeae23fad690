package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// DataDir resolves where the database and log live. overrideEnv, when set
// in the environment, wins over XDG_DATA_HOME and ~/.local/share.
func DataDir(app, overrideEnv string) string {
	if dir := envDir(overrideEnv); dir != "" {
		return dir
	}
	if base := envDir("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, app)
	}
	return filepath.Join(homeOr("."), ".local", "share", app)
}

// ReportsDir is the default destination for reports and exports:
// <documents>/<APP>.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir follows XDG_DOCUMENTS_DIR, then ~/.config/user-dirs.dirs,
// then ~/Documents.
func DocumentsDir() string {
	if dir := envDir("XDG_DOCUMENTS_DIR"); dir != "" {
		return expandHome(dir)
	}
	home := homeOr("")
	if home == "" {
		return "."
	}
	if f, err := os.Open(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		defer f.Close()
		if dir := lookupUserDir(f, "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func envDir(key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(key))
}

func homeOr(fallback string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return fallback
	}
	return home
}

// lookupUserDir reads a user-dirs.dirs file and returns the unquoted value
// of key.
func lookupUserDir(r interface{ Read([]byte) (int, error) }, key string) string {
	scanner := bufio.NewScanner(r)
	prefix := key + "="
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if value, ok := strings.CutPrefix(line, prefix); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	return strings.ReplaceAll(path, "$HOME", homeOr(""))
}
