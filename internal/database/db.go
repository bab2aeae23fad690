package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite handle holding tasks, sessions and settings.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY between our own goroutines.
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn, dbFile: path}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			description TEXT NOT NULL,
			important INTEGER DEFAULT 0,
			start_time TEXT,
			end_time TEXT,
			color TEXT DEFAULT '#e6e6e6',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date, start_time, end_time);`,
		`CREATE TABLE IF NOT EXISTS pomodoro_sessions (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			total_rounds INTEGER NOT NULL,
			completed_rounds INTEGER DEFAULT 0,
			work_seconds INTEGER NOT NULL,
			break_seconds INTEGER NOT NULL,
			long_break_seconds INTEGER NOT NULL,
			status TEXT DEFAULT 'running'
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_started ON pomodoro_sessions(started_at);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	// Databases created before tasks carried a creation stamp.
	if err := d.addColumnIfMissing(ctx, "tasks", "created_at", "DATETIME"); err != nil {
		return err
	}
	return nil
}

func (d *Database) addColumnIfMissing(ctx context.Context, table, column, decl string) error {
	exists, err := d.hasColumn(ctx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := d.DB.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl)); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}

func (d *Database) hasColumn(ctx context.Context, table, column string) (bool, error) {
	rows, err := d.DB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("inspect %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("inspect %s: %w", table, err)
	}
	return false, nil
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Printf("rollback failed: %v", rbErr)
	}
	return err
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
