package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key and whether it was present.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(EntitySetting, "get", 0, err)
	}
	return value.String, value.Valid, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapErr(EntitySetting, "set", 0, err)
}
