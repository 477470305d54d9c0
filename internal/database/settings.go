package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"
)

const (
	settingEnableAcrylic     = "enable_acrylic"
	settingDestinationFolder = "destination_folder"
)

// Settings are the persisted viewer preferences.
type Settings struct {
	EnableAcrylic     bool   `json:"enableAcrylic"`
	DestinationFolder string `json:"destinationFolder"`
}

// DefaultSettings returns the values used for keys that were never written.
func DefaultSettings() Settings {
	return Settings{
		EnableAcrylic:     true,
		DestinationFolder: "",
	}
}

// getSetting returns the stored value for key, or ok=false when unset.
func (d *Database) getSetting(ctx context.Context, key string) (value string, ok bool, err error) {
	start := time.Now()
	defer func() { recordQuery("get_setting", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err = d.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (d *Database) setSetting(ctx context.Context, key, value string) (err error) {
	start := time.Now()
	defer func() { recordQuery("set_setting", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// GetSettings returns the stored settings merged over the defaults.
func (d *Database) GetSettings(ctx context.Context) (Settings, error) {
	s := DefaultSettings()

	value, ok, err := d.getSetting(ctx, settingEnableAcrylic)
	if err != nil {
		return s, err
	}
	if ok {
		if parsed, parseErr := strconv.ParseBool(value); parseErr == nil {
			s.EnableAcrylic = parsed
		}
	}

	value, ok, err = d.getSetting(ctx, settingDestinationFolder)
	if err != nil {
		return s, err
	}
	if ok {
		s.DestinationFolder = value
	}

	return s, nil
}

// SaveSettings writes all settings.
func (d *Database) SaveSettings(ctx context.Context, s Settings) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.setSetting(ctx, settingEnableAcrylic, strconv.FormatBool(s.EnableAcrylic)); err != nil {
		return err
	}
	return d.setSetting(ctx, settingDestinationFolder, s.DestinationFolder)
}
