package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yuchen/hana/internal/settings"
)

// SettingsRepo persists the single settings row.
type SettingsRepo struct {
	db *sqlx.DB
}

// Load returns the persisted settings, or defaults when none exist or
// the stored values are unusable.
func (r *SettingsRepo) Load() (settings.Settings, error) {
	var s settings.Settings
	err := r.db.Get(&s, "SELECT input_mode, language FROM app_settings WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Default(), nil
	}
	if err != nil {
		return settings.Default(), fmt.Errorf("load settings: %w", err)
	}
	return s.Normalize(), nil
}

// Save upserts the settings row.
func (r *SettingsRepo) Save(s settings.Settings) error {
	_, err := r.db.NamedExec(`
		INSERT INTO app_settings (id, input_mode, language) VALUES (1, :input_mode, :language)
		ON CONFLICT(id) DO UPDATE SET
			input_mode = excluded.input_mode,
			language = excluded.language`, s)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
