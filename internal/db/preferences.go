package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/santridev/muslim-companion/internal/model"
)

func (s *pgStore) GetPreferences(ctx context.Context, deviceID string) (model.Preferences, error) {
	const query = `
		SELECT device_id, dark_mode, notifications_enabled, adhan_sound_enabled,
		       font_size, created_at, updated_at
		FROM preferences
		WHERE device_id = $1`

	var prefs model.Preferences
	err := s.db.GetContext(ctx, &prefs, query, deviceID)
	if errors.Is(err, sql.ErrNoRows) {
		// First run for this device: hardcoded defaults, nothing persisted
		// until the first toggle.
		return model.DefaultPreferences(deviceID), nil
	}
	if err != nil {
		return model.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

func (s *pgStore) UpsertPreferences(ctx context.Context, prefs model.Preferences) (model.Preferences, error) {
	const query = `
		INSERT INTO preferences (
			device_id, dark_mode, notifications_enabled, adhan_sound_enabled,
			font_size, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (device_id) DO UPDATE
		SET dark_mode = EXCLUDED.dark_mode,
		    notifications_enabled = EXCLUDED.notifications_enabled,
		    adhan_sound_enabled = EXCLUDED.adhan_sound_enabled,
		    font_size = EXCLUDED.font_size,
		    updated_at = NOW()
		RETURNING device_id, dark_mode, notifications_enabled, adhan_sound_enabled,
		          font_size, created_at, updated_at`

	var saved model.Preferences
	err := s.db.GetContext(ctx, &saved, query,
		prefs.DeviceID,
		prefs.DarkMode,
		prefs.NotificationsEnabled,
		prefs.AdhanSoundEnabled,
		prefs.FontSize,
	)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("upsert preferences: %w", err)
	}
	return saved, nil
}
