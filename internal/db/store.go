// Package db exposes a Store interface that is passed to API modules.
package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/santridev/muslim-companion/internal/model"
)

// Store is the persistence surface the HTTP layer depends on.
type Store interface {
	// GetPreferences returns the stored preferences for a device, or the
	// defaults when the device has never written anything.
	GetPreferences(ctx context.Context, deviceID string) (model.Preferences, error)
	// UpsertPreferences writes the full preference record for a device.
	UpsertPreferences(ctx context.Context, prefs model.Preferences) (model.Preferences, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore wraps a connection in the Store interface.
func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
