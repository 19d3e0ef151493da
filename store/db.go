package store

import (
	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/models"
)

// DB is the local storage interface. It holds exactly two records under a
// fixed namespace: the in-progress session snapshot and the settings object.
type DB interface {
	// SaveSnapshot mirrors the in-progress session to durable storage. It is
	// called on every state change while a session is active.
	SaveSnapshot(snap *models.Snapshot) error
	// Snapshot returns the stored session snapshot, or nil if absent. An
	// unreadable snapshot is treated as absent.
	Snapshot() (*models.Snapshot, error)
	// ClearSnapshot removes the stored session snapshot.
	ClearSnapshot() error
	// SaveSettings writes the full settings object.
	SaveSettings(settings config.Settings) error
	// Settings returns the stored settings, or nil if absent or unreadable.
	Settings() (*config.Settings, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
