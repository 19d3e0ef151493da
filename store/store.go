// Package store persists the session snapshot and timer settings in a local
// BoltDB file.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/leoarenas/pomodorotrack/config"
	"github.com/leoarenas/pomodorotrack/internal/models"
)

const (
	namespaceBucket = "pomodorotrack"

	snapshotKey = "session"
	settingsKey = "settings"
)

var pathToDB string

var errAlreadyRunning = errors.New(
	"is pomodorotrack already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// get returns the value stored under key in the namespace bucket, or nil if
// the key is absent.
func (c *Client) get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(namespaceBucket)).Get([]byte(key))
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}

		return nil
	})

	return value, err
}

func (c *Client) set(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(namespaceBucket)).Put([]byte(key), value)
	})
}

func (c *Client) remove(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(namespaceBucket)).Delete([]byte(key))
	})
}

func (c *Client) SaveSnapshot(snap *models.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return c.set(snapshotKey, value)
}

func (c *Client) Snapshot() (*models.Snapshot, error) {
	value, err := c.get(snapshotKey)
	if err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return nil, nil
	}

	var snap models.Snapshot

	if err := json.Unmarshal(value, &snap); err != nil {
		// an unreadable snapshot is treated as absent
		slog.Warn("discarding unreadable session snapshot", "error", err)
		return nil, nil
	}

	return &snap, nil
}

func (c *Client) ClearSnapshot() error {
	return c.remove(snapshotKey)
}

func (c *Client) SaveSettings(settings config.Settings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return c.set(settingsKey, value)
}

func (c *Client) Settings() (*config.Settings, error) {
	value, err := c.get(settingsKey)
	if err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return nil, nil
	}

	var settings config.Settings

	if err := json.Unmarshal(value, &settings); err != nil {
		slog.Warn("discarding unreadable settings record", "error", err)
		return nil, nil
	}

	return &settings, nil
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(namespaceBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
