package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"go.coldcutz.net/todo/internal/todo"
)

const (
	boltBucket      = "todos"
	boltSnapshotKey = "snapshot"
)

// Bolt stores the snapshot as a single JSON value in a bbolt database.
// Each save replaces the value inside one transaction.
type Bolt struct {
	db  *bolt.DB
	log *zap.Logger
}

// NewBolt opens (or creates) the database at path. Call Close when done.
func NewBolt(path string, log *zap.Logger) (*Bolt, error) {
	if path == "" {
		return nil, errors.New("bolt cache requires a path")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	log.Debug("bolt cache ready", zap.String("path", path))
	return &Bolt{db: db, log: log}, nil
}

// Path returns the database file location
func (c *Bolt) Path() string {
	return c.db.Path()
}

// Close releases the database file lock
func (c *Bolt) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Save replaces the stored snapshot
func (c *Bolt) Save(tasks []todo.Task) error {
	if c.db == nil {
		return errors.New("bolt cache is closed")
	}
	if tasks == nil {
		tasks = []todo.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode todos: %w", err)
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return errors.New("bucket missing")
		}
		return b.Put([]byte(boltSnapshotKey), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or an empty list if nothing was saved
func (c *Bolt) Load() ([]todo.Task, error) {
	if c.db == nil {
		return nil, errors.New("bolt cache is closed")
	}

	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltBucket))
		if b == nil {
			return errors.New("bucket missing")
		}
		// bolt values are only valid inside the transaction
		if v := b.Get([]byte(boltSnapshotKey)); v != nil {
			data = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if data == nil {
		return []todo.Task{}, nil
	}

	var tasks []todo.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if tasks == nil {
		tasks = []todo.Task{}
	}
	return tasks, nil
}
