package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go.coldcutz.net/todo/internal/todo"
)

// Format is the on-disk encoding of a file snapshot
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension; JSON unless it is .yaml or .yml
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// File stores the snapshot in a single file that is rewritten on every save.
// Writes go straight to the target path, so a crash mid-write can leave a
// truncated file behind; Load reports that as ErrCorruptSnapshot.
type File struct {
	path   string
	format Format
	log    *zap.Logger
}

// NewFile creates a file cache at path, creating the parent directory if needed.
func NewFile(path string, log *zap.Logger) (*File, error) {
	if path == "" {
		return nil, errors.New("file cache requires a path")
	}
	if log == nil {
		log = zap.NewNop()
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
		log.Info("created data directory", zap.String("dir", dir))
	} else if err != nil {
		return nil, fmt.Errorf("failed to access data directory %s: %w", dir, err)
	}

	c := &File{
		path:   path,
		format: FormatForPath(path),
		log:    log,
	}
	log.Debug("file cache ready", zap.String("path", path), zap.String("format", string(c.format)))
	return c, nil
}

// Path returns the snapshot file location
func (c *File) Path() string {
	return c.path
}

// Save encodes the full list and overwrites the file
func (c *File) Save(tasks []todo.Task) error {
	if tasks == nil {
		tasks = []todo.Task{}
	}

	data, err := c.encode(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode todos: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write todo file: %w", err)
	}

	c.log.Debug("saved todos", zap.Int("count", len(tasks)))
	return nil
}

// Load reads the file. A missing file is an empty list, not an error.
func (c *File) Load() ([]todo.Task, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []todo.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read todo file: %w", err)
	}

	tasks, err := c.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptSnapshot, c.path, err)
	}
	if tasks == nil {
		tasks = []todo.Task{}
	}
	return tasks, nil
}

func (c *File) encode(tasks []todo.Task) ([]byte, error) {
	if c.format == FormatYAML {
		return yaml.Marshal(tasks)
	}
	return json.MarshalIndent(tasks, "", "  ")
}

func (c *File) decode(data []byte) ([]todo.Task, error) {
	var tasks []todo.Task
	if c.format == FormatYAML {
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
