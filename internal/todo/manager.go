package todo

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrIndexOutOfRange is returned when a position does not address an existing task.
	ErrIndexOutOfRange = errors.New("todo index out of range")

	// ErrSaveFailed wraps persistence errors raised after an in-memory mutation.
	ErrSaveFailed = errors.New("failed to save todos")
)

// Cache persists full snapshots of the task list.
//
// Load returns an empty slice when nothing has been saved yet and an error
// when a saved snapshot cannot be read back.
type Cache interface {
	Save(tasks []Task) error
	Load() ([]Task, error)
}

// Manager owns the in-memory task list and writes a snapshot after every mutation.
//
// A failed save is reported to the caller but the mutation is kept in memory,
// so the list on screen may be ahead of what is on disk until the next
// successful save.
type Manager struct {
	tasks   []Task
	cache   Cache
	loadErr error
	log     *zap.Logger
}

// NewManager creates a manager and populates it from the cache.
// If the cache cannot be read the manager starts empty; the cause is kept in LoadErr.
func NewManager(cache Cache, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		cache: cache,
		log:   log,
	}

	tasks, err := cache.Load()
	if err != nil {
		m.loadErr = err
		m.log.Warn("starting with empty todo list", zap.Error(err))
		tasks = nil
	}
	m.tasks = append([]Task{}, tasks...)
	m.log.Debug("loaded todos", zap.Int("count", len(m.tasks)))

	return m
}

// LoadErr returns the error from the initial load, if any
func (m *Manager) LoadErr() error {
	return m.loadErr
}

// Len returns the number of tasks
func (m *Manager) Len() int {
	return len(m.tasks)
}

// List returns a copy of the tasks in display order
func (m *Manager) List() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Add appends a new open task and saves.
// The store does not validate the title; callers reject blank input.
func (m *Manager) Add(title string) (Task, error) {
	task := NewTask(title)
	m.tasks = append(m.tasks, task)
	return task, m.save()
}

// Toggle flips the completion flag of the task at index and saves.
func (m *Manager) Toggle(index int) (Task, error) {
	if err := m.checkIndex(index); err != nil {
		return Task{}, err
	}
	m.tasks[index].Completed = !m.tasks[index].Completed
	return m.tasks[index], m.save()
}

// Delete removes the task at index, saves, and returns the removed task.
func (m *Manager) Delete(index int) (Task, error) {
	if err := m.checkIndex(index); err != nil {
		return Task{}, err
	}
	removed := m.tasks[index]
	m.tasks = append(m.tasks[:index], m.tasks[index+1:]...)
	return removed, m.save()
}

// ClearCompleted removes every completed task in a single mutation.
// Nothing is saved when no task is completed.
func (m *Manager) ClearCompleted() (int, error) {
	kept := m.tasks[:0]
	removed := 0
	for _, t := range m.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	m.tasks = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, m.save()
}

// Import appends tasks in order with a single save. Tasks whose ID is
// already present are skipped, blank titles are dropped, and a missing ID
// gets a fresh one.
func (m *Manager) Import(tasks []Task) (int, error) {
	seen := make(map[string]bool, len(m.tasks))
	for _, t := range m.tasks {
		seen[t.ID] = true
	}

	added := 0
	for _, t := range tasks {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		if t.ID == "" {
			t.ID = NewTask(t.Title).ID
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		m.tasks = append(m.tasks, t)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, m.save()
}

func (m *Manager) checkIndex(index int) error {
	if index < 0 || index >= len(m.tasks) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(m.tasks))
	}
	return nil
}

func (m *Manager) save() error {
	if err := m.cache.Save(m.List()); err != nil {
		m.log.Warn("save failed, keeping in-memory changes", zap.Error(err), zap.Int("count", len(m.tasks)))
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}
