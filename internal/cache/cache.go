// Package cache holds the persistence variants behind todo.Cache.
// Every variant stores the whole task list as one snapshot.
package cache

import (
	"errors"

	"go.coldcutz.net/todo/internal/todo"
)

// ErrCorruptSnapshot is returned by Load when saved data exists but cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt todo snapshot")

var (
	_ todo.Cache = (*Memory)(nil)
	_ todo.Cache = (*File)(nil)
	_ todo.Cache = (*Bolt)(nil)
)

func cloneTasks(tasks []todo.Task) []todo.Task {
	out := make([]todo.Task, len(tasks))
	copy(out, tasks)
	return out
}
