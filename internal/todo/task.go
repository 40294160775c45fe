package todo

import (
	"fmt"

	"github.com/google/uuid"
)

// Task is a single todo item. ID is assigned once at creation and never changes.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"isCompleted" yaml:"isCompleted"`
}

// NewTask creates an open task with a fresh identifier
func NewTask(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Glyph returns the status marker shown in listings
func (t Task) Glyph() string {
	if t.Completed {
		return "✅"
	}
	return "❌"
}

func (t Task) String() string {
	return fmt.Sprintf("%s %s", t.Glyph(), t.Title)
}
