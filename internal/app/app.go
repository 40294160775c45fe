// Package app runs the interactive todo console.
package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"go.coldcutz.net/todo/internal/command"
	"go.coldcutz.net/todo/internal/todo"
)

const (
	commandPrompt = "What would you like to do? (add, list, toggle, delete, exit): "
	titlePrompt   = "🔹 Enter todo title: "
	togglePrompt  = "🔹 Enter the number of the todo to toggle: "
	deletePrompt  = "🔹 Enter the number of the todo to delete: "
)

// ErrInvalidNumber is returned by ParseNumber for input that is not a positive integer.
var ErrInvalidNumber = errors.New("invalid todo number")

// LineReader reads one line of input after showing prompt.
// Implementations return io.EOF when input is exhausted or the user interrupts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Store is the part of todo.Manager the console needs
type Store interface {
	List() []todo.Task
	Add(title string) (todo.Task, error)
	Toggle(index int) (todo.Task, error)
	Delete(index int) (todo.Task, error)
	LoadErr() error
}

// App is the console front end over a Store
type App struct {
	store Store
	in    LineReader
	out   io.Writer
	log   *zap.Logger
}

// New creates an App. in may be nil when only the one-shot methods are used.
func New(store Store, in LineReader, out io.Writer, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		store: store,
		in:    in,
		out:   out,
		log:   log,
	}
}

// Run loops until the user exits or input ends.
// End of input is treated like exit; any other read error is returned.
func (a *App) Run() error {
	if a.in == nil {
		return errors.New("app has no input reader")
	}

	fmt.Fprintln(a.out, "🌟 Welcome to Todo CLI! 🌟")
	if err := a.store.LoadErr(); err != nil {
		fmt.Fprintf(a.out, "⚠️ Could not read saved todos, starting with an empty list: %v\n", err)
	}

	for {
		fmt.Fprintln(a.out)
		line, err := a.in.ReadLine(commandPrompt)
		if errors.Is(err, io.EOF) {
			a.farewell()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		cmd := command.Parse(line)
		a.log.Debug("dispatch", zap.String("command", string(cmd)))
		if !a.dispatch(cmd) {
			return nil
		}
	}
}

// dispatch runs one command and reports whether the loop should continue
func (a *App) dispatch(cmd command.Command) bool {
	switch cmd {
	case command.Add:
		title, err := a.in.ReadLine(titlePrompt)
		if err != nil {
			// nothing to add
			return true
		}
		if strings.TrimSpace(title) != "" {
			a.Add(title)
		}
	case command.List:
		a.List()
	case command.Toggle:
		a.List()
		a.Toggle(a.readNumber(togglePrompt))
	case command.Delete:
		a.List()
		a.Delete(a.readNumber(deletePrompt))
	case command.Exit:
		a.farewell()
		return false
	default:
		a.Help()
	}
	return true
}

func (a *App) readNumber(prompt string) string {
	line, err := a.in.ReadLine(prompt)
	if err != nil {
		return ""
	}
	return line
}

// Add adds a task and reports the outcome
func (a *App) Add(title string) {
	_, err := a.store.Add(title)
	fmt.Fprintln(a.out, "📌 Todo added!")
	a.warnSave(err)
}

// List prints every task with its 1-based number
func (a *App) List() {
	tasks := a.store.List()
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "📋 Empty todo list. Add some todo!")
		return
	}
	fmt.Fprintln(a.out, "📝 Your Todos:")
	for i, t := range tasks {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, t)
	}
}

// Toggle flips the task numbered by input (1-based)
func (a *App) Toggle(input string) {
	index, ok := a.parseIndex(input)
	if !ok {
		return
	}
	_, err := a.store.Toggle(index)
	if errors.Is(err, todo.ErrIndexOutOfRange) {
		fmt.Fprintln(a.out, "❗️ Invalid todo number.")
		return
	}
	fmt.Fprintln(a.out, "🔄 Todo completion status toggled!")
	a.warnSave(err)
}

// Delete removes the task numbered by input (1-based)
func (a *App) Delete(input string) {
	index, ok := a.parseIndex(input)
	if !ok {
		return
	}
	removed, err := a.store.Delete(index)
	if errors.Is(err, todo.ErrIndexOutOfRange) {
		fmt.Fprintln(a.out, "❗️ Invalid todo number.")
		return
	}
	fmt.Fprintf(a.out, "🗑️ Delete task : '%s'\n", removed.Title)
	a.warnSave(err)
}

// Help prints the command reference
func (a *App) Help() {
	fmt.Fprint(a.out, command.HelpText())
}

func (a *App) farewell() {
	fmt.Fprintln(a.out, "👋 Thanks for using Todo CLI! See you next time!")
}

func (a *App) parseIndex(input string) (int, bool) {
	n, err := ParseNumber(input)
	if err != nil {
		fmt.Fprintln(a.out, "❗️ Invalid input. Please enter a valid todo number.")
		return 0, false
	}
	return n - 1, true
}

func (a *App) warnSave(err error) {
	if err != nil {
		fmt.Fprintf(a.out, "⚠️ Changes kept in memory only: %v\n", err)
	}
}

// ParseNumber parses a 1-based todo number typed by the user
func ParseNumber(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	return n, nil
}
