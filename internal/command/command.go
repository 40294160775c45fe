// Package command maps console input to the closed set of todo actions.
package command

import (
	"fmt"
	"strings"
)

// Command is a resolved console action
type Command string

const (
	Add     Command = "add"
	List    Command = "list"
	Toggle  Command = "toggle"
	Delete  Command = "delete"
	Help    Command = "help"
	Exit    Command = "exit"
	Unknown Command = "unknown"
)

// Info describes a command for the help text
type Info struct {
	Command  Command
	Synopsis string
}

var reference = []Info{
	{Add, "To add a todo, type 'add' and then enter the title."},
	{List, "To list todos, type 'list'."},
	{Toggle, "To toggle a todo, type 'toggle' and then enter the number of the todo."},
	{Delete, "To delete a todo, type 'delete' and then enter the number of the todo."},
	{Help, "To see this help message, type 'help'."},
	{Exit, "To exit the application, type 'exit'."},
}

// Parse resolves a line of input. Matching ignores case and surrounding
// whitespace; anything unrecognized, including an empty line, is Unknown.
func Parse(input string) Command {
	c := Command(strings.ToLower(strings.TrimSpace(input)))
	for _, info := range reference {
		if info.Command == c {
			return c
		}
	}
	return Unknown
}

// All returns the recognized commands in help order
func All() []Info {
	out := make([]Info, len(reference))
	copy(out, reference)
	return out
}

// HelpText renders the command reference
func HelpText() string {
	var b strings.Builder
	b.WriteString("📖 Available commands:\n")
	for _, info := range reference {
		fmt.Fprintf(&b, "- %s: %s\n", info.Command, info.Synopsis)
	}
	return b.String()
}
