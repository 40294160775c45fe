package command

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"add", Add},
		{"ADD", Add},
		{"  List  ", List},
		{"Toggle", Toggle},
		{"delete\n", Delete},
		{"help", Help},
		{"exit", Exit},
		{"", Unknown},
		{"   ", Unknown},
		{"unknown", Unknown},
		{"remove", Unknown},
		{"add milk", Unknown},
	}

	for _, tt := range tests {
		if got := Parse(tt.input); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	text := HelpText()

	if !strings.HasPrefix(text, "📖 Available commands:\n") {
		t.Errorf("expected help header, got %q", text)
	}
	for _, info := range All() {
		if !strings.Contains(text, "- "+string(info.Command)+": ") {
			t.Errorf("help text missing %q", info.Command)
		}
	}
	if strings.Contains(text, string(Unknown)) {
		t.Error("help text should not mention the unknown command")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Synopsis = "changed"

	if All()[0].Synopsis == "changed" {
		t.Error("All() should not expose the internal reference slice")
	}
}
