package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/todo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show storage location and progress",
	Long:  `Display where todos are stored, which config is in effect, and how many are done.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	cfgFile := s.cfg.ConfigFile
	if cfgFile == "" {
		cfgFile = "(defaults)"
	}

	fmt.Fprintln(out, "=== todo Status ===")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Env:      %s\n", s.cfg.Env)
	fmt.Fprintf(out, "Storage:  %s\n", s.cfg.Storage)
	fmt.Fprintf(out, "Data:     %s\n", s.location())
	fmt.Fprintf(out, "Config:   %s\n", cfgFile)
	if err := s.manager.LoadErr(); err != nil {
		fmt.Fprintf(out, "Warning:  %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Todos ===")
	printProgress(out, s.manager.List())
	return nil
}

func printProgress(out io.Writer, tasks []todo.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "  No todos found")
		return
	}

	var remaining []string
	for _, t := range tasks {
		if !t.Completed {
			remaining = append(remaining, t.Title)
		}
	}
	completed := len(tasks) - len(remaining)

	fmt.Fprintf(out, "  Progress: %d/%d completed (%.0f%%)\n", completed, len(tasks), percent(completed, len(tasks)))

	if len(remaining) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Remaining:")
		for _, title := range remaining {
			fmt.Fprintf(out, "    • %s\n", title)
		}
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func progressBar(part, total, width int) string {
	filled := 0
	if total > 0 {
		filled = width * part / total
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
