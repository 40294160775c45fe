package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/todo"
)

var pruneDryRun bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove completed todos",
	Long: `Remove every completed todo in one step.

Use --dry-run to see what would be removed without changing anything.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Show which todos would be removed without removing them")
}

func runPrune(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	var completed []todo.Task
	for _, t := range s.manager.List() {
		if t.Completed {
			completed = append(completed, t)
		}
	}

	if len(completed) == 0 {
		fmt.Fprintln(out, "Nothing to prune.")
		return nil
	}

	if pruneDryRun {
		fmt.Fprintf(out, "Would remove %d completed todo(s):\n", len(completed))
		for _, t := range completed {
			fmt.Fprintf(out, "  • %s\n", t.Title)
		}
		return nil
	}

	n, err := s.manager.ClearCompleted()
	fmt.Fprintf(out, "🧹 Removed %d completed todo(s).\n", n)
	if err != nil {
		fmt.Fprintf(out, "⚠️ Changes kept in memory only: %v\n", err)
		return err
	}
	return nil
}
