package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive prompt",
	Long: `Start the interactive todo prompt.

Commands at the prompt (case-insensitive):
  add      Enter a title to add a todo
  list     Show all todos
  toggle   Enter a number to flip its completion
  delete   Enter a number to remove it
  help     Show the command reference
  exit     Leave (Ctrl+D or Ctrl+C also work)`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	// bare `todo` starts the prompt too
	rootCmd.RunE = runRun
	rootCmd.Args = cobra.NoArgs
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	rl, err := readline.New("")
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	return app.New(s.manager, readlineReader{rl}, cmd.OutOrStdout(), s.log.Named("app")).Run()
}

// readlineReader adapts a readline instance to app.LineReader
type readlineReader struct {
	rl *readline.Instance
}

func (r readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}
