package cmd

import (
	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/app"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <number>",
	Short: "Toggle a todo's completion",
	Long:  `Toggle the completion of the todo with the given number, as shown by 'todo list'.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	app.New(s.manager, nil, cmd.OutOrStdout(), s.log.Named("app")).Toggle(args[0])
	return nil
}
