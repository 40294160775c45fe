package cmd

import (
	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/app"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <number>",
	Aliases: []string{"rm"},
	Short:   "Delete a todo",
	Long:    `Delete the todo with the given number, as shown by 'todo list'.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	app.New(s.manager, nil, cmd.OutOrStdout(), s.log.Named("app")).Delete(args[0])
	return nil
}
