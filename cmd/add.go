package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/app"
)

var addCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a todo",
	Long:  `Add a todo. All arguments are joined with spaces to form the title.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	app.New(s.manager, nil, cmd.OutOrStdout(), s.log.Named("app")).Add(title)
	return nil
}
