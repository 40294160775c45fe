package cmd

import (
	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/app"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	app.New(s.manager, nil, cmd.OutOrStdout(), s.log.Named("app")).List()
	return nil
}
