package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the todo list as json, yaml, csv or pdf",
	Long: `Write the current todo list to stdout or a file.

Formats: json, yaml, csv, pdf. pdf requires --output.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: "+strings.Join(export.Formats, ", "))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(exportFormat)
	if format == "pdf" && exportOutput == "" {
		return fmt.Errorf("pdf export requires --output")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, format, s.manager.List()); err != nil {
		return fmt.Errorf("failed to export todos: %w", err)
	}

	if exportOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d todo(s) to %s\n", s.manager.Len(), exportOutput)
	}
	return nil
}
