package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/config"
	"go.coldcutz.net/todo/internal/todo"
)

var (
	migrateMarkdown string
	migrateFrom     string
	migrateBackup   bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import todos from a markdown checklist or another storage backend",
	Long: `Append todos from another source to the configured storage.

  --from-markdown TODO.md   reads "- [ ] task" and "- [x] task" lines
  --from file|bolt          reads the default data file of that backend

Todos already present (same id) are skipped. With --backup the markdown
file is renamed to <file>.bak after a successful import.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVar(&migrateMarkdown, "from-markdown", "", "Markdown checklist to import")
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "Storage backend to import from (file or bolt)")
	migrateCmd.Flags().BoolVar(&migrateBackup, "backup", false, "Rename the markdown file to .bak after importing")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if (migrateMarkdown == "") == (migrateFrom == "") {
		return fmt.Errorf("exactly one of --from-markdown or --from is required")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	var tasks []todo.Task
	var source string
	if migrateMarkdown != "" {
		data, err := os.ReadFile(migrateMarkdown)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(out, "No %s found - nothing to migrate.\n", migrateMarkdown)
				return nil
			}
			return fmt.Errorf("failed to read %s: %w", migrateMarkdown, err)
		}
		tasks = parseChecklist(string(data))
		source = migrateMarkdown
	} else {
		tasks, source, err = loadBackend(s, config.Storage(migrateFrom))
		if err != nil {
			return err
		}
	}

	if len(tasks) == 0 {
		fmt.Fprintf(out, "No todos found in %s - nothing to migrate.\n", source)
		return nil
	}

	fmt.Fprintf(out, "Found %d todo(s) in %s.\n", len(tasks), source)

	n, err := s.manager.Import(tasks)
	if err != nil {
		fmt.Fprintf(out, "⚠️ Changes kept in memory only: %v\n", err)
		return err
	}
	fmt.Fprintf(out, "Migrated %d todo(s) to %s.\n", n, s.location())

	if migrateMarkdown != "" && migrateBackup {
		backupPath := migrateMarkdown + ".bak"
		if err := os.Rename(migrateMarkdown, backupPath); err != nil {
			fmt.Fprintf(out, "Warning: could not back up %s: %v\n", migrateMarkdown, err)
		} else {
			fmt.Fprintf(out, "Backed up %s to %s\n", migrateMarkdown, backupPath)
		}
	}
	return nil
}

// loadBackend reads the default data file of another backend in the same data dir.
func loadBackend(s *session, storage config.Storage) ([]todo.Task, string, error) {
	src := *s.cfg
	src.Storage = storage
	src.Filename = ""
	if err := src.Validate(); err != nil {
		return nil, "", err
	}
	if storage == config.StorageMemory {
		return nil, "", fmt.Errorf("cannot migrate from memory storage")
	}

	path, err := src.DataPath()
	if err != nil {
		return nil, "", err
	}
	if path == s.path {
		return nil, "", fmt.Errorf("source and target are both %s", path)
	}

	c, path, err := openCache(&src, s.log)
	if err != nil {
		return nil, "", err
	}
	if closer, ok := c.(io.Closer); ok {
		defer closer.Close()
	}

	tasks, err := c.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load %s: %w", path, err)
	}
	return tasks, path, nil
}

// parseChecklist reads GitHub-style task list items. Other lines are ignored.
func parseChecklist(content string) []todo.Task {
	var tasks []todo.Task
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		var rest string
		switch {
		case strings.HasPrefix(trimmed, "- ["):
			rest = strings.TrimPrefix(trimmed, "- [")
		case strings.HasPrefix(trimmed, "* ["):
			rest = strings.TrimPrefix(trimmed, "* [")
		default:
			continue
		}

		if len(rest) < 2 || rest[1] != ']' {
			continue
		}
		mark := rest[0]
		if mark != ' ' && mark != 'x' && mark != 'X' {
			continue
		}

		title := strings.TrimSpace(rest[2:])
		if title == "" {
			continue
		}
		task := todo.NewTask(title)
		task.Completed = mark != ' '
		tasks = append(tasks, task)
	}
	return tasks
}
