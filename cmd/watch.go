package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.coldcutz.net/todo/internal/config"
	"go.coldcutz.net/todo/internal/todo"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the todo list with auto-refresh",
	Long: `Display the todo list and reload it from storage every n seconds (default: 2).
Useful in a second terminal next to the interactive prompt.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&watchInterval, "interval", "i", 2, "Refresh interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInterval < 1 {
		return fmt.Errorf("interval must be at least 1 second")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Storage == config.StorageMemory {
		return fmt.Errorf("nothing to watch with memory storage; use --storage file or bolt")
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	interval := time.Duration(watchInterval) * time.Second
	out := cmd.OutOrStdout()

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	refresh := func() {
		// reopen on every tick so watch never holds the bolt file lock between reads
		tasks, path, err := loadSnapshot(cfg, log)
		fmt.Fprint(out, "\033[H\033[2J")
		displayWatch(out, tasks, err, path, time.Now())
	}

	refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			refresh()
		case <-ctx.Done():
			fmt.Fprintln(out, "\nWatch stopped.")
			return nil
		}
	}
}

func loadSnapshot(cfg *config.Config, log *zap.Logger) ([]todo.Task, string, error) {
	c, path, err := openCache(cfg, log)
	if err != nil {
		return nil, "", err
	}
	if closer, ok := c.(io.Closer); ok {
		defer closer.Close()
	}
	tasks, err := c.Load()
	return tasks, path, err
}

func displayWatch(out io.Writer, tasks []todo.Task, loadErr error, path string, now time.Time) {
	fmt.Fprintln(out, "=== todo Watch ===")
	fmt.Fprintf(out, "Updated: %s (refreshing every %ds)\n", now.Format("2006-01-02 15:04:05"), watchInterval)
	if path != "" {
		fmt.Fprintf(out, "Data:    %s\n", path)
	}
	fmt.Fprintln(out)

	if loadErr != nil {
		fmt.Fprintf(out, "Error loading todos: %v\n", loadErr)
		return
	}

	var completed, remaining []string
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t.Title)
		} else {
			remaining = append(remaining, t.Title)
		}
	}

	total := len(tasks)
	if total > 0 {
		fmt.Fprintf(out, "Progress:  [%s] %.0f%% (%d/%d)\n",
			progressBar(len(completed), total, 40), percent(len(completed), total), len(completed), total)
	} else {
		fmt.Fprintln(out, "📋 Empty todo list. Add some todo!")
	}

	if len(completed) > 0 {
		fmt.Fprintf(out, "\n\033[1;32m✓ Completed (%d):\033[0m\n", len(completed))
		for _, title := range completed {
			fmt.Fprintf(out, "  ✓ %s\n", title)
		}
	}

	if len(remaining) > 0 {
		fmt.Fprintf(out, "\n\033[1;31m✗ Remaining (%d):\033[0m\n", len(remaining))
		for _, title := range remaining {
			fmt.Fprintf(out, "  ✗ %s\n", title)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "\033[90mPress Ctrl+C to exit\033[0m")
}
