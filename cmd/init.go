package cmd

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"go.coldcutz.net/todo/internal/config"
)

var initInteractive bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file and create the data directory",
	Long: `Write todo.yaml (or the file given by --config) with the current settings
and make sure the data directory exists.

In interactive mode (--interactive), you'll be asked for:
  - Environment (development or production)
  - Storage backend (memory, file or bolt)

Values can also come from --env and --storage.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Run in interactive mode")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if initInteractive {
		if err := gatherSettings(cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	path := configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Initializing todo...")

	fmt.Fprintf(out, "  Writing %s...\n", path)
	if err := config.WriteDefault(path, *cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	// opening the cache creates the data directory
	fmt.Fprintln(out, "  Preparing storage...")
	c, dataPath, err := openCache(cfg, log)
	if err != nil {
		return err
	}
	if closer, ok := c.(interface{ Close() error }); ok {
		closer.Close()
	}
	if dataPath == "" {
		dataPath = "(memory, not saved)"
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Initialization complete!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Created:")
	fmt.Fprintf(out, "  %s  (config)\n", path)
	fmt.Fprintf(out, "  %s  (%s storage)\n", dataPath, cfg.Storage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run: todo")
	fmt.Fprintln(out, "  2. Type 'add' to create your first todo")

	return nil
}

func gatherSettings(cfg *config.Config) error {
	rl, err := readline.New("")
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	rl.SetPrompt(fmt.Sprintf("Environment? (development, production) [%s] ", cfg.Env))
	env, err := rl.Readline()
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if env = strings.ToLower(strings.TrimSpace(env)); env != "" {
		cfg.Env = config.Environment(env)
	}

	rl.SetPrompt(fmt.Sprintf("Storage? (memory, file, bolt) [%s] ", cfg.Storage))
	storage, err := rl.Readline()
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	if storage = strings.ToLower(strings.TrimSpace(storage)); storage != "" {
		cfg.Storage = config.Storage(storage)
	}

	return nil
}
