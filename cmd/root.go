package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.coldcutz.net/todo/internal/cache"
	"go.coldcutz.net/todo/internal/config"
	"go.coldcutz.net/todo/internal/todo"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage a todo list from the terminal",
	Long: `todo keeps a small list of tasks and saves it between runs.

Run without a command to start the interactive prompt.

Commands:
  run      Start the interactive prompt
  add      Add a todo
  list     List todos
  toggle   Toggle a todo's completion
  delete   Delete a todo
  prune    Remove completed todos
  status   Show storage location and progress
  watch    Redraw the list every few seconds
  export   Write the list as json, yaml, csv or pdf
  init     Write a config file
  migrate  Import a markdown checklist or another backend`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default ./todo.yaml, then <user config dir>/todo/todo.yaml)")
	pf.String("env", "", "Data location: development (./Resources) or production (user data dir)")
	pf.String("storage", "", "Persistence backend: memory, file or bolt")
	pf.String("filename", "", "Data file name (default todos.json, todos.db for bolt)")
	pf.Bool("debug", false, "Print debug logs to stderr")
}

// session bundles everything a command needs, built fresh per invocation
type session struct {
	cfg     *config.Config
	log     *zap.Logger
	cache   todo.Cache
	path    string
	manager *todo.Manager
}

func loadConfig() (*config.Config, error) {
	v := viper.New()
	for _, name := range []string{"env", "storage", "filename", "debug"} {
		if err := v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return config.Load(v, configFile)
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// openCache builds the configured persistence backend.
// path is empty for in-memory storage.
func openCache(cfg *config.Config, log *zap.Logger) (c todo.Cache, path string, err error) {
	if cfg.Storage == config.StorageMemory {
		return cache.NewMemory(), "", nil
	}

	path, err = cfg.DataPath()
	if err != nil {
		return nil, "", err
	}

	switch cfg.Storage {
	case config.StorageBolt:
		c, err = cache.NewBolt(path, log.Named("cache"))
	default:
		c, err = cache.NewFile(path, log.Named("cache"))
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	return c, path, nil
}

func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	log.Debug("config loaded",
		zap.String("env", string(cfg.Env)),
		zap.String("storage", string(cfg.Storage)),
		zap.String("file", cfg.ConfigFile),
	)

	c, path, err := openCache(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	return &session{
		cfg:     cfg,
		log:     log,
		cache:   c,
		path:    path,
		manager: todo.NewManager(c, log.Named("manager")),
	}, nil
}

func (s *session) Close() {
	if closer, ok := s.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			s.log.Warn("failed to close storage", zap.Error(err))
		}
	}
	_ = s.log.Sync()
}

// location describes where todos are kept, for user-facing output
func (s *session) location() string {
	if s.path == "" {
		return "(memory, not saved)"
	}
	return s.path
}
