package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	AppName             = "todo"
	ConfigName          = "todo"
	EnvPrefix           = "TODO"
	DevelopmentDir      = "Resources"
	DefaultFilename     = "todos.json"
	DefaultBoltFilename = "todos.db"
)

// Environment selects where the data file lives
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Storage selects the persistence backend
type Storage string

const (
	StorageMemory Storage = "memory"
	StorageFile   Storage = "file"
	StorageBolt   Storage = "bolt"
)

// Config is the resolved runtime configuration
type Config struct {
	Env      Environment `mapstructure:"env" validate:"oneof=development production"`
	Storage  Storage     `mapstructure:"storage" validate:"oneof=memory file bolt"`
	Filename string      `mapstructure:"filename" validate:"omitempty,excludesall=/"`
	Debug    bool        `mapstructure:"debug"`

	// ConfigFile is the file values were read from, empty if none was found
	ConfigFile string `mapstructure:"-"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Env:     Development,
		Storage: StorageFile,
	}
}

// Validate checks enum fields and the filename
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("env", string(d.Env))
	v.SetDefault("storage", string(d.Storage))
	v.SetDefault("filename", d.Filename)
	v.SetDefault("debug", d.Debug)
}

// Load resolves configuration from v's bound flags, TODO_* environment
// variables, a config file and defaults, in that order of precedence.
// When configFile is empty, todo.yaml is looked up in the working directory
// and then in the user config directory; not finding one is fine.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DataFilename returns the snapshot file name, defaulting by storage type
func (c *Config) DataFilename() string {
	if c.Filename != "" {
		return c.Filename
	}
	if c.Storage == StorageBolt {
		return DefaultBoltFilename
	}
	return DefaultFilename
}

// DataDir returns the directory holding the snapshot file.
// Development keeps data under ./Resources; production uses the
// per-user application data directory.
func (c *Config) DataDir() (string, error) {
	if c.Env == Production {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to find user data directory: %w", err)
		}
		return dir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, DevelopmentDir), nil
}

// DataPath returns the full path of the snapshot file
func (c *Config) DataPath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.DataFilename()), nil
}

// DefaultConfigPath returns where `todo init` writes the config file
func DefaultConfigPath() string {
	return ConfigName + ".yaml"
}

// WriteDefault writes cfg to path. It refuses to overwrite an existing file.
func WriteDefault(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	v := viper.New()
	v.Set("env", string(cfg.Env))
	v.Set("storage", string(cfg.Storage))
	if cfg.Filename != "" {
		v.Set("filename", cfg.Filename)
	}
	v.Set("debug", cfg.Debug)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
