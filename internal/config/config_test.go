package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldDir, _ := os.Getwd()
	os.Chdir(tmpDir)
	t.Cleanup(func() { os.Chdir(oldDir) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	for _, key := range []string{"TODO_ENV", "TODO_STORAGE", "TODO_FILENAME", "TODO_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return tmpDir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Development, cfg.Env)
	require.Equal(t, StorageFile, cfg.Storage)
	require.Equal(t, "", cfg.Filename)
	require.False(t, cfg.Debug)
	require.Equal(t, "", cfg.ConfigFile)
	require.Equal(t, DefaultFilename, cfg.DataFilename())
}

func TestLoadFromWorkingDirectoryFile(t *testing.T) {
	dir := isolate(t)
	content := "env: production\nstorage: bolt\nfilename: tasks.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.yaml"), []byte(content), 0644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Production, cfg.Env)
	require.Equal(t, StorageBolt, cfg.Storage)
	require.Equal(t, "tasks.db", cfg.Filename)
	require.NotEmpty(t, cfg.ConfigFile)
}

func TestLoadFromUserConfigDir(t *testing.T) {
	dir := isolate(t)
	userDir := filepath.Join(dir, "xdg", AppName)
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "todo.yaml"), []byte("storage: memory\n"), 0644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, StorageMemory, cfg.Storage)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.yaml"), []byte("storage: bolt\n"), 0644))
	t.Setenv("TODO_STORAGE", "memory")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, StorageMemory, cfg.Storage)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: production\n"), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, Production, cfg.Env)
	require.Equal(t, path, cfg.ConfigFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad env", "env: staging\n"},
		{"bad storage", "storage: sqlite\n"},
		{"filename with dir", "filename: sub/todos.json\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.yaml"), []byte(tt.content), 0644))

			_, err := Load(viper.New(), "")
			require.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestDataFilename(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Storage: StorageFile}, "todos.json"},
		{Config{Storage: StorageMemory}, "todos.json"},
		{Config{Storage: StorageBolt}, "todos.db"},
		{Config{Storage: StorageFile, Filename: "list.yaml"}, "list.yaml"},
		{Config{Storage: StorageBolt, Filename: "x.bolt"}, "x.bolt"},
	}

	for _, tt := range tests {
		if got := tt.cfg.DataFilename(); got != tt.want {
			t.Errorf("DataFilename() for %+v = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestDataPathDevelopment(t *testing.T) {
	isolate(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	cfg := Default()
	path, err := cfg.DataPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cwd, "Resources", "todos.json"), path)
}

func TestDataPathProduction(t *testing.T) {
	dir := isolate(t)

	cfg := Config{Env: Production, Storage: StorageFile}
	path, err := cfg.DataPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "xdg", "todos.json"), path)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "conf", "todo.yaml")

	want := Config{Env: Production, Storage: StorageBolt, Filename: "mine.db"}
	require.NoError(t, WriteDefault(path, want))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, want.Env, cfg.Env)
	require.Equal(t, want.Storage, cfg.Storage)
	require.Equal(t, want.Filename, cfg.Filename)

	// never overwrites
	require.Error(t, WriteDefault(path, Default()))
}

func TestWriteDefaultRejectsInvalid(t *testing.T) {
	dir := isolate(t)
	err := WriteDefault(filepath.Join(dir, "todo.yaml"), Config{Env: "nope", Storage: StorageFile})
	require.Error(t, err)
}
