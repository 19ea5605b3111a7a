package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"scaffkit.dev/scaffkit/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		cfg, err := config.Load(config.LoadOptions{Fs: afero.NewMemMapFs(), SearchPaths: []string{"/work"}})
		require.NoError(t, err)
		require.Equal(t, config.Default().Log, cfg.Log)
		require.Equal(t, 1, cfg.Log.MaxSize)
		require.Equal(t, 2, cfg.Log.MaxBackups)
		require.Equal(t, 30, cfg.Log.MaxAge)
		require.True(t, cfg.Clean.Confirm)
		require.False(t, cfg.Verbose)
		require.Empty(t, cfg.File)
	})

	t.Run("first search path wins", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/work/.scaffkit.yaml", []byte("verbose: true\nlog:\n  file: /var/log/scaffkit.log\n  max_size: 10\n"), 0644))
		require.NoError(t, afero.WriteFile(fs, "/home/me/.scaffkit.yaml", []byte("quiet_git: true\n"), 0644))

		cfg, err := config.Load(config.LoadOptions{Fs: fs, SearchPaths: []string{"/work", "/home/me"}})
		require.NoError(t, err)
		require.True(t, cfg.Verbose)
		require.False(t, cfg.QuietGit)
		require.Equal(t, "/var/log/scaffkit.log", cfg.Log.File)
		require.Equal(t, 10, cfg.Log.MaxSize)
		require.Equal(t, 2, cfg.Log.MaxBackups)
		require.Equal(t, "/work/.scaffkit.yaml", cfg.File)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/work/.scaffkit.yaml", []byte("clean:\n  confirm: true\n"), 0644))
		t.Setenv("SCAFFKIT_CLEAN_CONFIRM", "false")
		t.Setenv("SCAFFKIT_LOG_MAX_AGE", "7")

		cfg, err := config.Load(config.LoadOptions{Fs: fs, SearchPaths: []string{"/work"}})
		require.NoError(t, err)
		require.False(t, cfg.Clean.Confirm)
		require.Equal(t, 7, cfg.Log.MaxAge)
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		_, err := config.Load(config.LoadOptions{Fs: afero.NewMemMapFs(), ConfigFile: "/nope.yaml"})
		require.Error(t, err)
	})

	t.Run("explicit file is read", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/scaffkit.yaml", []byte("quiet_git: true\n"), 0644))
		cfg, err := config.Load(config.LoadOptions{Fs: fs, ConfigFile: "/etc/scaffkit.yaml"})
		require.NoError(t, err)
		require.True(t, cfg.QuietGit)
		require.Equal(t, "/etc/scaffkit.yaml", cfg.File)
	})

	t.Run("malformed yaml is reported", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/work/.scaffkit.yaml", []byte("verbose: [\n"), 0644))
		_, err := config.Load(config.LoadOptions{Fs: fs, SearchPaths: []string{"/work"}})
		require.Error(t, err)
	})
}
