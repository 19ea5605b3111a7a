package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// FileName is the config file name searched for, without extension
const FileName = ".scaffkit"

// EnvPrefix prefixes environment overrides, e.g. SCAFFKIT_LOG_FILE
const EnvPrefix = "SCAFFKIT"

// Config holds all settings
type Config struct {
	Verbose  bool        `mapstructure:"verbose"`
	QuietGit bool        `mapstructure:"quiet_git"`
	Log      LogConfig   `mapstructure:"log"`
	Clean    CleanConfig `mapstructure:"clean"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// LogConfig configures the rotating log file
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// CleanConfig configures the clean command
type CleanConfig struct {
	// Confirm asks before deleting when stdin is a terminal
	Confirm bool `mapstructure:"confirm"`
}

// LoadOptions controls where Load looks
type LoadOptions struct {
	// ConfigFile is read instead of searching when set
	ConfigFile string
	// SearchPaths are searched in order for .scaffkit.yaml
	SearchPaths []string
	// Fs replaces the OS filesystem, mainly for tests
	Fs afero.Fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("quiet_git", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 1)
	v.SetDefault("log.max_backups", 2)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("clean.confirm", true)
}

// Load reads the configuration. A missing config file is not an error
// unless it was named explicitly.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}
