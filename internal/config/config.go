// Package config loads gqlscaffold settings from config files, the
// environment and bound command flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samwightt/gqlscaffold/internal/generator"
)

const (
	EnvPrefix = "GQLSCAFFOLD"
	// DefaultName is looked up in the working directory when no config file
	// is given.
	DefaultName = ".gqlscaffold"

	KeyDirectory = "directory"
	KeyNode      = "node"
	KeySDL       = "sdl"
	KeyForce     = "force"
	KeySchema    = "schema"
	KeyLogLevel  = "log.level"
)

type Config struct {
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty" mapstructure:"directory"`
	Node      bool   `json:"node,omitempty" yaml:"node,omitempty" mapstructure:"node"`
	SDL       bool   `json:"sdl,omitempty" yaml:"sdl,omitempty" mapstructure:"sdl"`
	Force     bool   `json:"force,omitempty" yaml:"force,omitempty" mapstructure:"force"`
	Schema    string `json:"schema,omitempty" yaml:"schema,omitempty" mapstructure:"schema"`
	Log       Log    `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

type Log struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty" mapstructure:"level"`
}

// SetDefaults registers default values and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDirectory, generator.DefaultDirectory)
	v.SetDefault(KeyNode, false)
	v.SetDefault(KeySDL, false)
	v.SetDefault(KeyForce, false)
	v.SetDefault(KeySchema, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read loads config files into v. With no files, DefaultName is searched
// in the working directory and a missing file is not an error. Multiple
// files are merged, later files taking priority.
func Read(v *viper.Viper, files []string) error {
	if len(files) == 0 {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil
			}
			return fmt.Errorf("failed to read config: %w", err)
		}
		return nil
	}

	v.SetConfigFile(files[0])
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", files[0], err)
	}
	for _, file := range files[1:] {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			return fmt.Errorf("failed to merge config %s: %w", file, err)
		}
	}
	return nil
}

// Load resolves the settings currently held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &c, nil
}

// GeneratorOptions maps the config onto generator options.
func (c *Config) GeneratorOptions() []generator.Option {
	opts := []generator.Option{generator.WithDirectory(c.Directory)}
	if c.Node {
		opts = append(opts, generator.WithNode())
	}
	if c.SDL {
		opts = append(opts, generator.WithSDL())
	}
	if c.Force {
		opts = append(opts, generator.WithForce())
	}
	return opts
}
