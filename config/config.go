package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rbnim/meta"
)

// Keys understood by Config. Each one can be set by flag, by RBNIM_<KEY> in the
// environment (dashes become underscores) or by the YAML config file.
const (
	KeyDebug       = "debug"
	KeyThinking    = "thinking"
	KeyHistoryFile = "history-file"
	KeyResultsDir  = "results-dir"
	KeyWorkers     = "workers"
)

type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyThinking, false)
	v.SetDefault(KeyHistoryFile, filepath.Join(xdg.StateHome, meta.APP_NAME, "history"))
	v.SetDefault(KeyResultsDir, filepath.Join(xdg.DataHome, meta.APP_NAME, "experiments"))
	v.SetDefault(KeyWorkers, meta.DEFAULT_WORKERS)

	return &Config{v: v}
}

// DefaultConfigFile is where Load looks when no explicit path is given.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, meta.APP_NAME, "config.yaml")
}

// Load reads a YAML config file. A missing file is fine unless the path was given
// explicitly.
func (c *Config) Load(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
	}
	c.v.SetConfigFile(path)
	c.v.SetConfigType("yaml")

	if err := c.v.ReadInConfig(); err != nil {
		if !explicit && isNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// BindFlags lets flags that were set on the command line override every other source.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = c.v.BindPFlag(f.Name, f)
	})
	return err
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// SanitizedSettings returns the effective settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.v.AllSettings()
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
