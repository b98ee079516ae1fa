package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/pipeline"
)

// configFile is the name of the TOML config file inside configDir.
const configFile = "config.toml"

// Config holds user-level settings loaded from ~/.config/boggle/config.toml.
// Every field has a working default, so the file is optional.
type Config struct {
	// Dictionary is the default word list path for all commands.
	Dictionary string `toml:"dictionary"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig controls the solve-result cache.
type CacheConfig struct {
	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`

	// Redis selects a Redis backend when Addr is set; otherwise results
	// are cached as files under the XDG cache directory.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: pipeline.DefaultDictionary,
		Server:     ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the TOML config at path. An empty path means the
// default location (configDir/config.toml). A missing file is not an
// error: defaults are returned. A file that exists but fails to parse is
// reported so a typo does not silently reset every setting.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(dir, configFile)
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if cfg.Dictionary == "" {
		cfg.Dictionary = pipeline.DefaultDictionary
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	return cfg, nil
}
