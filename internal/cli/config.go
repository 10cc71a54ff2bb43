package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/visgraphio/visgraph/pkg/cache"
	"github.com/visgraphio/visgraph/pkg/layout"
	"github.com/visgraphio/visgraph/pkg/store"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "visgraph.toml"

// Config is the TOML configuration file shape. Every section is optional;
// absent values keep their defaults and explicit command-line flags win over
// file values.
type Config struct {
	Layout layout.Settings `toml:"layout"`
	Cache  CacheConfig     `toml:"cache"`
	Store  StoreConfig     `toml:"store"`
	Server ServerConfig    `toml:"server"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis" or "none".
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir   string            `toml:"dir"`
	Redis cache.RedisConfig `toml:"redis"`
}

// StoreConfig selects and configures the render record store used by serve.
type StoreConfig struct {
	// Backend is "memory" (default) or "mongo".
	Backend string            `toml:"backend"`
	Mongo   store.MongoConfig `toml:"mongo"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address, default ":8080".
	Addr string `toml:"addr"`
}

// defaultConfig returns a config with all defaults applied.
func defaultConfig() *Config {
	return &Config{
		Layout: layout.DefaultSettings(),
		Cache:  CacheConfig{Backend: "file"},
		Store:  StoreConfig{Backend: "memory"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// loadConfig reads a TOML config file over the defaults. With an empty path
// it tries visgraph.toml in the working directory and silently falls back to
// defaults when the file does not exist. An explicit path must exist.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
