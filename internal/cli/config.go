package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/petrolog/wellsketch/pkg/pipeline"
)

// Config carries the file-configurable defaults. Command-line flags always
// win over config values, which win over the built-in defaults.
type Config struct {
	// OutputDir is the archive root where per-invocation folders go.
	OutputDir string `toml:"output_dir"`

	// CacheDir holds the artifact cache. Empty keeps the platform default.
	CacheDir string `toml:"cache_dir"`

	// Width and Height set the schematic size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Addr is the listen address for the serve command.
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		OutputDir: "output",
		Width:     pipeline.DefaultWidth,
		Height:    pipeline.DefaultHeight,
		Addr:      ":8080",
	}
}

// loadConfig reads a TOML config file, falling back to defaults when path is
// empty and no file exists at the default location.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "wellsketch", "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return cfg, err
	}
	return cfg, nil
}

// cacheDir resolves the artifact cache directory.
func (c Config) cacheDir() (string, error) {
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "wellsketch"), nil
}
