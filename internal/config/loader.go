package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is read when CONFIG_PATH is unset. A missing default file
// is not an error; the server then runs on SERVER_*, CORS_*, LOG_* and
// IDENTIFY_* variables and their defaults.
const defaultPath = "./config.yaml"

// Load builds the server configuration from the file named by
// CONFIG_PATH, environment variables and env-default tags, in that order
// of increasing priority, and validates it.
//
// A relative identify.catalog_path is taken relative to the directory of
// the configuration file, so a config and its meter catalogue can be
// shipped side by side.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return loadFile(defaultPath, false)
	}
	return loadFile(path, true)
}

func loadFile(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg.Identify.CatalogPath = resolveCatalog(path, cfg.Identify.CatalogPath)
	case required:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolveCatalog(configPath, catalog string) string {
	if catalog == "" || filepath.IsAbs(catalog) {
		return catalog
	}
	return filepath.Join(filepath.Dir(configPath), catalog)
}
