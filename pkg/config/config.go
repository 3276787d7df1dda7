// Package config loads the review tool configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the review loop.
type Config struct {
	RegionsFile   string `yaml:"regions_file"`
	JOSMURL       string `yaml:"josm_url"`
	WorkDir       string `yaml:"work_dir"`
	KeepDownloads bool   `yaml:"keep_downloads"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		RegionsFile: "regions.csv",
		JOSMURL:     "http://localhost:8111",
		WorkDir:     ".",
	}
}

// Load reads a YAML config file. An empty path or a missing file yields
// the defaults; fields left unset in the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	def := Default()
	if cfg.RegionsFile == "" {
		cfg.RegionsFile = def.RegionsFile
	}
	if cfg.JOSMURL == "" {
		cfg.JOSMURL = def.JOSMURL
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = def.WorkDir
	}
	return cfg, nil
}
