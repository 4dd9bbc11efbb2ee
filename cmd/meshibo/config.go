package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool settings. Priority: defaults < file < flags.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtractConfig controls the extraction itself.
type ExtractConfig struct {
	Workers     int  `yaml:"workers"`      // 0 means GOMAXPROCS
	Grain       int  `yaml:"grain"`        // 0 means the package default
	SubdivLevel int  `yaml:"subdiv_level"` // 0 disables the subdivided pass
	UseHide     bool `yaml:"use_hide"`
}

// OutputConfig controls where index buffers land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig mirrors internal/logger settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

func defaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{UseHide: true},
		Output:  OutputConfig{Dir: "."},
		Logging: LoggingConfig{Level: "info"},
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
