// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ScanPaths []string `toml:"scan_paths"`
	Exclude   Exclude  `toml:"exclude"`
	Loader    Loader   `toml:"loader"`
	Output    Output   `toml:"output"`
	History   History  `toml:"history"`
	Watch     Watch    `toml:"watch"`
	Metrics   Metrics  `toml:"metrics"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Loader struct {
	BatchSize int `toml:"batch_size"`
}

type Output struct {
	DOT     string `toml:"dot"`
	TSV     string `toml:"tsv"`
	Mermaid string `toml:"mermaid"`
}

type History struct {
	Path       string `toml:"path"`
	ProjectKey string `toml:"project_key"`
}

type Watch struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration so TOML string values like "500ms" decode.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type Metrics struct {
	Addr string `toml:"addr"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if len(cfg.ScanPaths) == 0 {
		cfg.ScanPaths = []string{"."}
	}
	if cfg.Loader.BatchSize <= 0 {
		cfg.Loader.BatchSize = 50
	}
	if cfg.Watch.Debounce.Duration == 0 {
		cfg.Watch.Debounce.Duration = 500 * time.Millisecond
	}
	if cfg.History.ProjectKey == "" {
		cfg.History.ProjectKey = "default"
	}
}
