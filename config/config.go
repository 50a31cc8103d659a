package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the lemsearch tool.
type Config struct {
	Crawl   CrawlConfig   `yaml:"crawl"`
	Analyze AnalyzeConfig `yaml:"analyze"`
	Index   IndexConfig   `yaml:"index"`
}

// CrawlConfig holds page download configuration.
type CrawlConfig struct {
	Workers   int     `yaml:"workers"`
	Need      int     `yaml:"need"`       // how many pages must be saved
	HostDelay float64 `yaml:"host_delay"` // seconds between hits on one host
	Timeout   int     `yaml:"timeout"`    // per-request timeout, seconds
	UserAgent string  `yaml:"user_agent"`
}

// AnalyzeConfig holds tokenization and lemmatization configuration.
type AnalyzeConfig struct {
	Language    string `yaml:"language"` // snowball language ("english", "russian", ...)
	Stopwords   bool   `yaml:"stopwords"`
	MinTokenLen int    `yaml:"min_token_len"`
}

// IndexConfig holds index build configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Crawl: CrawlConfig{
			Workers:   6,
			Need:      100,
			HostDelay: 0.6,
			Timeout:   30,
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64) lemsearch/1.0 (education)",
		},
		Analyze: AnalyzeConfig{
			Language:    "russian",
			Stopwords:   true,
			MinTokenLen: 2,
		},
		Index: IndexConfig{
			Includes: []string{"lemmas_*.txt"},
		},
	}
}

// Load loads configuration from a YAML file. Missing files yield defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for lemsearch.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "lemsearch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
