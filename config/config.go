// Package config loads pipeline settings from a YAML file with environment
// overrides. A .env file in the working directory is loaded first when
// present, so both files and plain environment variables can supply values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v2"

	"github.com/SalmaOuardi/arxiv-research-copilot/chunker"
	"github.com/SalmaOuardi/arxiv-research-copilot/download"
	"github.com/SalmaOuardi/arxiv-research-copilot/search"
	"github.com/SalmaOuardi/arxiv-research-copilot/search/arxiv"
)

// envPrefix namespaces the environment overrides, e.g. COPILOT_RAW_DIR.
const envPrefix = "COPILOT_"

// Duration is a time.Duration that unmarshals from YAML strings like "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all pipeline settings.
type Config struct {
	ArxivBaseURL string   `yaml:"arxiv_base_url"`
	MaxResults   int      `yaml:"max_results"`
	RawDir       string   `yaml:"raw_dir"`
	ProcessedDir string   `yaml:"processed_dir"`
	CacheDir     string   `yaml:"cache_dir"`
	CacheTTL     Duration `yaml:"cache_ttl"`
	RateInterval Duration `yaml:"rate_interval"`
	ChunkSize    int      `yaml:"chunk_size"`
	ChunkOverlap int      `yaml:"chunk_overlap"`
	PoolSize     int      `yaml:"pool_size"`
}

// Default returns the configuration used when no file or overrides are set.
func Default() *Config {
	return &Config{
		ArxivBaseURL: arxiv.DefaultBaseURL,
		MaxResults:   search.DefaultMaxResults,
		RawDir:       "data/raw",
		ProcessedDir: "data/processed",
		CacheDir:     "data/cache",
		CacheTTL:     Duration(24 * time.Hour),
		RateInterval: Duration(download.DefaultRateInterval),
		ChunkSize:    chunker.DefaultChunkSize,
		ChunkOverlap: chunker.DefaultChunkOverlap,
		PoolSize:     0, // 0 lets the pipeline pick its own default
	}
}

// Load builds the configuration: defaults, then the YAML file at path if it
// exists, then environment variables. An empty path skips the file step; a
// non-empty path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// Best effort; absence of a .env file is not an error.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error

	applyString(&c.ArxivBaseURL, "ARXIV_BASE_URL")
	applyString(&c.RawDir, "RAW_DIR")
	applyString(&c.ProcessedDir, "PROCESSED_DIR")
	applyString(&c.CacheDir, "CACHE_DIR")

	if err = applyInt(&c.MaxResults, "MAX_RESULTS"); err != nil {
		return err
	}
	if err = applyInt(&c.ChunkSize, "CHUNK_SIZE"); err != nil {
		return err
	}
	if err = applyInt(&c.ChunkOverlap, "CHUNK_OVERLAP"); err != nil {
		return err
	}
	if err = applyInt(&c.PoolSize, "POOL_SIZE"); err != nil {
		return err
	}
	if err = applyDuration(&c.CacheTTL, "CACHE_TTL"); err != nil {
		return err
	}
	return applyDuration(&c.RateInterval, "RATE_INTERVAL")
}

func applyString(dst *string, key string) {
	if v := os.Getenv(envPrefix + key); v != "" {
		*dst = v
	}
}

func applyInt(dst *int, key string) error {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	*dst = n
	return nil
}

func applyDuration(dst *Duration, key string) error {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	*dst = Duration(d)
	return nil
}
