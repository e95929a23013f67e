// Package config handles global configuration for the paperlens CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"paperlens/internal/catalog"
)

// GlobalConfig represents configuration stored in
// $XDG_CONFIG_HOME/paperlens/config.yml.
type GlobalConfig struct {
	DatasetPath       string   `yaml:"dataset_path,omitempty"`
	DBLPBaseURL       string   `yaml:"dblp_base_url,omitempty"`
	LookupTimeoutSecs int      `yaml:"lookup_timeout_seconds,omitempty"`
	CachePath         string   `yaml:"cache_path,omitempty"`
	DatabaseURL       string   `yaml:"database_url,omitempty"`
	CacheTTLDays      int      `yaml:"cache_ttl_days,omitempty"`
	EnabledRanks      []string `yaml:"enabled_ranks,omitempty"`
	DisableEnrichment bool     `yaml:"disable_enrichment,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "paperlens"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// CacheFile is the default SQLite cache file name.
	CacheFile = "cache.db"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// ConfigDirPath returns the configuration directory. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/paperlens.
func ConfigDirPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	dir := ConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalConfigFile)
}

// Load loads the global configuration file, then applies environment
// overrides. Returns an empty config (not an error) if the file doesn't
// exist.
func Load() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg := &GlobalConfig{}

	if path := GlobalConfigPath(); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	applyEnv(cfg)

	globalConfigCache = cfg
	return cfg, nil
}

// ResetCache clears the config cache (for tests).
func ResetCache() {
	globalConfigCache = nil
}

// applyEnv overlays environment variables onto the loaded config.
func applyEnv(cfg *GlobalConfig) {
	if v := os.Getenv("PAPERLENS_DATASET"); v != "" {
		cfg.DatasetPath = v
	}
	if v := os.Getenv("PAPERLENS_DBLP_URL"); v != "" {
		cfg.DBLPBaseURL = v
	}
	if v := os.Getenv("PAPERLENS_DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("PAPERLENS_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
}

// LookupTimeout returns the configured lookup timeout, defaulting to 10s.
func (c *GlobalConfig) LookupTimeout() time.Duration {
	if c.LookupTimeoutSecs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.LookupTimeoutSecs) * time.Second
}

// CacheTTL returns the configured cache TTL, defaulting to 7 days.
func (c *GlobalConfig) CacheTTL() time.Duration {
	if c.CacheTTLDays <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}

// DefaultCachePath returns the configured SQLite cache path, defaulting
// to cache.db under the config directory.
func (c *GlobalConfig) DefaultCachePath() string {
	if c.CachePath != "" {
		return c.CachePath
	}
	dir := ConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, CacheFile)
}

// EnabledRankSet returns the set of ranks enabled for display. An empty
// config list enables all ranks.
func (c *GlobalConfig) EnabledRankSet() map[catalog.Rank]bool {
	if len(c.EnabledRanks) == 0 {
		return map[catalog.Rank]bool{
			catalog.RankA: true,
			catalog.RankB: true,
			catalog.RankC: true,
		}
	}
	set := make(map[catalog.Rank]bool, len(c.EnabledRanks))
	for _, r := range c.EnabledRanks {
		rank := catalog.Rank(r)
		if rank.Valid() {
			set[rank] = true
		}
	}
	return set
}

// LoadCatalog loads the configured dataset, or the built-in default
// table when no dataset path is set.
func (c *GlobalConfig) LoadCatalog() (*catalog.Catalog, error) {
	if c.DatasetPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.DatasetPath)
}
