package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"paperlens/internal/catalog"
)

// isolate points XDG_CONFIG_HOME at a temp dir and clears the config
// cache, so each test sees a clean slate.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	ResetCache()
	t.Cleanup(ResetCache)
	return dir
}

func writeConfig(t *testing.T, xdgHome, content string) {
	t.Helper()
	dir := filepath.Join(xdgHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatasetPath != "" || cfg.DatabaseURL != "" {
		t.Errorf("missing file produced non-empty config: %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, `
dataset_path: /data/venues.yml
lookup_timeout_seconds: 30
cache_ttl_days: 14
enabled_ranks: [A, B]
disable_enrichment: true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatasetPath != "/data/venues.yml" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.LookupTimeout() != 30*time.Second {
		t.Errorf("LookupTimeout() = %v, want 30s", cfg.LookupTimeout())
	}
	if cfg.CacheTTL() != 14*24*time.Hour {
		t.Errorf("CacheTTL() = %v, want 14 days", cfg.CacheTTL())
	}
	if !cfg.DisableEnrichment {
		t.Error("DisableEnrichment = false")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "dataset_path: [not: a: string")

	if _, err := Load(); err == nil {
		t.Error("Load on malformed YAML returned nil error")
	}
}

func TestLoadCached(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "dataset_path: /first.yml\n")

	first, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A rewrite is invisible until the cache is reset.
	writeConfig(t, home, "dataset_path: /second.yml\n")
	second, _ := Load()
	if second != first {
		t.Error("Load did not return the cached config")
	}

	ResetCache()
	third, _ := Load()
	if third.DatasetPath != "/second.yml" {
		t.Errorf("DatasetPath after reset = %q, want /second.yml", third.DatasetPath)
	}
}

func TestEnvOverrides(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "dataset_path: /from-file.yml\n")
	t.Setenv("PAPERLENS_DATASET", "/from-env.yml")
	t.Setenv("PAPERLENS_DBLP_URL", "http://localhost:8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatasetPath != "/from-env.yml" {
		t.Errorf("DatasetPath = %q, want env override", cfg.DatasetPath)
	}
	if cfg.DBLPBaseURL != "http://localhost:8080" {
		t.Errorf("DBLPBaseURL = %q", cfg.DBLPBaseURL)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &GlobalConfig{}

	if cfg.LookupTimeout() != 10*time.Second {
		t.Errorf("LookupTimeout() = %v, want 10s", cfg.LookupTimeout())
	}
	if cfg.CacheTTL() != 7*24*time.Hour {
		t.Errorf("CacheTTL() = %v, want 7 days", cfg.CacheTTL())
	}
}

func TestDefaultCachePath(t *testing.T) {
	home := isolate(t)

	cfg := &GlobalConfig{}
	want := filepath.Join(home, GlobalConfigDir, CacheFile)
	if got := cfg.DefaultCachePath(); got != want {
		t.Errorf("DefaultCachePath() = %q, want %q", got, want)
	}

	cfg.CachePath = "/custom/cache.db"
	if got := cfg.DefaultCachePath(); got != "/custom/cache.db" {
		t.Errorf("DefaultCachePath() = %q, want configured path", got)
	}
}

func TestEnabledRankSet(t *testing.T) {
	all := (&GlobalConfig{}).EnabledRankSet()
	for _, r := range []catalog.Rank{catalog.RankA, catalog.RankB, catalog.RankC} {
		if !all[r] {
			t.Errorf("empty list should enable rank %s", r)
		}
	}

	some := (&GlobalConfig{EnabledRanks: []string{"A", "C", "bogus"}}).EnabledRankSet()
	if !some[catalog.RankA] || some[catalog.RankB] || !some[catalog.RankC] {
		t.Errorf("EnabledRankSet = %v, want A and C only", some)
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	cfg := &GlobalConfig{}
	c, err := cfg.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() == 0 {
		t.Error("default catalog is empty")
	}
}
