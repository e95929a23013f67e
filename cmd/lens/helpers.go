package main

import (
	"fmt"
	"os"

	"paperlens/internal/cache"
	"paperlens/internal/catalog"
	"paperlens/internal/config"
	"paperlens/internal/lookup"
	"paperlens/internal/match"
)

// cacheNamespace prefixes every persistent cache key this tool writes, so
// a shared cache database can be cleared without touching other data.
const cacheNamespace = "paperlens:"

// mustLoadConfig loads the global config or exits.
func mustLoadConfig() *config.GlobalConfig {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustLoadCatalog loads the configured (or built-in) catalog or exits.
func mustLoadCatalog(cfg *config.GlobalConfig) *catalog.Catalog {
	cat, err := cfg.LoadCatalog()
	if err != nil {
		exitWithError(ExitConfigError, "loading catalog: %v", err)
	}
	return cat
}

// mustLoadMatcher builds a matcher over the configured catalog.
func mustLoadMatcher(cfg *config.GlobalConfig) *match.Matcher {
	return match.NewMatcher(mustLoadCatalog(cfg))
}

// openCacheStore opens the persistent cache tier: PostgreSQL when a
// database URL is configured, otherwise the local SQLite file. A store
// that fails to open degrades to memory-only caching rather than
// aborting the command.
func openCacheStore(cfg *config.GlobalConfig) cache.Store {
	if cfg.DatabaseURL != "" {
		store, err := cache.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: postgres cache unavailable: %v\n", err)
			return nil
		}
		return store
	}

	path := cfg.DefaultCachePath()
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(config.ConfigDirPath(), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache directory unavailable: %v\n", err)
		return nil
	}
	store, err := cache.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: sqlite cache unavailable: %v\n", err)
		return nil
	}
	return store
}

// newLookupService wires the DBLP client with the result cache.
func newLookupService(cfg *config.GlobalConfig) *lookup.Service {
	var clientOpts []lookup.ClientOption
	if cfg.DBLPBaseURL != "" {
		clientOpts = append(clientOpts, lookup.WithBaseURL(cfg.DBLPBaseURL))
	}
	clientOpts = append(clientOpts, lookup.WithTimeout(cfg.LookupTimeout()))

	client := lookup.NewClient(clientOpts...)
	resultCache := cache.New[lookup.Result](cacheNamespace, openCacheStore(cfg),
		cache.WithTTL(cfg.CacheTTL()))

	return lookup.NewService(client, resultCache)
}
