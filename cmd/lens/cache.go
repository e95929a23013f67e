package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperlens/internal/cache"
	"paperlens/internal/lookup"
)

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheCleanupCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the lookup result cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cached entry count",
	RunE:  runCacheInfo,
}

var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove expired cache entries",
	RunE:  runCacheCleanup,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cache entries",
	RunE:  runCacheClear,
}

// openResultCache opens the lookup result cache over the configured
// persistent store.
func openResultCache() (*cache.Cache[lookup.Result], cache.Store) {
	cfg := mustLoadConfig()
	store := openCacheStore(cfg)
	return cache.New[lookup.Result](cacheNamespace, store, cache.WithTTL(cfg.CacheTTL())), store
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	_, store := openResultCache()
	if store == nil {
		exitWithError(ExitConfigError, "no persistent cache configured")
	}

	keys, err := store.Keys(cacheNamespace)
	if err != nil {
		exitWithError(ExitError, "listing cache keys: %v", err)
	}

	if !humanOutput {
		return outputJSON(map[string]int{"entries": len(keys)})
	}
	fmt.Printf("%d cached entries\n", len(keys))
	return nil
}

func runCacheCleanup(cmd *cobra.Command, args []string) error {
	c, store := openResultCache()
	if store == nil {
		exitWithError(ExitConfigError, "no persistent cache configured")
	}

	removed := c.Cleanup()

	if !humanOutput {
		return outputJSON(map[string]int{"removed": removed})
	}
	fmt.Printf("removed %d expired entries\n", removed)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c, store := openResultCache()
	if store == nil {
		exitWithError(ExitConfigError, "no persistent cache configured")
	}

	c.Clear()

	if !humanOutput {
		return outputJSON(map[string]bool{"cleared": true})
	}
	fmt.Println("cache cleared")
	return nil
}
