package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperlens/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	if !humanOutput {
		return outputJSON(map[string]interface{}{
			"config_path":    config.GlobalConfigPath(),
			"dataset_path":   cfg.DatasetPath,
			"cache_path":     cfg.DefaultCachePath(),
			"database_url":   cfg.DatabaseURL != "",
			"cache_ttl":      cfg.CacheTTL().String(),
			"lookup_timeout": cfg.LookupTimeout().String(),
			"enabled_ranks":  cfg.EnabledRanks,
		})
	}

	fmt.Printf("config:         %s\n", config.GlobalConfigPath())
	if cfg.DatasetPath != "" {
		fmt.Printf("dataset:        %s\n", cfg.DatasetPath)
	} else {
		fmt.Printf("dataset:        (built-in)\n")
	}
	fmt.Printf("cache:          %s\n", cfg.DefaultCachePath())
	fmt.Printf("cache TTL:      %s\n", cfg.CacheTTL())
	fmt.Printf("lookup timeout: %s\n", cfg.LookupTimeout())
	return nil
}
