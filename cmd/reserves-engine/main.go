// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the reserves-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshlib/reserves-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the reserves-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "reserves-engine",
	Short: "Course-reserves citation enrichment pipeline",
	Long: `reserves-engine normalizes legacy course-reserves reading records into
the citation schema of the reading-list platform. It enriches each
citation with the best available full-text link (archived scan, controlled
digital lending match, or approved streaming URL) and flags rows that need
staff review before import.

The enrich subcommand runs the batch; catalog manages the cached
digital-library snapshot the fuzzy matcher searches.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./reserves-engine.yaml or ~/.config/reserves-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("reserves-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "reserves-engine"))
		}
	}

	viper.SetEnvPrefix("RESERVES_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// enrichConfig builds the enrichment settings from defaults overridden by
// the config file.
func enrichConfig() types.EnrichConfig {
	cfg := types.DefaultEnrichConfig()
	if v := viper.GetString("enrich.openurl_base"); v != "" {
		cfg.OpenURLBase = v
	}
	if v := viper.GetStringSlice("enrich.proxy_prefixes"); len(v) > 0 {
		cfg.ProxyPrefixes = v
	}
	if v := viper.GetString("enrich.streaming_domain"); v != "" {
		cfg.StreamingDomain = v
	}
	if v := viper.GetString("enrich.pdf_link_template"); v != "" {
		cfg.PDFLinkTemplate = v
	}
	if v := viper.GetString("enrich.cdl_item_template"); v != "" {
		cfg.CDLItemTemplate = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
