// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kovocab CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the kovocab CLI.
var rootCmd = &cobra.Command{
	Use:   "kovocab",
	Short: "Maintain derived artifacts of the Korean vocabulary dataset",
	Long: `kovocab maintains the artifacts derived from korean-words.json: the
cascading filter index consumed by the vocabulary app's dependent filter
dropdowns, dataset statistics, and a full-text word search index.

Each maintenance task is a subcommand: filters, stats, and index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kovocab.yaml or ~/.config/kovocab/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kovocab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kovocab"))
		}
	}

	viper.SetDefault("data.words", filepath.Join("data", "korean-words.json"))
	viper.SetDefault("data.filters", filepath.Join("data", "cascading_filters.json"))
	viper.SetDefault("data.index", filepath.Join("data", "index"))

	viper.SetEnvPrefix("KOVOCAB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
