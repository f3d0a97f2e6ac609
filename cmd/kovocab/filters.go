// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanmaru/kovocab/internal/dataset"
	"github.com/hanmaru/kovocab/internal/filters"
	"github.com/hanmaru/kovocab/pkg/types"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Manage the cascading filter artifact",
	Long: `Filters derives cascading_filters.json from the word dataset. The
artifact groups words by part of speech and topic so the vocabulary app
can present dependent filter dropdowns.`,
}

// --- regenerate subcommand ---

var filtersRegenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Rebuild cascading_filters.json from the current dataset",
	Long: `Regenerate performs a full recompute of the cascading filter artifact
from the current state of korean-words.json: one pass over the words
aggregating topic sets and counts per part of speech, then a deterministic
reshape and write. Reruns on an unchanged dataset are byte-identical.

Load and save failures are reported and leave the prior artifact
untouched; they are not treated as process failures.`,
	RunE: runFiltersRegenerate,
}

func runFiltersRegenerate(cmd *cobra.Command, args []string) error {
	cfg := filtersConfig(cmd)

	ds, err := dataset.Load(cfg.WordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading JSON file: %v\n", err)
		return nil
	}

	fmt.Println("Regenerating cascading filters based on current data...")
	fmt.Printf("Analyzing %d words...\n\n", len(ds.Words))

	f := filters.Build(ds)
	filters.WriteReport(os.Stdout, f, ds)

	if err := f.WriteFile(cfg.FiltersPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving file: %v\n", err)
		return nil
	}

	fmt.Printf("\nCascading filters regenerated.\n")
	fmt.Printf("  Saved to: %s\n", cfg.FiltersPath)
	return nil
}

// --- export subcommand ---

var filtersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filter structure to stdout or a file",
	Long: `Export recomputes the filter structure from the dataset and writes it
in YAML or JSON without touching cascading_filters.json. Useful for
inspecting the aggregation or feeding other tooling.`,
	RunE: runFiltersExport,
}

func runFiltersExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	cfg := filtersConfig(cmd)
	ds, err := dataset.Load(cfg.WordsPath)
	if err != nil {
		return err
	}
	f := filters.Build(ds)

	out := os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer file.Close()
		out = file
	}

	switch format {
	case "yaml", "":
		return f.EncodeYAML(out)
	case "json":
		return f.Encode(out)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- shared helpers ---

func filtersConfig(cmd *cobra.Command) types.FiltersConfig {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = viper.GetString("data.words")
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("data.filters")
	}
	return types.FiltersConfig{
		WordsPath:   input,
		FiltersPath: output,
	}
}

func init() {
	filtersRegenerateCmd.Flags().String("input", "", "path to korean-words.json")
	filtersRegenerateCmd.Flags().String("output", "", "path to cascading_filters.json")

	filtersExportCmd.Flags().String("input", "", "path to korean-words.json")
	filtersExportCmd.Flags().String("format", "yaml", "output format: yaml or json")
	filtersExportCmd.Flags().String("out", "", "write to file instead of stdout")

	filtersCmd.AddCommand(filtersRegenerateCmd)
	filtersCmd.AddCommand(filtersExportCmd)
	rootCmd.AddCommand(filtersCmd)
}
