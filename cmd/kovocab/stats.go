package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanmaru/kovocab/internal/dataset"
	"github.com/hanmaru/kovocab/internal/filters"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset statistics without writing any artifact",
	Long: `Stats runs the same aggregation as filters regenerate and prints the
summary report: per-part-of-speech word and topic counts and the numeral
breakdown. Nothing is written to disk.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := filtersConfig(cmd)

	ds, err := dataset.Load(cfg.WordsPath)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzing %d words...\n\n", len(ds.Words))
	f := filters.Build(ds)
	filters.WriteReport(os.Stdout, f, ds)
	return nil
}

func init() {
	statsCmd.Flags().String("input", "", "path to korean-words.json")

	rootCmd.AddCommand(statsCmd)
}
