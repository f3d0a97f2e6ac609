// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanmaru/kovocab/internal/wordindex"
	"github.com/hanmaru/kovocab/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the word search index (build, search)",
	Long: `Index manages a local SQLite full-text index over the word dataset.
Use subcommands to build the index or query it.`,
}

// --- build subcommand ---

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the word search index from the dataset",
	Long: `Build loads korean-words.json into a SQLite database with full-text
indexing over the Korean form, English gloss, romanization, and example
sentence. An unchanged dataset is skipped on subsequent runs.`,
	RunE: runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	store, err := wordindex.Open(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Build(context.Background(), os.Stdout)
	return err
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the word index with full-text search and filters",
	Long: `Search queries the word index using full-text search, structured
filters (part of speech, topic), or a combination of both.`,
	RunE: runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	store, err := wordindex.Open(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := searchOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --pos, or --topic")
	}

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []types.Word, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-30s  %-14s  %s\n",
		"Rank", "Korean", "English", "POS", "Topic")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))

	for i, w := range results {
		english := w.English
		if len(english) > 30 {
			english = english[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-30s  %-14s  %s\n",
			i+1, w.Korean, english, w.PartOfSpeech, w.Topic)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	if indexDir == "" {
		indexDir = viper.GetString("data.index")
	}
	wordsPath, _ := cmd.Flags().GetString("input")
	if wordsPath == "" {
		wordsPath = viper.GetString("data.words")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.IndexConfig{
		IndexDir:   indexDir,
		WordsPath:  wordsPath,
		MaxResults: maxResults,
	}
}

func searchOptsFromFlags(cmd *cobra.Command, args []string) wordindex.SearchOptions {
	pos, _ := cmd.Flags().GetString("pos")
	topic, _ := cmd.Flags().GetString("topic")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return wordindex.SearchOptions{
		Query:      strings.Join(args, " "),
		POS:        pos,
		Topic:      topic,
		MaxResults: maxResults,
	}
}

func init() {
	indexBuildCmd.Flags().String("index-dir", "", "directory for the index database")
	indexBuildCmd.Flags().String("input", "", "path to korean-words.json")

	indexSearchCmd.Flags().String("index-dir", "", "directory for the index database")
	indexSearchCmd.Flags().String("input", "", "path to korean-words.json")
	indexSearchCmd.Flags().String("pos", "", "filter by part of speech")
	indexSearchCmd.Flags().String("topic", "", "filter by topic")
	indexSearchCmd.Flags().Int("max-results", 20, "maximum number of results")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexSearchCmd)
	rootCmd.AddCommand(indexCmd)
}
