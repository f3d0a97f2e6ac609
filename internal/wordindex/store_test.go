// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordindex

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hanmaru/kovocab/internal/dataset"
	"github.com/hanmaru/kovocab/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T, words []types.Word) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	wordsPath := filepath.Join(tmpDir, "korean-words.json")
	writeDataset(t, wordsPath, words)

	cfg := types.IndexConfig{
		IndexDir:   filepath.Join(tmpDir, "index"),
		WordsPath:  wordsPath,
		MaxResults: 20,
	}
	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, wordsPath
}

func writeDataset(t *testing.T, path string, words []types.Word) {
	t.Helper()
	if err := dataset.Save(path, &types.Dataset{Words: words}); err != nil {
		t.Fatal(err)
	}
}

func sampleWords() []types.Word {
	return []types.Word{
		{
			ID: "w1", Korean: "먹다", English: "to eat",
			Romanization: "meokda", PartOfSpeech: "verb", Topic: "food",
			ExampleSentence: "밥을 먹다", ExampleTranslation: "to eat a meal",
		},
		{
			ID: "w2", Korean: "물", English: "water",
			Romanization: "mul", PartOfSpeech: "noun", Topic: "food",
		},
		{
			ID: "w3", Korean: "하나", English: "one",
			Romanization: "hana", PartOfSpeech: "numeral", Topic: "counting",
		},
	}
}

func buildIndex(t *testing.T, store *Store) BuildSummary {
	t.Helper()
	var buf bytes.Buffer
	summary, err := store.Build(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return summary
}

// --- tests ---

func TestOpenCreatesSchema(t *testing.T) {
	// Schema creation must succeed with a stock go-sqlite3 build; the
	// FTS table deliberately uses a module compiled in by default.
	store, wordsPath := testSetup(t, sampleWords())
	buildIndex(t, store)
	store.Close()

	// Reopening an existing database must not trip over the already
	// created FTS table and triggers.
	reopened, err := Open(types.IndexConfig{
		IndexDir:  filepath.Join(filepath.Dir(wordsPath), "index"),
		WordsPath: wordsPath,
	})
	if err != nil {
		t.Fatalf("Open on existing database: %v", err)
	}
	defer reopened.Close()

	results, err := reopened.Search(context.Background(), SearchOptions{Query: "water"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestBuildIndexesAllWords(t *testing.T) {
	store, _ := testSetup(t, sampleWords())

	summary := buildIndex(t, store)

	if summary.Indexed != 3 {
		t.Errorf("Indexed = %d, want 3", summary.Indexed)
	}
	if summary.Skipped {
		t.Error("first build should not be skipped")
	}
}

func TestBuildSkipsUnchangedDataset(t *testing.T) {
	store, _ := testSetup(t, sampleWords())

	buildIndex(t, store)
	summary := buildIndex(t, store)

	if !summary.Skipped {
		t.Error("second build on unchanged dataset should be skipped")
	}
}

func TestBuildRebuildsChangedDataset(t *testing.T) {
	store, wordsPath := testSetup(t, sampleWords())
	buildIndex(t, store)

	words := append(sampleWords(), types.Word{
		ID: "w4", Korean: "가다", English: "to go",
		PartOfSpeech: "verb", Topic: "motion",
	})
	writeDataset(t, wordsPath, words)
	// Force a distinct mod time in case writes land in the same tick.
	newTime := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(wordsPath, newTime, newTime); err != nil {
		t.Fatal(err)
	}

	summary := buildIndex(t, store)

	if summary.Skipped {
		t.Error("build after dataset change should not be skipped")
	}
	if summary.Indexed != 4 {
		t.Errorf("Indexed = %d, want 4", summary.Indexed)
	}

	results, err := store.Search(context.Background(), SearchOptions{Query: "go"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Korean != "가다" {
		t.Errorf("Search(go) = %+v, want the new word", results)
	}
}

func TestSearchFullText(t *testing.T) {
	store, _ := testSetup(t, sampleWords())
	buildIndex(t, store)

	results, err := store.Search(context.Background(), SearchOptions{Query: "water"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Korean != "물" {
		t.Errorf("Korean = %q, want %q", results[0].Korean, "물")
	}
	if results[0].Topic != "food" {
		t.Errorf("Topic = %q, want %q", results[0].Topic, "food")
	}
}

func TestSearchStructuredFilters(t *testing.T) {
	store, _ := testSetup(t, sampleWords())
	buildIndex(t, store)

	results, err := store.Search(context.Background(), SearchOptions{Topic: "food"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	// Structured-only queries sort by part of speech, topic, Korean form.
	if results[0].PartOfSpeech != "noun" || results[1].PartOfSpeech != "verb" {
		t.Errorf("unexpected order: %q, %q", results[0].PartOfSpeech, results[1].PartOfSpeech)
	}

	results, err = store.Search(context.Background(), SearchOptions{Query: "food OR water", POS: "verb"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("POS filter should exclude non-verb matches, got %+v", results)
	}
}

func TestSearchMaxResults(t *testing.T) {
	store, _ := testSetup(t, sampleWords())
	buildIndex(t, store)

	results, err := store.Search(context.Background(), SearchOptions{POS: "verb", MaxResults: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) > 1 {
		t.Errorf("len(results) = %d, want at most 1", len(results))
	}
}

func TestSearchOptionsIsEmpty(t *testing.T) {
	if !(SearchOptions{}).IsEmpty() {
		t.Error("zero options should be empty")
	}
	if (SearchOptions{POS: "noun"}).IsEmpty() {
		t.Error("options with a filter should not be empty")
	}
}
