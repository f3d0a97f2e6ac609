// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRegenerateFlags(t *testing.T, input, output string) {
	t.Helper()
	require.NoError(t, filtersRegenerateCmd.Flags().Set("input", input))
	require.NoError(t, filtersRegenerateCmd.Flags().Set("output", output))
}

func TestRegenerateUnreadableInputLeavesOutputUntouched(t *testing.T) {
	tmpDir := t.TempDir()
	output := filepath.Join(tmpDir, "cascading_filters.json")
	prior := []byte(`{"parts_of_speech": {}, "topic_counts": {}, "generation_date": "2025-08-05"}`)
	require.NoError(t, os.WriteFile(output, prior, 0o644))

	setRegenerateFlags(t, filepath.Join(tmpDir, "missing.json"), output)

	// A load failure is a printed diagnostic, not a process failure.
	require.NoError(t, runFiltersRegenerate(filtersRegenerateCmd, nil))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, prior, got, "prior artifact must survive a load failure")
}

func TestRegenerateInvalidJSONLeavesOutputUntouched(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "korean-words.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"words": [`), 0o644))

	output := filepath.Join(tmpDir, "cascading_filters.json")
	prior := []byte(`{"generation_date": "2025-08-05"}`)
	require.NoError(t, os.WriteFile(output, prior, 0o644))

	setRegenerateFlags(t, input, output)

	require.NoError(t, runFiltersRegenerate(filtersRegenerateCmd, nil))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, prior, got)
}

func TestRegenerateWritesArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "korean-words.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"words": [
		{"korean": "밥", "english": "rice", "partOfSpeech": "noun", "topic": "food"},
		{"korean": "김치", "english": "kimchi", "partOfSpeech": "noun", "topic": "food"},
		{"korean": "가다", "english": "to go", "partOfSpeech": "verb", "topic": "motion"}
	]}`), 0o644))
	output := filepath.Join(tmpDir, "cascading_filters.json")

	setRegenerateFlags(t, input, output)

	require.NoError(t, runFiltersRegenerate(filtersRegenerateCmd, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"noun:food": 2`)
	assert.Contains(t, out, `"verb:motion": 1`)
	assert.Contains(t, out, `"Noun - 명사"`)
	assert.Contains(t, out, `"generation_date": "2025-08-05"`)
}
