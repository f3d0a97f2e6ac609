// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanmaru/kovocab/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantWords int
		wantErr   string
	}{
		{
			name: "parses words",
			content: `{"words": [
				{"korean": "먹다", "english": "to eat", "partOfSpeech": "verb", "topic": "food"},
				{"korean": "물", "english": "water", "partOfSpeech": "noun", "topic": "food"}
			]}`,
			wantWords: 2,
		},
		{
			name:      "missing words list is empty",
			content:   `{}`,
			wantWords: 0,
		},
		{
			name:      "null words list is empty",
			content:   `{"words": null}`,
			wantWords: 0,
		},
		{
			name:      "ignores unknown fields",
			content:   `{"words": [{"korean": "하나", "english": "one", "partOfSpeech": "numeral", "topic": "counting", "hanja": "一"}], "version": 3}`,
			wantWords: 1,
		},
		{
			name:    "invalid JSON",
			content: `{"words": [`,
			wantErr: "parsing dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "korean-words.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			ds, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ds.Words, tt.wantWords)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading dataset")
}

func TestSaveRoundTrip(t *testing.T) {
	ds := &types.Dataset{Words: []types.Word{
		{Korean: "먹다", English: "to eat", PartOfSpeech: "verb", Topic: "food"},
	}}

	path := filepath.Join(t.TempDir(), "korean-words.json")
	require.NoError(t, Save(path, ds))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ds.Words, got.Words)

	// Korean text is stored literally, not as \u escapes.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "먹다")
	assert.NotContains(t, string(data), `\u`)
}
