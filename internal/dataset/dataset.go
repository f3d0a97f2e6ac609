// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads and writes the korean-words.json vocabulary
// dataset.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hanmaru/kovocab/pkg/types"
)

// Load reads the dataset JSON at path. A document without a words list
// yields a Dataset with no words.
func Load(path string) (*types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &ds, nil
}

// Save writes the dataset to path as indented JSON with Korean text
// emitted literally.
func Save(path string, ds *types.Dataset) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}
