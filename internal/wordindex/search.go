// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanmaru/kovocab/pkg/types"
)

// SearchOptions holds parameters for word index queries.
type SearchOptions struct {
	// Query is the full-text search string, matched against the
	// Korean form, English gloss, romanization, and example sentence.
	Query string

	// POS filters by part of speech.
	POS string

	// Topic filters by topic.
	Topic string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (o SearchOptions) IsEmpty() bool {
	return o.Query == "" && o.POS == "" && o.Topic == ""
}

// Search queries the index with optional full-text search and structured
// filters. Full-text matches come back in dataset order; structured-only
// queries sort by part of speech, topic, and Korean form.
func (s *Store) Search(ctx context.Context, opts SearchOptions) ([]types.Word, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT w.word_id, w.korean, w.english, w.romanization,
				w.part_of_speech, w.topic, w.example, w.example_translation
			FROM words_fts
			JOIN words w ON w.rowid = words_fts.docid
			WHERE words_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT w.word_id, w.korean, w.english, w.romanization,
				w.part_of_speech, w.topic, w.example, w.example_translation
			FROM words w
			WHERE 1=1`)
	}

	if opts.POS != "" {
		qb.WriteString(` AND w.part_of_speech = ?`)
		args = append(args, opts.POS)
	}

	if opts.Topic != "" {
		qb.WriteString(` AND w.topic = ?`)
		args = append(args, opts.Topic)
	}

	if useFTS {
		qb.WriteString(` ORDER BY words_fts.docid`)
	} else {
		qb.WriteString(` ORDER BY w.part_of_speech, w.topic, w.korean`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying word index: %w", err)
	}
	defer rows.Close()

	var results []types.Word
	for rows.Next() {
		var w types.Word
		if err := rows.Scan(
			&w.ID, &w.Korean, &w.English, &w.Romanization,
			&w.PartOfSpeech, &w.Topic,
			&w.ExampleSentence, &w.ExampleTranslation,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return results, nil
}
