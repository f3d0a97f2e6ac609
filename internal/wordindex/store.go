// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordindex builds and queries a SQLite full-text search index
// over the word dataset.
package wordindex

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hanmaru/kovocab/internal/dataset"
	"github.com/hanmaru/kovocab/pkg/types"
)

const dbFile = "kovocab.db"

// Store manages the word index SQLite database.
type Store struct {
	db         *sql.DB
	wordsPath  string
	maxResults int
}

// Open opens or creates the index database at cfg.IndexDir/kovocab.db,
// creating the schema if it does not exist.
func Open(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		wordsPath:  cfg.WordsPath,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS words (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			word_id TEXT,
			korean TEXT NOT NULL,
			english TEXT NOT NULL,
			romanization TEXT,
			part_of_speech TEXT,
			topic TEXT,
			example TEXT,
			example_translation TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_pos ON words(part_of_speech)`,
		`CREATE INDEX IF NOT EXISTS idx_words_topic ON words(topic)`,
		`CREATE TABLE IF NOT EXISTS build_status (
			dataset_path TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS4 external-content table with triggers for sync. FTS4 rather
	// than FTS5: go-sqlite3 only compiles FTS5 in behind the sqlite_fts5
	// build tag, and the index must work with a plain go build.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='words_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE words_fts USING fts4(
				content="words",
				korean, english, romanization, example)`,
			`CREATE TRIGGER words_bd BEFORE DELETE ON words BEGIN
				DELETE FROM words_fts WHERE docid=old.rowid;
			END`,
			`CREATE TRIGGER words_bu BEFORE UPDATE ON words BEGIN
				DELETE FROM words_fts WHERE docid=old.rowid;
			END`,
			`CREATE TRIGGER words_ai AFTER INSERT ON words BEGIN
				INSERT INTO words_fts(docid, korean, english, romanization, example)
				VALUES (new.rowid, new.korean, new.english, new.romanization, new.example);
			END`,
			`CREATE TRIGGER words_au AFTER UPDATE ON words BEGIN
				INSERT INTO words_fts(docid, korean, english, romanization, example)
				VALUES (new.rowid, new.korean, new.english, new.romanization, new.example);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// BuildSummary holds counts from an index build run.
type BuildSummary struct {
	Indexed int
	Skipped bool
}

// Build loads the dataset and replaces the index contents in one
// transaction. An unchanged dataset file (same mod time as the last
// build) is skipped.
func (s *Store) Build(ctx context.Context, w io.Writer) (BuildSummary, error) {
	info, err := os.Stat(s.wordsPath)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("checking dataset: %w", err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM build_status WHERE dataset_path = ?`, s.wordsPath,
	).Scan(&storedModTime)
	if err == nil && storedModTime == modTime {
		fmt.Fprintf(w, "index up to date (%s unchanged)\n", s.wordsPath)
		return BuildSummary{Skipped: true}, nil
	}

	ds, err := dataset.Load(s.wordsPath)
	if err != nil {
		return BuildSummary{}, err
	}

	if err := s.replaceWords(ctx, ds.Words, modTime); err != nil {
		return BuildSummary{}, err
	}

	fmt.Fprintf(w, "indexed %d words from %s\n", len(ds.Words), s.wordsPath)
	return BuildSummary{Indexed: len(ds.Words)}, nil
}

func (s *Store) replaceWords(ctx context.Context, words []types.Word, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (word_id, korean, english, romanization, part_of_speech, topic, example, example_translation)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range words {
		_, err := stmt.ExecContext(ctx,
			word.ID, word.Korean, word.English, word.Romanization,
			word.PartOfSpeech, word.Topic,
			word.ExampleSentence, word.ExampleTranslation,
		)
		if err != nil {
			return fmt.Errorf("inserting word %q: %w", word.Korean, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO build_status (dataset_path, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(dataset_path) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		s.wordsPath, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating build status: %w", err)
	}

	return tx.Commit()
}
