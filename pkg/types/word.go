// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the vocabulary record types and configuration
// shared by the kovocab stages.
package types

// Word is a single vocabulary entry from korean-words.json. The filter
// stage reads only PartOfSpeech and Topic; the index stage uses the
// text fields for full-text search.
type Word struct {
	// ID is the dataset-assigned entry identifier. May be empty in
	// older datasets.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Korean is the word in Hangul.
	Korean string `json:"korean" yaml:"korean"`

	// English is the English gloss.
	English string `json:"english" yaml:"english"`

	// Romanization is the Revised Romanization of the Korean form.
	Romanization string `json:"romanization,omitempty" yaml:"romanization,omitempty"`

	// PartOfSpeech is the lowercase grammatical category (e.g. "noun").
	PartOfSpeech string `json:"partOfSpeech" yaml:"partOfSpeech"`

	// Topic is the thematic tag for cascading filters (e.g. "food").
	Topic string `json:"topic" yaml:"topic"`

	// ExampleSentence is an optional Korean example sentence.
	ExampleSentence string `json:"exampleSentence,omitempty" yaml:"exampleSentence,omitempty"`

	// ExampleTranslation is the English translation of the example.
	ExampleTranslation string `json:"exampleTranslation,omitempty" yaml:"exampleTranslation,omitempty"`
}

// Dataset is the on-disk shape of korean-words.json. A missing or null
// words list is treated as empty everywhere.
type Dataset struct {
	Words []Word `json:"words" yaml:"words"`
}

// PartOfSpeechOrder is the canonical display order for the nine
// recognized parts of speech. Parts of speech outside this list sort
// after it, in the order they first appear in the dataset.
var PartOfSpeechOrder = []string{
	"noun",
	"verb",
	"adjective",
	"adverb",
	"determiner",
	"pronoun",
	"numeral",
	"particle",
	"interjection",
}

// posKoreanNames maps the recognized parts of speech to their Korean
// grammatical terms.
var posKoreanNames = map[string]string{
	"noun":         "명사",
	"verb":         "동사",
	"adjective":    "형용사",
	"adverb":       "부사",
	"determiner":   "관형사",
	"pronoun":      "대명사",
	"numeral":      "수사",
	"particle":     "조사",
	"interjection": "감탄사",
}

// KoreanPOSName returns the Korean grammatical term for pos. Unrecognized
// parts of speech fall back to their own value.
func KoreanPOSName(pos string) string {
	if name, ok := posKoreanNames[pos]; ok {
		return name
	}
	return pos
}
