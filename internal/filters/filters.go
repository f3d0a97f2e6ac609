// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filters derives the cascading filter artifact from the word
// dataset. Words are grouped by part of speech and topic so the consumer
// app can offer dependent filter dropdowns: selecting a part of speech
// narrows the topic list to topics that actually occur under it.
package filters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/hanmaru/kovocab/pkg/types"
)

// GenerationDate is the date stamp written into the artifact. It is a
// fixed literal, not the wall clock: reruns on an unchanged dataset must
// produce byte-identical output.
const GenerationDate = "2025-08-05"

// Entry describes one part of speech in the artifact.
type Entry struct {
	// Topics is the sorted list of distinct topics observed under this
	// part of speech.
	Topics []string `json:"topics" yaml:"topics"`

	// EnglishName is the original lowercase part-of-speech value.
	EnglishName string `json:"english_name" yaml:"english_name"`

	// KoreanName is the Korean grammatical term, or EnglishName again
	// for unrecognized parts of speech.
	KoreanName string `json:"korean_name" yaml:"korean_name"`
}

// POSTable is an insertion-ordered mapping from display label
// ("Noun - 명사") to Entry. JSON and YAML object key order is not
// preserved by plain maps, and the artifact's consumer relies on the
// canonical-then-first-seen ordering, so the table marshals its keys
// itself.
type POSTable struct {
	labels  []string
	entries map[string]Entry
}

func (t *POSTable) add(label string, e Entry) {
	if t.entries == nil {
		t.entries = make(map[string]Entry)
	}
	if _, ok := t.entries[label]; !ok {
		t.labels = append(t.labels, label)
	}
	t.entries[label] = e
}

// Len returns the number of parts of speech in the table.
func (t *POSTable) Len() int { return len(t.labels) }

// Labels returns the display labels in artifact order.
func (t *POSTable) Labels() []string { return t.labels }

// Get returns the entry for a display label.
func (t *POSTable) Get(label string) (Entry, bool) {
	e, ok := t.entries[label]
	return e, ok
}

// MarshalJSON emits the table as a JSON object with keys in table order.
func (t *POSTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range t.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(t.entries[label])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits the table as a YAML mapping with keys in table order.
func (t *POSTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, label := range t.labels {
		var key yaml.Node
		key.SetString(label)
		var val yaml.Node
		if err := val.Encode(t.entries[label]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// Filters is the cascading filter artifact.
type Filters struct {
	PartsOfSpeech  *POSTable      `json:"parts_of_speech" yaml:"parts_of_speech"`
	TopicCounts    map[string]int `json:"topic_counts" yaml:"topic_counts"`
	GenerationDate string         `json:"generation_date" yaml:"generation_date"`
}

// Build aggregates the dataset into a filter artifact in a single pass.
// Words with an empty part of speech or topic contribute to nothing.
func Build(ds *types.Dataset) *Filters {
	topicCounts := make(map[string]int)
	topicsByPOS := make(map[string]map[string]struct{})
	var firstSeen []string

	for _, w := range ds.Words {
		if w.PartOfSpeech == "" || w.Topic == "" {
			continue
		}
		if _, ok := topicsByPOS[w.PartOfSpeech]; !ok {
			topicsByPOS[w.PartOfSpeech] = make(map[string]struct{})
			firstSeen = append(firstSeen, w.PartOfSpeech)
		}
		topicsByPOS[w.PartOfSpeech][w.Topic] = struct{}{}
		topicCounts[compositeKey(w.PartOfSpeech, w.Topic)]++
	}

	table := &POSTable{}
	for _, pos := range displayOrder(firstSeen) {
		topics := make([]string, 0, len(topicsByPOS[pos]))
		for topic := range topicsByPOS[pos] {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		koreanName := types.KoreanPOSName(pos)
		label := fmt.Sprintf("%s - %s", titleCase(pos), koreanName)
		table.add(label, Entry{
			Topics:      topics,
			EnglishName: pos,
			KoreanName:  koreanName,
		})
	}

	return &Filters{
		PartsOfSpeech:  table,
		TopicCounts:    topicCounts,
		GenerationDate: GenerationDate,
	}
}

// displayOrder arranges observed parts of speech canonically first, then
// any unrecognized ones in the order they first appeared in the dataset.
func displayOrder(firstSeen []string) []string {
	observed := make(map[string]bool, len(firstSeen))
	for _, pos := range firstSeen {
		observed[pos] = true
	}

	canonical := make(map[string]bool, len(types.PartOfSpeechOrder))
	var order []string
	for _, pos := range types.PartOfSpeechOrder {
		canonical[pos] = true
		if observed[pos] {
			order = append(order, pos)
		}
	}
	for _, pos := range firstSeen {
		if !canonical[pos] {
			order = append(order, pos)
		}
	}
	return order
}

// WordTotal returns the number of words counted under pos, summed over
// the topics listed for its entry.
func (f *Filters) WordTotal(e Entry) int {
	total := 0
	for _, topic := range e.Topics {
		total += f.TopicCounts[compositeKey(e.EnglishName, topic)]
	}
	return total
}

// Entry returns the entry whose english_name is pos.
func (f *Filters) Entry(pos string) (Entry, bool) {
	for _, label := range f.PartsOfSpeech.Labels() {
		e, _ := f.PartsOfSpeech.Get(label)
		if e.EnglishName == pos {
			return e, true
		}
	}
	return Entry{}, false
}

// Encode writes the artifact as indented JSON. Korean text is emitted
// literally, not as \u escapes.
func (f *Filters) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// WriteFile writes the artifact JSON to path.
func (f *Filters) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return fmt.Errorf("marshaling filters: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing filters: %w", err)
	}
	return nil
}

// EncodeYAML writes the artifact as YAML, preserving the table order.
func (f *Filters) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("marshaling filters: %w", err)
	}
	return enc.Close()
}

// compositeKey indexes topic counts by part of speech and topic.
func compositeKey(pos, topic string) string {
	return pos + ":" + topic
}

// titleCase uppercases the first letter of each word and lowercases the
// rest, so "noun" becomes "Noun" and "auxiliary verb" becomes
// "Auxiliary Verb".
func titleCase(s string) string {
	runes := []rune(s)
	inWord := false
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			inWord = false
			continue
		}
		if inWord {
			runes[i] = unicode.ToLower(r)
		} else {
			runes[i] = unicode.ToUpper(r)
			inWord = true
		}
	}
	return string(runes)
}
