// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filters

import (
	"fmt"
	"io"

	"github.com/hanmaru/kovocab/pkg/types"
)

// WriteReport prints the summary statistics for a filter set: overall
// totals, per-part-of-speech word and topic counts, and the numeral
// breakdown. The numeral total counts every numeral record, including
// ones skipped for having no topic.
func WriteReport(w io.Writer, f *Filters, ds *types.Dataset) {
	fmt.Fprintf(w, "Found %d parts of speech\n", f.PartsOfSpeech.Len())
	fmt.Fprintf(w, "Found %d part-of-speech:topic combinations\n", len(f.TopicCounts))

	fmt.Fprintf(w, "\nParts of speech:\n")
	for _, label := range f.PartsOfSpeech.Labels() {
		e, _ := f.PartsOfSpeech.Get(label)
		fmt.Fprintf(w, "  %s: %d words, %d topics\n",
			titleCase(e.EnglishName), f.WordTotal(e), len(e.Topics))
	}

	numerals := 0
	for _, word := range ds.Words {
		if word.PartOfSpeech == "numeral" {
			numerals++
		}
	}

	var topics []string
	if e, ok := f.Entry("numeral"); ok {
		topics = e.Topics
	}

	fmt.Fprintf(w, "\nNumeral system:\n")
	fmt.Fprintf(w, "  Total numerals: %d\n", numerals)
	fmt.Fprintf(w, "  Numeral topics: %d\n", len(topics))
	for _, topic := range topics {
		fmt.Fprintf(w, "  - %s: %d numerals\n", topic, f.TopicCounts[compositeKey("numeral", topic)])
	}
}
