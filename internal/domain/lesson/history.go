package lesson

import (
	"strings"

	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/domain/wordlist"
	"github.com/jladdjr/typey-type/internal/ports"
)

// WordsFromHistory projects met words to their trimmed text, keeping the
// history's order. No deduplication is done here.
func WordsFromHistory(metWords []ports.MetWord) []string {
	words := make([]string, 0, len(metWords))
	for _, w := range metWords {
		if t := strings.TrimSpace(w.Word); t != "" {
			words = append(words, t)
		}
	}
	return words
}

// BuildFromHistory turns a learner's met words into a lesson dictionary for
// revising seen words. Idempotent: unchanged arguments give equal output.
func BuildFromHistory(metWords []ports.MetWord, dict *lookup.Dictionary, opts ...Option) []ports.DictionaryEntry {
	return Compile(wordlist.Join(WordsFromHistory(metWords)), dict, opts...)
}
