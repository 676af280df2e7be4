// Package progress tracks the words a learner has met and how often they
// have typed each one.
//
// A word's category follows from its count alone: zero is new, fewer than
// ports.RetainedThreshold is seen, and at or above it is retained. Words
// are keyed exactly as typed, so " the" and "the" are distinct entries;
// the lesson builder trims when projecting.
package progress

import (
	"slices"
	"strings"

	"github.com/jladdjr/typey-type/internal/ports"
)

// Tracker holds one profile's met words in memory.
// Thread safety: NOT safe for concurrent use. The caller must serialize access.
type Tracker struct {
	words   map[string]*ports.MetWord
	nextSeq uint64
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{words: make(map[string]*ports.MetWord)}
}

// NewFromWords rebuilds a Tracker from persisted history. Duplicate words
// are merged, keeping the earliest Seq and summing counts.
func NewFromWords(words []ports.MetWord) *Tracker {
	t := New()
	for _, w := range words {
		if w.Word == "" {
			continue
		}
		if cur, ok := t.words[w.Word]; ok {
			cur.Count += w.Count
			cur.Seq = min(cur.Seq, w.Seq)
		} else {
			mw := w
			t.words[w.Word] = &mw
		}
		if w.Seq >= t.nextSeq {
			t.nextSeq = w.Seq + 1
		}
	}
	return t
}

// Meet registers a word as shown without counting a typing of it.
// Returns false if the word was already known.
func (t *Tracker) Meet(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := t.words[word]; ok {
		return false
	}
	t.words[word] = &ports.MetWord{Word: word, Seq: t.nextSeq}
	t.nextSeq++
	return true
}

// Record counts one completed typing of each word, in order.
func (t *Tracker) Record(typed ...string) {
	for _, word := range typed {
		if word == "" {
			continue
		}
		t.Meet(word)
		t.words[word].Count++
	}
}

// Len returns the number of distinct met words.
func (t *Tracker) Len() int {
	return len(t.words)
}

// Get returns the entry for word as typed.
func (t *Tracker) Get(word string) (ports.MetWord, bool) {
	w, ok := t.words[word]
	if !ok {
		return ports.MetWord{}, false
	}
	return *w, true
}

// Words returns every met word in history order.
func (t *Tracker) Words() []ports.MetWord {
	out := make([]ports.MetWord, 0, len(t.words))
	for _, w := range t.words {
		out = append(out, *w)
	}
	Sort(out)
	return out
}

// Sort orders words by count descending, ties broken by first-met order.
func Sort(words []ports.MetWord) {
	slices.SortFunc(words, func(a, b ports.MetWord) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return strings.Compare(a.Word, b.Word)
	})
}

// Filter keeps the words in any of the given categories, preserving order.
// With no categories every word is kept.
func Filter(words []ports.MetWord, categories ...ports.Category) []ports.MetWord {
	if len(categories) == 0 {
		return slices.Clone(words)
	}
	var out []ports.MetWord
	for _, w := range words {
		if slices.Contains(categories, w.Category()) {
			out = append(out, w)
		}
	}
	return out
}

// Summary counts words per category.
type Summary struct {
	New      int `json:"new"`
	Seen     int `json:"seen"`
	Retained int `json:"retained"`
}

// Summarize tallies words by category.
func Summarize(words []ports.MetWord) Summary {
	var s Summary
	for _, w := range words {
		switch w.Category() {
		case ports.CategoryNew:
			s.New++
		case ports.CategorySeen:
			s.Seen++
		case ports.CategoryRetained:
			s.Retained++
		}
	}
	return s
}
