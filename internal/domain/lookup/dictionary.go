// Package lookup implements the global lookup dictionary: an immutable,
// versioned snapshot that maps written words and phrases to the strokes
// producing them, kept in the order the strokes were registered.
//
// Snapshots are built with a Builder. Publishing a snapshot never copies
// candidate slices: the Builder only ever appends, so a published slice
// header keeps seeing exactly the candidates it had when it was taken.
package lookup

import (
	"maps"
	"slices"
	"sync/atomic"

	"github.com/jladdjr/typey-type/internal/ports"
)

// MinUsableSize is the word count below which a dictionary counts as not
// yet loaded.
const MinUsableSize = 2

// versions hands out snapshot versions. Process-wide so that a reload with a
// fresh Builder still publishes a larger version than anything before it.
var versions atomic.Uint64

// Candidate is one stroke registered for a word, with the name of the
// dictionary that contributed it.
type Candidate struct {
	Stroke ports.Stroke `json:"stroke"`
	Source string       `json:"source,omitempty"`
}

// Dictionary is a read-only snapshot. The zero value and nil are both valid
// empty dictionaries. Safe for concurrent use.
type Dictionary struct {
	words   map[string][]Candidate
	version uint64
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Version returns the readiness counter of this snapshot. Later snapshots
// always carry larger versions; 0 means never populated.
func (d *Dictionary) Version() uint64 {
	if d == nil {
		return 0
	}
	return d.version
}

// Ready reports whether the dictionary is populated enough to be useful.
func (d *Dictionary) Ready() bool {
	return d.Size() >= MinUsableSize
}

// Lookup returns the candidates for word in registration order.
// Matching is exact and case-sensitive. Returns nil when absent.
func (d *Dictionary) Lookup(word string) []Candidate {
	if d == nil {
		return nil
	}
	return slices.Clone(d.words[word])
}

// Strokes returns just the strokes for word in registration order.
func (d *Dictionary) Strokes(word string) []ports.Stroke {
	if d == nil {
		return nil
	}
	cands := d.words[word]
	if len(cands) == 0 {
		return nil
	}
	out := make([]ports.Stroke, len(cands))
	for i, c := range cands {
		out[i] = c.Stroke
	}
	return out
}

// Resolve picks the canonical stroke for word using tb.
// A nil tb means FirstRegistered.
func (d *Dictionary) Resolve(word string, tb TieBreak) (ports.Stroke, bool) {
	if d == nil {
		return "", false
	}
	cands := d.words[word]
	if len(cands) == 0 {
		return "", false
	}
	if tb == nil {
		tb = FirstRegistered
	}
	c := tb(cands)
	return c.Stroke, c.Stroke != ""
}

// Range calls fn for every word until fn returns false. Order is unspecified.
func (d *Dictionary) Range(fn func(word string, cands []Candidate) bool) {
	if d == nil {
		return
	}
	for w, c := range d.words {
		if !fn(w, slices.Clip(c)) {
			return
		}
	}
}

// FromMap builds a snapshot from word -> strokes. Stroke order per word is
// kept as given. Intended for fixtures and small in-memory dictionaries.
func FromMap(m map[string][]string) *Dictionary {
	b := NewBuilder()
	for _, w := range slices.Sorted(maps.Keys(m)) {
		for _, s := range m[w] {
			b.Add(w, ports.Stroke(s), "")
		}
	}
	return b.Snapshot()
}

// Builder accumulates candidates. Not safe for concurrent use; the caller
// serializes Add and Snapshot.
type Builder struct {
	words map[string][]Candidate
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{words: make(map[string][]Candidate)}
}

// Add registers stroke for word. Empty words or strokes and repeats of an
// already registered (word, stroke) pair are ignored; the first registration
// keeps its position. Reports whether the candidate was added.
func (b *Builder) Add(word string, stroke ports.Stroke, source string) bool {
	if word == "" || stroke == "" {
		return false
	}
	existing := b.words[word]
	for _, c := range existing {
		if c.Stroke == stroke {
			return false
		}
	}
	b.words[word] = append(existing, Candidate{Stroke: stroke, Source: source})
	return true
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int {
	return len(b.words)
}

// Snapshot publishes the current contents as an immutable Dictionary.
// The Builder stays usable; later Adds are invisible to this snapshot.
func (b *Builder) Snapshot() *Dictionary {
	return &Dictionary{
		words:   maps.Clone(b.words),
		version: versions.Add(1),
	}
}
