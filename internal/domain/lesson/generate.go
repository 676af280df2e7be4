// Package lesson compiles word lists into lesson dictionaries: ordered
// phrase/stroke pairs resolved against the global lookup dictionary.
//
// Everything here is a pure function of its arguments. Unresolvable words
// are dropped rather than reported, so a partially loaded dictionary simply
// produces a shorter lesson that grows on the next call.
package lesson

import (
	"strings"

	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/domain/wordlist"
	"github.com/jladdjr/typey-type/internal/ports"
)

// Option configures Generate and BuildFromHistory.
type Option func(*generator)

// WithTieBreak sets how one stroke is chosen when a word has several.
// Default: lookup.FirstRegistered.
func WithTieBreak(tb lookup.TieBreak) Option {
	return func(g *generator) {
		if tb != nil {
			g.tieBreak = tb
		}
	}
}

// WithPhraseFallback resolves a multi-word phrase missing from the
// dictionary word by word, joining the strokes with spaces. The phrase is
// still dropped unless every word resolves.
func WithPhraseFallback() Option {
	return func(g *generator) {
		g.phraseFallback = true
	}
}

type generator struct {
	dict           *lookup.Dictionary
	tieBreak       lookup.TieBreak
	phraseFallback bool
}

func newGenerator(dict *lookup.Dictionary, opts []Option) *generator {
	g := &generator{dict: dict, tieBreak: lookup.FirstRegistered}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate resolves each line to a dictionary entry, in input order.
// Lines with an override are emitted as given; other lines are looked up
// (exact, case-sensitive) and dropped when no stroke is found. dict may be
// nil or not yet ready.
func Generate(lines []wordlist.Line, dict *lookup.Dictionary, opts ...Option) []ports.DictionaryEntry {
	g := newGenerator(dict, opts)

	entries := make([]ports.DictionaryEntry, 0, len(lines))
	for _, l := range lines {
		if l.Word == "" {
			continue
		}
		if stroke, ok := l.Override(); ok {
			entries = append(entries, ports.DictionaryEntry{Phrase: l.Word, Stroke: stroke})
			continue
		}
		if stroke, ok := g.resolve(l.Word); ok {
			entries = append(entries, ports.DictionaryEntry{Phrase: l.Word, Stroke: stroke})
		}
	}
	return entries
}

func (g *generator) resolve(word string) (ports.Stroke, bool) {
	if stroke, ok := g.dict.Resolve(word, g.tieBreak); ok {
		return stroke, true
	}
	if !g.phraseFallback {
		return "", false
	}

	parts := strings.Fields(word)
	if len(parts) < 2 {
		return "", false
	}
	strokes := make([]string, 0, len(parts))
	for _, p := range parts {
		s, ok := g.dict.Resolve(p, g.tieBreak)
		if !ok {
			return "", false
		}
		strokes = append(strokes, string(s))
	}
	return ports.Stroke(strings.Join(strokes, " ")), true
}

// Render formats entries as the lesson text block: phrase, one tab, stroke,
// lines joined by "\n" with no trailing newline.
func Render(entries []ports.DictionaryEntry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Phrase)
		sb.WriteByte('\t')
		sb.WriteString(string(e.Stroke))
	}
	return sb.String()
}

// Compile parses raw word list text and generates its entries.
func Compile(raw string, dict *lookup.Dictionary, opts ...Option) []ports.DictionaryEntry {
	return Generate(wordlist.Parse(raw), dict, opts...)
}
