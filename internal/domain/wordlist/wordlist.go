// Package wordlist parses freeform word lists: one word or phrase per line,
// optionally followed by a tab and an explicit stroke.
package wordlist

import (
	"strings"
	"unicode"

	"github.com/jladdjr/typey-type/internal/ports"
)

// Line is one parsed word list entry. It is either plain, in which case the
// stroke comes from dictionary lookup, or it carries an explicit stroke
// override that bypasses lookup.
type Line struct {
	Word   string
	stroke ports.Stroke
}

// Plain returns a line without a stroke override.
func Plain(word string) Line {
	return Line{Word: word}
}

// WithOverride returns a line whose stroke is given explicitly.
func WithOverride(word string, stroke ports.Stroke) Line {
	return Line{Word: word, stroke: stroke}
}

// Override returns the explicit stroke, if the line has one.
func (l Line) Override() (ports.Stroke, bool) {
	return l.stroke, l.stroke != ""
}

func (l Line) String() string {
	if l.stroke == "" {
		return l.Word
	}
	return l.Word + "\t" + string(l.stroke)
}

// Parse splits raw text into lines, in input order.
//
//   - Any of \n, \r\n or \r ends a line.
//   - Blank lines and lines without printable content are dropped.
//   - With a tab, the text before the first tab is the word and the next
//     tab-separated field is the stroke override. Further columns are ignored.
//   - Words and strokes are trimmed; a line whose word trims to nothing is
//     dropped, an empty stroke leaves the line plain.
//
// Parse never fails: any input, including "", yields a (possibly empty) slice.
func Parse(raw string) []Line {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' })

	lines := make([]Line, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimRightFunc(f, unicode.IsSpace)
		if !hasPrintable(f) {
			continue
		}

		word, rest, hasTab := strings.Cut(f, "\t")
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if !hasTab {
			lines = append(lines, Plain(word))
			continue
		}

		stroke, _, _ := strings.Cut(rest, "\t")
		lines = append(lines, WithOverride(word, ports.Stroke(strings.TrimSpace(stroke))))
	}
	return lines
}

// Join renders words as parser-compatible text: trimmed, one per line,
// empty words skipped, no trailing newline.
func Join(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(w)
	}
	return sb.String()
}

func hasPrintable(s string) bool {
	for _, r := range s {
		if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
