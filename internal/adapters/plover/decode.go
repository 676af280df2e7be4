// Package plover decodes steno dictionaries into a lookup Builder.
//
// Two formats are understood. Plover JSON maps outlines to translations
// ({"KP-PL": "example"}) and is inverted here to word -> outlines, keeping
// document order so the first outline listed for a word wins. TSV is the
// lesson format itself: one "phrase<TAB>stroke" pair per line.
package plover

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/ports"
)

// maxLineBytes bounds a single TSV line.
const maxLineBytes = 1 << 20

// Stats holds decoder statistics for logging.
type Stats struct {
	Entries  int // pairs read from the source
	Added    int // pairs new to the builder
	Commands int // formatting-only translations skipped
	Skipped  int // malformed or empty lines
}

// Load decodes r in the given format and appends its pairs to b under the
// source label. Pairs already present in b are counted but not re-added.
func Load(r io.Reader, format, source string, b *lookup.Builder) (Stats, error) {
	switch format {
	case ports.FormatPlover:
		return loadJSON(r, source, b)
	case ports.FormatTSV:
		return loadTSV(r, source, b)
	default:
		return Stats{}, fmt.Errorf("%w: unknown dictionary format %q", ports.ErrInvalidSource, format)
	}
}

// loadJSON walks the top-level object token by token; unmarshalling into a
// map would lose the order outlines appear in.
func loadJSON(r io.Reader, source string, b *lookup.Builder) (Stats, error) {
	var st Stats
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return st, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return st, fmt.Errorf("plover json: %w", err)
		}
		outline, ok := tok.(string)
		if !ok {
			return st, fmt.Errorf("%w: plover json: expected outline key, got %v", ports.ErrInvalidSource, tok)
		}
		var translation string
		if err := dec.Decode(&translation); err != nil {
			return st, fmt.Errorf("%w: plover json: translation for %q: %v", ports.ErrInvalidSource, outline, err)
		}

		st.Entries++
		if IsCommand(translation) {
			st.Commands++
			continue
		}
		if outline == "" {
			st.Skipped++
			continue
		}
		if b.Add(translation, ports.Stroke(outline), source) {
			st.Added++
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return st, err
	}
	return st, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: plover json: unexpected end of input", ports.ErrInvalidSource)
		}
		return fmt.Errorf("%w: plover json: %v", ports.ErrInvalidSource, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: plover json: expected %q, got %v", ports.ErrInvalidSource, want, tok)
	}
	return nil
}

func loadTSV(r io.Reader, source string, b *lookup.Builder) (Stats, error) {
	var st Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		phrase, stroke, ok := strings.Cut(line, "\t")
		if !ok || phrase == "" {
			st.Skipped++
			continue
		}
		stroke, _, _ = strings.Cut(stroke, "\t")
		stroke = strings.TrimSpace(stroke)
		if stroke == "" {
			st.Skipped++
			continue
		}
		st.Entries++
		if b.Add(phrase, ports.Stroke(stroke), source) {
			st.Added++
		}
	}
	if err := scanner.Err(); err != nil {
		return st, fmt.Errorf("tsv: %w", err)
	}
	return st, nil
}
