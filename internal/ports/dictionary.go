package ports

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Stroke is one or more steno chords as written in a dictionary, e.g.
// "KP-PL" or "KP-PLS/TP-PL". Its internal structure is never interpreted
// beyond equality and display.
type Stroke string

func (s Stroke) String() string { return string(s) }

// DictionaryEntry is one row of a lesson dictionary. Phrase is non-empty and
// trimmed; an entry is only ever built with a non-empty Stroke.
type DictionaryEntry struct {
	Phrase string `json:"phrase"`
	Stroke Stroke `json:"stroke"`
}

// Dictionary file formats understood by the loader.
const (
	FormatPlover = "plover" // JSON object, stroke -> translation
	FormatTSV    = "tsv"    // phrase<TAB>stroke per line
)

// DictionarySource describes one dictionary to merge into the global lookup
// dictionary. Exactly one of Path or URL is set. Sources are merged in the
// order they are configured, which decides stroke precedence.
type DictionarySource struct {
	Name   string `mapstructure:"name" yaml:"name" json:"name"`
	Path   string `mapstructure:"path" yaml:"path,omitempty" json:"path,omitempty"`
	URL    string `mapstructure:"url" yaml:"url,omitempty" json:"url,omitempty"`
	Format string `mapstructure:"format" yaml:"format,omitempty" json:"format,omitempty"`
}

// Validate checks that the source names exactly one location and a known format.
func (s DictionarySource) Validate() error {
	if (s.Path == "") == (s.URL == "") {
		return fmt.Errorf("%w: %q needs exactly one of path or url", ErrInvalidSource, s.Label())
	}
	switch s.ResolvedFormat() {
	case FormatPlover, FormatTSV:
		return nil
	default:
		return fmt.Errorf("%w: %q has unknown format %q", ErrInvalidSource, s.Label(), s.Format)
	}
}

// Label is the name used in logs and candidate provenance.
func (s DictionarySource) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Path != "" {
		return filepath.Base(s.Path)
	}
	return path.Base(s.URL)
}

// ResolvedFormat returns Format, or infers it from the file extension.
func (s DictionarySource) ResolvedFormat() string {
	if s.Format != "" {
		return strings.ToLower(s.Format)
	}
	loc := s.Path
	if loc == "" {
		loc = s.URL
	}
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}
	if strings.EqualFold(path.Ext(loc), ".json") {
		return FormatPlover
	}
	return FormatTSV
}

// DictionaryFetcher retrieves the raw bytes of a dictionary source.
type DictionaryFetcher interface {
	Fetch(ctx context.Context, src DictionarySource) ([]byte, error)
}
