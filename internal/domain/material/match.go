// Package material compares what a learner has typed against the phrase
// they are expected to type, splitting the phrase into the part already
// confirmed and the part still to come.
//
// Match runs on every keystroke, so it is a single forward pass over the
// expected phrase with no allocation beyond the two result slices. It only
// ever matches prefixes; it does not align edits in the middle of a phrase.
package material

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jladdjr/typey-type/internal/ports"
)

// Settings are lesson-level matching options.
type Settings struct {
	// IgnoredChars are characters of the expected phrase the learner may
	// skip, such as punctuation in a lesson drilling words only.
	IgnoredChars string `json:"ignored_chars,omitempty"`
}

// Result splits an expected phrase. Matched+Unmatched always equals the
// expected phrase.
type Result struct {
	Matched   string `json:"matched"`
	Unmatched string `json:"unmatched"`
}

// Match returns the longest prefix of expected confirmed by actual.
//
// Comparison is case-insensitive unless user.CaseSensitive. Ignored
// characters are skipped in expected only while more typed text follows,
// and with SpaceOff typed spaces the phrase does not contain are skipped.
// Typed text past the end of expected belongs to the next phrase and is
// not represented.
func Match(expected, actual string, settings Settings, user ports.UserSettings) Result {
	i, j := 0, 0
	for i < len(expected) && j < len(actual) {
		er, es := utf8.DecodeRuneInString(expected[i:])
		ar, as := utf8.DecodeRuneInString(actual[j:])

		switch {
		case sameRune(er, ar, user.CaseSensitive) && (er != utf8.RuneError || expected[i:i+es] == actual[j:j+as]):
			i += es
			j += as
		case settings.IgnoredChars != "" && strings.ContainsRune(settings.IgnoredChars, er):
			i += es
		case user.SpacePlacement == ports.SpaceOff && ar == ' ':
			j += as
		default:
			return Result{Matched: expected[:i], Unmatched: expected[i:]}
		}
	}
	return Result{Matched: expected[:i], Unmatched: expected[i:]}
}

// sameRune compares decoded runes. RuneError stands for any invalid byte,
// so callers compare the raw bytes for it.
func sameRune(a, b rune, caseSensitive bool) bool {
	if a == b {
		return true
	}
	if caseSensitive {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}
