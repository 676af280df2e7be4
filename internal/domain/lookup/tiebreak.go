package lookup

import (
	"fmt"
	"strings"
)

// TieBreak picks the canonical candidate among the strokes registered for
// one word. cands is never empty and is in registration order.
type TieBreak func(cands []Candidate) Candidate

// FirstRegistered picks whichever stroke was registered first. Dictionaries
// list a word's base outline before the briefs layered over it, so practice
// material shows the base form.
func FirstRegistered(cands []Candidate) Candidate {
	return cands[0]
}

// FewestStrokes picks the outline with the fewest chords, then the shortest
// text, then the earliest registration.
func FewestStrokes(cands []Candidate) Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if shorterOutline(c.Stroke.String(), best.Stroke.String()) {
			best = c
		}
	}
	return best
}

func shorterOutline(a, b string) bool {
	ca, cb := chordCount(a), chordCount(b)
	if ca != cb {
		return ca < cb
	}
	return len(a) < len(b)
}

// chordCount counts chords separated by "/" or a space.
func chordCount(outline string) int {
	return len(strings.FieldsFunc(outline, func(r rune) bool { return r == '/' || r == ' ' }))
}

// Tie-break names accepted in configuration.
const (
	TieBreakFirst         = "first"
	TieBreakFewestStrokes = "fewest_strokes"
)

// ParseTieBreak maps a configuration name to a TieBreak. Empty means first.
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", TieBreakFirst:
		return FirstRegistered, nil
	case TieBreakFewestStrokes:
		return FewestStrokes, nil
	default:
		return nil, fmt.Errorf("unknown tie break %q (want %s or %s)", name, TieBreakFirst, TieBreakFewestStrokes)
	}
}
