package lookup

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// defaultSuggestThreshold is the minimum Jaro-Winkler similarity for a word
// to be offered as a suggestion.
const defaultSuggestThreshold = 0.85

// Suggestion is a dictionary word that resembles a missing one.
type Suggestion struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Suggest returns up to max dictionary words resembling word, best first.
// Comparison is case-insensitive Jaro-Winkler. Used for diagnostics when a
// lookup misses; lesson generation never consults it.
func (d *Dictionary) Suggest(word string, max int) []Suggestion {
	query := strings.ToLower(strings.TrimSpace(word))
	if query == "" || max <= 0 || d.Size() == 0 {
		return nil
	}

	var out []Suggestion
	d.Range(func(w string, _ []Candidate) bool {
		if w == word {
			return true
		}
		score := matchr.JaroWinkler(query, strings.ToLower(w), false)
		if score >= defaultSuggestThreshold {
			out = append(out, Suggestion{Word: w, Score: score})
		}
		return true
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}
