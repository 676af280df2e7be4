package lesson

import (
	"strings"

	"github.com/jladdjr/typey-type/internal/domain/wordlist"
	"github.com/jladdjr/typey-type/internal/ports"
)

// ValidationState is the outcome of checking custom lesson material.
type ValidationState string

const (
	ValidationSuccess ValidationState = "success"
	ValidationFail    ValidationState = "fail"
)

// Messages shown to the learner when custom material is unusable.
const (
	MsgNeedsWord       = "Your material needs at least 1 word"
	MsgNeedsTab        = "Your material needs at least 1 “Tab” character"
	MsgNeedsWordAndTab = "Your material needs at least 1 word and 1 “Tab” character"
)

// Validation is the result of checking typed custom lesson material.
type Validation struct {
	State    ValidationState         `json:"state"`
	Messages []string                `json:"messages,omitempty"`
	Entries  []ports.DictionaryEntry `json:"entries"`
}

// Validate checks custom lesson material, where every line must carry its
// own stroke after a tab. Lines without a usable stroke are skipped; the
// material fails only when nothing usable remains.
func Validate(material string) Validation {
	if strings.TrimSpace(material) == "" {
		return fail(MsgNeedsWord)
	}
	if !strings.Contains(material, "\t") {
		return fail(MsgNeedsTab)
	}

	var entries []ports.DictionaryEntry
	for _, l := range wordlist.Parse(material) {
		if stroke, ok := l.Override(); ok {
			entries = append(entries, ports.DictionaryEntry{Phrase: l.Word, Stroke: stroke})
		}
	}
	if len(entries) == 0 {
		return fail(MsgNeedsWordAndTab)
	}
	return Validation{State: ValidationSuccess, Entries: entries}
}

func fail(msg string) Validation {
	return Validation{
		State:    ValidationFail,
		Messages: []string{msg},
		Entries:  []ports.DictionaryEntry{},
	}
}
