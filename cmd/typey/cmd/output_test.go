package cmd

import (
	"errors"
	"testing"

	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/domain/material"
	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/stretchr/testify/assert"
)

func TestFormatLessonSummary(t *testing.T) {
	l := ports.Lesson{
		Entries:           []ports.DictionaryEntry{{Phrase: "the", Stroke: "-T"}},
		DictionaryReady:   true,
		DictionaryVersion: 3,
		DictionarySize:    2,
	}
	out := formatLessonSummary(l)
	assert.Contains(t, out, "1 entries")
	assert.Contains(t, out, "dictionary v3 (2 words)")

	l.DictionaryReady = false
	assert.Contains(t, formatLessonSummary(l), "dictionary not loaded")
}

func TestFormatMatch(t *testing.T) {
	out := formatMatch(material.Display{Before: " ", Matched: "ste", Unmatched: "no", After: " "})
	assert.Contains(t, out, colorGreen+"ste"+colorReset)
	assert.Contains(t, out, "no·")
	assert.Contains(t, out, "2 to go")

	out = formatMatch(material.Display{Matched: "steno"})
	assert.Contains(t, out, "complete")
	assert.NotContains(t, out, "·")
}

func TestFormatMetWords(t *testing.T) {
	assert.Equal(t, "no met words\n", formatMetWords(nil))

	out := formatMetWords([]ports.MetWord{
		{Word: " the", Count: 42, Seq: 0},
		{Word: " steno", Count: 3, Seq: 1},
		{Word: " new", Count: 0, Seq: 2},
	})
	assert.Contains(t, out, "   42  the  ")
	assert.Contains(t, out, "steno")
	assert.Contains(t, out, "3 words")
	assert.Contains(t, out, "1 new │ 1 seen │ 1 retained")
}

func TestFormatProfiles(t *testing.T) {
	assert.Equal(t, "no profiles yet\n", formatProfiles(nil, "default"))

	out := formatProfiles([]string{"default", "practice"}, "practice")
	assert.Contains(t, out, "  default\n")
	assert.Contains(t, out, "* "+colorGreen+"practice")
}

func TestFormatSettings(t *testing.T) {
	out := formatSettings("alice", ports.DefaultUserSettings())
	assert.Contains(t, out, "profile alice")
	assert.Contains(t, out, "Space placement:  default")

	out = formatSettings("alice", ports.UserSettings{SpacePlacement: ports.SpaceOff, CaseSensitive: true})
	assert.Contains(t, out, "Space placement:  spaceOff")
	assert.Contains(t, out, "Case sensitive:   true")
}

func TestFormatDictInfo(t *testing.T) {
	sources := []ports.DictionarySource{
		{Name: "main", Path: "/plover/main.json"},
		{URL: "https://example.com/top-10000.tsv"},
	}
	dict := lookup.FromMap(map[string][]string{"the": {"-T"}, "and": {"SKP"}})

	out := formatDictInfo(sources, dict, nil)
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "2 words")
	assert.Contains(t, out, "/plover/main.json")
	assert.Contains(t, out, "[plover]")
	assert.Contains(t, out, "top-10000.tsv")
	assert.Contains(t, out, "[tsv]")
	assert.NotContains(t, out, "last error")

	out = formatDictInfo(nil, nil, errors.New("fetch main: not found"))
	assert.Contains(t, out, "not loaded")
	assert.Contains(t, out, "no dictionaries configured")
	assert.Contains(t, out, "fetch main: not found")
}

func TestFormatLookup(t *testing.T) {
	out := formatLookup("the", []lookup.Candidate{
		{Stroke: "-T", Source: "main"},
		{Stroke: "TH-E"},
	}, nil)
	assert.Contains(t, out, "2 stroke(s)")
	assert.Contains(t, out, "1. "+colorGreen+"-T")
	assert.Contains(t, out, "main")

	out = formatLookup("teh", nil, []lookup.Suggestion{{Word: "the", Score: 0.91}})
	assert.Contains(t, out, `"teh" not found`)
	assert.Contains(t, out, "did you mean")
	assert.Contains(t, out, "(0.91)")
}

func TestFormatValidation(t *testing.T) {
	out := formatValidation(lesson.Validate("the\t-T\nand\tSKP"))
	assert.Contains(t, out, "2 entries")
	assert.Contains(t, out, "the\t-T\n")

	out = formatValidation(lesson.Validate(""))
	assert.Contains(t, out, lesson.MsgNeedsWord)
}
