package cmd

import (
	"fmt"
	"strings"

	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/jladdjr/typey-type/internal/domain/material"
	"github.com/jladdjr/typey-type/internal/domain/progress"
	"github.com/jladdjr/typey-type/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// formatLessonSummary is the one-line stderr footer after a lesson:
//
//	⚡ 12 entries │ dictionary v3 (143256 words)
func formatLessonSummary(l ports.Lesson) string {
	dict := fmt.Sprintf("dictionary v%d (%d words)", l.DictionaryVersion, l.DictionarySize)
	if !l.DictionaryReady {
		dict = fmt.Sprintf("%sdictionary not loaded%s", colorYellow, colorReset)
	}
	return fmt.Sprintf("%s⚡ %d entries%s │ %s\n", colorBold, len(l.Entries), colorReset, dict)
}

// formatMatch renders the padded phrase with the matched part in green and
// the rest in gray. Visible "·" marks stand in for the padding spaces.
func formatMatch(d material.Display) string {
	var sb strings.Builder
	sb.WriteString(colorGray)
	sb.WriteString(strings.ReplaceAll(d.Before, " ", "·"))
	sb.WriteString(colorReset)
	sb.WriteString(colorGreen)
	sb.WriteString(d.Matched)
	sb.WriteString(colorReset)
	sb.WriteString(colorGray)
	sb.WriteString(d.Unmatched)
	sb.WriteString(strings.ReplaceAll(d.After, " ", "·"))
	sb.WriteString(colorReset)
	if d.Complete() {
		fmt.Fprintf(&sb, "  %s✓ complete%s", colorGreen, colorReset)
	} else {
		fmt.Fprintf(&sb, "  %s%d to go%s", colorYellow, len([]rune(d.Unmatched)), colorReset)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// formatMetWords lists words most-typed first, followed by the totals:
//
//	   42  the        retained
//	    3  steno      seen
//	⚡ 2 words │ 0 new │ 1 seen │ 1 retained
func formatMetWords(words []ports.MetWord) string {
	if len(words) == 0 {
		return "no met words\n"
	}

	width := 0
	for _, w := range words {
		if n := len(strings.TrimSpace(w.Word)); n > width {
			width = n
		}
	}

	var sb strings.Builder
	for _, w := range words {
		fmt.Fprintf(&sb, "  %5d  %-*s  %s\n", w.Count, width, strings.TrimSpace(w.Word), categoryLabel(w.Category()))
	}
	s := progress.Summarize(words)
	fmt.Fprintf(&sb, "%s⚡ %d words%s │ %d new │ %d seen │ %d retained\n",
		colorBold, len(words), colorReset, s.New, s.Seen, s.Retained)
	return sb.String()
}

func categoryLabel(c ports.Category) string {
	switch c {
	case ports.CategoryRetained:
		return colorGreen + string(c) + colorReset
	case ports.CategorySeen:
		return colorCyan + string(c) + colorReset
	default:
		return colorGray + string(c) + colorReset
	}
}

// formatProfiles lists profile names, marking the active one with "*".
func formatProfiles(names []string, active string) string {
	if len(names) == 0 {
		return "no profiles yet\n"
	}
	var sb strings.Builder
	for _, n := range names {
		if n == active {
			fmt.Fprintf(&sb, "* %s%s%s\n", colorGreen, n, colorReset)
			continue
		}
		fmt.Fprintf(&sb, "  %s\n", n)
	}
	return sb.String()
}

func formatSettings(profile string, s ports.UserSettings) string {
	placement := string(s.SpacePlacement)
	if placement == "" {
		placement = "default"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s⚡ settings%s │ profile %s\n", colorBold, colorReset, profile)
	fmt.Fprintf(&sb, "  Space placement:  %s\n", placement)
	fmt.Fprintf(&sb, "  Blur material:    %t\n", s.BlurMaterial)
	fmt.Fprintf(&sb, "  Case sensitive:   %t\n", s.CaseSensitive)
	return sb.String()
}

// formatDictInfo reports the merged snapshot and the sources behind it.
func formatDictInfo(sources []ports.DictionarySource, dict *lookup.Dictionary, lastErr error) string {
	var sb strings.Builder

	status := fmt.Sprintf("%s✓ ready%s", colorGreen, colorReset)
	if !dict.Ready() {
		status = fmt.Sprintf("%s✗ not loaded%s", colorYellow, colorReset)
	}
	fmt.Fprintf(&sb, "%s⚡ dictionary%s │ %s │ v%d │ %d words\n",
		colorBold, colorReset, status, dict.Version(), dict.Size())

	if len(sources) == 0 {
		sb.WriteString("  no dictionaries configured (add some with: typey config init)\n")
	}
	for i, src := range sources {
		loc := src.Path
		if loc == "" {
			loc = src.URL
		}
		fmt.Fprintf(&sb, "  %d. %s%s%s  %s  %s[%s]%s\n",
			i+1, colorCyan, src.Label(), colorReset, loc, colorGray, src.ResolvedFormat(), colorReset)
	}

	if lastErr != nil {
		fmt.Fprintf(&sb, "  %slast error:%s %v\n", colorRed, colorReset, lastErr)
	}
	return sb.String()
}

// formatLookup shows a word's strokes in registration order, or close
// spellings when it has none.
func formatLookup(word string, cands []lookup.Candidate, suggestions []lookup.Suggestion) string {
	var sb strings.Builder
	if len(cands) == 0 {
		fmt.Fprintf(&sb, "%s✗ %q not found%s\n", colorYellow, word, colorReset)
		if len(suggestions) > 0 {
			sb.WriteString("  did you mean:\n")
			for _, s := range suggestions {
				fmt.Fprintf(&sb, "    %s  %s(%.2f)%s\n", s.Word, colorGray, s.Score, colorReset)
			}
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s⚡ %s%s │ %d stroke(s)\n", colorBold, word, colorReset, len(cands))
	for i, c := range cands {
		fmt.Fprintf(&sb, "  %d. %s%s%s", i+1, colorGreen, c.Stroke, colorReset)
		if c.Source != "" {
			fmt.Fprintf(&sb, "  %s%s%s", colorGray, c.Source, colorReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatValidation(v lesson.Validation) string {
	var sb strings.Builder
	if v.State != lesson.ValidationSuccess {
		for _, m := range v.Messages {
			fmt.Fprintf(&sb, "%s✗%s %s\n", colorRed, colorReset, m)
		}
		return sb.String()
	}
	fmt.Fprintf(&sb, "%s✓%s %d entries\n", colorGreen, colorReset, len(v.Entries))
	for _, e := range v.Entries {
		fmt.Fprintf(&sb, "  %s\t%s\n", e.Phrase, e.Stroke)
	}
	return sb.String()
}
