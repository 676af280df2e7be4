package material

import "github.com/jladdjr/typey-type/internal/ports"

// Display is the view model for the current phrase: the match result
// wrapped in the space glyphs the learner's space placement calls for.
// Padding is cosmetic and never moves the matched/unmatched boundary.
type Display struct {
	Before    string `json:"before"`
	Matched   string `json:"matched"`
	Unmatched string `json:"unmatched"`
	After     string `json:"after"`
	Blur      bool   `json:"blur"`
}

// Present pads r for rendering. A space is shown before the phrase unless
// spaces are output before words, and after it unless spaces are output
// after words.
func Present(r Result, user ports.UserSettings) Display {
	d := Display{
		Before:    " ",
		Matched:   r.Matched,
		Unmatched: r.Unmatched,
		After:     " ",
		Blur:      user.BlurMaterial,
	}
	if user.SpacePlacement == ports.SpaceBeforeOutput {
		d.Before = ""
	}
	if user.SpacePlacement == ports.SpaceAfterOutput {
		d.After = ""
	}
	return d
}

// Complete reports whether the typed text confirms the whole phrase.
func (d Display) Complete() bool {
	return d.Unmatched == ""
}

// String renders the display as plain text.
func (d Display) String() string {
	return d.Before + d.Matched + d.Unmatched + d.After
}
