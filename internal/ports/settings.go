package ports

import "fmt"

// SpacePlacement controls where the learner's steno setup outputs spaces
// relative to each word.
type SpacePlacement string

const (
	SpaceBeforeOutput SpacePlacement = "spaceBeforeOutput"
	SpaceAfterOutput  SpacePlacement = "spaceAfterOutput"
	SpaceOff          SpacePlacement = "spaceOff"
	SpaceDefault      SpacePlacement = ""
)

// Valid reports whether p is a recognised placement.
func (p SpacePlacement) Valid() bool {
	switch p {
	case SpaceBeforeOutput, SpaceAfterOutput, SpaceOff, SpaceDefault:
		return true
	}
	return false
}

// ParseSpacePlacement accepts the placement names used in settings files.
func ParseSpacePlacement(s string) (SpacePlacement, error) {
	p := SpacePlacement(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: space placement %q", ErrInvalidSettings, s)
	}
	return p, nil
}

// UserSettings are the learner's display and matching preferences.
// BlurMaterial is purely cosmetic and never affects matching.
type UserSettings struct {
	SpacePlacement SpacePlacement `json:"space_placement" yaml:"space_placement"`
	BlurMaterial   bool           `json:"blur_material" yaml:"blur_material"`
	CaseSensitive  bool           `json:"case_sensitive" yaml:"case_sensitive"`
}

// DefaultUserSettings returns the settings of a fresh profile.
func DefaultUserSettings() UserSettings {
	return UserSettings{SpacePlacement: SpaceDefault}
}
