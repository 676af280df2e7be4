package cmd

import (
	"testing"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "set"}
	f := c.Flags()
	f.String("space-placement", "", "")
	f.Bool("blur", false, "")
	f.Bool("case-sensitive", false, "")
	require.NoError(t, f.Parse(args))
	return c
}

func TestApplySettingsFlags_OnlyChanged(t *testing.T) {
	s := ports.UserSettings{SpacePlacement: ports.SpaceAfterOutput, BlurMaterial: true, CaseSensitive: true}

	c := newSettingsFlagsCmd(t, "--case-sensitive=false")
	require.NoError(t, applySettingsFlags(c, &s))

	assert.Equal(t, ports.SpaceAfterOutput, s.SpacePlacement)
	assert.True(t, s.BlurMaterial)
	assert.False(t, s.CaseSensitive)
}

func TestApplySettingsFlags_Placement(t *testing.T) {
	s := ports.DefaultUserSettings()

	c := newSettingsFlagsCmd(t, "--space-placement", "spaceBeforeOutput", "--blur")
	require.NoError(t, applySettingsFlags(c, &s))
	assert.Equal(t, ports.SpaceBeforeOutput, s.SpacePlacement)
	assert.True(t, s.BlurMaterial)

	c = newSettingsFlagsCmd(t, "--space-placement", "sideways")
	err := applySettingsFlags(c, &s)
	assert.ErrorIs(t, err, ports.ErrInvalidSettings)
}

func TestParseCategories(t *testing.T) {
	cats, err := parseCategories([]string{"new", "Retained"})
	require.NoError(t, err)
	assert.Equal(t, []ports.Category{ports.CategoryNew, ports.CategoryRetained}, cats)

	_, err = parseCategories([]string{"forgotten"})
	assert.Error(t, err)
}
