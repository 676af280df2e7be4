package cmd

import (
	"fmt"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the profile's typing settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile's settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Stop()

		s, err := a.Lessons.Settings()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatSettings(a.Lessons.Profile(), s))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings; unspecified flags keep their value",
	Example: `  typey settings set --space-placement spaceBeforeOutput
  typey settings set --case-sensitive=false --blur`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

func init() {
	f := settingsSetCmd.Flags()
	f.String("space-placement", "", "spaceBeforeOutput, spaceAfterOutput or spaceOff (empty for the default)")
	f.Bool("blur", false, "blur the material while typing")
	f.Bool("case-sensitive", false, "require matching case")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Stop()

	s, err := a.Lessons.Settings()
	if err != nil {
		return err
	}
	if err := applySettingsFlags(cmd, &s); err != nil {
		return err
	}
	if err := a.Lessons.SaveSettings(s); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatSettings(a.Lessons.Profile(), s))
	return nil
}

// applySettingsFlags overlays the flags the user actually passed.
func applySettingsFlags(cmd *cobra.Command, s *ports.UserSettings) error {
	f := cmd.Flags()
	if f.Changed("space-placement") {
		name, _ := f.GetString("space-placement")
		p, err := ports.ParseSpacePlacement(name)
		if err != nil {
			return err
		}
		s.SpacePlacement = p
	}
	if f.Changed("blur") {
		s.BlurMaterial, _ = f.GetBool("blur")
	}
	if f.Changed("case-sensitive") {
		s.CaseSensitive, _ = f.GetBool("case-sensitive")
	}
	return nil
}
