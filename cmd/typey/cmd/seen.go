package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seenCategories []string

var seenCmd = &cobra.Command{
	Use:   "seen",
	Short: "Manage the words you have met",
}

var seenRecordCmd = &cobra.Command{
	Use:   "record <word>...",
	Short: "Count one completed typing of each word",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Stop()

		if err := a.Lessons.RecordTyped(args...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recorded %d word(s) for profile %s\n", len(args), a.Lessons.Profile())
		return nil
	},
}

var seenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List met words, most-typed first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := parseCategories(seenCategories)
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Stop()

		words, err := a.Lessons.MetWords(cats...)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatMetWords(words))
		return nil
	},
}

var seenResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget every met word (settings are kept)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Stop()

		if err := a.Lessons.ResetProgress(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "progress reset for profile %s\n", a.Lessons.Profile())
		return nil
	},
}

func init() {
	seenListCmd.Flags().StringSliceVar(&seenCategories, "category", nil, "only words in these categories: new, seen, retained")
	seenCmd.AddCommand(seenRecordCmd)
	seenCmd.AddCommand(seenListCmd)
	seenCmd.AddCommand(seenResetCmd)
}
