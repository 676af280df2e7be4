package cmd

import (
	"fmt"

	"github.com/jladdjr/typey-type/internal/domain/material"
	"github.com/spf13/cobra"
)

var matchIgnore string

var matchCmd = &cobra.Command{
	Use:   "match <expected> <typed>",
	Short: "Show how much of a phrase the typed text matches",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchIgnore, "ignore", "", "characters of the expected phrase that may be skipped")
}

func runMatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Stop()

	d, err := a.Lessons.Match(args[0], args[1], material.Settings{IgnoredChars: matchIgnore})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatMatch(d))
	return nil
}
