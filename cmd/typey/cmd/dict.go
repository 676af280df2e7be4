package cmd

import (
	"fmt"
	"strings"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect the lookup dictionary",
}

var dictInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Load every configured dictionary and report what was merged",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Stop()

		loadDictionaries(cmd.Context(), a)
		fmt.Fprint(cmd.OutOrStdout(), formatDictInfo(a.Dicts.Sources(), a.Dicts.Current(), a.Dicts.LastError()))
		return nil
	},
}

var dictLookupCmd = &cobra.Command{
	Use:   "lookup <word or phrase>",
	Short: "Show the strokes registered for a word",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Stop()

		loadDictionaries(cmd.Context(), a)
		if !a.Dicts.Ready() {
			return fmt.Errorf("%w: no words loaded from %d source(s)", ports.ErrDictionaryNotReady, len(a.Dicts.Sources()))
		}
		word := strings.Join(args, " ")
		cands, suggestions := a.Lessons.Lookup(cmd.Context(), word)
		fmt.Fprint(cmd.OutOrStdout(), formatLookup(word, cands, suggestions))
		return nil
	},
}

func init() {
	dictCmd.AddCommand(dictInfoCmd)
	dictCmd.AddCommand(dictLookupCmd)
}
