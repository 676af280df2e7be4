package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jladdjr/typey-type/internal/ports"
	"github.com/spf13/cobra"
)

var (
	reviseCategories []string
	reviseWordsOnly  bool
	reviseJSON       bool
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Build a lesson from words you have met",
	Long: `Prints a lesson made of every word in your history, most-typed first.
Use --category to revise only new, seen or retained words.`,
	Args: cobra.NoArgs,
	RunE: runRevise,
}

func init() {
	reviseCmd.Flags().StringSliceVar(&reviseCategories, "category", nil, "only words in these categories: new, seen, retained")
	reviseCmd.Flags().BoolVar(&reviseWordsOnly, "words-only", false, "print the word list instead of the lesson")
	reviseCmd.Flags().BoolVar(&reviseJSON, "json", false, "print the lesson and word list as JSON")
}

func parseCategories(names []string) ([]ports.Category, error) {
	out := make([]ports.Category, 0, len(names))
	for _, n := range names {
		c, err := ports.ParseCategory(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func runRevise(cmd *cobra.Command, args []string) error {
	cats, err := parseCategories(reviseCategories)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Stop()

	if !reviseWordsOnly {
		loadDictionaries(cmd.Context(), a)
	}
	l, err := a.Lessons.Revise(cmd.Context(), cats...)
	if err != nil {
		return err
	}

	if reviseJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}

	out := l.TSV
	if reviseWordsOnly {
		out = l.Words
	}
	if out == "" {
		fmt.Fprintln(os.Stderr, "no met words yet; record some with: typey seen record <word>...")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	if !reviseWordsOnly {
		fmt.Fprint(os.Stderr, formatLessonSummary(l))
	}
	return nil
}
