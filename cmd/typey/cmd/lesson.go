package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var lessonJSON bool

var lessonCmd = &cobra.Command{
	Use:   "lesson [file|-]",
	Short: "Compile a word list into lesson material",
	Long: `Reads one word or phrase per line and prints phrase<TAB>stroke lines,
using the configured dictionaries. A line may carry its own stroke after a
tab. Words with no stroke are left out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLesson,
}

func init() {
	lessonCmd.Flags().BoolVar(&lessonJSON, "json", false, "print the lesson as JSON")
}

func runLesson(cmd *cobra.Command, args []string) error {
	raw, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Stop()

	loadDictionaries(cmd.Context(), a)
	l := a.Lessons.Compile(cmd.Context(), raw)

	if lessonJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}
	if l.TSV != "" {
		fmt.Fprintln(cmd.OutOrStdout(), l.TSV)
	}
	fmt.Fprint(os.Stderr, formatLessonSummary(l))
	return nil
}
