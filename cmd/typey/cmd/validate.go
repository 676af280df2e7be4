package cmd

import (
	"errors"
	"fmt"

	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check custom lesson material (phrase<TAB>stroke lines)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		v := lesson.Validate(raw)
		fmt.Fprint(cmd.OutOrStdout(), formatValidation(v))
		if v.State != lesson.ValidationSuccess {
			return errors.New("material is not usable")
		}
		return nil
	},
}
