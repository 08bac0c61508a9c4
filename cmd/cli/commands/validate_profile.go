package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/availability"
)

// ValidateProfileCmd creates the validateProfile command
func ValidateProfileCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateProfile <profile.yaml>",
		Short: "Validate an availability profile document without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readProfileDocument(args[0])
			if err != nil {
				return err
			}

			result := availability.ValidateDocument(doc)
			if result.IsValid {
				fmt.Printf("\n✓ Profile is valid (mode: %s)\n\n", doc.Mode)
				return nil
			}

			fmt.Printf("\n✗ Profile has %d problem(s):\n\n", len(result.Errors))
			for i, msg := range result.Errors {
				fmt.Printf("  %2d. %s\n", i+1, msg)
			}
			fmt.Println()

			// Invalid input, not a command failure
			return nil
		},
	}
}
