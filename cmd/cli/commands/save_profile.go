package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/services"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/db"
)

// SaveProfileCmd creates the saveProfile command
func SaveProfileCmd(app *AppContext) *cobra.Command {
	var expectedVersion int64

	cmd := &cobra.Command{
		Use:   "saveProfile <profile.yaml>",
		Short: "Validate and save a volunteer's availability profile",
		Long: `Validates the profile document and, if it is structurally sound, replaces
the volunteer's stored profile wholesale. Pass --version with the version you
last read to guard against concurrent edits; omit it when creating a first
profile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readProfileDocument(args[0])
			if err != nil {
				return err
			}

			result, err := services.SaveProfile(app.Ctx, app.Store, app.Logger, doc, expectedVersion)
			if errors.Is(err, db.ErrConflict) {
				return fmt.Errorf("profile was changed by someone else; re-read it and retry: %w", err)
			}
			if err != nil {
				return err
			}

			if !result.Validation.IsValid {
				fmt.Printf("\n✗ Profile rejected, %d problem(s):\n\n", len(result.Validation.Errors))
				for i, msg := range result.Validation.Errors {
					fmt.Printf("  %2d. %s\n", i+1, msg)
				}
				fmt.Println()
				return nil
			}

			fmt.Printf("\n✓ Profile saved for volunteer %s (version %d)\n\n", doc.VolunteerID, result.Version)
			return nil
		},
	}

	cmd.Flags().Int64Var(&expectedVersion, "version", 0, "version last read (0 creates a new profile)")
	return cmd
}
