package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/services"
)

// UnavailabilityCmd creates the unavailability command group
func UnavailabilityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unavailability",
		Short: "Manage a volunteer's blackout periods",
	}

	cmd.AddCommand(addUnavailabilityCmd(app))
	cmd.AddCommand(removeUnavailabilityCmd(app))
	cmd.AddCommand(listUnavailabilityCmd(app))
	return cmd
}

func addUnavailabilityCmd(app *AppContext) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "add <volunteer_id> <start_date> <end_date>",
		Short: "Add a blackout period (dates inclusive, YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.AddUnavailability(app.Ctx, app.Store, app.Logger, args[0], args[1], args[2], reason)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Blackout added: %s to %s (id %s)\n\n", period.Start, period.End, period.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "optional reason shown to dispatchers")
	return cmd
}

func removeUnavailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <volunteer_id> <period_id>",
		Short: "Remove a blackout period (removing a missing id is a no-op)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveUnavailability(app.Ctx, app.Store, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Blackout %s removed\n\n", args[1])
			return nil
		},
	}
}

func listUnavailabilityCmd(app *AppContext) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "list <volunteer_id>",
		Short: "List a volunteer's blackout periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			periods, err := services.ListUnavailability(app.Ctx, app.Store, args[0], asOf)
			if err != nil {
				return err
			}

			if len(periods) == 0 {
				fmt.Printf("\nNo blackout periods.\n\n")
				return nil
			}

			fmt.Printf("\nBlackout periods:\n")
			for _, p := range periods {
				line := fmt.Sprintf("  %s  %s to %s", p.ID, p.Start, p.End)
				if p.Reason != "" {
					line += fmt.Sprintf("  (%s)", p.Reason)
				}
				fmt.Println(line)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "only periods still active on this date (YYYY-MM-DD)")
	return cmd
}
