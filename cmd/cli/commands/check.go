package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/services"
)

// CheckCmd creates the check command
func CheckCmd(app *AppContext) *cobra.Command {
	var pickupsToday int

	cmd := &cobra.Command{
		Use:   "check <volunteer_id> <date> <time> <longitude> <latitude>",
		Short: "Check whether a volunteer is available for a candidate pickup slot",
		Long: `Evaluates a candidate pickup slot against the volunteer's stored profile
and unavailability periods, then applies the service-area and daily-quota
filter. Date is YYYY-MM-DD, time is 24-hour HH:MM, coordinates are decimal
degrees.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteerID := args[0]

			longitude, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("longitude must be a number: %w", err)
			}
			latitude, err := strconv.ParseFloat(args[4], 64)
			if err != nil {
				return fmt.Errorf("latitude must be a number: %w", err)
			}

			candidate, err := model.ParseCandidate(args[1], args[2], longitude, latitude)
			if err != nil {
				return err
			}

			quota := app.Quota
			if quota == nil || cmd.Flags().Changed("pickups-today") {
				quota = staticQuota{count: pickupsToday}
			}

			verdict, err := services.CheckAvailability(app.Ctx, app.Store, quota, app.Logger, volunteerID, candidate)
			if err != nil {
				return err
			}

			if verdict.Available {
				fmt.Printf("\n✓ Available (%s %s)\n\n", candidate.Date, candidate.Time)
			} else {
				fmt.Printf("\n✗ Not available: %s\n\n", verdict.Reason)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pickupsToday, "pickups-today", 0, "pickups already assigned on the date (used when Redis is not configured)")
	return cmd
}
