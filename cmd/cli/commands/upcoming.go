package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/model"
	"github.com/foodbridge-ke/pickup-scheduler/pkg/core/services"
)

// UpcomingCmd creates the upcoming command
func UpcomingCmd(app *AppContext) *cobra.Command {
	var (
		from string
		days int
	)

	cmd := &cobra.Command{
		Use:   "upcoming <volunteer_id>",
		Short: "Show the concrete dates a volunteer's profile covers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteerID := args[0]

			start := model.DateOf(time.Now())
			if from != "" {
				var err error
				start, err = model.ParseCalendarDate(from)
				if err != nil {
					return err
				}
			}
			if days == 0 {
				days = app.Cfg.UpcomingHorizonDays
			}

			rec, err := app.Store.GetProfile(app.Ctx, volunteerID)
			if err != nil {
				return err
			}
			profile, err := rec.Profile()
			if err != nil {
				return err
			}
			periods, err := app.Store.ListActivePeriods(app.Ctx, volunteerID, start)
			if err != nil {
				return err
			}

			windows, err := services.UpcomingWindows(profile, periods, start, days)
			if err != nil {
				return err
			}

			if len(windows) == 0 {
				fmt.Printf("\nNo availability in the next %d day(s).\n\n", days)
				return nil
			}

			fmt.Printf("\nUpcoming availability (%d day horizon):\n", days)
			for _, w := range windows {
				if w.AllDay {
					fmt.Printf("  %s (%s)  any time\n", w.Date, w.Date.Weekday())
					continue
				}
				fmt.Printf("  %s (%s) ", w.Date, w.Date.Weekday())
				for i, slot := range w.Slots {
					if i > 0 {
						fmt.Print(",")
					}
					fmt.Printf(" %s", slot)
				}
				fmt.Println()
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 0, "horizon in days (default from config)")
	return cmd
}
