package nutriai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var dashboardDays int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show calorie trends plus today's water and steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dashboardDays <= 0 {
			return fmt.Errorf("--days must be positive, got %d", dashboardDays)
		}
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			ctx := cmd.Context()
			trends, err := client.Trends(ctx, dashboardDays)
			if err != nil {
				return err
			}
			water, err := client.WaterToday(ctx)
			if err != nil {
				return err
			}
			steps, err := client.StepsToday(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tCONSUMED\tBURNED\tNET")
			for _, t := range trends {
				fmt.Fprintf(out, "%s\t%.0f\t%.0f\t%.0f\n", t.Date, t.Consumed, t.Burned, t.Net)
			}
			fmt.Fprintf(out, "Water today: %d ml\n", water.AmountMl)
			fmt.Fprintf(out, "Steps today: %d\n", steps.Steps)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().IntVar(&dashboardDays, "days", 7, "Days of trend history")
}
