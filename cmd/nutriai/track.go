package nutriai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track daily water and step counts",
}

var waterAmount int

var trackWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Show today's water intake, or log more with --amount",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			if waterAmount > 0 {
				water, err := client.LogWater(cmd.Context(), waterAmount)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Water today: %d ml\n", water.AmountMl)
				return nil
			}
			water, err := client.WaterToday(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water today: %d ml\n", water.AmountMl)
			return nil
		})
	},
}

var stepCount int

var trackStepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Show today's steps, or log more with --count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			if stepCount > 0 {
				steps, err := client.LogSteps(cmd.Context(), stepCount)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Steps today: %d\n", steps.Steps)
				return nil
			}
			steps, err := client.StepsToday(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Steps today: %d\n", steps.Steps)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.AddCommand(trackWaterCmd, trackStepsCmd)

	trackWaterCmd.Flags().IntVar(&waterAmount, "amount", 0, "Milliliters to log")
	trackStepsCmd.Flags().IntVar(&stepCount, "count", 0, "Steps to log")
}
