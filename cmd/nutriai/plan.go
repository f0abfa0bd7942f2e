package nutriai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/model"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and browse AI meal plans",
}

var planDays int

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new AI meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if planDays < 1 || planDays > 7 {
			return fmt.Errorf("--days must be between 1 and 7, got %d", planDays)
		}
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			plan, err := client.GeneratePlan(cmd.Context(), planDays)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated plan %d: %s\n", plan.ID, plan.Name)
			printPlan(cmd, plan)
			return nil
		})
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			plans, err := client.Plans(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(out, "No plans yet; run \"nutriai plan generate\"")
				return nil
			}
			fmt.Fprintln(out, "ID\tNAME\tCREATED")
			for _, p := range plans {
				fmt.Fprintf(out, "%d\t%s\t%s\n", p.ID, p.Name, p.CreatedAt)
			}
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show one plan in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := parseID("plan id", args[0])
		if err != nil {
			return err
		}
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			plan, err := client.Plan(cmd.Context(), planID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", plan.Name, plan.Description)
			printPlan(cmd, plan)
			return nil
		})
	},
}

func printPlan(cmd *cobra.Command, plan model.PlanDetail) {
	out := cmd.OutOrStdout()
	for _, day := range plan.Days {
		fmt.Fprintf(out, "\n%s\n", day.Day)
		for _, meal := range day.Meals {
			fmt.Fprintf(out, "  %s\n", meal.Meal)
			for _, item := range meal.Items {
				fmt.Fprintf(out, "    %.1f %s %s\n", item.Quantity, item.Unit, item.FoodName)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planGenerateCmd, planListCmd, planShowCmd)

	planGenerateCmd.Flags().IntVar(&planDays, "days", 1, "Days the plan should cover (1-7)")
}
