package nutriai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/metrics"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile and goals",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile with BMI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			user, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\nEmail: %s\n", user.Name, user.Email)
			if user.Age != nil {
				fmt.Fprintf(out, "Age: %d\n", *user.Age)
			}
			if user.HeightCm != nil {
				fmt.Fprintf(out, "Height: %.1f cm\n", *user.HeightCm)
			}
			if user.WeightKg != nil {
				fmt.Fprintf(out, "Weight: %.1f kg\n", *user.WeightKg)
			}
			if user.Goals != "" {
				fmt.Fprintf(out, "Goal: %s\n", user.Goals)
			}
			if user.TargetWeight != nil {
				fmt.Fprintf(out, "Target weight: %.1f kg\n", *user.TargetWeight)
			}
			if user.BMI != nil {
				category := metrics.ClassifyBMI(*user.BMI)
				fmt.Fprintf(out, "BMI: %.1f (%s)\n%s\n", *user.BMI, category.Label, category.Message)
			}
			return nil
		})
	},
}

var (
	updateName   string
	updateAge    int
	updateWeight float64
	updateHeight float64
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			var in api.ProfileUpdate
			if cmd.Flags().Changed("name") {
				in.Name = &updateName
			}
			if cmd.Flags().Changed("age") {
				in.Age = &updateAge
			}
			if cmd.Flags().Changed("weight") {
				in.WeightKg = &updateWeight
			}
			if cmd.Flags().Changed("height") {
				in.HeightCm = &updateHeight
			}
			if _, err := client.UpdateMe(cmd.Context(), in); err != nil {
				return err
			}
			if err := sess.RefreshUser(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var (
	goalCategory     string
	goalTargetWeight float64
)

var profileGoalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Set the goal category and target weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			user, err := client.SetGoals(cmd.Context(), goalCategory, goalTargetWeight)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goals updated: %s", user.Goals)
			if user.TargetWeight != nil {
				fmt.Fprintf(cmd.OutOrStdout(), " (target %.1f kg)", *user.TargetWeight)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		})
	},
}

var deleteConfirmed bool

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the account permanently",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteConfirmed {
			return fmt.Errorf("account deletion is permanent; re-run with --yes to confirm")
		}
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			if err := client.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			if err := sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileGoalsCmd, profileDeleteCmd)

	profileUpdateCmd.Flags().StringVar(&updateName, "name", "", "Display name")
	profileUpdateCmd.Flags().IntVar(&updateAge, "age", 0, "Age in years")
	profileUpdateCmd.Flags().Float64Var(&updateWeight, "weight", 0, "Weight in kg")
	profileUpdateCmd.Flags().Float64Var(&updateHeight, "height", 0, "Height in cm")

	profileGoalsCmd.Flags().StringVar(&goalCategory, "goals", "", "Goal category")
	profileGoalsCmd.Flags().Float64Var(&goalTargetWeight, "target-weight", 0, "Target weight in kg")
	_ = profileGoalsCmd.MarkFlagRequired("goals")
	_ = profileGoalsCmd.MarkFlagRequired("target-weight")

	profileDeleteCmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "Confirm permanent deletion")
}
