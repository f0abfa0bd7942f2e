package nutriai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var (
	onboardAge    int
	onboardWeight float64
	onboardHeight float64
	onboardGender string
	onboardPrefs  []string
	onboardGoals  string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Complete the one-time profile setup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageOnboarding); err != nil {
				return err
			}
			in := api.OnboardingInput{
				Age:          onboardAge,
				WeightKg:     onboardWeight,
				HeightCm:     onboardHeight,
				Gender:       onboardGender,
				DietaryPrefs: onboardPrefs,
				Goals:        onboardGoals,
			}
			if err := sess.CompleteOnboarding(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Onboarding complete, welcome %s\n", sess.User().Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)

	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Weight in kg")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height in cm")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "", "Gender")
	onboardCmd.Flags().StringSliceVar(&onboardPrefs, "dietary-pref", nil, "Dietary preference (repeatable)")
	onboardCmd.Flags().StringVar(&onboardGoals, "goals", "maintain healthy", "Goal category")
	_ = onboardCmd.MarkFlagRequired("age")
	_ = onboardCmd.MarkFlagRequired("weight")
	_ = onboardCmd.MarkFlagRequired("height")
	_ = onboardCmd.MarkFlagRequired("gender")
}
