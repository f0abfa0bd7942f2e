package nutriai

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "nutriai",
	Short: "nutriai tracks meals, workouts, and AI meal plans from your terminal",
	Long:  "nutriai is a terminal client for the NutriAI backend: log in, complete onboarding, search and log foods and workouts, generate AI meal plans, and review calorie trends.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (default from NUTRIAI_API_URL)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to local credential store")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log API calls to stderr")
}
