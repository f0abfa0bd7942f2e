package nutriai

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rsinghcodes/nutriai/internal/api"
	"github.com/rsinghcodes/nutriai/internal/metrics"
	"github.com/rsinghcodes/nutriai/internal/model"
	"github.com/rsinghcodes/nutriai/internal/search"
	"github.com/rsinghcodes/nutriai/internal/session"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search the food catalog and manage food logs",
}

var (
	foodQuery    string
	foodSortBy   string
	foodOrder    string
	foodMinKcal  float64
	foodMaxKcal  float64
	foodPageSize int
	foodPages    int
)

var foodSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search foods with sorting, calorie filters, and paging",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			pager := search.New(client.SearchFoods, func(f model.Food) string {
				return strconv.FormatInt(f.ID, 10)
			}, foodPageSize)
			if err := pager.SetText(cmd.Context(), foodQuery); err != nil {
				return err
			}
			if err := pager.SetSort(cmd.Context(), foodSortBy, foodOrder); err != nil {
				return err
			}
			if cmd.Flags().Changed("min-kcal") {
				if err := pager.SetFilter(cmd.Context(), "min_calories", formatFloat(foodMinKcal)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("max-kcal") {
				if err := pager.SetFilter(cmd.Context(), "max_calories", formatFloat(foodMaxKcal)); err != nil {
					return err
				}
			}
			for page := 1; page < foodPages && pager.HasMore(); page++ {
				if err := pager.Search(cmd.Context(), false); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tKCAL\tPER")
			for _, f := range pager.Items() {
				fmt.Fprintf(out, "%d\t%s\t%.0f\t%.0f%s\n", f.ID, f.Name, f.Calories, f.ReferenceAmount, f.ReferenceUnit)
			}
			fmt.Fprintf(out, "Showing %d of %d", len(pager.Items()), pager.Total())
			if pager.HasMore() {
				fmt.Fprint(out, " (more available, raise --pages)")
			}
			fmt.Fprintln(out)
			return nil
		})
	},
}

var (
	logFoodID   string
	logQuantity float64
	logUnit     string
)

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food by catalog id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			foodID, err := parseID("food id", logFoodID)
			if err != nil {
				return err
			}
			entry, err := client.LogFood(cmd.Context(), api.FoodLogInput{
				FoodID:   foodID,
				Quantity: logQuantity,
				Unit:     logUnit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.0f kcal (%.1fg protein, %.1fg carbs, %.1fg fat)\n",
				entry.FoodName, entry.Calories, entry.ProteinG, entry.CarbsG, entry.FatG)
			return nil
		})
	},
}

var foodListDate string

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			logs, err := client.FoodLogs(cmd.Context(), foodListDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No food logs")
				return nil
			}
			fmt.Fprintln(out, "WHEN\tFOOD\tQTY\tKCAL")
			for _, l := range logs {
				fmt.Fprintf(out, "%s\t%s\t%.1f%s\t%.0f\n", l.LoggedAt, l.FoodName, l.Quantity, l.Unit, l.Calories)
			}
			return nil
		})
	},
}

var foodSummaryRange string

var foodSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show daily nutrition totals over a range",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := rangeDays(foodSummaryRange)
		if err != nil {
			return err
		}
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			summary, err := client.FoodSummary(cmd.Context(), days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tKCAL\tP\tC\tF")
			for _, d := range summary.Daily {
				fmt.Fprintf(out, "%s\t%.0f\t%.1f\t%.1f\t%.1f\n", d.Date, d.Calories, d.ProteinG, d.CarbsG, d.FatG)
			}
			fmt.Fprintf(out, "Total: %.0f kcal\n", summary.TotalCalories)
			fmt.Fprintln(out, metrics.FoodMotivation(summary.TotalCalories, days))
			return nil
		})
	},
}

func rangeDays(name string) (int, error) {
	switch name {
	case "week":
		return 7, nil
	case "month":
		return 30, nil
	case "quarter":
		return 90, nil
	default:
		return 0, fmt.Errorf("invalid range %q (expected week, month, or quarter)", name)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd, foodLogCmd, foodListCmd, foodSummaryCmd)

	foodSearchCmd.Flags().StringVar(&foodQuery, "query", "", "Free-text search")
	foodSearchCmd.Flags().StringVar(&foodSortBy, "sort", "name", "Sort key (name, calories, protein, carbs, fats)")
	foodSearchCmd.Flags().StringVar(&foodOrder, "order", "asc", "Sort order (asc, desc)")
	foodSearchCmd.Flags().Float64Var(&foodMinKcal, "min-kcal", 0, "Minimum calories per reference amount")
	foodSearchCmd.Flags().Float64Var(&foodMaxKcal, "max-kcal", 0, "Maximum calories per reference amount")
	foodSearchCmd.Flags().IntVar(&foodPageSize, "page-size", 10, "Results per page")
	foodSearchCmd.Flags().IntVar(&foodPages, "pages", 1, "Number of pages to accumulate")

	foodLogCmd.Flags().StringVar(&logFoodID, "food-id", "", "Catalog id of the food")
	foodLogCmd.Flags().Float64Var(&logQuantity, "quantity", 0, "Quantity consumed")
	foodLogCmd.Flags().StringVar(&logUnit, "unit", "g", "Unit (g, ml, piece)")
	_ = foodLogCmd.MarkFlagRequired("food-id")
	_ = foodLogCmd.MarkFlagRequired("quantity")

	foodListCmd.Flags().StringVar(&foodListDate, "date", "", "Restrict to one date YYYY-MM-DD")

	foodSummaryCmd.Flags().StringVar(&foodSummaryRange, "range", "week", "Range (week, month, quarter)")
}
