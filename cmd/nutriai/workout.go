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

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Search the exercise catalog and manage workout logs",
}

var (
	workoutQuery      string
	workoutSort       string
	workoutMuscle     string
	workoutDifficulty string
	workoutPageSize   int
	workoutPages      int
)

var workoutSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search exercises with muscle-group and difficulty filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			pager := search.New(client.SearchWorkouts, func(w model.Workout) string {
				return strconv.FormatInt(w.ID, 10)
			}, workoutPageSize)
			if err := pager.SetText(cmd.Context(), workoutQuery); err != nil {
				return err
			}
			if workoutSort != "" {
				if err := pager.SetSort(cmd.Context(), workoutSort, ""); err != nil {
					return err
				}
			}
			if workoutMuscle != "" {
				if err := pager.SetFilter(cmd.Context(), "muscle_group", workoutMuscle); err != nil {
					return err
				}
			}
			if workoutDifficulty != "" {
				if err := pager.SetFilter(cmd.Context(), "difficulty", workoutDifficulty); err != nil {
					return err
				}
			}
			for page := 1; page < workoutPages && pager.HasMore(); page++ {
				if err := pager.Search(cmd.Context(), false); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tMUSCLE\tLEVEL\tKCAL/UNIT")
			for _, w := range pager.Items() {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%.1f per %s\n", w.ID, w.Name, w.MuscleGroup, w.Difficulty, w.CaloriesPerUnit, w.Unit)
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
	logWorkoutID string
	logMinutes   int
	logSets      int
	logReps      int
)

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a workout by catalog id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			workoutID, err := parseID("workout id", logWorkoutID)
			if err != nil {
				return err
			}
			if logMinutes <= 0 && (logSets <= 0 || logReps <= 0) {
				return fmt.Errorf("provide --minutes for time-based workouts or --sets and --reps for rep-based ones")
			}

			in := api.WorkoutLogInput{WorkoutID: workoutID}
			if logMinutes > 0 {
				in.DurationMinutes = &logMinutes
			} else {
				in.Sets = &logSets
				in.RepsPerSet = &logReps
			}

			// Preview the estimate before submitting; the server-computed
			// value on the created entry is authoritative.
			if workout, found := findWorkout(cmd, client, sess, workoutID); found {
				estimate := metrics.EstimateWorkoutCalories(workout.Unit, logMinutes, logSets, logReps, workout.CaloriesPerUnit)
				if estimate > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Estimated burn: %.0f kcal\n", estimate)
				}
			}

			entry, err := client.LogWorkout(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %.0f kcal burned\n", entry.WorkoutName, entry.CaloriesBurned)
			return nil
		})
	},
}

// findWorkout resolves a catalog item for the estimate preview. Lookup
// failures are swallowed; the preview is best-effort.
func findWorkout(cmd *cobra.Command, client *api.Client, sess *session.Session, id int64) (model.Workout, bool) {
	items, _, err := client.SearchWorkouts(cmd.Context(), search.Query{}, 1, 100)
	if err != nil {
		sess.Observe(err)
		return model.Workout{}, false
	}
	for _, w := range items {
		if w.ID == id {
			return w, true
		}
	}
	return model.Workout{}, false
}

var workoutListDate string

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			logs, err := client.WorkoutLogs(cmd.Context(), workoutListDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No workout logs")
				return nil
			}
			fmt.Fprintln(out, "WHEN\tWORKOUT\tVOLUME\tKCAL")
			for _, l := range logs {
				volume := ""
				switch {
				case l.DurationMinutes != nil:
					volume = fmt.Sprintf("%d min", *l.DurationMinutes)
				case l.Sets != nil && l.RepsPerSet != nil:
					volume = fmt.Sprintf("%dx%d", *l.Sets, *l.RepsPerSet)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%.0f\n", l.LoggedAt, l.WorkoutName, volume, l.CaloriesBurned)
			}
			return nil
		})
	},
}

var workoutSummaryRange string

var workoutSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show daily workout totals over a range",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := rangeDays(workoutSummaryRange)
		if err != nil {
			return err
		}
		return withSession(func(client *api.Client, sess *session.Session) error {
			if err := requireStage(sess, session.StageReady); err != nil {
				return err
			}
			summary, err := client.WorkoutSummary(cmd.Context(), days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tKCAL\tWORKOUTS")
			for _, d := range summary.Daily {
				fmt.Fprintf(out, "%s\t%.0f\t%d\n", d.Date, d.Calories, d.Workouts)
			}
			fmt.Fprintf(out, "Total workouts: %d\n", summary.TotalWorkouts)
			fmt.Fprintln(out, metrics.WorkoutMotivation(summary.TotalWorkouts, days))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutSearchCmd, workoutLogCmd, workoutListCmd, workoutSummaryCmd)

	workoutSearchCmd.Flags().StringVar(&workoutQuery, "query", "", "Free-text search")
	workoutSearchCmd.Flags().StringVar(&workoutSort, "sort", "", "Sort key (name, difficulty)")
	workoutSearchCmd.Flags().StringVar(&workoutMuscle, "muscle-group", "", "Filter by muscle group")
	workoutSearchCmd.Flags().StringVar(&workoutDifficulty, "difficulty", "", "Filter by difficulty")
	workoutSearchCmd.Flags().IntVar(&workoutPageSize, "page-size", 10, "Results per page")
	workoutSearchCmd.Flags().IntVar(&workoutPages, "pages", 1, "Number of pages to accumulate")

	workoutLogCmd.Flags().StringVar(&logWorkoutID, "workout-id", "", "Catalog id of the workout")
	workoutLogCmd.Flags().IntVar(&logMinutes, "minutes", 0, "Duration for time-based workouts")
	workoutLogCmd.Flags().IntVar(&logSets, "sets", 0, "Sets for rep-based workouts")
	workoutLogCmd.Flags().IntVar(&logReps, "reps", 0, "Reps per set for rep-based workouts")
	_ = workoutLogCmd.MarkFlagRequired("workout-id")

	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "Restrict to one date YYYY-MM-DD")

	workoutSummaryCmd.Flags().StringVar(&workoutSummaryRange, "range", "week", "Range (week, month, quarter)")
}
