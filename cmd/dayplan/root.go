package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayplanner/clock"
	"dayplanner/models"
	"dayplanner/services/planner"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dayplan",
		Short:         "Recommend sleep, meals, workout and personal time from a week of obligations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newParseCmd(), newListCmd(), newFreeCmd(), newPlanCmd())
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse HH:MM",
		Short: "Parse a time of day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, warning := clock.ParseOrZero(args[0])
			if warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%.2fh)\n", t, t.Hours())
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the week with colors and durations",
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := load(cmd, file)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tSTART\tEND\tLABEL\tDURATION\tCOLOR")
			for _, e := range sch.View().Entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Day, e.Start, e.End, e.Label, e.Duration, e.Color)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "week.yaml", "Week file (YAML)")
	return cmd
}

func newFreeCmd() *cobra.Command {
	var (
		file       string
		dayStr     string
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "free",
		Short: "Print the free intervals of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := load(cmd, file)
			if err != nil {
				return err
			}
			day, err := models.ParseDayOfWeek(dayStr)
			if err != nil {
				return err
			}
			window := planner.Window{}
			if window.Start, err = clock.Parse(start); err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			if window.End, err = clock.ParseBoundary(end); err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			free, err := planner.ComputeFreeSlots(planner.ForDay(sch.Obligations, day), window)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(free) == 0 {
				fmt.Fprintf(out, "%s: no free time between %s and %s\n", day, window.Start, window.End)
				return nil
			}
			for _, f := range free {
				fmt.Fprintf(out, "%s-%s  %s\n", f.Start, f.End, clock.FormatHours(float64(f.Minutes())/60))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "week.yaml", "Week file (YAML)")
	cmd.Flags().StringVarP(&dayStr, "day", "d", "Monday", "Day of week")
	cmd.Flags().StringVar(&start, "start", "00:00", "Window start HH:MM")
	cmd.Flags().StringVar(&end, "end", "24:00", "Window end HH:MM (24:00 allowed)")
	return cmd
}

func newPlanCmd() *cobra.Command {
	var (
		file       string
		dayStr     string
		policy     string
		sleepHours float64
		meals      int
		workout    int
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Recommend a day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := load(cmd, file)
			if err != nil {
				return err
			}
			day, err := models.ParseDayOfWeek(dayStr)
			if err != nil {
				return err
			}
			opts := planner.DefaultOptions()
			opts.Meals = meals
			opts.WorkoutMinutes = workout
			minutes := int(sleepHours * 60)
			switch strings.ToLower(policy) {
			case "latest-end":
				opts.Sleep = planner.LatestEndPolicy{Minutes: minutes}
			case "free-window":
				opts.Sleep = planner.FreeWindowPolicy{Minutes: minutes}
			default:
				return fmt.Errorf("unknown --policy %q (want latest-end or free-window)", policy)
			}

			plan, err := planner.PlanDay(sch.Obligations, day, opts)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "week.yaml", "Week file (YAML)")
	cmd.Flags().StringVarP(&dayStr, "day", "d", "Monday", "Day of week")
	cmd.Flags().StringVar(&policy, "policy", "latest-end", "Sleep policy: latest-end or free-window")
	cmd.Flags().Float64Var(&sleepHours, "sleep", 8, "Sleep target in hours")
	cmd.Flags().IntVar(&meals, "meals", 3, "Number of meals")
	cmd.Flags().IntVar(&workout, "workout", 60, "Workout length in minutes (0 = none)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func load(cmd *cobra.Command, file string) (*models.Schedule, error) {
	sch, warnings, err := loadWeek(file)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	return sch, nil
}

func printPlan(w io.Writer, plan models.DayPlan) {
	fmt.Fprintf(w, "Plan for %s\n", plan.Day)
	if plan.Sleep != nil {
		fmt.Fprintf(w, "  Sleep    %s-%s\n", plan.Sleep.Bedtime, plan.Sleep.Wake)
	}
	for i, m := range plan.Meals {
		fmt.Fprintf(w, "  Meal %d   %s\n", i+1, m)
	}
	if plan.Workout != nil {
		fmt.Fprintf(w, "  Workout  %s-%s\n", plan.Workout.Start, plan.Workout.End)
	}
	for _, b := range plan.Blocks {
		if b.Kind == models.KindPersonal {
			fmt.Fprintf(w, "  Personal %s-%s\n", b.Start, b.End)
		}
	}
	for _, warning := range plan.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warning)
	}
}
