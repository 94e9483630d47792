package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/render"
	"github.com/ramanasai/kaizen/internal/review"
)

var (
	reviewWeek    string
	reviewShift   int
	reviewNoColor bool
)

// reviewCmd aggregates one Monday-to-Sunday week into improvement
// history, theme words and pattern hints.
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Weekly review: improvements, themes, pattern hints",
	Long: `Examples:
	kaizen review                  # this week (Mon-Sun)
	kaizen review --shift -1       # last week
	kaizen review --week 2026-08-12    # the week containing that date`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		loc := cfg.Location()
		anchor := time.Now().In(loc)
		if reviewWeek != "" {
			anchor, err = dates.ParseDayID(dates.DayID(reviewWeek), loc)
			if err != nil {
				return fmt.Errorf("invalid --week %q: %w", reviewWeek, err)
			}
		}
		weekStart := dates.AddDays(dates.StartOfWeek(anchor), 7*reviewShift)

		sum, err := review.Summarize(s, weekStart)
		if err != nil {
			return err
		}

		theme := render.DefaultTheme
		if reviewNoColor {
			theme = render.Monochrome
		}
		fmt.Print(theme.Summary(sum))
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewWeek, "week", "", "Any date inside the week to review (YYYY-MM-DD)")
	reviewCmd.Flags().IntVar(&reviewShift, "shift", 0, "Shift the window by N weeks (-1 = previous)")
	reviewCmd.Flags().BoolVar(&reviewNoColor, "no-color", false, "Disable colored output")
}
