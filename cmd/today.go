package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/render"
)

var (
	todayDate    string
	todaySmaller bool
	todayNoColor bool
)

// todayCmd shows the day's entry, creating the default one on first access.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show (and lazily create) a day's entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		day, err := todayID(cfg, todayDate)
		if err != nil {
			return err
		}

		j := journal.New(s)
		entry, err := j.GetOrCreate(day)
		if err != nil {
			return err
		}

		theme := render.DefaultTheme
		if todayNoColor {
			theme = render.Monochrome
		}
		fmt.Print(theme.Entry(entry))

		if todaySmaller {
			fmt.Println()
			fmt.Println(theme.Title.Render("Make it smaller"))
			for _, s := range journal.MakeSmallerSuggestions() {
				fmt.Println("  " + theme.Hint.Render("• "+s))
			}
		}
		return nil
	},
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Day to show (YYYY-MM-DD, default today)")
	todayCmd.Flags().BoolVar(&todaySmaller, "smaller", false, "Show prompts for shrinking the improvement")
	todayCmd.Flags().BoolVar(&todayNoColor, "no-color", false, "Disable colored output")
}
