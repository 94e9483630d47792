package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/ui"
)

var tuiDate string

// tuiCmd opens the Bubble Tea editor for a day's entry.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive entry editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		day, err := todayID(cfg, tuiDate)
		if err != nil {
			return err
		}
		return ui.Run(journal.New(s), day)
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiDate, "date", "", "Day to edit (YYYY-MM-DD, default today)")
}
