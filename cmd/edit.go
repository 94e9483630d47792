package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/notify"
)

var (
	editDate        string
	editFacts       string
	editWorked      string
	editDidnt       string
	editImprovement string
	editImprDomains string
	editImprStatus  string
	editTags        string
	editSleep       string
	editMovement    bool
	editDeepWork    bool
	editSpiritual   bool
	editMental      bool
	editCompleted   bool
	editLens        string
	editLensNote    string
	editDropLens    string
)

// editCmd applies flag-driven field edits to a day's entry. Only flags the
// user actually set end up in the patch, so an edit is all-or-nothing.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a day's entry",
	Long: `Examples:
	kaizen edit --facts "Slept badly, long standup" --sleep 2
	kaizen edit --improvement "After coffee, write 1 priority" --domains work
	kaizen edit --tags "work,mental" --movement --completed
	kaizen edit --lens spiritual --note "10 min meditation after coffee"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		day, err := todayID(cfg, editDate)
		if err != nil {
			return err
		}
		j := journal.New(s)

		var patch journal.Patch
		flags := cmd.Flags()
		if flags.Changed("facts") {
			patch.Facts = &editFacts
		}
		if flags.Changed("worked") {
			patch.Worked = &editWorked
		}
		if flags.Changed("didnt") {
			patch.Didnt = &editDidnt
		}
		if flags.Changed("improvement") {
			patch.ImprovementText = &editImprovement
		}
		if flags.Changed("domains") {
			ds, err := journal.ParseDomains(editImprDomains)
			if err != nil {
				return err
			}
			patch.ImprovementDomains = &ds
		}
		if flags.Changed("status") {
			st, ok := journal.ParseStatus(editImprStatus)
			if !ok {
				return fmt.Errorf("invalid status %q (want needsTesting|kept|rejected)", editImprStatus)
			}
			patch.ImprovementStatus = &st
		}
		if flags.Changed("tags") {
			ds, err := journal.ParseDomains(editTags)
			if err != nil {
				return err
			}
			patch.DomainTags = &ds
		}
		if flags.Changed("sleep") {
			if editSleep != "" && (editSleep < "1" || editSleep > "5" || len(editSleep) != 1) {
				return fmt.Errorf("invalid sleep quality %q (want 1-5 or empty)", editSleep)
			}
			patch.SleepQuality = &editSleep
		}
		if flags.Changed("movement") {
			patch.MovementDone = &editMovement
		}
		if flags.Changed("deepwork") {
			patch.DeepWorkDone = &editDeepWork
		}
		if flags.Changed("spiritual") {
			patch.SpiritualPracticeDone = &editSpiritual
		}
		if flags.Changed("mental") {
			patch.MentalEmotionalDone = &editMental
		}
		if flags.Changed("completed") {
			patch.Completed = &editCompleted
		}

		touched := patch != (journal.Patch{})

		if touched {
			if _, err := j.Update(day, patch); err != nil {
				return err
			}
		}

		if flags.Changed("lens") {
			d, err := journal.ParseDomain(editLens)
			if err != nil {
				return err
			}
			if _, err := j.SetLensNote(day, d, editLensNote); err != nil {
				return err
			}
			touched = true
		}
		if flags.Changed("drop-lens") {
			d, err := journal.ParseDomain(editDropLens)
			if err != nil {
				return err
			}
			if _, err := j.RemoveLensNote(day, d); err != nil {
				return err
			}
			touched = true
		}

		if !touched {
			return fmt.Errorf("nothing to update - specify at least one field to edit")
		}

		if flags.Changed("improvement") {
			if v := journal.ValidateImprovement(editImprovement); !v.OK() {
				fmt.Println(v.Hint)
			}
		}
		if flags.Changed("completed") && editCompleted {
			_ = notify.Done("Day closed. See you tomorrow.")
		}
		fmt.Println("Saved.")
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "Day to edit (YYYY-MM-DD, default today)")
	editCmd.Flags().StringVar(&editFacts, "facts", "", "What happened (facts)")
	editCmd.Flags().StringVar(&editWorked, "worked", "", "What worked")
	editCmd.Flags().StringVar(&editDidnt, "didnt", "", "What didn't work")
	editCmd.Flags().StringVarP(&editImprovement, "improvement", "i", "", "The one small improvement")
	editCmd.Flags().StringVar(&editImprDomains, "domains", "", "Improvement lenses (comma separated)")
	editCmd.Flags().StringVar(&editImprStatus, "status", "", "Improvement status: needsTesting|kept|rejected")
	editCmd.Flags().StringVarP(&editTags, "tags", "t", "", "Entry domain lenses (comma separated)")
	editCmd.Flags().StringVar(&editSleep, "sleep", "", "Sleep quality 1-5 (empty to clear)")
	editCmd.Flags().BoolVar(&editMovement, "movement", false, "Movement done")
	editCmd.Flags().BoolVar(&editDeepWork, "deepwork", false, "Deep work done")
	editCmd.Flags().BoolVar(&editSpiritual, "spiritual", false, "Spiritual practice done")
	editCmd.Flags().BoolVar(&editMental, "mental", false, "Mental/emotional practice done")
	editCmd.Flags().BoolVar(&editCompleted, "completed", false, "Mark the day closed")
	editCmd.Flags().StringVar(&editLens, "lens", "", "Domain to attach a lens note to")
	editCmd.Flags().StringVar(&editLensNote, "note", "", "Lens note text (with --lens)")
	editCmd.Flags().StringVar(&editDropLens, "drop-lens", "", "Domain whose lens note to remove")
}
