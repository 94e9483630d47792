package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/render"
)

var (
	timelineSearch  string
	timelineDomains string
	timelineLimit   int
	timelineNoColor bool
)

// timelineCmd lists entries newest first, with optional text search and
// domain filters.
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Browse past entries",
	Long: `Examples:
	kaizen timeline                         # newest first
	kaizen timeline --search meditation     # substring match across notes
	kaizen timeline --domains work,mental   # entries tagged with any of these`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		all, err := s.Entries()
		if err != nil {
			return err
		}

		var filter []journal.Domain
		if strings.TrimSpace(timelineDomains) != "" {
			filter, err = journal.ParseDomains(timelineDomains)
			if err != nil {
				return err
			}
		}
		q := strings.ToLower(strings.TrimSpace(timelineSearch))

		entries := make([]journal.Entry, 0, len(all))
		for _, e := range all {
			if len(filter) > 0 && !taggedWithAny(e, filter) {
				continue
			}
			if q != "" && !matchesSearch(e, q) {
				continue
			}
			entries = append(entries, e)
		}
		sort.Slice(entries, func(i, k int) bool { return entries[i].Date > entries[k].Date })
		if timelineLimit > 0 && len(entries) > timelineLimit {
			entries = entries[:timelineLimit]
		}

		theme := render.DefaultTheme
		if timelineNoColor {
			theme = render.Monochrome
		}
		if len(entries) == 0 {
			fmt.Println(theme.Meta.Render("No matching entries."))
			return nil
		}
		for _, e := range entries {
			fmt.Println(theme.EntryLine(e))
		}
		return nil
	},
}

func taggedWithAny(e journal.Entry, filter []journal.Domain) bool {
	for _, want := range filter {
		for _, d := range e.DomainTags {
			if d == want {
				return true
			}
		}
	}
	return false
}

// matchesSearch checks the lowered query against the entry's narrative
// fields and improvement text.
func matchesSearch(e journal.Entry, q string) bool {
	blob := strings.ToLower(strings.Join([]string{
		e.Facts, e.Worked, e.Didnt, e.Improvement.Text,
	}, "\n"))
	return strings.Contains(blob, q)
}

func init() {
	timelineCmd.Flags().StringVar(&timelineSearch, "search", "", "Case-insensitive substring search")
	timelineCmd.Flags().StringVar(&timelineDomains, "domains", "", "Filter by domains (comma separated, any match)")
	timelineCmd.Flags().IntVar(&timelineLimit, "limit", 0, "Max entries to show (0 = all)")
	timelineCmd.Flags().BoolVar(&timelineNoColor, "no-color", false, "Disable colored output")
}
