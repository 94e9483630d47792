package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/render"
)

var (
	libAddDomains string
	libAddStatus  string
	libAddToday   bool
	libUseDate    string
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the reusable improvement library",
}

// libraryAddCmd promotes an improvement statement into the library.
// Re-adding the same normalized text touches the existing item instead of
// duplicating it.
var libraryAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add an improvement (or today's, with --from-today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		lib := journal.NewLibrary(s)

		text := strings.TrimSpace(strings.Join(args, " "))
		domains, err := journal.ParseDomains(libAddDomains)
		if err != nil {
			return err
		}
		status := journal.StatusNeedsTesting
		if libAddStatus != "" {
			st, ok := journal.ParseStatus(libAddStatus)
			if !ok {
				return fmt.Errorf("invalid status %q", libAddStatus)
			}
			status = st
		}

		if libAddToday {
			day, err := todayID(cfg, "")
			if err != nil {
				return err
			}
			entry, err := journal.New(s).GetOrCreate(day)
			if err != nil {
				return err
			}
			text = strings.TrimSpace(entry.Improvement.Text)
			if text == "" {
				return fmt.Errorf("today's improvement is empty - add one small improvement first")
			}
			domains = entry.Improvement.Domains
			status = entry.Improvement.Status
		}
		if text == "" {
			return fmt.Errorf("no improvement text given (pass text or --from-today)")
		}

		item, err := lib.AddOrTouch(text, domains, status)
		if err != nil {
			return err
		}
		fmt.Printf("Added to library (used %d×).\n", item.UseCount)
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library items, most recently used first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := journal.NewLibrary(s).ListSortedByRecency()
		if err != nil {
			return err
		}
		theme := render.DefaultTheme
		if len(items) == 0 {
			fmt.Println(theme.Meta.Render("Library is empty. Add today's improvement to start."))
			return nil
		}
		for _, item := range items {
			fmt.Println(theme.LibraryItem(item))
		}
		return nil
	},
}

// libraryUseCmd copies an item into a day's single improvement slot.
var libraryUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Reuse an item as a day's improvement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		day, err := todayID(cfg, libUseDate)
		if err != nil {
			return err
		}
		lib := journal.NewLibrary(s)
		id, err := resolveLibraryID(lib, args[0])
		if err != nil {
			return err
		}
		entry, err := lib.Use(journal.New(s), id, day)
		if err != nil {
			return err
		}
		fmt.Printf("Set %s improvement: %s\n", entry.Date, entry.Improvement.Text)
		return nil
	},
}

var libraryStatusCmd = &cobra.Command{
	Use:   "status <id> <needsTesting|kept|rejected>",
	Short: "Update an item's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		st, ok := journal.ParseStatus(args[1])
		if !ok {
			return fmt.Errorf("invalid status %q", args[1])
		}
		lib := journal.NewLibrary(s)
		id, err := resolveLibraryID(lib, args[0])
		if err != nil {
			// setting status of an unknown id is defined as a no-op
			return nil
		}
		return lib.SetStatus(id, st)
	},
}

var libraryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		lib := journal.NewLibrary(s)
		id, err := resolveLibraryID(lib, args[0])
		if err != nil {
			// removing an absent id is idempotent
			return nil
		}
		return lib.Remove(id)
	},
}

// resolveLibraryID expands a unique id prefix (as shown by `library list`)
// to the full id.
func resolveLibraryID(lib *journal.Library, prefix string) (string, error) {
	items, err := lib.ListSortedByRecency()
	if err != nil {
		return "", err
	}
	var match string
	for _, item := range items {
		if strings.HasPrefix(item.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = item.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no library item with id %q", prefix)
	}
	return match, nil
}

func init() {
	libraryAddCmd.Flags().StringVar(&libAddDomains, "domains", "", "Lenses for the item (comma separated)")
	libraryAddCmd.Flags().StringVar(&libAddStatus, "status", "", "Status: needsTesting|kept|rejected")
	libraryAddCmd.Flags().BoolVar(&libAddToday, "from-today", false, "Promote today's improvement")
	libraryUseCmd.Flags().StringVar(&libUseDate, "date", "", "Target day (YYYY-MM-DD, default today)")

	libraryCmd.AddCommand(libraryAddCmd, libraryListCmd, libraryUseCmd, libraryStatusCmd, libraryRmCmd)
}
