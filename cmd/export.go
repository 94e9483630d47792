package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/export"
)

var (
	exportOut string
	wipeYes   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal (txt, csv or backup JSON)",
}

func writeOut(content []byte, fallbackName string) error {
	if exportOut == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}
	name := exportOut
	if name == "" {
		name = fallbackName
	}
	if err := os.WriteFile(name, content, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", name)
	return nil
}

var exportTxtCmd = &cobra.Command{
	Use:   "txt",
	Short: "Human readable, one record per day",
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
		return writeOut([]byte(export.Text(all)), "daily-kaizen-"+export.SchemaVersion+".txt")
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Spreadsheet rows, one per day",
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
		return writeOut([]byte(export.CSV(all)), "daily-kaizen-"+export.SchemaVersion+".csv")
	},
}

var exportBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Versioned JSON snapshot of entries and library",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		snap, err := export.TakeSnapshot(s)
		if err != nil {
			return err
		}
		data, err := snap.Encode()
		if err != nil {
			return err
		}
		return writeOut(data, "daily-kaizen-backup-"+export.SchemaVersion+".json")
	},
}

// importCmd restores a backup, replacing both collections wholesale.
var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Restore a backup (replaces all current data)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := export.Restore(s, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Println("Import complete.")
		return nil
	},
}

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete ALL local journal data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeYes {
			return fmt.Errorf("refusing to wipe without --yes")
		}
		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Wipe(); err != nil {
			return err
		}
		fmt.Println("Wiped.")
		return nil
	},
}

func init() {
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", "", "Output file (default: daily-kaizen-v1.*, \"-\" for stdout)")
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "Confirm the wipe")
	exportCmd.AddCommand(exportTxtCmd, exportCSVCmd, exportBackupCmd)
}
