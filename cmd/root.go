package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/kaizen/internal/config"
	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/notify"
	"github.com/ramanasai/kaizen/internal/schedule"
	"github.com/ramanasai/kaizen/internal/store"
	"github.com/ramanasai/kaizen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kaizen",
	Short: "Daily kaizen journal: facts, what worked, one small improvement",
}

func Execute() error {
	rootCmd.Version = version.GetVersion()
	rootCmd.SetVersionTemplate(version.GetVersionInfo() + "\n")
	return rootCmd.Execute()
}

// openStore resolves the configured database path and opens it.
func openStore() (*store.SQLite, config.Config, error) {
	cfg, _ := config.Load()
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, cfg, err
	}
	s, err := store.Open(path)
	return s, cfg, err
}

// todayID returns the day id for now in the configured timezone, or parses
// an explicit --date value.
func todayID(cfg config.Config, flag string) (dates.DayID, error) {
	if strings.TrimSpace(flag) == "" {
		return dates.ToDayID(time.Now().In(cfg.Location())), nil
	}
	id := dates.DayID(strings.TrimSpace(flag))
	if _, err := dates.ParseDayID(id, cfg.Location()); err != nil {
		return "", err
	}
	return id, nil
}

func init() {
	// Load config and start reminder if enabled
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("KAIZEN_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					title, msg := notify.FormatDailyPrompt(todayHasNotes(cfg))
					_ = notify.Info(title, msg)
				})
			}()
			// We intentionally don't store cancel globally; on process exit, signal cancels
			_ = cancel // avoid unused if we change logic
		}
		return nil
	}

	// Add commands; other files define these vars
	rootCmd.AddCommand(todayCmd, editCmd, timelineCmd, reviewCmd, libraryCmd,
		exportCmd, importCmd, wipeCmd, tuiCmd)
}

// todayHasNotes reports whether today's entry exists with any narrative text.
func todayHasNotes(cfg config.Config) bool {
	s, _, err := openStore()
	if err != nil {
		return false
	}
	defer s.Close()

	day := dates.ToDayID(time.Now().In(cfg.Location()))
	e, ok, err := s.Entry(day)
	if err != nil || !ok {
		return false
	}
	return hasNotes(e)
}

func hasNotes(e journal.Entry) bool {
	return strings.TrimSpace(e.Facts+e.Worked+e.Didnt+e.Improvement.Text) != ""
}
