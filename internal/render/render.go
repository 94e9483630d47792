// Package render formats journal records for the terminal.
package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/review"
)

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Meta    lipgloss.Style
	Sep     lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

var DefaultTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:   lipgloss.NewStyle(),
	Meta:    lipgloss.NewStyle().Faint(true),
	Sep:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")),
}

// Monochrome strips all color for --no-color output.
var Monochrome = Theme{
	Title:   lipgloss.NewStyle().Bold(true),
	Label:   lipgloss.NewStyle(),
	Value:   lipgloss.NewStyle(),
	Meta:    lipgloss.NewStyle(),
	Sep:     lipgloss.NewStyle(),
	Hint:    lipgloss.NewStyle(),
	Success: lipgloss.NewStyle(),
	Warning: lipgloss.NewStyle(),
}

func Width() int {
	w := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			w = v
		}
	}
	if w > 120 {
		w = 120
	}
	return w
}

func (t Theme) rule() string {
	return t.Sep.Render(strings.Repeat("─", Width()))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// Entry renders a full day record.
func (t Theme) Entry(e journal.Entry) string {
	var b strings.Builder

	title := string(e.Date)
	if e.Completed {
		title += " ✓"
	}
	b.WriteString(t.Title.Render(title) + "  " + t.Meta.Render(journal.JoinShort(e.DomainTags)) + "\n")
	b.WriteString(t.rule() + "\n")

	section := func(label, text string) {
		b.WriteString(t.Label.Render(label) + "\n")
		b.WriteString("  " + t.Value.Render(orDash(text)) + "\n")
	}
	section("What happened (facts)", e.Facts)
	section("What worked", e.Worked)
	section("What didn’t", e.Didnt)

	b.WriteString(t.Label.Render("One small improvement") + "\n")
	b.WriteString("  " + t.Value.Render(orDash(e.Improvement.Text)) + "\n")
	b.WriteString("  " + t.Meta.Render(fmt.Sprintf("%s • Status: %s",
		journal.JoinShort(e.Improvement.Domains), e.Improvement.Status)) + "\n")
	if v := journal.ValidateImprovement(e.Improvement.Text); !v.OK() {
		b.WriteString("  " + t.Hint.Render(v.Hint) + "\n")
	}

	if len(e.LensNotes) > 0 {
		b.WriteString(t.Label.Render("Lens notes") + "\n")
		for _, d := range journal.Domains() {
			if note, ok := e.LensNotes[d]; ok {
				b.WriteString("  " + t.Meta.Render(d.Short()+": ") + t.Value.Render(orDash(note)) + "\n")
			}
		}
	}

	q := e.QuickSignal
	b.WriteString(t.Meta.Render(fmt.Sprintf(
		"sleep=%s movement=%s deepwork=%s spiritual=%s mental=%s",
		orDash(q.SleepQuality), mark(q.MovementDone), mark(q.DeepWorkDone),
		mark(q.SpiritualPracticeDone), mark(q.MentalEmotionalDone))) + "\n")

	return b.String()
}

// EntryLine renders the one-line timeline form of an entry.
func (t Theme) EntryLine(e journal.Entry) string {
	check := " "
	if e.Completed {
		check = t.Success.Render("✓")
	}
	impr := orDash(strings.TrimSpace(e.Improvement.Text))
	return fmt.Sprintf("%s %s  %s\n    %s",
		t.Title.Render(string(e.Date)), check,
		t.Meta.Render(journal.JoinShort(e.DomainTags)),
		t.Value.Render(impr))
}

// LibraryItem renders one library row.
func (t Theme) LibraryItem(item journal.LibraryItem) string {
	return fmt.Sprintf("%s %s\n    %s",
		t.Meta.Render("["+shortID(item.ID)+"]"),
		t.Value.Render(item.Text),
		t.Meta.Render(fmt.Sprintf("%s • Status: %s • used %d×",
			journal.JoinShort(item.Domains), item.Status, item.UseCount)))
}

// Summary renders the weekly review.
func (t Theme) Summary(sum review.Summary) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Weekly review") + "  " +
		t.Meta.Render(fmt.Sprintf("%s to %s",
			sum.WeekStart.Format("2006-01-02"), sum.WeekEnd.Format("2006-01-02"))) + "\n")
	b.WriteString(t.rule() + "\n")

	b.WriteString(t.Label.Render("Improvements") + "\n")
	if len(sum.Entries) == 0 {
		b.WriteString("  " + t.Meta.Render("No entries this week.") + "\n")
	}
	for _, e := range sum.Entries {
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			t.Meta.Render(string(e.Date)),
			t.Value.Render(orDash(e.Improvement.Text)),
			t.Meta.Render("("+string(e.Improvement.Status)+")")))
	}

	themes := func(label string, terms []review.Term) {
		b.WriteString(t.Label.Render(label) + "\n")
		if len(terms) == 0 {
			b.WriteString("  " + t.Meta.Render("Not enough data yet.") + "\n")
			return
		}
		parts := make([]string, len(terms))
		for i, tm := range terms {
			parts[i] = fmt.Sprintf("%s • %d", tm.Term, tm.Count)
		}
		b.WriteString("  " + t.Value.Render(strings.Join(parts, "   ")) + "\n")
	}
	themes("What worked — themes", sum.WorkedThemes)
	themes("What didn’t — themes", sum.DidntThemes)

	b.WriteString(t.Label.Render("Pattern hints") + "\n")
	if len(sum.PatternHints) == 0 {
		b.WriteString("  " + t.Meta.Render("No strong patterns yet. Keep it light—this improves as you log.") + "\n")
	}
	for _, h := range sum.PatternHints {
		b.WriteString("  " + t.Warning.Render("• "+h) + "\n")
	}
	return b.String()
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
