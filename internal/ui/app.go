// Package ui is the Bubble Tea editor for one day's entry.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/kaizen/internal/dates"
	"github.com/ramanasai/kaizen/internal/journal"
	"github.com/ramanasai/kaizen/internal/render"
)

type mode int

const (
	modeNormal mode = iota
	modeEdit
)

const (
	fieldFacts = iota
	fieldWorked
	fieldDidnt
	fieldImprovement
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"What happened (facts)",
	"What worked",
	"What didn’t",
	"One small improvement",
}

type Model struct {
	j     *journal.Journal
	day   dates.DayID
	entry journal.Entry

	areas [3]textarea.Model
	impr  textinput.Model

	mode   mode
	focus  int
	status string
	err    error
	theme  render.Theme
}

func NewModel(j *journal.Journal, day dates.DayID) (Model, error) {
	entry, err := j.GetOrCreate(day)
	if err != nil {
		return Model{}, err
	}

	m := Model{j: j, day: day, entry: entry, theme: render.DefaultTheme}

	texts := [3]string{entry.Facts, entry.Worked, entry.Didnt}
	for i := range m.areas {
		ta := textarea.New()
		ta.SetHeight(3)
		ta.SetWidth(72)
		ta.CharLimit = 0
		ta.SetValue(texts[i])
		ta.Placeholder = "Keep it observable."
		m.areas[i] = ta
	}

	ti := textinput.New()
	ti.SetValue(entry.Improvement.Text)
	ti.Placeholder = "After X, do Y"
	ti.Width = 72
	m.impr = ti

	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == modeEdit {
		switch key.String() {
		case "esc":
			m.mode = modeNormal
			m.syncFromInputs()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.syncFromInputs()
			m.save()
			return m, nil
		}
		var cmd tea.Cmd
		if m.focus == fieldImprovement {
			m.impr, cmd = m.impr.Update(msg)
		} else {
			m.areas[m.focus], cmd = m.areas[m.focus].Update(msg)
		}
		return m, cmd
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "j", "down", "tab":
		m.setFocus((m.focus + 1) % fieldCount)
	case "k", "up", "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "enter", "i":
		m.mode = modeEdit
		m.focusInput()
	case "1", "2", "3", "4":
		idx := int(key.String()[0] - '1')
		m.toggleTag(journal.Domains()[idx])
	case "s":
		m.cycleSleep()
	case "m":
		m.entry.QuickSignal.MovementDone = !m.entry.QuickSignal.MovementDone
		m.save()
	case "d":
		m.entry.QuickSignal.DeepWorkDone = !m.entry.QuickSignal.DeepWorkDone
		m.save()
	case "p":
		m.entry.QuickSignal.SpiritualPracticeDone = !m.entry.QuickSignal.SpiritualPracticeDone
		m.save()
	case "e":
		m.entry.QuickSignal.MentalEmotionalDone = !m.entry.QuickSignal.MentalEmotionalDone
		m.save()
	case "c":
		m.entry.Completed = !m.entry.Completed
		m.save()
	case "w", "ctrl+s":
		m.syncFromInputs()
		m.save()
	}
	return m, nil
}

func (m *Model) setFocus(f int) {
	m.focus = f
}

func (m *Model) focusInput() {
	for i := range m.areas {
		m.areas[i].Blur()
	}
	m.impr.Blur()
	if m.focus == fieldImprovement {
		m.impr.Focus()
	} else {
		m.areas[m.focus].Focus()
	}
}

func (m *Model) syncFromInputs() {
	m.entry.Facts = m.areas[fieldFacts].Value()
	m.entry.Worked = m.areas[fieldWorked].Value()
	m.entry.Didnt = m.areas[fieldDidnt].Value()
	m.entry.Improvement.Text = m.impr.Value()
}

func (m *Model) toggleTag(d journal.Domain) {
	tags := m.entry.DomainTags
	for i, t := range tags {
		if t == d {
			m.entry.DomainTags = append(tags[:i], tags[i+1:]...)
			m.save()
			return
		}
	}
	m.entry.DomainTags = append(tags, d)
	m.save()
}

func (m *Model) cycleSleep() {
	// "" -> 1 -> ... -> 5 -> ""
	switch q := m.entry.QuickSignal.SleepQuality; q {
	case "":
		m.entry.QuickSignal.SleepQuality = "1"
	case "5":
		m.entry.QuickSignal.SleepQuality = ""
	default:
		m.entry.QuickSignal.SleepQuality = string(q[0] + 1)
	}
	m.save()
}

func (m *Model) save() {
	e := m.entry
	patch := journal.Patch{
		Facts:                 &e.Facts,
		Worked:                &e.Worked,
		Didnt:                 &e.Didnt,
		ImprovementText:       &e.Improvement.Text,
		DomainTags:            &e.DomainTags,
		SleepQuality:          &e.QuickSignal.SleepQuality,
		MovementDone:          &e.QuickSignal.MovementDone,
		DeepWorkDone:          &e.QuickSignal.DeepWorkDone,
		SpiritualPracticeDone: &e.QuickSignal.SpiritualPracticeDone,
		MentalEmotionalDone:   &e.QuickSignal.MentalEmotionalDone,
		Completed:             &e.Completed,
	}
	saved, err := m.j.Update(m.day, patch)
	if err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.entry = saved
	m.err = nil
	m.status = "Saved locally."
}

func (m Model) View() string {
	t := m.theme
	var b strings.Builder

	title := string(m.day)
	if m.entry.Completed {
		title += " ✓"
	}
	b.WriteString(t.Title.Render(title) + "  " +
		t.Meta.Render(journal.JoinShort(m.entry.DomainTags)) + "\n\n")

	for f := 0; f < fieldCount; f++ {
		marker := "  "
		if f == m.focus {
			marker = t.Success.Render("› ")
		}
		b.WriteString(marker + t.Label.Render(fieldLabels[f]) + "\n")
		if m.mode == modeEdit && f == m.focus {
			if f == fieldImprovement {
				b.WriteString(m.impr.View() + "\n")
			} else {
				b.WriteString(m.areas[f].View() + "\n")
			}
		} else {
			val := m.fieldValue(f)
			if strings.TrimSpace(val) == "" {
				val = "—"
			}
			b.WriteString("  " + t.Value.Render(val) + "\n")
		}
	}

	if v := journal.ValidateImprovement(m.fieldValue(fieldImprovement)); !v.OK() {
		b.WriteString("  " + t.Hint.Render(v.Hint) + "\n")
	}

	q := m.entry.QuickSignal
	b.WriteString("\n" + t.Meta.Render(fmt.Sprintf(
		"[s]leep=%s [m]ovement=%s [d]eepwork=%s s[p]iritual=%s m[e]ntal=%s [c]ompleted=%s",
		dash(q.SleepQuality), mark(q.MovementDone), mark(q.DeepWorkDone),
		mark(q.SpiritualPracticeDone), mark(q.MentalEmotionalDone), mark(m.entry.Completed))) + "\n")

	if m.err != nil {
		b.WriteString(t.Warning.Render("save failed: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(t.Success.Render(m.status) + "\n")
	}

	if m.mode == modeEdit {
		b.WriteString(t.Meta.Render("editing — esc: done, ctrl+s: save") + "\n")
	} else {
		b.WriteString(t.Meta.Render("j/k: move  enter: edit  1-4: lenses  w: save  q: quit") + "\n")
	}
	return b.String()
}

func (m Model) fieldValue(f int) string {
	switch f {
	case fieldFacts:
		return m.areas[fieldFacts].Value()
	case fieldWorked:
		return m.areas[fieldWorked].Value()
	case fieldDidnt:
		return m.areas[fieldDidnt].Value()
	default:
		return m.impr.Value()
	}
}

func mark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// Run opens the editor for day and blocks until the user quits.
func Run(j *journal.Journal, day dates.DayID) error {
	m, err := NewModel(j, day)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
