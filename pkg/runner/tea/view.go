package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/robogirl96/pottypanda/pkg/timeutil"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

const modalWidth = 48

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	toastStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2)
)

// View renders the current screen plus any overlay.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenHistory:
		body = m.viewHistory()
	case screenSettings:
		body = m.viewSettings()
	case screenEdit:
		body = m.viewEdit()
	}

	if m.confirm != nil {
		body += "\n\n" + m.viewConfirm()
	}
	if m.showToast {
		body += "\n\n" + toastStyle.Render(m.toastText)
	}

	return body + "\n\n" + dimStyle.Render(m.status)
}

func (m Model) viewHome() string {
	active := m.svc.ActiveProfile()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Potty Panda") + dimStyle.Render("  tracking "+active.Name))
	b.WriteString("\n\n")

	var lastAt time.Time
	if last, ok := m.svc.LastLog(); ok {
		lastAt = last.Timestamp.Time
	}
	b.WriteString(fmt.Sprintf("Last event: %s\n", timeutil.Relative(lastAt, m.now)))
	b.WriteString(fmt.Sprintf("Today: %d logged\n\n", len(m.svc.LogsToday(m.now))))

	b.WriteString(choiceLine("Type", m.kind == tracker.Pee, tracker.Pee.Title(), tracker.Poop.Title()))
	b.WriteString(choiceLine("Result", m.result == tracker.Success, tracker.Success.Display(), tracker.Accident.Display()))
	b.WriteString("\n")

	noteLabel := "Note: "
	if m.noteFocused {
		noteLabel = selectedStyle.Render("Note: ")
	}
	b.WriteString(noteLabel + m.note.View())

	return b.String()
}

// choiceLine renders a two-option toggle with the selected option bolded.
func choiceLine(label string, firstSelected bool, first, second string) string {
	a := "[" + first + "]"
	b := "[" + second + "]"
	if firstSelected {
		a = selectedStyle.Render(a)
	} else {
		b = selectedStyle.Render(b)
	}
	return fmt.Sprintf("%-8s %s %s\n", label+":", a, b)
}

func (m Model) viewHistory() string {
	active := m.svc.ActiveProfile()
	logs := m.svc.Logs()

	var b strings.Builder
	b.WriteString(headerStyle.Render("History for "+active.Name) + "\n\n")

	if len(logs) == 0 {
		b.WriteString(dimStyle.Render("No logs yet. Press esc and log something."))
		return b.String()
	}

	for i, entry := range logs {
		cursor := "  "
		line := fmt.Sprintf("%s  %s - %s%s",
			entry.Timestamp.Local().Format("Jan 2 15:04"),
			entry.Kind.Title(),
			entry.Result.Display(),
			noteTail(entry.Note))
		if i == m.histIndex {
			cursor = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	return b.String()
}

func noteTail(note string) string {
	if note == "" {
		return ""
	}
	return "  (" + note + ")"
}

func (m Model) viewSettings() string {
	active := m.svc.ActiveProfile()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Child Profiles") + "\n\n")

	for i, profile := range m.svc.Profiles() {
		cursor := "  "
		marker := "  "
		if profile.ID == active.ID {
			marker = "* "
		}
		line := marker + profile.Name
		if i == m.profIndex {
			cursor = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.addingProfile {
		b.WriteString("\nNew profile: " + m.newProfile.View())
	}
	if m.renaming {
		b.WriteString("\nRename to: " + m.renameInput.View())
	}

	return b.String()
}

func (m Model) viewEdit() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Edit Entry") + "\n\n")

	rows := []struct {
		field editField
		label string
		value string
	}{
		{fieldKind, "Type", "[" + m.editKind.Title() + "]"},
		{fieldResult, "Result", "[" + m.editResult.Display() + "]"},
		{fieldTime, "Time", m.editAt.View()},
		{fieldNote, "Note", m.editNote.View()},
	}
	for _, row := range rows {
		cursor := "  "
		label := fmt.Sprintf("%-8s", row.label+":")
		if m.editFocus == row.field {
			cursor = selectedStyle.Render("> ")
			label = selectedStyle.Render(label)
		}
		b.WriteString(cursor + label + " " + row.value + "\n")
	}

	return b.String()
}

func (m Model) viewConfirm() string {
	pending := m.confirm
	lines := []string{
		titleStyle.Render(pending.title),
		"",
		wordwrap.String(pending.message, modalWidth),
		"",
	}
	if pending.kind == confirmAlert {
		lines = append(lines, dimStyle.Render("enter/esc dismiss"))
	} else {
		lines = append(lines, dimStyle.Render("y/enter confirm, n/esc cancel"))
	}
	return modalStyle.Render(strings.Join(lines, "\n"))
}
