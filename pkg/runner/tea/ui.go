// Package teaui is the interactive tracker: capture on the home screen,
// browse and edit history, manage profiles, export to the clipboard. All
// destructive actions pass through a confirmation overlay.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/robogirl96/pottypanda/pkg/app"
	"github.com/robogirl96/pottypanda/pkg/store"
	"github.com/robogirl96/pottypanda/pkg/tracker"
)

type screen int

const (
	screenHome screen = iota
	screenHistory
	screenSettings
	screenEdit
)

// editField is the cursor position on the edit screen.
type editField int

const (
	fieldKind editField = iota
	fieldResult
	fieldTime
	fieldNote
)

type confirmKind int

const (
	// confirmDestroy asks before applying; y/enter applies, n/esc cancels.
	confirmDestroy confirmKind = iota
	// confirmAlert only acknowledges; there is nothing to apply.
	confirmAlert
)

// pendingConfirm is the two-phase gate in front of destructive actions:
// the descriptor is shown until the user affirms or dismisses it. Closing
// the overlay without confirming performs no mutation.
type pendingConfirm struct {
	kind    confirmKind
	title   string
	message string
	apply   func(m *Model) tea.Cmd
}

const toastDelay = 3 * time.Second

// Model contains the UI state.
type Model struct {
	svc *app.Service
	ctx context.Context

	screen screen

	// Home capture state.
	kind        tracker.Kind
	result      tracker.Result
	note        textinput.Model
	noteFocused bool

	// History cursor.
	histIndex int

	// Settings state.
	profIndex      int
	renameInput    textinput.Model
	renameTargetID string
	renaming       bool
	newProfile     textinput.Model
	addingProfile  bool

	// Edit buffers.
	editID     string
	editKind   tracker.Kind
	editResult tracker.Result
	editAt     textinput.Model
	editNote   textinput.Model
	editFocus  editField

	confirm   *pendingConfirm
	showToast bool
	toastText string

	watch <-chan store.Event

	now    time.Time
	status string

	termWidth  int
	termHeight int
}

// New creates the UI model backed by the Service.
func New(svc *app.Service) Model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.Styles.Cursor.Color = lipgloss.Color("218")
		ti.Styles.Cursor.Shape = tea.CursorUnderline
		return ti
	}

	m := Model{
		svc:        svc,
		ctx:        context.Background(),
		screen:     screenHome,
		kind:       tracker.Pee,
		result:     tracker.Success,
		note:       newInput("Details (e.g. self-initiated, nap time)"),
		renameInput: newInput("New name"),
		newProfile: newInput("Name (e.g. Suzie)"),
		editAt:     newInput("2006-01-02T15:04"),
		editNote:   newInput("Add details (e.g. self-initiated)"),
		now:        time.Now(),
		status:     "p/o type, s/m result, n note, enter log, h history, c settings, q quit",
	}
	if events, err := svc.Watch(m.ctx); err == nil {
		m.watch = events
	}
	return m
}

// messages
type nowTickMsg time.Time
type toastClearMsg struct{}
type storeChangedMsg struct{}
type watchClosedMsg struct{}
type errMsg struct{ err error }

func nowTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return nowTickMsg(t)
	})
}

func toastTimer() tea.Cmd {
	return tea.Tick(toastDelay, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

func waitForChange(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; ok {
			return storeChangedMsg{}
		}
		return watchClosedMsg{}
	}
}

// Init starts the minute tick and, when watching, the store subscription.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{nowTick()}
	if m.watch != nil {
		cmds = append(cmds, waitForChange(m.watch))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case nowTickMsg:
		// Refresh the relative-time display only; no mutation happens here.
		m.now = time.Time(msg)
		cmds = append(cmds, nowTick())

	case toastClearMsg:
		m.showToast = false

	case storeChangedMsg:
		m.svc.Reload(m.ctx)
		m.clampCursors()
		if m.watch != nil {
			cmds = append(cmds, waitForChange(m.watch))
		}

	case watchClosedMsg:
		m.watch = nil

	case errMsg:
		m.status = "ERR: " + msg.err.Error()

	case tea.KeyPressMsg:
		if m.confirm != nil {
			m.updateConfirm(msg, &cmds)
			break
		}
		switch m.screen {
		case screenHome:
			m.updateHome(msg, &cmds)
		case screenHistory:
			m.updateHistory(msg, &cmds)
		case screenSettings:
			m.updateSettings(msg, &cmds)
		case screenEdit:
			m.updateEdit(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	pending := m.confirm
	switch msg.String() {
	case "y", "enter":
		m.confirm = nil
		if pending.kind == confirmDestroy && pending.apply != nil {
			if cmd := pending.apply(m); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		}
	case "n", "esc", "q":
		m.confirm = nil
		m.status = "Cancelled"
	}
}

func (m *Model) updateHome(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.noteFocused {
		switch msg.String() {
		case "enter", "esc":
			m.noteFocused = false
			m.note.Blur()
		default:
			var cmd tea.Cmd
			m.note, cmd = m.note.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return
	}

	switch msg.String() {
	case "p":
		m.kind = tracker.Pee
	case "o":
		m.kind = tracker.Poop
	case "s":
		m.result = tracker.Success
	case "m":
		m.result = tracker.Accident
	case "n":
		m.noteFocused = true
		if cmd := m.note.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "enter":
		active := m.svc.ActiveProfile()
		m.svc.AddLog(active.ID, m.kind, m.result, m.note.Value())
		m.note.Reset()
		m.status = fmt.Sprintf("Logged %s - %s for %s", m.kind.Title(), m.result.Display(), active.Name)
	case "h":
		m.screen = screenHistory
		m.histIndex = 0
		m.status = "j/k move, e edit, d delete, x export, esc back"
	case "c":
		m.screen = screenSettings
		m.profIndex = m.activeProfileIndex()
		m.status = "j/k move, enter select, a add, r rename, D delete, C clear history, esc back"
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	}
}

func (m *Model) updateHistory(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	logs := m.svc.Logs()
	switch msg.String() {
	case "j", "down":
		if m.histIndex < len(logs)-1 {
			m.histIndex++
		}
	case "k", "up":
		if m.histIndex > 0 {
			m.histIndex--
		}
	case "e":
		if m.histIndex < len(logs) {
			m.openEdit(logs[m.histIndex])
		}
	case "d":
		if m.histIndex < len(logs) {
			id := logs[m.histIndex].ID
			m.confirm = &pendingConfirm{
				kind:    confirmDestroy,
				title:   "Delete Entry?",
				message: "Are you sure you want to remove this log? This cannot be undone.",
				apply: func(m *Model) tea.Cmd {
					m.svc.DeleteLog(id)
					m.clampCursors()
					m.status = "Entry deleted"
					return nil
				},
			}
		}
	case "x":
		*cmds = append(*cmds, m.exportActive())
	case "esc", "h":
		m.screen = screenHome
		m.status = "p/o type, s/m result, n note, enter log, h history, c settings, q quit"
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	}
}

func (m *Model) updateSettings(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if m.renaming {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.renameInput.Value())
			if name == "" {
				m.status = "Name must not be empty"
			} else if err := m.svc.RenameProfile(m.renameTargetID, name); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.status = "Renamed"
			}
			m.renaming = false
			m.renameInput.Blur()
			m.renameInput.Reset()
		case "esc":
			m.renaming = false
			m.renameInput.Blur()
			m.renameInput.Reset()
			m.status = "Rename cancelled"
		default:
			var cmd tea.Cmd
			m.renameInput, cmd = m.renameInput.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return
	}
	if m.addingProfile {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.newProfile.Value())
			if name == "" {
				m.status = "Name must not be empty"
			} else if profile, err := m.svc.AddProfile(name); err != nil {
				m.status = "ERR: " + err.Error()
			} else {
				m.status = fmt.Sprintf("Added %s", profile.Name)
				m.profIndex = m.activeProfileIndex()
			}
			m.addingProfile = false
			m.newProfile.Blur()
			m.newProfile.Reset()
		case "esc":
			m.addingProfile = false
			m.newProfile.Blur()
			m.newProfile.Reset()
			m.status = "Add cancelled"
		default:
			var cmd tea.Cmd
			m.newProfile, cmd = m.newProfile.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return
	}

	profiles := m.svc.Profiles()
	switch msg.String() {
	case "j", "down":
		if m.profIndex < len(profiles)-1 {
			m.profIndex++
		}
	case "k", "up":
		if m.profIndex > 0 {
			m.profIndex--
		}
	case "enter":
		if m.profIndex < len(profiles) {
			if err := m.svc.SetActiveProfile(profiles[m.profIndex].ID); err == nil {
				m.status = fmt.Sprintf("Active profile is now %s", profiles[m.profIndex].Name)
			}
		}
	case "a":
		m.addingProfile = true
		if cmd := m.newProfile.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "r":
		if m.profIndex < len(profiles) {
			m.renaming = true
			m.renameTargetID = profiles[m.profIndex].ID
			m.renameInput.SetValue(profiles[m.profIndex].Name)
			m.renameInput.CursorEnd()
			if cmd := m.renameInput.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			*cmds = append(*cmds, textinput.Blink)
		}
	case "D":
		if m.profIndex < len(profiles) {
			m.requestDeleteProfile(profiles[m.profIndex])
		}
	case "C":
		active := m.svc.ActiveProfile()
		m.confirm = &pendingConfirm{
			kind:    confirmDestroy,
			title:   fmt.Sprintf("Clear History for %s?", active.Name),
			message: "This will permanently delete ALL logs for this profile. This action cannot be undone.",
			apply: func(m *Model) tea.Cmd {
				removed := m.svc.ClearLogsForProfile(active.ID)
				m.clampCursors()
				m.status = fmt.Sprintf("Removed %d entries", removed)
				return nil
			},
		}
	case "esc", "h":
		m.screen = screenHome
		m.status = "p/o type, s/m result, n note, enter log, h history, c settings, q quit"
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	}
}

// requestDeleteProfile raises either the destructive confirmation or, for
// the last remaining profile, an acknowledge-only notice.
func (m *Model) requestDeleteProfile(profile tracker.Profile) {
	if len(m.svc.Profiles()) <= 1 {
		m.confirm = &pendingConfirm{
			kind:    confirmAlert,
			title:   "Cannot Delete Profile",
			message: "You must have at least one profile in the app.",
		}
		return
	}
	m.confirm = &pendingConfirm{
		kind:    confirmDestroy,
		title:   fmt.Sprintf("Delete %s?", profile.Name),
		message: "This will remove the profile and permanently delete all their logs. This cannot be undone.",
		apply: func(m *Model) tea.Cmd {
			if err := m.svc.DeleteProfile(profile.ID); err != nil {
				return func() tea.Msg { return errMsg{err} }
			}
			m.profIndex = m.activeProfileIndex()
			m.status = fmt.Sprintf("Deleted %s", profile.Name)
			return nil
		},
	}
}

func (m *Model) updateEdit(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	typing := (m.editFocus == fieldTime && m.editAt.Focused()) ||
		(m.editFocus == fieldNote && m.editNote.Focused())

	if typing {
		switch msg.String() {
		case "enter", "esc":
			m.editAt.Blur()
			m.editNote.Blur()
		default:
			var cmd tea.Cmd
			if m.editFocus == fieldTime {
				m.editAt, cmd = m.editAt.Update(msg)
			} else {
				m.editNote, cmd = m.editNote.Update(msg)
			}
			*cmds = append(*cmds, cmd)
		}
		return
	}

	switch msg.String() {
	case "j", "down", "tab":
		if m.editFocus < fieldNote {
			m.editFocus++
		}
	case "k", "up":
		if m.editFocus > fieldKind {
			m.editFocus--
		}
	case "h", "l", "left", "right", " ":
		switch m.editFocus {
		case fieldKind:
			if m.editKind == tracker.Pee {
				m.editKind = tracker.Poop
			} else {
				m.editKind = tracker.Pee
			}
		case fieldResult:
			if m.editResult == tracker.Success {
				m.editResult = tracker.Accident
			} else {
				m.editResult = tracker.Success
			}
		}
	case "i":
		switch m.editFocus {
		case fieldTime:
			if cmd := m.editAt.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			*cmds = append(*cmds, textinput.Blink)
		case fieldNote:
			if cmd := m.editNote.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			*cmds = append(*cmds, textinput.Blink)
		}
	case "enter":
		at, err := tracker.ParseTime(strings.TrimSpace(m.editAt.Value()))
		if err != nil {
			m.status = "Invalid time, use 2006-01-02T15:04"
			return
		}
		m.svc.EditLog(m.editID, m.editKind, m.editResult, at, m.editNote.Value())
		m.screen = screenHistory
		m.status = "Saved"
	case "esc":
		m.screen = screenHistory
		m.status = "Edit cancelled"
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	}
}

func (m *Model) openEdit(entry *tracker.Entry) {
	m.screen = screenEdit
	m.editID = entry.ID
	m.editKind = entry.Kind
	m.editResult = entry.Result
	m.editAt.SetValue(entry.Timestamp.Local().Format("2006-01-02T15:04"))
	m.editNote.SetValue(entry.Note)
	m.editFocus = fieldKind
	m.status = "j/k field, h/l toggle, i type, enter save, esc cancel"
}

// exportActive copies the active profile's report to the clipboard. The
// empty case and clipboard failures surface as acknowledge-only notices.
func (m *Model) exportActive() tea.Cmd {
	report, err := m.svc.ExportText(m.now)
	if err != nil {
		m.confirm = &pendingConfirm{
			kind:    confirmAlert,
			title:   "No Data",
			message: "There are no logs to export for this profile.",
		}
		return nil
	}
	if err := clipboard.WriteAll(report); err != nil {
		m.confirm = &pendingConfirm{
			kind:    confirmAlert,
			title:   "Copy Failed",
			message: "Could not copy to clipboard. Run `pottypanda export --stdout` instead.",
		}
		return nil
	}
	m.showToast = true
	m.toastText = "Log copied to clipboard!"
	return toastTimer()
}

func (m *Model) activeProfileIndex() int {
	active := m.svc.ActiveProfile()
	for i, profile := range m.svc.Profiles() {
		if profile.ID == active.ID {
			return i
		}
	}
	return 0
}

// clampCursors keeps list cursors valid after entries or profiles vanish.
func (m *Model) clampCursors() {
	if n := len(m.svc.Logs()); m.histIndex >= n {
		m.histIndex = n - 1
	}
	if m.histIndex < 0 {
		m.histIndex = 0
	}
	if n := len(m.svc.Profiles()); m.profIndex >= n {
		m.profIndex = n - 1
	}
	if m.profIndex < 0 {
		m.profIndex = 0
	}
}

// Run starts the program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
