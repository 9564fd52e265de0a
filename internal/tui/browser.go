// Package tui provides the full-screen feature gate browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/logging"
	"github.com/wexinc/gatekeep/internal/tui/components"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// Saver persists the store after every change.
type Saver interface {
	Save() error
}

// inputMode is what the input line is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputFlag
	inputSection
)

// row is one visible line of the list: a section header or one of its gates.
type row struct {
	section string
	flag    string
}

func (r row) isSection() bool {
	return r.flag == ""
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	store *gates.Store
	saver Saver

	cursor    int
	mode      inputMode
	target    string
	input     *components.TextInput
	confirm   *components.ConfirmDialog
	help      *components.HelpOverlay
	header    *components.Header
	statusBar *components.StatusBar

	status    string
	statusErr bool

	width    int
	height   int
	quitting bool
}

// New creates a browser over store. title is shown in the header, usually
// the file path.
func New(title string, store *gates.Store, saver Saver) *Model {
	m := &Model{
		store:     store,
		saver:     saver,
		input:     components.NewTextInput(""),
		confirm:   components.NewConfirmDialog(),
		help:      components.NewHelpOverlay(),
		header:    components.NewHeader(),
		statusBar: components.NewStatusBar(),
	}
	m.header.SetFile(title)
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// rows flattens the store into display rows. It is rebuilt on every use so
// positions always match the current store.
func (m *Model) rows() []row {
	var rows []row
	for _, sec := range m.store.Sections() {
		rows = append(rows, row{section: sec.Name})
		for _, name := range sec.Names() {
			rows = append(rows, row{section: sec.Name, flag: name})
		}
	}
	return rows
}

func (m *Model) current() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays capture input while visible
	if m.confirm.IsVisible() {
		return m, m.confirm.Update(msg)
	}
	if m.help.IsVisible() {
		return m, m.help.Update(msg)
	}
	if m.mode != inputNone {
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.handleInputKey(key)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.input.SetWidth(msg.Width)
		m.confirm.SetSize(min(msg.Width, 70))
		m.help.SetWidth(min(msg.Width, 60))
		return m, nil

	case components.ConfirmYesMsg:
		return m.handleConfirmYes(msg)

	case components.ConfirmNoMsg:
		m.setStatus("Removal cancelled.", false)
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input while browsing.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.help.Toggle()
		return m, nil

	case "j", "down":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g":
		m.cursor = 0
		return m, nil

	case "G":
		m.cursor = len(m.rows()) - 1
		m.clampCursor()
		return m, nil

	case " ", "enter":
		r, ok := m.current()
		if !ok || r.isSection() {
			m.setStatus("Select a feature gate to toggle.", false)
			return m, nil
		}
		m.toggle(r)
		return m, nil

	case "a":
		r, ok := m.current()
		if !ok {
			m.setStatus("No sections available. Please add a section first.", true)
			return m, nil
		}
		return m, m.startInput(inputFlag, r.section, "New gate in "+r.section, "name: true")

	case "s":
		return m, m.startInput(inputSection, "", "New section", "section name")

	case "d":
		r, ok := m.current()
		if !ok {
			return m, nil
		}
		if r.isSection() {
			return m, m.confirm.ShowRemoveSection(r.section)
		}
		return m, m.confirm.ShowRemoveFlag(r.section, r.flag)
	}

	return m, nil
}

func (m *Model) startInput(mode inputMode, target, label, placeholder string) tea.Cmd {
	m.mode = mode
	m.target = target
	m.input.SetLabel(label)
	m.input.SetPlaceholder(placeholder)
	m.input.Reset()
	m.statusBar.SetShortcuts(components.InputShortcuts...)
	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = inputNone
	m.target = ""
	m.input.Blur()
	m.statusBar.SetShortcuts(components.BrowseShortcuts...)
}

// handleInputKey handles keys while the input line is active.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopInput()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		value := m.input.Value()
		mode, target := m.mode, m.target
		m.stopInput()
		if mode == inputFlag {
			m.addFlag(target, value)
		} else {
			m.addSection(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) toggle(r row) {
	value, err := m.store.Toggle(r.section, r.flag)
	if err != nil {
		m.setStatus(gkerrors.Message(err), true)
		return
	}
	logging.Info("toggled feature gate", "section", r.section, "flag", r.flag, "value", value)
	m.save(fmt.Sprintf("%s: %t", r.flag, value))
}

func (m *Model) addFlag(section, entry string) {
	sec, ok := m.store.Section(section)
	if !ok {
		m.setStatus(gkerrors.Message(gkerrors.SectionNotFound(section)), true)
		return
	}
	f, err := sec.AddEntry(entry)
	if err != nil {
		m.setStatus(gkerrors.Message(err), true)
		return
	}
	logging.Info("added feature gate", "section", section, "flag", f.Name, "value", f.Value)
	m.save("Added: " + f.String())
}

func (m *Model) addSection(name string) {
	sec, err := m.store.AddSection(name)
	if err != nil {
		m.setStatus(gkerrors.Message(err), true)
		return
	}
	logging.Info("added section", "section", sec.Name)
	m.save(fmt.Sprintf("New section '%s' added successfully.", sec.Name))
}

// handleConfirmYes removes the confirmed section or gate.
func (m *Model) handleConfirmYes(msg components.ConfirmYesMsg) (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case components.ConfirmRemoveSection:
		if err := m.store.RemoveSection(msg.Target); err != nil {
			m.setStatus(gkerrors.Message(err), true)
			return m, nil
		}
		logging.Info("removed section", "section", msg.Target)
		m.save(fmt.Sprintf("Section '%s' removed successfully.", msg.Target))

	case components.ConfirmRemoveFlag:
		sec, found := m.store.Section(r.section)
		if !found {
			return m, nil
		}
		if err := sec.RemoveFlag(msg.Target); err != nil {
			m.setStatus(gkerrors.Message(err), true)
			return m, nil
		}
		logging.Info("removed feature gate", "section", r.section, "flag", msg.Target)
		m.save(fmt.Sprintf("Feature gate '%s' removed successfully.", msg.Target))
	}

	m.clampCursor()
	return m, nil
}

// save writes the store and reports the outcome on the status line.
func (m *Model) save(done string) {
	if err := m.saver.Save(); err != nil {
		m.setStatus(gkerrors.Message(err)+" (changes kept in memory)", true)
		return
	}
	m.setStatus(done+" File updated successfully.", false)
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// View renders the browser.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	r, _ := m.current()
	m.header.SetSection(r.section)
	b.WriteString(m.header.View())
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("No sections yet. Press s to add one."))
		b.WriteString("\n")
	}

	for i, r := range rows {
		pointer := "  "
		if i == m.cursor {
			pointer = styles.CursorStyle.Render("> ")
		}

		if r.isSection() {
			b.WriteString(pointer + styles.SectionStyle.Render(r.section) + "\n")
			continue
		}

		sec, _ := m.store.Section(r.section)
		f, _ := sec.Get(r.flag)
		name := r.flag
		if i == m.cursor {
			name = styles.CursorStyle.Render(name)
		}
		b.WriteString(pointer + "  " + name + ": " + styles.Value(f.Value) + "\n")
	}

	b.WriteString("\n")
	if m.mode != inputNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	m.statusBar.SetCounts(m.counts())
	m.statusBar.SetMessage(m.status, m.statusErr)
	b.WriteString(m.statusBar.View())

	view := b.String()
	if m.help.IsVisible() {
		view = m.renderOverlay(view, m.help.View())
	}
	if m.confirm.IsVisible() {
		view = m.renderOverlay(view, m.confirm.View())
	}
	return view
}

// counts returns the number of sections, gates and enabled gates.
func (m *Model) counts() (sections, total, enabled int) {
	for _, sec := range m.store.Sections() {
		sections++
		for _, f := range sec.Flags() {
			total++
			if f.Value {
				enabled++
			}
		}
	}
	return sections, total, enabled
}

// renderOverlay renders an overlay below the base view, centered when the
// window size is known.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width > 0 {
		overlay = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, overlay)
	}
	return base + "\n" + overlay
}

// Run starts the browser in the alternate screen and blocks until the user
// quits.
func Run(title string, store *gates.Store, saver Saver, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(title, store, saver), opts...)
	_, err := p.Run()
	return err
}
