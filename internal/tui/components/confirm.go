package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// ConfirmAction represents the action being confirmed.
type ConfirmAction string

const (
	// ConfirmRemoveFlag is for removing a feature gate.
	ConfirmRemoveFlag ConfirmAction = "remove-flag"
	// ConfirmRemoveSection is for removing a section and its gates.
	ConfirmRemoveSection ConfirmAction = "remove-section"
)

// ConfirmDialog asks the user to type "yes" before a destructive action.
// Any other answer cancels.
type ConfirmDialog struct {
	visible bool
	action  ConfirmAction
	target  string
	title   string
	message string
	input   *TextInput
	width   int
}

// NewConfirmDialog creates a new ConfirmDialog component.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{
		input: NewTextInput("Type yes to confirm"),
		width: 60,
	}
}

// Show displays the dialog for action on target.
func (c *ConfirmDialog) Show(action ConfirmAction, target, title, message string) tea.Cmd {
	c.visible = true
	c.action = action
	c.target = target
	c.title = title
	c.message = message
	c.input.Reset()
	return c.input.Focus()
}

// ShowRemoveFlag asks to confirm removing a feature gate.
func (c *ConfirmDialog) ShowRemoveFlag(section, flag string) tea.Cmd {
	return c.Show(ConfirmRemoveFlag, flag, "Remove feature gate?",
		"Are you sure you want to remove the feature gate '"+flag+"' from '"+section+"'?")
}

// ShowRemoveSection asks to confirm removing a section.
func (c *ConfirmDialog) ShowRemoveSection(section string) tea.Cmd {
	return c.Show(ConfirmRemoveSection, section, "Remove section?",
		"Are you sure you want to remove the section '"+section+"' and all of its feature gates?")
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
	c.input.Blur()
}

// IsVisible returns whether the dialog is visible.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// Action returns the current action being confirmed.
func (c *ConfirmDialog) Action() ConfirmAction {
	return c.action
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
	c.input.SetWidth(width - 8)
}

// Update handles input messages.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !c.visible {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			action, target := c.action, c.target
			confirmed := strings.EqualFold(strings.TrimSpace(c.input.Value()), "yes")
			c.Hide()
			if confirmed {
				return func() tea.Msg {
					return ConfirmYesMsg{Action: action, Target: target}
				}
			}
			return func() tea.Msg {
				return ConfirmNoMsg{Action: action}
			}
		case "esc":
			action := c.action
			c.Hide()
			return func() tea.Msg {
				return ConfirmNoMsg{Action: action}
			}
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Error).
		Bold(true).
		Padding(0, 1).
		Width(c.width - 4)
	b.WriteString(titleStyle.Render(c.title))
	b.WriteString("\n\n")

	msgStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(c.width - 8)
	b.WriteString(msgStyle.Render(c.message))
	b.WriteString("\n\n")
	b.WriteString(c.input.View())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Error).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// ConfirmYesMsg is sent when the user typed "yes".
type ConfirmYesMsg struct {
	Action ConfirmAction
	Target string
}

// ConfirmNoMsg is sent when the user cancelled.
type ConfirmNoMsg struct {
	Action ConfirmAction
}
