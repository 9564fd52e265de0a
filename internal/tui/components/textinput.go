package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// TextInput is a labelled single-line input built on the bubbles
// textinput component.
type TextInput struct {
	model   textinput.Model
	label   string
	focused bool
}

// NewTextInput creates a new TextInput component.
func NewTextInput(label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return &TextInput{
		model: ti,
		label: label,
	}
}

// Label returns the input label.
func (t *TextInput) Label() string {
	return t.label
}

// SetLabel changes the input label.
func (t *TextInput) SetLabel(label string) {
	t.label = label
}

// Focus focuses the text input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur removes focus from the text input.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

// Focused returns whether the text input is focused.
func (t *TextInput) Focused() bool {
	return t.focused
}

// SetValue sets the text input value.
func (t *TextInput) SetValue(value string) {
	t.model.SetValue(value)
}

// Value returns the current text input value.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.model.Placeholder = placeholder
}

// SetWidth sets the width of the text input.
func (t *TextInput) SetWidth(width int) {
	t.model.Width = width - len(t.label) - 5 // Account for label and padding
	if t.model.Width < 10 {
		t.model.Width = 10
	}
}

// Update handles messages for the text input.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t *TextInput) View() string {
	labelStyle := styles.MutedTextStyle
	inputStyle := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Padding(0, 1)
	if t.focused {
		labelStyle = styles.PromptStyle.Bold(true)
		inputStyle = lipgloss.NewStyle().
			Foreground(styles.Foreground).
			Background(styles.Background).
			Padding(0, 1)
	}

	return labelStyle.Render(t.label+": ") + inputStyle.Render(t.model.View())
}

// Reset clears the text input value.
func (t *TextInput) Reset() {
	t.model.Reset()
}
