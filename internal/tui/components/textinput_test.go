package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewTextInput(t *testing.T) {
	ti := NewTextInput("Section name")
	if ti == nil {
		t.Fatal("NewTextInput returned nil")
	}
	if ti.Label() != "Section name" {
		t.Errorf("Label() = %q", ti.Label())
	}
	if ti.Value() != "" {
		t.Errorf("Expected empty value, got '%s'", ti.Value())
	}
}

func TestTextInputFocus(t *testing.T) {
	ti := NewTextInput("Test Label")

	if ti.Focused() {
		t.Error("TextInput should not be focused initially")
	}

	ti.Focus()
	if !ti.Focused() {
		t.Error("TextInput should be focused after Focus()")
	}

	ti.Blur()
	if ti.Focused() {
		t.Error("TextInput should not be focused after Blur()")
	}
}

func TestTextInputUpdate(t *testing.T) {
	ti := NewTextInput("Test Label")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}

	// Unfocused input ignores keys
	ti, cmd := ti.Update(msg)
	if cmd != nil {
		t.Error("Update without focus should return nil cmd")
	}
	if ti.Value() != "" {
		t.Errorf("unfocused input should not change, got %q", ti.Value())
	}

	ti.Focus()
	ti, _ = ti.Update(msg)
	ti, _ = ti.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(": true")})
	if ti.Value() != "a: true" {
		t.Errorf("Value() = %q, want %q", ti.Value(), "a: true")
	}
}

func TestTextInputViewContainsLabel(t *testing.T) {
	ti := NewTextInput("New gate")
	ti.SetPlaceholder("name: true")
	ti.SetWidth(40)

	if !strings.Contains(ti.View(), "New gate") {
		t.Error("View should contain the label")
	}
}

func TestTextInputReset(t *testing.T) {
	ti := NewTextInput("Test Label")
	ti.SetValue("some value")
	ti.SetLabel("Other")

	ti.Reset()
	if ti.Value() != "" {
		t.Errorf("Value should be empty after Reset, got '%s'", ti.Value())
	}
	if ti.Label() != "Other" {
		t.Errorf("Label() = %q", ti.Label())
	}
}
