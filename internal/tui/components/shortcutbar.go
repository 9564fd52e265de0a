// Package components provides reusable TUI components for gatekeep.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays contextual keyboard shortcuts at the bottom of the
// browser.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}

	content := strings.Join(parts, styles.HelpStyle.Render(" │ "))

	if s.centered && s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

// Shortcut sets for the browser modes.
var (
	// BrowseShortcuts are shown while moving through the gate list.
	BrowseShortcuts = []ShortcutDef{
		{"↑↓", "move"},
		{"space", "toggle"},
		{"a", "add gate"},
		{"s", "add section"},
		{"d", "remove"},
		{"?", "help"},
		{"q", "quit"},
	}

	// InputShortcuts are shown while typing into the input line.
	InputShortcuts = []ShortcutDef{
		{"Enter", "submit"},
		{"Esc", "cancel"},
	}
)
