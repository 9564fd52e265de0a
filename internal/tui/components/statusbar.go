package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Sections      int
	Gates         int
	Enabled       int
	Message       string // Outcome of the last change, if any
	IsError       bool
	ShowShortcuts bool
	Shortcuts     []ShortcutDef
}

// StatusBar shows gate counts, the last message and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			ShowShortcuts: true,
			Shortcuts:     BrowseShortcuts,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetCounts sets the section, gate and enabled gate totals.
func (s *StatusBar) SetCounts(sections, gates, enabled int) {
	s.data.Sections = sections
	s.data.Gates = gates
	s.data.Enabled = enabled
}

// SetMessage sets the status message. isErr renders it as an error.
func (s *StatusBar) SetMessage(message string, isErr bool) {
	s.data.Message = message
	s.data.IsError = isErr
}

// SetShortcuts replaces the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")
	label := lipgloss.NewStyle().Foreground(styles.MutedLight)
	value := lipgloss.NewStyle().Foreground(styles.Foreground)

	leftContent := label.Render("Sections: ") + value.Render(fmt.Sprintf("%d", s.data.Sections)) + sep +
		label.Render("Gates: ") + value.Render(fmt.Sprintf("%d", s.data.Gates)) + sep +
		label.Render("On: ") + styles.TrueValueStyle.Render(fmt.Sprintf("%d", s.data.Enabled))

	if s.data.Message != "" {
		msgStyle := styles.SuccessTextStyle
		if s.data.IsError {
			msgStyle = styles.ErrorTextStyle
		}
		leftContent += sep + msgStyle.Render(s.data.Message)
	}

	rightContent := ""
	if s.data.ShowShortcuts && len(s.data.Shortcuts) > 0 {
		rightContent = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := styles.StatusBarStyle

	if s.width > 0 {
		// Calculate spacing; too narrow falls through to two lines
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // -2 for container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	if rightContent == "" {
		return containerStyle.Render(leftContent)
	}
	return containerStyle.Render(leftContent) + "\n" + containerStyle.Render(rightContent)
}
