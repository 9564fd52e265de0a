// Package styles provides Lip Gloss styles for gatekeep console output and
// the full-screen browser.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/wexinc/gatekeep/internal/config"
)

// Color palette.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Menu styles.
var (
	// MenuTitleStyle is for menu headings ("Feature Gate Management:").
	MenuTitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// HeadingStyle is for listings such as "Available sections:".
	HeadingStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	// PromptStyle is for input prompts.
	PromptStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	// OptionStyle is for numbered menu entries.
	OptionStyle = lipgloss.NewStyle().
			Foreground(Foreground)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Flag value styles.
var (
	// TrueValueStyle renders an enabled flag value.
	TrueValueStyle = lipgloss.NewStyle().
			Foreground(Success)

	// FalseValueStyle renders a disabled flag value.
	FalseValueStyle = lipgloss.NewStyle().
			Foreground(Error)
)

// Browser styles.
var (
	// TitleStyle is for the browser title bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for labels in the header bar.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for values in the header bar.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// SectionStyle is for section names in the browser.
	SectionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// CursorStyle is for the row under the cursor.
	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// StatusBarStyle is the status line under the list.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Value renders a flag value as lowercase true/false in its value color.
func Value(v bool) string {
	if v {
		return TrueValueStyle.Render("true")
	}
	return FalseValueStyle.Render("false")
}

// Configure selects the color profile for mode. Auto colors output only
// when out is a terminal.
func Configure(mode config.ColorMode, out io.Writer) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
	default:
		if !IsTerminal(out) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
