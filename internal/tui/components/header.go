package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	File    string
	Section string
}

// Header displays the open file and current section in a header bar.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			File:    "-",
			Section: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetFile sets the file shown in the header.
func (h *Header) SetFile(path string) {
	h.data.File = path
}

// SetSection sets the section under the cursor. Empty shows "-".
func (h *Header) SetSection(name string) {
	if name == "" {
		name = "-"
	}
	h.data.Section = name
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("GATEKEEP")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	content := title + sep +
		styles.HeaderLabelStyle.Render("File: ") + styles.HeaderValueStyle.Render(h.data.File) + sep +
		styles.HeaderLabelStyle.Render("Section: ") + styles.HeaderValueStyle.Render(h.data.Section)

	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
