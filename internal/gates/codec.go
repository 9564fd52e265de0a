package gates

import (
	"regexp"
	"strconv"
	"strings"
)

// Default header layout: twenty '#' characters on each side of the name.
const (
	DefaultMarker      = "#"
	DefaultMarkerWidth = 20
)

// Format describes the section header layout of a gate file.
type Format struct {
	// Marker is the delimiter character repeated on both sides of a header.
	Marker string
	// Width is how many times Marker is repeated on each side.
	Width int

	header *regexp.Regexp
}

// DefaultFormat returns the standard '#' x 20 header layout.
func DefaultFormat() *Format {
	return NewFormat(DefaultMarker, DefaultMarkerWidth)
}

// NewFormat builds a Format for the given marker and width.
func NewFormat(marker string, width int) *Format {
	run := regexp.QuoteMeta(strings.Repeat(marker, width))
	return &Format{
		Marker: marker,
		Width:  width,
		header: regexp.MustCompile(run + `\s+(.*?)\s+` + run),
	}
}

// Header renders the header line (without newline) for a section name.
func (f *Format) Header(name string) string {
	run := strings.Repeat(f.Marker, f.Width)
	return run + " " + name + " " + run
}

// Parse reads gate file text into a Store.
//
// Lines that start with the marker are header candidates: a match opens a
// new current section, anything else is a comment. Other lines containing
// ':' inside an open section become flags, split at the first ':'; the value
// is true only for a case-insensitive "true". Everything else is dropped.
func (f *Format) Parse(text string) *Store {
	st := NewStore()
	var current *Section

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, f.Marker) {
			if m := f.header.FindStringSubmatch(line); m != nil {
				current = st.open(m[1])
			}
			continue
		}

		if current == nil {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		current.set(name, strings.EqualFold(strings.TrimSpace(value), "true"))
	}

	return st
}

// Serialize renders the store in file order: a header line per section, one
// "name: value" line per flag and a blank line after each section. Empty
// sections still get their header; an empty store renders as "".
func (f *Format) Serialize(st *Store) string {
	var sb strings.Builder
	for _, sec := range st.sections {
		sb.WriteString(f.Header(sec.Name))
		sb.WriteByte('\n')
		for _, fl := range sec.flags {
			sb.WriteString(fl.Name)
			sb.WriteString(": ")
			sb.WriteString(strconv.FormatBool(fl.Value))
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads text using the default format.
func Parse(text string) *Store {
	return DefaultFormat().Parse(text)
}

// Serialize renders st using the default format.
func Serialize(st *Store) string {
	return DefaultFormat().Serialize(st)
}
