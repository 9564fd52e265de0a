package gates

import (
	"strings"
	"unicode"
	"unicode/utf8"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
)

// NormalizeName turns user input into a flag name: colons are removed,
// surrounding whitespace is stripped, the rest is lowercased and spaces
// become hyphens.
//
//	NormalizeName("  Dark Mode: ") == "dark-mode"
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, ":", ""))
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// CheckName validates a normalized flag name. A name must start with a
// letter or digit, which no header marker can be, and stay on one line.
func CheckName(name string) error {
	if name == "" {
		return gkerrors.EmptyName("feature gate")
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		err := gkerrors.InvalidName("feature gate", name, "must start with a letter or number")
		err.Suggestion = "Use lowercase letters, numbers, and hyphens."
		return err
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return gkerrors.InvalidName("feature gate", name, "must not contain control characters")
	}
	return nil
}

// NamingGuidelines are shown before the user types new flag names.
var NamingGuidelines = []string{
	"Use lowercase letters, numbers, and hyphens.",
	"Start with a letter.",
	"Use hyphens to separate words.",
	"Be concise but descriptive.",
	"Avoid special characters other than hyphens.",
}

// NamingExamples are sample names shown with NamingGuidelines.
const NamingExamples = "'new-feature', 'dark-mode-enabled', 'beta-test-2023'"

// ParseEntry parses a bulk "name: value" entry. The name is normalized and
// the value must be "true" or "false" (case-insensitive).
func ParseEntry(line string) (Flag, error) {
	rawName, rawValue, ok := strings.Cut(line, ":")
	if !ok {
		return Flag{}, gkerrors.MalformedEntry(line)
	}

	name := NormalizeName(rawName)
	if err := CheckName(name); err != nil {
		return Flag{}, err
	}

	switch value := strings.ToLower(strings.TrimSpace(rawValue)); value {
	case "true":
		return Flag{Name: name, Value: true}, nil
	case "false":
		return Flag{Name: name, Value: false}, nil
	default:
		return Flag{}, gkerrors.InvalidValue(name, value)
	}
}

// AddEntry parses one bulk entry and appends it to the section.
func (s *Section) AddEntry(line string) (Flag, error) {
	f, err := ParseEntry(line)
	if err != nil {
		return Flag{}, err
	}
	if s.Has(f.Name) {
		return Flag{}, gkerrors.DuplicateFlag(s.Name, f.Name)
	}
	s.flags = append(s.flags, f)
	return f, nil
}

// EntryResult is the outcome of one line of a bulk add.
type EntryResult struct {
	Line string
	Flag Flag
	Err  error
}

// AddFlagsBulk applies "name: value" lines to the section until the first
// empty line. Each line is validated on its own; invalid or duplicate lines
// are reported in the results and skipped while valid ones are applied.
func AddFlagsBulk(s *Section, lines []string) []EntryResult {
	var results []EntryResult
	for _, line := range lines {
		if line == "" {
			break
		}
		f, err := s.AddEntry(line)
		results = append(results, EntryResult{Line: line, Flag: f, Err: err})
	}
	return results
}
