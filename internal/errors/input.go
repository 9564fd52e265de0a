package errors

import "fmt"

// Input and repository error constructors.

// EmptyName creates an error for a section or flag name that is empty after
// normalization.
func EmptyName(what string) *GateError {
	return &GateError{
		Kind:    ErrInput,
		Message: fmt.Sprintf("%s name cannot be empty", what),
	}
}

// DuplicateSection creates an error for adding a section that already exists.
func DuplicateSection(name string) *GateError {
	return &GateError{
		Kind:       ErrDuplicate,
		Message:    fmt.Sprintf("section %q already exists", name),
		Details:    map[string]string{"section": name},
		Suggestion: "Please choose a different name.",
	}
}

// DuplicateFlag creates an error for adding a flag that already exists in
// the section.
func DuplicateFlag(section, name string) *GateError {
	return &GateError{
		Kind:       ErrDuplicate,
		Message:    fmt.Sprintf("feature gate %q already exists", name),
		Details:    map[string]string{"section": section, "flag": name},
		Suggestion: "Toggle the existing gate instead of adding it again.",
	}
}

// SectionNotFound creates an error for a section lookup miss.
func SectionNotFound(name string) *GateError {
	return &GateError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("section not found: %s", name),
		Details: map[string]string{"section": name},
	}
}

// FlagNotFound creates an error for a flag lookup miss.
func FlagNotFound(section, name string) *GateError {
	return &GateError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("feature gate not found: %s", name),
		Details: map[string]string{"section": section, "flag": name},
	}
}

// NoFlags creates an error for an operation that needs at least one flag.
func NoFlags(section string) *GateError {
	return &GateError{
		Kind:       ErrNotFound,
		Message:    fmt.Sprintf("no feature gates available in section %q", section),
		Details:    map[string]string{"section": section},
		Suggestion: "Please add a feature gate first.",
	}
}

// InvalidSelection creates an error for a menu number outside 1..max.
func InvalidSelection(input string, max int) *GateError {
	return &GateError{
		Kind:    ErrInput,
		Message: fmt.Sprintf("invalid selection %q (expected 1-%d)", input, max),
	}
}

// MalformedEntry creates an error for a bulk entry without a "name: value"
// shape.
func MalformedEntry(line string) *GateError {
	return &GateError{
		Kind:       ErrInput,
		Message:    fmt.Sprintf("invalid format: %q", line),
		Suggestion: "Please use 'name: value' format.",
	}
}

// InvalidValue creates an error for a bulk entry whose value is not a
// boolean literal.
func InvalidValue(name, value string) *GateError {
	return &GateError{
		Kind:       ErrInput,
		Message:    fmt.Sprintf("invalid value %q for %q", value, name),
		Suggestion: "Please enter 'true' or 'false'.",
	}
}

// InvalidName creates an error for a name the gate file cannot hold.
func InvalidName(what, name, reason string) *GateError {
	return &GateError{
		Kind:    ErrInput,
		Message: fmt.Sprintf("invalid %s name %q: %s", what, name, reason),
	}
}
