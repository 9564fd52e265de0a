// Package gates provides the feature gate data model: an ordered store of
// named sections, each holding ordered boolean flags, plus the operations
// that mutate it and the codec that reads and writes the on-disk format.
package gates

import (
	"strconv"
	"strings"
	"unicode"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
)

// Flag is a single named boolean feature gate.
type Flag struct {
	Name  string
	Value bool
}

// String renders the flag the way it is written to disk.
func (f Flag) String() string {
	return f.Name + ": " + strconv.FormatBool(f.Value)
}

// Section is a named, ordered collection of flags. Flag names are unique
// within a section.
type Section struct {
	Name  string
	flags []Flag
}

// NewSection creates an empty section.
func NewSection(name string) *Section {
	return &Section{Name: name}
}

// Len returns the number of flags in the section.
func (s *Section) Len() int {
	return len(s.flags)
}

// Flags returns a copy of the section's flags in order.
func (s *Section) Flags() []Flag {
	out := make([]Flag, len(s.flags))
	copy(out, s.flags)
	return out
}

// Names returns the flag names in order.
func (s *Section) Names() []string {
	names := make([]string, len(s.flags))
	for i, f := range s.flags {
		names[i] = f.Name
	}
	return names
}

// Get returns the flag with the given name.
func (s *Section) Get(name string) (Flag, bool) {
	if i := s.index(name); i >= 0 {
		return s.flags[i], true
	}
	return Flag{}, false
}

// Has reports whether a flag with the given name exists.
func (s *Section) Has(name string) bool {
	return s.index(name) >= 0
}

// At returns the flag at the 1-based position pos.
func (s *Section) At(pos int) (Flag, bool) {
	if pos < 1 || pos > len(s.flags) {
		return Flag{}, false
	}
	return s.flags[pos-1], true
}

// AddFlag normalizes name and appends it with the given value. It returns
// the normalized name. The section is left unchanged when the normalized
// name fails CheckName or is already present.
func (s *Section) AddFlag(name string, value bool) (string, error) {
	name = NormalizeName(name)
	if err := CheckName(name); err != nil {
		return "", err
	}
	if s.Has(name) {
		return name, gkerrors.DuplicateFlag(s.Name, name)
	}
	s.flags = append(s.flags, Flag{Name: name, Value: value})
	return name, nil
}

// RemoveFlag deletes the named flag.
func (s *Section) RemoveFlag(name string) error {
	if len(s.flags) == 0 {
		return gkerrors.NoFlags(s.Name)
	}
	i := s.index(name)
	if i < 0 {
		return gkerrors.FlagNotFound(s.Name, name)
	}
	s.flags = append(s.flags[:i], s.flags[i+1:]...)
	return nil
}

// Toggle flips the named flag and returns its new value.
func (s *Section) Toggle(name string) (bool, error) {
	i := s.index(name)
	if i < 0 {
		return false, gkerrors.FlagNotFound(s.Name, name)
	}
	s.flags[i].Value = !s.flags[i].Value
	return s.flags[i].Value, nil
}

// set assigns value to name verbatim, appending when absent. Used by the
// parser, which keeps names exactly as they appear in the file.
func (s *Section) set(name string, value bool) {
	if i := s.index(name); i >= 0 {
		s.flags[i].Value = value
		return
	}
	s.flags = append(s.flags, Flag{Name: name, Value: value})
}

func (s *Section) index(name string) int {
	for i, f := range s.flags {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Store is the ordered set of sections loaded from one gate file. Iteration
// order matches the top-to-bottom order of the file.
type Store struct {
	sections []*Section
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of sections.
func (st *Store) Len() int {
	return len(st.sections)
}

// Sections returns the sections in order. The returned slice is a copy but
// the sections themselves are shared.
func (st *Store) Sections() []*Section {
	out := make([]*Section, len(st.sections))
	copy(out, st.sections)
	return out
}

// SectionNames returns the section names in order.
func (st *Store) SectionNames() []string {
	names := make([]string, len(st.sections))
	for i, s := range st.sections {
		names[i] = s.Name
	}
	return names
}

// Section returns the section with the given name.
func (st *Store) Section(name string) (*Section, bool) {
	if i := st.index(name); i >= 0 {
		return st.sections[i], true
	}
	return nil, false
}

// At returns the section at the 1-based position pos.
func (st *Store) At(pos int) (*Section, bool) {
	if pos < 1 || pos > len(st.sections) {
		return nil, false
	}
	return st.sections[pos-1], true
}

// AddSection appends an empty section. Surrounding whitespace is trimmed so
// the name survives a write/read cycle through the header line.
func (st *Store) AddSection(name string) (*Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, gkerrors.EmptyName("section")
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return nil, gkerrors.InvalidName("section", name, "must not contain control characters")
	}
	if st.index(name) >= 0 {
		return nil, gkerrors.DuplicateSection(name)
	}
	sec := NewSection(name)
	st.sections = append(st.sections, sec)
	return sec, nil
}

// RemoveSection deletes the named section and all its flags.
func (st *Store) RemoveSection(name string) error {
	i := st.index(name)
	if i < 0 {
		return gkerrors.SectionNotFound(name)
	}
	st.sections = append(st.sections[:i], st.sections[i+1:]...)
	return nil
}

// Toggle flips a flag in the named section and returns its new value.
func (st *Store) Toggle(section, flag string) (bool, error) {
	sec, ok := st.Section(section)
	if !ok {
		return false, gkerrors.SectionNotFound(section)
	}
	return sec.Toggle(flag)
}

// open starts a section for the parser. A repeated name keeps its original
// position and starts over empty.
func (st *Store) open(name string) *Section {
	if i := st.index(name); i >= 0 {
		st.sections[i].flags = nil
		return st.sections[i]
	}
	sec := NewSection(name)
	st.sections = append(st.sections, sec)
	return sec
}

func (st *Store) index(name string) int {
	for i, s := range st.sections {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Equal reports whether two stores hold the same sections and flags in the
// same order.
func (st *Store) Equal(other *Store) bool {
	if st.Len() != other.Len() {
		return false
	}
	for i, a := range st.sections {
		b := other.sections[i]
		if a.Name != b.Name || len(a.flags) != len(b.flags) {
			return false
		}
		for j := range a.flags {
			if a.flags[j] != b.flags[j] {
				return false
			}
		}
	}
	return true
}
