// Package session implements the interactive menu loop that edits a gate
// store. Every mutating action is followed by a save so the file on disk
// is never more than one action behind.
package session

import (
	"errors"
	"fmt"

	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/logging"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// Saver persists the store. *gates.File implements it.
type Saver interface {
	Save() error
}

// Session drives the menus over one store.
type Session struct {
	store *gates.Store
	saver Saver
	p     *Prompter
	log   *logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for mutation records.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Session over store that persists through saver.
func New(store *gates.Store, saver Saver, p *Prompter, opts ...Option) *Session {
	s := &Session{
		store: store,
		saver: saver,
		p:     p,
		log:   logging.Global(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the main menu until the user picks "Save and exit". If input
// ends or fails first, the store is saved once more and the input error
// (ErrInputClosed at end of input) is returned.
func (s *Session) Run() error {
	s.log.Info("session started", "sections", s.store.Len())

	err := s.mainMenu()
	switch {
	case errors.Is(err, ErrInputClosed):
		s.log.Warn("input closed, saving before exit")
		s.save()
	case err != nil:
		s.log.Error("reading input failed, saving before exit", "error", err)
		s.save()
	}

	s.log.Info("session ended", "sections", s.store.Len())
	return err
}

func (s *Session) mainMenu() error {
	for {
		s.showSections()
		s.p.Blank()
		s.p.Line(styles.MenuTitleStyle, "Feature Gate Management:")
		s.options(
			"Edit section",
			"Add new section",
			"Remove section",
			"View all feature gates",
			"Save and exit",
		)

		s.p.Blank()
		choice, err := s.p.Ask("Enter your choice (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.chooseSection()
		case "2":
			err = s.addSection()
		case "3":
			err = s.removeSection()
		case "4":
			err = s.viewAll()
		case "5":
			s.save()
			s.p.Success("Changes saved. Exiting the program.")
			return nil
		default:
			s.p.Line(styles.ErrorTextStyle, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) chooseSection() error {
	if s.store.Len() == 0 {
		s.p.Warn("No sections available. Please add a section first.")
		return nil
	}

	s.showSections()
	s.p.Blank()
	answer, err := s.p.Ask("Enter the section number to edit: ")
	if err != nil {
		return err
	}

	i, err := selectIndex(answer, s.store.Len())
	if err != nil {
		s.p.Line(styles.ErrorTextStyle, "Invalid section number. Please try again.")
		return nil
	}
	sec, _ := s.store.At(i + 1)
	return s.sectionMenu(sec.Name)
}

func (s *Session) addSection() error {
	name, err := s.p.Ask("Enter the name of the new section: ")
	if err != nil {
		return err
	}

	sec, err := s.store.AddSection(name)
	if err != nil {
		s.p.Fail(err)
		return nil
	}

	s.log.Info("added section", "section", sec.Name)
	s.p.Success("New section '%s' added successfully.", sec.Name)
	s.save()
	return nil
}

func (s *Session) removeSection() error {
	if s.store.Len() == 0 {
		s.p.Warn("No sections available to remove.")
		return nil
	}

	s.showSections()
	s.p.Blank()
	answer, err := s.p.Ask("Enter the section number to remove (or press Enter to go back): ")
	if err != nil || answer == "" {
		return err
	}

	i, err := selectIndex(answer, s.store.Len())
	if err != nil {
		s.p.Line(styles.ErrorTextStyle, "Invalid section number. Please try again.")
		return nil
	}
	sec, _ := s.store.At(i + 1)

	ok, err := s.p.Confirm(fmt.Sprintf("Are you sure you want to remove the section '%s'?", sec.Name))
	if err != nil {
		return err
	}
	if !ok {
		s.p.Plain("Section removal cancelled.")
		return nil
	}

	if err := s.store.RemoveSection(sec.Name); err != nil {
		s.p.Fail(err)
		return nil
	}
	s.log.Info("removed section", "section", sec.Name, "flags", sec.Len())
	s.save()
	s.p.Success("Section '%s' removed successfully.", sec.Name)
	return nil
}

func (s *Session) viewAll() error {
	if s.store.Len() == 0 {
		s.p.Warn("The file has no sections.")
	}
	WriteStore(s.p.out, s.store)
	s.p.Blank()
	_, err := s.p.Ask("Press Enter to continue...")
	return err
}

// save writes the store. Failures are reported and the session goes on
// with the in-memory store intact.
func (s *Session) save() bool {
	if err := s.saver.Save(); err != nil {
		s.p.Report(err)
		return false
	}
	s.p.Success("File updated successfully.")
	return true
}

func (s *Session) showSections() {
	s.p.Blank()
	s.p.Line(styles.HeadingStyle, "Available sections:")
	if s.store.Len() == 0 {
		s.p.Line(styles.MutedTextStyle, "(none)")
		return
	}
	for i, name := range s.store.SectionNames() {
		s.p.Line(styles.OptionStyle, fmt.Sprintf("%d. %s", i+1, name))
	}
}

func (s *Session) showFlags(sec *gates.Section) {
	WriteSection(s.p.out, sec)
}

func (s *Session) options(labels ...string) {
	for i, label := range labels {
		s.p.Line(styles.OptionStyle, fmt.Sprintf("%d. %s", i+1, label))
	}
}
