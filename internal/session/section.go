package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// sectionMenu edits one section. The section is looked up by name on
// every pass so positions are always resolved against the current store.
func (s *Session) sectionMenu(name string) error {
	for {
		sec, ok := s.store.Section(name)
		if !ok {
			return nil
		}

		s.showFlags(sec)
		s.p.Blank()
		s.p.Line(styles.MenuTitleStyle, "Section Management:")
		s.options(
			"Edit feature gates (Continuous Mode)",
			"Add new feature gate",
			"Add multiple feature gates",
			"Remove feature gate",
			"Return to main menu",
		)

		s.p.Blank()
		choice, err := s.p.Ask("Enter your choice (1-5): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.continuous(sec)
		case "2":
			err = s.addFlag(sec)
		case "3":
			err = s.addFlags(sec)
		case "4":
			err = s.removeFlag(sec)
		case "5":
			return nil
		default:
			s.p.Line(styles.ErrorTextStyle, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// continuous is the quick toggle loop: t toggles the current gate, n moves
// to the next one, a number toggles that gate and moves there, q leaves.
func (s *Session) continuous(sec *gates.Section) error {
	if sec.Len() == 0 {
		s.p.Warn("No feature gates available in this section. Please add a feature gate first.")
		return nil
	}

	s.p.Success("Entering Continuous Edit Mode.")
	s.p.Warn("Commands: 'q' to quit, 'n' for next gate, 't' to toggle, or enter a gate number to select and toggle.")

	current := 0
	for {
		flags := sec.Flags()
		if len(flags) == 0 {
			return nil
		}
		if current >= len(flags) {
			current = 0
		}

		s.showFlags(sec)
		f := flags[current]
		s.p.Blank()
		choice, err := s.p.Ask(fmt.Sprintf("Current gate: %s [%t] (t/n/q/[gate number]): ", f.Name, f.Value))
		if err != nil {
			return err
		}

		switch choice = strings.ToLower(strings.TrimSpace(choice)); choice {
		case "q":
			return nil
		case "n":
			current = (current + 1) % len(flags)
		case "t":
			s.toggle(sec, f.Name)
		default:
			if _, convErr := strconv.Atoi(choice); convErr != nil {
				s.p.Line(styles.ErrorTextStyle, "Invalid input. Please enter 't' to toggle, 'n' for next, 'q' to quit, or a valid gate number.")
				continue
			}
			i, err := selectIndex(choice, len(flags))
			if err != nil {
				s.p.Line(styles.ErrorTextStyle, "Invalid gate number. Please try again.")
				continue
			}
			current = i
			s.toggle(sec, flags[i].Name)
		}
	}
}

func (s *Session) toggle(sec *gates.Section, name string) {
	value, err := sec.Toggle(name)
	if err != nil {
		s.p.Fail(err)
		return
	}
	s.log.Info("toggled feature gate", "section", sec.Name, "flag", name, "value", value)
	s.save()
}

func (s *Session) addFlag(sec *gates.Section) error {
	s.showGuidelines()

	s.p.Blank()
	raw, err := s.p.Ask("Enter the name of the new feature gate: ")
	if err != nil {
		return err
	}

	name := gates.NormalizeName(raw)
	if err := gates.CheckName(name); err != nil {
		s.p.Fail(err)
		return nil
	}
	if sec.Has(name) {
		s.p.Fail(gkerrors.DuplicateFlag(sec.Name, name))
		return nil
	}

	var value bool
	for {
		answer, err := s.p.Ask(fmt.Sprintf("Enter the value for \"%s\" [1=True, 0=False]: ", name))
		if err != nil {
			return err
		}
		if answer == "1" || answer == "0" {
			value = answer == "1"
			break
		}
		s.p.Line(styles.ErrorTextStyle, "Invalid input. Please enter '1' for true or '0' for false.")
	}

	if _, err := sec.AddFlag(name, value); err != nil {
		s.p.Fail(err)
		return nil
	}
	s.log.Info("added feature gate", "section", sec.Name, "flag", name, "value", value)
	s.save()
	return nil
}

// addFlags reads "name: value" entries until an empty line. Each entry is
// applied or rejected on its own.
func (s *Session) addFlags(sec *gates.Section) error {
	s.showGuidelines()

	s.p.Blank()
	s.p.Line(styles.HeadingStyle, "Enter multiple feature gates in the format 'name: value' (one per line). Press Enter on an empty line to finish.")

	for {
		line, err := s.p.Ask("Feature gate (or press Enter to finish): ")
		if err != nil {
			return err
		}
		if line == "" {
			break
		}

		f, err := sec.AddEntry(line)
		switch {
		case err == nil:
			s.log.Info("added feature gate", "section", sec.Name, "flag", f.Name, "value", f.Value)
			s.p.Success("Added: %s", f)
		case errors.Is(err, gkerrors.ErrDuplicate):
			s.p.Line(styles.ErrorTextStyle, gkerrors.Message(err)+". Skipping.")
		default:
			s.p.Fail(err)
		}
	}

	s.save()
	return nil
}

func (s *Session) removeFlag(sec *gates.Section) error {
	if sec.Len() == 0 {
		s.p.Warn("No feature gates available to remove in this section.")
		return nil
	}

	s.showFlags(sec)
	s.p.Blank()
	answer, err := s.p.Ask("Enter the feature gate number to remove (or press Enter to go back): ")
	if err != nil || answer == "" {
		return err
	}

	i, err := selectIndex(answer, sec.Len())
	if err != nil {
		s.p.Line(styles.ErrorTextStyle, "Invalid feature gate number. Please try again.")
		return nil
	}
	f, _ := sec.At(i + 1)

	ok, err := s.p.Confirm(fmt.Sprintf("Are you sure you want to remove the feature gate '%s'?", f.Name))
	if err != nil {
		return err
	}
	if !ok {
		s.p.Plain("Feature gate removal cancelled.")
		return nil
	}

	if err := sec.RemoveFlag(f.Name); err != nil {
		s.p.Fail(err)
		return nil
	}
	s.log.Info("removed feature gate", "section", sec.Name, "flag", f.Name)
	s.save()
	s.p.Success("Feature gate '%s' removed successfully.", f.Name)
	return nil
}

func (s *Session) showGuidelines() {
	s.p.Blank()
	s.p.Warn("Feature Gate Naming Guidelines:")
	for i, g := range gates.NamingGuidelines {
		s.p.Plain(fmt.Sprintf("%d. %s", i+1, g))
	}
	s.p.Line(styles.HeadingStyle, "Examples: "+gates.NamingExamples)
}
