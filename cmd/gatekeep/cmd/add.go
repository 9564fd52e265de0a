package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/logging"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

func newAddCmd(opts *options) *cobra.Command {
	var createSection bool

	cmd := &cobra.Command{
		Use:   "add SECTION [ENTRY...]",
		Short: "Add feature gates from 'name: value' entries",
		Long: `Add feature gates to a section. Each entry has the form "name: value"
where value is true or false. Without entries on the command line they are
read from standard input, one per line, up to the first empty line.

Invalid and duplicate entries are reported and skipped; the valid ones are
added and the file is saved.

Examples:
  gatekeep add --file gates.yaml core "dark-mode: true" "new-checkout: false"
  printf 'a: true\nb: false\n' | gatekeep add --file gates.yaml core
  gatekeep add --file gates.yaml --create "Beta Users" "beta-banner: true"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.requireFile()
			if err != nil {
				return err
			}
			f, err := opts.open(path)
			if err != nil {
				return err
			}

			sec, created, err := targetSection(f.Store(), args[0], createSection)
			if err != nil {
				return err
			}

			lines := args[1:]
			if len(lines) == 0 {
				if lines, err = readEntries(cmd); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			added := 0
			for _, r := range gates.AddFlagsBulk(sec, lines) {
				switch {
				case r.Err == nil:
					added++
					logging.Info("added feature gate", "file", f.Path(), "section", sec.Name, "flag", r.Flag.Name, "value", r.Flag.Value)
					fmt.Fprintln(out, styles.SuccessTextStyle.Render("Added: "+r.Flag.String()))
				case errors.Is(r.Err, gkerrors.ErrDuplicate):
					fmt.Fprintln(out, styles.ErrorTextStyle.Render(gkerrors.Message(r.Err)+". Skipping."))
				default:
					fmt.Fprintln(out, styles.ErrorTextStyle.Render(gkerrors.Message(r.Err)))
				}
			}

			if added == 0 && !created {
				fmt.Fprintln(out, styles.WarningTextStyle.Render("No feature gates added."))
				return nil
			}
			if err := f.Save(); err != nil {
				return err
			}
			fmt.Fprintln(out, styles.SuccessTextStyle.Render("File updated successfully."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&createSection, "create", false, "Create the section when it does not exist")
	return cmd
}

// targetSection finds the named section, creating it when allowed. created
// reports whether the section is new.
func targetSection(st *gates.Store, name string, create bool) (sec *gates.Section, created bool, err error) {
	if sec, ok := st.Section(name); ok {
		return sec, false, nil
	}
	if !create {
		return nil, false, gkerrors.SectionNotFound(name).WithDetails("hint", "use --create to add it")
	}
	sec, err = st.AddSection(name)
	if err != nil {
		return nil, false, err
	}
	logging.Info("added section", "section", sec.Name)
	return sec, true, nil
}

// readEntries reads stdin lines up to the first empty line or EOF.
func readEntries(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
