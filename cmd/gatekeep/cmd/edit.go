package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/logging"
	"github.com/wexinc/gatekeep/internal/recent"
	"github.com/wexinc/gatekeep/internal/session"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

func newEditCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit a feature gate file interactively",
		Long: `Open a feature gate file in the interactive menu editor.

Without --file (and without file.default in the config) the path is asked
for. You can drag a file into the terminal; surrounding quotes are removed.
Recently edited files are offered as numbered shortcuts.

Examples:
  gatekeep edit --file ./config/gates.yaml
  gatekeep                       # same as "gatekeep edit"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts)
		},
	}
}

// runEdit resolves the file, loads it and runs the menu session. Read
// errors end the command; everything after that is handled in the session.
func runEdit(cmd *cobra.Command, opts *options) error {
	p := session.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	recents := opts.loadRecent()

	path := opts.filePath()
	if path == "" {
		var err error
		path, err = promptPath(p, recents)
		if err != nil {
			return err
		}
	}

	f, err := opts.open(path)
	if err != nil {
		return err
	}
	opts.remember(recents, f.Path())

	log := logging.With("file", f.Path())
	err = session.New(f.Store(), f, p, session.WithLogger(log)).Run()
	if errors.Is(err, session.ErrInputClosed) {
		return nil
	}
	return err
}

// promptPath asks for the gate file path. A number picks a recent file.
func promptPath(p *session.Prompter, recents *recent.List) (string, error) {
	p.Line(styles.HeadingStyle, "You can drag and drop the gate file into the terminal to get its path.")

	var paths []string
	if recents != nil {
		paths = recents.Paths()
	}
	if len(paths) > 0 {
		p.Blank()
		p.Line(styles.HeadingStyle, "Recent files:")
		for i, path := range paths {
			p.Line(styles.OptionStyle, fmt.Sprintf("%d. %s", i+1, path))
		}
		p.Blank()
	}

	answer, err := p.Ask("Please enter the full path to the gate file: ")
	if err != nil {
		return "", err
	}

	path := cleanPath(answer)
	if n, convErr := strconv.Atoi(path); convErr == nil && n >= 1 && n <= len(paths) {
		path = paths[n-1]
	}
	if path == "" {
		return "", gkerrors.New(gkerrors.ErrInput, "no file path given")
	}

	if info, statErr := os.Stat(path); statErr != nil || info.IsDir() {
		return "", gkerrors.FileNotFound(path)
	}
	return path, nil
}

// cleanPath strips whitespace and the quotes terminals add around dropped
// files.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `'"`)
	return strings.TrimSpace(s)
}

// loadRecent loads the recent files list. It returns nil when the list is
// disabled or unreadable.
func (o *options) loadRecent() *recent.List {
	if o.cfg.Recent.Max == 0 {
		return nil
	}

	path := o.cfg.Recent.Path
	if path == "" {
		var err error
		if path, err = recent.DefaultPath(); err != nil {
			logging.Warn("cannot locate recent files list", "error", err)
			return nil
		}
	}

	l, err := recent.Load(path, o.cfg.Recent.Max)
	if err != nil {
		logging.Warn("failed to load recent files", "path", path, "error", err)
		return nil
	}
	return l
}

// remember records path in the recent files list.
func (o *options) remember(l *recent.List, path string) {
	if l == nil {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	l.Add(path)
	if err := l.Save(); err != nil {
		logging.Warn("failed to save recent files", "error", err)
	}
}
