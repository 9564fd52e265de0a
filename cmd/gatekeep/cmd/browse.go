package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/gatekeep/internal/tui"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and toggle feature gates full-screen",
		Long: `Open a feature gate file in a full-screen browser.

Move with the arrow keys or j/k, toggle the gate under the cursor with
space or enter. Each change is saved right away. Press ? for all keys.

Examples:
  gatekeep browse --file gates.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.requireFile()
			if err != nil {
				return err
			}
			f, err := opts.open(path)
			if err != nil {
				return err
			}
			opts.remember(opts.loadRecent(), f.Path())

			return tui.Run(f.Path(), f.Store(), f)
		},
	}
}
