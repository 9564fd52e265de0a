package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wexinc/gatekeep/internal/logging"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

func newToggleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle SECTION GATE",
		Short: "Flip one feature gate and save",
		Long: `Flip a single feature gate from true to false or back, then save the file.

Examples:
  gatekeep toggle --file gates.yaml core dark-mode`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.requireFile()
			if err != nil {
				return err
			}
			f, err := opts.open(path)
			if err != nil {
				return err
			}

			section, name := args[0], args[1]
			value, err := f.Store().Toggle(section, name)
			if err != nil {
				return err
			}
			logging.Info("toggled feature gate", "file", f.Path(), "section", section, "flag", name, "value", value)

			if err := f.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s: %s\n", section, name, styles.Value(value))
			return nil
		},
	}
}
