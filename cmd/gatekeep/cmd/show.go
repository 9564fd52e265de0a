package cmd

import (
	"github.com/spf13/cobra"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/session"
)

func newShowCmd(opts *options) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every feature gate",
		Long: `Print the sections of a feature gate file with their numbered gates.

Examples:
  gatekeep show --file gates.yaml
  gatekeep show --file gates.yaml --section core`,
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

			if section == "" {
				session.WriteStore(cmd.OutOrStdout(), f.Store())
				return nil
			}

			sec, ok := f.Store().Section(section)
			if !ok {
				return gkerrors.SectionNotFound(section)
			}
			session.WriteSection(cmd.OutOrStdout(), sec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Only show this section")
	return cmd
}
