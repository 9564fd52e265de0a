package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/logging"
)

func newImportCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import SOURCE",
		Short: "Create a feature gate file from YAML",
		Long: `Read a YAML mapping of section to gate to boolean (as written by
"gatekeep export") and write it as a feature gate file.

An existing file is only replaced with --force.

Examples:
  gatekeep import --file gates.yaml gates.plain.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.requireFile()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return gkerrors.FileRead(args[0], err)
			}
			st, err := gates.UnmarshalYAML(data)
			if err != nil {
				return gkerrors.Wrap(err, gkerrors.ErrInput, "invalid YAML in "+args[0])
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return gkerrors.WithSuggestion(gkerrors.ErrInput,
					fmt.Sprintf("%s already exists", path),
					"Use --force to replace it.")
			}

			f := gates.NewFile(path, opts.cfg.GateFormat())
			f.SetStore(st)
			if err := f.Save(); err != nil {
				return err
			}
			logging.Info("imported feature gates", "file", path, "source", args[0], "sections", st.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sections into %s\n", st.Len(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing file")
	return cmd
}
