package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/gates"
)

// Export formats.
const (
	formatYAML  = "yaml"
	formatGates = "gates"
)

func newExportCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the feature gates to stdout as YAML",
		Long: `Write the feature gate file to standard output.

The yaml format is a plain mapping of section to gate to boolean, in file
order. The gates format is the file's own layout, normalized.

Examples:
  gatekeep export --file gates.yaml > gates.plain.yaml
  gatekeep export --file gates.yaml --format gates`,
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

			switch format {
			case formatYAML:
				data, err := gates.MarshalYAML(f.Store())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case formatGates:
				_, err := fmt.Fprint(cmd.OutOrStdout(), f.Format().Serialize(f.Store()))
				return err
			default:
				return gkerrors.WithSuggestion(gkerrors.ErrInput,
					fmt.Sprintf("unknown export format %q", format),
					"Use --format yaml or --format gates.")
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format: yaml or gates")
	return cmd
}
