// Package cmd provides the CLI commands for gatekeep.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexinc/gatekeep/internal/config"
	gkerrors "github.com/wexinc/gatekeep/internal/errors"
	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/logging"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// options is the state shared by every command of one invocation.
type options struct {
	configPath string
	file       string
	cfg        *config.Config
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gatekeep",
		Short: "Edit feature gate files interactively",
		Long: `gatekeep maintains feature gate files: named true/false flags grouped
under section headers such as

  #################### core ####################
  dark-mode: true
  new-checkout: false

The file keeps its section and gate order. Every change is written back
immediately.

Running gatekeep without a subcommand starts the interactive editor,
same as "gatekeep edit".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Info("gatekeep finished", "command", cmd.Name())
			_ = logging.CloseGlobal()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default .gatekeep/config.yaml, then ~/.gatekeep/config.yaml)")
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Path to the feature gate file")

	root.AddCommand(
		newEditCmd(opts),
		newShowCmd(opts),
		newToggleCmd(opts),
		newAddCmd(opts),
		newBrowseCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration and starts logging. Logging failures are
// not fatal.
func (o *options) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	styles.Configure(cfg.UI.Color, cmd.OutOrStdout())

	if err := logging.InitGlobal(cfg.LoggingConfig()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		logging.Info("gatekeep starting", "version", Version, "command", cmd.Name())
	}
	return nil
}

// filePath returns --file, falling back to file.default from the config.
func (o *options) filePath() string {
	if o.file != "" {
		return o.file
	}
	if o.cfg != nil {
		return o.cfg.File.Default
	}
	return ""
}

// requireFile returns the gate file path or an error when none is set.
func (o *options) requireFile() (string, error) {
	path := o.filePath()
	if path == "" {
		return "", errors.New("no gate file given: use --file or set file.default in the config")
	}
	return path, nil
}

// open loads the gate file at path with the configured header layout.
func (o *options) open(path string) (*gates.File, error) {
	return gates.Open(path, o.cfg.GateFormat())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("gatekeep {{.Version}}\n")

	err := rootCmd.Execute()
	_ = logging.CloseGlobal()
	if err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}

// printError writes err to stderr, with details and suggestion for gatekeep
// errors.
func printError(cmd *cobra.Command, err error) {
	var ge *gkerrors.GateError
	if errors.As(err, &ge) {
		fmt.Fprint(cmd.ErrOrStderr(), styles.ErrorTextStyle.Render(strings.TrimRight(ge.Format(), "\n"))+"\n")
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), styles.ErrorTextStyle.Render("Error: "+err.Error()))
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
