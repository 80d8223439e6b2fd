// Package cli implements the command-line interface for cubegen.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootOptions holds global flag values shared by every subcommand.
type rootOptions struct {
	configFile string
	verbose    bool

	log *logrus.Logger
}

// NewRootCmd creates the cubegen command tree. Running it without a
// subcommand prints the C++ lookup tables to stdout.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: logrus.New()}
	gen := &generateOptions{root: opts}

	root := &cobra.Command{
		Use:   "cubegen",
		Short: "Cube cublet identifier table generator",
		Long: `cubegen enumerates the edge and corner pieces of a cube by the faces
and colors that meet at them, and prints lookup tables mapping raw
face/color codes to piece identifiers.

Run without arguments to print the C++ tables:

  cubegen > CubeConstants.h`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setupLogging(cmd)
		},
		RunE: gen.run,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default: ./cubegen.yaml or ~/.cubegen/cubegen.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	gen.addFlags(root)

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newLookupCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newBrowseCmd(opts))

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends diagnostics to stderr so stdout only carries generated
// output.
func (o *rootOptions) setupLogging(cmd *cobra.Command) {
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if o.verbose {
		o.log.SetLevel(logrus.DebugLevel)
	} else {
		o.log.SetLevel(logrus.WarnLevel)
	}
}
