/*
PURPOSE:
  Defines the root Cobra command for the reroot CLI.
  The root command itself does the rerooting; helpers live in subcommands.

REQUIREMENTS:
  User-specified:
  - Two positional arguments: input file and outgroup label.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - cobra's own error/usage printing is silenced; main prints one line.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/reroot/main.go
  - Calls: internal/engine.Run(), child commands (leaves, fmt)
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Logic: Load Config -> Override -> Configure logging -> Engine.Run.

USAGE:
  reroot tree.nwk Outgroup
  reroot --all --report runs.csv trees.nwk Outgroup

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to newRootCmd().

RELATED FILES:
  - cmd/reroot/main.go
  - internal/cli/leaves.go
  - internal/cli/fmt.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/reroot/internal/config"
	"github.com/daryltucker/reroot/internal/engine"
	"github.com/daryltucker/reroot/internal/output"
)

// options carries flag values and the loaded config between the hooks of
// one command invocation.
type options struct {
	cfgFile  string
	logLevel string
	suffix   string
	report   string
	all      bool
	stdout   bool

	cfg       *config.Config
	logCloser io.Closer
}

// Execute executes the root command.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	opts := &options{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	defer func() {
		if opts.logCloser != nil {
			opts.logCloser.Close()
		}
	}()
	return cmd.Execute()
}

// newRootCmd builds the command tree, binding flags to opts.
func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reroot [flags] <input> <outgroup>",
		Short: "Reroot a Newick tree on an outgroup",
		Long: `Reads a phylogenetic tree in Newick format and reroots it on the clade
labeled <outgroup>. The new root splits the outgroup's branch in half; all
other branch lengths and every leaf are preserved.

The result is written to <input>_rerooted.tre. On any failure nothing is
written and the command exits with a nonzero status.`,
		Example: `  # Reroot on leaf C, writing tree.nwk_rerooted.tre
  reroot tree.nwk C

  # Reroot every tree in a file and print to stdout
  reroot --all --stdout bootstrap.nwk Outgroup

  # Keep a CSV record of the run
  reroot --report runs.csv tree.nwk C`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := engine.Request{
				Input:    args[0],
				Outgroup: args[1],
				All:      opts.all,
			}
			if opts.stdout {
				req.Stdout = cmd.OutOrStdout()
			}
			_, err := engine.Run(opts.cfg, req)
			return err
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is ./reroot.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&opts.all, "all", false, "process every tree in the input instead of exactly one")

	f := rootCmd.Flags()
	f.StringVar(&opts.suffix, "suffix", "", "suffix appended to the input path to name the output file (default \""+config.DefaultSuffix+"\")")
	f.StringVar(&opts.report, "report", "", "write a run report (.csv for CSV, otherwise JSON Lines)")
	f.BoolVar(&opts.stdout, "stdout", false, "write the rerooted tree to stdout instead of a file")

	rootCmd.AddCommand(newLeavesCmd(opts))
	rootCmd.AddCommand(newFmtCmd(opts))
	return rootCmd
}

// setup loads config, applies flag overrides and configures logging.
func (o *options) setup(stderr io.Writer) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.suffix != "" {
		cfg.OutputSuffix = o.suffix
	}
	if o.report != "" {
		cfg.ReportFile = o.report
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer, err := output.Configure(stderr, output.LogConfig{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logCloser = closer
	return nil
}
