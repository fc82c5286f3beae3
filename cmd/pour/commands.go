package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/makargravanov/state-space-searching/internal/config"
)

// options holds the values bound to command-line flags plus the I/O the
// commands talk to.
type options struct {
	configPath string
	capA       int
	capB       int
	target     int
	verbose    bool
	dotDir     string
	strategies []string
	runs       int

	in          io.Reader
	out         io.Writer
	interactive func() bool
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newOptions(in io.Reader, out io.Writer) *options {
	return &options{in: in, out: out, interactive: stdinIsTerminal}
}

// newRootCmd builds the pour command tree bound to o. Running pour without
// a subcommand is the same as pour solve.
func newRootCmd(o *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pour",
		Short: "Solve the two-jug water pouring puzzle with several search strategies",
		Long: `pour searches the state space of two jugs with capacities A and B,
starting with A full and B empty, for a state in which either jug holds
exactly the target volume. Each strategy runs on its own lazily built graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runSolve(cmd)
		},
	}
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Run each selected strategy once and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runSolve(cmd)
		},
	}
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every selected strategy over several runs and print the averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runBench(cmd)
		},
	}

	o.bindFlags(rootCmd.PersistentFlags())
	benchCmd.Flags().IntVar(&o.runs, "runs", config.DefaultRuns, "repetitions to average over")

	rootCmd.AddCommand(solveCmd, benchCmd)

	return rootCmd
}

// bindFlags registers the flags shared by every subcommand. Zero defaults
// are placeholders: only flags set on the command line override the config.
func (o *options) bindFlags(pf *pflag.FlagSet) {
	pf.StringVar(&o.configPath, "config", "", "YAML config file; flags override its values")
	pf.IntVarP(&o.capA, "capacity-a", "a", 0, "capacity of jug A")
	pf.IntVarP(&o.capB, "capacity-b", "b", 0, "capacity of jug B")
	pf.IntVarP(&o.target, "target", "t", 0, "volume to measure")
	pf.BoolVar(&o.verbose, "verbose", false, "print paths, trace the search at -v=2 and write DOT search trees")
	pf.StringVar(&o.dotDir, "dot-dir", "", "directory for <strategy>_search_tree.dot files")
	pf.StringArrayVar(&o.strategies, "strategy", nil, "strategy to run (bfs, ucs, dfs, astar); repeatable, default all")
}
