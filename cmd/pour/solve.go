package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/makargravanov/state-space-searching/core"
	"github.com/makargravanov/state-space-searching/dot"
	"github.com/makargravanov/state-space-searching/internal/bench"
	"github.com/makargravanov/state-space-searching/internal/config"
	"github.com/makargravanov/state-space-searching/internal/report"
	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
	"github.com/makargravanov/state-space-searching/solver"
)

func (o *options) runSolve(cmd *cobra.Command) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	list, err := solver.LookupAll(cfg.Strategies)
	if err != nil {
		return err
	}

	p := cfg.Puzzle()
	klog.V(1).Infof("solving %+v with %v (solvable: %v)", p, cfg.Strategies, p.Solvable())

	for _, s := range list {
		var opts []search.Option
		if cfg.Verbose {
			opts = traceOptions(s.Name())
		}
		m, err := bench.Measure(s, p, time.Now, opts...)
		if err != nil {
			return err
		}
		if err := report.WriteRun(o.out, m, cfg.Verbose); err != nil {
			return err
		}
		if cfg.Verbose && m.Found {
			if err := o.exportTree(cfg, m.Outcome); err != nil {
				return err
			}
		}
	}

	return nil
}

// traceOptions logs every visit and discovery of the named strategy at V(2).
func traceOptions(name string) []search.Option {
	return []search.Option{
		search.WithOnVisit(func(id core.NodeID, s pouring.State) {
			klog.V(2).Infof("%s: visit n%d %s", name, id, s)
		}),
		search.WithOnDiscover(func(parent, child core.NodeID, s pouring.State) {
			klog.V(2).Infof("%s: discover n%d -> n%d %s", name, parent, child, s)
		}),
	}
}

// exportTree writes the discovery graph of out to <dot-dir>/<strategy>_search_tree.dot.
func (o *options) exportTree(cfg config.Config, out solver.Outcome) error {
	path := filepath.Join(cfg.DotDir, out.Strategy+"_search_tree.dot")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "export search tree")
	}
	if err := dot.Write(f, out.Space, out.Strategy); err != nil {
		f.Close()
		return errors.Wrapf(err, "export search tree to %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}

	klog.Infof("search tree of %s written to %s", solver.DisplayName(out.Strategy), path)
	png := filepath.Join(cfg.DotDir, out.Strategy+"_tree.png")
	fmt.Fprintf(o.out, "Search tree saved to %s\nRender it with: dot -Tpng %s -o %s\n\n", path, path, png)

	return nil
}
