package main

import (
	"time"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/makargravanov/state-space-searching/internal/bench"
	"github.com/makargravanov/state-space-searching/internal/report"
	"github.com/makargravanov/state-space-searching/solver"
)

func (o *options) runBench(cmd *cobra.Command) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	list, err := solver.LookupAll(cfg.Strategies)
	if err != nil {
		return err
	}

	klog.V(1).Infof("benchmarking %v over %d runs", cfg.Strategies, cfg.Runs)
	sum, err := bench.Run(list, cfg.Puzzle(), cfg.Runs, time.Now)
	if err != nil {
		return err
	}
	if !sum.AllSuccessful() {
		klog.Warningf("%d of %d runs found no path", len(sum.Failures), cfg.Runs*len(list))
	}

	return report.WriteBench(o.out, sum)
}
