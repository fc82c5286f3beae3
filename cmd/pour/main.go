// Command pour solves the two-jug pouring puzzle with BFS, UCS, DFS and A*,
// reports each run, and can benchmark the strategies against each other.
package main

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          isatty.IsTerminal(os.Stderr.Fd()),
	})

	root := newRootCmd(newOptions(os.Stdin, os.Stdout))
	root.PersistentFlags().AddGoFlagSet(fset)

	code := 0
	if err := root.Execute(); err != nil {
		klog.Errorf("pour: %v", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}
