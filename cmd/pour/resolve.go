package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/makargravanov/state-space-searching/internal/config"
)

// resolve merges defaults, the config file, flags and, on a terminal with
// nothing else supplied, answers to interactive prompts.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	puzzleGiven := o.configPath != ""
	if flags.Changed("capacity-a") {
		cfg.CapacityA, puzzleGiven = o.capA, true
	}
	if flags.Changed("capacity-b") {
		cfg.CapacityB, puzzleGiven = o.capB, true
	}
	if flags.Changed("target") {
		cfg.Target, puzzleGiven = o.target, true
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("dot-dir") {
		cfg.DotDir = o.dotDir
	}
	if flags.Changed("strategy") {
		cfg.Strategies = append([]string(nil), o.strategies...)
	}
	if flags.Lookup("runs") != nil && flags.Changed("runs") {
		cfg.Runs = o.runs
	}
	cfg.Normalize()

	if !puzzleGiven && o.interactive != nil && o.interactive() {
		if err := prompt(o.in, o.out, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// prompt asks for the capacities and the target on in, echoing questions to
// out. An empty answer keeps the current value.
func prompt(in io.Reader, out io.Writer, cfg *config.Config) error {
	sc := bufio.NewScanner(in)
	questions := []struct {
		label string
		dst   *int
	}{
		{"Capacity of jug A", &cfg.CapacityA},
		{"Capacity of jug B", &cfg.CapacityB},
		{"Target volume", &cfg.Target},
	}
	for _, q := range questions {
		fmt.Fprintf(out, "%s [%d]: ", q.label, *q.dst)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return errors.Wrap(err, "prompt")
			}
			return errors.Errorf("prompt: no answer for %q", q.label)
		}
		answer := strings.TrimSpace(sc.Text())
		if answer == "" {
			continue
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			return errors.Wrapf(err, "prompt: %s", q.label)
		}
		*q.dst = n
	}
	fmt.Fprintln(out)

	return nil
}
