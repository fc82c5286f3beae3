// Package bench times strategy runs and averages them over repetitions.
//
// Every run goes through solver.Run, so each one starts from a fresh
// search.Space and repetitions do not warm each other up.
package bench

import (
	"time"

	"github.com/pkg/errors"

	"github.com/makargravanov/state-space-searching/pouring"
	"github.com/makargravanov/state-space-searching/search"
	"github.com/makargravanov/state-space-searching/solver"
)

var (
	// ErrNoStrategies is returned when Run is given an empty strategy list.
	ErrNoStrategies = errors.New("bench: no strategies")

	// ErrRuns is returned when the repetition count is not positive.
	ErrRuns = errors.New("bench: runs must be positive")
)

// Clock reports the current time; time.Now in production, a fake in tests.
type Clock func() time.Time

// Measurement is one timed solver run.
type Measurement struct {
	solver.Outcome
	Elapsed time.Duration
}

// Measure runs s once on p and times it with clock (time.Now if nil).
func Measure(s search.Strategy, p pouring.Puzzle, clock Clock, opts ...search.Option) (Measurement, error) {
	if clock == nil {
		clock = time.Now
	}
	begin := clock()
	out, err := solver.Run(s, p, opts...)
	elapsed := clock().Sub(begin)
	if err != nil {
		return Measurement{}, errors.Wrap(err, "bench: measure")
	}

	return Measurement{Outcome: out, Elapsed: elapsed}, nil
}

// Stat collects the timings of one strategy across all runs.
type Stat struct {
	Strategy  string
	Durations []time.Duration
}

// Average returns the mean duration, or 0 when nothing was recorded.
func (s Stat) Average() time.Duration {
	if len(s.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}

	return total / time.Duration(len(s.Durations))
}

// Failure names a run in which a strategy found no path. Run is 1-based.
type Failure struct {
	Strategy string
	Run      int
}

// Summary is the outcome of a benchmark.
type Summary struct {
	Puzzle   pouring.Puzzle
	Runs     int
	Stats    []Stat
	Failures []Failure
}

// AllSuccessful reports whether every strategy found a path in every run.
// Averages are only meaningful when it is true.
func (s Summary) AllSuccessful() bool { return len(s.Failures) == 0 }

// Run executes every strategy in list runs times on p. Within a repetition
// the strategies run in list order. A run that finds no path is recorded as
// a Failure; it is not an error.
func Run(list []search.Strategy, p pouring.Puzzle, runs int, clock Clock) (Summary, error) {
	if len(list) == 0 {
		return Summary{}, ErrNoStrategies
	}
	if runs <= 0 {
		return Summary{}, errors.Wrapf(ErrRuns, "got %d", runs)
	}

	sum := Summary{Puzzle: p, Runs: runs, Stats: make([]Stat, len(list))}
	for i, s := range list {
		sum.Stats[i] = Stat{Strategy: s.Name(), Durations: make([]time.Duration, 0, runs)}
	}

	for run := 1; run <= runs; run++ {
		for i, s := range list {
			m, err := Measure(s, p, clock)
			if err != nil {
				return sum, errors.Wrapf(err, "run %d", run)
			}
			if !m.Found {
				sum.Failures = append(sum.Failures, Failure{Strategy: s.Name(), Run: run})
			}
			sum.Stats[i].Durations = append(sum.Stats[i].Durations, m.Elapsed)
		}
	}

	return sum, nil
}
