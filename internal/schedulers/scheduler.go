package schedulers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"cpu-scheduler/internal/core"
)

type Algorithm string

const (
	AlgorithmFCFS Algorithm = "fcfs"
	AlgorithmSJF  Algorithm = "sjf"
	AlgorithmSRT  Algorithm = "srt"
	AlgorithmRR   Algorithm = "rr"
)

// DefaultMaxSteps bounds the selection loop of every algorithm.
const DefaultMaxSteps = 10_000_000

// Algorithms lists every discipline in the order reports show them.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmSRT, AlgorithmRR}

var algorithmNames = map[Algorithm]string{
	AlgorithmFCFS: "First-Come-First-Served",
	AlgorithmSJF:  "Shortest Job First",
	AlgorithmSRT:  "Shortest Remaining Time",
	AlgorithmRR:   "Round Robin",
}

// Title is the human readable name of the algorithm.
func (a Algorithm) Title() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return string(a)
}

// ParseAlgorithm accepts the short names and a few common aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "fifo", "first-come-first-served":
		return AlgorithmFCFS, nil
	case "sjf", "shortest-job-first":
		return AlgorithmSJF, nil
	case "srt", "srtf", "shortest-remaining-time":
		return AlgorithmSRT, nil
	case "rr", "round-robin", "roundrobin":
		return AlgorithmRR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseAlgorithms parses a list of names, dropping duplicates. An empty list
// selects every algorithm.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return append([]Algorithm(nil), Algorithms...), nil
	}
	seen := make(map[Algorithm]bool, len(names))
	out := make([]Algorithm, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out, nil
}

type Option func(*options)

type options struct {
	maxSteps int
	logger   zerolog.Logger
}

// WithMaxSteps overrides DefaultMaxSteps. n <= 0 disables the guard.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// WithLogger makes the scheduler log its dispatch decisions at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{maxSteps: DefaultMaxSteps, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// stepGuard turns a runaway selection loop into a SimulationStalledError.
type stepGuard struct {
	algorithm Algorithm
	max       int
	steps     int
}

func (g *stepGuard) step(run *core.RunState, now int) error {
	g.steps++
	if g.max > 0 && g.steps > g.max {
		return stalled(g.algorithm, g.max, now, run)
	}
	return nil
}

// Schedule runs a single algorithm. quantum is only used by round robin.
func Schedule(algorithm Algorithm, processes []core.Process, quantum int, opts ...Option) (Result, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return ScheduleFirstComeFirstServe(processes, opts...)
	case AlgorithmSJF:
		return ScheduleShortestJobFirst(processes, opts...)
	case AlgorithmSRT:
		return ScheduleShortestRemainingTime(processes, opts...)
	case AlgorithmRR:
		return ScheduleRoundRobin(processes, quantum, opts...)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// ScheduleAll runs each algorithm over the same processes. Every run starts
// from fresh state, so the results are independent of their order.
func ScheduleAll(algorithms []Algorithm, processes []core.Process, quantum int, opts ...Option) ([]Result, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms
	}
	results := make([]Result, 0, len(algorithms))
	for _, a := range algorithms {
		r, err := Schedule(a, processes, quantum, opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func arrivalOrder(run *core.RunState) []int {
	order := make([]int, run.Len())
	for i := range order {
		order[i] = i
	}
	// the run table is sorted by id, so a stable sort breaks ties by id
	sort.SliceStable(order, func(a, b int) bool { return run.Arrival(order[a]) < run.Arrival(order[b]) })
	return order
}
