package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidQuantum   = errors.New("time quantum must be greater than 0")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

// SimulationStalledError is returned when a run exceeds its step budget
// without completing every process.
type SimulationStalledError struct {
	Algorithm Algorithm
	Steps     int
	Time      int
	Pending   int
}

func (e *SimulationStalledError) Error() string {
	return fmt.Sprintf("%s: simulation stalled after %d steps at t=%d with %d process(es) pending",
		e.Algorithm, e.Steps, e.Time, e.Pending)
}

func stalled(algorithm Algorithm, steps, now int, run *core.RunState) error {
	pending := 0
	for i := 0; i < run.Len(); i++ {
		if !run.Completed(i) {
			pending++
		}
	}
	return &SimulationStalledError{Algorithm: algorithm, Steps: steps, Time: now, Pending: pending}
}
