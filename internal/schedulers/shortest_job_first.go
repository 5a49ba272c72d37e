package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is the non-preemptive shortest-burst policy.
// Whenever the cpu frees up, the arrived process with the smallest burst runs
// to completion; equal bursts go to the lowest id. An idle cpu jumps straight
// to the next arrival.
func ScheduleShortestJobFirst(processes []core.Process, opts ...Option) (Result, error) {
	o := newOptions(opts)
	if err := core.Validate(processes); err != nil {
		return Result{}, fmt.Errorf("%s: %w", AlgorithmSJF, err)
	}
	log := o.logger.With().Str("algorithm", string(AlgorithmSJF)).Logger()
	log.Debug().Int("processes", len(processes)).Msg("running sjf algorithm")

	run := core.NewRunState(processes)
	guard := stepGuard{algorithm: AlgorithmSJF, max: o.maxSteps}

	currentTime := 0
	for !run.Done() {
		if err := guard.step(run, currentTime); err != nil {
			return Result{}, err
		}

		shortest := -1
		for i := 0; i < run.Len(); i++ {
			if run.Completed(i) || run.Arrival(i) > currentTime {
				continue
			}
			if shortest == -1 || run.Table[i].BurstTime < run.Table[shortest].BurstTime {
				shortest = i
			}
		}

		if shortest == -1 {
			next := run.NextArrival(currentTime)
			if next < 0 {
				return Result{}, stalled(AlgorithmSJF, guard.steps, currentTime, run)
			}
			log.Debug().Int("from", currentTime).Int("to", next).Msg("cpu idle")
			currentTime = next
			continue
		}

		start := currentTime
		currentTime = run.Run(shortest, start, run.Remaining(shortest))
		log.Debug().Int("pid", run.Table[shortest].ID).Int("start", start).Int("end", currentTime).Msg("process completed")
	}

	return generateResult(AlgorithmSJF, 0, run), nil
}
