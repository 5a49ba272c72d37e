package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTime is the preemptive variant of SJF. At every
// instant the arrived process with the least remaining time holds the cpu,
// lowest id first on ties.
//
// Selection only changes when a process arrives or finishes, so instead of
// ticking one unit at a time the chosen process runs until whichever comes
// first. The resulting timeline and metrics are the same as a tick loop.
func ScheduleShortestRemainingTime(processes []core.Process, opts ...Option) (Result, error) {
	o := newOptions(opts)
	if err := core.Validate(processes); err != nil {
		return Result{}, fmt.Errorf("%s: %w", AlgorithmSRT, err)
	}
	log := o.logger.With().Str("algorithm", string(AlgorithmSRT)).Logger()
	log.Debug().Int("processes", len(processes)).Msg("running srt algorithm")

	run := core.NewRunState(processes)
	guard := stepGuard{algorithm: AlgorithmSRT, max: o.maxSteps}

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
			if shortest == -1 || run.Remaining(i) < run.Remaining(shortest) {
				shortest = i
			}
		}

		next := run.NextArrival(currentTime)
		if shortest == -1 {
			if next < 0 {
				return Result{}, stalled(AlgorithmSRT, guard.steps, currentTime, run)
			}
			log.Debug().Int("from", currentTime).Int("to", next).Msg("cpu idle")
			currentTime = next
			continue
		}

		slice := run.Remaining(shortest)
		if next >= 0 && next-currentTime < slice {
			slice = next - currentTime
		}

		start := currentTime
		currentTime = run.Run(shortest, start, slice)
		if run.Completed(shortest) {
			log.Debug().Int("pid", run.Table[shortest].ID).Int("end", currentTime).Msg("process completed")
		} else {
			log.Debug().Int("pid", run.Table[shortest].ID).Int("start", start).Int("end", currentTime).
				Int("remaining", run.Remaining(shortest)).Msg("checking for preemption")
		}
	}

	return generateResult(AlgorithmSRT, 0, run), nil
}
