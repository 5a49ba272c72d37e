package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin serves a FIFO ready queue in slices of at most quantum.
//
// The queue is seeded with every process arriving at the first arrival
// instant. After each slice, processes that arrived strictly before the slice
// ended are queued ahead of the preempted process, and processes arriving
// exactly at the end are queued behind it. When the queue drains while
// processes are still to arrive, the clock jumps to the next arrival.
func ScheduleRoundRobin(processes []core.Process, quantum int, opts ...Option) (Result, error) {
	o := newOptions(opts)
	if quantum <= 0 {
		return Result{}, fmt.Errorf("%s: %w (got %d)", AlgorithmRR, ErrInvalidQuantum, quantum)
	}
	if err := core.Validate(processes); err != nil {
		return Result{}, fmt.Errorf("%s: %w", AlgorithmRR, err)
	}
	log := o.logger.With().Str("algorithm", string(AlgorithmRR)).Logger()
	log.Debug().Int("processes", len(processes)).Int("quantum", quantum).Msg("running roundRobin algorithm")

	run := core.NewRunState(processes)
	guard := stepGuard{algorithm: AlgorithmRR, max: o.maxSteps}
	order := arrivalOrder(run)

	queued := make([]bool, run.Len())
	readyQueue := make([]int, 0, run.Len())
	admit := func(arrived func(arrival int) bool) {
		for _, i := range order {
			if !queued[i] && arrived(run.Arrival(i)) {
				queued[i] = true
				readyQueue = append(readyQueue, i)
			}
		}
	}

	currentTime := run.FirstArrival()
	admit(func(a int) bool { return a <= currentTime })

	for !run.Done() {
		if err := guard.step(run, currentTime); err != nil {
			return Result{}, err
		}

		if len(readyQueue) == 0 {
			next := run.NextArrival(currentTime)
			if next < 0 {
				return Result{}, stalled(AlgorithmRR, guard.steps, currentTime, run)
			}
			log.Debug().Int("from", currentTime).Int("to", next).Msg("cpu idle")
			currentTime = next
			admit(func(a int) bool { return a <= currentTime })
			continue
		}

		index := readyQueue[0]
		readyQueue = readyQueue[1:]

		start := currentTime
		currentTime = run.Run(index, start, quantum)

		admit(func(a int) bool { return a < currentTime })
		if run.Completed(index) {
			log.Debug().Int("pid", run.Table[index].ID).Int("end", currentTime).Msg("process completed")
		} else {
			log.Debug().Int("pid", run.Table[index].ID).Int("start", start).Int("end", currentTime).
				Msg("context switch detected. send process to back of ready queue")
			readyQueue = append(readyQueue, index)
		}
		admit(func(a int) bool { return a == currentTime })
	}

	return generateResult(AlgorithmRR, quantum, run), nil
}
