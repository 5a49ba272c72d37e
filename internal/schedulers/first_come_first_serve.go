package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving at the same instant run in id order.
func ScheduleFirstComeFirstServe(processes []core.Process, opts ...Option) (Result, error) {
	o := newOptions(opts)
	if err := core.Validate(processes); err != nil {
		return Result{}, fmt.Errorf("%s: %w", AlgorithmFCFS, err)
	}
	log := o.logger.With().Str("algorithm", string(AlgorithmFCFS)).Logger()
	log.Debug().Int("processes", len(processes)).Msg("running fcfs algorithm")

	run := core.NewRunState(processes)
	guard := stepGuard{algorithm: AlgorithmFCFS, max: o.maxSteps}

	currentTime := 0
	for _, i := range arrivalOrder(run) {
		if err := guard.step(run, currentTime); err != nil {
			return Result{}, err
		}
		// cpu stays idle until the process arrives
		start := max(currentTime, run.Arrival(i))
		currentTime = run.Run(i, start, run.Remaining(i))
		log.Debug().Int("pid", run.Table[i].ID).Int("start", start).Int("end", currentTime).Msg("process completed")
	}

	return generateResult(AlgorithmFCFS, 0, run), nil
}
