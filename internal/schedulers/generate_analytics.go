package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Result is everything one algorithm run produces. Processes are listed in id order.
type Result struct {
	Algorithm             Algorithm
	Quantum               int
	Processes             core.ProcessTable
	Timeline              core.Timeline
	TotalTime             int
	IdleTime              int
	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnaroundTime float64
	CpuUtilization        float64
	Throughput            float64
	ContextSwitches       int
}

func generateResult(algorithm Algorithm, quantum int, run *core.RunState) Result {
	averageWaitingTime, averageResponseTime, averageTurnaroundTime := util.CalculateAverage(run.Table)

	totalTime := run.Timeline.End()
	var utilization, throughput float64
	if totalTime > 0 {
		utilization = float64(run.Timeline.Busy()) / float64(totalTime)
		throughput = float64(run.Len()) / float64(totalTime)
	}

	return Result{
		Algorithm:             algorithm,
		Quantum:               quantum,
		Processes:             run.Table,
		Timeline:              run.Timeline,
		TotalTime:             totalTime,
		IdleTime:              run.Timeline.Idle(),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnaroundTime: averageTurnaroundTime,
		CpuUtilization:        utilization,
		Throughput:            throughput,
		ContextSwitches:       run.Timeline.ContextSwitches(),
	}
}
