package responses

import "cpu-scheduler/internal/schedulers"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
	EndTime        int `json:"end_time"`
}

type GanttSegment struct {
	ProcessId int `json:"process_id"`
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	GanttChart            []GanttSegment    `json:"gantt_chart"`
	Details               []ProcessResponse `json:"details"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromResult(r schedulers.Result) ScheduleResponse {
	details := make([]ProcessResponse, len(r.Processes))
	for i, p := range r.Processes {
		details[i] = ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			WaitingTime:    p.WaitingTime,
			TurnAroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
			EndTime:        p.EndTime,
		}
	}
	gantt := make([]GanttSegment, len(r.Timeline))
	for i, s := range r.Timeline {
		gantt[i] = GanttSegment{ProcessId: s.ProcessID, StartTime: s.StartTime, EndTime: s.EndTime}
	}

	return ScheduleResponse{
		Algorithm:             string(r.Algorithm),
		TimeQuantum:           r.Quantum,
		TotalTime:             r.TotalTime,
		IdleTime:              r.IdleTime,
		AverageWaitingTime:    r.AverageWaitingTime,
		AverageResponseTime:   r.AverageResponseTime,
		AverageTurnAroundTime: r.AverageTurnaroundTime,
		CpuUtilization:        r.CpuUtilization,
		CpuThroughput:         r.Throughput,
		ContextSwitches:       r.ContextSwitches,
		GanttChart:            gantt,
		Details:               details,
	}
}

func FromResults(results []schedulers.Result) []ScheduleResponse {
	out := make([]ScheduleResponse, len(results))
	for i, r := range results {
		out[i] = FromResult(r)
	}
	return out
}
