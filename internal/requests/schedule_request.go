package requests

import "cpu-scheduler/internal/core"

type Process struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

type ScheduleRequest struct {
	Processes   []Process `json:"processes"`
	TimeQuantum int       `json:"time_quantum"`
	Algorithms  []string  `json:"algorithms"`
}

// ToProcesses converts the request body to core processes. Processes
// without a process_id are numbered in list order after the highest explicit
// id, so they never collide with one.
func (r ScheduleRequest) ToProcesses() []core.Process {
	next := 0
	for _, p := range r.Processes {
		if p.ProcessId > next {
			next = p.ProcessId
		}
	}

	out := make([]core.Process, len(r.Processes))
	for i, p := range r.Processes {
		id := p.ProcessId
		if id == 0 {
			next++
			id = next
		}
		out[i] = core.Process{ID: id, ArrivalTime: p.ArrivalTime, BurstTime: p.BurstTime}
	}
	return out
}
