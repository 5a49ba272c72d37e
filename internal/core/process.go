package core

// Process is one simulated task. It is never mutated by a scheduler.
type Process struct {
	ID          int `json:"id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

// ProcessStats is the per-run view of a process: its definition plus the
// metrics computed by one scheduler invocation.
type ProcessStats struct {
	Process
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
	EndTime        int `json:"end_time"`
	ResponseTime   int `json:"response_time"`
}

// ProcessTable holds the stats of every process for a single run.
type ProcessTable []ProcessStats

// NewProcessTable returns a zeroed table for processes, preserving their order.
func NewProcessTable(processes []Process) ProcessTable {
	table := make(ProcessTable, len(processes))
	for i, p := range processes {
		table[i] = ProcessStats{Process: p}
	}
	return table
}

// ResetMetrics clears every computed field so the table can be reused.
func (t ProcessTable) ResetMetrics() {
	for i := range t {
		t[i] = ProcessStats{Process: t[i].Process}
	}
}

// TotalBurst is the amount of CPU work the table represents.
func (t ProcessTable) TotalBurst() int {
	var sum int
	for _, s := range t {
		sum += s.BurstTime
	}
	return sum
}
