package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoProcesses is returned when a workload is empty.
var ErrNoProcesses = errors.New("no processes to schedule")

// InvalidProcessError describes a process definition that breaks the input contract.
type InvalidProcessError struct {
	ProcessID int
	Field     string
	Value     int
	Reason    string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("invalid process P%d: %s=%d %s", e.ProcessID, e.Field, e.Value, e.Reason)
}

// Validate checks ids are positive and unique, arrivals are non-negative and
// bursts are positive. The latest arrival plus the total burst bounds every
// end time, so a workload whose bound overflows int is rejected too. It
// returns ErrNoProcesses for an empty slice and an *InvalidProcessError for
// the first offending process.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]struct{}, len(processes))
	var lastArrival, totalBurst int
	for _, p := range processes {
		if p.ID <= 0 {
			return &InvalidProcessError{ProcessID: p.ID, Field: "id", Value: p.ID, Reason: "must be greater than 0"}
		}
		if _, ok := seen[p.ID]; ok {
			return &InvalidProcessError{ProcessID: p.ID, Field: "id", Value: p.ID, Reason: "is duplicated"}
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return &InvalidProcessError{ProcessID: p.ID, Field: "arrival_time", Value: p.ArrivalTime, Reason: "must be greater than or equal to 0"}
		}
		if p.BurstTime <= 0 {
			return &InvalidProcessError{ProcessID: p.ID, Field: "burst_time", Value: p.BurstTime, Reason: "must be greater than 0"}
		}
		if totalBurst > math.MaxInt-p.BurstTime {
			return &InvalidProcessError{ProcessID: p.ID, Field: "burst_time", Value: p.BurstTime, Reason: "overflows the total burst time"}
		}
		totalBurst += p.BurstTime
		if p.ArrivalTime > lastArrival {
			lastArrival = p.ArrivalTime
		}
		if lastArrival > math.MaxInt-totalBurst {
			if p.ArrivalTime == lastArrival {
				return &InvalidProcessError{ProcessID: p.ID, Field: "arrival_time", Value: p.ArrivalTime, Reason: "leaves no room to finish every burst"}
			}
			return &InvalidProcessError{ProcessID: p.ID, Field: "burst_time", Value: p.BurstTime, Reason: "pushes the last completion past the clock limit"}
		}
	}
	return nil
}

// NewProcesses builds sequentially numbered processes from (arrival, burst)
// pairs, the way an interactive session assigns ids 1..n.
func NewProcesses(pairs ...[2]int) []Process {
	out := make([]Process, len(pairs))
	for i, p := range pairs {
		out[i] = Process{ID: i + 1, ArrivalTime: p[0], BurstTime: p[1]}
	}
	return out
}
