package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineRecordMergesContiguousSegments(t *testing.T) {
	var tl Timeline
	tl.Record(1, 0, 1)
	tl.Record(1, 1, 3)
	tl.Record(2, 3, 5)
	tl.Record(2, 7, 8) // gap, no merge
	tl.Record(3, 8, 8) // empty, ignored

	assert.Equal(t, Timeline{
		{ProcessID: 1, StartTime: 0, EndTime: 3},
		{ProcessID: 2, StartTime: 3, EndTime: 5},
		{ProcessID: 2, StartTime: 7, EndTime: 8},
	}, tl)
	assert.Equal(t, 8, tl.End())
	assert.Equal(t, 6, tl.Busy())
	assert.Equal(t, 2, tl.Idle())
	assert.Equal(t, 1, tl.ContextSwitches())
}

func TestEmptyTimeline(t *testing.T) {
	var tl Timeline
	assert.Equal(t, 0, tl.End())
	assert.Equal(t, 0, tl.Busy())
	assert.Equal(t, 0, tl.Idle())
	assert.Equal(t, 0, tl.ContextSwitches())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		processes []Process
		field     string
	}{
		{name: "zero id", processes: []Process{{ID: 0, ArrivalTime: 0, BurstTime: 1}}, field: "id"},
		{name: "duplicate id", processes: []Process{{ID: 1, BurstTime: 1}, {ID: 1, BurstTime: 2}}, field: "id"},
		{name: "negative arrival", processes: []Process{{ID: 1, ArrivalTime: -1, BurstTime: 1}}, field: "arrival_time"},
		{name: "zero burst", processes: []Process{{ID: 1, ArrivalTime: 0, BurstTime: 0}}, field: "burst_time"},
		{name: "negative burst", processes: []Process{{ID: 1, ArrivalTime: 0, BurstTime: -4}}, field: "burst_time"},
		{name: "end time overflows", processes: []Process{{ID: 1, ArrivalTime: math.MaxInt - 2, BurstTime: 5}}, field: "arrival_time"},
		{name: "total burst overflows", processes: []Process{{ID: 1, BurstTime: math.MaxInt}, {ID: 2, BurstTime: 1}}, field: "burst_time"},
		{name: "late arrival plus later burst overflows", processes: []Process{{ID: 1, ArrivalTime: math.MaxInt - 3, BurstTime: 2}, {ID: 2, BurstTime: 2}}, field: "burst_time"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.processes)
			var invalid *InvalidProcessError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}

	assert.ErrorIs(t, Validate(nil), ErrNoProcesses)
	assert.NoError(t, Validate(NewProcesses([2]int{0, 5}, [2]int{1, 3})))
	assert.NoError(t, Validate([]Process{{ID: 1, ArrivalTime: math.MaxInt - 5, BurstTime: 5}}))
}

func TestNewProcessesAssignsSequentialIDs(t *testing.T) {
	ps := NewProcesses([2]int{0, 5}, [2]int{1, 3}, [2]int{4, 2})
	require.Len(t, ps, 3)
	for i, p := range ps {
		assert.Equal(t, i+1, p.ID)
	}
	assert.Equal(t, Process{ID: 3, ArrivalTime: 4, BurstTime: 2}, ps[2])
}

func TestProcessTableReset(t *testing.T) {
	table := NewProcessTable(NewProcesses([2]int{0, 5}, [2]int{1, 3}))
	table[0].WaitingTime, table[0].TurnaroundTime, table[0].EndTime = 0, 5, 5
	table[1].WaitingTime, table[1].TurnaroundTime, table[1].EndTime, table[1].ResponseTime = 4, 7, 8, 4

	assert.Equal(t, 8, table.TotalBurst())

	table.ResetMetrics()
	for _, s := range table {
		assert.Zero(t, s.WaitingTime)
		assert.Zero(t, s.TurnaroundTime)
		assert.Zero(t, s.EndTime)
		assert.Zero(t, s.ResponseTime)
	}
	assert.Equal(t, Process{ID: 2, ArrivalTime: 1, BurstTime: 3}, table[1].Process)
}

func TestRunStateRun(t *testing.T) {
	processes := []Process{{ID: 2, ArrivalTime: 1, BurstTime: 3}, {ID: 1, ArrivalTime: 0, BurstTime: 4}}
	run := NewRunState(processes)

	// table is ordered by id, input untouched
	require.Equal(t, 1, run.Table[0].ID)
	assert.Equal(t, 2, processes[0].ID)
	assert.Equal(t, 0, run.FirstArrival())
	assert.Equal(t, 1, run.NextArrival(0))
	assert.Equal(t, -1, run.NextArrival(1))

	end := run.Run(0, 0, 2)
	assert.Equal(t, 2, end)
	assert.Equal(t, 2, run.Remaining(0))
	assert.False(t, run.Completed(0))

	end = run.Run(1, 2, 10) // clamped to the remaining burst
	assert.Equal(t, 5, end)
	assert.True(t, run.Completed(1))
	assert.Equal(t, ProcessStats{
		Process:        Process{ID: 2, ArrivalTime: 1, BurstTime: 3},
		WaitingTime:    1,
		TurnaroundTime: 4,
		EndTime:        5,
		ResponseTime:   1,
	}, run.Table[1])

	end = run.Run(0, 5, 2)
	assert.Equal(t, 7, end)
	assert.True(t, run.Done())
	assert.Equal(t, 3, run.Table[0].WaitingTime)
	assert.Equal(t, 0, run.Table[0].ResponseTime)

	// a finished process does not run again
	assert.Equal(t, 7, run.Run(0, 7, 1))
	assert.Len(t, run.Timeline, 3)
}
