package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	table := core.ProcessTable{
		{Process: core.Process{ID: 1, BurstTime: 5}, WaitingTime: 0, TurnaroundTime: 5, ResponseTime: 0},
		{Process: core.Process{ID: 2, BurstTime: 3}, WaitingTime: 4, TurnaroundTime: 7, ResponseTime: 4},
		{Process: core.Process{ID: 3, BurstTime: 1}, WaitingTime: 1, TurnaroundTime: 2, ResponseTime: 1},
	}

	waiting, response, turnaround := CalculateAverage(table)
	assert.InDelta(t, 5.0/3, waiting, 1e-9)
	assert.InDelta(t, 5.0/3, response, 1e-9)
	assert.InDelta(t, 14.0/3, turnaround, 1e-9)
}

func TestCalculateAverageEmpty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)
	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}
