package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

func TestWriteGantt(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, core.Timeline{
		{ProcessID: 1, StartTime: 0, EndTime: 5},
		{ProcessID: 2, StartTime: 5, EndTime: 8},
	})
	assert.Equal(t, "Gantt chart\n|  P1  |  P2  |\n0      5      8\n", buf.String())
}

func TestWriteGanttShowsIdle(t *testing.T) {
	var buf bytes.Buffer
	WriteGantt(&buf, core.Timeline{{ProcessID: 1, StartTime: 2, EndTime: 5}})
	assert.Equal(t, "Gantt chart\n|  -   |  P1  |\n0      2      5\n", buf.String())

	buf.Reset()
	WriteGantt(&buf, nil)
	assert.Equal(t, "Gantt chart\n(empty)\n", buf.String())
}

func TestWriteResults(t *testing.T) {
	results, err := schedulers.ScheduleAll(
		[]schedulers.Algorithm{schedulers.AlgorithmFCFS, schedulers.AlgorithmRR},
		core.NewProcesses([2]int{0, 5}, [2]int{1, 3}),
		3,
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteResults(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "First-Come-First-Served")
	assert.Contains(t, out, "Round Robin (quantum = 3)")
	assert.Contains(t, out, "Turnaround")
	assert.Contains(t, out, "Average waiting time: 2.00")
	assert.Contains(t, out, "Avg waiting")
	assert.Equal(t, 2, strings.Count(out, "Gantt chart"))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  P1  ", center("P1", 6))
	assert.Equal(t, " P10  ", center("P10", 6))
	assert.Equal(t, "P12345", center("P12345", 6))
}
