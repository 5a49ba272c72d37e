package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunInline(t *testing.T) {
	code, out, errOut := run(t, "run", "-p", "0:5,1:3", "-algorithms", "fcfs")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "First-Come-First-Served")
	assert.Contains(t, out, "Average waiting time: 2.00")
	assert.NotContains(t, out, "Round Robin")
}

func TestRunFileAllAlgorithms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.csv")
	require.NoError(t, os.WriteFile(path, []byte("arrival,burst\n0,11\n3,7\n8,19\n13,4\n17,9\n"), 0o644))

	code, out, errOut := run(t, "run", "-quantum", "4", path)
	require.Equal(t, 0, code, errOut)
	for _, title := range []string{"First-Come-First-Served", "Shortest Job First", "Shortest Remaining Time", "Round Robin (quantum = 4)"} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Avg turnaround")
}

func TestRunErrors(t *testing.T) {
	code, _, errOut := run(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage")

	code, _, _ = run(t, "launch")
	assert.Equal(t, 2, code)

	code, _, errOut = run(t, "run")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "workload file")

	code, _, errOut = run(t, "run", "-p", "0:0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "burst_time")

	code, _, errOut = run(t, "run", "-p", "0:1", "-algorithms", "mlfq")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown scheduling algorithm")

	code, _, _ = run(t, "watch")
	assert.Equal(t, 2, code)
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "serve")

	code, _, _ = run(t, "run", "-h")
	assert.Equal(t, 0, code)
}
