package core

import "sort"

// RunState is the scratch state of a single scheduler invocation. Schedulers
// build a fresh one per call, which leaves the input processes untouched and
// makes a reset between runs unnecessary.
type RunState struct {
	Table    ProcessTable
	Timeline Timeline

	remaining  []int
	completed  []bool
	dispatched []bool
	done       int
}

// NewRunState copies processes into a table ordered by id.
func NewRunState(processes []Process) *RunState {
	table := NewProcessTable(processes)
	sort.SliceStable(table, func(i, j int) bool { return table[i].ID < table[j].ID })

	r := &RunState{
		Table:      table,
		Timeline:   make(Timeline, 0, len(table)),
		remaining:  make([]int, len(table)),
		completed:  make([]bool, len(table)),
		dispatched: make([]bool, len(table)),
	}
	for i := range table {
		r.remaining[i] = table[i].BurstTime
	}
	return r
}

func (r *RunState) Len() int { return len(r.Table) }

// Arrival and Remaining are shorthands used by the selection loops.
func (r *RunState) Arrival(i int) int    { return r.Table[i].ArrivalTime }
func (r *RunState) Remaining(i int) int  { return r.remaining[i] }
func (r *RunState) Completed(i int) bool { return r.completed[i] }

// Done reports whether every process has used its full burst.
func (r *RunState) Done() bool { return r.done == len(r.Table) }

// Run executes process i for d units starting at start and returns the time
// at which the slice ends. d is clamped to the remaining burst. Finishing the
// burst fills in end, turnaround and waiting time.
func (r *RunState) Run(i, start, d int) int {
	if d > r.remaining[i] {
		d = r.remaining[i]
	}
	if d <= 0 {
		return start
	}
	s := &r.Table[i]
	if !r.dispatched[i] {
		r.dispatched[i] = true
		s.ResponseTime = start - s.ArrivalTime
	}

	end := start + d
	r.remaining[i] -= d
	r.Timeline.Record(s.ID, start, end)

	if r.remaining[i] == 0 {
		r.completed[i] = true
		r.done++
		s.EndTime = end
		s.TurnaroundTime = end - s.ArrivalTime
		s.WaitingTime = s.TurnaroundTime - s.BurstTime
	}
	return end
}

// NextArrival returns the earliest arrival strictly after now among
// unfinished processes, or -1 when there is none.
func (r *RunState) NextArrival(now int) int {
	next := -1
	for i := range r.Table {
		if r.completed[i] {
			continue
		}
		if a := r.Table[i].ArrivalTime; a > now && (next == -1 || a < next) {
			next = a
		}
	}
	return next
}

// FirstArrival is the earliest arrival of any process.
func (r *RunState) FirstArrival() int {
	first := -1
	for i := range r.Table {
		if a := r.Table[i].ArrivalTime; first == -1 || a < first {
			first = a
		}
	}
	return first
}
