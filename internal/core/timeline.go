package core

// Segment is one contiguous interval during which the CPU ran a single process.
type Segment struct {
	ProcessID int `json:"process_id"`
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

// Duration of the segment in time units.
func (s Segment) Duration() int { return s.EndTime - s.StartTime }

// Timeline is the Gantt chart of a run, in chronological order.
type Timeline []Segment

// Record appends [start, end) for id. When the previous segment belongs to the
// same process and ends exactly at start, it is extended instead, so a
// timeline never holds two touching segments for one process.
func (t *Timeline) Record(id, start, end int) {
	if end <= start {
		return
	}
	if n := len(*t); n > 0 {
		last := &(*t)[n-1]
		if last.ProcessID == id && last.EndTime == start {
			last.EndTime = end
			return
		}
	}
	*t = append(*t, Segment{ProcessID: id, StartTime: start, EndTime: end})
}

// End is the time at which the last segment finishes.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].EndTime
}

// Busy is the total time the CPU spent executing.
func (t Timeline) Busy() int {
	var sum int
	for _, s := range t {
		sum += s.Duration()
	}
	return sum
}

// Idle is the total gap time between 0 and End.
func (t Timeline) Idle() int { return t.End() - t.Busy() }

// ContextSwitches counts hand-overs between two different processes.
func (t Timeline) ContextSwitches() int {
	var n int
	for i := 1; i < len(t); i++ {
		if t[i].ProcessID != t[i-1].ProcessID {
			n++
		}
	}
	return n
}
