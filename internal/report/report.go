package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

const ganttCellWidth = 6

// WriteResults renders every result followed by a comparison table when
// there is more than one.
func WriteResults(w io.Writer, results []schedulers.Result) {
	for i, r := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		WriteResult(w, r)
	}
	if len(results) > 1 {
		_, _ = fmt.Fprintln(w)
		WriteComparison(w, results)
	}
}

// WriteResult prints the title, the process table and the gantt chart of one run.
func WriteResult(w io.Writer, r schedulers.Result) {
	title := r.Algorithm.Title()
	if r.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum = %d)", title, r.Quantum)
	}
	WriteTitle(w, title)
	WriteSchedule(w, r)
	WriteGantt(w, r.Timeline)
	_, _ = fmt.Fprintf(w, "Average waiting time: %.2f\n", r.AverageWaitingTime)
}

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(title)+4))
}

func WriteSchedule(w io.Writer, r schedulers.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Waiting", "Turnaround", "Response", "End"})
	for _, p := range r.Processes {
		table.Append([]string{
			fmt.Sprintf("P%d", p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.EndTime),
		})
	}
	table.SetFooter([]string{"", "", "Average",
		fmt.Sprintf("%.2f", r.AverageWaitingTime),
		fmt.Sprintf("%.2f", r.AverageTurnaroundTime),
		fmt.Sprintf("%.2f", r.AverageResponseTime),
		fmt.Sprint(r.TotalTime),
	})
	table.Render()
}

// WriteGantt draws one cell per segment with its start time underneath and
// the final end time after the last cell. Idle gaps show as "-".
func WriteGantt(w io.Writer, timeline core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var bars, scale strings.Builder
	bars.WriteString("|")
	last := 0
	cell := func(label string, start int) {
		bars.WriteString(center(label, ganttCellWidth))
		bars.WriteString("|")
		scale.WriteString(fmt.Sprintf("%-*d", ganttCellWidth+1, start))
	}
	for _, s := range timeline {
		if s.StartTime > last {
			cell("-", last)
		}
		cell(fmt.Sprintf("P%d", s.ProcessID), s.StartTime)
		last = s.EndTime
	}
	scale.WriteString(fmt.Sprint(last))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, scale.String())
}

// WriteComparison summarizes several runs side by side.
func WriteComparison(w io.Writer, results []schedulers.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg waiting", "Avg turnaround", "Avg response", "Utilization", "Throughput", "Switches"})
	for _, r := range results {
		table.Append([]string{
			string(r.Algorithm),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.Throughput),
			fmt.Sprint(r.ContextSwitches),
		})
	}
	table.Render()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
