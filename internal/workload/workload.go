// Package workload loads process sets from files or inline strings and
// validates them before any scheduler sees them.
//
// Supported sources:
//
//	.csv          rows of "arrival,burst" or "id,arrival,burst", optional header
//	.yaml / .yml  processes: [{arrival: 0, burst: 5}, ...]
//	.json         {"processes": [{"arrival": 0, "burst": 5}, ...]}
//	inline        "0:5,1:3" (arrival:burst pairs)
//
// Processes without an explicit id are numbered 1..n in input order.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"cpu-scheduler/internal/core"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

type document struct {
	Processes []entry `yaml:"processes"`
}

type entry struct {
	ID      int  `yaml:"id"`
	Arrival *int `yaml:"arrival"`
	Burst   *int `yaml:"burst"`
}

// LoadFile picks a decoder by file extension.
func LoadFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f)
	case ".yaml", ".yml", ".json":
		// yaml is a superset of json, one decoder serves both
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV parses rows of arrival,burst or id,arrival,burst. A first row that
// is not numeric is treated as a header.
func ReadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		line := i + 1
		values := make([]int, len(row))
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("csv line %d column %d: %w", line, j+1, err)
			}
			values[j] = v
		}

		p := core.Process{ID: len(processes) + 1}
		switch len(values) {
		case 2:
			p.ArrivalTime, p.BurstTime = values[0], values[1]
		case 3:
			p.ID, p.ArrivalTime, p.BurstTime = values[0], values[1], values[2]
		default:
			return nil, fmt.Errorf("csv line %d: want 2 or 3 columns, got %d", line, len(values))
		}
		processes = append(processes, p)
	}

	return validated(processes)
}

func isHeader(row []string) bool {
	for _, field := range row {
		if _, err := strconv.Atoi(strings.TrimSpace(field)); err != nil {
			return true
		}
	}
	return false
}

// ReadYAML decodes a {processes: [...]} document.
func ReadYAML(r io.Reader) ([]core.Process, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.ErrNoProcesses
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	processes := make([]core.Process, len(doc.Processes))
	for i, e := range doc.Processes {
		if e.Arrival == nil || e.Burst == nil {
			return nil, fmt.Errorf("process #%d: arrival and burst are required", i+1)
		}
		id := e.ID
		if id == 0 {
			id = i + 1
		}
		processes[i] = core.Process{ID: id, ArrivalTime: *e.Arrival, BurstTime: *e.Burst}
	}

	return validated(processes)
}

// Parse reads the inline form "arrival:burst,arrival:burst,...".
func Parse(s string) ([]core.Process, error) {
	var pairs [][2]int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		arrival, burst, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("process %q: want arrival:burst", item)
		}
		a, err := strconv.Atoi(strings.TrimSpace(arrival))
		if err != nil {
			return nil, fmt.Errorf("process %q: arrival: %w", item, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(burst))
		if err != nil {
			return nil, fmt.Errorf("process %q: burst: %w", item, err)
		}
		pairs = append(pairs, [2]int{a, b})
	}

	return validated(core.NewProcesses(pairs...))
}

func validated(processes []core.Process) ([]core.Process, error) {
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
