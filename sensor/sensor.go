// Package sensor reads the pressure time series written by the solver and
// the experimental reference tables they are compared against.
package sensor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"
)

// Series is a set of pressure signals sharing one timebase. P[i] is the
// signal read from column Cols[i]; time is always column 0.
type Series struct {
	T    []float64
	P    [][]float64
	Cols []int
}

// ReadSeries reads time and the given pressure columns from a
// whitespace-delimited table file. Sensor files are appended to while the
// solver runs, so header lines, malformed lines, and a trailing
// partially-written line are all skipped rather than treated as errors.
func ReadSeries(path string, cols []int) (*Series, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("No pressure columns requested for '%s'.", path)
	}

	clean, n, err := cleanTable(path, cols)
	if err != nil {
		return nil, err
	}
	defer os.Remove(clean)
	if n == 0 {
		return nil, fmt.Errorf("No complete samples in '%s'.", path)
	}

	colIdxs := append([]int{0}, cols...)
	out, err := table.ReadTable(clean, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	return &Series{T: out[0], P: out[1:], Cols: cols}, nil
}

// cleanTable copies the parseable lines of path into a temporary file and
// returns its name and the number of samples kept. The caller removes the
// file. A final line not terminated by a newline is still in flight and is
// dropped.
func cleanTable(path string, cols []int) (string, int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}

	maxCol := 0
	for _, c := range cols {
		if c > maxCol {
			maxCol = c
		}
	}

	text := string(buf)
	unterminated := len(text) > 0 && !strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if unterminated {
		lines = lines[:len(lines)-1]
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) <= maxCol {
			continue
		}
		ok := true
		for _, f := range fields {
			if _, err := strconv.ParseFloat(f, 64); err != nil {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, line)
		}
	}

	f, err := os.CreateTemp("", "sensor_table")
	if err != nil {
		return "", 0, err
	}
	_, err = f.WriteString(strings.Join(kept, "\n") + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", 0, err
	}
	return f.Name(), len(kept), nil
}
