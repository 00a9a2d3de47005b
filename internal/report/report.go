// Package report renders benchmark runs as a terminal table, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"ParReduce/internal/types"
)

// ErrUnknownFormat is returned for output formats other than table, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	badStyle    = cellStyle.Foreground(lipgloss.Color("9"))
)

// Render writes run to w in the given format.
func Render(w io.Writer, run *types.BenchmarkRun, format string) error {
	switch format {
	case FormatTable, "":
		return renderRunTable(w, run)
	case FormatJSON:
		return renderJSON(w, run)
	case FormatYAML:
		return renderYAML(w, run)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderContention writes a lock-wait sweep to w in the given format.
func RenderContention(w io.Writer, points []types.ContentionPoint, format string) error {
	switch format {
	case FormatTable, "":
		return renderContentionTable(w, points)
	case FormatJSON:
		return renderJSON(w, points)
	case FormatYAML:
		return renderYAML(w, points)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RunRows returns the table body for run: size, the three timings in
// microseconds, total lock wait and whether the reducers agreed.
func RunRows(run *types.BenchmarkRun) [][]string {
	rows := make([][]string, 0, len(run.Sizes))
	for _, s := range run.Sizes {
		ok := "yes"
		if !s.Consistent {
			ok = "NO"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Size),
			strconv.FormatInt(s.Sequential.Micros, 10),
			strconv.FormatInt(s.Locking.Micros, 10),
			strconv.FormatInt(s.LockFree.Micros, 10),
			strconv.FormatInt(s.LockWaitMicros, 10),
			ok,
		})
	}
	return rows
}

func renderRunTable(w io.Writer, run *types.BenchmarkRun) error {
	rows := RunRows(run)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Size", "Sequential", "Blocking", "NonBlocking", "Lock wait", "OK").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 5 && row >= 0 && row < len(rows) && rows[row][5] != "yes" {
				return badStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "run %s  workers=%d  seed=%d  range=[%d,%d]  (times in us)\n%s\n",
		run.ID, run.Workers, run.Seed, run.Min, run.Max, t.String())
	return err
}

func renderContentionTable(w io.Writer, points []types.ContentionPoint) error {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Workers),
			strconv.Itoa(p.Trials),
			strconv.FormatFloat(p.MeanWaitMicros, 'f', 1, 64),
			strconv.FormatInt(p.MaxWaitMicros, 10),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Workers", "Trials", "Mean wait (us)", "Max wait (us)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
