// Package eda computes exploratory-data-analysis summaries and data-quality
// heuristics over an immutable table.Frame. All functions are pure: the same
// frame always yields the same report, and nothing here mutates the input.
package eda

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/peekknuf/edascan/internal/table"
)

// ErrInvalidInput marks an absent or malformed input table.
var ErrInvalidInput = errors.New("invalid input")

// ErrInconsistentInput marks a DatasetSummary/MissingTable pair whose column
// sets disagree.
var ErrInconsistentInput = errors.New("inconsistent summary and missing table")

// ColumnSummary holds descriptive statistics for one column. The numeric
// fields are sample statistics over non-missing values only; they are nil
// for non-numeric columns and for numeric columns with no data (Std
// additionally needs at least two values). Std is the sample standard
// deviation (n-1 denominator).
type ColumnSummary struct {
	Name         string
	Kind         table.Kind
	MissingCount int
	UniqueCount  int
	Mean         *float64
	Std          *float64
	Min          *float64
	Max          *float64
}

// DatasetSummary aggregates per-column summaries in input column order.
type DatasetSummary struct {
	NRows   int
	NCols   int
	Columns []ColumnSummary
}

// Column returns the summary for the named column, or nil if absent.
func (s *DatasetSummary) Column(name string) *ColumnSummary {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i]
		}
	}
	return nil
}

// Summarize builds a DatasetSummary from a frame. A fully-missing column
// still produces a summary with MissingCount equal to the row count;
// ignoring such columns is caller policy.
func Summarize(f *table.Frame) (*DatasetSummary, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}

	cols := f.Columns()
	summary := &DatasetSummary{
		NRows:   f.NumRows(),
		NCols:   len(cols),
		Columns: make([]ColumnSummary, 0, len(cols)),
	}

	for i := range cols {
		summary.Columns = append(summary.Columns, summarizeColumn(&cols[i]))
	}
	return summary, nil
}

func summarizeColumn(c *table.Column) ColumnSummary {
	cs := ColumnSummary{
		Name:         c.Name,
		Kind:         c.Kind,
		MissingCount: c.MissingCount(),
		UniqueCount:  distinctCount(c),
	}

	if c.Kind != table.KindNumeric {
		return cs
	}

	values := c.Floats()
	if len(values) == 0 {
		return cs
	}

	if mean, err := stats.Mean(values); err == nil {
		cs.Mean = &mean
	}
	if min, err := stats.Min(values); err == nil {
		cs.Min = &min
	}
	if max, err := stats.Max(values); err == nil {
		cs.Max = &max
	}
	if len(values) >= 2 {
		if std, err := stats.StandardDeviationSample(values); err == nil {
			cs.Std = &std
		}
	}
	return cs
}

// distinctCount counts distinct non-missing values. Numeric columns compare
// parsed values so that "1" and "1.0" are the same observation.
func distinctCount(c *table.Column) int {
	if c.Kind == table.KindNumeric {
		seen := make(map[float64]struct{})
		for i := 0; i < c.Len(); i++ {
			if v, ok := c.Float(i); ok {
				seen[v] = struct{}{}
			}
		}
		return len(seen)
	}

	seen := make(map[string]struct{})
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Value(i); ok {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
