package eda

import (
	"fmt"

	"github.com/peekknuf/edascan/internal/table"
)

// MissingStat reports the absent-value count and share for one column.
// Share is MissingCount / NRows, in [0,1]; defined as 0 (not NaN) when the
// table has zero rows.
type MissingStat struct {
	Name         string
	MissingCount int
	MissingShare float64
}

// MissingTable lists per-column missing statistics in input column order.
type MissingTable struct {
	Rows []MissingStat

	index map[string]int
}

// Stat returns the entry for the named column; ok is false if absent.
func (m *MissingTable) Stat(name string) (MissingStat, bool) {
	i, ok := m.index[name]
	if !ok {
		return MissingStat{}, false
	}
	return m.Rows[i], true
}

// MaxShare returns the largest missing share over all columns, 0 when the
// table has no columns.
func (m *MissingTable) MaxShare() float64 {
	max := 0.0
	for _, r := range m.Rows {
		if r.MissingShare > max {
			max = r.MissingShare
		}
	}
	return max
}

// MissingReport computes the per-column missing-value report. A frame with
// zero columns yields an empty report, not an error.
func MissingReport(f *table.Frame) (*MissingTable, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}

	cols := f.Columns()
	mt := &MissingTable{
		Rows:  make([]MissingStat, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}

	nRows := f.NumRows()
	for i := range cols {
		count := cols[i].MissingCount()
		share := 0.0
		if nRows > 0 {
			share = float64(count) / float64(nRows)
		}
		mt.index[cols[i].Name] = len(mt.Rows)
		mt.Rows = append(mt.Rows, MissingStat{
			Name:         cols[i].Name,
			MissingCount: count,
			MissingShare: share,
		})
	}
	return mt, nil
}
