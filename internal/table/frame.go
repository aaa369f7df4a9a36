package table

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a table that is absent or structurally malformed:
// nil input, rows of inconsistent width, or duplicate column names.
var ErrInvalidInput = errors.New("invalid table input")

// Kind tags a column with its statistical type, computed once at load time.
// Downstream analyzers branch on the tag and never re-probe cell contents.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return "other"
	}
}

// Column is one named column of a Frame. Every cell is either a present
// value or an explicit absence; aggregations skip absences rather than
// relying on sentinel propagation.
type Column struct {
	Name string
	Kind Kind

	cells  []string
	absent []bool
	// floats holds the parsed value for numeric columns, aligned with
	// cells. Entries at absent positions are meaningless.
	floats []float64
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return len(c.cells)
}

// IsMissing reports whether the cell at row i is absent.
func (c *Column) IsMissing(i int) bool {
	return c.absent[i]
}

// Value returns the raw cell text at row i; ok is false when absent.
func (c *Column) Value(i int) (string, bool) {
	if c.absent[i] {
		return "", false
	}
	return c.cells[i], true
}

// Float returns the parsed numeric value at row i; ok is false when the
// cell is absent or the column is not numeric.
func (c *Column) Float(i int) (float64, bool) {
	if c.Kind != KindNumeric || c.absent[i] {
		return 0, false
	}
	return c.floats[i], true
}

// MissingCount returns the number of absent cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, a := range c.absent {
		if a {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in row order. Nil for
// non-numeric columns.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.floats))
	for i, v := range c.floats {
		if !c.absent[i] {
			out = append(out, v)
		}
	}
	return out
}

// Frame is an immutable in-memory table: ordered named columns of equal
// length. All analyses treat it as read-only.
type Frame struct {
	cols  []Column
	nRows int
}

// New builds a Frame from a header row and data records. Cell text matching
// one of the missing-value sentinels is recorded as absent. Fails with
// ErrInvalidInput on duplicate headers or ragged records.
func New(headers []string, records [][]string) (*Frame, error) {
	if headers == nil {
		return nil, fmt.Errorf("%w: nil headers", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrInvalidInput, h)
		}
		seen[h] = struct{}{}
	}

	nRows := len(records)
	cols := make([]Column, len(headers))
	for j, name := range headers {
		cols[j] = Column{
			Name:   name,
			cells:  make([]string, nRows),
			absent: make([]bool, nRows),
		}
	}

	for i, rec := range records {
		if len(rec) != len(headers) {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d",
				ErrInvalidInput, i+1, len(rec), len(headers))
		}
		for j, cell := range rec {
			if isMissingSentinel(cell) {
				cols[j].absent[i] = true
				continue
			}
			cols[j].cells[i] = cell
		}
	}

	for j := range cols {
		inferKind(&cols[j])
	}

	return &Frame{cols: cols, nRows: nRows}, nil
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int {
	return f.nRows
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// Columns returns the columns in input order.
func (f *Frame) Columns() []Column {
	return f.cols
}

// Column returns the column with the given name, or nil if absent.
func (f *Frame) Column(name string) *Column {
	for i := range f.cols {
		if f.cols[i].Name == name {
			return &f.cols[i]
		}
	}
	return nil
}
