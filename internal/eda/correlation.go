package eda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/peekknuf/edascan/internal/table"
)

// CorrMatrix is a square matrix of pairwise Pearson correlation
// coefficients over the numeric columns, named on both axes. Undefined
// entries (zero variance in either column, or fewer than two paired
// observations) hold NaN; use Defined to distinguish them.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Empty reports whether the matrix has no entries.
func (m *CorrMatrix) Empty() bool {
	return len(m.Columns) == 0
}

// Defined reports whether the coefficient at (i, j) is defined.
func (m *CorrMatrix) Defined(i, j int) bool {
	return !math.IsNaN(m.Values[i][j])
}

// Correlation computes the pairwise linear correlation matrix over the
// frame's numeric columns. Each pair is computed over rows where both
// values are present. Fewer than two numeric columns yield an empty matrix.
// The diagonal is 1 by definition.
func Correlation(f *table.Frame) (*CorrMatrix, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}

	cols := f.Columns()
	var numeric []*table.Column
	for i := range cols {
		if cols[i].Kind == table.KindNumeric {
			numeric = append(numeric, &cols[i])
		}
	}

	if len(numeric) < 2 {
		return &CorrMatrix{}, nil
	}

	m := &CorrMatrix{
		Columns: make([]string, len(numeric)),
		Values:  make([][]float64, len(numeric)),
	}
	for i, c := range numeric {
		m.Columns[i] = c.Name
		m.Values[i] = make([]float64, len(numeric))
		m.Values[i][i] = 1
	}

	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			r := pairwiseCorrelation(numeric[i], numeric[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

// pairwiseCorrelation computes the Pearson coefficient over rows where both
// columns have a value. NaN when undefined.
func pairwiseCorrelation(a, b *table.Column) float64 {
	var xs, ys []float64
	for i := 0; i < a.Len(); i++ {
		x, okX := a.Float(i)
		y, okY := b.Float(i)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	if len(xs) < 2 {
		return math.NaN()
	}
	// gonum returns NaN on zero variance, which is exactly the undefined
	// marker the matrix carries.
	return stat.Correlation(xs, ys, nil)
}
