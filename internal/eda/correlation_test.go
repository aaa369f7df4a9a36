package eda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekknuf/edascan/internal/table"
)

func TestCorrelationBasic(t *testing.T) {
	m, err := Correlation(sampleFrame(t))
	require.NoError(t, err)
	require.False(t, m.Empty())

	assert.Equal(t, []string{"age", "height"}, m.Columns)
	assert.Equal(t, 1.0, m.Values[0][0])
	assert.Equal(t, 1.0, m.Values[1][1])

	// age and height increase together over the paired rows
	require.True(t, m.Defined(0, 1))
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-9)
	assert.Equal(t, m.Values[0][1], m.Values[1][0])
}

func TestCorrelationBounds(t *testing.T) {
	f, err := table.New(
		[]string{"up", "down"},
		[][]string{
			{"1", "9"},
			{"2", "7"},
			{"3", "5"},
			{"4", "1"},
		},
	)
	require.NoError(t, err)

	m, err := Correlation(f)
	require.NoError(t, err)
	for i := range m.Columns {
		for j := range m.Columns {
			if m.Defined(i, j) {
				assert.GreaterOrEqual(t, m.Values[i][j], -1.0)
				assert.LessOrEqual(t, m.Values[i][j], 1.0)
			}
		}
	}
	assert.Less(t, m.Values[0][1], 0.0)
}

func TestCorrelationFewerThanTwoNumericColumns(t *testing.T) {
	f, err := table.New(
		[]string{"x", "label"},
		[][]string{{"1", "a"}, {"2", "b"}},
	)
	require.NoError(t, err)

	m, err := Correlation(f)
	require.NoError(t, err)
	assert.True(t, m.Empty())
}

func TestCorrelationZeroVariancePairUndefined(t *testing.T) {
	f, err := table.New(
		[]string{"constant", "varying"},
		[][]string{
			{"7", "1"},
			{"7", "2"},
			{"7", "3"},
		},
	)
	require.NoError(t, err)

	m, err := Correlation(f)
	require.NoError(t, err)
	require.False(t, m.Empty())
	assert.False(t, m.Defined(0, 1))
	// diagonal stays 1 by definition even for a constant column
	assert.Equal(t, 1.0, m.Values[0][0])
}

func TestCorrelationSkipsMissingPairs(t *testing.T) {
	f, err := table.New(
		[]string{"a", "b"},
		[][]string{
			{"1", "2"},
			{"", "4"},
			{"3", "6"},
			{"4", ""},
			{"5", "10"},
		},
	)
	require.NoError(t, err)

	m, err := Correlation(f)
	require.NoError(t, err)
	require.True(t, m.Defined(0, 1))
	// paired rows (1,2),(3,6),(5,10) are perfectly linear
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-9)
}

func TestCorrelationNilFrame(t *testing.T) {
	_, err := Correlation(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
