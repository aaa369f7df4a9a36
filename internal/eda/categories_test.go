package eda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peekknuf/edascan/internal/table"
)

func TestTopCategories(t *testing.T) {
	cats, err := TopCategories(sampleFrame(t), 5, 2)
	require.NoError(t, err)

	require.Contains(t, cats, "city")
	city := cats["city"]
	require.LessOrEqual(t, len(city), 2)
	assert.Equal(t, "A", city[0].Value)
	assert.Equal(t, 2, city[0].Count)
	assert.Equal(t, "B", city[1].Value)
	assert.Equal(t, 1, city[1].Count)

	// numeric columns never appear
	assert.NotContains(t, cats, "age")
	assert.NotContains(t, cats, "height")
}

func TestTopCategoriesTieBrokenByFirstAppearance(t *testing.T) {
	f, err := table.New(
		[]string{"color"},
		[][]string{{"blue"}, {"red"}, {"red"}, {"blue"}, {"green"}},
	)
	require.NoError(t, err)

	cats, err := TopCategories(f, 1, 3)
	require.NoError(t, err)

	color := cats["color"]
	require.Len(t, color, 3)
	// blue and red both count 2; blue appeared first
	assert.Equal(t, "blue", color[0].Value)
	assert.Equal(t, "red", color[1].Value)
	assert.Equal(t, "green", color[2].Value)
}

func TestTopCategoriesColumnCap(t *testing.T) {
	f, err := table.New(
		[]string{"c1", "c2", "c3"},
		[][]string{{"a", "b", "c"}, {"a", "b", "c"}},
	)
	require.NoError(t, err)

	cats, err := TopCategories(f, 2, 5)
	require.NoError(t, err)

	// first two categorical columns in input order
	assert.Len(t, cats, 2)
	assert.Contains(t, cats, "c1")
	assert.Contains(t, cats, "c2")
	assert.NotContains(t, cats, "c3")
}

func TestTopCategoriesSkipsMissing(t *testing.T) {
	f, err := table.New(
		[]string{"v"},
		[][]string{{"x"}, {""}, {"x"}, {"NA"}},
	)
	require.NoError(t, err)

	cats, err := TopCategories(f, 1, 5)
	require.NoError(t, err)

	v := cats["v"]
	require.Len(t, v, 1)
	assert.Equal(t, ValueCount{Value: "x", Count: 2}, v[0])
}

func TestTopCategoriesNoCategoricalColumns(t *testing.T) {
	f, err := table.New(
		[]string{"n"},
		[][]string{{"1"}, {"2"}},
	)
	require.NoError(t, err)

	cats, err := TopCategories(f, 5, 5)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestTopCategoriesInvalidArgs(t *testing.T) {
	_, err := TopCategories(nil, 5, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = TopCategories(sampleFrame(t), -1, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
