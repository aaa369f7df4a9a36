package eda

import (
	"fmt"
	"sort"

	"github.com/peekknuf/edascan/internal/table"
)

// ValueCount is one row of a frequency table.
type ValueCount struct {
	Value string
	Count int
}

// TopCategories builds frequency tables for categorical columns. The first
// maxColumns categorical columns in input order are selected; each table
// holds the topK most frequent non-missing values, ties broken by first
// appearance. Non-categorical columns never appear in the result.
func TopCategories(f *table.Frame, maxColumns, topK int) (map[string][]ValueCount, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}
	if maxColumns < 0 || topK < 0 {
		return nil, fmt.Errorf("%w: negative maxColumns or topK", ErrInvalidInput)
	}

	result := make(map[string][]ValueCount)
	cols := f.Columns()
	selected := 0
	for i := range cols {
		if selected >= maxColumns {
			break
		}
		if cols[i].Kind != table.KindCategorical {
			continue
		}
		result[cols[i].Name] = topValues(&cols[i], topK)
		selected++
	}
	return result, nil
}

func topValues(c *table.Column, topK int) []ValueCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i := 0; i < c.Len(); i++ {
		v, ok := c.Value(i)
		if !ok {
			continue
		}
		if _, seen := counts[v]; !seen {
			firstSeen[v] = i
		}
		counts[v]++
	}

	all := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		all = append(all, ValueCount{Value: v, Count: n})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return firstSeen[all[i].Value] < firstSeen[all[j].Value]
	})

	if len(all) > topK {
		all = all[:topK]
	}
	return all
}
