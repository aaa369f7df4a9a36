package table

import (
	"strconv"
	"time"
)

// missingSentinels are the cell spellings treated as an absent value.
var missingSentinels = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

func isMissingSentinel(value string) bool {
	_, ok := missingSentinels[value]
	return ok
}

// inferKind classifies a column from its non-missing cells and, for numeric
// columns, records the parsed values. A column with no non-missing cells is
// categorical by convention; its statistics are undefined either way.
func inferKind(c *Column) {
	numeric := true
	dates := true
	present := 0

	for i, cell := range c.cells {
		if c.absent[i] {
			continue
		}
		present++
		if numeric && !fastIsNumber(cell) {
			numeric = false
		}
		if dates && !isDate(cell) {
			dates = false
		}
		if !numeric && !dates {
			break
		}
	}

	switch {
	case present == 0:
		c.Kind = KindCategorical
	case numeric:
		c.Kind = KindNumeric
		c.floats = make([]float64, len(c.cells))
		for i, cell := range c.cells {
			if c.absent[i] {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				// fastIsNumber accepted it, so this is overflow;
				// treat the cell as absent rather than poison stats.
				c.absent[i] = true
				continue
			}
			c.floats[i] = v
		}
	case dates:
		c.Kind = KindOther
	default:
		c.Kind = KindCategorical
	}
}

// fastIsNumber quickly checks if a string looks like an integer or float,
// avoiding strconv for the common reject path.
func fastIsNumber(str string) bool {
	if len(str) == 0 || len(str) > 25 {
		return false
	}

	hasDigit := false
	hasDot := false
	hasExp := false
	i := 0

	if str[0] == '-' || str[0] == '+' {
		if len(str) == 1 {
			return false
		}
		i = 1
	}

	for ; i < len(str); i++ {
		c := str[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.':
			if hasDot || hasExp {
				return false
			}
			hasDot = true
		case c == 'e' || c == 'E':
			if hasExp || !hasDigit || i == len(str)-1 {
				return false
			}
			hasExp = true
			// allow a sign right after the exponent
			if str[i+1] == '-' || str[i+1] == '+' {
				i++
				if i == len(str)-1 {
					return false
				}
			}
		default:
			return false
		}
	}
	return hasDigit
}

var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02-Jan-2006",
	time.RFC3339,
}

func isDate(value string) bool {
	for _, format := range dateFormats {
		if _, err := time.Parse(format, value); err == nil {
			return true
		}
	}
	return false
}
