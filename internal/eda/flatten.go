package eda

// SummaryRow is the flat, printable form of one column's summary, joined
// with its missing share. Rows come out in original column order.
type SummaryRow struct {
	Name         string
	Kind         string
	MissingCount int
	MissingShare float64
	UniqueCount  int
	Mean         *float64
	Std          *float64
	Min          *float64
	Max          *float64
}

// FlattenSummary converts a DatasetSummary into printable rows, one per
// column. Columns absent from the missing table get a zero share; the
// strict pairing check belongs to the quality engine, not the printer.
func FlattenSummary(summary *DatasetSummary, missing *MissingTable) []SummaryRow {
	if summary == nil {
		return nil
	}

	rows := make([]SummaryRow, 0, len(summary.Columns))
	for i := range summary.Columns {
		col := &summary.Columns[i]
		row := SummaryRow{
			Name:         col.Name,
			Kind:         col.Kind.String(),
			MissingCount: col.MissingCount,
			UniqueCount:  col.UniqueCount,
			Mean:         col.Mean,
			Std:          col.Std,
			Min:          col.Min,
			Max:          col.Max,
		}
		if missing != nil {
			if stat, ok := missing.Stat(col.Name); ok {
				row.MissingShare = stat.MissingShare
			}
		}
		rows = append(rows, row)
	}
	return rows
}
