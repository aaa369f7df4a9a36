package eda

import (
	"fmt"
	"strings"

	"github.com/peekknuf/edascan/internal/table"
)

// QualityConfig holds the thresholds and penalty weights of the quality
// heuristics. Every threshold is a policy constant, not derived; tests can
// probe boundary values by overriding fields on DefaultQualityConfig.
type QualityConfig struct {
	// MinRows triggers TooFewRows when the dataset has fewer rows.
	MinRows int
	// MaxColumns triggers TooManyColumns when the dataset has more columns.
	MaxColumns int
	// MissingShareLimit triggers TooManyMissing when the worst column's
	// missing share exceeds it.
	MissingShareLimit float64
	// BinaryCardinality is the distinct-value count flagged as an
	// unencoded binary categorical.
	BinaryCardinality int
	// IDNameMarkers are case-insensitive substrings marking a column as
	// identifier-like for the duplicate-ID heuristic.
	IDNameMarkers []string

	// Fixed score penalties, one per triggered flag, plus a weight applied
	// to the worst missing share. The score starts at 1 and is clamped to
	// [0, 1], so more triggered flags can only lower it.
	RowPenalty         float64
	ColumnPenalty      float64
	MissingPenalty     float64
	DuplicateIDPenalty float64
	ConstantPenalty    float64
	BinaryLeakPenalty  float64
	MissingShareWeight float64
}

// DefaultQualityConfig returns the standard heuristic policy.
func DefaultQualityConfig() QualityConfig {
	return QualityConfig{
		MinRows:           100,
		MaxColumns:        100,
		MissingShareLimit: 0.5,
		BinaryCardinality: 2,
		IDNameMarkers:     []string{"id"},

		RowPenalty:         0.10,
		ColumnPenalty:      0.10,
		MissingPenalty:     0.20,
		DuplicateIDPenalty: 0.15,
		ConstantPenalty:    0.10,
		BinaryLeakPenalty:  0.10,
		MissingShareWeight: 0.20,
	}
}

// QualityFlags is the result of the heuristic pass: boolean red flags plus
// the worst missing share and a composite score in [0,1]. Computed fresh on
// each call and never mutated afterwards.
type QualityFlags struct {
	TooFewRows                bool
	TooManyColumns            bool
	TooManyMissing            bool
	HasSuspiciousIDDuplicates bool
	HasConstantColumns        bool
	HasBinaryCategoricalLeak  bool
	MaxMissingShare           float64
	QualityScore              float64
}

// ComputeQualityFlags runs the heuristics with the default policy.
func ComputeQualityFlags(summary *DatasetSummary, missing *MissingTable) (QualityFlags, error) {
	return DefaultQualityConfig().Compute(summary, missing)
}

// Compute derives QualityFlags from a summary and missing report. It is a
// pure function of its inputs and never re-scans the raw table. The two
// inputs must describe the same column set; a mismatch fails with
// ErrInconsistentInput rather than silently dropping columns. A dataset
// with no columns has nothing to judge and scores a neutral 1.0.
func (cfg QualityConfig) Compute(summary *DatasetSummary, missing *MissingTable) (QualityFlags, error) {
	if summary == nil || missing == nil {
		return QualityFlags{}, fmt.Errorf("%w: nil summary or missing table", ErrInvalidInput)
	}
	if len(missing.Rows) != len(summary.Columns) {
		return QualityFlags{}, fmt.Errorf("%w: summary has %d columns, missing table has %d",
			ErrInconsistentInput, len(summary.Columns), len(missing.Rows))
	}
	for i := range summary.Columns {
		if _, ok := missing.Stat(summary.Columns[i].Name); !ok {
			return QualityFlags{}, fmt.Errorf("%w: column %q absent from missing table",
				ErrInconsistentInput, summary.Columns[i].Name)
		}
	}

	flags := QualityFlags{QualityScore: 1.0}
	if summary.NCols == 0 {
		return flags, nil
	}

	flags.TooFewRows = summary.NRows < cfg.MinRows
	flags.TooManyColumns = summary.NCols > cfg.MaxColumns
	flags.MaxMissingShare = missing.MaxShare()
	flags.TooManyMissing = flags.MaxMissingShare > cfg.MissingShareLimit

	for i := range summary.Columns {
		col := &summary.Columns[i]
		nonMissing := summary.NRows - col.MissingCount
		if nonMissing <= 0 {
			// Fully-missing column: no data to judge.
			continue
		}
		if cfg.isIDLike(col.Name) && col.UniqueCount < nonMissing {
			flags.HasSuspiciousIDDuplicates = true
		}
		if col.UniqueCount <= 1 {
			flags.HasConstantColumns = true
		}
		if col.Kind == table.KindCategorical && col.UniqueCount == cfg.BinaryCardinality {
			flags.HasBinaryCategoricalLeak = true
		}
	}

	flags.QualityScore = cfg.score(flags)
	return flags, nil
}

func (cfg QualityConfig) isIDLike(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range cfg.IDNameMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func (cfg QualityConfig) score(flags QualityFlags) float64 {
	score := 1.0
	score -= cfg.MissingShareWeight * flags.MaxMissingShare
	if flags.TooFewRows {
		score -= cfg.RowPenalty
	}
	if flags.TooManyColumns {
		score -= cfg.ColumnPenalty
	}
	if flags.TooManyMissing {
		score -= cfg.MissingPenalty
	}
	if flags.HasSuspiciousIDDuplicates {
		score -= cfg.DuplicateIDPenalty
	}
	if flags.HasConstantColumns {
		score -= cfg.ConstantPenalty
	}
	if flags.HasBinaryCategoricalLeak {
		score -= cfg.BinaryLeakPenalty
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
