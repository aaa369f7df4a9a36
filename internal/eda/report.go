package eda

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/peekknuf/edascan/internal/table"
)

// Options controls the category analyzer caps and the quality policy used
// by Profile.
type Options struct {
	MaxCategoryColumns int
	TopK               int
	Quality            QualityConfig
}

// DefaultOptions returns the standard profiling options.
func DefaultOptions() Options {
	return Options{
		MaxCategoryColumns: 10,
		TopK:               5,
		Quality:            DefaultQualityConfig(),
	}
}

// Report bundles the output of every analyzer for one frame.
type Report struct {
	Summary     *DatasetSummary
	Missing     *MissingTable
	Correlation *CorrMatrix
	Categories  map[string][]ValueCount
	Flags       QualityFlags
}

// Profile runs the four analyzers over the frame and feeds the quality
// engine with their output. The analyzers have no data dependency on each
// other and run concurrently against the read-only frame.
func Profile(ctx context.Context, f *table.Frame, opts Options) (*Report, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidInput)
	}

	report := &Report{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		report.Summary, err = Summarize(f)
		return err
	})
	g.Go(func() error {
		var err error
		report.Missing, err = MissingReport(f)
		return err
	})
	g.Go(func() error {
		var err error
		report.Correlation, err = Correlation(f)
		return err
	})
	g.Go(func() error {
		var err error
		report.Categories, err = TopCategories(f, opts.MaxCategoryColumns, opts.TopK)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	flags, err := opts.Quality.Compute(report.Summary, report.Missing)
	if err != nil {
		return nil, err
	}
	report.Flags = flags
	return report, nil
}
