package cmd

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/peekknuf/edascan/internal/eda"
	"github.com/peekknuf/edascan/internal/table"
)

var (
	reportTopK       int
	reportMaxCatCols int
	reportOutput     string
	reportSheet      string
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Generate a full EDA report for a CSV or XLSX file",
	Long: `Generate a full exploratory-data-analysis report for a single file:
per-column statistics, missing-value report, correlation matrix,
top categories and data-quality flags.

Examples:
  edascan report data.csv
  edascan report data.xlsx --sheet Sheet2
  edascan report data.csv --top-k 10 --output report.txt`,

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatalf("Please specify a file to report on")
		}
		filePath := args[0]

		startTime := time.Now()

		var frame *table.Frame
		var err error
		if reportSheet != "" {
			frame, err = table.ReadXLSX(filePath, reportSheet)
		} else {
			frame, err = table.Read(filePath)
		}
		if err != nil {
			log.Fatalf("Failed to load %s: %v", filePath, err)
		}

		opts := eda.DefaultOptions()
		opts.TopK = reportTopK
		opts.MaxCategoryColumns = reportMaxCatCols

		report, err := eda.Profile(context.Background(), frame, opts)
		if err != nil {
			log.Fatalf("Failed to profile %s: %v", filePath, err)
		}

		out := renderReport(filePath, report, time.Since(startTime))
		if reportOutput != "" {
			if err := os.WriteFile(reportOutput, []byte(out), 0644); err != nil {
				log.Fatalf("Failed to write to output file %s: %v", reportOutput, err)
			}
			fmt.Printf("Report saved to %s\n", reportOutput)
		} else {
			fmt.Print(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVar(&reportTopK, "top-k", 5,
		"Rows per categorical frequency table")
	reportCmd.Flags().IntVar(&reportMaxCatCols, "max-cat-cols", 10,
		"Maximum number of categorical columns to analyze")
	reportCmd.Flags().StringVar(&reportOutput, "output", "",
		"Output file to save the report (default: stdout)")
	reportCmd.Flags().StringVar(&reportSheet, "sheet", "",
		"Sheet name for XLSX input (default: first sheet)")
}

func renderReport(path string, report *eda.Report, elapsed time.Duration) string {
	var output strings.Builder

	output.WriteString("=== DATASET SUMMARY ===\n")
	output.WriteString(fmt.Sprintf("File: %s\n", path))
	output.WriteString(fmt.Sprintf("Rows: %d | Columns: %d\n", report.Summary.NRows, report.Summary.NCols))
	output.WriteString(fmt.Sprintf("Quality score: %.2f\n", report.Flags.QualityScore))
	output.WriteString(fmt.Sprintf("Processing time: %v\n", elapsed.Round(time.Millisecond)))
	output.WriteString("\n")

	output.WriteString("=== COLUMNS ===\n")
	output.WriteString(fmt.Sprintf("%-24s %-12s %8s %10s %10s %10s %10s %10s %10s\n",
		"Name", "Kind", "Missing", "Miss%", "Unique", "Mean", "Std", "Min", "Max"))
	output.WriteString(strings.Repeat("-", 110) + "\n")
	for _, row := range eda.FlattenSummary(report.Summary, report.Missing) {
		output.WriteString(fmt.Sprintf("%-24s %-12s %8d %9.1f%% %10d %10s %10s %10s %10s\n",
			truncate(row.Name, 24), row.Kind, row.MissingCount, row.MissingShare*100,
			row.UniqueCount, fmtStat(row.Mean), fmtStat(row.Std), fmtStat(row.Min), fmtStat(row.Max)))
	}
	output.WriteString("\n")

	if !report.Correlation.Empty() {
		output.WriteString("=== CORRELATION (numeric columns) ===\n")
		output.WriteString(fmt.Sprintf("%-24s", ""))
		for _, name := range report.Correlation.Columns {
			output.WriteString(fmt.Sprintf(" %10s", truncate(name, 10)))
		}
		output.WriteString("\n")
		for i, name := range report.Correlation.Columns {
			output.WriteString(fmt.Sprintf("%-24s", truncate(name, 24)))
			for j := range report.Correlation.Columns {
				v := report.Correlation.Values[i][j]
				if math.IsNaN(v) {
					output.WriteString(fmt.Sprintf(" %10s", "-"))
				} else {
					output.WriteString(fmt.Sprintf(" %10.3f", v))
				}
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	if len(report.Categories) > 0 {
		output.WriteString("=== TOP CATEGORIES ===\n")
		// iterate in column order for stable output
		for _, col := range report.Summary.Columns {
			freq, ok := report.Categories[col.Name]
			if !ok {
				continue
			}
			output.WriteString(fmt.Sprintf("Column: %s\n", col.Name))
			for _, vc := range freq {
				output.WriteString(fmt.Sprintf("  %-32s %8d\n", truncate(vc.Value, 32), vc.Count))
			}
		}
		output.WriteString("\n")
	}

	output.WriteString("=== QUALITY FLAGS ===\n")
	output.WriteString(fmt.Sprintf("Max missing share: %.2f\n", report.Flags.MaxMissingShare))
	for _, w := range flagWarnings(report.Flags) {
		output.WriteString(fmt.Sprintf("  ⚠️  %s\n", w))
	}
	if len(flagWarnings(report.Flags)) == 0 {
		output.WriteString("  No issues detected\n")
	}

	return output.String()
}

func flagWarnings(flags eda.QualityFlags) []string {
	var warnings []string
	if flags.TooFewRows {
		warnings = append(warnings, "dataset has very few rows")
	}
	if flags.TooManyColumns {
		warnings = append(warnings, "dataset has a large number of columns")
	}
	if flags.TooManyMissing {
		warnings = append(warnings, "at least one column is mostly missing")
	}
	if flags.HasSuspiciousIDDuplicates {
		warnings = append(warnings, "identifier-like column contains duplicate values")
	}
	if flags.HasConstantColumns {
		warnings = append(warnings, "constant column detected")
	}
	if flags.HasBinaryCategoricalLeak {
		warnings = append(warnings, "binary categorical column is not numerically encoded")
	}
	return warnings
}

func fmtStat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
