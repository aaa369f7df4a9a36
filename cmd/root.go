package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edascan",
	Short: "Exploratory data analysis CLI",
	Long: `A fast structured diagnostic tool for tabular datasets:
per-column statistics, missing-value reports, correlation matrices,
top-category breakdowns and a composite data-quality score`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
