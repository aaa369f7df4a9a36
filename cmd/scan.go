package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/peekknuf/edascan/internal/connectors"
	"github.com/peekknuf/edascan/internal/eda"
	"github.com/peekknuf/edascan/internal/table"
)

var (
	scanDir       string
	scanRecursive bool
	scanWorkers   int
	scanMinSize   int64
	scanMaxSize   int64
	scanVerbose   bool
)

type scanResult struct {
	Path     string
	Size     int64
	Rows     int
	Cols     int
	Flags    eda.QualityFlags
	Duration time.Duration
	Err      error
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory and score every data file",
	Long: `Scan a directory for CSV and XLSX files and compute a quality
score with warning flags for each one, worst first`,
	Run: func(cmd *cobra.Command, args []string) {
		if scanDir == "" {
			log.Printf("You must specify a directory with --dir")
			return
		}

		options := connectors.DiscoveryOptions{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		}
		files, err := connectors.DiscoverFiles(scanDir, []string{"csv", "xlsx"}, options)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		if len(files) == 0 {
			fmt.Printf("No data files found in %s\n", scanDir)
			return
		}
		fmt.Printf("Found %d data files\n", len(files))

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
			progressbar.OptionSetWidth(20),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)

		results := scanFiles(files, scanWorkers, bar)
		bar.Finish()

		printScanResults(results)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0,
		"Number of parallel workers (default: CPU cores)")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"Display per-file warning flags")

	scanCmd.MarkFlagRequired("dir")
}

func scanFiles(files []connectors.FileMeta, workers int, bar *progressbar.ProgressBar) []scanResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	semaphore := make(chan struct{}, workers)
	resultsChan := make(chan scanResult, len(files))

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(f connectors.FileMeta) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			resultsChan <- scanFile(f)
			bar.Add(1)
		}(file)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []scanResult
	for r := range resultsChan {
		results = append(results, r)
	}
	return results
}

func scanFile(f connectors.FileMeta) scanResult {
	start := time.Now()
	result := scanResult{Path: f.Path, Size: f.Size}

	frame, err := table.Read(f.Path)
	if err != nil {
		result.Err = err
		return result
	}

	report, err := eda.Profile(context.Background(), frame, eda.DefaultOptions())
	if err != nil {
		result.Err = err
		return result
	}

	result.Rows = report.Summary.NRows
	result.Cols = report.Summary.NCols
	result.Flags = report.Flags
	result.Duration = time.Since(start)
	return result
}

func printScanResults(results []scanResult) {
	// Worst quality first so problems surface at the top
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err != nil) != (results[j].Err != nil) {
			return results[i].Err != nil
		}
		return results[i].Flags.QualityScore < results[j].Flags.QualityScore
	})

	fmt.Printf("\n%-40s %10s %10s %8s %8s %8s\n",
		"File", "Size", "Rows", "Cols", "Miss%", "Score")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range results {
		name := filepath.Base(r.Path)
		if len(name) > 37 {
			name = name[:34] + "..."
		}

		if r.Err != nil {
			fmt.Printf("%-40s %10s %s\n", name, humanize.Bytes(uint64(r.Size)),
				fmt.Sprintf("ERROR: %v", r.Err))
			continue
		}

		fmt.Printf("%-40s %10s %10d %8d %7.1f%% %8.2f\n",
			name, humanize.Bytes(uint64(r.Size)), r.Rows, r.Cols,
			r.Flags.MaxMissingShare*100, r.Flags.QualityScore)

		if scanVerbose {
			for _, w := range flagWarnings(r.Flags) {
				fmt.Printf("    ⚠️  %s\n", w)
			}
		}
	}
}
