package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV loads a CSV file into a Frame. The first row is the header. The
// delimiter is auto-detected from a sample of the file.
func ReadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	br := bufio.NewReaderSize(file, 1024*1024)
	sample, _ := br.Peek(64 * 1024)
	delim := DetectDelimiter(sample)

	reader := csv.NewReader(br)
	reader.Comma = delim
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	frame, err := New(headers, records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return frame, nil
}

// Read loads a tabular file, dispatching on extension. XLSX files read
// their first sheet; use ReadXLSX to pick another.
func Read(path string) (*Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path, "")
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

// DetectDelimiter attempts to detect the delimiter in CSV data by counting
// candidate characters over the first few lines.
func DetectDelimiter(sample []byte) rune {
	delimCounts := map[rune]int{
		',':  0,
		';':  0,
		'\t': 0,
		'|':  0,
	}

	lines := 0
	for i := 0; i < len(sample) && lines < 5; i++ {
		if sample[i] == '\n' {
			lines++
		}
		for delim := range delimCounts {
			if sample[i] == byte(delim) {
				delimCounts[delim]++
			}
		}
	}

	maxCount := 0
	bestDelim := ','
	for delim, count := range delimCounts {
		if count > maxCount {
			maxCount = count
			bestDelim = delim
		}
	}

	return bestDelim
}
