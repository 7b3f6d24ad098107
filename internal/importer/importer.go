// Package importer fills the word bank from Excel or CSV files with
// word/meaning columns.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/vocabtrack/internal/vocabulary"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	WordColumn    string // Column with the word
	MeaningColumn string // Column with the meaning
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:    "A",
		MeaningColumn: "B",
		SheetName:     "Sheet1",
		StartRow:      2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// ImportWords imports word/meaning pairs into the store. Rows with an
// empty word or meaning are skipped. New words start at level 1; existing
// words only get their meaning replaced.
func ImportWords(store *vocabulary.Store, config ImportConfig, today time.Time) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(store, config, today)
	}
	return importFromExcel(store, config, today)
}

// importFromExcel imports words from an Excel file
func importFromExcel(store *vocabulary.Store, config ImportConfig, today time.Time) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	existing, err := knownWords(store)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		var word, meaning string
		if colIdx := columnToIndex(config.WordColumn); colIdx < len(row) {
			word = row[colIdx]
		}
		if colIdx := columnToIndex(config.MeaningColumn); colIdx < len(row) {
			meaning = row[colIdx]
		}

		result.TotalProcessed++
		if err := importPair(store, existing, word, meaning, today, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports words from a CSV file with word,meaning rows
func importFromCSV(store *vocabulary.Store, config ImportConfig, today time.Time) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	existing, err := knownWords(store)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		var word, meaning string
		if len(row) > 0 {
			word = row[0]
		}
		if len(row) > 1 {
			meaning = row[1]
		}

		result.TotalProcessed++
		if err := importPair(store, existing, word, meaning, today, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// importPair upserts a single word/meaning pair and updates the counters.
func importPair(store *vocabulary.Store, existing map[string]bool, word, meaning string, today time.Time, result *ImportResult) error {
	word = strings.ToLower(strings.TrimSpace(word))
	meaning = strings.TrimSpace(meaning)

	if word == "" || meaning == "" {
		result.Skipped++
		return nil
	}

	if _, err := store.Upsert(word, meaning, today); err != nil {
		return err
	}

	if existing[word] {
		result.Updated++
	} else {
		result.Created++
		existing[word] = true
	}
	return nil
}

// knownWords returns the case-folded keys already in the store.
func knownWords(store *vocabulary.Store) (map[string]bool, error) {
	entries, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing words: %v", err)
	}
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[strings.ToLower(e.Word)] = true
	}
	return known, nil
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
