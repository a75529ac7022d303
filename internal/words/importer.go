package words

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/deutschbuddy/pkg/models"
)

// ImportResult summarizes one word list import.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []string
}

// ImportFile loads words from an Excel (.xlsx) or CSV file into the bank.
// Expected columns: German, Persian, optional level tag.
func (r *Repository) ImportFile(path string) (*ImportResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return r.importExcel(path)
	case ".csv":
		return r.importCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func (r *Repository) importExcel(path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		r.importRow(row, i+1, result)
	}
	return result, nil
}

func (r *Repository) importCSV(path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++
		if line == 1 && looksLikeHeader(row) {
			continue
		}
		r.importRow(row, line, result)
	}
	return result, nil
}

func (r *Repository) importRow(row []string, line int, result *ImportResult) {
	if len(row) < 2 {
		result.Skipped++
		return
	}
	german := strings.TrimSpace(row[0])
	persian := strings.TrimSpace(row[1])
	if german == "" || persian == "" {
		result.Skipped++
		return
	}
	level := ""
	if len(row) > 2 {
		level = row[2]
	}

	entry := models.Word{German: german, Persian: persian, Level: NormalizeLevel(level)}
	if err := r.Upsert(&entry); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}
	result.Imported++
}

func looksLikeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "german" || first == "de" || first == "deutsch" || first == "word"
}
