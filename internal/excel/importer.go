// Package excel reads vocabulary word lists from spreadsheet files.
// Both .xlsx workbooks and plain CSV exports share one column layout:
//
//	A Korean, B Chinese gloss, C English gloss, D romanization,
//	E example sentence, F part of speech, G level, H frequency rank,
//	I tags (comma separated)
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yuchen/hana/internal/vocab"
)

// Unranked is the frequency assigned to rows with a missing or
// unparseable rank. It sorts after every real NIKL rank.
const Unranked = 99999

// Config controls where rows are read from.
type Config struct {
	Path     string
	Sheet    string // xlsx only
	StartRow int    // 1-based; rows above it are skipped
}

// DefaultConfig reads Sheet1 and skips a single header row.
func DefaultConfig(path string) Config {
	return Config{
		Path:     path,
		Sheet:    "Sheet1",
		StartRow: 2,
	}
}

// Result summarizes one import run.
type Result struct {
	Processed int
	Imported  int
	Skipped   int
	Errors    []string
}

// ReadWords parses the file named by cfg and returns the valid words.
// Invalid rows are skipped and reported in the result, not fatal.
func ReadWords(cfg Config) ([]vocab.Word, *Result, error) {
	ext := strings.ToLower(filepath.Ext(cfg.Path))
	if ext == ".csv" {
		return readCSV(cfg)
	}
	return readWorkbook(cfg)
}

func readWorkbook(cfg Config) ([]vocab.Word, *Result, error) {
	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", cfg.Sheet, err)
	}

	return collectRows(rows, cfg.StartRow)
}

func readCSV(cfg Config) ([]vocab.Word, *Result, error) {
	file, err := os.Open(cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}

	return collectRows(rows, cfg.StartRow)
}

func collectRows(rows [][]string, startRow int) ([]vocab.Word, *Result, error) {
	result := &Result{}
	var words []vocab.Word

	for i, row := range rows {
		if i < startRow-1 {
			continue
		}
		if blankRow(row) {
			continue
		}
		result.Processed++

		w, err := parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		words = append(words, w)
		result.Imported++
	}

	return words, result, nil
}

func parseRow(row []string) (vocab.Word, error) {
	w := vocab.Word{
		ID:           "w_" + uuid.NewString()[:8],
		Korean:       cell(row, 0),
		Meaning:      cell(row, 1),
		MeaningEn:    cell(row, 2),
		Romanization: cell(row, 3),
		Example:      cell(row, 4),
		Frequency:    Unranked,
	}

	if w.Korean == "" {
		return vocab.Word{}, fmt.Errorf("missing korean")
	}
	if w.Meaning == "" && w.MeaningEn == "" {
		return vocab.Word{}, fmt.Errorf("missing gloss")
	}

	pos := vocab.POS(cell(row, 5))
	if !pos.Valid() {
		return vocab.Word{}, fmt.Errorf("unknown part of speech %q", cell(row, 5))
	}
	w.POS = pos

	level := vocab.Level(strings.ToUpper(cell(row, 6)))
	if !level.Valid() {
		return vocab.Word{}, fmt.Errorf("unknown level %q", cell(row, 6))
	}
	w.Level = level

	if raw := cell(row, 7); raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil || rank < 1 {
			return vocab.Word{}, fmt.Errorf("bad frequency rank %q", raw)
		}
		w.Frequency = rank
	}

	if raw := cell(row, 8); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				w.Tags = append(w.Tags, tag)
			}
		}
	}

	return w, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
