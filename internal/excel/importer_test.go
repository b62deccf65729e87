package excel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/yuchen/hana/internal/vocab"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Korean", "Meaning", "English", "Romanization", "Example", "POS", "Level", "Freq", "Tags"},
		{"사랑", "爱", "love", "sarang", "사랑해요", "명", "A", 120, "core, feelings"},
		{"가다", "去", "to go", "gada", "", "동", "a", "", ""},
	})

	words, result, err := ReadWords(DefaultConfig(path))
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if result.Processed != 2 || result.Imported != 2 || result.Skipped != 0 {
		t.Fatalf("result = %+v, want 2 processed, 2 imported", result)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}

	w := words[0]
	if w.Korean != "사랑" || w.Meaning != "爱" || w.MeaningEn != "love" {
		t.Errorf("unexpected word: %+v", w)
	}
	if w.POS != vocab.POSNoun || w.Level != vocab.LevelA {
		t.Errorf("POS/Level = %q/%q", w.POS, w.Level)
	}
	if w.Frequency != 120 {
		t.Errorf("Frequency = %d, want 120", w.Frequency)
	}
	if len(w.Tags) != 2 || w.Tags[0] != "core" || w.Tags[1] != "feelings" {
		t.Errorf("Tags = %v", w.Tags)
	}
	if !strings.HasPrefix(w.ID, "w_") {
		t.Errorf("ID = %q, want w_ prefix", w.ID)
	}

	// Lowercase level and missing rank still import.
	if words[1].Level != vocab.LevelA {
		t.Errorf("Level = %q, want A", words[1].Level)
	}
	if words[1].Frequency != Unranked {
		t.Errorf("Frequency = %d, want %d", words[1].Frequency, Unranked)
	}
}

func TestReadWorkbookSkipsBadRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Korean", "Meaning", "English", "Romanization", "Example", "POS", "Level", "Freq"},
		{"", "爱", "love", "", "", "명", "A", 1},
		{"물", "", "", "", "", "명", "A", 2},
		{"불", "火", "fire", "", "", "zzz", "A", 3},
		{"산", "山", "mountain", "", "", "명", "D", 4},
		{"강", "江", "river", "", "", "명", "B", "often"},
		{"물", "水", "water", "mul", "", "명", "A", 230},
	})

	words, result, err := ReadWords(DefaultConfig(path))
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 5 {
		t.Fatalf("result = %+v, want 1 imported, 5 skipped", result)
	}
	if len(result.Errors) != 5 {
		t.Fatalf("got %d errors: %v", len(result.Errors), result.Errors)
	}
	if len(words) != 1 || words[0].Korean != "물" {
		t.Fatalf("words = %+v", words)
	}
}

func TestReadCSV(t *testing.T) {
	csv := "Korean,Meaning,English,Romanization,Example,POS,Level,Freq,Tags\n" +
		"하나,一,one,hana,,수,A,95,\n" +
		"\n" +
		"어렵다,难,difficult,eoryeopda,,형,B,345,\n"
	path := filepath.Join(t.TempDir(), "vocab.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	words, result, err := ReadWords(DefaultConfig(path))
	if err != nil {
		t.Fatalf("ReadWords: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("result = %+v, want 2 imported", result)
	}
	if words[0].Korean != "하나" || words[1].Korean != "어렵다" {
		t.Fatalf("words = %+v", words)
	}
	if words[0].POS != vocab.POSNumeral {
		t.Errorf("POS = %q", words[0].POS)
	}
}

func TestReadWordsMissingFile(t *testing.T) {
	_, _, err := ReadWords(DefaultConfig(filepath.Join(t.TempDir(), "absent.xlsx")))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
