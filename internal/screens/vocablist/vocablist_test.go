package vocablist

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testCatalog() *vocab.Catalog {
	words := []vocab.Word{
		{ID: "bae-1", Korean: "배", Meaning: "肚子", MeaningEn: "belly", Frequency: 10, POS: vocab.POSNoun, Level: vocab.LevelA},
		{ID: "bae-2", Korean: "배", Meaning: "梨", MeaningEn: "pear", Frequency: 20, POS: vocab.POSNoun, Level: vocab.LevelA},
		{ID: "gada", Korean: "가다", Meaning: "去", MeaningEn: "to go", Frequency: 1, POS: vocab.POSVerb, Level: vocab.LevelA},
		{ID: "nopda", Korean: "높다", Meaning: "高", MeaningEn: "high", Frequency: 30, POS: vocab.POSAdjective, Level: vocab.LevelB},
	}
	return vocab.NewCatalog(words, nil)
}

func testList() *ListScreen {
	tracker := progress.NewTracker(nil, nil, nil)
	return New(testCatalog(), tracker, settings.Default())
}

func TestDefaultSortByFrequency(t *testing.T) {
	l := testList()
	words := l.filtered()
	if len(words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(words))
	}
	if words[0].ID != "gada" {
		t.Errorf("expected most frequent word first, got %q", words[0].ID)
	}
}

func TestPOSFilterCycles(t *testing.T) {
	l := testList()

	// Cycle until the verb tag is active.
	for i := range vocab.AllPOS {
		if vocab.AllPOS[i] == vocab.POSVerb {
			l.posIdx = i + 1
			break
		}
	}
	words := l.filtered()
	if len(words) != 1 || words[0].ID != "gada" {
		t.Errorf("expected only the verb, got %v", words)
	}

	// Full cycle returns to all.
	l.posIdx = 0
	if len(l.filtered()) != 4 {
		t.Error("expected all words with filter off")
	}
}

func TestLevelFilter(t *testing.T) {
	l := testList()
	l.levelIdx = 2 // level B
	words := l.filtered()
	if len(words) != 1 || words[0].ID != "nopda" {
		t.Errorf("expected only the level B word, got %v", words)
	}
}

func TestSearchNarrows(t *testing.T) {
	l := testList()
	l.search.Model.SetValue("배")
	words := l.filtered()
	if len(words) != 2 {
		t.Fatalf("expected 2 homonyms, got %d", len(words))
	}
}

func TestHomonymOrdinals(t *testing.T) {
	l := testList()
	w1, _ := l.catalog.Lookup("bae-1")
	w2, _ := l.catalog.Lookup("bae-2")
	w3, _ := l.catalog.Lookup("gada")

	if got := l.ordinal(w1); got != "¹" {
		t.Errorf("ordinal(bae-1) = %q, want ¹", got)
	}
	if got := l.ordinal(w2); got != "²" {
		t.Errorf("ordinal(bae-2) = %q, want ²", got)
	}
	if got := l.ordinal(w3); got != "" {
		t.Errorf("ordinal(gada) = %q, want empty", got)
	}
}

func TestViewShowsRows(t *testing.T) {
	l := testList()
	view := l.View(100, 24)
	if !strings.Contains(view, "가다") {
		t.Error("expected view to show catalog words")
	}
	if !strings.Contains(view, "4 words") {
		t.Error("expected view to show match count")
	}
}

func TestCursorNavigation(t *testing.T) {
	l := testList()

	scr, _ := l.Update(keyPress('j'))
	ls := scr.(*ListScreen)
	if ls.cursor != 1 {
		t.Errorf("cursor = %d, want 1", ls.cursor)
	}
	scr, _ = ls.Update(keyPress('k'))
	ls = scr.(*ListScreen)
	if ls.cursor != 0 {
		t.Errorf("cursor = %d, want 0", ls.cursor)
	}
}

func TestSortToggle(t *testing.T) {
	l := testList()
	scr, _ := l.Update(keyPress('s'))
	ls := scr.(*ListScreen)
	if ls.sortKey != vocab.SortByMastery {
		t.Errorf("sortKey = %q, want mastery", ls.sortKey)
	}
	scr, _ = ls.Update(keyPress('o'))
	ls = scr.(*ListScreen)
	if !ls.desc {
		t.Error("expected descending order after toggle")
	}
}
