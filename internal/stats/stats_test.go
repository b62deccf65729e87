package stats

import (
	"testing"

	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/vocab"
)

func TestAggregate_Buckets(t *testing.T) {
	words := make([]vocab.Word, 6)
	for i := range words {
		words[i] = vocab.Word{ID: string(rune('a' + i))}
	}
	records := map[string]progress.Progress{
		"a": {ID: "a", Mastery: 5},
		"b": {ID: "b", Mastery: 4},
		"c": {ID: "c", Mastery: 3},
		"d": {ID: "d", Mastery: 1},
		"e": {ID: "e", Mastery: 0}, // practiced back down to zero = unseen
	}

	c := Aggregate(words, records)

	if c.Total != 6 {
		t.Errorf("Total = %d, want 6", c.Total)
	}
	if c.Mastered != 1 {
		t.Errorf("Mastered = %d, want 1", c.Mastered)
	}
	if c.Proficient != 2 {
		t.Errorf("Proficient = %d, want 2", c.Proficient)
	}
	if c.Learning != 1 {
		t.Errorf("Learning = %d, want 1", c.Learning)
	}
	if c.Unseen != 2 {
		t.Errorf("Unseen = %d, want 2 (no record + mastery 0)", c.Unseen)
	}
}

func TestAggregate_EmptyProgress(t *testing.T) {
	words := []vocab.Word{{ID: "a"}, {ID: "b"}}
	c := Aggregate(words, nil)
	if c.Unseen != 2 || c.Total != 2 {
		t.Errorf("Counts = %+v, want all unseen", c)
	}
}

func TestHomonyms(t *testing.T) {
	words := []vocab.Word{
		{ID: "w1", Korean: "배", Meaning: "肚子"},
		{ID: "w2", Korean: "사랑", Meaning: "爱"},
		{ID: "w3", Korean: "배", Meaning: "梨"},
		{ID: "w4", Korean: "배", Meaning: "船"},
	}

	groups := Homonyms(words)

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g, ok := groups["배"]
	if !ok || len(g.Words) != 3 {
		t.Fatalf("배 group = %+v", g)
	}

	// Ordinals are stable and 1-based in catalog order.
	if g.Ordinal("w1") != 1 || g.Ordinal("w3") != 2 || g.Ordinal("w4") != 3 {
		t.Errorf("ordinals = %d,%d,%d, want 1,2,3", g.Ordinal("w1"), g.Ordinal("w3"), g.Ordinal("w4"))
	}
	if g.Ordinal("w2") != 0 {
		t.Errorf("non-member ordinal = %d, want 0", g.Ordinal("w2"))
	}
}
