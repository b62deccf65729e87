// Package stats derives mastery distribution and homonym groupings
// from the catalog and the progress map, for display elsewhere.
package stats

import (
	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/vocab"
)

// Counts is the mastery-bucket breakdown over the whole working set.
type Counts struct {
	Total      int
	Mastered   int
	Proficient int
	Learning   int
	Unseen     int
}

// HomonymGroup is a set of words sharing one surface form. Ordinal is
// a stable 1-based index for disambiguated display; it follows the
// catalog's merge order.
type HomonymGroup struct {
	Korean string
	Words  []vocab.Word
}

// Ordinal returns the 1-based position of id within the group, 0 when
// the id is not a member.
func (g HomonymGroup) Ordinal(id string) int {
	for i, w := range g.Words {
		if w.ID == id {
			return i + 1
		}
	}
	return 0
}

// Aggregate computes bucket counts over all progress entries.
// Words without a record (or at mastery 0) count as unseen.
func Aggregate(words []vocab.Word, records map[string]progress.Progress) Counts {
	c := Counts{Total: len(words)}
	seen := 0
	for _, p := range records {
		switch progress.BucketFor(p.Mastery) {
		case progress.BucketMastered:
			c.Mastered++
		case progress.BucketProficient:
			c.Proficient++
		case progress.BucketLearning:
			c.Learning++
		}
		if p.Mastery > 0 {
			seen++
		}
	}
	c.Unseen = c.Total - seen
	return c
}

// Homonyms indexes the working set by surface form and returns only
// the forms carried by more than one word.
func Homonyms(words []vocab.Word) map[string]HomonymGroup {
	byForm := make(map[string][]vocab.Word)
	for _, w := range words {
		byForm[w.Korean] = append(byForm[w.Korean], w)
	}

	groups := make(map[string]HomonymGroup)
	for form, members := range byForm {
		if len(members) > 1 {
			groups[form] = HomonymGroup{Korean: form, Words: members}
		}
	}
	return groups
}
