package vocab

import (
	"sort"
	"strings"
)

// Catalog is the merged working set of master and learner-added words.
// The merge order is stable: master list first, then custom additions.
type Catalog struct {
	words []Word
	byID  map[string]Word
}

// NewCatalog merges the master list and custom additions into one
// working set. An empty master list falls back to the built-in seed.
func NewCatalog(master, custom []Word) *Catalog {
	if len(master) == 0 {
		master = Seed
	}
	words := make([]Word, 0, len(master)+len(custom))
	words = append(words, master...)
	words = append(words, custom...)

	byID := make(map[string]Word, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}
	return &Catalog{words: words, byID: byID}
}

// Words returns the merged word list in merge order.
func (c *Catalog) Words() []Word {
	return c.words
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Lookup returns the word with the given id.
func (c *Catalog) Lookup(id string) (Word, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// SortKey selects the ordering for Filter results.
type SortKey string

const (
	SortByFrequency SortKey = "frequency"
	SortByMastery   SortKey = "mastery"
)

// FilterOpts narrows and orders the catalog for browsing.
type FilterOpts struct {
	Query      string         // matches surface form or either gloss
	POS        POS            // zero value matches all
	Level      Level          // zero value matches all
	SortKey    SortKey        // defaults to frequency
	Descending bool
	MasteryOf  func(id string) int // required for SortByMastery
}

// Filter returns the words matching opts, sorted. The catalog itself
// is never reordered.
func (c *Catalog) Filter(opts FilterOpts) []Word {
	q := strings.ToLower(opts.Query)
	var out []Word
	for _, w := range c.words {
		if q != "" &&
			!strings.Contains(w.Korean, q) &&
			!strings.Contains(strings.ToLower(w.Meaning), q) &&
			!strings.Contains(strings.ToLower(w.MeaningEn), q) {
			continue
		}
		if opts.POS != "" && w.POS != opts.POS {
			continue
		}
		if opts.Level != "" && w.Level != opts.Level {
			continue
		}
		out = append(out, w)
	}

	less := func(i, j int) bool { return out[i].Frequency < out[j].Frequency }
	if opts.SortKey == SortByMastery && opts.MasteryOf != nil {
		less = func(i, j int) bool {
			return opts.MasteryOf(out[i].ID) < opts.MasteryOf(out[j].ID)
		}
	}
	if opts.Descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}
