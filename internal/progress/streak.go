package progress

import "time"

// DateFormat is the calendar-date key used by the streak ledger.
const DateFormat = "2006-01-02"

// StreakEntry counts practice outcomes recorded on one calendar date.
// The ledger holds at most one entry per date.
type StreakEntry struct {
	Date  string `json:"date" db:"date"`
	Count int    `json:"count" db:"count"`
}

// Streak is an append-only daily activity ledger. The only in-place
// mutation is the count increment for the current date.
type Streak struct {
	entries []StreakEntry
}

// NewStreak builds a ledger from persisted entries.
func NewStreak(entries []StreakEntry) *Streak {
	return &Streak{entries: entries}
}

// Increment bumps the count for the given day, appending a new entry
// at count 1 when the day has none. Returns the updated entry.
func (s *Streak) Increment(day time.Time) StreakEntry {
	date := day.Format(DateFormat)
	for i := range s.entries {
		if s.entries[i].Date == date {
			s.entries[i].Count++
			return s.entries[i]
		}
	}
	entry := StreakEntry{Date: date, Count: 1}
	s.entries = append(s.entries, entry)
	return entry
}

// Entries returns the full ledger in append order.
func (s *Streak) Entries() []StreakEntry {
	return s.entries
}

// CountOn returns the practice count for one calendar date, 0 if none.
func (s *Streak) CountOn(date string) int {
	for _, e := range s.entries {
		if e.Date == date {
			return e.Count
		}
	}
	return 0
}

// CurrentRun returns the number of consecutive days ending today (or
// yesterday, when today has no practice yet) with at least one outcome.
func (s *Streak) CurrentRun(now time.Time) int {
	day := now
	if s.CountOn(day.Format(DateFormat)) == 0 {
		day = day.AddDate(0, 0, -1)
	}
	run := 0
	for s.CountOn(day.Format(DateFormat)) > 0 {
		run++
		day = day.AddDate(0, 0, -1)
	}
	return run
}
