package progress

import "time"

const dayMillis = 24 * 60 * 60 * 1000

// Interval growth factors. Success doubles the review interval, a
// neutral outcome nudges it, failure resets to the shortest cycle.
const (
	successFactor = 2.0
	neutralFactor = 1.2
	resetInterval = 1.0
)

// Repo persists tracker mutations. Implementations must tolerate
// repeated saves of the same record. A nil Repo keeps state in memory.
type Repo interface {
	SaveProgress(p Progress) error
	SaveStreakEntry(e StreakEntry) error
}

// Tracker owns the process-wide progress map and streak ledger. All
// mutation goes through RecordOutcome; every other component reads.
type Tracker struct {
	records map[string]*Progress
	streak  *Streak
	repo    Repo
	now     func() time.Time
}

// NewTracker builds a tracker over previously persisted state. Either
// argument may be empty for a fresh learner.
func NewTracker(records map[string]Progress, streak []StreakEntry, repo Repo) *Tracker {
	m := make(map[string]*Progress, len(records))
	for id, p := range records {
		cp := p
		m[id] = &cp
	}
	return &Tracker{
		records: m,
		streak:  NewStreak(streak),
		repo:    repo,
		now:     time.Now,
	}
}

// SetClock overrides the time source. Tests only.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// RecordOutcome advances a word's mastery by delta (+1, 0, or -1),
// recomputes its review interval, and bumps today's streak count. An
// unknown id is treated as first-time practice, never an error.
//
// delta == 0 is defined (mild interval growth, mastery unchanged) but
// has no caller yet; a future "skip" action would use it.
func (t *Tracker) RecordOutcome(id string, delta int) Progress {
	p := t.records[id]
	if p == nil {
		p = &Progress{ID: id, Mastery: 0, Interval: 1}
		t.records[id] = p
	}

	p.Mastery = clamp(p.Mastery+delta, MinMastery, MaxMastery)

	switch {
	case delta > 0:
		p.Interval *= successFactor
	case delta == 0:
		p.Interval *= neutralFactor
	default:
		p.Interval = resetInterval
	}

	now := t.now()
	nowMillis := now.UnixMilli()
	p.LastSeen = nowMillis
	p.NextReview = nowMillis + int64(p.Interval*dayMillis)

	entry := t.streak.Increment(now)

	if t.repo != nil {
		_ = t.repo.SaveProgress(*p)
		_ = t.repo.SaveStreakEntry(entry)
	}
	return *p
}

// Get returns the progress record for a word, or a zero record and
// false when the word has never been practiced.
func (t *Tracker) Get(id string) (Progress, bool) {
	p, ok := t.records[id]
	if !ok {
		return Progress{}, false
	}
	return *p, true
}

// Mastery returns a word's mastery, 0 when unseen.
func (t *Tracker) Mastery(id string) int {
	if p, ok := t.records[id]; ok {
		return p.Mastery
	}
	return 0
}

// All returns a copy of the progress map.
func (t *Tracker) All() map[string]Progress {
	out := make(map[string]Progress, len(t.records))
	for id, p := range t.records {
		out[id] = *p
	}
	return out
}

// Streak returns the daily activity ledger.
func (t *Tracker) Streak() *Streak {
	return t.streak
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
