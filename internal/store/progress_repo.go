package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yuchen/hana/internal/progress"
)

// ProgressRepo persists progress records and the streak ledger. It
// satisfies progress.Repo so a Tracker can write through it.
type ProgressRepo struct {
	db *sqlx.DB
}

var _ progress.Repo = (*ProgressRepo)(nil)

// LoadProgress returns every persisted progress record keyed by id.
// A missing table or empty database yields an empty map, never an error
// the caller must branch on.
func (r *ProgressRepo) LoadProgress() (map[string]progress.Progress, error) {
	var rows []progress.Progress
	if err := r.db.Select(&rows, "SELECT id, mastery, last_seen, next_review, interval FROM progress"); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	out := make(map[string]progress.Progress, len(rows))
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

// SaveProgress upserts one progress record.
func (r *ProgressRepo) SaveProgress(p progress.Progress) error {
	_, err := r.db.NamedExec(`
		INSERT INTO progress (id, mastery, last_seen, next_review, interval)
		VALUES (:id, :mastery, :last_seen, :next_review, :interval)
		ON CONFLICT(id) DO UPDATE SET
			mastery = excluded.mastery,
			last_seen = excluded.last_seen,
			next_review = excluded.next_review,
			interval = excluded.interval`, p)
	if err != nil {
		return fmt.Errorf("save progress %s: %w", p.ID, err)
	}
	return nil
}

// LoadStreak returns the streak ledger in date order.
func (r *ProgressRepo) LoadStreak() ([]progress.StreakEntry, error) {
	var rows []progress.StreakEntry
	if err := r.db.Select(&rows, "SELECT date, count FROM streak ORDER BY date"); err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	return rows, nil
}

// SaveStreakEntry upserts the count for one calendar date.
func (r *ProgressRepo) SaveStreakEntry(e progress.StreakEntry) error {
	_, err := r.db.NamedExec(`
		INSERT INTO streak (date, count) VALUES (:date, :count)
		ON CONFLICT(date) DO UPDATE SET count = excluded.count`, e)
	if err != nil {
		return fmt.Errorf("save streak %s: %w", e.Date, err)
	}
	return nil
}
