package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yuchen/hana/internal/vocab"
)

// VocabRepo persists the master catalog and learner-added words.
type VocabRepo struct {
	db *sqlx.DB
}

// wordRow is the flat database shape of a vocab.Word.
type wordRow struct {
	ID           string `db:"id"`
	Korean       string `db:"korean"`
	Meaning      string `db:"meaning"`
	MeaningEn    string `db:"meaning_en"`
	Romanization string `db:"romanization"`
	Example      string `db:"example"`
	Tags         string `db:"tags"`
	Frequency    int    `db:"frequency"`
	POS          string `db:"pos"`
	Level        string `db:"level"`
}

func toRow(w vocab.Word) wordRow {
	return wordRow{
		ID:           w.ID,
		Korean:       w.Korean,
		Meaning:      w.Meaning,
		MeaningEn:    w.MeaningEn,
		Romanization: w.Romanization,
		Example:      w.Example,
		Tags:         strings.Join(w.Tags, ","),
		Frequency:    w.Frequency,
		POS:          string(w.POS),
		Level:        string(w.Level),
	}
}

func fromRow(r wordRow) vocab.Word {
	var tags []string
	if r.Tags != "" {
		tags = strings.Split(r.Tags, ",")
	}
	return vocab.Word{
		ID:           r.ID,
		Korean:       r.Korean,
		Meaning:      r.Meaning,
		MeaningEn:    r.MeaningEn,
		Romanization: r.Romanization,
		Example:      r.Example,
		Tags:         tags,
		Frequency:    r.Frequency,
		POS:          vocab.POS(r.POS),
		Level:        vocab.Level(r.Level),
	}
}

// LoadMaster returns the persisted master catalog. Empty when nothing
// has been imported; callers fall back to the seed list.
func (r *VocabRepo) LoadMaster() ([]vocab.Word, error) {
	return r.load("master_words")
}

// LoadCustom returns the learner-added words in insertion order.
func (r *VocabRepo) LoadCustom() ([]vocab.Word, error) {
	return r.load("custom_words")
}

func (r *VocabRepo) load(table string) ([]vocab.Word, error) {
	var rows []wordRow
	query := fmt.Sprintf("SELECT id, korean, meaning, meaning_en, romanization, example, tags, frequency, pos, level FROM %s ORDER BY rowid", table)
	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	words := make([]vocab.Word, len(rows))
	for i, row := range rows {
		words[i] = fromRow(row)
	}
	return words, nil
}

// ReplaceMaster swaps the whole master catalog in one transaction.
func (r *VocabRepo) ReplaceMaster(words []vocab.Word) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin replace master: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM master_words"); err != nil {
		return fmt.Errorf("clear master words: %w", err)
	}
	for _, w := range words {
		if _, err := tx.NamedExec(`
			INSERT INTO master_words (id, korean, meaning, meaning_en, romanization, example, tags, frequency, pos, level)
			VALUES (:id, :korean, :meaning, :meaning_en, :romanization, :example, :tags, :frequency, :pos, :level)`,
			toRow(w)); err != nil {
			return fmt.Errorf("insert master word %s: %w", w.ID, err)
		}
	}
	return tx.Commit()
}

// AddCustom appends one learner-added word.
func (r *VocabRepo) AddCustom(w vocab.Word) error {
	row := toRow(w)
	arg := struct {
		wordRow
		AddedAt int64 `db:"added_at"`
	}{row, time.Now().UnixMilli()}

	_, err := r.db.NamedExec(`
		INSERT INTO custom_words (id, korean, meaning, meaning_en, romanization, example, tags, frequency, pos, level, added_at)
		VALUES (:id, :korean, :meaning, :meaning_en, :romanization, :example, :tags, :frequency, :pos, :level, :added_at)`,
		arg)
	if err != nil {
		return fmt.Errorf("add custom word %s: %w", w.ID, err)
	}
	return nil
}
