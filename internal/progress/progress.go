package progress

// Mastery bounds. Mastery moves one step per recorded outcome and is
// clamped to [MinMastery, MaxMastery].
const (
	MinMastery = 0
	MaxMastery = 5
)

// Bucket thresholds derived from the scheduling model.
const (
	ProficientThreshold = 3
	MasteredThreshold   = 5
)

// Progress is the per-word scheduling state. One record exists for
// every word that has ever been practiced; records are never deleted.
// All fields are owned by the Tracker; everything else reads only.
type Progress struct {
	ID         string  `json:"id" db:"id"`
	Mastery    int     `json:"mastery" db:"mastery"`
	LastSeen   int64   `json:"lastSeen" db:"last_seen"`     // unix ms
	NextReview int64   `json:"nextReview" db:"next_review"` // unix ms
	Interval   float64 `json:"interval" db:"interval"`      // days
}

// Bucket is a coarse mastery grouping for display.
type Bucket string

const (
	BucketUnseen     Bucket = "unseen"
	BucketLearning   Bucket = "learning"
	BucketProficient Bucket = "proficient"
	BucketMastered   Bucket = "mastered"
)

// BucketFor maps a mastery value to its bucket. A word with no
// progress record belongs to BucketUnseen; callers handle that case.
func BucketFor(mastery int) Bucket {
	switch {
	case mastery >= MasteredThreshold:
		return BucketMastered
	case mastery >= ProficientThreshold:
		return BucketProficient
	case mastery > 0:
		return BucketLearning
	default:
		return BucketUnseen
	}
}
