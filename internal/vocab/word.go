package vocab

// POS is a part-of-speech tag from the Korean dictionary convention.
// The set is closed; anything outside it is rejected at import time.
type POS string

const (
	POSInterjection  POS = "感"
	POSProper        POS = "고"
	POSDeterminer    POS = "관"
	POSPronoun       POS = "대"
	POSVerb          POS = "동"
	POSNoun          POS = "명"
	POSAuxiliary     POS = "보"
	POSAdverb        POS = "부"
	POSBoundNoun     POS = "불"
	POSNumeral       POS = "수"
	POSDependent     POS = "의"
	POSAdjective     POS = "형"
)

// AllPOS lists every valid part-of-speech tag.
var AllPOS = []POS{
	POSInterjection, POSProper, POSDeterminer, POSPronoun,
	POSVerb, POSNoun, POSAuxiliary, POSAdverb,
	POSBoundNoun, POSNumeral, POSDependent, POSAdjective,
}

// Valid reports whether p is one of the twelve known tags.
func (p POS) Valid() bool {
	for _, known := range AllPOS {
		if p == known {
			return true
		}
	}
	return false
}

// Level is a proficiency stage. Levels are ordered: A before B before C.
type Level string

const (
	LevelA Level = "A"
	LevelB Level = "B"
	LevelC Level = "C"
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	return l == LevelA || l == LevelB || l == LevelC
}

// Word is an immutable vocabulary catalog entry. The practice engine
// reads words but never mutates them.
type Word struct {
	ID           string   `json:"id" db:"id"`
	Korean       string   `json:"korean" db:"korean"`
	Meaning      string   `json:"meaning" db:"meaning"`       // Chinese gloss
	MeaningEn    string   `json:"meaningEn" db:"meaning_en"`  // English gloss
	Romanization string   `json:"romanization,omitempty" db:"romanization"`
	Example      string   `json:"example,omitempty" db:"example"`
	Tags         []string `json:"tags,omitempty" db:"-"`
	Frequency    int      `json:"frequency" db:"frequency"` // lower = more frequent
	POS          POS      `json:"pos" db:"pos"`
	Level        Level    `json:"level" db:"level"`
}

// DisplayMeaning returns the gloss for the given display language.
// Any value other than "en" selects the Chinese gloss.
func (w Word) DisplayMeaning(language string) string {
	if language == "en" {
		return w.MeaningEn
	}
	return w.Meaning
}
