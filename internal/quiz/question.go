package quiz

import "github.com/yuchen/hana/internal/vocab"

// Mode selects the session flow.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeEndless   Mode = "endless"
)

// Kind is the question type served within a session.
type Kind string

const (
	// KindAudioChoice plays the word aloud and offers four glosses.
	KindAudioChoice Kind = "audio_mc"
	// KindDictation shows the gloss and expects the typed surface form.
	KindDictation Kind = "dictation"
	// KindHandwriting shows the gloss and expects the written surface form.
	KindHandwriting Kind = "handwriting"
	// KindFlashcard is the swipe-based self-assessment card.
	KindFlashcard Kind = "flashcard"
)

// Question is ephemeral, session-scoped state. It is created by the
// Generator, consumed by the practice screen, and never persisted.
type Question struct {
	ID      string
	Kind    Kind
	Prompt  string
	Answer  string
	Options []string // audio-choice only, always 4 entries
	Target  *vocab.Word
	// Reversed marks a flashcard whose prompt is the gloss and whose
	// answer is the Korean surface form.
	Reversed bool
}

// Session is an ordered question sequence with a cursor. It is mutated
// only by the practice screen and discarded on completion or close.
type Session struct {
	Mode      Mode
	Questions []Question
	Index     int
}

// Current returns the active question, or nil past the end.
func (s *Session) Current() *Question {
	if s == nil || s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Advance moves the cursor forward. It returns false when the session
// is complete (cursor moved past the last question).
func (s *Session) Advance() bool {
	s.Index++
	return s.Index < len(s.Questions)
}

// Remaining returns the number of questions at or after the cursor.
func (s *Session) Remaining() int {
	if s.Index >= len(s.Questions) {
		return 0
	}
	return len(s.Questions) - s.Index
}
