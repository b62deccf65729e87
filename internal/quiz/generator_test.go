package quiz

import (
	"math/rand"
	"testing"

	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/vocab"
)

func testWords(n int) []vocab.Word {
	words := make([]vocab.Word, n)
	for i := range words {
		words[i] = vocab.Word{
			ID:        string(rune('a' + i%26)) + string(rune('0'+i/26)),
			Korean:    "한" + string(rune('가'+i)),
			Meaning:   "义" + string(rune('一'+i)),
			MeaningEn: "gloss-" + string(rune('a'+i%26)),
			POS:       vocab.POSNoun,
			Level:     vocab.LevelA,
		}
	}
	return words
}

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(42)))
}

func TestStartSession_FlashcardPoolSize(t *testing.T) {
	g := newTestGenerator()

	s := g.StartSession(ModeFlashcard, testWords(50), settings.Default())
	if len(s.Questions) != FlashcardPoolSize {
		t.Errorf("flashcard session has %d questions, want %d", len(s.Questions), FlashcardPoolSize)
	}

	s = g.StartSession(ModeFlashcard, testWords(7), settings.Default())
	if len(s.Questions) != 7 {
		t.Errorf("small pool session has %d questions, want 7", len(s.Questions))
	}
}

func TestStartSession_EndlessPoolSize(t *testing.T) {
	g := newTestGenerator()

	s := g.StartSession(ModeEndless, testWords(50), settings.Default())
	if len(s.Questions) != EndlessPoolSize {
		t.Errorf("endless session has %d questions, want %d", len(s.Questions), EndlessPoolSize)
	}
}

func TestStartSession_NoDuplicateTargets(t *testing.T) {
	g := newTestGenerator()
	s := g.StartSession(ModeFlashcard, testWords(50), settings.Default())

	seen := make(map[string]bool)
	for _, q := range s.Questions {
		if seen[q.Target.ID] {
			t.Fatalf("target %s sampled twice", q.Target.ID)
		}
		seen[q.Target.ID] = true
	}
}

func TestStartSession_UniqueQuestionIDs(t *testing.T) {
	g := newTestGenerator()
	s := g.StartSession(ModeEndless, testWords(50), settings.Default())

	seen := make(map[string]bool)
	for _, q := range s.Questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestStartSession_FlashcardDirections(t *testing.T) {
	g := newTestGenerator()
	words := testWords(50)
	s := g.StartSession(ModeFlashcard, words, settings.Default())

	for _, q := range s.Questions {
		if q.Kind != KindFlashcard {
			t.Fatalf("flashcard session produced %s question", q.Kind)
		}
		if q.Reversed {
			if q.Prompt != q.Target.Meaning || q.Answer != q.Target.Korean {
				t.Errorf("reversed card: prompt=%q answer=%q target=%+v", q.Prompt, q.Answer, q.Target)
			}
		} else {
			if q.Prompt != q.Target.Korean || q.Answer != q.Target.Meaning {
				t.Errorf("forward card: prompt=%q answer=%q target=%+v", q.Prompt, q.Answer, q.Target)
			}
		}
	}
}

func TestStartSession_LanguageSelectsGloss(t *testing.T) {
	g := newTestGenerator()
	st := settings.Settings{InputMode: settings.InputTyping, Language: settings.LanguageEN}
	s := g.StartSession(ModeFlashcard, testWords(50), st)

	for _, q := range s.Questions {
		gloss := q.Answer
		if q.Reversed {
			gloss = q.Prompt
		}
		if gloss != q.Target.MeaningEn {
			t.Errorf("gloss %q, want English %q", gloss, q.Target.MeaningEn)
		}
	}
}

func TestStartSession_EndlessKindsFollowInputMode(t *testing.T) {
	g := newTestGenerator()
	words := testWords(50)

	s := g.StartSession(ModeEndless, words, settings.Settings{
		InputMode: settings.InputTyping, Language: settings.LanguageZH,
	})
	for _, q := range s.Questions {
		if q.Kind == KindHandwriting {
			t.Error("typing mode produced a handwriting question")
		}
		if q.Kind != KindAudioChoice && q.Kind != KindDictation {
			t.Errorf("unexpected kind %s", q.Kind)
		}
	}

	s = g.StartSession(ModeEndless, words, settings.Settings{
		InputMode: settings.InputHandwriting, Language: settings.LanguageZH,
	})
	for _, q := range s.Questions {
		if q.Kind == KindDictation {
			t.Error("handwriting mode produced a dictation question")
		}
	}
}

func TestStartSession_AudioChoiceOptions(t *testing.T) {
	g := newTestGenerator()
	words := testWords(50)
	st := settings.Default()

	var checked int
	for tries := 0; tries < 10 && checked == 0; tries++ {
		s := g.StartSession(ModeEndless, words, st)
		for _, q := range s.Questions {
			if q.Kind != KindAudioChoice {
				continue
			}
			checked++
			if len(q.Options) != OptionCount {
				t.Fatalf("options = %d, want %d", len(q.Options), OptionCount)
			}
			if q.Prompt != "" {
				t.Errorf("audio-choice prompt = %q, want empty", q.Prompt)
			}
			correct := 0
			for _, opt := range q.Options {
				if opt == q.Target.Meaning {
					correct++
				}
			}
			if correct != 1 {
				t.Errorf("correct gloss appears %d times, want 1", correct)
			}
		}
	}
	if checked == 0 {
		t.Fatal("no audio-choice questions generated in 10 sessions")
	}
}

func TestSession_Cursor(t *testing.T) {
	s := &Session{Questions: make([]Question, 2)}

	if s.Current() == nil {
		t.Fatal("Current() nil at start")
	}
	if s.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2", s.Remaining())
	}
	if !s.Advance() {
		t.Fatal("Advance() past first question should succeed")
	}
	if s.Advance() {
		t.Fatal("Advance() past last question should report completion")
	}
	if s.Current() != nil {
		t.Error("Current() after completion should be nil")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() after completion = %d, want 0", s.Remaining())
	}
}
