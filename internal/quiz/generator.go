package quiz

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/vocab"
)

// Pool sizes per mode. A smaller vocabulary uses every word it has.
const (
	FlashcardPoolSize = 20
	EndlessPoolSize   = 15
)

// OptionCount is the number of choices on an audio-choice question.
const OptionCount = 4

// Generator samples the vocabulary and materializes question sequences.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with its own random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// StartSession samples a bounded pool from words and builds the typed
// question sequence for the given mode.
func (g *Generator) StartSession(mode Mode, words []vocab.Word, st settings.Settings) *Session {
	size := EndlessPoolSize
	if mode == ModeFlashcard {
		size = FlashcardPoolSize
	}
	pool := g.sample(words, size)

	s := &Session{Mode: mode, Questions: make([]Question, 0, len(pool))}
	for i := range pool {
		item := pool[i]
		if mode == ModeFlashcard {
			s.Questions = append(s.Questions, g.flashcardQuestion(item, st))
		} else {
			s.Questions = append(s.Questions, g.endlessQuestion(item, words, st))
		}
	}
	return s
}

// sample draws min(n, len(words)) items uniformly without replacement.
func (g *Generator) sample(words []vocab.Word, n int) []vocab.Word {
	shuffled := make([]vocab.Word, len(words))
	copy(shuffled, words)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (g *Generator) flashcardQuestion(item vocab.Word, st settings.Settings) Question {
	meaning := item.DisplayMeaning(string(st.Language))
	reversed := g.rng.Intn(2) == 1

	prompt, answer := item.Korean, meaning
	if reversed {
		prompt, answer = meaning, item.Korean
	}

	target := item
	return Question{
		ID:       questionID("fc", item.ID),
		Kind:     KindFlashcard,
		Prompt:   prompt,
		Answer:   answer,
		Target:   &target,
		Reversed: reversed,
	}
}

func (g *Generator) endlessQuestion(item vocab.Word, all []vocab.Word, st settings.Settings) Question {
	meaning := item.DisplayMeaning(string(st.Language))

	kind := KindAudioChoice
	if g.rng.Intn(2) == 1 {
		kind = KindDictation
		if st.InputMode == settings.InputHandwriting {
			kind = KindHandwriting
		}
	}

	target := item
	q := Question{
		ID:     questionID("q", item.ID),
		Kind:   kind,
		Answer: item.Korean,
		Target: &target,
	}

	if kind == KindAudioChoice {
		// The prompt stays empty; the spoken surface form is the cue.
		q.Options = g.buildOptions(item, all, st)
	} else {
		q.Prompt = meaning
	}
	return q
}

// buildOptions assembles the correct gloss plus three distractors drawn
// from other words. Uniqueness against incidental gloss collisions is
// best-effort only.
func (g *Generator) buildOptions(target vocab.Word, all []vocab.Word, st settings.Settings) []string {
	others := make([]vocab.Word, 0, len(all))
	for _, w := range all {
		if w.ID != target.ID {
			others = append(others, w)
		}
	}
	distractors := g.sample(others, OptionCount-1)

	options := make([]string, 0, OptionCount)
	for _, d := range distractors {
		options = append(options, d.DisplayMeaning(string(st.Language)))
	}
	options = append(options, target.DisplayMeaning(string(st.Language)))

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// questionID builds an id unique within the session; question ids key
// per-card UI state, so collisions across repeats must be impossible.
func questionID(prefix, itemID string) string {
	return fmt.Sprintf("%s_%s_%s", prefix, itemID, uuid.NewString()[:8])
}
