package practice

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/yuchen/hana/internal/gesture"
	"github.com/yuchen/hana/internal/ink"
	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/quiz"
	"github.com/yuchen/hana/internal/recognize"
	"github.com/yuchen/hana/internal/router"
	"github.com/yuchen/hana/internal/screen"
	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/speech"
	"github.com/yuchen/hana/internal/ui/components"
	"github.com/yuchen/hana/internal/ui/layout"
	"github.com/yuchen/hana/internal/vocab"
)

// phase is the practice screen's top-level state. Transient per-card
// state (flip, gesture, drawn ink, typed text) is reset on every
// transition back to phaseCard or phaseQuestion.
type phase int

const (
	phaseCard        phase = iota // flashcard showing, awaiting flip or swipe
	phaseCardExit                 // verdict committed, exit animation running
	phaseQuestion                 // endless question awaiting an answer
	phaseFeedback                 // correct answer flash, auto-advances
	phaseWrongFlash               // wrong answer marked in place, then correction
	phaseCorrection               // wrong answer review, manual continue
	phaseComplete                 // session exhausted, summary showing
	phaseQuitConfirm              // esc pressed mid-session
)

const (
	cardExitDelay     = 200 * time.Millisecond
	correctFlashDelay = 700 * time.Millisecond
	wrongFlashDelay   = 450 * time.Millisecond

	// Terminal cells mapped to gesture pixel space. A cell is roughly
	// half as wide as it is tall on screen.
	cellPxX = 10.0
	cellPxY = 20.0

	// Handwriting canvas size in cells and the raster sent to the
	// recognizer.
	padWidth    = 40
	padHeight   = 14
	rasterWidth = 256
)

// Screen runs both practice flows: the swipe flashcard deck and the
// endless quiz.
type Screen struct {
	mode     quiz.Mode
	session  *quiz.Session
	settings settings.Settings

	tracker    *progress.Tracker
	speaker    speech.Speaker
	recognizer recognize.Recognizer

	phase       phase
	resumePhase phase // where to return if quit is declined

	// Flashcard transient state.
	gesture *gesture.Recognizer
	flipped bool
	verdict int
	known   int
	unknown int

	// Endless transient state.
	choice     components.MultiChoice
	input      components.TextInput
	pad        *components.InkPad
	analyzing  bool
	nonce      int
	recognized string
	lastAnswer string
	answered   int
	correct    int

	lastSize tea.WindowSizeMsg
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.MouseTarget = (*Screen)(nil)

// New creates a practice screen for the given mode. The session is
// generated immediately from the current word list and settings.
func New(
	mode quiz.Mode,
	words []vocab.Word,
	st settings.Settings,
	tracker *progress.Tracker,
	generator *quiz.Generator,
	speaker speech.Speaker,
	recognizer recognize.Recognizer,
) *Screen {
	s := &Screen{
		mode:       mode,
		settings:   st,
		tracker:    tracker,
		speaker:    speaker,
		recognizer: recognizer,
		gesture:    &gesture.Recognizer{},
	}
	s.session = generator.StartSession(mode, words, st)
	s.phase = phaseCard
	if mode == quiz.ModeEndless {
		s.phase = phaseQuestion
	}
	s.prepareQuestion()
	return s
}

// NewWithRand is a convenience constructor for a screen with its own
// time-seeded generator.
func NewWithRand(
	mode quiz.Mode,
	words []vocab.Word,
	st settings.Settings,
	tracker *progress.Tracker,
	speaker speech.Speaker,
	recognizer recognize.Recognizer,
) *Screen {
	gen := quiz.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	return New(mode, words, st, tracker, gen, speaker, recognizer)
}

func (s *Screen) Init() tea.Cmd {
	return s.presentCmd()
}

// presentCmd pronounces the cue for the question just dealt: the
// spoken surface form for audio choice, and the Korean front of a
// forward flashcard. A reversed card stays silent until flipped.
func (s *Screen) presentCmd() tea.Cmd {
	q := s.session.Current()
	if q == nil {
		return nil
	}
	switch q.Kind {
	case quiz.KindAudioChoice:
		return s.speakCmd(q.Answer)
	case quiz.KindFlashcard:
		if !q.Reversed {
			return s.speakCmd(q.Prompt)
		}
	}
	return nil
}

func (s *Screen) Title() string {
	if s.mode == quiz.ModeFlashcard {
		return "Flashcards"
	}
	return "Endless Quiz"
}

func (s *Screen) WantsMouse() bool { return true }

// HandlesEsc keeps esc routed here so the quit confirmation can run
// instead of an immediate pop.
func (s *Screen) HandlesEsc() bool { return true }

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseCorrection:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	case phaseCard:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "→", Description: "Know it"},
			{Key: "←", Description: "Again"},
			{Key: "Esc", Description: "Quit"},
		}
	}

	hints := []layout.KeyHint{}
	if q := s.session.Current(); q != nil {
		switch q.Kind {
		case quiz.KindAudioChoice:
			hints = append(hints,
				layout.KeyHint{Key: "1-4", Description: "Answer"},
				layout.KeyHint{Key: "R", Description: "Replay audio"},
			)
		case quiz.KindDictation:
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
		case quiz.KindHandwriting:
			hints = append(hints,
				layout.KeyHint{Key: "Enter", Description: "Submit"},
				layout.KeyHint{Key: "C", Description: "Clear"},
			)
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.lastSize = msg
		return s, nil

	case cardExitDoneMsg:
		return s.advanceCard()

	case feedbackDoneMsg:
		if s.phase != phaseFeedback {
			return s, nil
		}
		return s.advanceQuestion()

	case wrongFlashDoneMsg:
		if s.phase != phaseWrongFlash {
			return s, nil
		}
		s.phase = phaseCorrection
		return s, nil

	case recognizedMsg:
		return s.handleRecognized(msg)

	case spokenMsg:
		// Playback failures are non-fatal; the prompt text still shows.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)

	case tea.MouseClickMsg:
		return s.handleMouseDown(msg.X, msg.Y)

	case tea.MouseMotionMsg:
		return s.handleMouseMove(msg.X, msg.Y)

	case tea.MouseReleaseMsg:
		return s.handleMouseUp(msg.X, msg.Y)
	}

	// Forward everything else to the focused text input.
	if s.phase == phaseQuestion {
		if q := s.session.Current(); q != nil && q.Kind == quiz.KindDictation {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

// prepareQuestion resets all transient state for the question under
// the cursor.
func (s *Screen) prepareQuestion() {
	s.gesture.Reset()
	s.flipped = false
	s.verdict = 0
	s.analyzing = false
	s.recognized = ""
	s.lastAnswer = ""

	q := s.session.Current()
	if q == nil {
		return
	}

	switch q.Kind {
	case quiz.KindAudioChoice:
		s.choice = components.NewMultiChoice("", q.Options, s.correctOptionIndex(q))
	case quiz.KindDictation:
		s.input = components.NewTextInput("한국어로 입력하세요", 30)
	case quiz.KindHandwriting:
		s.pad = components.NewInkPad(padWidth, padHeight)
	}
}

// correctOptionIndex locates the target gloss among the shuffled
// options.
func (s *Screen) correctOptionIndex(q *quiz.Question) int {
	want := q.Target.DisplayMeaning(string(s.settings.Language))
	for i, opt := range q.Options {
		if opt == want {
			return i
		}
	}
	return 0
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, popCmd()
		case "n", "N", "esc":
			s.phase = s.resumePhase
		}
		return s, nil

	case phaseComplete:
		switch key {
		case "enter", "esc", "q":
			return s, popCmd()
		}
		return s, nil

	case phaseCorrection:
		return s.advanceQuestion()

	case phaseFeedback, phaseWrongFlash, phaseCardExit:
		// Animations ignore input.
		return s, nil
	}

	if key == "esc" {
		s.resumePhase = s.phase
		s.phase = phaseQuitConfirm
		return s, nil
	}

	if s.phase == phaseCard {
		return s.handleCardKey(key)
	}
	return s.handleQuestionKey(msg, key)
}

func (s *Screen) handleCardKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case " ", "space", "enter":
		return s, s.flipCard()
	case "right", "l":
		return s.commitVerdict(1)
	case "left", "h":
		return s.commitVerdict(-1)
	}
	return s, nil
}

// flipCard toggles the card face. Revealing the back of a reversed
// card pronounces its Korean answer; a forward card was already spoken
// on presentation.
func (s *Screen) flipCard() tea.Cmd {
	s.flipped = !s.flipped
	q := s.session.Current()
	if q == nil || !s.flipped || !q.Reversed {
		return nil
	}
	return s.speakCmd(q.Answer)
}

// commitVerdict records a flashcard self-assessment and starts the
// exit animation. Right (+1) marks the word known, left (-1) resets it.
func (s *Screen) commitVerdict(delta int) (screen.Screen, tea.Cmd) {
	q := s.session.Current()
	if q == nil {
		return s, nil
	}

	s.verdict = delta
	if delta > 0 {
		s.known++
	} else {
		s.unknown++
	}
	s.tracker.RecordOutcome(q.Target.ID, delta)

	s.phase = phaseCardExit
	return s, tea.Tick(cardExitDelay, func(time.Time) tea.Msg {
		return cardExitDoneMsg{}
	})
}

// advanceCard deals the next flashcard or finishes the deck.
func (s *Screen) advanceCard() (screen.Screen, tea.Cmd) {
	if !s.session.Advance() {
		s.phase = phaseComplete
		return s, nil
	}
	s.phase = phaseCard
	s.prepareQuestion()
	return s, s.presentCmd()
}

func (s *Screen) handleQuestionKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	q := s.session.Current()
	if q == nil {
		return s, nil
	}

	switch q.Kind {
	case quiz.KindAudioChoice:
		if key == "r" || key == "R" {
			return s, s.speakCmd(q.Answer)
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			chosen := ""
			if s.choice.ChosenIndex >= 0 && s.choice.ChosenIndex < len(q.Options) {
				chosen = q.Options[s.choice.ChosenIndex]
			}
			return s.classify(chosen, s.choice.IsCorrect())
		}
		return s, cmd

	case quiz.KindDictation:
		if key == "enter" {
			answer := s.input.Value()
			if answer == "" {
				return s, nil
			}
			ok := quiz.CheckDictation(answer, q.Answer)
			s.input.Submit(ok)
			return s.classify(answer, ok)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case quiz.KindHandwriting:
		switch key {
		case "enter":
			return s, s.submitInk()
		case "c", "C":
			if !s.analyzing {
				s.pad.Clear()
			}
			return s, nil
		}
	}

	return s, nil
}

// submitInk kicks off recognition of the drawn strokes. Submission is
// refused while a previous attempt is analyzing or the pad is empty.
func (s *Screen) submitInk() tea.Cmd {
	if s.analyzing || s.pad == nil || s.pad.Empty() {
		return nil
	}

	s.analyzing = true
	s.nonce++
	nonce := s.nonce
	strokes := scaleStrokes(s.pad.Strokes())
	rec := s.recognizer

	return func() tea.Msg {
		png, err := ink.EncodePNG(strokes, rasterWidth, rasterWidth)
		if err != nil {
			return recognizedMsg{Nonce: nonce, Err: err}
		}
		text, err := rec.Recognize(context.Background(), png)
		return recognizedMsg{Nonce: nonce, Text: text, Err: err}
	}
}

func (s *Screen) handleRecognized(msg recognizedMsg) (screen.Screen, tea.Cmd) {
	// Drop results that arrive after the question moved on.
	if msg.Nonce != s.nonce || !s.analyzing {
		return s, nil
	}
	s.analyzing = false

	q := s.session.Current()
	if q == nil {
		return s, nil
	}

	if msg.Err != nil {
		// Treat a failed recognition like an illegible answer.
		s.recognized = ""
		return s.classify("", false)
	}

	s.recognized = msg.Text
	return s.classify(msg.Text, quiz.CheckRecognized(msg.Text, q.Answer))
}

// classify records an endless answer and routes to the matching
// feedback phase: a brief flash for correct, a held wrong mark and
// then the correction view otherwise.
func (s *Screen) classify(answer string, ok bool) (screen.Screen, tea.Cmd) {
	q := s.session.Current()
	if q == nil {
		return s, nil
	}

	s.lastAnswer = answer
	s.answered++

	delta := -1
	if ok {
		delta = 1
		s.correct++
	}
	s.tracker.RecordOutcome(q.Target.ID, delta)

	if ok {
		s.phase = phaseFeedback
		return s, tea.Batch(
			s.speakCmd(q.Target.Korean),
			tea.Tick(correctFlashDelay, func(time.Time) tea.Msg {
				return feedbackDoneMsg{}
			}),
		)
	}

	s.phase = phaseWrongFlash
	return s, tea.Batch(
		s.speakCmd(q.Target.Korean),
		tea.Tick(wrongFlashDelay, func(time.Time) tea.Msg {
			return wrongFlashDoneMsg{}
		}),
	)
}

// advanceQuestion serves the next endless question or, past the last
// one, ends the session with the summary.
func (s *Screen) advanceQuestion() (screen.Screen, tea.Cmd) {
	if !s.session.Advance() {
		s.phase = phaseComplete
		return s, nil
	}
	s.phase = phaseQuestion
	s.prepareQuestion()
	return s, s.presentCmd()
}

// speakCmd pronounces text in the background. Synthesis problems
// surface as a spokenMsg and never block the flow.
func (s *Screen) speakCmd(text string) tea.Cmd {
	speaker := s.speaker
	if speaker == nil {
		return nil
	}
	return func() tea.Msg {
		return spokenMsg{Err: speaker.Speak(context.Background(), text)}
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// scaleStrokes maps pad cell coordinates onto the square recognition
// raster, compensating for the 1:2 cell aspect ratio.
func scaleStrokes(strokes []ink.Stroke) []ink.Stroke {
	sx := float64(rasterWidth) / float64(padWidth)
	sy := float64(rasterWidth) / float64(padHeight)

	out := make([]ink.Stroke, len(strokes))
	for i, stroke := range strokes {
		scaled := make(ink.Stroke, len(stroke))
		for j, pt := range stroke {
			scaled[j] = ink.Point{X: pt.X * sx, Y: pt.Y * sy, T: pt.T}
		}
		out[i] = scaled
	}
	return out
}
