package settings

// InputMode selects how endless-mode recall questions are answered.
type InputMode string

const (
	InputHandwriting InputMode = "handwriting"
	InputTyping      InputMode = "typing"
)

// Language selects the display language for glosses and labels.
type Language string

const (
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
)

// Settings holds the learner-facing preferences. Read by the question
// generator and the practice screen; persisted as a single row.
type Settings struct {
	InputMode InputMode `json:"inputMode" db:"input_mode"`
	Language  Language  `json:"language" db:"language"`
}

// Default returns the settings used when nothing has been persisted.
func Default() Settings {
	return Settings{
		InputMode: InputHandwriting,
		Language:  LanguageZH,
	}
}

// Normalize replaces unknown values with defaults so that corrupt
// persisted state degrades to a working configuration.
func (s Settings) Normalize() Settings {
	if s.InputMode != InputHandwriting && s.InputMode != InputTyping {
		s.InputMode = InputHandwriting
	}
	if s.Language != LanguageZH && s.Language != LanguageEN {
		s.Language = LanguageZH
	}
	return s
}
