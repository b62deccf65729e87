package quiz

import (
	"strings"
	"unicode"
)

// CheckDictation compares a typed answer to the expected surface form.
// Leading and trailing whitespace is forgiven; nothing else is.
func CheckDictation(input, answer string) bool {
	return strings.TrimSpace(input) == answer
}

// CheckChoice compares a selected option to the expected gloss.
func CheckChoice(selected, correct string) bool {
	return selected == correct
}

// CheckRecognized compares recognizer output to the expected surface
// form with all whitespace stripped from both sides. An empty
// recognition result therefore reads as a wrong answer, which is the
// engine's contract for recognizer failure.
func CheckRecognized(recognized, answer string) bool {
	return stripSpace(recognized) == stripSpace(answer) && stripSpace(answer) != ""
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
