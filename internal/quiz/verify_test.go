package quiz

import "testing"

func TestCheckDictation(t *testing.T) {
	tests := []struct {
		input  string
		answer string
		want   bool
	}{
		{"사랑", "사랑", true},
		{"사랑 ", "사랑", true},
		{"  사랑", "사랑", true},
		{"사랑해", "사랑", false},
		{"", "사랑", false},
		{"사 랑", "사랑", false}, // interior whitespace is not forgiven
	}
	for _, tt := range tests {
		if got := CheckDictation(tt.input, tt.answer); got != tt.want {
			t.Errorf("CheckDictation(%q, %q) = %v, want %v", tt.input, tt.answer, got, tt.want)
		}
	}
}

func TestCheckRecognized(t *testing.T) {
	tests := []struct {
		recognized string
		answer     string
		want       bool
	}{
		{"사랑", "사랑", true},
		{"사 랑", "사랑", true}, // recognizer whitespace is stripped
		{"사랑", "사 랑", true},
		{"사랑해", "사랑", false},
		{"", "사랑", false}, // recognizer failure folds into incorrect
		{"\t \n", "사랑", false},
	}
	for _, tt := range tests {
		if got := CheckRecognized(tt.recognized, tt.answer); got != tt.want {
			t.Errorf("CheckRecognized(%q, %q) = %v, want %v", tt.recognized, tt.answer, got, tt.want)
		}
	}
}

func TestCheckChoice(t *testing.T) {
	if !CheckChoice("爱", "爱") {
		t.Error("matching option should be correct")
	}
	if CheckChoice("水", "爱") {
		t.Error("non-matching option should be incorrect")
	}
}
