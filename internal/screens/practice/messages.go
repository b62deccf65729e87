package practice

// cardExitDoneMsg is sent when the swipe exit animation period ends
// and the next card should be dealt.
type cardExitDoneMsg struct{}

// feedbackDoneMsg is sent when the correct-answer flash period ends
// and the next question should be served.
type feedbackDoneMsg struct{}

// wrongFlashDoneMsg is sent when the wrong-answer hold period ends and
// the correction view should take over.
type wrongFlashDoneMsg struct{}

// recognizedMsg carries the result of handwriting recognition. Nonce
// ties the result to the submission that requested it; stale results
// from an abandoned question are dropped.
type recognizedMsg struct {
	Nonce int
	Text  string
	Err   error
}

// spokenMsg is sent when audio playback for the current question ends.
type spokenMsg struct {
	Err error
}
