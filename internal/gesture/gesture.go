package gesture

import "math"

// Classification thresholds, in pad pixels (terminal cells scale the
// same way). A release within TapRadius of the press point is a tap;
// beyond it, a horizontal displacement past SwipeThreshold commits the
// swipe and anything else springs back.
const (
	TapRadius      = 8.0
	SwipeThreshold = 65.0
)

// State is the swipe machine's phase for one card.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateExiting
)

// Direction is the committed swipe direction.
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionRight marks the card known (positive outcome).
	DirectionRight
	// DirectionLeft marks the card unknown (negative outcome).
	DirectionLeft
)

// Result classifies a completed pointer release.
type Result int

const (
	// ResultNone: nothing happened (release without a press, or mid-drag).
	ResultNone Result = iota
	// ResultTap toggles the card flip.
	ResultTap
	// ResultSwipe commits an outcome and starts the exit animation.
	ResultSwipe
	// ResultCancel springs the card back to center.
	ResultCancel
)

// Recognizer is an explicit finite-state machine over pointer events.
// Guards key on the distance and displacement thresholds above, which
// keeps each threshold independently testable.
type Recognizer struct {
	state  State
	startX float64
	startY float64
	curX   float64
	curY   float64
	dir    Direction
}

// State returns the machine's current phase.
func (r *Recognizer) State() State {
	return r.state
}

// Offset returns the horizontal drag displacement for card rendering.
// Zero unless dragging or exiting.
func (r *Recognizer) Offset() float64 {
	if r.state == StateIdle {
		return 0
	}
	return r.curX - r.startX
}

// Direction returns the committed exit direction, DirectionNone before
// a decisive swipe.
func (r *Recognizer) Direction() Direction {
	return r.dir
}

// Down starts a drag. Ignored while a card is exiting.
func (r *Recognizer) Down(x, y float64) {
	if r.state == StateExiting {
		return
	}
	r.state = StateDragging
	r.startX, r.startY = x, y
	r.curX, r.curY = x, y
}

// Move updates the drag position. Ignored outside a drag.
func (r *Recognizer) Move(x, y float64) {
	if r.state != StateDragging {
		return
	}
	r.curX, r.curY = x, y
}

// Up classifies the release. On ResultSwipe the machine enters
// StateExiting and holds the direction until Reset.
func (r *Recognizer) Up(x, y float64) Result {
	if r.state != StateDragging {
		return ResultNone
	}
	r.curX, r.curY = x, y

	dx := x - r.startX
	dy := y - r.startY
	dist := math.Hypot(dx, dy)

	switch {
	case dist < TapRadius:
		r.state = StateIdle
		return ResultTap
	case math.Abs(dx) > SwipeThreshold:
		r.state = StateExiting
		if dx > 0 {
			r.dir = DirectionRight
		} else {
			r.dir = DirectionLeft
		}
		return ResultSwipe
	default:
		r.state = StateIdle
		return ResultCancel
	}
}

// Reset returns the machine to idle for the next card.
func (r *Recognizer) Reset() {
	*r = Recognizer{}
}
