package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/yuchen/hana/internal/gesture"
	"github.com/yuchen/hana/internal/quiz"
	"github.com/yuchen/hana/internal/screen"
	"github.com/yuchen/hana/internal/ui/layout"
)

// padTopLines is the number of content rows above the handwriting pad
// border. The view renders the same number so hit testing lines up.
const padTopLines = 3

func (s *Screen) handleMouseDown(x, y int) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseCard:
		s.gesture.Down(float64(x)*cellPxX, float64(y)*cellPxY)
		return s, nil

	case phaseQuestion:
		if q := s.session.Current(); q != nil && q.Kind == quiz.KindHandwriting && !s.analyzing {
			px, py := s.padInnerOrigin()
			s.pad.PointerDown(x-px, y-py)
		}
		return s, nil
	}
	return s, nil
}

func (s *Screen) handleMouseMove(x, y int) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseCard:
		s.gesture.Move(float64(x)*cellPxX, float64(y)*cellPxY)
		return s, nil

	case phaseQuestion:
		if q := s.session.Current(); q != nil && q.Kind == quiz.KindHandwriting && !s.analyzing {
			px, py := s.padInnerOrigin()
			s.pad.PointerMove(x-px, y-py)
		}
		return s, nil
	}
	return s, nil
}

func (s *Screen) handleMouseUp(x, y int) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseCard:
		result := s.gesture.Up(float64(x)*cellPxX, float64(y)*cellPxY)
		switch result {
		case gesture.ResultTap:
			return s, s.flipCard()
		case gesture.ResultSwipe:
			if s.gesture.Direction() == gesture.DirectionRight {
				return s.commitVerdict(1)
			}
			return s.commitVerdict(-1)
		}
		return s, nil

	case phaseQuestion:
		if q := s.session.Current(); q != nil && q.Kind == quiz.KindHandwriting {
			s.pad.PointerUp()
		}
		return s, nil
	}
	return s, nil
}

// padInnerOrigin returns the absolute terminal cell of the pad's
// top-left drawable cell, inside its border.
func (s *Screen) padInnerOrigin() (int, int) {
	x := (s.lastSize.Width-(padWidth+2))/2 + 1
	y := layout.HeaderHeight + padTopLines + 1
	return x, y
}
