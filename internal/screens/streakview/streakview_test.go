package streakview

import (
	"strings"
	"testing"
	"time"

	"github.com/yuchen/hana/internal/progress"
)

func TestHeatLevels(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{14, 2},
		{15, 3},
		{29, 3},
		{30, 4},
		{100, 4},
	}
	for _, tt := range tests {
		if got := heatLevel(tt.count); got != tt.want {
			t.Errorf("heatLevel(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestViewShowsCurrentRun(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	streak := progress.NewStreak([]progress.StreakEntry{
		{Date: "2026-08-29", Count: 3},
		{Date: "2026-08-30", Count: 7},
		{Date: "2026-08-31", Count: 1},
	})

	s := New(streak)
	s.now = func() time.Time { return now }

	view := s.View(100, 30)
	if !strings.Contains(view, "3 day streak") {
		t.Errorf("expected 3 day streak in view, got:\n%s", view)
	}
}

func TestViewEmptyLedger(t *testing.T) {
	s := New(progress.NewStreak(nil))
	view := s.View(100, 30)
	if !strings.Contains(view, "0 day streak") {
		t.Error("expected 0 day streak for empty ledger")
	}
}
