// Package streakview renders the daily practice ledger as a calendar
// heatmap, most recent week on the right.
package streakview

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/router"
	"github.com/yuchen/hana/internal/screen"
	"github.com/yuchen/hana/internal/ui/layout"
	"github.com/yuchen/hana/internal/ui/theme"
)

// weeksShown is the heatmap window.
const weeksShown = 16

// Intensity buckets for daily practice counts.
var heatStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(theme.Border),                // 0
	lipgloss.NewStyle().Foreground(lipgloss.Color("#14532D")),   // 1-4
	lipgloss.NewStyle().Foreground(lipgloss.Color("#15803D")),   // 5-14
	lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),   // 15-29
	lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC")),   // 30+
}

func heatLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count < 5:
		return 1
	case count < 15:
		return 2
	case count < 30:
		return 3
	default:
		return 4
	}
}

// StreakScreen shows the practice heatmap and the current run.
type StreakScreen struct {
	streak *progress.Streak
	now    func() time.Time
}

var _ screen.Screen = (*StreakScreen)(nil)
var _ screen.KeyHintProvider = (*StreakScreen)(nil)

// New creates the streak screen.
func New(streak *progress.Streak) *StreakScreen {
	return &StreakScreen{streak: streak, now: time.Now}
}

func (s *StreakScreen) Init() tea.Cmd {
	return nil
}

func (s *StreakScreen) Title() string {
	return "Study Streak"
}

func (s *StreakScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StreakScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StreakScreen) View(width, height int) string {
	now := s.now()
	run := s.streak.CurrentRun(now)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("★ %d day streak", run)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderHeatmap(now)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderLegend()))
	return b.String()
}

// renderHeatmap lays out one row per weekday and one column per week,
// ending at the current week.
func (s *StreakScreen) renderHeatmap(now time.Time) string {
	// Sunday that starts the current week.
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))

	dayLabels := []string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}

	var rows []string
	for weekday := 0; weekday < 7; weekday++ {
		var row strings.Builder
		row.WriteString(theme.Hint.Render(dayLabels[weekday]) + " ")
		for week := weeksShown - 1; week >= 0; week-- {
			day := weekStart.AddDate(0, 0, weekday-7*week)
			if day.After(now) {
				row.WriteString("  ")
				continue
			}
			count := s.streak.CountOn(day.Format(progress.DateFormat))
			row.WriteString(heatStyles[heatLevel(count)].Render("■") + " ")
		}
		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

func renderLegend() string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("less "))
	for _, style := range heatStyles {
		b.WriteString(style.Render("■") + " ")
	}
	b.WriteString(theme.Hint.Render("more"))
	return b.String()
}
