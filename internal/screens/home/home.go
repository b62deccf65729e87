// Package home is the application's entry screen: practice mode menu
// plus a snapshot of overall mastery.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/quiz"
	"github.com/yuchen/hana/internal/recognize"
	"github.com/yuchen/hana/internal/router"
	"github.com/yuchen/hana/internal/screen"
	"github.com/yuchen/hana/internal/screens/practice"
	"github.com/yuchen/hana/internal/screens/settingsview"
	"github.com/yuchen/hana/internal/screens/streakview"
	"github.com/yuchen/hana/internal/screens/vocablist"
	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/speech"
	"github.com/yuchen/hana/internal/stats"
	"github.com/yuchen/hana/internal/ui/components"
	"github.com/yuchen/hana/internal/ui/theme"
	"github.com/yuchen/hana/internal/vocab"
)

// Deps bundles the services every screen reachable from home needs.
type Deps struct {
	Catalog      *vocab.Catalog
	Tracker      *progress.Tracker
	Settings     *settings.Settings
	SettingsRepo settingsview.Saver
	Speaker      speech.Speaker
	Recognizer   recognize.Recognizer
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Flashcards", Action: func() tea.Cmd {
			return pushPractice(deps, quiz.ModeFlashcard)
		}},
		{Label: "Endless Quiz", Action: func() tea.Cmd {
			return pushPractice(deps, quiz.ModeEndless)
		}},
		{Label: "Word List", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: vocablist.New(deps.Catalog, deps.Tracker, *deps.Settings),
				}
			}
		}},
		{Label: "Study Streak", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: streakview.New(deps.Tracker.Streak())}
			}
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: settingsview.New(deps.Settings, deps.SettingsRepo),
				}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func pushPractice(deps Deps, mode quiz.Mode) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: practice.NewWithRand(
				mode,
				deps.Catalog.Words(),
				*deps.Settings,
				deps.Tracker,
				deps.Speaker,
				deps.Recognizer,
			),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	counts := stats.Aggregate(h.deps.Catalog.Words(), h.deps.Tracker.All())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("하나 · Hana"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Korean vocabulary practice"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderMasteryBar(counts)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

// renderMasteryBar summarizes the mastery distribution across the
// whole catalog.
func renderMasteryBar(c stats.Counts) string {
	segment := func(style lipgloss.Style, label string, n int) string {
		return style.Render(fmt.Sprintf("%s %d", label, n))
	}
	line := strings.Join([]string{
		segment(theme.Correct, "mastered", c.Mastered),
		segment(lipgloss.NewStyle().Foreground(theme.Secondary), "proficient", c.Proficient),
		segment(lipgloss.NewStyle().Foreground(theme.Accent), "learning", c.Learning),
		segment(lipgloss.NewStyle().Foreground(theme.TextDim), "unseen", c.Unseen),
	}, "   ")

	return theme.Card.Render(line)
}
