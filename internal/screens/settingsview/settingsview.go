// Package settingsview lets the learner switch answer input mode and
// gloss language. Changes persist immediately.
package settingsview

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hana/internal/router"
	"github.com/yuchen/hana/internal/screen"
	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/ui/layout"
	"github.com/yuchen/hana/internal/ui/theme"
)

// Saver persists settings.
type Saver interface {
	Save(settings.Settings) error
}

// SettingsScreen edits the two user preferences in place.
type SettingsScreen struct {
	current *settings.Settings
	repo    Saver
	cursor  int
	saveErr error
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen. The screen mutates current so the
// rest of the app picks changes up without a restart.
func New(current *settings.Settings, repo Saver) *SettingsScreen {
	return &SettingsScreen{current: current, repo: repo}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter/Space", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < 1 {
			s.cursor++
		}
	case "enter", " ", "space", "left", "right", "h", "l":
		s.toggle()
	}
	return s, nil
}

func (s *SettingsScreen) toggle() {
	switch s.cursor {
	case 0:
		if s.current.InputMode == settings.InputHandwriting {
			s.current.InputMode = settings.InputTyping
		} else {
			s.current.InputMode = settings.InputHandwriting
		}
	case 1:
		if s.current.Language == settings.LanguageZH {
			s.current.Language = settings.LanguageEN
		} else {
			s.current.Language = settings.LanguageZH
		}
	}
	if s.repo != nil {
		s.saveErr = s.repo.Save(*s.current)
	}
}

func (s *SettingsScreen) View(width, height int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Answer input", inputModeLabel(s.current.InputMode)},
		{"Gloss language", languageLabel(s.current.Language)},
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, row := range rows {
		prefix := "    "
		style := theme.Unselected
		if i == s.cursor {
			prefix = "  ▸ "
			style = theme.Selected
		}
		line := prefix + row.label + "    " + theme.Gloss.Render(row.value)
		b.WriteString(style.Render(line))
		b.WriteString("\n\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  could not save: " + s.saveErr.Error()))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func inputModeLabel(m settings.InputMode) string {
	if m == settings.InputTyping {
		return "typing"
	}
	return "handwriting"
}

func languageLabel(l settings.Language) string {
	if l == settings.LanguageEN {
		return "English"
	}
	return "中文"
}
