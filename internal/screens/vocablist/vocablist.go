// Package vocablist is the browsable word catalog: search, filters,
// sort, and per-word mastery at a glance.
package vocablist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hana/internal/progress"
	"github.com/yuchen/hana/internal/router"
	"github.com/yuchen/hana/internal/screen"
	"github.com/yuchen/hana/internal/settings"
	"github.com/yuchen/hana/internal/stats"
	"github.com/yuchen/hana/internal/ui/components"
	"github.com/yuchen/hana/internal/ui/layout"
	"github.com/yuchen/hana/internal/ui/theme"
	"github.com/yuchen/hana/internal/vocab"
)

// ordinalMarks distinguishes homonyms sharing a surface form.
var ordinalMarks = []string{"", "¹", "²", "³", "⁴", "⁵"}

// ListScreen browses the merged catalog.
type ListScreen struct {
	catalog  *vocab.Catalog
	tracker  *progress.Tracker
	settings settings.Settings
	homonyms map[string]stats.HomonymGroup

	search    components.TextInput
	searching bool

	posIdx   int // 0 = all, otherwise index+1 into vocab.AllPOS
	levelIdx int // 0 = all, then A, B, C
	sortKey  vocab.SortKey
	desc     bool

	cursor int
	offset int
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

var levels = []vocab.Level{"", vocab.LevelA, vocab.LevelB, vocab.LevelC}

// New creates the word list screen.
func New(catalog *vocab.Catalog, tracker *progress.Tracker, st settings.Settings) *ListScreen {
	return &ListScreen{
		catalog:  catalog,
		tracker:  tracker,
		settings: st,
		homonyms: stats.Homonyms(catalog.Words()),
		search:   components.NewTextInput("search", 20),
		sortKey:  vocab.SortByFrequency,
	}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Title() string {
	return "Word List"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	if l.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel search"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "P", Description: "Part of speech"},
		{Key: "L", Description: "Level"},
		{Key: "S", Description: "Sort"},
		{Key: "O", Description: "Order"},
		{Key: "Esc", Description: "Back"},
	}
}

// filtered applies the current search and filter state.
func (l *ListScreen) filtered() []vocab.Word {
	opts := vocab.FilterOpts{
		Query:      l.search.Value(),
		Level:      levels[l.levelIdx],
		SortKey:    l.sortKey,
		Descending: l.desc,
		MasteryOf:  l.tracker.Mastery,
	}
	if l.posIdx > 0 {
		opts.POS = vocab.AllPOS[l.posIdx-1]
	}
	return l.catalog.Filter(opts)
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	key := kmsg.String()

	if l.searching {
		switch key {
		case "enter":
			l.searching = false
		case "esc":
			l.searching = false
			l.search.Reset()
		default:
			var cmd tea.Cmd
			l.search, cmd = l.search.Update(msg)
			l.cursor = 0
			l.offset = 0
			return l, cmd
		}
		l.cursor = 0
		l.offset = 0
		return l, nil
	}

	switch key {
	case "esc", "q":
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		l.searching = true
		return l, l.search.Init()
	case "p", "P":
		l.posIdx = (l.posIdx + 1) % (len(vocab.AllPOS) + 1)
		l.cursor, l.offset = 0, 0
	case "L":
		l.levelIdx = (l.levelIdx + 1) % len(levels)
		l.cursor, l.offset = 0, 0
	case "s", "S":
		if l.sortKey == vocab.SortByFrequency {
			l.sortKey = vocab.SortByMastery
		} else {
			l.sortKey = vocab.SortByFrequency
		}
	case "o", "O":
		l.desc = !l.desc
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.filtered())-1 {
			l.cursor++
		}
	}
	return l, nil
}

func (l *ListScreen) View(width, height int) string {
	words := l.filtered()

	var b strings.Builder
	b.WriteString(l.renderToolbar(width, len(words)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n")

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}

	end := l.offset + visible
	if end > len(words) {
		end = len(words)
	}

	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(words[i], i == l.cursor, width))
		b.WriteString("\n")
	}
	if len(words) == 0 {
		b.WriteString(theme.Hint.Render("  no words match"))
	}

	return b.String()
}

func (l *ListScreen) renderToolbar(width, matches int) string {
	pos := "all"
	if l.posIdx > 0 {
		pos = string(vocab.AllPOS[l.posIdx-1])
	}
	level := "all"
	if l.levelIdx > 0 {
		level = string(levels[l.levelIdx])
	}
	order := "asc"
	if l.desc {
		order = "desc"
	}

	left := theme.Hint.Render(fmt.Sprintf("  %d words   pos:%s   level:%s   sort:%s %s",
		matches, pos, level, l.sortKey, order))

	if l.searching || l.search.Value() != "" {
		return left + "   " + l.search.View()
	}
	return left
}

func (l *ListScreen) renderRow(w vocab.Word, selected bool, width int) string {
	korean := w.Korean + l.ordinal(w)
	mastery := components.MasteryDots(l.tracker.Mastery(w.ID), progress.MaxMastery)

	line := fmt.Sprintf("  %-10s %-16s %-20s %s·%s  %s",
		korean,
		w.Romanization,
		w.DisplayMeaning(string(l.settings.Language)),
		w.POS,
		w.Level,
		mastery,
	)

	if selected {
		return theme.Selected.Render("▸" + line[1:])
	}
	return theme.Unselected.Render(line)
}

// ordinal marks words that share a surface form with others, in stable
// catalog order.
func (l *ListScreen) ordinal(w vocab.Word) string {
	group, ok := l.homonyms[w.Korean]
	if !ok {
		return ""
	}
	n := group.Ordinal(w.ID)
	if n <= 0 || n >= len(ordinalMarks) {
		return ""
	}
	return ordinalMarks[n]
}
