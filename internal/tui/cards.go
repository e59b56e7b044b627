package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/lexitable/internal/client/cardconfig"
	"github.com/heartmarshall/lexitable/internal/client/router"
	"github.com/heartmarshall/lexitable/internal/domain"
)

var cardsKeys = struct {
	Up, Down, Prev, Next, Toggle, Train, Back key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑/↓", "move")),
	Prev:   key.NewBinding(key.WithKeys("left", "h")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "change column")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Train:  key.NewBinding(key.WithKeys("enter", "t"), key.WithHelp("enter", "start training")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "tables")),
}

type cardsItemKind int

const (
	itemFront cardsItemKind = iota
	itemBack
	itemHint
	itemStatusAll
	itemStatus
	itemTableAll
	itemTable
)

type cardsItem struct {
	kind   cardsItemKind
	status domain.WordStatus
	table  domain.WordSet
}

type cardsLoadedMsg struct{ err error }

type cardsScreen struct {
	env    env
	cfg    *cardconfig.Configurator
	help   help.Model
	cursor int
}

func newCardsScreen(e env) *cardsScreen {
	cfg := cardconfig.New(e.deps.API, cardconfig.Config{
		AutosaveDelay: e.deps.Config.Cards.AutosaveDelay,
		CountDelay:    e.deps.Config.Cards.CountDelay,
	}, e.deps.Clock, e.deps.Log)
	cfg.OnChange(e.changed)
	return &cardsScreen{env: e, cfg: cfg, help: help.New()}
}

func (s *cardsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *cardsScreen) load() tea.Cmd {
	cfg, ctx := s.cfg, s.env.ctx
	return func() tea.Msg { return cardsLoadedMsg{err: cfg.Load(ctx)} }
}

func (s *cardsScreen) Close() { s.cfg.Close() }

func (s *cardsScreen) items(v cardconfig.View) []cardsItem {
	items := []cardsItem{{kind: itemFront}, {kind: itemBack}, {kind: itemHint}, {kind: itemStatusAll}}
	for _, st := range domain.AllWordStatuses {
		items = append(items, cardsItem{kind: itemStatus, status: st})
	}
	items = append(items, cardsItem{kind: itemTableAll})
	for _, t := range v.Tables {
		items = append(items, cardsItem{kind: itemTable, table: t})
	}
	return items
}

func (s *cardsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		return s, nil
	case editorOpMsg:
		if msg.err != nil {
			return s, toast(msg.op + ": " + errorText(msg.err))
		}
		return s, nil
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
		return s, nil
	case tea.KeyMsg:
		return s, s.updateKey(msg)
	}
	return s, nil
}

func (s *cardsScreen) updateKey(k tea.KeyMsg) tea.Cmd {
	v := s.cfg.View()
	if key.Matches(k, cardsKeys.Back) {
		return navigate(string(router.RouteEditor))
	}
	if v.Phase != cardconfig.Ready {
		if v.Err != nil && k.String() == "r" {
			return s.load()
		}
		return nil
	}

	items := s.items(v)
	s.cursor = max(0, min(s.cursor, len(items)-1))
	it := items[s.cursor]
	ctx := s.env.ctx

	switch {
	case key.Matches(k, cardsKeys.Up):
		s.cursor = max(0, s.cursor-1)
	case key.Matches(k, cardsKeys.Down):
		s.cursor = min(len(items)-1, s.cursor+1)
	case key.Matches(k, cardsKeys.Prev), key.Matches(k, cardsKeys.Next):
		step := 1
		if key.Matches(k, cardsKeys.Prev) {
			step = -1
		}
		s.cycleColumn(v, it.kind, step)
	case key.Matches(k, cardsKeys.Toggle):
		switch it.kind {
		case itemStatusAll:
			s.cfg.ToggleStatusAll()
		case itemStatus:
			s.cfg.ToggleStatus(it.status)
		case itemTableAll:
			return func() tea.Msg { return editorOpMsg{op: "save tables", err: s.cfg.ToggleTableAll(ctx)} }
		case itemTable:
			id := it.table.ID
			return func() tea.Msg { return editorOpMsg{op: "save tables", err: s.cfg.ToggleTable(ctx, id)} }
		default:
			s.cycleColumn(v, it.kind, 1)
		}
	case key.Matches(k, cardsKeys.Train):
		if v.Count == 0 || v.Counting {
			return toast("No cards match these settings")
		}
		return navigate(router.EncodeTrainParams(s.cfg.TrainParams()))
	}
	return nil
}

// cycleColumn moves the front, back or hint to the neighbouring column.
// The hint cycle includes "no hint".
func (s *cardsScreen) cycleColumn(v cardconfig.View, kind cardsItemKind, step int) {
	keys := make([]string, 0, len(v.Columns)+1)
	if kind == itemHint {
		keys = append(keys, "")
	}
	for _, c := range v.Columns {
		keys = append(keys, c.Key)
	}

	var cur string
	switch kind {
	case itemFront:
		cur = v.Settings.FrontKey
	case itemBack:
		cur = v.Settings.BackKey
	case itemHint:
		if v.Settings.HintKey != nil {
			cur = *v.Settings.HintKey
		}
	default:
		return
	}
	i := slices.Index(keys, cur)
	next := keys[(i+step+len(keys))%len(keys)]

	switch kind {
	case itemFront:
		s.cfg.SetFront(next)
	case itemBack:
		s.cfg.SetBack(next)
	case itemHint:
		if next == "" {
			s.cfg.SetHint(nil)
		} else {
			s.cfg.SetHint(&next)
		}
	}
}

func columnName(cols []domain.ColumnRef, k string) string {
	for _, c := range cols {
		if c.Key == k {
			return c.Name
		}
	}
	return k
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (s *cardsScreen) View() string {
	v := s.cfg.View()
	var b strings.Builder
	b.WriteString(styleHeader.Render("Card settings") + "\n\n")

	if v.Phase != cardconfig.Ready {
		if v.Err != nil {
			b.WriteString(styleError.Render(errorText(v.Err)) + "\n\n")
			b.WriteString(styleSubtle.Render("r retry · esc back"))
			return b.String()
		}
		return b.String() + "Loading…"
	}

	items := s.items(v)
	s.cursor = max(0, min(s.cursor, len(items)-1))
	hint := "none"
	if v.Settings.HintKey != nil {
		hint = columnName(v.Columns, *v.Settings.HintKey)
	}

	for i, it := range items {
		switch it.kind {
		case itemStatusAll:
			b.WriteString("\n" + styleSubtle.Render("Statuses") + "\n")
		case itemTableAll:
			b.WriteString("\n" + styleSubtle.Render("Tables") + "\n")
		}

		var line string
		switch it.kind {
		case itemFront:
			line = "Front  ‹ " + columnName(v.Columns, v.Settings.FrontKey) + " ›"
		case itemBack:
			line = "Back   ‹ " + columnName(v.Columns, v.Settings.BackKey) + " ›"
		case itemHint:
			line = "Hint   ‹ " + hint + " ›"
		case itemStatusAll:
			line = check(v.Settings.Statuses.IsAll()) + " all"
		case itemStatus:
			line = check(v.Settings.Statuses.Has(it.status)) + " " + strings.ToLower(string(it.status))
		case itemTableAll:
			line = check(v.Settings.Tables.IsAll()) + " all"
		case itemTable:
			line = check(v.Settings.Tables.Has(it.table.ID)) + " " + it.table.Title
		}
		if i == s.cursor {
			b.WriteString(styleCursor.Render("› ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case v.Counting:
		b.WriteString(styleWarn.Render("Counting…"))
	default:
		b.WriteString(styleOK.Render(fmt.Sprintf("%d cards", v.Count)))
	}
	if v.Saving {
		b.WriteString(styleSubtle.Render(" · saving…"))
	}
	if v.Err != nil {
		b.WriteString("\n" + styleError.Render(errorText(v.Err)))
	}
	b.WriteString("\n\n")
	b.WriteString(s.help.ShortHelpView([]key.Binding{
		cardsKeys.Down, cardsKeys.Next, cardsKeys.Toggle, cardsKeys.Train, cardsKeys.Back,
	}))
	return b.String()
}
