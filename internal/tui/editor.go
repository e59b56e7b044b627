package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/lexitable/internal/client/editor"
	"github.com/heartmarshall/lexitable/internal/client/router"
	"github.com/heartmarshall/lexitable/internal/domain"
)

var editorKeys = struct {
	Up, Down, Left, Right        key.Binding
	Edit, Status, Delete         key.Binding
	NewRow, SaveRow              key.Binding
	Search, Filter, ClearFilter  key.Binding
	More, PrevSet, NextSet       key.Binding
	NewSet, RenameSet, DeleteSet key.Binding
	AddColumn, RemoveColumn      key.Binding
	Cards, Profile, Logout, Quit key.Binding
}{
	Up:           key.NewBinding(key.WithKeys("up", "k")),
	Down:         key.NewBinding(key.WithKeys("down", "j")),
	Left:         key.NewBinding(key.WithKeys("left", "h")),
	Right:        key.NewBinding(key.WithKeys("right", "l")),
	Edit:         key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
	Status:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete row")),
	NewRow:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new row")),
	SaveRow:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save row")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Filter:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "status filter")),
	ClearFilter:  key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "clear filters")),
	More:         key.NewBinding(key.WithKeys("m", "pgdown"), key.WithHelp("m", "load more")),
	PrevSet:      key.NewBinding(key.WithKeys("[")),
	NextSet:      key.NewBinding(key.WithKeys("]"), key.WithHelp("[ ]", "switch table")),
	NewSet:       key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new table")),
	RenameSet:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rename")),
	DeleteSet:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete table")),
	AddColumn:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add column")),
	RemoveColumn: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "remove column")),
	Cards:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cards")),
	Profile:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	Logout:       key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
	Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type editMode int

const (
	modeNormal editMode = iota
	modeCell
	modeSearch
	modeNewSet
	modeRenameSet
	modeAddColumn
	modeConfirmDelete
)

// column is one rendered column: a fixed field, a custom key or status.
type column struct {
	key    string
	name   string
	custom bool
}

// row is either a persisted word or a draft.
type row struct {
	word  *domain.Word
	draft *domain.TempWord
}

func (r row) value(col column) string {
	if r.draft != nil {
		switch col.key {
		case domain.KeyOriginal:
			return r.draft.Original
		case domain.KeyTranslation:
			return r.draft.Translation
		case domain.KeyStatus:
			return string(r.draft.Status)
		}
		return r.draft.CustomFields[col.key]
	}
	if col.key == domain.KeyStatus {
		return string(r.word.Status)
	}
	v, _ := r.word.Field(col.key)
	return v
}

type editorOpMsg struct {
	op  string
	err error
}

type editorScreen struct {
	env   env
	ed    *editor.Editor
	help  help.Model
	input textinput.Model
	mode  editMode
	row   int
	col   int
	// editing identifies the cell under edit so that a refresh which moves
	// rows does not redirect the commit.
	editing struct {
		row row
		col column
	}
}

func newEditorScreen(e env) *editorScreen {
	cfg := e.deps.Config.Editor
	ed := editor.New(e.deps.API, e.deps.Cache, editor.Config{
		PageSize:       cfg.PageSize,
		SearchDebounce: cfg.SearchDebounce,
	}, e.deps.Clock, e.deps.Log)
	ed.OnChange(e.changed)

	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 1024
	in.Width = 40
	return &editorScreen{env: e, ed: ed, help: help.New(), input: in}
}

func (s *editorScreen) Init() tea.Cmd {
	ed, ctx := s.ed, s.env.ctx
	return func() tea.Msg {
		if err := ed.LoadSets(ctx); err != nil {
			return editorOpMsg{op: "load tables", err: err}
		}
		if v := ed.View(); v.ActiveSetID == 0 && len(v.Sets) > 0 {
			return editorOpMsg{op: "open table", err: ed.SelectSet(ctx, v.Sets[0].ID)}
		}
		return nil
	}
}

func (s *editorScreen) Close() { s.ed.Close() }

func (s *editorScreen) columns(v editor.View) []column {
	cols := []column{
		{key: domain.KeyOriginal, name: "Слово"},
		{key: domain.KeyTranslation, name: "Перевод"},
	}
	for _, c := range v.Columns {
		cols = append(cols, column{key: c.Key, name: c.Name, custom: true})
	}
	return append(cols, column{key: domain.KeyStatus, name: "Статус"})
}

func (s *editorScreen) rows(v editor.View) []row {
	rows := make([]row, 0, len(v.Words)+len(v.TempRows))
	for i := range v.Words {
		rows = append(rows, row{word: &v.Words[i]})
	}
	for i := range v.TempRows {
		rows = append(rows, row{draft: &v.TempRows[i]})
	}
	return rows
}

// run performs a blocking editor call off the event loop.
func (s *editorScreen) run(op string, fn func() error) tea.Cmd {
	return func() tea.Msg { return editorOpMsg{op: op, err: fn()} }
}

// flushSearch applies pending search text; the refetch it starts is a
// network call.
func (s *editorScreen) flushSearch() tea.Cmd {
	return s.run("search", func() error {
		s.ed.FlushSearch()
		return nil
	})
}

func (s *editorScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case editorOpMsg:
		if msg.err != nil {
			return s, toast(msg.op + ": " + errorText(msg.err))
		}
		return s, nil
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
		return s, nil
	case tea.KeyMsg:
		switch s.mode {
		case modeNormal:
			return s, s.updateNormal(msg)
		case modeConfirmDelete:
			s.mode = modeNormal
			if msg.String() == "y" {
				return s, s.run("delete table", func() error { return s.ed.DeleteSet(s.env.ctx) })
			}
			return s, nil
		default:
			return s, s.updateInput(msg)
		}
	}
	if s.mode != modeNormal {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *editorScreen) clamp(v editor.View) {
	n := len(s.rows(v))
	s.row = max(0, min(s.row, n-1))
	s.col = max(0, min(s.col, len(s.columns(v))-1))
}

func (s *editorScreen) current(v editor.View) (row, column, bool) {
	rows, cols := s.rows(v), s.columns(v)
	s.clamp(v)
	if len(rows) == 0 {
		return row{}, cols[s.col], false
	}
	return rows[s.row], cols[s.col], true
}

func (s *editorScreen) updateNormal(k tea.KeyMsg) tea.Cmd {
	v := s.ed.View()
	ctx := s.env.ctx

	switch {
	case key.Matches(k, editorKeys.Up):
		s.row--
		s.clamp(v)
	case key.Matches(k, editorKeys.Down):
		s.row++
		s.clamp(v)
		if rows := s.rows(v); s.row == len(rows)-1 && v.HasMore && !v.LoadingMore && len(v.TempRows) == 0 {
			return s.run("load more", func() error { return s.ed.LoadMore(ctx) })
		}
	case key.Matches(k, editorKeys.Left):
		s.col--
		s.clamp(v)
	case key.Matches(k, editorKeys.Right):
		s.col++
		s.clamp(v)

	case key.Matches(k, editorKeys.Edit):
		r, c, ok := s.current(v)
		if !ok || c.key == domain.KeyStatus {
			return nil
		}
		s.editing.row, s.editing.col = r, c
		s.input.SetValue(r.value(c))
		s.input.CursorEnd()
		s.mode = modeCell
		return s.input.Focus()

	case key.Matches(k, editorKeys.Status):
		r, _, ok := s.current(v)
		if !ok {
			return nil
		}
		next := nextStatus(domain.WordStatus(r.value(column{key: domain.KeyStatus})))
		if r.draft != nil {
			s.ed.EditTempRow(r.draft.TempID, domain.KeyStatus, string(next))
			return nil
		}
		id := r.word.ID
		return s.run("update status", func() error { return s.ed.UpdateStatus(ctx, id, next) })

	case key.Matches(k, editorKeys.Delete):
		r, _, ok := s.current(v)
		if !ok {
			return nil
		}
		if r.draft != nil {
			s.ed.DiscardTempRow(r.draft.TempID)
			return nil
		}
		id := r.word.ID
		return s.run("delete word", func() error { return s.ed.DeleteWord(ctx, id) })

	case key.Matches(k, editorKeys.NewRow):
		if s.ed.AddTempRow() != "" {
			next := s.ed.View()
			s.row = len(s.rows(next)) - 1
			s.col = 0
		}
	case key.Matches(k, editorKeys.SaveRow):
		r, _, ok := s.current(v)
		if !ok || r.draft == nil {
			return nil
		}
		id := r.draft.TempID
		return s.run("save row", func() error { return s.ed.SaveTempRow(ctx, id) })

	case key.Matches(k, editorKeys.Search):
		s.input.SetValue(v.Search)
		s.input.CursorEnd()
		s.mode = modeSearch
		return s.input.Focus()
	case key.Matches(k, editorKeys.Filter):
		next := nextFilter(v.StatusFilter)
		s.row = 0
		return s.run("filter", func() error { return s.ed.SetStatusFilter(ctx, next) })
	case key.Matches(k, editorKeys.ClearFilter):
		s.row = 0
		return s.run("clear filters", func() error { return s.ed.ClearFilters(ctx) })
	case key.Matches(k, editorKeys.More):
		if v.HasMore {
			return s.run("load more", func() error { return s.ed.LoadMore(ctx) })
		}

	case key.Matches(k, editorKeys.PrevSet), key.Matches(k, editorKeys.NextSet):
		if len(v.Sets) == 0 {
			return nil
		}
		step := 1
		if key.Matches(k, editorKeys.PrevSet) {
			step = -1
		}
		i := slices.IndexFunc(v.Sets, func(ws domain.WordSet) bool { return ws.ID == v.ActiveSetID })
		id := v.Sets[(i+step+len(v.Sets))%len(v.Sets)].ID
		s.row, s.col = 0, 0
		return s.run("open table", func() error { return s.ed.SelectSet(ctx, id) })

	case key.Matches(k, editorKeys.NewSet):
		return s.prompt(modeNewSet, "")
	case key.Matches(k, editorKeys.RenameSet):
		if v.ActiveSetID != 0 {
			return s.prompt(modeRenameSet, v.Title)
		}
	case key.Matches(k, editorKeys.DeleteSet):
		if v.ActiveSetID != 0 {
			s.mode = modeConfirmDelete
		}
	case key.Matches(k, editorKeys.AddColumn):
		if v.ActiveSetID != 0 {
			return s.prompt(modeAddColumn, "")
		}
	case key.Matches(k, editorKeys.RemoveColumn):
		_, c, _ := s.current(v)
		if !c.custom {
			return toast("Only custom columns can be removed")
		}
		return s.run("remove column", func() error { return s.ed.RemoveColumn(ctx, c.key) })

	case key.Matches(k, editorKeys.Cards):
		return navigate(string(router.RouteCards))
	case key.Matches(k, editorKeys.Profile):
		return navigate(string(router.RouteProfile))
	case key.Matches(k, editorKeys.Logout):
		sess := s.env.deps.Session
		return func() tea.Msg {
			sess.Logout(ctx)
			return navigateMsg{to: string(router.RouteLanding)}
		}
	case key.Matches(k, editorKeys.Quit):
		return tea.Quit
	}
	return nil
}

func (s *editorScreen) prompt(mode editMode, value string) tea.Cmd {
	s.mode = mode
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

func (s *editorScreen) updateInput(k tea.KeyMsg) tea.Cmd {
	ctx := s.env.ctx

	switch k.Type {
	case tea.KeyEsc:
		mode := s.mode
		s.leaveInput()
		if mode == modeSearch {
			return s.flushSearch()
		}
		return nil

	case tea.KeyEnter, tea.KeyTab:
		mode, value := s.mode, s.input.Value()
		s.leaveInput()
		switch mode {
		case modeCell:
			cmd := s.commitCell(value)
			if k.Type == tea.KeyTab {
				s.col++
				s.clamp(s.ed.View())
			}
			return cmd
		case modeSearch:
			return s.flushSearch()
		case modeNewSet:
			return s.run("create table", func() error {
				_, err := s.ed.CreateSet(ctx, value)
				return err
			})
		case modeRenameSet:
			return s.run("rename table", func() error { return s.ed.RenameSet(ctx, value) })
		case modeAddColumn:
			return func() tea.Msg {
				added, err := s.ed.AddColumn(ctx, value)
				if err == nil && !added {
					return toastMsg{text: fmt.Sprintf("Column %q already exists", value)}
				}
				return editorOpMsg{op: "add column", err: err}
			}
		}
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(k)
	if s.mode == modeSearch {
		s.row = 0
		s.ed.SetSearch(s.input.Value())
	}
	return cmd
}

func (s *editorScreen) leaveInput() {
	s.mode = modeNormal
	s.input.Blur()
}

// commitCell saves the edited cell on blur. Drafts are updated locally.
func (s *editorScreen) commitCell(value string) tea.Cmd {
	r, c := s.editing.row, s.editing.col
	if r.draft != nil {
		s.ed.EditTempRow(r.draft.TempID, c.key, value)
		return nil
	}
	if r.word == nil {
		return nil
	}
	ctx, id := s.env.ctx, r.word.ID
	return s.run("save cell", func() error {
		_, err := s.ed.CommitCell(ctx, id, c.key, value)
		return err
	})
}

func nextStatus(st domain.WordStatus) domain.WordStatus {
	i := slices.Index(domain.AllWordStatuses, st)
	return domain.AllWordStatuses[(i+1)%len(domain.AllWordStatuses)]
}

// nextFilter cycles nil → each status → nil.
func nextFilter(cur *domain.WordStatus) *domain.WordStatus {
	if cur == nil {
		st := domain.AllWordStatuses[0]
		return &st
	}
	i := slices.Index(domain.AllWordStatuses, *cur)
	if i < 0 || i == len(domain.AllWordStatuses)-1 {
		return nil
	}
	st := domain.AllWordStatuses[i+1]
	return &st
}

func (s *editorScreen) View() string {
	v := s.ed.View()
	var b strings.Builder

	b.WriteString(s.viewSets(v))
	b.WriteString("\n\n")

	if v.ActiveSetID == 0 {
		if len(v.Sets) == 0 && !v.Loading {
			b.WriteString("No tables yet. Press N to create one.\n")
		}
	} else {
		b.WriteString(s.viewToolbar(v) + "\n\n")
		b.WriteString(s.viewTable(v))
	}

	b.WriteString("\n")
	switch s.mode {
	case modeCell:
		b.WriteString(styleCursor.Render(s.editing.col.name+": ") + s.input.View())
	case modeSearch:
		b.WriteString(styleCursor.Render("Search: ") + s.input.View())
	case modeNewSet:
		b.WriteString(styleCursor.Render("New table title: ") + s.input.View())
	case modeRenameSet:
		b.WriteString(styleCursor.Render("Rename table: ") + s.input.View())
	case modeAddColumn:
		b.WriteString(styleCursor.Render("Column name: ") + s.input.View())
	case modeConfirmDelete:
		b.WriteString(styleWarn.Render(fmt.Sprintf("Delete %q with all its words? y/N", v.Title)))
	default:
		if v.Err != nil {
			b.WriteString(styleError.Render(errorText(v.Err)) + "\n")
		}
		b.WriteString(s.help.ShortHelpView([]key.Binding{
			editorKeys.Edit, editorKeys.NewRow, editorKeys.SaveRow, editorKeys.Status, editorKeys.Delete,
			editorKeys.Search, editorKeys.Filter, editorKeys.NextSet, editorKeys.NewSet,
			editorKeys.AddColumn, editorKeys.Cards, editorKeys.Profile, editorKeys.Quit,
		}))
	}
	return b.String()
}

func (s *editorScreen) viewSets(v editor.View) string {
	tabs := make([]string, 0, len(v.Sets))
	for _, ws := range v.Sets {
		label := fmt.Sprintf(" %s (%d) ", ws.Title, ws.Total)
		if ws.ID == v.ActiveSetID {
			label = styleCell.Render(label)
		} else {
			label = styleSubtle.Render(label)
		}
		tabs = append(tabs, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (s *editorScreen) viewToolbar(v editor.View) string {
	parts := []string{styleHeader.Render(v.Title), fmt.Sprintf("%d words", v.Total)}
	if v.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", v.Search))
	}
	if v.StatusFilter != nil {
		parts = append(parts, "status "+string(*v.StatusFilter))
	}
	if v.Loading {
		parts = append(parts, styleWarn.Render("loading…"))
	}
	return strings.Join(parts, styleSubtle.Render(" · "))
}

func (s *editorScreen) viewTable(v editor.View) string {
	cols, rows := s.columns(v), s.rows(v)
	s.clamp(v)

	const width = 18
	cell := lipgloss.NewStyle().Width(width).MaxWidth(width)

	var b strings.Builder
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = cell.Render(styleHeader.Render(truncate(c.name, width-1)))
	}
	b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, header...) + "\n")

	if len(rows) == 0 && !v.Loading {
		b.WriteString(styleSubtle.Render("  No words. Press n to add one.") + "\n")
	}
	for i, r := range rows {
		marker := "  "
		if r.draft != nil {
			marker = styleDraft.Render("* ")
		}
		cells := make([]string, len(cols))
		for j, c := range cols {
			text := truncate(r.value(c), width-1)
			style := cell
			switch {
			case i == s.row && j == s.col:
				style = style.Inherit(styleCell)
			case i == s.row:
				style = style.Inherit(styleSelected)
			}
			cells[j] = style.Render(text)
		}
		b.WriteString(marker + lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	if v.LoadingMore {
		b.WriteString(styleWarn.Render("  loading more…") + "\n")
	} else if v.HasMore {
		b.WriteString(styleSubtle.Render(fmt.Sprintf("  %d of %d shown, m for more", len(v.Words), v.Total)) + "\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
