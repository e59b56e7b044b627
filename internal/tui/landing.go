package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/lexitable/internal/client/router"
)

var landingKeys = struct {
	Login, Register, App, Quit key.Binding
}{
	Login:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
	Register: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "register")),
	App:      key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "open tables")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type landing struct {
	env  env
	help help.Model
}

func newLanding(e env) *landing {
	return &landing{env: e, help: help.New()}
}

func (s *landing) Init() tea.Cmd { return nil }
func (s *landing) Close()        {}

func (s *landing) Update(msg tea.Msg) (screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(k, landingKeys.Login):
		return s, navigate(string(router.RouteLogin))
	case key.Matches(k, landingKeys.Register):
		return s, navigate(string(router.RouteRegister))
	case key.Matches(k, landingKeys.App):
		return s, navigate(string(router.RouteEditor))
	case key.Matches(k, landingKeys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

func (s *landing) View() string {
	var b strings.Builder
	b.WriteString("Build your own vocabulary tables and train them as flashcards.\n\n")
	b.WriteString(styleSubtle.Render("Tables keep any columns you like. Cards pick which ones go on the front, back and hint."))
	b.WriteString("\n\n")
	keys := []key.Binding{landingKeys.Login, landingKeys.Register, landingKeys.App, landingKeys.Quit}
	if s.env.deps.Session.IsAuthenticated() {
		keys = []key.Binding{landingKeys.App, landingKeys.Quit}
	}
	b.WriteString(s.help.ShortHelpView(keys))
	return b.String()
}
