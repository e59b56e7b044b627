package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/lexitable/internal/client/router"
)

type notFound struct {
	path string
}

func newNotFound(_ env, path string) *notFound { return &notFound{path: path} }

func (s *notFound) Init() tea.Cmd { return nil }
func (s *notFound) Close()        {}

func (s *notFound) Update(msg tea.Msg) (screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc":
			return s, navigate(string(router.RouteLanding))
		case "backspace":
			return s, goBack
		}
	}
	return s, nil
}

func (s *notFound) View() string {
	return styleHeader.Render("Page not found") + "\n\n" +
		styleSubtle.Render(s.path+" does not exist.") + "\n\n" +
		styleSubtle.Render("enter home · backspace back")
}
