package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/lexitable/internal/client/router"
)

var formKeys = struct {
	Next, Prev, Submit, Google, Switch, Back key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Google: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "sign in with Google")),
	Switch: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "switch form")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

// form is a column of text inputs with one focused at a time.
type form struct {
	inputs []textinput.Model
	labels []string
	focus  int
}

func newInput(placeholder string, password bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 256
	in.Width = 40
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func (f *form) add(label string, in textinput.Model) {
	f.labels = append(f.labels, label)
	f.inputs = append(f.inputs, in)
}

func (f *form) setFocus(i int) tea.Cmd {
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *form) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

// update handles focus movement and forwards everything else to the
// focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, formKeys.Next):
			return f.setFocus(f.focus + 1)
		case key.Matches(k, formKeys.Prev):
			return f.setFocus(f.focus - 1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = styleCursor.Render("› " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n  " + in.View() + "\n")
	}
	return b.String()
}

type authDoneMsg struct{ err error }

// authScreen is the login or the registration form.
type authScreen struct {
	env      env
	register bool
	form     form
	help     help.Model
	busy     string
	err      string
}

func newLogin(e env) *authScreen {
	s := &authScreen{env: e, help: help.New()}
	s.form.add("Email", newInput("you@example.com", false))
	s.form.add("Password", newInput("", true))
	return s
}

func newRegister(e env) *authScreen {
	s := &authScreen{env: e, register: true, help: help.New()}
	s.form.add("Name", newInput("optional", false))
	s.form.add("Email", newInput("you@example.com", false))
	s.form.add("Password", newInput("at least 6 characters", true))
	return s
}

func (s *authScreen) Init() tea.Cmd {
	return tea.Batch(s.form.setFocus(0), textinput.Blink)
}

func (s *authScreen) Close() {}

func (s *authScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.busy = ""
		if msg.err != nil {
			s.err = errorText(msg.err)
			return s, nil
		}
		return s, navigate(string(router.RouteEditor))

	case tea.KeyMsg:
		if s.busy != "" {
			return s, nil
		}
		switch {
		case key.Matches(msg, formKeys.Back):
			return s, navigate(string(router.RouteLanding))
		case key.Matches(msg, formKeys.Switch):
			if s.register {
				return s, navigate(string(router.RouteLogin))
			}
			return s, navigate(string(router.RouteRegister))
		case key.Matches(msg, formKeys.Google):
			return s, s.google()
		case key.Matches(msg, formKeys.Submit):
			if s.form.focus < len(s.form.inputs)-1 {
				return s, s.form.setFocus(s.form.focus + 1)
			}
			return s, s.submit()
		}
	}
	return s, s.form.update(msg)
}

func (s *authScreen) submit() tea.Cmd {
	s.err = ""
	sess, ctx := s.env.deps.Session, s.env.ctx
	if s.register {
		name, email, password := s.form.value(0), s.form.value(1), s.form.inputs[2].Value()
		s.busy = "Creating account…"
		return func() tea.Msg {
			return authDoneMsg{err: sess.Register(ctx, email, password, name)}
		}
	}
	email, password := s.form.value(0), s.form.inputs[1].Value()
	s.busy = "Signing in…"
	return func() tea.Msg {
		return authDoneMsg{err: sess.Login(ctx, email, password)}
	}
}

func (s *authScreen) google() tea.Cmd {
	if s.env.deps.OAuth == nil {
		s.err = "Google sign-in is not available."
		return nil
	}
	s.err = ""
	s.busy = "Waiting for browser sign-in…"
	sess, ctx, flow := s.env.deps.Session, s.env.ctx, s.env.deps.OAuth
	return func() tea.Msg {
		return authDoneMsg{err: sess.LoginWithOAuth(ctx, flow)}
	}
}

func (s *authScreen) View() string {
	var b strings.Builder
	title := "Log in"
	if s.register {
		title = "Create an account"
	}
	b.WriteString(styleHeader.Render(title) + "\n\n")
	b.WriteString(s.form.view())
	b.WriteString("\n")
	switch {
	case s.busy != "":
		b.WriteString(styleWarn.Render(s.busy) + "\n\n")
	case s.err != "":
		b.WriteString(styleError.Render(s.err) + "\n\n")
	}
	b.WriteString(s.help.ShortHelpView([]key.Binding{
		formKeys.Next, formKeys.Submit, formKeys.Google, formKeys.Switch, formKeys.Back,
	}))
	return b.String()
}
