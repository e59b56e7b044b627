package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/lexitable/internal/client/lexiapi"
	"github.com/heartmarshall/lexitable/internal/client/router"
	"github.com/heartmarshall/lexitable/internal/domain"
)

var profileKeys = struct {
	SaveProfile, SavePassword, Retry, Logout, Back key.Binding
}{
	SaveProfile:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save profile")),
	SavePassword: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "change password")),
	Retry:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	Logout:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "tables")),
}

const (
	fieldName = iota
	fieldEmail
	fieldCurrentPassword
	fieldNewPassword
)

type (
	profileLoadedMsg struct {
		user *domain.User
		err  error
	}
	profileSavedMsg struct {
		what string
		err  error
	}
)

type profileScreen struct {
	env     env
	form    form
	help    help.Model
	user    *domain.User
	loadErr error
	busy    bool
	status  string
	err     string
}

func newProfile(e env) *profileScreen {
	s := &profileScreen{env: e, help: help.New()}
	s.form.add("Name", newInput("", false))
	s.form.add("Email", newInput("", false))
	s.form.add("Current password", newInput("", true))
	s.form.add("New password", newInput("at least 6 characters", true))
	return s
}

func (s *profileScreen) Init() tea.Cmd {
	return s.load()
}

func (s *profileScreen) load() tea.Cmd {
	s.loadErr = nil
	s.busy = true
	api, ctx := s.env.deps.API, s.env.ctx
	return func() tea.Msg {
		user, err := api.Me(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (s *profileScreen) Close() {}

func (s *profileScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		s.busy = false
		if msg.err != nil {
			s.loadErr = msg.err
			return s, nil
		}
		s.user = msg.user
		s.form.inputs[fieldName].SetValue(msg.user.Name)
		s.form.inputs[fieldEmail].SetValue(msg.user.Email)
		return s, tea.Batch(s.form.setFocus(fieldName), textinput.Blink)

	case profileSavedMsg:
		s.busy = false
		if msg.err != nil {
			s.err = errorText(msg.err)
			return s, nil
		}
		s.status = msg.what + " saved"
		if u := s.env.deps.Session.User(); msg.what == "profile" && u != nil {
			s.user = u
		}
		if msg.what == "password" {
			s.form.inputs[fieldCurrentPassword].SetValue("")
			s.form.inputs[fieldNewPassword].SetValue("")
		}
		return s, nil

	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, profileKeys.Back) {
			return s, navigate(string(router.RouteEditor))
		}
		if s.busy {
			return s, nil
		}
		if s.loadErr != nil {
			if key.Matches(msg, profileKeys.Retry) {
				return s, s.load()
			}
			return s, nil
		}
		switch {
		case key.Matches(msg, profileKeys.SaveProfile):
			return s, s.saveProfile()
		case key.Matches(msg, profileKeys.SavePassword):
			return s, s.savePassword()
		case key.Matches(msg, profileKeys.Logout):
			sess, ctx := s.env.deps.Session, s.env.ctx
			return s, func() tea.Msg {
				sess.Logout(ctx)
				return navigateMsg{to: string(router.RouteLanding)}
			}
		}
	}
	if s.user == nil {
		return s, nil
	}
	return s, s.form.update(msg)
}

// saveProfile sends only the fields that changed.
func (s *profileScreen) saveProfile() tea.Cmd {
	s.status, s.err = "", ""
	var in lexiapi.ProfileUpdate
	if name := s.form.value(fieldName); name != s.user.Name {
		in.Name = &name
	}
	if email := s.form.value(fieldEmail); email != s.user.Email {
		in.Email = &email
	}
	if in.Name == nil && in.Email == nil {
		s.status = "Nothing to save"
		return nil
	}

	s.busy = true
	sess, ctx := s.env.deps.Session, s.env.ctx
	return func() tea.Msg {
		return profileSavedMsg{what: "profile", err: sess.UpdateProfile(ctx, in)}
	}
}

func (s *profileScreen) savePassword() tea.Cmd {
	s.status, s.err = "", ""
	current := s.form.inputs[fieldCurrentPassword].Value()
	next := s.form.inputs[fieldNewPassword].Value()
	s.busy = true
	sess, ctx := s.env.deps.Session, s.env.ctx
	return func() tea.Msg {
		return profileSavedMsg{what: "password", err: sess.ChangePassword(ctx, current, next)}
	}
}

func (s *profileScreen) View() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Profile") + "\n\n")

	switch {
	case s.loadErr != nil:
		b.WriteString(styleError.Render("Could not load the profile: "+errorText(s.loadErr)) + "\n\n")
		b.WriteString(s.help.ShortHelpView([]key.Binding{profileKeys.Retry, profileKeys.Back}))
		return b.String()
	case s.user == nil:
		return b.String() + "Loading…"
	}

	b.WriteString(s.form.view())
	b.WriteString("\n")
	switch {
	case s.busy:
		b.WriteString(styleWarn.Render("Saving…") + "\n\n")
	case s.err != "":
		b.WriteString(styleError.Render(s.err) + "\n\n")
	case s.status != "":
		b.WriteString(styleOK.Render(s.status) + "\n\n")
	}
	b.WriteString(s.help.ShortHelpView([]key.Binding{
		formKeys.Next, profileKeys.SaveProfile, profileKeys.SavePassword, profileKeys.Logout, profileKeys.Back,
	}))
	return b.String()
}
