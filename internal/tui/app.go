// Package tui is the terminal front end: one bubbletea model per route,
// switched through the client router.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/lexitable/internal/client/lexiapi"
	"github.com/heartmarshall/lexitable/internal/client/querycache"
	"github.com/heartmarshall/lexitable/internal/client/router"
	"github.com/heartmarshall/lexitable/internal/client/session"
	"github.com/heartmarshall/lexitable/internal/config"
)

// Deps are the long-lived client services shared by all screens.
type Deps struct {
	API     *lexiapi.Client
	Session *session.Session
	Router  *router.Router
	Cache   *querycache.Cache
	OAuth   session.OAuthFlow
	Config  config.ClientConfig
	Clock   clockwork.Clock
	Log     *slog.Logger
}

// screen is the model of one route.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
	// Close releases timers and in-flight work when the route is left.
	Close()
}

type (
	navigateMsg     struct{ to string }
	backMsg         struct{}
	refreshMsg      struct{}
	toastMsg        struct{ text string }
	sessionMsg      struct{ snap session.Snapshot }
	bootstrappedMsg struct{ err error }
	oauthURLMsg     struct{ url string }
)

func navigate(to string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

func goBack() tea.Msg { return backMsg{} }

func toast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

// env is what a screen gets from the root model.
type env struct {
	ctx    context.Context
	deps   Deps
	width  int
	height int
	// changed asks the program to re-render after a background update.
	changed func()
	// notify shows a toast from any goroutine.
	notify func(error)
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	deps    Deps
	send    func(tea.Msg)
	screen  screen
	loc     router.Location
	ready   bool
	width   int
	height  int
	toast   string
	authURL string
}

// New creates the root model. Nothing is fetched until Init.
func New(ctx context.Context, deps Deps) *Model {
	return &Model{ctx: ctx, deps: deps}
}

// Send delivers msg to the running program. It never blocks the caller, so
// it is safe to use from change callbacks fired inside Update.
func (m *Model) Send(msg tea.Msg) {
	if m.send != nil {
		go m.send(msg)
	}
}

func (m *Model) env() env {
	return env{
		ctx:     m.ctx,
		deps:    m.deps,
		width:   m.width,
		height:  m.height,
		changed: func() { m.Send(refreshMsg{}) },
		notify:  func(err error) { m.Send(toastMsg{text: errorText(err)}) },
	}
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return bootstrappedMsg{err: m.deps.Session.Bootstrap(m.ctx)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.closeScreen()
			return m, tea.Quit
		}
		m.toast = ""

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case bootstrappedMsg:
		m.ready = true
		if msg.err != nil {
			m.deps.Log.Warn("bootstrap session", slog.String("error", msg.err.Error()))
			m.toast = errorText(msg.err)
		}
		start := string(router.RouteLanding)
		if m.deps.Session.IsAuthenticated() {
			start = string(router.RouteEditor)
		}
		return m, m.open(m.deps.Router.Navigate(start))

	case navigateMsg:
		return m, m.open(m.deps.Router.Navigate(msg.to))

	case backMsg:
		return m, m.open(m.deps.Router.Back())

	case toastMsg:
		m.toast = msg.text
		return m, nil

	case oauthURLMsg:
		m.authURL = msg.url
		return m, nil

	case sessionMsg:
		if msg.snap.State != session.Authenticated {
			m.authURL = ""
			if m.loc.Route.Private() {
				return m, m.open(m.deps.Router.Navigate(string(router.RouteLogin)))
			}
		}
	}

	if m.screen == nil {
		return m, nil
	}
	next, cmd := m.screen.Update(msg)
	m.screen = next
	return m, cmd
}

// open replaces the current screen with the one for loc.
func (m *Model) open(loc router.Location) tea.Cmd {
	m.closeScreen()
	m.loc = loc
	m.screen = m.newScreen(loc)
	m.deps.Log.Debug("navigate", slog.String("location", loc.String()))

	cmds := []tea.Cmd{m.screen.Init()}
	if m.width > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

func (m *Model) newScreen(loc router.Location) screen {
	e := m.env()
	switch loc.Route {
	case router.RouteLanding:
		return newLanding(e)
	case router.RouteLogin:
		return newLogin(e)
	case router.RouteRegister:
		return newRegister(e)
	case router.RouteEditor:
		return newEditorScreen(e)
	case router.RouteCards:
		return newCardsScreen(e)
	case router.RouteTrain:
		return newTrainScreen(e, router.DecodeTrainParams(loc.Query))
	case router.RouteProfile:
		return newProfile(e)
	default:
		return newNotFound(e, loc.Path)
	}
}

func (m *Model) closeScreen() {
	if m.screen != nil {
		m.screen.Close()
		m.screen = nil
	}
}

// Route is the route currently shown.
func (m *Model) Route() router.Route { return m.loc.Route }

func (m *Model) View() string {
	if !m.ready || m.screen == nil {
		return "\n  Loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.screen.View())
	if m.authURL != "" && !m.deps.Session.IsAuthenticated() {
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render("If the browser did not open, visit:\n" + m.authURL))
	}
	if m.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(styleToast.Render(m.toast))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) header() string {
	title := styleTitle.Render("LexiTable")
	user := m.deps.Session.User()
	if user == nil {
		return title
	}
	name := user.Name
	if name == "" {
		name = user.Email
	}
	return title + styleSubtle.Render(" · "+name)
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	m.send = p.Send

	unsubscribe := m.deps.Session.Subscribe(func(s session.Snapshot) {
		m.Send(sessionMsg{snap: s})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// SetOAuth installs the browser sign-in flow.
func (m *Model) SetOAuth(flow session.OAuthFlow) {
	m.deps.OAuth = flow
}

// ShowAuthURL displays the sign-in URL in case the browser does not open.
func (m *Model) ShowAuthURL(url string) {
	m.Send(oauthURLMsg{url: url})
}
