package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/lexitable/internal/client/router"
	"github.com/heartmarshall/lexitable/internal/client/training"
	"github.com/heartmarshall/lexitable/internal/domain"
)

var trainKeys = struct {
	Know, DontKnow, Flip, Hint, Restart, Settings, Back key.Binding
}{
	Know:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "know")),
	DontKnow: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "don't know")),
	Flip:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "flip")),
	Hint:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
	Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Settings: key.NewBinding(key.WithKeys("b", "enter"), key.WithHelp("b", "back to settings")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "settings")),
}

type trainer interface {
	Load(ctx context.Context, p domain.TrainParams) error
	Restart(ctx context.Context) error
	Front() string
	Back() string
	Hint() string
	HasHint() bool
	ShowingBack() bool
	ShowingHint() bool
	Flip()
	ToggleHint()
	Know()
	DontKnow()
	Apply(o training.Outcome)
	Loaded() bool
	Empty() bool
	Done() bool
	Progress() (int, int)
	Results() training.Results
	Close()
}

type trainLoadedMsg struct{ err error }

type trainScreen struct {
	env     env
	session trainer
	params  domain.TrainParams
	gesture *training.Gesture
	ppc     float64
	help    help.Model
	err     error
}

func newTrainScreen(e env, p domain.TrainParams) *trainScreen {
	sess := training.New(e.deps.API, nil, e.notify, e.deps.Log)
	sess.OnChange(e.changed)
	return newTrainScreenWith(e, sess, p)
}

func newTrainScreenWith(e env, sess trainer, p domain.TrainParams) *trainScreen {
	cfg := e.deps.Config.Training
	ppc := cfg.PixelsPerCell
	if ppc <= 0 {
		ppc = 8
	}
	return &trainScreen{
		env:     e,
		session: sess,
		params:  p,
		gesture: training.NewGesture(cfg.SwipeThreshold, cfg.TapThreshold),
		ppc:     ppc,
		help:    help.New(),
	}
}

func (s *trainScreen) Init() tea.Cmd {
	sess, ctx, p := s.session, s.env.ctx, s.params
	return func() tea.Msg { return trainLoadedMsg{err: sess.Load(ctx, p)} }
}

func (s *trainScreen) Close() { s.session.Close() }

func (s *trainScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case trainLoadedMsg:
		s.err = msg.err
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.MouseMsg:
		s.updateMouse(msg)
	case tea.KeyMsg:
		return s, s.updateKey(msg)
	}
	return s, nil
}

// updateMouse turns a horizontal drag into a swipe. Terminal cells are
// scaled to pixels so the thresholds match a pointer device.
func (s *trainScreen) updateMouse(m tea.MouseMsg) {
	if !s.session.Loaded() || s.session.Done() || s.session.Empty() {
		return
	}
	x := float64(m.X) * s.ppc
	switch {
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
		s.gesture.Down(x)
	case m.Action == tea.MouseActionMotion:
		s.gesture.Move(x)
	case m.Action == tea.MouseActionRelease:
		s.gesture.Move(x)
		s.session.Apply(s.gesture.Up())
	}
}

func (s *trainScreen) updateKey(k tea.KeyMsg) tea.Cmd {
	if key.Matches(k, trainKeys.Back) {
		return navigate(string(router.RouteCards))
	}
	if s.err != nil {
		if key.Matches(k, trainKeys.Restart) {
			s.err = nil
			return s.Init()
		}
		return nil
	}
	if !s.session.Loaded() {
		return nil
	}

	if s.session.Done() || s.session.Empty() {
		switch {
		case key.Matches(k, trainKeys.Settings):
			return navigate(string(router.RouteCards))
		case key.Matches(k, trainKeys.Restart):
			sess, ctx := s.session, s.env.ctx
			return func() tea.Msg { return trainLoadedMsg{err: sess.Restart(ctx)} }
		}
		return nil
	}

	s.gesture.Reset()
	switch {
	case key.Matches(k, trainKeys.Know):
		s.session.Know()
	case key.Matches(k, trainKeys.DontKnow):
		s.session.DontKnow()
	case key.Matches(k, trainKeys.Flip):
		s.session.Flip()
	case key.Matches(k, trainKeys.Hint):
		s.session.ToggleHint()
	}
	return nil
}

func (s *trainScreen) View() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Training") + "\n\n")

	switch {
	case s.err != nil:
		b.WriteString(styleError.Render(errorText(s.err)) + "\n\n")
		b.WriteString(s.help.ShortHelpView([]key.Binding{trainKeys.Restart, trainKeys.Back}))
		return b.String()
	case !s.session.Loaded():
		return b.String() + "Shuffling cards…"
	case s.session.Empty():
		b.WriteString("No cards match these settings.\n\n")
		b.WriteString(s.help.ShortHelpView([]key.Binding{trainKeys.Settings}))
		return b.String()
	case s.session.Done():
		return b.String() + s.viewResults()
	}

	pos, total := s.session.Progress()
	b.WriteString(styleSubtle.Render(fmt.Sprintf("Card %d of %d", pos, total)) + "\n\n")

	text, style := s.session.Front(), styleCard
	if s.session.ShowingBack() {
		text, style = s.session.Back(), styleCardBack
	}
	if s.session.HasHint() && s.session.ShowingHint() {
		text += "\n\n" + styleSubtle.Render(s.session.Hint())
	}
	card := style.Render(text)

	offset := int(s.gesture.Offset() / s.ppc)
	switch {
	case offset > 0:
		card = lipgloss.NewStyle().MarginLeft(min(offset, 20)).Render(card)
		if s.gesture.Offset() > s.env.deps.Config.Training.SwipeThreshold {
			card += styleOK.Render("  know")
		}
	case offset < 0 && s.gesture.Offset() < -s.env.deps.Config.Training.SwipeThreshold:
		card = styleError.Render("don't know  ") + card
	}
	b.WriteString(card + "\n\n")

	keys := []key.Binding{trainKeys.DontKnow, trainKeys.Flip, trainKeys.Know}
	if s.session.HasHint() {
		keys = append(keys, trainKeys.Hint)
	}
	b.WriteString(s.help.ShortHelpView(append(keys, trainKeys.Back)))
	return b.String()
}

func (s *trainScreen) viewResults() string {
	r := s.session.Results()
	var b strings.Builder
	b.WriteString(styleOK.Render("Done!") + "\n\n")
	b.WriteString(fmt.Sprintf("Cards:       %d\n", r.Total))
	b.WriteString(styleOK.Render(fmt.Sprintf("Know:        %d", r.Known)) + "\n")
	b.WriteString(styleError.Render(fmt.Sprintf("Don't know:  %d", r.Unknown)) + "\n\n")
	b.WriteString(s.help.ShortHelpView([]key.Binding{trainKeys.Settings, trainKeys.Restart}))
	return b.String()
}
