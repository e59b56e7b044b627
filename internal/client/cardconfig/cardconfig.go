// Package cardconfig edits the flashcard settings: which columns go on the
// front, back and hint, and which statuses and tables feed a session.
package cardconfig

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/lexitable/internal/client/debounce"
	"github.com/heartmarshall/lexitable/internal/domain"
)

type cardsAPI interface {
	GetCardSettings(ctx context.Context) (*domain.CardSettingsView, error)
	UpdateCardSettings(ctx context.Context, p domain.CardSettingsPatch) (*domain.CardSettingsView, error)
	CountWords(ctx context.Context, s domain.CardSettings) (int, error)
	ListWordSets(ctx context.Context) ([]domain.WordSet, error)
}

// Phase of the configurator.
type Phase int

const (
	Loading Phase = iota
	Ready
)

// Config holds the configurator timings.
type Config struct {
	AutosaveDelay time.Duration
	CountDelay    time.Duration
}

// View is an immutable snapshot for rendering.
type View struct {
	Phase    Phase
	Settings domain.CardSettings
	Columns  []domain.ColumnRef
	Tables   []domain.WordSet
	Count    int
	Counting bool
	Saving   bool
	Err      error
}

// Configurator is safe for concurrent use.
type Configurator struct {
	api   cardsAPI
	log   *slog.Logger
	save  *debounce.Debouncer
	count *debounce.Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	onChange func()
	phase    Phase
	settings domain.CardSettings
	columns  []domain.ColumnRef
	tables   []domain.WordSet
	words    int
	counting bool
	saving   bool
	err      error
	// edits counts local changes so a save response does not overwrite
	// newer ones.
	edits    uint64
	countSeq uint64
}

// New creates a configurator in the Loading phase. A nil clock means the
// real clock.
func New(api cardsAPI, cfg Config, clock clockwork.Clock, logger *slog.Logger) *Configurator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Configurator{
		api:      api,
		log:      logger.With("component", "cardconfig"),
		save:     debounce.New(cfg.AutosaveDelay, clock),
		count:    debounce.New(cfg.CountDelay, clock),
		ctx:      ctx,
		cancel:   cancel,
		settings: domain.DefaultCardSettings(uuid.Nil),
		columns:  domain.DefaultColumns(),
	}
}

// OnChange registers the callback invoked after every state change.
func (c *Configurator) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Close stops both timers. A pending autosave is dropped.
func (c *Configurator) Close() {
	c.save.Stop()
	c.count.Stop()
	c.cancel()
}

func (c *Configurator) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (c *Configurator) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Phase:    c.phase,
		Settings: c.settings,
		Columns:  slices.Clone(c.columns),
		Tables:   slices.Clone(c.tables),
		Count:    c.words,
		Counting: c.counting,
		Saving:   c.saving,
		Err:      c.err,
	}
}

// TrainParams returns the parameters of a session with the current
// settings.
func (c *Configurator) TrainParams() domain.TrainParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.TrainParams()
}

// Load fetches the settings and the table list and enters Ready.
func (c *Configurator) Load(ctx context.Context) error {
	view, err := c.api.GetCardSettings(ctx)
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		c.notify()
		return err
	}
	tables, err := c.api.ListWordSets(ctx)
	if err != nil {
		c.log.Warn("load tables", slog.String("error", err.Error()))
	}

	c.mu.Lock()
	c.applyLocked(view)
	c.tables = tables
	c.phase = Ready
	c.err = nil
	c.mu.Unlock()
	c.notify()

	c.scheduleCount()
	return nil
}

func (c *Configurator) applyLocked(view *domain.CardSettingsView) {
	c.columns = view.AvailableColumns()
	c.settings = view.Settings.Normalize(c.columns)
}

// edit applies fn in Ready and schedules the autosave and a count.
func (c *Configurator) edit(fn func(s domain.CardSettings) domain.CardSettings) {
	c.mu.Lock()
	if c.phase != Ready {
		c.mu.Unlock()
		return
	}
	c.settings = fn(c.settings)
	c.edits++
	c.saving = true
	c.mu.Unlock()
	c.notify()

	c.save.Trigger(func() { c.saveAll(c.ctx) })
	c.scheduleCount()
}

func (c *Configurator) SetFront(key string) {
	c.edit(func(s domain.CardSettings) domain.CardSettings { s.FrontKey = key; return s })
}

func (c *Configurator) SetBack(key string) {
	c.edit(func(s domain.CardSettings) domain.CardSettings { s.BackKey = key; return s })
}

// SetHint sets the hint column; nil means no hint.
func (c *Configurator) SetHint(key *string) {
	c.edit(func(s domain.CardSettings) domain.CardSettings {
		s.HintKey = nil
		if key != nil && *key != "" {
			h := *key
			s.HintKey = &h
		}
		return s
	})
}

func (c *Configurator) ToggleStatus(st domain.WordStatus) {
	c.edit(func(s domain.CardSettings) domain.CardSettings { s.Statuses = s.Statuses.Toggle(st); return s })
}

func (c *Configurator) ToggleStatusAll() {
	c.edit(func(s domain.CardSettings) domain.CardSettings { s.Statuses = s.Statuses.ToggleAll(); return s })
}

// ToggleTable switches one table and saves right away. The hint is reset
// because the available columns depend on the tables.
func (c *Configurator) ToggleTable(ctx context.Context, id int64) error {
	return c.changeTables(ctx, func(sel domain.Selection[int64]) domain.Selection[int64] { return sel.Toggle(id) })
}

func (c *Configurator) ToggleTableAll(ctx context.Context) error {
	return c.changeTables(ctx, func(sel domain.Selection[int64]) domain.Selection[int64] { return sel.ToggleAll() })
}

func (c *Configurator) changeTables(ctx context.Context, fn func(domain.Selection[int64]) domain.Selection[int64]) error {
	c.mu.Lock()
	if c.phase != Ready {
		c.mu.Unlock()
		return nil
	}
	tables := fn(c.settings.Tables)
	c.settings = c.settings.WithTables(tables)
	c.edits++
	edits := c.edits
	c.saving = true
	c.mu.Unlock()
	c.notify()
	c.scheduleCount()

	view, err := c.api.UpdateCardSettings(ctx, domain.CardSettingsPatch{Tables: &tables, ClearHint: true})

	c.mu.Lock()
	c.saving = c.save.Pending()
	if err != nil {
		c.err = err
	} else {
		c.err = nil
		if c.edits == edits {
			c.applyLocked(view)
		} else {
			c.columns = view.AvailableColumns()
		}
	}
	c.mu.Unlock()
	c.notify()
	return err
}

// saveAll sends the full settings.
func (c *Configurator) saveAll(ctx context.Context) {
	c.mu.Lock()
	s := c.settings
	edits := c.edits
	c.mu.Unlock()

	patch := domain.CardSettingsPatch{
		FrontKey: &s.FrontKey,
		BackKey:  &s.BackKey,
		HintKey:  s.HintKey,
		Statuses: &s.Statuses,
		Tables:   &s.Tables,
	}
	if s.HintKey == nil {
		patch.ClearHint = true
	}
	view, err := c.api.UpdateCardSettings(ctx, patch)

	c.mu.Lock()
	c.saving = c.save.Pending()
	if err != nil {
		c.err = err
		c.log.Warn("save card settings", slog.String("error", err.Error()))
	} else {
		c.err = nil
		if c.edits == edits {
			c.applyLocked(view)
		} else {
			c.columns = view.AvailableColumns()
		}
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Configurator) scheduleCount() {
	c.count.Trigger(func() { c.runCount(c.ctx) })
}

// runCount previews how many words the settings select. A failed count
// shows 0.
func (c *Configurator) runCount(ctx context.Context) {
	c.mu.Lock()
	c.countSeq++
	seq := c.countSeq
	s := c.settings
	c.counting = true
	c.mu.Unlock()
	c.notify()

	n, err := c.api.CountWords(ctx, s)
	if err != nil {
		c.log.Warn("count words", slog.String("error", err.Error()))
		n = 0
	}

	c.mu.Lock()
	if seq == c.countSeq {
		c.words = n
		c.counting = false
	}
	c.mu.Unlock()
	c.notify()
}
