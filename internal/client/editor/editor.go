// Package editor drives the vocabulary table: set selection, paginated and
// filtered word listing, column management, draft rows and cell edits.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/lexitable/internal/client/debounce"
	"github.com/heartmarshall/lexitable/internal/client/lexiapi"
	"github.com/heartmarshall/lexitable/internal/client/querycache"
	"github.com/heartmarshall/lexitable/internal/domain"
)

type vocabAPI interface {
	ListWordSets(ctx context.Context) ([]domain.WordSet, error)
	CreateWordSet(ctx context.Context, in lexiapi.NewWordSet) (*domain.WordSet, error)
	UpdateWordSet(ctx context.Context, id int64, in lexiapi.WordSetUpdate) (*domain.WordSet, error)
	DeleteWordSet(ctx context.Context, id int64) error
	GetWordSetPage(ctx context.Context, id int64, q lexiapi.PageQuery) (*domain.WordSetPage, error)
	AddWord(ctx context.Context, setID int64, w domain.TempWord) (*domain.Word, error)
	UpdateWord(ctx context.Context, id int64, p domain.WordPatch) (*domain.Word, error)
	DeleteWord(ctx context.Context, id int64) error
}

// Config holds the editor timings.
type Config struct {
	PageSize       int
	SearchDebounce time.Duration
}

// listing is the accumulated pages of one set under one filter.
type listing struct {
	SetID   int64
	Title   string
	Columns []domain.ColumnDef
	Words   []domain.Word
	HasMore bool
	Total   int
}

func (l listing) Clone() listing {
	l.Columns = slices.Clone(l.Columns)
	words := make([]domain.Word, len(l.Words))
	for i, w := range l.Words {
		words[i] = w.Clone()
	}
	l.Words = words
	return l
}

func (l listing) word(id int64) (domain.Word, bool) {
	i := slices.IndexFunc(l.Words, func(w domain.Word) bool { return w.ID == id })
	if i < 0 {
		return domain.Word{}, false
	}
	return l.Words[i], true
}

// View is an immutable snapshot for rendering.
type View struct {
	Sets         []domain.WordSet
	ActiveSetID  int64
	Title        string
	Columns      []domain.ColumnDef
	Words        []domain.Word
	TempRows     []domain.TempWord
	Total        int
	HasMore      bool
	Search       string
	StatusFilter *domain.WordStatus
	Loading      bool
	LoadingMore  bool
	Err          error
}

// Editor is safe for concurrent use. Network calls are made without
// holding the lock; responses for a set or filter that is no longer active
// are cached but not shown.
type Editor struct {
	api    vocabAPI
	cache  *querycache.Cache
	log    *slog.Logger
	cfg    Config
	search *debounce.Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	onChange      func()
	sets          []domain.WordSet
	active        int64
	searchText    string
	appliedSearch string
	status        *domain.WordStatus
	current       listing
	temps         []domain.TempWord
	loading       bool
	loadingMore   bool
	err           error
}

// New creates an editor. A nil clock means the real clock.
func New(api vocabAPI, cache *querycache.Cache, cfg Config, clock clockwork.Clock, logger *slog.Logger) *Editor {
	if cfg.PageSize <= 0 {
		cfg.PageSize = domain.PageSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Editor{
		api:    api,
		cache:  cache,
		log:    logger.With("component", "editor"),
		cfg:    cfg,
		search: debounce.New(cfg.SearchDebounce, clock),
		ctx:    ctx,
		cancel: cancel,
	}
}

// OnChange registers the callback invoked after every state change.
func (e *Editor) OnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// Close stops the search timer and abandons background work.
func (e *Editor) Close() {
	e.search.Stop()
	e.cancel()
}

func (e *Editor) notify() {
	e.mu.Lock()
	fn := e.onChange
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// View returns a snapshot of the editor state.
func (e *Editor) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.current.Clone()
	v := View{
		Sets:        slices.Clone(e.sets),
		ActiveSetID: e.active,
		Title:       cur.Title,
		Columns:     cur.Columns,
		Words:       cur.Words,
		TempRows:    slices.Clone(e.temps),
		Total:       cur.Total,
		HasMore:     cur.HasMore,
		Search:      e.searchText,
		Loading:     e.loading,
		LoadingMore: e.loadingMore,
		Err:         e.err,
	}
	if e.status != nil {
		st := *e.status
		v.StatusFilter = &st
	}
	return v
}

func (e *Editor) setErr(err error) {
	e.mu.Lock()
	e.err = err
	e.mu.Unlock()
	e.notify()
}

// pageKeyLocked identifies the listing of the active set and filter.
func (e *Editor) pageKeyLocked() querycache.Key {
	params := map[string]string{"search": e.appliedSearch}
	if e.status != nil {
		params["status"] = e.status.String()
	}
	return querycache.NewKey(querycache.KindWordSetPage, e.active, params)
}

func (e *Editor) queryLocked(offset, limit int) lexiapi.PageQuery {
	q := lexiapi.PageQuery{Offset: offset, Limit: limit, Search: e.appliedSearch}
	if e.status != nil {
		st := *e.status
		q.Status = &st
	}
	return q
}

// LoadSets fetches the user's word sets.
func (e *Editor) LoadSets(ctx context.Context) error {
	key := querycache.NewKey(querycache.KindWordSets, 0, nil)
	if sets, ok := querycache.Get[[]domain.WordSet](e.cache, key); ok {
		e.mu.Lock()
		e.sets = sets
		e.mu.Unlock()
		e.notify()
		return nil
	}

	sets, err := e.api.ListWordSets(ctx)
	if err != nil {
		e.setErr(err)
		return err
	}
	querycache.Set(e.cache, key, sets)

	e.mu.Lock()
	e.sets = sets
	e.err = nil
	e.mu.Unlock()
	e.notify()
	return nil
}

func (e *Editor) reloadSets(ctx context.Context) {
	e.cache.InvalidateKind(querycache.KindWordSets)
	if err := e.LoadSets(ctx); err != nil {
		e.log.Warn("reload word sets", slog.String("error", err.Error()))
	}
}

// SelectSet makes id the active set. Draft rows, search text and the status
// filter are reset and a pending search is dropped.
func (e *Editor) SelectSet(ctx context.Context, id int64) error {
	e.search.Cancel()

	e.mu.Lock()
	e.active = id
	e.temps = nil
	e.searchText = ""
	e.appliedSearch = ""
	e.status = nil
	e.current = listing{SetID: id}
	e.err = nil
	e.mu.Unlock()

	return e.fetchFirst(ctx, false)
}

// fetchFirst shows the first page of the active listing. A fresh cached
// listing is shown without a request unless force is set.
func (e *Editor) fetchFirst(ctx context.Context, force bool) error {
	e.mu.Lock()
	if e.active == 0 {
		e.mu.Unlock()
		return nil
	}
	key := e.pageKeyLocked()
	if !force {
		if l, ok := querycache.Get[listing](e.cache, key); ok {
			e.current = l
			e.loading = false
			e.mu.Unlock()
			e.notify()
			return nil
		}
	}
	setID := e.active
	want := e.cfg.PageSize
	if force {
		// Keep what was already scrolled into view.
		want = max(want, len(e.current.Words))
	}
	q := e.queryLocked(0, e.cfg.PageSize)
	e.loading = true
	e.mu.Unlock()
	e.notify()

	page, err := e.fetchRange(ctx, setID, q, want)

	e.mu.Lock()
	stale := e.active != setID || e.pageKeyLocked() != key
	if err != nil {
		if !stale {
			e.loading = false
			e.err = err
		}
		e.mu.Unlock()
		e.notify()
		return err
	}

	l := listing{
		SetID:   setID,
		Title:   page.Title,
		Columns: page.CustomColumns,
		Words:   page.Words,
		HasMore: page.HasMore,
		Total:   page.Total,
	}
	querycache.Set(e.cache, key, l)
	if !stale {
		e.current = l
		e.loading = false
		if !force {
			e.err = nil
		}
		if q.Search == "" && q.Status == nil {
			e.syncSetTotalLocked(setID, page.Total)
		}
	}
	e.mu.Unlock()
	e.notify()
	return nil
}

// fetchRange reads the listing from q.Offset in page-sized requests until
// want rows are collected or the server has no more.
func (e *Editor) fetchRange(ctx context.Context, setID int64, q lexiapi.PageQuery, want int) (*domain.WordSetPage, error) {
	var acc *domain.WordSetPage
	for {
		page, err := e.api.GetWordSetPage(ctx, setID, q)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			first := *page
			first.Words = slices.Clone(page.Words)
			acc = &first
		} else {
			acc.Words = append(acc.Words, page.Words...)
			acc.HasMore = page.HasMore
			acc.Total = page.Total
		}
		if !page.HasMore || len(page.Words) == 0 || len(acc.Words) >= want {
			return acc, nil
		}
		q.Offset += len(page.Words)
	}
}

func (e *Editor) syncSetTotalLocked(setID int64, total int) {
	for i := range e.sets {
		if e.sets[i].ID == setID {
			e.sets[i].Total = total
		}
	}
}

// LoadMore appends the next page of the active listing.
func (e *Editor) LoadMore(ctx context.Context) error {
	e.mu.Lock()
	if e.active == 0 || !e.current.HasMore || e.loadingMore || e.loading {
		e.mu.Unlock()
		return nil
	}
	key := e.pageKeyLocked()
	setID := e.active
	q := e.queryLocked(len(e.current.Words), e.cfg.PageSize)
	e.loadingMore = true
	e.mu.Unlock()
	e.notify()

	page, err := e.api.GetWordSetPage(ctx, setID, q)

	e.mu.Lock()
	stale := e.active != setID || e.pageKeyLocked() != key
	if !stale {
		e.loadingMore = false
	}
	if err != nil {
		if !stale {
			e.err = err
		}
		e.mu.Unlock()
		e.notify()
		return err
	}
	if !stale {
		next := e.current.Clone()
		next.Words = append(next.Words, page.Words...)
		next.HasMore = page.HasMore
		next.Total = page.Total
		e.current = next
		e.err = nil
		querycache.Set(e.cache, key, next)
	}
	e.mu.Unlock()
	e.notify()
	return nil
}

// SetSearch records the typed text and refetches once typing pauses.
func (e *Editor) SetSearch(text string) {
	e.mu.Lock()
	e.searchText = text
	e.mu.Unlock()
	e.notify()

	e.search.Trigger(func() {
		e.mu.Lock()
		e.appliedSearch = strings.TrimSpace(text)
		e.mu.Unlock()
		if err := e.fetchFirst(e.ctx, false); err != nil && !errors.Is(err, context.Canceled) {
			e.log.Warn("search", slog.String("error", err.Error()))
		}
	})
}

// FlushSearch applies pending search text immediately.
func (e *Editor) FlushSearch() {
	e.search.Flush()
}

// SetStatusFilter changes the status filter; nil shows every status.
func (e *Editor) SetStatusFilter(ctx context.Context, status *domain.WordStatus) error {
	e.mu.Lock()
	if status != nil {
		st := *status
		status = &st
	}
	e.status = status
	e.mu.Unlock()
	return e.fetchFirst(ctx, false)
}

// ClearFilters drops search text and the status filter.
func (e *Editor) ClearFilters(ctx context.Context) error {
	e.search.Cancel()
	e.mu.Lock()
	e.searchText = ""
	e.appliedSearch = ""
	e.status = nil
	e.mu.Unlock()
	return e.fetchFirst(ctx, false)
}

// CreateSet creates a set from the minimal template and makes it active.
func (e *Editor) CreateSet(ctx context.Context, title string) (*domain.WordSet, error) {
	title = domain.NormalizeTitle(title)
	if title == "" {
		return nil, domain.NewValidationError("title", "required")
	}
	set, err := e.api.CreateWordSet(ctx, lexiapi.NewWordSet{Title: title, Template: domain.TemplateMinimal})
	if err != nil {
		e.setErr(err)
		return nil, err
	}
	e.reloadSets(ctx)
	if err := e.SelectSet(ctx, set.ID); err != nil {
		return set, err
	}
	return set, nil
}

// RenameSet changes the title of the active set.
func (e *Editor) RenameSet(ctx context.Context, title string) error {
	title = domain.NormalizeTitle(title)
	if title == "" {
		return domain.NewValidationError("title", "required")
	}
	e.mu.Lock()
	id := e.active
	e.mu.Unlock()
	if id == 0 {
		return nil
	}

	set, err := e.api.UpdateWordSet(ctx, id, lexiapi.WordSetUpdate{Title: &title})
	if err != nil {
		e.setErr(err)
		return err
	}

	e.mu.Lock()
	for i := range e.sets {
		if e.sets[i].ID == id {
			e.sets[i].Title = set.Title
		}
	}
	if e.active == id {
		e.current.Title = set.Title
	}
	e.mu.Unlock()
	e.cache.InvalidateKind(querycache.KindWordSets)
	e.cache.InvalidateResource(querycache.KindWordSetPage, id)
	e.notify()
	return nil
}

// DeleteSet removes the active set and leaves nothing selected.
func (e *Editor) DeleteSet(ctx context.Context) error {
	e.mu.Lock()
	id := e.active
	e.mu.Unlock()
	if id == 0 {
		return nil
	}
	if err := e.api.DeleteWordSet(ctx, id); err != nil {
		e.setErr(err)
		return err
	}

	e.search.Cancel()
	e.mu.Lock()
	if e.active == id {
		e.active = 0
		e.current = listing{}
		e.temps = nil
	}
	e.mu.Unlock()
	e.cache.InvalidateResource(querycache.KindWordSetPage, id)
	e.reloadSets(ctx)
	return nil
}

// AddColumn appends a custom column named name to the active set. It
// reports false without a request when the derived key is empty or
// already taken by a fixed or custom column.
func (e *Editor) AddColumn(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	key := domain.DeriveColumnKey(name)

	e.mu.Lock()
	id := e.active
	set := domain.WordSet{CustomColumns: e.current.Columns}
	cols := slices.Clone(e.current.Columns)
	e.mu.Unlock()

	if id == 0 || key == "" || set.HasColumn(key) {
		return false, nil
	}
	cols = append(cols, domain.NewColumnDef(name))
	if err := e.saveColumns(ctx, id, cols); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveColumn drops a custom column definition. Values already stored
// under the key stay on the words but are no longer shown.
func (e *Editor) RemoveColumn(ctx context.Context, key string) error {
	e.mu.Lock()
	id := e.active
	cols := slices.DeleteFunc(slices.Clone(e.current.Columns), func(c domain.ColumnDef) bool { return c.Key == key })
	unchanged := len(cols) == len(e.current.Columns)
	e.mu.Unlock()

	if id == 0 || unchanged {
		return nil
	}
	return e.saveColumns(ctx, id, cols)
}

func (e *Editor) saveColumns(ctx context.Context, id int64, cols []domain.ColumnDef) error {
	if cols == nil {
		cols = []domain.ColumnDef{}
	}
	set, err := e.api.UpdateWordSet(ctx, id, lexiapi.WordSetUpdate{CustomColumns: cols})
	if err != nil {
		e.setErr(err)
		return err
	}

	e.mu.Lock()
	if e.active == id {
		e.current.Columns = set.CustomColumns
	}
	e.mu.Unlock()
	e.cache.InvalidateResource(querycache.KindWordSetPage, id)
	e.cache.InvalidateKind(querycache.KindWordSets)
	e.notify()
	return nil
}

// AddTempRow appends an empty draft row and returns its id.
func (e *Editor) AddTempRow() string {
	e.mu.Lock()
	if e.active == 0 {
		e.mu.Unlock()
		return ""
	}
	id := uuid.NewString()
	e.temps = append(e.temps, domain.TempWord{
		TempID:       id,
		Status:       domain.WordStatusNew,
		CustomFields: map[string]string{},
	})
	e.mu.Unlock()
	e.notify()
	return id
}

// EditTempRow sets one field of a draft row.
func (e *Editor) EditTempRow(tempID, key, value string) {
	e.mu.Lock()
	i := e.tempIndexLocked(tempID)
	if i < 0 {
		e.mu.Unlock()
		return
	}
	t := e.temps[i]
	switch key {
	case domain.KeyOriginal:
		t.Original = value
	case domain.KeyTranslation:
		t.Translation = value
	case domain.KeyStatus:
		if st, err := domain.ParseWordStatus(value); err == nil {
			t.Status = st
		}
	default:
		fields := make(map[string]string, len(t.CustomFields)+1)
		for k, v := range t.CustomFields {
			fields[k] = v
		}
		fields[key] = value
		t.CustomFields = fields
	}
	e.temps[i] = t
	e.mu.Unlock()
	e.notify()
}

// SaveTempRow persists a draft row. A draft without original or
// translation is rejected before any request.
func (e *Editor) SaveTempRow(ctx context.Context, tempID string) error {
	e.mu.Lock()
	i := e.tempIndexLocked(tempID)
	if i < 0 {
		e.mu.Unlock()
		return fmt.Errorf("draft row %s: %w", tempID, domain.ErrNotFound)
	}
	t := e.temps[i]
	setID := e.active
	e.mu.Unlock()

	if err := t.Validate(); err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = domain.WordStatusNew
	}
	if _, err := e.api.AddWord(ctx, setID, t); err != nil {
		e.setErr(err)
		return err
	}

	e.mu.Lock()
	if j := e.tempIndexLocked(tempID); j >= 0 {
		e.temps = slices.Delete(e.temps, j, j+1)
	}
	e.mu.Unlock()
	e.settle(ctx, setID)
	return nil
}

// DiscardTempRow drops a draft row.
func (e *Editor) DiscardTempRow(tempID string) {
	e.mu.Lock()
	if i := e.tempIndexLocked(tempID); i >= 0 {
		e.temps = slices.Delete(e.temps, i, i+1)
	}
	e.mu.Unlock()
	e.notify()
}

func (e *Editor) tempIndexLocked(tempID string) int {
	return slices.IndexFunc(e.temps, func(t domain.TempWord) bool { return t.TempID == tempID })
}

// CommitCell saves an edited cell when focus leaves it. Nothing is sent
// when value equals the last value known from the server. It reports
// whether a request was made.
func (e *Editor) CommitCell(ctx context.Context, wordID int64, field, value string) (bool, error) {
	e.mu.Lock()
	w, ok := e.current.word(wordID)
	e.mu.Unlock()
	if !ok || field == domain.KeyStatus {
		return false, nil
	}
	if cur, _ := w.Field(field); cur == value {
		return false, nil
	}
	return true, e.patchWord(ctx, wordID, domain.PatchForField(field, value))
}

// UpdateStatus changes a word's status optimistically.
func (e *Editor) UpdateStatus(ctx context.Context, wordID int64, status domain.WordStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError(domain.KeyStatus, "invalid status "+status.String())
	}
	return e.patchWord(ctx, wordID, domain.WordPatch{Status: &status})
}

func (e *Editor) patchWord(ctx context.Context, wordID int64, patch domain.WordPatch) error {
	setID, undo := e.optimistic(func(l listing) listing {
		for i, w := range l.Words {
			if w.ID == wordID {
				l.Words[i] = patch.Apply(w)
			}
		}
		return l
	})

	_, err := e.api.UpdateWord(ctx, wordID, patch)
	if err != nil {
		undo()
		e.setErr(err)
	}
	e.settle(ctx, setID)
	return err
}

// DeleteWord removes a word optimistically; the total drops with it.
func (e *Editor) DeleteWord(ctx context.Context, wordID int64) error {
	setID, undo := e.optimistic(func(l listing) listing {
		n := len(l.Words)
		l.Words = slices.DeleteFunc(l.Words, func(w domain.Word) bool { return w.ID == wordID })
		if len(l.Words) < n {
			l.Total--
		}
		return l
	})

	err := e.api.DeleteWord(ctx, wordID)
	if err != nil {
		undo()
		e.setErr(err)
	}
	e.settle(ctx, setID)
	return err
}

// optimistic applies fn to the shown listing through the cache and returns
// an undo that restores the listing seen before.
func (e *Editor) optimistic(fn func(listing) listing) (int64, func()) {
	e.mu.Lock()
	key := e.pageKeyLocked()
	setID := e.active
	querycache.Set(e.cache, key, e.current)
	next, rollback, _ := querycache.Mutate(e.cache, key, fn)
	e.current = next
	e.mu.Unlock()
	e.notify()

	return setID, func() {
		rollback()
		e.mu.Lock()
		if e.pageKeyLocked() == key {
			if l, ok := querycache.Get[listing](e.cache, key); ok {
				e.current = l
			}
		}
		e.mu.Unlock()
		e.notify()
	}
}

// settle drops every cached listing of the set and refetches the active
// one. A failed refetch keeps the last shown listing.
func (e *Editor) settle(ctx context.Context, setID int64) {
	e.cache.InvalidateResource(querycache.KindWordSetPage, setID)

	e.mu.Lock()
	active := e.active == setID
	e.mu.Unlock()
	if !active {
		return
	}
	if err := e.fetchFirst(ctx, true); err != nil {
		e.log.Warn("refetch word set", slog.Int64("set_id", setID), slog.String("error", err.Error()))
	}
}
