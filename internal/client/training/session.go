// Package training runs a flashcard session over a shuffled deck.
package training

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/lexitable/internal/domain"
)

const submitTimeout = 10 * time.Second

type cardsAPI interface {
	TrainingCards(ctx context.Context, p domain.TrainParams) ([]domain.Word, error)
	SubmitAnswer(ctx context.Context, wordID int64, known bool) error
}

// Results is the tally of a session.
type Results struct {
	Total   int
	Known   int
	Unknown int
}

// Session is safe for concurrent use. Answers are sent in the background
// and never retried; failures go to the notifier.
type Session struct {
	api    cardsAPI
	rng    *rand.Rand
	notify func(error)
	log    *slog.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup

	mu       sync.Mutex
	onChange func()
	params   domain.TrainParams
	deck     []domain.Word
	index    int
	known    int
	unknown  int
	front    domain.FieldRef
	back     domain.FieldRef
	hint     *domain.FieldRef
	showBack bool
	showHint bool
	loaded   bool
}

// New creates a session. rng drives the shuffle; nil means a random seed.
// notify receives answer submission failures and must not block.
func New(api cardsAPI, rng *rand.Rand, notify func(error), logger *slog.Logger) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if notify == nil {
		notify = func(error) {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		api:    api,
		rng:    rng,
		notify: notify,
		log:    logger.With("component", "training"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// OnChange registers the callback invoked after every state change.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *Session) changed() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Load fetches the cards for p once, shuffles them and resets the
// counters. Column keys are resolved against the first card.
func (s *Session) Load(ctx context.Context, p domain.TrainParams) error {
	cards, err := s.api.TrainingCards(ctx, p)
	if err != nil {
		return fmt.Errorf("load training cards: %w", err)
	}

	// Fisher–Yates.
	s.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	s.mu.Lock()
	s.params = p
	s.deck = cards
	s.index, s.known, s.unknown = 0, 0, 0
	s.showBack, s.showHint = false, false
	s.front, s.back, s.hint = domain.FieldRef{}, domain.FieldRef{}, nil
	if len(cards) > 0 {
		first := cards[0]
		s.front = resolve(first, p.Front)
		s.back = resolve(first, p.Back)
		if p.Hint != nil {
			ref := resolve(first, *p.Hint)
			s.hint = &ref
		}
	}
	s.loaded = true
	s.mu.Unlock()
	s.changed()
	return nil
}

// resolve falls back to the requested key as a custom field when the
// first card does not carry it.
func resolve(w domain.Word, key string) domain.FieldRef {
	if key == "" {
		return domain.FieldRef{}
	}
	if ref, ok := domain.ResolveKey(w, key); ok {
		return ref
	}
	return domain.FieldRef{Key: key, Custom: true}
}

// Restart reloads the deck with the same parameters.
func (s *Session) Restart(ctx context.Context) error {
	s.mu.Lock()
	p := s.params
	s.mu.Unlock()
	return s.Load(ctx, p)
}

// Params returns the parameters of the loaded deck.
func (s *Session) Params() domain.TrainParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Current returns the card on top of the deck.
func (s *Session) Current() (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.deck) {
		return domain.Word{}, false
	}
	return s.deck[s.index], true
}

func (s *Session) display(ref domain.FieldRef) string {
	if s.index >= len(s.deck) {
		return domain.MissingValue
	}
	return domain.DisplayValue(s.deck[s.index], ref)
}

// Front returns the front of the current card, or the missing marker.
func (s *Session) Front() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display(s.front)
}

func (s *Session) Back() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display(s.back)
}

// HasHint reports whether the session shows hints at all.
func (s *Session) HasHint() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hint != nil
}

func (s *Session) Hint() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hint == nil {
		return domain.MissingValue
	}
	return s.display(*s.hint)
}

func (s *Session) ShowingBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showBack
}

func (s *Session) ShowingHint() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showHint
}

// Flip turns the current card over.
func (s *Session) Flip() {
	s.mu.Lock()
	if s.index >= len(s.deck) {
		s.mu.Unlock()
		return
	}
	s.showBack = !s.showBack
	s.mu.Unlock()
	s.changed()
}

// ToggleHint shows or hides the hint. It does not flip the card.
func (s *Session) ToggleHint() {
	s.mu.Lock()
	if s.index >= len(s.deck) || s.hint == nil {
		s.mu.Unlock()
		return
	}
	s.showHint = !s.showHint
	s.mu.Unlock()
	s.changed()
}

func (s *Session) Know()     { s.answer(true) }
func (s *Session) DontKnow() { s.answer(false) }

// Apply performs the action a finished gesture stands for.
func (s *Session) Apply(o Outcome) {
	switch o {
	case Flip:
		s.Flip()
	case Know:
		s.Know()
	case DontKnow:
		s.DontKnow()
	}
}

func (s *Session) answer(known bool) {
	s.mu.Lock()
	if s.index >= len(s.deck) {
		s.mu.Unlock()
		return
	}
	word := s.deck[s.index]
	if known {
		s.known++
	} else {
		s.unknown++
	}
	s.index++
	s.showBack, s.showHint = false, false
	s.mu.Unlock()
	s.changed()

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(s.ctx, submitTimeout)
		defer cancel()
		if err := s.api.SubmitAnswer(ctx, word.ID, known); err != nil {
			s.log.Warn("submit answer", slog.Int64("word_id", word.ID), slog.String("error", err.Error()))
			s.notify(fmt.Errorf("answer for %q was not saved: %w", word.Original, err))
		}
	}()
}

// Loaded reports whether a deck has been fetched.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Empty reports whether the loaded deck has no cards.
func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && len(s.deck) == 0
}

// Done reports whether every card has been answered.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && len(s.deck) > 0 && s.index == len(s.deck)
}

// Progress returns the 1-based position of the current card and the deck
// size.
func (s *Session) Progress() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min(s.index+1, len(s.deck)), len(s.deck)
}

func (s *Session) Results() Results {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Results{Total: len(s.deck), Known: s.known, Unknown: s.unknown}
}

// Wait blocks until submitted answers have settled.
func (s *Session) Wait() {
	s.pending.Wait()
}

// Close abandons answers still in flight.
func (s *Session) Close() {
	s.cancel()
}
