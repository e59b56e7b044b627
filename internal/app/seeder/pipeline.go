// Package seeder creates a demo account with a starter word set so a fresh
// installation has something to train on.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/domain"
	authsvc "github.com/heartmarshall/lexitable/internal/service/auth"
	"github.com/heartmarshall/lexitable/internal/service/vocab"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"account", "vocab"}

type accountService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
}

type vocabService interface {
	ListWordSets(ctx context.Context) ([]domain.WordSet, error)
	CreateWordSet(ctx context.Context, input vocab.CreateWordSetInput) (*domain.WordSet, error)
	AddWord(ctx context.Context, setID int64, input vocab.AddWordInput) (*domain.Word, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline runs the seeding phases in order. The vocab phase needs the user
// resolved by the account phase.
type Pipeline struct {
	log      *slog.Logger
	accounts accountService
	vocab    vocabService
	cfg      Config
	userID   uuid.UUID
	results  map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, accounts accountService, words vocabService, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		accounts: accounts,
		vocab:    words,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the requested phases (all when empty) in canonical order.
// A failed phase stops the pipeline.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	for _, name := range phases {
		if !slices.Contains(allPhases, name) {
			return fmt.Errorf("unknown phase %q", name)
		}
	}
	if len(phases) == 0 {
		phases = allPhases
	}
	if slices.Contains(phases, "vocab") && !slices.Contains(phases, "account") {
		// The vocab phase always needs the account.
		phases = append([]string{"account"}, phases...)
	}

	for _, name := range allPhases {
		if !slices.Contains(phases, name) {
			continue
		}

		start := time.Now()
		var res PhaseResult
		switch name {
		case "account":
			res = p.runAccount(ctx)
		case "vocab":
			res = p.runVocab(ctx)
		}
		res.Duration = time.Since(start)
		p.results[name] = res

		p.log.Info("phase finished",
			slog.String("phase", name),
			slog.Int("inserted", res.Inserted),
			slog.Int("skipped", res.Skipped),
			slog.Int("errors", res.Errors),
			slog.Duration("duration", res.Duration))

		if res.Err != nil {
			return fmt.Errorf("phase %s: %w", name, res.Err)
		}
	}
	return nil
}

func (p *Pipeline) runAccount(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		p.log.Info("dry run: would ensure demo account", slog.String("email", p.cfg.Email))
		return PhaseResult{Skipped: 1}
	}

	res, err := p.accounts.Register(ctx, authsvc.RegisterInput{
		Email:    p.cfg.Email,
		Password: p.cfg.Password,
		Name:     p.cfg.Name,
	})
	if err == nil {
		p.userID = res.User.ID
		return PhaseResult{Inserted: 1}
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return PhaseResult{Errors: 1, Err: err}
	}

	res, err = p.accounts.LoginWithPassword(ctx, authsvc.LoginPasswordInput{
		Email:    p.cfg.Email,
		Password: p.cfg.Password,
	})
	if err != nil {
		return PhaseResult{Errors: 1, Err: fmt.Errorf("demo account exists but sign-in failed: %w", err)}
	}
	p.userID = res.User.ID
	return PhaseResult{Skipped: 1}
}

func (p *Pipeline) runVocab(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		p.log.Info("dry run: would create word set",
			slog.String("title", p.cfg.SetTitle),
			slog.Int("words", len(sampleWords)))
		return PhaseResult{Skipped: len(sampleWords)}
	}

	ctx = ctxutil.WithUserID(ctx, p.userID)

	sets, err := p.vocab.ListWordSets(ctx)
	if err != nil {
		return PhaseResult{Errors: 1, Err: err}
	}
	if slices.ContainsFunc(sets, func(s domain.WordSet) bool { return s.Title == p.cfg.SetTitle }) {
		return PhaseResult{Skipped: len(sampleWords)}
	}

	set, err := p.vocab.CreateWordSet(ctx, vocab.CreateWordSetInput{
		Title:    p.cfg.SetTitle,
		Template: domain.TemplateBasic,
	})
	if err != nil {
		return PhaseResult{Errors: 1, Err: err}
	}

	var res PhaseResult
	for _, w := range sampleWords {
		_, err := p.vocab.AddWord(ctx, set.ID, vocab.AddWordInput{
			Original:     w.original,
			Translation:  w.translation,
			Status:       w.status,
			CustomFields: map[string]string{"example": w.example},
		})
		if err != nil {
			res.Errors++
			p.log.Warn("add sample word", slog.String("word", w.original), slog.String("error", err.Error()))
			continue
		}
		res.Inserted++
	}
	return res
}
