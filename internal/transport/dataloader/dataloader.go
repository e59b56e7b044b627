// Package dataloader provides per-request DataLoaders that batch lookups
// made while rendering one response into single SQL calls. Loaders call
// repositories directly; ownership is enforced by the repositories' user_id
// filters.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type wordSetRepo interface {
	CountWords(ctx context.Context, userID uuid.UUID, setIDs []int64) (map[int64]int, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	WordSet wordSetRepo
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	WordCountBySetID *dataloader.Loader[int64, int]
}

// NewLoaders creates a new set of loaders. Must be called per request:
// loaders cache results for their whole lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		WordCountBySetID: newLoader(newWordCountBatchFn(repos.WordSet)),
	}
}

func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
