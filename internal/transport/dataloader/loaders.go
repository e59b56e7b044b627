package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// newWordCountBatchFn counts words per set. Sets without words, and sets the
// caller does not own, count as zero.
func newWordCountBatchFn(repo wordSetRepo) dataloader.BatchFunc[int64, int] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[int] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[int](len(keys), domain.ErrUnauthorized)
		}

		counts, err := repo.CountWords(ctx, userID, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}
		return mapResults(keys, counts, zero[int])
	}
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[K comparable, V any](keys []K, grouped map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func zero[V any]() V {
	var v V
	return v
}

// LoadWordCounts resolves the word count of every set in one batch and
// returns them in input order.
func LoadWordCounts(ctx context.Context, setIDs []int64) ([]int, error) {
	if len(setIDs) == 0 {
		return []int{}, nil
	}
	thunk := FromContext(ctx).WordCountBySetID.LoadMany(ctx, setIDs)
	counts, errs := thunk()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}
