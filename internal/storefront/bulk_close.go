package storefront

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/utils"

	"golang.org/x/sync/errgroup"
)

// BulkCloseResult reports the outcome of closing the selected auctions
type BulkCloseResult struct {
	Requested int
	Succeeded int
	Failed    int
	FailedIDs []int64
	// Errors maps a failed id to the backend message
	Errors map[int64]string
}

// CloseSelected issues one close request per selected auction without
// stopping at the first failure, then re-fetches the dataset once and clears
// the selection. The returned error is only set when that re-fetch fails; the
// per-auction outcome is always in the result.
func (l *Listing) CloseSelected(ctx context.Context) (BulkCloseResult, error) {
	ids := l.selection.IDs()
	result := BulkCloseResult{Requested: len(ids), FailedIDs: []int64{}, Errors: map[int64]string{}}
	if len(ids) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	g := &errgroup.Group{}
	g.SetLimit(l.closeConcurrency)
	for _, id := range ids {
		id := id // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			_, err := l.api.CloseAuction(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.FailedIDs = append(result.FailedIDs, id)
				result.Errors[id] = auctionerrors.Message(err)
				utils.Warn("storefront: close auction failed", map[string]any{"auction_id": id, "error": err.Error()})
				return nil
			}
			result.Succeeded++
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.FailedIDs, func(i, j int) bool { return result.FailedIDs[i] < result.FailedIDs[j] })
	result.Failed = len(result.FailedIDs)

	utils.Info("storefront: bulk close finished", map[string]any{
		"requested": result.Requested,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	})

	refreshErr := l.Refresh(ctx)
	l.selection.Clear()
	if refreshErr != nil {
		return result, fmt.Errorf("storefront: bulk close: %w", refreshErr)
	}
	return result, nil
}
