package storefront

import (
	"context"
	"fmt"
	"sync"

	"auction-storefront/internal/listing"
	"auction-storefront/internal/models"
	"auction-storefront/internal/selection"
	"auction-storefront/utils"

	"golang.org/x/sync/errgroup"
)

const defaultImageLookups = 4

// Listing is the auction list view model: a dataset snapshot fetched once per
// refresh, the active filters and the bulk-close selection.
type Listing struct {
	api              AuctionAPI
	closeConcurrency int

	dataset   []models.Auction
	params    listing.Params
	selection *selection.Set
}

// ListingOption configures a Listing
type ListingOption func(*Listing)

// WithCloseConcurrency bounds how many close requests a bulk close keeps in
// flight. The default of 1 issues them one after another.
func WithCloseConcurrency(n int) ListingOption {
	return func(l *Listing) {
		if n > 0 {
			l.closeConcurrency = n
		}
	}
}

// NewListing creates an empty Listing; call Refresh to load it
func NewListing(api AuctionAPI, opts ...ListingOption) *Listing {
	l := &Listing{
		api:              api,
		closeConcurrency: 1,
		selection:        selection.New(nil),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Refresh fetches the dataset and prunes the selection against it. On failure
// the previous dataset is kept. Results arriving after ctx is done are discarded.
func (l *Listing) Refresh(ctx context.Context) error {
	auctions, err := l.api.ListAuctions(ctx)
	if err != nil {
		return fmt.Errorf("storefront: refresh listing: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storefront: refresh listing discarded: %w", err)
	}

	l.dataset = auctions
	l.selection.Prune(auctions)
	return nil
}

// Dataset returns a copy of the unfiltered snapshot
func (l *Listing) Dataset() []models.Auction {
	return append([]models.Auction(nil), l.dataset...)
}

func (l *Listing) Params() listing.Params {
	return l.params
}

func (l *Listing) SetParams(p listing.Params) {
	l.params = p
}

// View is the derived list for the current dataset and filters
func (l *Listing) View() []models.Auction {
	return listing.Apply(l.dataset, l.params)
}

// ObservedPrices returns the price slider bounds of the full dataset
func (l *Listing) ObservedPrices() (listing.PriceRange, bool) {
	return listing.ObservedRange(l.dataset)
}

// EffectivePrices returns the clamped range the view is filtered by
func (l *Listing) EffectivePrices() (listing.PriceRange, bool) {
	observed, ok := l.ObservedPrices()
	if !ok {
		return listing.PriceRange{}, false
	}
	return listing.Clamp(l.params, observed), true
}

// Types lists the product types present in the dataset
func (l *Listing) Types() []models.ProductType {
	return listing.Types(l.dataset)
}

// Selection exposes the bulk-close selection
func (l *Listing) Selection() *selection.Set {
	return l.selection
}

// ResolveImages looks up image URLs for every auction in view that has one.
// Lookups run concurrently; failed lookups are logged and left out.
func (l *Listing) ResolveImages(ctx context.Context) map[int64]string {
	var (
		mu   sync.Mutex
		urls = make(map[int64]string)
	)

	g := &errgroup.Group{}
	g.SetLimit(defaultImageLookups)
	for _, a := range l.View() {
		if !a.HasImage() {
			continue
		}
		id := a.ID
		g.Go(func() error {
			image, err := l.api.GetImageURL(ctx, id)
			if err != nil {
				utils.Debug("storefront: image lookup failed", map[string]any{"auction_id": id, "error": err.Error()})
				return nil
			}
			mu.Lock()
			urls[id] = image.ImageURL
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return map[int64]string{}
	}
	return urls
}
