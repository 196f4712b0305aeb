package storefront

import (
	"context"
	"errors"
	"fmt"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"auction-storefront/utils"
)

// Carousel cycles through an auction's images
type Carousel struct {
	urls  []string
	index int
}

// NewCarousel creates a carousel over urls, starting at the first
func NewCarousel(urls ...string) *Carousel {
	return &Carousel{urls: append([]string(nil), urls...)}
}

func (c *Carousel) Len() int {
	return len(c.urls)
}

func (c *Carousel) Index() int {
	return c.index
}

// Current returns the shown image, false when there are none
func (c *Carousel) Current() (string, bool) {
	if len(c.urls) == 0 {
		return "", false
	}
	return c.urls[c.index], true
}

// Next advances, wrapping to the first image
func (c *Carousel) Next() {
	if len(c.urls) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.urls)
}

// Prev steps back, wrapping to the last image
func (c *Carousel) Prev() {
	if len(c.urls) == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.urls)) % len(c.urls)
}

// Detail is the single-auction view model: the auction, its images and a bid form
type Detail struct {
	api     AuctionAPI
	auction *models.Auction
	images  *Carousel
	form    *BidForm
}

// NewDetail creates an empty Detail; call Load to populate it
func NewDetail(api AuctionAPI) *Detail {
	return &Detail{api: api, images: NewCarousel()}
}

// Load fetches the auction and resolves its image. A missing image leaves the
// carousel empty and is not an error.
func (d *Detail) Load(ctx context.Context, id int64) error {
	auction, err := d.api.GetAuction(ctx, id)
	if err != nil {
		return fmt.Errorf("storefront: load auction: %w", err)
	}

	var urls []string
	if auction.ImageURL != nil && *auction.ImageURL != "" {
		urls = append(urls, *auction.ImageURL)
	} else if auction.HasImage() {
		image, err := d.api.GetImageURL(ctx, id)
		switch {
		case err == nil:
			urls = append(urls, image.ImageURL)
		case errors.Is(err, auctionerrors.ErrNotFound):
			// key set but object gone
		default:
			utils.Warn("storefront: image lookup failed", map[string]any{"auction_id": id, "error": err.Error()})
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storefront: load auction discarded: %w", err)
	}

	d.auction = &auction
	d.images = NewCarousel(urls...)
	d.form = NewBidForm(d.api, auction)
	return nil
}

// Auction returns the loaded auction
func (d *Detail) Auction() (models.Auction, bool) {
	if d.auction == nil {
		return models.Auction{}, false
	}
	return *d.auction, true
}

func (d *Detail) Images() *Carousel {
	return d.images
}

// BidForm returns the form for the loaded auction, nil before Load
func (d *Detail) BidForm() *BidForm {
	return d.form
}

// PlaceBid runs the form to completion: it reveals the input if needed, submits
// input and re-fetches the auction to resync after a successful bid.
func (d *Detail) PlaceBid(ctx context.Context, input string) (models.Bid, error) {
	if d.auction == nil {
		return models.Bid{}, auctionerrors.ErrNotLoaded
	}
	if d.form.State() == BidIdle {
		if _, err := d.form.Submit(ctx, ""); err != nil {
			return models.Bid{}, err
		}
	}

	bid, err := d.form.Submit(ctx, input)
	if err != nil {
		return models.Bid{}, err
	}

	if err := d.resync(ctx); err != nil {
		utils.Warn("storefront: resync after bid failed", map[string]any{"auction_id": d.auction.ID, "error": err.Error()})
	}
	return *bid, nil
}

func (d *Detail) resync(ctx context.Context) error {
	auction, err := d.api.GetAuction(ctx, d.auction.ID)
	if err != nil {
		return err
	}
	d.auction = &auction
	if auction.Closed {
		d.form.MarkClosed()
	}
	return nil
}
