package storefront

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/client"
	"auction-storefront/internal/models"
)

// BidState is the state of a single bid form
type BidState int

const (
	BidIdle BidState = iota
	BidAmountEntry
	BidSubmitting
)

func (s BidState) String() string {
	switch s {
	case BidAmountEntry:
		return "amount-entry"
	case BidSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// BidPlacer is the network side of a bid form
type BidPlacer interface {
	PlaceBid(ctx context.Context, auctionID int64, amount float64) (models.Bid, error)
}

// BidForm drives idle -> amount-entry -> submitting -> (idle | amount-entry).
// The first submit only reveals the amount input; a later submit with a valid
// amount issues exactly one PlaceBid call.
type BidForm struct {
	mu        sync.Mutex
	api       BidPlacer
	auctionID int64
	closed    bool

	state   BidState
	lastBid *models.Bid
	message string
}

// NewBidForm creates an idle form for the auction
func NewBidForm(api BidPlacer, auction models.Auction) *BidForm {
	return &BidForm{api: api, auctionID: auction.ID, closed: auction.Closed}
}

// ParseAmount parses user input into a bid amount, rejecting non-numeric and non-positive values
func ParseAmount(input string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", auctionerrors.ErrInvalidBidAmount, input)
	}
	if err := client.ValidateAmount(amount); err != nil {
		return 0, fmt.Errorf("%w: got %s", err, strings.TrimSpace(input))
	}
	return amount, nil
}

// Submit advances the form. It returns the created bid only when a bid was placed.
func (f *BidForm) Submit(ctx context.Context, input string) (*models.Bid, error) {
	f.mu.Lock()
	if f.closed {
		f.state = BidIdle
		f.message = auctionerrors.ErrAuctionClosed.Error()
		f.mu.Unlock()
		return nil, auctionerrors.ErrAuctionClosed
	}

	switch f.state {
	case BidSubmitting:
		f.mu.Unlock()
		return nil, auctionerrors.ErrSubmitInProgress
	case BidIdle:
		f.state = BidAmountEntry
		f.message = ""
		f.mu.Unlock()
		return nil, nil
	}

	amount, err := ParseAmount(input)
	if err != nil {
		f.message = err.Error()
		f.mu.Unlock()
		return nil, err
	}
	f.state = BidSubmitting
	f.message = ""
	f.mu.Unlock()

	bid, err := f.api.PlaceBid(ctx, f.auctionID, amount)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = BidAmountEntry
		f.message = auctionerrors.Message(err)
		return nil, err
	}
	f.state = BidIdle
	f.lastBid = &bid
	return &bid, nil
}

// Cancel hides the amount input again
func (f *BidForm) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == BidAmountEntry {
		f.state = BidIdle
		f.message = ""
	}
}

// MarkClosed disables the form after the auction was observed closed
func (f *BidForm) MarkClosed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.state == BidAmountEntry {
		f.state = BidIdle
	}
}

func (f *BidForm) State() BidState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message is the inline error to render, empty when there is none
func (f *BidForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// LastBid returns the most recent successful bid
func (f *BidForm) LastBid() (models.Bid, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastBid == nil {
		return models.Bid{}, false
	}
	return *f.lastBid, true
}
