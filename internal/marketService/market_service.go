package market

import (
	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"auction-storefront/internal/repository"
	"auction-storefront/utils"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialSink delivers the one-time password of an imported user
type CredentialSink func(email, password string)

// MarketService implements the sandbox marketplace rules behind the REST API
type MarketService struct {
	repo         repository.MarketDB
	tokens       *TokenIssuer
	imageBaseURL string
	bcryptCost   int
	credentials  CredentialSink
}

// Option configures a MarketService
type Option func(*MarketService)

// WithBcryptCost overrides the password hashing cost
func WithBcryptCost(cost int) Option {
	return func(s *MarketService) {
		s.bcryptCost = cost
	}
}

// WithCredentialSink replaces the default sink, which only logs that credentials were issued
func WithCredentialSink(sink CredentialSink) Option {
	return func(s *MarketService) {
		s.credentials = sink
	}
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB, tokens *TokenIssuer, imageBaseURL string, opts ...Option) *MarketService {
	s := &MarketService{
		repo:         repo,
		tokens:       tokens,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		bcryptCost:   bcrypt.DefaultCost,
		credentials: func(email, _ string) {
			utils.Info("service: credentials issued", map[string]any{"email": email})
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns every product
func (s *MarketService) ListProducts() []models.Auction {
	return s.repo.ListProducts()
}

// GetProduct returns a product by id
func (s *MarketService) GetProduct(id int64) (models.Auction, error) {
	p, err := s.repo.GetProduct(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	return p, nil
}

// ImageURL resolves the public URL of a product image
func (s *MarketService) ImageURL(id int64) (models.ImageURL, error) {
	p, err := s.repo.GetProduct(id)
	if err != nil {
		return models.ImageURL{}, fmt.Errorf("service: %w", err)
	}
	if !p.HasImage() {
		return models.ImageURL{}, fmt.Errorf("service: product %d: %w", id, auctionerrors.ErrNoImage)
	}
	return models.ImageURL{
		ProductID:      fmt.Sprint(p.ID),
		ImageObjectKey: *p.ImageObjectKey,
		ImageURL:       s.imageBaseURL + "/" + *p.ImageObjectKey,
	}, nil
}

// CloseProduct marks a product closed. Closing is one-way and idempotent.
func (s *MarketService) CloseProduct(id int64) (models.Auction, error) {
	p, err := s.repo.GetProduct(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	if p.Closed {
		return p, nil
	}
	p.Closed = true
	saved, err := s.repo.SaveProduct(p)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to close product %d: %w", id, err)
	}
	return saved, nil
}

// PlaceBid validates and records a bid from the authenticated user
func (s *MarketService) PlaceBid(productID int64, email string, price float64) (models.Bid, error) {
	product, err := s.validateBid(productID, email, price)
	if err != nil {
		return models.Bid{}, err
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w - user not found", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.repo.RecordBid(models.Bid{
		ProductID:    product.ID,
		AppUserID:    user.ID,
		AppUserEmail: user.Email,
		Price:        price,
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for product %d by %s: %w", productID, email, err)
	}
	return bid, nil
}

// validateBid checks input validity and business rules for bidding
func (s *MarketService) validateBid(productID int64, email string, price float64) (models.Auction, error) {
	if productID <= 0 || email == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing product id or bidder", auctionerrors.ErrInvalidBid)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - Price must be greater than 0", auctionerrors.ErrInvalidBid)
	}

	product, err := s.repo.GetProduct(productID)
	if errors.Is(err, auctionerrors.ErrNotFound) {
		return models.Auction{}, fmt.Errorf("service: %w - Product not found with id: %d", auctionerrors.ErrInvalidBid, productID)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load product: %w", err)
	}
	if product.Closed {
		return models.Auction{}, fmt.Errorf("service: %w - Cannot bid on a closed product", auctionerrors.ErrInvalidBid)
	}
	if price < product.StartingPrice {
		return models.Auction{}, fmt.Errorf("service: %w - Price must be at least the starting price of %.2f", auctionerrors.ErrBidTooLow, product.StartingPrice)
	}
	return product, nil
}

// HighestBid returns the winning bid of a product
func (s *MarketService) HighestBid(productID int64) (models.Bid, error) {
	bid, err := s.repo.GetHighestBid(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	return bid, nil
}
