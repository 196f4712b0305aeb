package repository

import (
	"auction-storefront/internal/auctionerrors"
	model "auction-storefront/internal/models"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// MarketDB defines the storage interface of the sandbox marketplace
type MarketDB interface {
	ListProducts() []model.Auction
	GetProduct(id int64) (model.Auction, error)
	GetProductBySerial(serial string) (model.Auction, error)
	SaveProduct(product model.Auction) (model.Auction, error)
	ResolveProductType(name string) model.ProductType
	RecordBid(bid model.Bid) (model.Bid, error)
	GetHighestBid(productID int64) (model.Bid, error)
	GetUserByEmail(email string) (model.AppUser, error)
	CreateUser(user model.AppUser) (model.AppUser, error)
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type bidRecord struct {
	bid       model.Bid
	createdAt time.Time
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu       sync.RWMutex
	products map[int64]model.Auction
	serials  map[string]int64 // key: serial -> value: productID
	types    map[string]model.ProductType
	bids     map[int64][]bidRecord // key: productID -> value: list of bids
	users    map[string]model.AppUser
	revoked  map[string]struct{}

	nextProductID int64
	nextTypeID    int64
	nextBidID     int64
	nextUserID    int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[int64]model.Auction),
		serials:  make(map[string]int64),
		types:    make(map[string]model.ProductType),
		bids:     make(map[int64][]bidRecord),
		users:    make(map[string]model.AppUser),
		revoked:  make(map[string]struct{}),
	}
}

// ListProducts returns every product ordered by id
func (r *MemoryRepo) ListProducts() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetProduct returns a product by id
func (r *MemoryRepo) GetProduct(id int64) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get product %d: %w", id, auctionerrors.ErrNotFound)
	}
	return p, nil
}

// GetProductBySerial returns a product by its serial number
func (r *MemoryRepo) GetProductBySerial(serial string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.serials[serial]
	if !ok {
		return model.Auction{}, fmt.Errorf("get product by serial %s: %w", serial, auctionerrors.ErrNotFound)
	}
	return r.products[id], nil
}

// SaveProduct creates the product when its id is zero and replaces it otherwise.
// A closed product stays closed.
func (r *MemoryRepo) SaveProduct(product model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if product.ID == 0 {
		r.nextProductID++
		product.ID = r.nextProductID
		product.CreatedAt = &now
	} else {
		existing, ok := r.products[product.ID]
		if !ok {
			return model.Auction{}, fmt.Errorf("save product %d: %w", product.ID, auctionerrors.ErrNotFound)
		}
		product.CreatedAt = existing.CreatedAt
		// closing is one-way, a stale copy cannot reopen the product
		product.Closed = existing.Closed || product.Closed
		if existing.Serial != product.Serial {
			delete(r.serials, existing.Serial)
		}
	}
	product.UpdatedAt = &now

	r.products[product.ID] = product
	if product.Serial != "" {
		r.serials[product.Serial] = product.ID
	}
	return product, nil
}

// ResolveProductType finds a type by case-insensitive name, creating it when missing
func (r *MemoryRepo) ResolveProductType(name string) model.ProductType {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := r.types[key]; ok {
		return t
	}
	r.nextTypeID++
	t := model.ProductType{ID: r.nextTypeID, Name: strings.TrimSpace(name)}
	r.types[key] = t
	return t
}

// RecordBid stores a bid against an existing open product
func (r *MemoryRepo) RecordBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[bid.ProductID]
	if !ok {
		return model.Bid{}, fmt.Errorf("record bid for product %d: %w", bid.ProductID, auctionerrors.ErrNotFound)
	}
	if product.Closed {
		return model.Bid{}, fmt.Errorf("record bid for product %d: %w - Cannot bid on a closed product", bid.ProductID, auctionerrors.ErrInvalidBid)
	}

	r.nextBidID++
	bid.ID = r.nextBidID
	r.bids[bid.ProductID] = append(r.bids[bid.ProductID], bidRecord{bid: bid, createdAt: time.Now().UTC()})
	return bid, nil
}

// GetHighestBid returns the highest bid for a product; ties go to the earliest
func (r *MemoryRepo) GetHighestBid(productID int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for product %d: %w", productID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.bid.Price > winning.bid.Price || (b.bid.Price == winning.bid.Price && b.createdAt.Before(winning.createdAt)) {
			winning = b
		}
	}
	return winning.bid, nil
}

// GetUserByEmail returns a user by case-insensitive email
func (r *MemoryRepo) GetUserByEmail(email string) (model.AppUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return model.AppUser{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrNotFound)
	}
	return u, nil
}

// CreateUser stores a new user; emails are unique
func (r *MemoryRepo) CreateUser(user model.AppUser) (model.AppUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return model.AppUser{}, fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrUserExists)
	}
	r.nextUserID++
	user.ID = r.nextUserID
	r.users[key] = user
	return user, nil
}

// RevokeToken blacklists a token until the process exits
func (r *MemoryRepo) RevokeToken(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[token] = struct{}{}
}

// IsTokenRevoked reports whether the token was logged out
func (r *MemoryRepo) IsTokenRevoked(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[token]
	return ok
}
