package market

import (
	"auction-storefront/internal/auctionerrors"
	model "auction-storefront/internal/models"
	"auction-storefront/internal/repository"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestService(repo repository.MarketDB, opts ...Option) *MarketService {
	opts = append([]Option{WithBcryptCost(bcrypt.MinCost)}, opts...)
	return NewMarketService(repo, NewTokenIssuer(testSecret, time.Hour), "http://images.local/", opts...)
}

func strPtr(s string) *string { return &s }

// Tests PlaceBid
func TestMarketService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := newTestService(mockRepo)

	open := model.Auction{ID: 1, Model: "X1", StartingPrice: 100}
	closed := model.Auction{ID: 2, Model: "X2", StartingPrice: 100, Closed: true}
	user := model.AppUser{ID: 7, Email: "bidder@example.com"}

	// Table-driven test cases
	tests := []struct {
		name          string
		productID     int64
		email         string
		price         float64
		mockSetup     func()
		expectError   bool
		expectedError error
		expectedMsg   string
	}{
		{
			name:      "valid_bid_at_starting_price",
			productID: 1,
			email:     user.Email,
			price:     100,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(1)).Return(open, nil)
				mockRepo.EXPECT().GetUserByEmail(user.Email).Return(user, nil)
				mockRepo.EXPECT().RecordBid(model.Bid{ProductID: 1, AppUserID: 7, AppUserEmail: user.Email, Price: 100}).
					Return(model.Bid{ID: 11, ProductID: 1, AppUserID: 7, AppUserEmail: user.Email, Price: 100}, nil)
			},
		},
		{
			name:          "zero_price",
			productID:     1,
			email:         user.Email,
			price:         0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
			expectedMsg:   "Price must be greater than 0",
		},
		{
			name:          "nan_price",
			productID:     1,
			email:         user.Email,
			price:         math.NaN(),
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "missing_bidder",
			productID:     1,
			email:         "",
			price:         150,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "unknown_product",
			productID: 9,
			email:     user.Email,
			price:     150,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(9)).Return(model.Auction{}, auctionerrors.ErrNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
			expectedMsg:   "Product not found with id: 9",
		},
		{
			name:      "closed_product",
			productID: 2,
			email:     user.Email,
			price:     150,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(2)).Return(closed, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
			expectedMsg:   "Cannot bid on a closed product",
		},
		{
			name:      "below_starting_price",
			productID: 1,
			email:     user.Email,
			price:     99.99,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(1)).Return(open, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "closed_before_record",
			productID: 1,
			email:     user.Email,
			price:     120,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(1)).Return(open, nil)
				mockRepo.EXPECT().GetUserByEmail(user.Email).Return(user, nil)
				mockRepo.EXPECT().RecordBid(gomock.Any()).Return(model.Bid{}, auctionerrors.ErrInvalidBid)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "repo_fails",
			productID: 1,
			email:     user.Email,
			price:     120,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(1)).Return(open, nil)
				mockRepo.EXPECT().GetUserByEmail(user.Email).Return(user, nil)
				mockRepo.EXPECT().RecordBid(gomock.Any()).Return(model.Bid{}, errors.New("repo write failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.PlaceBid(tc.productID, tc.email, tc.price)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				if tc.expectedMsg != "" {
					require.Contains(t, err.Error(), tc.expectedMsg)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(11), bid.ID)
			require.Equal(t, tc.price, bid.Price)
			require.Equal(t, tc.email, bid.AppUserEmail)
		})
	}
}

// Test CloseProduct
func TestMarketService_CloseProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := newTestService(mockRepo)

	tests := []struct {
		name          string
		id            int64
		mockSetup     func()
		expectedError error
	}{
		{
			name: "open_product",
			id:   1,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(1)).Return(model.Auction{ID: 1}, nil)
				mockRepo.EXPECT().SaveProduct(model.Auction{ID: 1, Closed: true}).Return(model.Auction{ID: 1, Closed: true}, nil)
			},
		},
		{
			name: "already_closed_is_noop",
			id:   2,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(2)).Return(model.Auction{ID: 2, Closed: true}, nil)
			},
		},
		{
			name: "missing_product",
			id:   3,
			mockSetup: func() {
				mockRepo.EXPECT().GetProduct(int64(3)).Return(model.Auction{}, auctionerrors.ErrNotFound)
			},
			expectedError: auctionerrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			p, err := service.CloseProduct(tc.id)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.True(t, p.Closed)
		})
	}
}

// Test ImageURL
func TestMarketService_ImageURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := newTestService(mockRepo)

	mockRepo.EXPECT().GetProduct(int64(1)).Return(model.Auction{ID: 1, ImageObjectKey: strPtr("products/1.jpg")}, nil)
	got, err := service.ImageURL(1)
	require.NoError(t, err)
	require.Equal(t, model.ImageURL{
		ProductID:      "1",
		ImageObjectKey: "products/1.jpg",
		ImageURL:       "http://images.local/products/1.jpg",
	}, got)

	mockRepo.EXPECT().GetProduct(int64(2)).Return(model.Auction{ID: 2}, nil)
	_, err = service.ImageURL(2)
	require.True(t, errors.Is(err, auctionerrors.ErrNoImage))
}

// Test login, authentication and logout against the in-memory repository
func TestMarketService_Auth(t *testing.T) {
	t.Parallel()

	service := newTestService(repository.NewMemoryRepo())
	_, err := service.CreateUser("admin@example.com", "secret", "ROLE_ADMIN", false)
	require.NoError(t, err)

	_, err = service.Login("admin@example.com", "wrong")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials))
	_, err = service.Login("nobody@example.com", "secret")
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials))

	resp, err := service.Login("ADMIN@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.False(t, resp.NeedsPasswordReset)
	require.Equal(t, "admin@example.com", resp.User.Email)

	claims, err := service.Authenticate(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Identity())
	require.True(t, claims.Has("ROLE_ADMIN"))

	require.NoError(t, service.Logout(resp.Token))
	_, err = service.Authenticate(resp.Token)
	require.True(t, errors.Is(err, auctionerrors.ErrUnauthorized))

	_, err = service.Authenticate("not-a-token")
	require.True(t, errors.Is(err, auctionerrors.ErrUnauthorized))
}

func TestTokenIssuer_Verify(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer(testSecret, time.Hour)
	token, err := issuer.Issue("user@example.com", RoleUser)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", claims.Email)
	require.True(t, claims.Has(RoleUser))

	_, err = NewTokenIssuer("other-secret", time.Hour).Verify(token)
	require.True(t, errors.Is(err, auctionerrors.ErrUnauthorized))

	expired, err := NewTokenIssuer(testSecret, -time.Minute).Issue("user@example.com")
	require.NoError(t, err)
	_, err = issuer.Verify(expired)
	require.True(t, errors.Is(err, auctionerrors.ErrUnauthorized))
}

// closingRepo closes a product in the middle of a service call
type closingRepo struct {
	*repository.MemoryRepo
	productID int64
}

func (r *closingRepo) close() {
	p, err := r.MemoryRepo.GetProduct(r.productID)
	if err != nil {
		return
	}
	p.Closed = true
	_, _ = r.MemoryRepo.SaveProduct(p)
}

func (r *closingRepo) GetUserByEmail(email string) (model.AppUser, error) {
	r.close()
	return r.MemoryRepo.GetUserByEmail(email)
}

func (r *closingRepo) GetProductBySerial(serial string) (model.Auction, error) {
	p, err := r.MemoryRepo.GetProductBySerial(serial)
	r.close()
	return p, err
}

func TestMarketService_PlaceBid_ClosedDuringBid(t *testing.T) {
	t.Parallel()

	repo := &closingRepo{MemoryRepo: repository.NewMemoryRepo(), productID: 1}
	p, err := repo.SaveProduct(model.Auction{Serial: "SN-1", Model: "X1", StartingPrice: 10})
	require.NoError(t, err)
	service := newTestService(repo)
	_, err = service.CreateUser("bidder@example.com", "pw", RoleUser, false)
	require.NoError(t, err)

	_, err = service.PlaceBid(p.ID, "bidder@example.com", 50)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidBid))
	require.Contains(t, err.Error(), "Cannot bid on a closed product")

	_, err = service.HighestBid(p.ID)
	require.True(t, errors.Is(err, auctionerrors.ErrNoBids))
}
