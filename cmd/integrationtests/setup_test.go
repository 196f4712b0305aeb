package integrationtests

import (
	"auction-storefront/internal/client"
	market "auction-storefront/internal/marketService"
	model "auction-storefront/internal/models"
	"auction-storefront/internal/repository"
	"auction-storefront/internal/server"
	"auction-storefront/internal/session"
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-pass"
	userEmail     = "bidder@example.com"
	userPassword  = "bidder-pass"
)

// Sandbox is a running backend plus direct access to its repository
type Sandbox struct {
	URL     string
	Repo    *repository.MemoryRepo
	Service *market.MarketService

	mu          sync.Mutex
	credentials map[string]string
}

// Password returns the one-time password issued to an imported user
func (s *Sandbox) Password(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.credentials[email]
	return p, ok
}

// SetupSandbox starts the sandbox backend over httptest and seeds an admin,
// a regular user and the sample products.
func SetupSandbox(t *testing.T) *Sandbox {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sb := &Sandbox{Repo: repository.NewMemoryRepo(), credentials: map[string]string{}}
	sb.Service = market.NewMarketService(sb.Repo, market.NewTokenIssuer("integration-secret", time.Hour), "https://images.test",
		market.WithBcryptCost(bcrypt.MinCost),
		market.WithCredentialSink(func(email, password string) {
			sb.mu.Lock()
			defer sb.mu.Unlock()
			sb.credentials[email] = password
		}),
	)

	_, err := sb.Service.CreateUser(adminEmail, adminPassword, session.RoleAdmin, false)
	require.NoError(t, err)
	_, err = sb.Service.CreateUser(userEmail, userPassword, market.RoleUser, false)
	require.NoError(t, err)

	for _, p := range sampleProducts(sb.Repo) {
		_, err := sb.Repo.SaveProduct(p)
		require.NoError(t, err)
	}

	srv := httptest.NewServer(server.SetupRouter(sb.Service, datasize.MB))
	t.Cleanup(srv.Close)
	sb.URL = srv.URL + "/api"
	return sb
}

// NewClient returns a client with an in-memory session
func (s *Sandbox) NewClient() *client.Client {
	return client.New(s.URL, session.New(session.NewMemoryStore("")), client.WithTimeout(5*time.Second))
}

// LoginAs returns a client logged in with the given credentials
func (s *Sandbox) LoginAs(t *testing.T, email, password string) *client.Client {
	t.Helper()
	c := s.NewClient()
	_, err := c.Login(context.Background(), email, password)
	require.NoError(t, err)
	return c
}

// sampleProducts returns typed products ordered by starting price; ids are 1, 2 and 3
func sampleProducts(repo *repository.MemoryRepo) []model.Auction {
	laptop := repo.ResolveProductType("Laptop")
	phone := repo.ResolveProductType("Phone")
	return []model.Auction{
		{ProductType: &phone, Model: "Pixel 7", Serial: "PH-1", Description: "unlocked", StartingPrice: 100},
		{ProductType: &laptop, Model: "X1 Carbon", Serial: "LP-1", Description: "business laptop", StartingPrice: 250},
		{ProductType: &laptop, Model: "MacBook Air", Serial: "LP-2", Description: "M1", StartingPrice: 500},
	}
}
