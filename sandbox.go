package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"auction-storefront/internal/config"
	market "auction-storefront/internal/marketService"
	model "auction-storefront/internal/models"
	"auction-storefront/internal/repository"
	"auction-storefront/internal/server"
	"auction-storefront/internal/session"
	"auction-storefront/utils"

	"github.com/c2h5oh/datasize"
	"github.com/gin-gonic/gin"
)

const (
	sandboxTokenTTL     = 24 * time.Hour
	sandboxImageBaseURL = "https://images.sandbox.local"
)

// newSandbox wires the in-memory backend and seeds it with an admin and sample products
func newSandbox(cfg *config.Config, maxUpload datasize.ByteSize, opts ...market.Option) (*gin.Engine, *market.MarketService, error) {
	repo := repository.NewMemoryRepo()
	svc := market.NewMarketService(repo, market.NewTokenIssuer(cfg.JWTSecret, sandboxTokenTTL), sandboxImageBaseURL, opts...)

	if _, err := svc.CreateUser(cfg.AdminUser, cfg.AdminPass, session.RoleAdmin, false); err != nil {
		return nil, nil, fmt.Errorf("sandbox: seed admin: %w", err)
	}
	if err := prepopulateProducts(repo); err != nil {
		return nil, nil, err
	}

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	return server.SetupRouter(svc, maxUpload), svc, nil
}

// prepopulateProducts adds sample products to the in-memory repo
func prepopulateProducts(repo *repository.MemoryRepo) error {
	laptop := repo.ResolveProductType("Laptop")
	phone := repo.ResolveProductType("Phone")
	monitor := repo.ResolveProductType("Monitor")
	imageKey := "products/x1-carbon.jpg"

	products := []model.Auction{
		{ProductType: &laptop, Model: "X1 Carbon", Serial: "LP-1001", Description: "14 inch business laptop", StartingPrice: 450, ImageObjectKey: &imageKey},
		{ProductType: &laptop, Model: "MacBook Air", Serial: "LP-1002", Description: "M1, 8GB, 256GB", StartingPrice: 600},
		{ProductType: &phone, Model: "Pixel 7", Serial: "PH-2001", Description: "Unlocked, minor scratches", StartingPrice: 220},
		{ProductType: &monitor, Model: "U2720Q", Serial: "MN-3001", Description: "27 inch 4K", StartingPrice: 180},
	}

	for _, p := range products {
		if _, err := repo.SaveProduct(p); err != nil {
			return fmt.Errorf("sandbox: seed product %s: %w", p.Serial, err)
		}
	}
	return nil
}

func runSandbox(ctx context.Context, cfg *config.Config, maxUpload datasize.ByteSize, stdout io.Writer) error {
	router, _, err := newSandbox(cfg, maxUpload)
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: cfg.Address, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Fprintf(stdout, "Starting sandbox backend on %s (admin: %s)...\n", cfg.Address, cfg.AdminUser)
	utils.Info("sandbox: listening", map[string]any{"addr": cfg.Address})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sandbox: failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
