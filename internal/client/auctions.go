package client

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
)

// ListAuctions returns every auction, open and closed
func (c *Client) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	var auctions []models.Auction
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &auctions); err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	if auctions == nil {
		auctions = []models.Auction{}
	}
	return auctions, nil
}

// OpenAuctions returns only the auctions still accepting bids
func (c *Client) OpenAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := c.ListAuctions(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]models.Auction, 0, len(auctions))
	for _, a := range auctions {
		if !a.Closed {
			open = append(open, a)
		}
	}
	return open, nil
}

// GetAuction returns a single auction; a missing id wraps auctionerrors.ErrNotFound
func (c *Client) GetAuction(ctx context.Context, id int64) (models.Auction, error) {
	var auction models.Auction
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &auction); err != nil {
		return models.Auction{}, fmt.Errorf("get auction %d: %w", id, err)
	}
	return auction, nil
}

// GetImageURL resolves a presigned image URL for the auction
func (c *Client) GetImageURL(ctx context.Context, id int64) (models.ImageURL, error) {
	var image models.ImageURL
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d/image-url", id), nil, &image); err != nil {
		return models.ImageURL{}, fmt.Errorf("get image url for auction %d: %w", id, err)
	}
	return image, nil
}

// ValidateAmount rejects amounts that must never reach the network
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return auctionerrors.ErrInvalidBidAmount
	}
	return nil
}

// PlaceBid submits a bid. Invalid amounts are rejected without a request.
func (c *Client) PlaceBid(ctx context.Context, auctionID int64, amount float64) (models.Bid, error) {
	if err := ValidateAmount(amount); err != nil {
		return models.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, err)
	}

	var bid models.Bid
	req := models.PlaceBidRequest{ProductID: auctionID, Price: amount}
	if err := c.doJSON(ctx, http.MethodPost, "/bids", req, &bid); err != nil {
		return models.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, err)
	}
	return bid, nil
}

// CloseAuction asks the backend to close the auction and returns its new state
func (c *Client) CloseAuction(ctx context.Context, id int64) (models.Auction, error) {
	var auction models.Auction
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/products/%d/close", id), nil, &auction); err != nil {
		return models.Auction{}, fmt.Errorf("close auction %d: %w", id, err)
	}
	return auction, nil
}

// ImportCSV uploads a product CSV and returns the per-row summary
func (c *Client) ImportCSV(ctx context.Context, filename string, data []byte) (models.ImportResult, error) {
	var result models.ImportResult
	if err := c.upload(ctx, "/products/import", filename, data, &result); err != nil {
		return models.ImportResult{}, fmt.Errorf("import auctions: %w", err)
	}
	return result, nil
}

// ExportCSV downloads every auction with its final price
func (c *Client) ExportCSV(ctx context.Context) ([]byte, error) {
	data, err := c.doRaw(ctx, "/products/export")
	if err != nil {
		return nil, fmt.Errorf("export auctions: %w", err)
	}
	return data, nil
}

// ExportAuctionCSV downloads a single auction with its final price
func (c *Client) ExportAuctionCSV(ctx context.Context, id int64) ([]byte, error) {
	data, err := c.doRaw(ctx, fmt.Sprintf("/products/%d/export", id))
	if err != nil {
		return nil, fmt.Errorf("export auction %d: %w", id, err)
	}
	return data, nil
}
