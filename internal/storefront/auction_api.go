package storefront

import (
	"context"

	"auction-storefront/internal/models"
)

//go:generate mockgen -source=auction_api.go -destination=mock_auction_api.go -package=storefront

// AuctionAPI is the slice of the data client the storefront views depend on.
// *client.Client satisfies it.
type AuctionAPI interface {
	ListAuctions(ctx context.Context) ([]models.Auction, error)
	GetAuction(ctx context.Context, id int64) (models.Auction, error)
	GetImageURL(ctx context.Context, id int64) (models.ImageURL, error)
	PlaceBid(ctx context.Context, auctionID int64, amount float64) (models.Bid, error)
	CloseAuction(ctx context.Context, id int64) (models.Auction, error)
}
