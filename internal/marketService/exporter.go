package market

import (
	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const exportHeader = "type, model, serial, description, starting price, email, final price\n"

// ExportProduct renders one product with its highest bid
func (s *MarketService) ExportProduct(id int64) ([]byte, error) {
	p, err := s.repo.GetProduct(id)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	var sb strings.Builder
	sb.WriteString(exportHeader)
	if err := s.writeExportRow(&sb, p); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// ExportProducts renders every product with its highest bid
func (s *MarketService) ExportProducts() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(exportHeader)
	for _, p := range s.repo.ListProducts() {
		if err := s.writeExportRow(&sb, p); err != nil {
			return nil, err
		}
	}
	return []byte(sb.String()), nil
}

func (s *MarketService) writeExportRow(sb *strings.Builder, p models.Auction) error {
	email, finalPrice := "", ""
	bid, err := s.repo.GetHighestBid(p.ID)
	switch {
	case err == nil:
		email = bid.AppUserEmail
		finalPrice = formatDecimal(bid.Price)
	case !errors.Is(err, auctionerrors.ErrNoBids):
		return fmt.Errorf("service: export product %d: %w", p.ID, err)
	}

	fields := []string{
		escapeCSV(p.TypeName()),
		escapeCSV(p.Model),
		escapeCSV(p.Serial),
		escapeCSV(p.Description),
		formatDecimal(p.StartingPrice),
		escapeCSV(email),
		finalPrice,
	}
	sb.WriteString(strings.Join(fields, ", "))
	sb.WriteString("\n")
	return nil
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeCSV(v string) string {
	if strings.ContainsAny(v, ",\"\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}
