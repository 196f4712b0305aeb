// Package listing derives the visible auction list from a dataset snapshot and
// a set of filter parameters. Every function here is pure: inputs are never
// mutated and the same inputs always produce the same output.
package listing

import (
	"math"
	"sort"
	"strings"

	"auction-storefront/internal/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TypeAll selects every product type
const TypeAll int64 = 0

// Status selects auctions by their closed flag
type Status int

const (
	StatusAll Status = iota
	StatusOpen
	StatusClosed
)

// SortOrder orders the result by starting price
type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

// Params is an immutable snapshot of the user's filter choices.
// Nil price bounds mean "no bound", i.e. the observed extreme.
type Params struct {
	TypeID   int64
	Status   Status
	MinPrice *float64
	MaxPrice *float64
	Sort     SortOrder
	Query    string
}

// PriceRange is an inclusive price interval
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether price falls inside the range
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// ObservedRange returns the min and max starting price of the full dataset.
// ok is false for an empty dataset.
func ObservedRange(auctions []models.Auction) (PriceRange, bool) {
	if len(auctions) == 0 {
		return PriceRange{}, false
	}
	r := PriceRange{Min: auctions[0].StartingPrice, Max: auctions[0].StartingPrice}
	for _, a := range auctions[1:] {
		if a.StartingPrice < r.Min {
			r.Min = a.StartingPrice
		}
		if a.StartingPrice > r.Max {
			r.Max = a.StartingPrice
		}
	}
	return r, true
}

// Clamp resolves the user-entered bounds into the effective range. Each bound
// is clamped into observed; if min ends up above max the two are swapped, so
// operator error alone never empties the result.
func Clamp(p Params, observed PriceRange) PriceRange {
	lo, hi := observed.Min, observed.Max
	if bound(p.MinPrice) {
		lo = clampFloat(*p.MinPrice, observed.Min, observed.Max)
	}
	if bound(p.MaxPrice) {
		hi = clampFloat(*p.MaxPrice, observed.Min, observed.Max)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return PriceRange{Min: lo, Max: hi}
}

// bound reports whether a user-entered bound is set; NaN counts as unset
func bound(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Apply filters by type, status, price range and query, then stable-sorts by
// starting price when requested. The returned slice is always newly allocated.
func Apply(auctions []models.Auction, p Params) []models.Auction {
	out := make([]models.Auction, 0, len(auctions))

	observed, ok := ObservedRange(auctions)
	if !ok {
		return out
	}
	prices := Clamp(p, observed)
	query := strings.TrimSpace(p.Query)

	for _, a := range auctions {
		if !matchesType(a, p.TypeID) || !matchesStatus(a, p.Status) {
			continue
		}
		if !prices.Contains(a.StartingPrice) {
			continue
		}
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		out = append(out, a)
	}

	switch p.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartingPrice < out[j].StartingPrice })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartingPrice > out[j].StartingPrice })
	}
	return out
}

func matchesType(a models.Auction, typeID int64) bool {
	if typeID == TypeAll {
		return true
	}
	return a.ProductType != nil && a.ProductType.ID == typeID
}

func matchesStatus(a models.Auction, s Status) bool {
	switch s {
	case StatusOpen:
		return !a.Closed
	case StatusClosed:
		return a.Closed
	default:
		return true
	}
}

// matchesQuery does a case-insensitive fuzzy match against the searchable fields
func matchesQuery(a models.Auction, query string) bool {
	for _, field := range []string{a.Model, a.Serial, a.Description, a.TypeName()} {
		if field != "" && fuzzy.MatchFold(query, field) {
			return true
		}
	}
	return false
}

// Types returns the distinct product types in the dataset, sorted by name
func Types(auctions []models.Auction) []models.ProductType {
	seen := make(map[int64]bool)
	types := make([]models.ProductType, 0)
	for _, a := range auctions {
		if a.ProductType == nil || seen[a.ProductType.ID] {
			continue
		}
		seen[a.ProductType.ID] = true
		types = append(types, *a.ProductType)
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Name == types[j].Name {
			return types[i].ID < types[j].ID
		}
		return types[i].Name < types[j].Name
	})
	return types
}
