package listing

import (
	"fmt"
	"strings"
)

// ParseStatus accepts all/open/closed
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, nil
	case "open":
		return StatusOpen, nil
	case "closed":
		return StatusClosed, nil
	default:
		return StatusAll, fmt.Errorf("listing: unknown status %q (want all, open or closed)", s)
	}
}

// ParseSort accepts none/asc/desc
func ParseSort(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "asc", "price-asc":
		return SortPriceAsc, nil
	case "desc", "price-desc":
		return SortPriceDesc, nil
	default:
		return SortNone, fmt.Errorf("listing: unknown sort order %q (want none, asc or desc)", s)
	}
}

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	default:
		return "all"
	}
}

func (o SortOrder) String() string {
	switch o {
	case SortPriceAsc:
		return "asc"
	case SortPriceDesc:
		return "desc"
	default:
		return "none"
	}
}
