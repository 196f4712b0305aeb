package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatPrice renders a currency amount with thousands separators and two decimals
func FormatPrice(amount float64) string {
	return humanize.FormatFloat("#,###.##", amount)
}

// FormatCount renders a count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Plural returns "1 auction" / "3 auctions"
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", FormatCount(n), noun)
	}
	return fmt.Sprintf("%s %ss", FormatCount(n), noun)
}
