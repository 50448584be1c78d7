package reconcile

import "strings"

// NormalizePrice converts a localized feed price into the bare integer
// string the seller API expects.
//
// The fractional part (everything from the first '.') is discarded, then
// every rune that is not an ASCII digit is stripped:
//
//	NormalizePrice("5'990.00 руб") == "5990"
//
// A price with no digits normalizes to the empty string; the caller decides
// whether that is acceptable.
func NormalizePrice(raw string) string {
	whole, _, _ := strings.Cut(raw, ".")

	var b strings.Builder
	b.Grow(len(whole))
	for _, r := range whole {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
