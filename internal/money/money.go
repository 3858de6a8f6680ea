// Package money provides the fixed-point cent representation used by all
// split calculations. Amounts are integer minor units internally so that
// sums and comparisons are exact; floating point never touches a balance.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer minor units (cents).
type Cents int64

// maxAmountText caps the accepted textual representation of an amount.
// Longer input is truncated before parsing.
const maxAmountText = 12

// ParseAmount converts decimal currency text (e.g. "12.34") to cents.
// Fractional digits beyond two are truncated, not rounded. Unparsable
// text yields 0 — raw user input is tolerated, never an error.
func ParseAmount(text string) Cents {
	text = strings.TrimSpace(text)
	if len(text) > maxAmountText {
		text = text[:maxAmountText]
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0
	}
	return Cents(d.Truncate(2).Shift(2).IntPart())
}

// FormatAmount renders cents as decimal currency text with exactly two
// fractional digits ("1234" cents -> "12.34").
func FormatAmount(c Cents) string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// ParseNumber converts free-form numeric text (percentage points or share
// counts) to a float64. Unparsable text yields 0.
func ParseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if len(text) > maxAmountText {
		text = text[:maxAmountText]
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}

// WithinOneCent reports whether two amounts differ by less than one cent.
// Since Cents is integer-backed this is plain equality; the name keeps the
// validator rules readable where the contract says "within 1 cent".
func WithinOneCent(a, b Cents) bool {
	return a == b
}

// Abs returns the absolute value of c.
func Abs(c Cents) Cents {
	if c < 0 {
		return -c
	}
	return c
}
