package agenda

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCents renders an amount of minor units as currency, e.g.
// FormatCents(12050, "BRL") == "R$120,50".
func FormatCents(cents int64, currency string) string {
	return money.New(cents, currency).Display()
}

// ParseAmount converts user input like "120,50", "120.50" or "120" into
// minor units of the given currency. Currency symbols and stray characters
// are stripped; only the first comma is treated as a decimal separator, so
// "1.234,56" is rejected rather than guessed at. The result must be a
// positive number of minor units.
func ParseAmount(s, currency string) (int64, error) {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return 0, fmt.Errorf("%w: unknown currency %q", ErrInvalidRecord, currency)
	}

	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == ',' {
			return r
		}
		return -1
	}, s)
	clean = strings.Replace(clean, ",", ".", 1)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q", ErrInvalidRecord, s)
	}
	cents := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	if cents <= 0 {
		return 0, fmt.Errorf("%w: amount %q is not positive", ErrInvalidRecord, s)
	}
	return cents, nil
}
