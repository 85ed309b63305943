package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Saikrishnach4/financial/internal/domain"
)

// ParseAmount parses a user-entered decimal amount ("50", "12.34") and
// rejects negatives and garbage. Stored amounts are kept at two decimal
// places to match the numeric(14,2) columns.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return Normalize(d)
}

// Normalize validates a decimal amount and rounds it to cents.
func Normalize(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	// numeric(14,2) => 12 integer digits
	if d.GreaterThan(decimal.New(1, 12)) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return d.Round(2), nil
}
