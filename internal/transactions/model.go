package transactions

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Saikrishnach4/financial/internal/domain"
	"github.com/Saikrishnach4/financial/internal/money"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

var (
	errMissingCategory = errors.New("category required")
	errInvalidDate     = errors.New("date must be YYYY-MM-DD")
)

// Transaction is a single income or expense event owned by a user.
type Transaction struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"userId"`
	Date        time.Time       `db:"date" json:"date"`
	Category    string          `db:"category" json:"category"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Type        string          `db:"type" json:"type"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// CreateTransactionRequest is the body for both create and update.
type CreateTransactionRequest struct {
	Date        string          `json:"date"` // YYYY-MM-DD or RFC 3339
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

// Validate normalizes the request into a Transaction ready for the store.
// UserID, ID and CreatedAt are filled in elsewhere.
func (r CreateTransactionRequest) Validate() (Transaction, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return Transaction{}, err
	}

	typ := normalizeType(r.Type)
	if typ == "" {
		return Transaction{}, domain.ErrInvalidType
	}

	amount, err := money.Normalize(r.Amount)
	if err != nil {
		return Transaction{}, err
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		return Transaction{}, errMissingCategory
	}

	return Transaction{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Type:        typ,
		Description: strings.TrimSpace(r.Description),
	}, nil
}

func normalizeType(t string) string {
	t = strings.TrimSpace(strings.ToLower(t))
	if t == TypeIncome || t == TypeExpense {
		return t
	}
	return ""
}

// parseDate accepts a plain calendar date or a full timestamp and truncates
// to day precision in UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d.UTC(), nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
