package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a persisted user record. Savings is the running net balance
// maintained by the transaction store: sum of income amounts minus sum of
// expense amounts over the user's current transactions.
type User struct {
	ID           string          `db:"id" json:"id"`
	Email        string          `db:"email" json:"email"`
	PasswordHash string          `db:"password_hash" json:"-"`
	FullName     *string         `db:"full_name" json:"fullName,omitempty"`
	Savings      decimal.Decimal `db:"savings" json:"savings"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
