package transactions

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saikrishnach4/financial/internal/domain"
)

func TestValidate_OK(t *testing.T) {
	req := CreateTransactionRequest{
		Date:        "2024-03-15",
		Category:    " Food ",
		Amount:      dec("50"),
		Type:        "EXPENSE",
		Description: "lunch",
	}

	tx, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Food", tx.Category)
	assert.Equal(t, TypeExpense, tx.Type)
	assert.True(t, dec("50").Equal(tx.Amount))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestValidate_TimestampTruncatedToDay(t *testing.T) {
	req := CreateTransactionRequest{
		Date:     "2024-03-15T18:30:00Z",
		Category: "Food",
		Amount:   dec("10"),
		Type:     "expense",
	}

	tx, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestValidate_Rejects(t *testing.T) {
	base := CreateTransactionRequest{
		Date:     "2024-03-15",
		Category: "Food",
		Amount:   dec("50"),
		Type:     "expense",
	}

	tests := []struct {
		name    string
		mutate  func(*CreateTransactionRequest)
		wantErr error
	}{
		{"bad type", func(r *CreateTransactionRequest) { r.Type = "transfer" }, domain.ErrInvalidType},
		{"negative amount", func(r *CreateTransactionRequest) { r.Amount = dec("-1") }, domain.ErrInvalidAmount},
		{"missing category", func(r *CreateTransactionRequest) { r.Category = "  " }, errMissingCategory},
		{"bad date", func(r *CreateTransactionRequest) { r.Date = "15/03/2024" }, errInvalidDate},
		{"empty date", func(r *CreateTransactionRequest) { r.Date = "" }, errInvalidDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			_, err := req.Validate()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_ZeroAmountAllowed(t *testing.T) {
	req := CreateTransactionRequest{
		Date:     "2024-03-15",
		Category: "Food",
		Amount:   decimal.Zero,
		Type:     "expense",
	}
	_, err := req.Validate()
	assert.NoError(t, err)
}

func TestValidate_AmountRoundedToCents(t *testing.T) {
	req := CreateTransactionRequest{
		Date:     "2024-03-15",
		Category: "Food",
		Amount:   dec("12.345"),
		Type:     "income",
	}
	tx, err := req.Validate()
	require.NoError(t, err)
	assert.True(t, dec("12.35").Equal(tx.Amount), "got %s", tx.Amount)
}
