package summary

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Saikrishnach4/financial/internal/transactions"
)

// Repo reads the scoped transaction set a summary is computed from. No
// caching and no stored aggregates: every query recomputes from the rows in
// the window.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// FindRange returns the user's transactions with date in [w.Start, w.End),
// optionally restricted to one type, in insertion order.
func (r *Repo) FindRange(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, user_id::text, date, category, amount::text, type, description, created_at
		 FROM transactions
		 WHERE user_id = $1::uuid
		   AND date >= $2 AND date < $3
		   AND ($4 = '' OR type = $4)
		 ORDER BY created_at, id`,
		userID, w.Start, w.End, typ,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]transactions.Transaction, 0)
	for rows.Next() {
		var t transactions.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Category, &t.Amount, &t.Type, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
