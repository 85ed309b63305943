package transactions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Saikrishnach4/financial/internal/domain"
)

// Repo persists transactions and keeps users.savings in step with them.
// Every write runs in a single database transaction: the row write plus an
// atomic savings adjustment, never a read-modify-write of the balance.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// amount is read back as text so it lands in decimal.Decimal via its
// sql.Scanner without a numeric codec.
const txColumns = `id::text, user_id::text, date, category, amount::text, type, description, created_at`

func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Category, &t.Amount, &t.Type, &t.Description, &t.CreatedAt)
	return t, err
}

// List returns all of the user's transactions in insertion order.
func (r *Repo) List(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+txColumns+`
		 FROM transactions
		 WHERE user_id = $1::uuid
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts the transaction and applies its contribution to the owner's
// savings. A missing user row means the row insert referenced a dangling
// account; the whole write rolls back with ErrNotFound.
func (r *Repo) Create(ctx context.Context, userID string, in Transaction) (Transaction, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Transaction{}, err
	}
	defer tx.Rollback(ctx)

	out, err := scanTransaction(tx.QueryRow(ctx,
		`INSERT INTO transactions (user_id, date, category, amount, type, description)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6)
		 RETURNING `+txColumns,
		userID, in.Date, in.Category, in.Amount, in.Type, in.Description,
	))
	if err != nil {
		// FK violation: the owning user record does not exist.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return Transaction{}, domain.ErrNotFound
		}
		return Transaction{}, err
	}

	if err := adjustSavings(ctx, tx, userID, contribution(in.Type, in.Amount)); err != nil {
		return Transaction{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Transaction{}, err
	}
	return out, nil
}

// Update replaces all fields of the transaction owned by userID. The old row
// is locked and read first so its prior contribution can be reversed before
// the new one is applied.
func (r *Repo) Update(ctx context.Context, userID, id string, in Transaction) (Transaction, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Transaction{}, err
	}
	defer tx.Rollback(ctx)

	var (
		oldAmount decimal.Decimal
		oldType   string
	)
	err = tx.QueryRow(ctx,
		`SELECT amount::text, type FROM transactions
		 WHERE id = $1::uuid AND user_id = $2::uuid
		 FOR UPDATE`,
		id, userID,
	).Scan(&oldAmount, &oldType)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, domain.ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}

	out, err := scanTransaction(tx.QueryRow(ctx,
		`UPDATE transactions
		 SET date = $3, category = $4, amount = $5, type = $6, description = $7
		 WHERE id = $1::uuid AND user_id = $2::uuid
		 RETURNING `+txColumns,
		id, userID, in.Date, in.Category, in.Amount, in.Type, in.Description,
	))
	if err != nil {
		return Transaction{}, err
	}

	if err := adjustSavings(ctx, tx, userID, updateDelta(oldType, oldAmount, in.Type, in.Amount)); err != nil {
		return Transaction{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Transaction{}, err
	}
	return out, nil
}

// Delete removes the transaction and reverses its contribution to savings.
func (r *Repo) Delete(ctx context.Context, userID, id string) (Transaction, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Transaction{}, err
	}
	defer tx.Rollback(ctx)

	out, err := scanTransaction(tx.QueryRow(ctx,
		`DELETE FROM transactions
		 WHERE id = $1::uuid AND user_id = $2::uuid
		 RETURNING `+txColumns,
		id, userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, domain.ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}

	if err := adjustSavings(ctx, tx, userID, contribution(out.Type, out.Amount).Neg()); err != nil {
		return Transaction{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Transaction{}, err
	}
	return out, nil
}

func adjustSavings(ctx context.Context, tx pgx.Tx, userID string, delta decimal.Decimal) error {
	ct, err := tx.Exec(ctx,
		`UPDATE users SET savings = savings + $2 WHERE id = $1::uuid`,
		userID, delta,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
