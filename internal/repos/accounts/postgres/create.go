package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *accountsRepo) Create(ctx context.Context, name string, initialBalance int64) (accounts.Account, error) {
	if initialBalance < 0 {
		return accounts.Account{}, accounts.ErrNegativeBalance
	}

	a := accounts.Account{
		ID:      uuid.New(),
		Name:    name,
		Balance: initialBalance,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, name, balance, version)
		VALUES ($1, $2, $3, 0)
	`, a.ID, a.Name, a.Balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23514" { // check_violation
				return accounts.Account{}, accounts.ErrNegativeBalance
			}
		}

		return accounts.Account{}, fmt.Errorf("insert account: %w", err)
	}

	return a, nil
}
