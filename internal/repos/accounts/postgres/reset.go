package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/miniledger/internal/infra/pgutils"
	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/google/uuid"
)

// Reset wipes all accounts and creates the seed set in one transaction,
// so a reader never observes a partially seeded ledger.
func (r *accountsRepo) Reset(ctx context.Context, seeds []accounts.Seed) ([]accounts.Account, error) {
	created := make([]accounts.Account, 0, len(seeds))

	err := pgutils.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM accounts`)
		if err != nil {
			return fmt.Errorf("clear accounts: %w", err)
		}

		for _, s := range seeds {
			if s.Balance < 0 {
				return accounts.ErrNegativeBalance
			}

			a := accounts.Account{
				ID:      uuid.New(),
				Name:    s.Name,
				Balance: s.Balance,
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO accounts (id, name, balance, version)
				VALUES ($1, $2, $3, 0)
			`, a.ID, a.Name, a.Balance)
			if err != nil {
				return fmt.Errorf("insert seed account %q: %w", s.Name, err)
			}

			created = append(created, a)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reset accounts: %w", err)
	}

	return created, nil
}
