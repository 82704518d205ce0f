package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/google/uuid"
)

// ConditionalSave writes the balance as a single statement guarded by the
// version the caller last read. Zero rows means either the row is gone or
// another writer got there first; classifyMiss tells the two apart.
func (r *accountsRepo) ConditionalSave(ctx context.Context, acct accounts.Account) (accounts.Account, error) {
	saved := acct

	err := r.db.QueryRowContext(ctx, `
		UPDATE accounts
		SET balance = $2, version = version + 1
		WHERE id = $1
		  AND version = $3
		RETURNING version
	`, acct.ID, acct.Balance, acct.Version).Scan(&saved.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, r.classifyMiss(ctx, acct.ID)
		}

		return accounts.Account{}, fmt.Errorf("conditional save: %w", err)
	}

	return saved, nil
}

func (r *accountsRepo) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool

	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}

	if !exists {
		return accounts.ErrAccountNotFound
	}

	return accounts.ErrVersionConflict
}
