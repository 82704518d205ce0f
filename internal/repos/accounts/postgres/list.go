package accounts

import (
	"context"
	"fmt"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
)

func (r *accountsRepo) List(ctx context.Context) ([]accounts.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, balance, version
		FROM accounts
	`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []accounts.Account

	for rows.Next() {
		var a accounts.Account

		err = rows.Scan(&a.ID, &a.Name, &a.Balance, &a.Version)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		out = append(out, a)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return out, nil
}
