package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/miniledger/internal/infra/pgtestutil"
	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/google/uuid"
)

func TestCreate_Basic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		acct    string
		balance int64
		wantErr error
	}{
		{name: "zero_balance", acct: "Alice", balance: 0},
		{name: "positive_balance", acct: "Bob", balance: 1_000},
		{name: "large_balance", acct: "Carol", balance: 900_000_000_000_000},
		{name: "negative_balance", acct: "Bad", balance: -1, wantErr: accounts.ErrNegativeBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			repo := New(db)

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			created, err := repo.Create(ctx, tt.acct, tt.balance)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}

				return
			}
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			got, err := repo.Get(ctx, created.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Name != tt.acct || got.Balance != tt.balance || got.Version != 0 {
				t.Fatalf("roundtrip mismatch: %+v", got)
			}
		})
	}
}

func TestGet_Missing(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	_, err := repo.Get(ctx, uuid.New())
	if !errors.Is(err, accounts.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}
