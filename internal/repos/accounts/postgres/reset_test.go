package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/miniledger/internal/infra/pgtestutil"
	"github.com/fastprodman/miniledger/internal/repos/accounts"
)

func TestReset_ReplacesAllAccounts(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	_, err := repo.Create(ctx, "Old", 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created, err := repo.Reset(ctx, []accounts.Seed{
		{Name: "Alice", Balance: 1_000},
		{Name: "Bob", Balance: 1_000},
	})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created: want 2, got %d", len(created))
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list after reset: want 2 accounts, got %d", len(all))
	}

	for _, a := range all {
		if a.Balance != 1_000 || a.Version != 0 {
			t.Fatalf("unexpected seeded account: %+v", a)
		}
	}
}

func TestReset_RollsBackOnBadSeed(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	old, err := repo.Create(ctx, "Old", 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = repo.Reset(ctx, []accounts.Seed{
		{Name: "Good", Balance: 1_000},
		{Name: "Bad", Balance: -1},
	})
	if !errors.Is(err, accounts.ErrNegativeBalance) {
		t.Fatalf("want ErrNegativeBalance, got %v", err)
	}

	// The whole reset rolls back: the old account must still be there.
	got, err := repo.Get(ctx, old.ID)
	if err != nil {
		t.Fatalf("old account lost after failed reset: %v", err)
	}
	if got.Balance != 42 {
		t.Fatalf("old account mutated: %+v", got)
	}
}
