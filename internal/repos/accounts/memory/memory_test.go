package memory

import (
	"errors"
	"testing"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/google/uuid"
)

func TestCreateAndGet(t *testing.T) {
	t.Parallel()

	s := New()

	a, err := s.Create(t.Context(), "Alice", 1000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Version != 0 {
		t.Fatalf("new account version: want 0, got %d", a.Version)
	}

	got, err := s.Get(t.Context(), a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != a {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, a)
	}
}

func TestCreateNegativeBalance(t *testing.T) {
	t.Parallel()

	s := New()

	_, err := s.Create(t.Context(), "Bad", -1)
	if !errors.Is(err, accounts.ErrNegativeBalance) {
		t.Fatalf("want ErrNegativeBalance, got %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	s := New()

	_, err := s.Get(t.Context(), uuid.New())
	if !errors.Is(err, accounts.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestConditionalSave(t *testing.T) {
	t.Parallel()

	s := New()

	a, err := s.Create(t.Context(), "Alice", 1000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	a.Balance = 700

	saved, err := s.ConditionalSave(t.Context(), a)
	if err != nil {
		t.Fatalf("conditional save: %v", err)
	}
	if saved.Balance != 700 || saved.Version != 1 {
		t.Fatalf("saved state: %+v", saved)
	}

	// Replaying the same (now stale) version must conflict and not write.
	_, err = s.ConditionalSave(t.Context(), a)
	if !errors.Is(err, accounts.ErrVersionConflict) {
		t.Fatalf("want ErrVersionConflict, got %v", err)
	}

	cur, err := s.Get(t.Context(), a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Balance != 700 || cur.Version != 1 {
		t.Fatalf("conflicting save leaked a write: %+v", cur)
	}
}

func TestConditionalSaveMissing(t *testing.T) {
	t.Parallel()

	s := New()

	_, err := s.ConditionalSave(t.Context(), accounts.Account{ID: uuid.New(), Balance: 10})
	if !errors.Is(err, accounts.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestResetReplacesEverything(t *testing.T) {
	t.Parallel()

	s := New()

	_, err := s.Create(t.Context(), "Old", 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created, err := s.Reset(t.Context(), []accounts.Seed{
		{Name: "Alice", Balance: 1000},
		{Name: "Bob", Balance: 1000},
	})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created: want 2, got %d", len(created))
	}

	all, err := s.List(t.Context())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list after reset: want 2, got %d", len(all))
	}
}

func TestResetNegativeSeedRejected(t *testing.T) {
	t.Parallel()

	s := New()

	old, err := s.Create(t.Context(), "Old", 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = s.Reset(t.Context(), []accounts.Seed{{Name: "Bad", Balance: -1}})
	if !errors.Is(err, accounts.ErrNegativeBalance) {
		t.Fatalf("want ErrNegativeBalance, got %v", err)
	}

	// Failed reset must leave the previous accounts in place.
	_, err = s.Get(t.Context(), old.ID)
	if err != nil {
		t.Fatalf("old account lost after failed reset: %v", err)
	}
}
