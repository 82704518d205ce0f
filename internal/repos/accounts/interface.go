package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrNegativeBalance = errors.New("initial balance must not be negative")
var ErrVersionConflict = errors.New("account version conflict")

// Account is a ledger account. Balance is held in minor currency units
// (cents) as int64; floats would drift across many transfers.
// Version counts successful mutations and is the optimistic-concurrency
// token checked by ConditionalSave.
type Account struct {
	ID      uuid.UUID
	Name    string
	Balance int64
	Version int64
}

// Seed describes one account to create during an administrative reset.
type Seed struct {
	Name    string
	Balance int64
}

// Store is the durable account storage contract.
//
// ConditionalSave is the only mutation primitive available to callers
// mutating existing accounts: it writes acct.Balance only if the stored
// version still equals acct.Version, increments the version, and returns
// the stored record. On mismatch it returns ErrVersionConflict and writes
// nothing. There is no unconditional overwrite.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Create(ctx context.Context, name string, initialBalance int64) (Account, error)
	ConditionalSave(ctx context.Context, acct Account) (Account, error)
	Reset(ctx context.Context, seeds []Seed) ([]Account, error)
}
