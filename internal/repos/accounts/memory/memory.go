// Package memory holds a map-backed accounts.Store with the same
// conditional-save semantics as the postgres implementation. It backs the
// engine and handler test suites and needs no running database.
package memory

import (
	"context"
	"sync"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/google/uuid"
)

var _ accounts.Store = (*Store)(nil)

type Store struct {
	mu    sync.Mutex
	accts map[uuid.UUID]accounts.Account
}

func New() *Store {
	return &Store{accts: make(map[uuid.UUID]accounts.Account)}
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (accounts.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accts[id]
	if !ok {
		return accounts.Account{}, accounts.ErrAccountNotFound
	}

	return a, nil
}

func (s *Store) List(_ context.Context) ([]accounts.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]accounts.Account, 0, len(s.accts))
	for _, a := range s.accts {
		out = append(out, a)
	}

	return out, nil
}

func (s *Store) Create(_ context.Context, name string, initialBalance int64) (accounts.Account, error) {
	if initialBalance < 0 {
		return accounts.Account{}, accounts.ErrNegativeBalance
	}

	a := accounts.Account{
		ID:      uuid.New(),
		Name:    name,
		Balance: initialBalance,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accts[a.ID] = a

	return a, nil
}

func (s *Store) ConditionalSave(_ context.Context, acct accounts.Account) (accounts.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.accts[acct.ID]
	if !ok {
		return accounts.Account{}, accounts.ErrAccountNotFound
	}

	if cur.Version != acct.Version {
		return accounts.Account{}, accounts.ErrVersionConflict
	}

	saved := acct
	saved.Version++
	s.accts[acct.ID] = saved

	return saved, nil
}

func (s *Store) Reset(_ context.Context, seeds []accounts.Seed) ([]accounts.Account, error) {
	created := make([]accounts.Account, 0, len(seeds))

	for _, seed := range seeds {
		if seed.Balance < 0 {
			return nil, accounts.ErrNegativeBalance
		}

		created = append(created, accounts.Account{
			ID:      uuid.New(),
			Name:    seed.Name,
			Balance: seed.Balance,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accts = make(map[uuid.UUID]accounts.Account, len(created))
	for _, a := range created {
		s.accts[a.ID] = a
	}

	return created, nil
}
