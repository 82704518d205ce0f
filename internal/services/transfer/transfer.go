package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastprodman/miniledger/internal/infra/pairlock"
	"github.com/fastprodman/miniledger/internal/repos/accounts"
)

// restoreTimeout bounds the compensating save, which runs detached from
// the caller's context.
const restoreTimeout = 5 * time.Second

// Engine moves money between two accounts. All mutation goes through the
// store's ConditionalSave under a pair lock covering both account ids.
type Engine struct {
	store accounts.Store
	locks *pairlock.Locker
}

func NewEngine(store accounts.Store) *Engine {
	return &Engine{
		store: store,
		locks: pairlock.New(),
	}
}

type Result struct {
	SenderNewBalance   int64
	ReceiverNewBalance int64
}

// Transfer runs the full flow inside the pair-lock scope:
//
// 1) Re-read both accounts fresh (never pre-lock state).
// 2) Check funds against the locked sender balance.
// 3) Conditional-save the debit, then the credit.
// 4) If the credit fails after the debit landed, restore the sender
//    before surfacing the error.
func (e *Engine) Transfer(ctx context.Context, req Request) (Result, error) {
	var res Result

	err := e.locks.WithPair(req.From.String(), req.To.String(), func() error {
		sender, err := e.store.Get(ctx, req.From)
		if err != nil {
			if errors.Is(err, accounts.ErrAccountNotFound) {
				return &NotFoundError{Side: "sender", AccountID: req.From}
			}

			return fmt.Errorf("read sender: %w", err)
		}

		receiver, err := e.store.Get(ctx, req.To)
		if err != nil {
			if errors.Is(err, accounts.ErrAccountNotFound) {
				return &NotFoundError{Side: "receiver", AccountID: req.To}
			}

			return fmt.Errorf("read receiver: %w", err)
		}

		if sender.Balance < req.Amount {
			return &InsufficientFundsError{
				CurrentBalance:   sender.Balance,
				AmountToTransfer: req.Amount,
			}
		}

		sender.Balance -= req.Amount
		receiver.Balance += req.Amount

		savedSender, err := e.store.ConditionalSave(ctx, sender)
		if err != nil {
			return fmt.Errorf("debit sender: %w", err)
		}

		savedReceiver, err := e.store.ConditionalSave(ctx, receiver)
		if err != nil {
			rerr := e.restoreSender(ctx, savedSender, req.Amount)
			if rerr != nil {
				return fmt.Errorf("credit receiver: %w (restore sender: %v)", err, rerr)
			}

			return fmt.Errorf("credit receiver: %w", err)
		}

		res = Result{
			SenderNewBalance:   savedSender.Balance,
			ReceiverNewBalance: savedReceiver.Balance,
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// restoreSender compensates a debited sender after the credit failed, so
// the pair is never left torn. The save is conditioned on the version the
// debit produced; under the pair lock nothing else can have touched it.
//
// A fired caller deadline may be exactly why the credit failed, so the
// compensation runs on a context detached from the caller's, with its
// own budget.
func (e *Engine) restoreSender(ctx context.Context, debited accounts.Account, amount int64) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()

	debited.Balance += amount

	_, err := e.store.ConditionalSave(ctx, debited)
	if err != nil {
		slog.ErrorContext(ctx, "failed to restore sender after credit failure",
			"accountId", debited.ID, "amount", amount, "error", err)

		return err
	}

	return nil
}
