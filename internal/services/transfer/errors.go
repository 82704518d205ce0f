package transfer

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a malformed transfer request. It is produced
// before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError identifies which side of a transfer is missing.
type NotFoundError struct {
	Side      string // "sender" or "receiver"
	AccountID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s account %s not found", e.Side, e.AccountID)
}

// InsufficientFundsError carries the diagnostics echoed back to the
// caller alongside the rejection.
type InsufficientFundsError struct {
	CurrentBalance   int64
	AmountToTransfer int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, requested %d",
		e.CurrentBalance, e.AmountToTransfer)
}
