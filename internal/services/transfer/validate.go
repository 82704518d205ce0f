package transfer

import "github.com/google/uuid"

// RawRequest is the wire shape of a transfer request before validation.
// Amount is a pointer so a missing field and an explicit zero are told
// apart.
type RawRequest struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        *int64 `json:"amount"`
}

// Request is a validated transfer request, the only shape the engine
// accepts.
type Request struct {
	From   uuid.UUID
	To     uuid.UUID
	Amount int64
}

// ParseRequest checks the raw request and produces a typed one. The first
// violation found is returned as a *ValidationError; the store is never
// touched.
func ParseRequest(raw RawRequest) (Request, error) {
	if raw.FromAccountID == "" {
		return Request{}, &ValidationError{Field: "fromAccountId", Reason: "required"}
	}

	if raw.ToAccountID == "" {
		return Request{}, &ValidationError{Field: "toAccountId", Reason: "required"}
	}

	if raw.Amount == nil {
		return Request{}, &ValidationError{Field: "amount", Reason: "required"}
	}

	from, err := uuid.Parse(raw.FromAccountID)
	if err != nil {
		return Request{}, &ValidationError{Field: "fromAccountId", Reason: "not a valid account id"}
	}

	to, err := uuid.Parse(raw.ToAccountID)
	if err != nil {
		return Request{}, &ValidationError{Field: "toAccountId", Reason: "not a valid account id"}
	}

	if *raw.Amount <= 0 {
		return Request{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	if from == to {
		return Request{}, &ValidationError{Field: "toAccountId", Reason: "must differ from fromAccountId"}
	}

	return Request{From: from, To: to, Amount: *raw.Amount}, nil
}
