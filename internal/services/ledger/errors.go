package ledger

import "errors"

// Client errors
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrLedgerUnavailable = errors.New("ledger service unavailable")
)
