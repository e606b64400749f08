package ledger

import (
	"context"

	"fundflow/internal/models"
)

// Client talks to the external account ledger. Both operations are remote
// calls that can fail or time out.
type Client interface {
	// GetAccount fetches the current state of the account identified by
	// accountNumber.
	GetAccount(ctx context.Context, accountNumber string) (*models.Account, error)

	// AddEntry posts a debit or credit entry against an account.
	AddEntry(ctx context.Context, entry models.Entry) error
}
