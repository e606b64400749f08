package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a fund transfer.
type Status string

const (
	StatusInQueue    Status = "InQueue"
	StatusProcessing Status = "Processing"
	StatusConfirmed  Status = "Confirmed"
	StatusError      Status = "Error"
)

// IsFinal reports whether no further status transition can occur.
func (s Status) IsFinal() bool {
	return s == StatusConfirmed || s == StatusError
}

// TransferStatus is the caller-visible status of a transfer. Message is
// populated only for StatusError.
type TransferStatus struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Transfer is a requested money move between two ledger accounts. The account
// fields and Value are immutable after creation; Status is mutated only by
// the queue processor.
type Transfer struct {
	ID                 uuid.UUID
	AccountOrigin      string
	AccountDestination string
	Value              decimal.Decimal
	Status             TransferStatus

	// NeedsReconciliation is set when a compensating credit failed, leaving
	// the origin debited with no applied reversal. ReconciliationNote carries
	// the compensation error for operators.
	NeedsReconciliation bool
	ReconciliationNote  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
