package transfer

import (
	"github.com/google/uuid"

	"fundflow/internal/models"
)

// Service accepts fund transfers for asynchronous processing and reports
// their status.
type Service interface {
	// Submit stores the transfer, queues it for processing and returns its
	// transaction id. It never fails; validation and ledger errors surface
	// through Status.
	Submit(req SubmitRequest) uuid.UUID

	// Status returns the current status of a transaction. Unknown ids yield
	// an Error status with a "Transaction not found" message; the lookup
	// never mutates stored state.
	Status(id uuid.UUID) models.TransferStatus

	// Drain blocks until the queue is empty and the worker has stopped.
	// Intended for shutdown and tests.
	Drain()
}
