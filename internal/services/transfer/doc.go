/*
Package transfer implements the fund transfer queue and its processing loop.

A submission stores a transfer with status InQueue, appends its transaction
id to the submission queue and wakes the processor. A single worker drains
the queue in FIFO order, running the debit/credit/compensate sequence against
the external account ledger for each transfer and recording the terminal
status (Confirmed or Error). Callers poll the outcome by transaction id.

Usage:

	svc := transfer.NewService(ledgerClient, logger, collector, transfer.Config{})

	id := svc.Submit(transfer.SubmitRequest{
	    AccountOrigin:      "1001",
	    AccountDestination: "2002",
	    Value:              decimal.NewFromInt(100),
	})

	status := svc.Status(id)

Guarantees:

  - At most one worker is ever draining the queue, so transfers are applied
    one after another in submission order.
  - Submission never fails synchronously; saga failures surface only through
    Status.
  - A transfer is attempted exactly once; there are no retries and failed
    transfers are not re-enqueued.
  - Statuses only move forward: InQueue -> Processing -> Confirmed | Error.

When the credit to the destination fails after a successful debit, a
compensating credit is posted back to the origin account. If that
compensation itself fails, the transfer still ends in Error with the credit
failure as its message, and the transfer is flagged for manual
reconciliation with the compensation error attached.
*/
package transfer
