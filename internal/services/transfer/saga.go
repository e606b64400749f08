package transfer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fundflow/internal/models"
)

// runSaga executes the debit/credit/compensate sequence for one transfer.
// No lock spans the remote ledger calls: consistency of the two-account move
// rests entirely on the compensating credit posted when the destination
// credit fails after a successful debit.
func (s *service) runSaga(ctx context.Context, t models.Transfer) sagaResult {
	if !t.Value.IsPositive() {
		return sagaResult{failedStage: StageValidation, message: msgValueNotPositive}
	}

	var origin, destination *models.Account

	// Both lookups run concurrently and are joined; either failure aborts
	// before any entry is posted.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		account, err := s.ledger.GetAccount(gctx, t.AccountOrigin)
		origin = account
		return err
	})
	g.Go(func() error {
		account, err := s.ledger.GetAccount(gctx, t.AccountDestination)
		destination = account
		return err
	})
	if err := g.Wait(); err != nil {
		return sagaResult{failedStage: StageLookup, message: err.Error()}
	}

	if origin.Balance.LessThan(t.Value) {
		return sagaResult{failedStage: StageValidation, message: msgInsufficientFunds}
	}

	debit := models.Entry{
		AccountNumber: origin.AccountNumber,
		Value:         t.Value,
		Type:          models.EntryTypeDebit,
	}
	if err := s.ledger.AddEntry(ctx, debit); err != nil {
		// Nothing has been credited yet, so no compensation is needed.
		return sagaResult{failedStage: StageDebit, message: err.Error()}
	}

	credit := models.Entry{
		AccountNumber: destination.AccountNumber,
		Value:         t.Value,
		Type:          models.EntryTypeCredit,
	}
	if err := s.ledger.AddEntry(ctx, credit); err != nil {
		reversal := models.Entry{
			AccountNumber: origin.AccountNumber,
			Value:         t.Value,
			Type:          models.EntryTypeCredit,
		}
		if compErr := s.ledger.AddEntry(ctx, reversal); compErr != nil {
			return sagaResult{failedStage: StageCompensation, message: err.Error(), compensationErr: compErr}
		}
		return sagaResult{failedStage: StageCredit, message: err.Error()}
	}

	return sagaResult{confirmed: true}
}
