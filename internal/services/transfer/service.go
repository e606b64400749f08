package transfer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fundflow/internal/models"
	"fundflow/internal/services/ledger"
)

// service implements the transfer Service interface.
type service struct {
	store   *store
	ledger  ledger.Client
	logger  *zap.Logger
	metrics MetricsCollector

	// running guards the worker: it is set with a compare-and-swap before a
	// drain starts, so at most one worker is ever active.
	running atomic.Bool
	wg      sync.WaitGroup
}

// NewService creates a new transfer service instance.
func NewService(ledgerClient ledger.Client, logger *zap.Logger, metrics MetricsCollector, config Config) Service {
	if ledgerClient == nil {
		panic("ledger client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		store:   newStore(config.QueueCapacity),
		ledger:  ledgerClient,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *service) Submit(req SubmitRequest) uuid.UUID {
	id := s.store.add(req)
	s.metrics.RecordSubmitted()
	s.logger.Info("transfer accepted",
		zap.String("transaction_id", id.String()),
		zap.String("account_origin", req.AccountOrigin),
		zap.String("account_destination", req.AccountDestination),
		zap.String("value", req.Value.String()),
	)

	s.dispatch()

	return id
}

func (s *service) Status(id uuid.UUID) models.TransferStatus {
	return s.store.status(id)
}

func (s *service) Drain() {
	s.wg.Wait()
}

// dispatch starts a worker unless one is already draining the queue. The
// running worker is guaranteed to see the id just enqueued: it rechecks the
// queue after releasing the flag before exiting.
func (s *service) dispatch() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	s.wg.Add(1)
	go s.drainQueue()
}

// drainQueue pops ids until the queue is empty, then stops. A submission
// landing between the last pop and the flag release would be stranded with
// no active worker, so the worker re-acquires the flag and keeps going when
// it finds the queue non-empty after releasing.
func (s *service) drainQueue() {
	defer s.wg.Done()

	for {
		for {
			id, ok := s.store.popNext()
			if !ok {
				break
			}
			s.process(id)
		}

		s.running.Store(false)
		if !s.store.hasPending() || !s.running.CompareAndSwap(false, true) {
			return
		}
	}
}

// process runs the saga for one dequeued id and records the terminal status.
func (s *service) process(id uuid.UUID) {
	t, ok := s.store.beginProcessing(id)
	if !ok {
		s.logger.Debug("skipping dequeued transfer not in queue state",
			zap.String("transaction_id", id.String()))
		return
	}

	start := time.Now()
	result := s.runSaga(context.Background(), t)
	elapsed := time.Since(start)

	switch {
	case result.confirmed:
		s.store.setStatus(id, models.StatusConfirmed, "")
		s.metrics.RecordConfirmed(elapsed)
		s.logger.Info("transfer confirmed",
			zap.String("transaction_id", id.String()),
			zap.Duration("elapsed", elapsed),
		)

	case result.failedStage == StageCompensation:
		// The origin was debited and the reversal did not apply. Keep the
		// original credit failure as the visible message and flag the
		// transfer for manual reconciliation with the compensation error.
		s.store.setStatus(id, models.StatusError, result.message)
		s.store.markUnreconciled(id, result.compensationErr.Error())
		s.metrics.RecordFailed(StageCompensation, elapsed)
		s.metrics.RecordReconciliationNeeded()
		s.logger.Error("compensation failed, manual reconciliation required",
			zap.String("transaction_id", id.String()),
			zap.String("credit_error", result.message),
			zap.Error(result.compensationErr),
		)

	default:
		s.store.setStatus(id, models.StatusError, result.message)
		s.metrics.RecordFailed(result.failedStage, elapsed)
		if result.failedStage == StageCredit {
			s.metrics.RecordCompensation()
		}
		s.logger.Warn("transfer failed",
			zap.String("transaction_id", id.String()),
			zap.String("stage", string(result.failedStage)),
			zap.String("reason", result.message),
		)
	}
}
