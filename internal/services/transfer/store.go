package transfer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/models"
)

// store owns the transfer map and the submission queue. All access goes
// through its methods; the backing containers are never exposed, so status
// readers can run concurrently with the worker without tearing a transfer.
//
// Transfers are never removed: the map doubles as the status history.
type store struct {
	mu        sync.RWMutex
	transfers map[uuid.UUID]*models.Transfer
	queue     []uuid.UUID
}

func newStore(capacity int) *store {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &store{
		transfers: make(map[uuid.UUID]*models.Transfer, capacity),
		queue:     make([]uuid.UUID, 0, capacity),
	}
}

// add creates a transfer with status InQueue and enqueues its id, atomically,
// so every id ever handed to a caller has exactly one stored entry.
func (s *store) add(req SubmitRequest) uuid.UUID {
	now := time.Now().UTC()
	t := &models.Transfer{
		ID:                 uuid.New(),
		AccountOrigin:      req.AccountOrigin,
		AccountDestination: req.AccountDestination,
		Value:              req.Value,
		Status:             models.TransferStatus{Status: models.StatusInQueue},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transfers[t.ID] = t
	s.queue = append(s.queue, t.ID)

	return t.ID
}

// popNext dequeues the oldest pending id. ok is false when the queue is empty.
func (s *store) popNext() (id uuid.UUID, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return uuid.Nil, false
	}

	id = s.queue[0]
	s.queue = s.queue[1:]

	return id, true
}

// hasPending reports whether ids are still waiting in the queue.
func (s *store) hasPending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queue) > 0
}

// beginProcessing moves a transfer from InQueue to Processing and returns its
// immutable fields. ok is false when the id is unknown or the transfer is no
// longer InQueue; such dequeues are skipped, not treated as errors.
func (s *store) beginProcessing(id uuid.UUID) (t models.Transfer, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found := s.transfers[id]
	if !found || stored.Status.Status != models.StatusInQueue {
		return models.Transfer{}, false
	}

	stored.Status.Status = models.StatusProcessing
	stored.UpdatedAt = time.Now().UTC()

	return *stored, true
}

// setStatus records a terminal outcome. Final statuses are never overwritten.
func (s *store) setStatus(id uuid.UUID, status models.Status, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found := s.transfers[id]
	if !found || stored.Status.Status.IsFinal() {
		return
	}

	stored.Status = models.TransferStatus{Status: status, Message: message}
	stored.UpdatedAt = time.Now().UTC()
}

// markUnreconciled records a failed compensation: the origin account was
// debited but neither the destination credit nor the reversal applied.
func (s *store) markUnreconciled(id uuid.UUID, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, found := s.transfers[id]
	if !found {
		return
	}

	stored.NeedsReconciliation = true
	stored.ReconciliationNote = note
	stored.UpdatedAt = time.Now().UTC()
}

// status returns the current status of id, or a synthetic not-found Error
// status for unknown ids. Read-only.
func (s *store) status(id uuid.UUID) models.TransferStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, found := s.transfers[id]
	if !found {
		return models.TransferStatus{Status: models.StatusError, Message: msgTransactionNotFound}
	}

	return stored.Status
}

// get returns a copy of the stored transfer.
func (s *store) get(id uuid.UUID) (models.Transfer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, found := s.transfers[id]
	if !found {
		return models.Transfer{}, false
	}

	return *stored, true
}
