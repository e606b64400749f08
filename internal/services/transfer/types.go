package transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitRequest carries the caller-provided transfer fields.
type SubmitRequest struct {
	AccountOrigin      string
	AccountDestination string
	Value              decimal.Decimal
}

// Config holds configuration for the transfer service.
type Config struct {
	// QueueCapacity pre-sizes the submission queue. Zero means DefaultQueueCapacity.
	QueueCapacity int
}

// DefaultQueueCapacity is used when Config.QueueCapacity is not set.
const DefaultQueueCapacity = 128

// Stage identifies which step of the debit/credit/compensate sequence failed.
type Stage string

const (
	StageValidation   Stage = "validation"
	StageLookup       Stage = "lookup"
	StageDebit        Stage = "debit"
	StageCredit       Stage = "credit"
	StageCompensation Stage = "compensation"
)

// sagaResult is the outcome of a single saga run. Exactly one of confirmed
// or failedStage is meaningful. compensationErr is set only when the
// compensating credit itself failed; message then still carries the original
// credit failure so the root cause is never masked.
type sagaResult struct {
	confirmed       bool
	failedStage     Stage
	message         string
	compensationErr error
}

// MetricsCollector defines the interface for collecting transfer metrics.
type MetricsCollector interface {
	RecordSubmitted()
	RecordConfirmed(duration time.Duration)
	RecordFailed(stage Stage, duration time.Duration)
	RecordCompensation()
	RecordReconciliationNeeded()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordSubmitted()                    {}
func (n *NoopMetricsCollector) RecordConfirmed(time.Duration)       {}
func (n *NoopMetricsCollector) RecordFailed(Stage, time.Duration)   {}
func (n *NoopMetricsCollector) RecordCompensation()                 {}
func (n *NoopMetricsCollector) RecordReconciliationNeeded()         {}
