package transfer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Collector is an in-memory MetricsCollector that renders its counters in
// Prometheus text exposition format.
type Collector struct {
	mu                    sync.RWMutex
	submittedTotal        float64
	confirmedTotal        float64
	failedTotal           map[Stage]float64
	compensationsTotal    float64
	reconciliationsNeeded float64
	durationSum           float64
	durationCount         float64
}

var _ MetricsCollector = (*Collector)(nil)

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{failedTotal: map[Stage]float64{}}
}

func (c *Collector) RecordSubmitted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submittedTotal++
}

func (c *Collector) RecordConfirmed(duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmedTotal++
	c.observe(duration)
}

func (c *Collector) RecordFailed(stage Stage, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failedTotal[stage]++
	c.observe(duration)
}

func (c *Collector) RecordCompensation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.compensationsTotal++
}

func (c *Collector) RecordReconciliationNeeded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconciliationsNeeded++
}

func (c *Collector) observe(duration time.Duration) {
	c.durationSum += duration.Seconds()
	c.durationCount++
}

// RenderPrometheus returns the current counters in text exposition format.
func (c *Collector) RenderPrometheus() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sb strings.Builder
	writeLine := func(line string) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	writeLine("# HELP transfer_submitted_total Total transfers accepted into the queue")
	writeLine("# TYPE transfer_submitted_total counter")
	writeLine(fmt.Sprintf("transfer_submitted_total %.0f", c.submittedTotal))

	writeLine("# HELP transfer_confirmed_total Total transfers confirmed")
	writeLine("# TYPE transfer_confirmed_total counter")
	writeLine(fmt.Sprintf("transfer_confirmed_total %.0f", c.confirmedTotal))

	writeLine("# HELP transfer_failed_total Total failed transfers by failure stage")
	writeLine("# TYPE transfer_failed_total counter")
	stages := make([]string, 0, len(c.failedTotal))
	for stage := range c.failedTotal {
		stages = append(stages, string(stage))
	}
	sort.Strings(stages)
	for _, stage := range stages {
		writeLine(fmt.Sprintf("transfer_failed_total{stage=%q} %.0f", stage, c.failedTotal[Stage(stage)]))
	}

	writeLine("# HELP transfer_compensations_total Total compensating credits applied")
	writeLine("# TYPE transfer_compensations_total counter")
	writeLine(fmt.Sprintf("transfer_compensations_total %.0f", c.compensationsTotal))

	writeLine("# HELP transfer_reconciliations_needed_total Transfers left inconsistent by a failed compensation")
	writeLine("# TYPE transfer_reconciliations_needed_total counter")
	writeLine(fmt.Sprintf("transfer_reconciliations_needed_total %.0f", c.reconciliationsNeeded))

	writeLine("# HELP transfer_processing_duration_seconds Saga execution duration")
	writeLine("# TYPE transfer_processing_duration_seconds summary")
	writeLine(fmt.Sprintf("transfer_processing_duration_seconds_sum %.6f", c.durationSum))
	writeLine(fmt.Sprintf("transfer_processing_duration_seconds_count %.0f", c.durationCount))

	return sb.String()
}
