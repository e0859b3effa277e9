// pkg/pipeline/metrics.go
package pipeline

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/meridian-data/starmart/pkg/transform"
)

// StageMetrics tracks timing for one pipeline stage
type StageMetrics struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns the elapsed time of the stage
func (sm *StageMetrics) Duration() time.Duration {
	if sm.EndTime.IsZero() {
		return time.Since(sm.StartTime)
	}
	return sm.EndTime.Sub(sm.StartTime)
}

// RunMetrics tracks timing and row counts across one pipeline run
type RunMetrics struct {
	mu        sync.Mutex
	logger    *zap.Logger
	StartTime time.Time
	EndTime   time.Time
	Stages    []*StageMetrics
	RowCounts map[string]transform.Stats
}

// NewRunMetrics creates a new RunMetrics instance
func NewRunMetrics(logger *zap.Logger) *RunMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RunMetrics{
		logger:    logger,
		StartTime: time.Now(),
		RowCounts: make(map[string]transform.Stats),
	}
}

// StartStage begins tracking a stage and returns a function that ends it
func (rm *RunMetrics) StartStage(name string) func() {
	rm.mu.Lock()
	sm := &StageMetrics{Name: name, StartTime: time.Now()}
	rm.Stages = append(rm.Stages, sm)
	rm.mu.Unlock()

	return func() {
		rm.mu.Lock()
		sm.EndTime = time.Now()
		rm.mu.Unlock()

		rm.logger.Debug("Completed pipeline stage",
			zap.String("stage", name),
			zap.Duration("duration", sm.Duration()))
	}
}

// RecordRows records transform counts for a domain
func (rm *RunMetrics) RecordRows(domain string, stats transform.Stats) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.RowCounts[domain] = stats
}

// Complete marks the run as finished and logs a summary
func (rm *RunMetrics) Complete() {
	rm.mu.Lock()
	rm.EndTime = time.Now()
	duration := rm.EndTime.Sub(rm.StartTime)
	rm.mu.Unlock()

	fields := []zap.Field{zap.Duration("totalDuration", duration)}
	for domain, stats := range rm.RowCounts {
		fields = append(fields,
			zap.Int(domain+"Processed", stats.Processed),
			zap.Int(domain+"Kept", stats.Kept),
			zap.Int(domain+"Skipped", stats.Skipped))
	}
	rm.logger.Info("Pipeline run completed", fields...)
}

// Duration returns the total run duration
func (rm *RunMetrics) Duration() time.Duration {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.EndTime.IsZero() {
		return time.Since(rm.StartTime)
	}
	return rm.EndTime.Sub(rm.StartTime)
}

// Summary renders per-stage timings as a single line for log output
func (rm *RunMetrics) Summary() string {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	out := ""
	for i, sm := range rm.Stages {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%.2fs", sm.Name, sm.Duration().Seconds())
	}
	return out
}
