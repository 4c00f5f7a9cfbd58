// Package profiler records timings and metrics of batch inpainting runs and
// renders them as a plain-text report.
package profiler

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"
)

// Profiler collects operation timings and custom metrics. It is safe for
// concurrent use by the workers of a batch.
type Profiler struct {
	mu        sync.Mutex
	startTime time.Time

	metrics    map[string]*MetricTracker
	operations map[string]*TimeTracker
}

// MetricTracker tracks statistics for a custom metric.
type MetricTracker struct {
	Sum   float64
	Min   float64
	Max   float64
	Count int64
}

// Avg returns the mean of the recorded values.
func (m MetricTracker) Avg() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Count int64
}

// Avg returns the mean duration of the operation.
func (t TimeTracker) Avg() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Count)
}

// Snapshot is a copy of the profiler's state.
type Snapshot struct {
	Uptime     time.Duration
	HeapAlloc  uint64
	NumGC      uint32
	Metrics    map[string]MetricTracker
	Operations map[string]TimeTracker
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{
		startTime:  time.Now(),
		metrics:    make(map[string]*MetricTracker),
		operations: make(map[string]*TimeTracker),
	}
}

// RecordMetric records a custom metric value.
//
// Arguments:
// - name: The name of the metric
// - value: The metric value to record
func (p *Profiler) RecordMetric(name string, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.metrics[name]
	if !exists {
		tracker = &MetricTracker{Min: value, Max: value}
		p.metrics[name] = tracker
	}

	tracker.Sum += value
	tracker.Count++
	tracker.Min = min(tracker.Min, value)
	tracker.Max = max(tracker.Max, value)
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.RecordDuration(name, time.Since(start))
	}
}

// RecordDuration records the completion time of an operation.
func (p *Profiler) RecordDuration(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operations[name]
	if !exists {
		tracker = &TimeTracker{Min: duration, Max: duration}
		p.operations[name] = tracker
	}

	tracker.Total += duration
	tracker.Count++
	tracker.Min = min(tracker.Min, duration)
	tracker.Max = max(tracker.Max, duration)
}

// Snapshot returns a copy of the current statistics.
func (p *Profiler) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot{
		Uptime:     time.Since(p.startTime),
		HeapAlloc:  mem.HeapAlloc,
		NumGC:      mem.NumGC,
		Metrics:    make(map[string]MetricTracker, len(p.metrics)),
		Operations: make(map[string]TimeTracker, len(p.operations)),
	}
	for name, m := range p.metrics {
		s.Metrics[name] = *m
	}
	for name, t := range p.operations {
		s.Operations[name] = *t
	}
	return s
}

// Report writes the statistics to w, metrics and operations sorted by name.
func (p *Profiler) Report(w io.Writer) {
	s := p.Snapshot()

	fmt.Fprintf(w, "Uptime: %v, heap: %s, GC cycles: %d\n",
		s.Uptime.Truncate(time.Millisecond), formatBytes(s.HeapAlloc), s.NumGC)

	if len(s.Metrics) > 0 {
		fmt.Fprintf(w, "\nMETRICS:\n")
		for _, name := range sortedKeys(s.Metrics) {
			m := s.Metrics[name]
			fmt.Fprintf(w, "  %s: avg=%.2f, min=%.2f, max=%.2f, samples=%d\n",
				name, m.Avg(), m.Min, m.Max, m.Count)
		}
	}

	if len(s.Operations) > 0 {
		fmt.Fprintf(w, "\nOPERATION TIMINGS:\n")
		for _, name := range sortedKeys(s.Operations) {
			t := s.Operations[name]
			fmt.Fprintf(w, "  %s: avg=%v, min=%v, max=%v, count=%d\n",
				name, t.Avg().Truncate(time.Microsecond),
				t.Min.Truncate(time.Microsecond),
				t.Max.Truncate(time.Microsecond),
				t.Count)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatBytes formats byte counts in human-readable format.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
