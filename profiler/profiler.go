// Package profiler records wall-clock timings of named processing stages.
package profiler

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	name      string
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// Name returns the operation name.
func (t *TimeTracker) Name() string { return t.name }

// Total returns the summed duration of every run.
func (t *TimeTracker) Total() time.Duration { return t.totalTime }

// Count returns how many runs were recorded.
func (t *TimeTracker) Count() int64 { return t.count }

// Profiler collects stage timings. It is safe for concurrent use, and a nil
// *Profiler records nothing.
type Profiler struct {
	mu             sync.Mutex
	startTime      time.Time
	order          []string
	operationTimes map[string]*TimeTracker
}

// New creates a profiler whose uptime starts now.
func New() *Profiler {
	return &Profiler{
		startTime:      time.Now(),
		operationTimes: make(map[string]*TimeTracker),
	}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Profiler) StartOperation(name string) func() {
	if p == nil {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordOperationTime(name, time.Since(start))
	}
}

// recordOperationTime records the completion time of an operation.
func (p *Profiler) recordOperationTime(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operationTimes[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operationTimes[name] = tracker
		p.order = append(p.order, name)
	}

	tracker.totalTime += duration
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Operations returns a snapshot of the trackers in first-recorded order.
func (p *Profiler) Operations() []TimeTracker {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]TimeTracker, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, *p.operationTimes[name])
	}
	return out
}

// Report writes the operation timings to w.
func (p *Profiler) Report(w io.Writer) {
	if p == nil {
		return
	}

	fmt.Fprintf(w, "OPERATION TIMINGS (uptime %v):\n", time.Since(p.startTime).Truncate(time.Microsecond))
	for _, t := range p.Operations() {
		avg := t.totalTime / time.Duration(t.count)
		fmt.Fprintf(w, "  %s: avg=%v, min=%v, max=%v, count=%d\n",
			t.name,
			avg.Truncate(time.Microsecond),
			t.minTime.Truncate(time.Microsecond),
			t.maxTime.Truncate(time.Microsecond),
			t.count)
	}
}
