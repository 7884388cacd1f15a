package log

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// SlowThreshold is one frame at 60fps. Slower operations are logged.
const SlowThreshold = 16 * time.Millisecond

// Timing aggregates the durations recorded under one name.
type Timing struct {
	Name  string
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	// Slow counts durations over SlowThreshold.
	Slow int64
}

// Mean is the average duration, or 0 when nothing was recorded.
func (t Timing) Mean() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Count)
}

// Profiler aggregates how long named operations (view renders, sizing
// passes) take. It records nothing unless debug mode is on.
type Profiler struct {
	mu      sync.Mutex
	timings map[string]*Timing
}

var profiler = &Profiler{timings: make(map[string]*Timing)}

// GetProfiler returns the global profiler.
func GetProfiler() *Profiler {
	return profiler
}

// Start begins timing an operation and returns the function that stops it.
//
//	defer log.GetProfiler().Start("view")()
func (p *Profiler) Start(name string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.Observe(name, time.Since(start))
	}
}

// Observe records one duration for name.
func (p *Profiler) Observe(name string, d time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	t, ok := p.timings[name]
	if !ok {
		t = &Timing{Name: name, Min: d, Max: d}
		p.timings[name] = t
	}
	t.Count++
	t.Total += d
	t.Min = min(t.Min, d)
	t.Max = max(t.Max, d)
	if d > SlowThreshold {
		t.Slow++
	}
	p.mu.Unlock()

	if d > SlowThreshold {
		Debug("slow %s: %v", name, d)
	}
}

// Stats returns a copy of every timing, the most expensive first.
func (p *Profiler) Stats() []Timing {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := make([]Timing, 0, len(p.timings))
	for _, t := range p.timings {
		stats = append(stats, *t)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// GetStats formats Stats for the debug log. It is empty outside debug mode.
func (p *Profiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n=== Profile ===\n")
	for _, t := range p.Stats() {
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v mean=%v min=%v max=%v slow=%d\n",
			t.Name, t.Count, t.Total, t.Mean(), t.Min, t.Max, t.Slow))
	}
	return sb.String()
}

// LogStats writes the statistics to the debug log.
func (p *Profiler) LogStats() {
	if stats := p.GetStats(); stats != "" {
		Debug("%s", stats)
	}
}

// reset clears all profiling data.
func (p *Profiler) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timings = make(map[string]*Timing)
}
