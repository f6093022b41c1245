// Package metrics provides in-process metric cells: cheap, thread-safe
// accumulators for counters, distributions and gauges. A reporting layer
// reads cumulative state through the Cumulative methods; Combine folds one
// cell's state into another when merging across workers.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// CounterCell tracks a single int64 counter. The zero value is ready to use.
type CounterCell struct {
	v atomic.Int64
}

func (c *CounterCell) Inc(n int64) { c.v.Add(n) }

func (c *CounterCell) Cumulative() int64 { return c.v.Load() }

// Combine folds another counter's cumulative value into this one.
func (c *CounterCell) Combine(other *CounterCell) { c.v.Add(other.Cumulative()) }

// DistributionData is the cumulative state of a distribution. The zero value
// is the identity (empty distribution); Min and Max are meaningful only when
// Count > 0.
type DistributionData struct {
	Sum   int64
	Count int64
	Min   int64
	Max   int64
}

func (d DistributionData) Mean() float64 {
	if d.Count == 0 {
		return 0
	}
	return float64(d.Sum) / float64(d.Count)
}

// Combine merges two distribution states.
func (d DistributionData) Combine(other DistributionData) DistributionData {
	if other.Count == 0 {
		return d
	}
	if d.Count == 0 {
		return other
	}
	return DistributionData{
		Sum:   d.Sum + other.Sum,
		Count: d.Count + other.Count,
		Min:   min(d.Min, other.Min),
		Max:   max(d.Max, other.Max),
	}
}

// DistributionCell tracks a distribution of int64 samples. The zero value is
// ready to use.
type DistributionCell struct {
	mu sync.Mutex
	d  DistributionData
}

func (c *DistributionCell) Update(v int64) {
	c.mu.Lock()
	if c.d.Count == 0 {
		c.d = DistributionData{Sum: v, Count: 1, Min: v, Max: v}
	} else {
		c.d.Sum += v
		c.d.Count++
		c.d.Min = min(c.d.Min, v)
		c.d.Max = max(c.d.Max, v)
	}
	c.mu.Unlock()
}

func (c *DistributionCell) Cumulative() DistributionData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d
}

func (c *DistributionCell) Combine(other *DistributionCell) {
	od := other.Cumulative()
	c.mu.Lock()
	c.d = c.d.Combine(od)
	c.mu.Unlock()
}

// GaugeData is a gauge observation: the latest value and when it was set.
type GaugeData struct {
	Value     int64
	Timestamp time.Time
}

// GaugeCell tracks the most recently set value. The zero value is ready to
// use; an unset gauge reports a zero Timestamp.
type GaugeCell struct {
	mu sync.Mutex
	d  GaugeData
}

func (c *GaugeCell) Set(v int64) {
	c.mu.Lock()
	c.d = GaugeData{Value: v, Timestamp: time.Now()}
	c.mu.Unlock()
}

func (c *GaugeCell) Cumulative() GaugeData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d
}

// Combine keeps the most recently set of the two observations, matching
// latest-wins gauge semantics.
func (c *GaugeCell) Combine(other *GaugeCell) {
	od := other.Cumulative()
	c.mu.Lock()
	if od.Timestamp.After(c.d.Timestamp) {
		c.d = od
	}
	c.mu.Unlock()
}
