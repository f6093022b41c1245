package metrics

import (
	"sync"
	"testing"
)

func TestCounterCellConcurrent(t *testing.T) {
	var c CounterCell
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Inc(1)
			}
		}()
	}
	wg.Wait()
	if got := c.Cumulative(); got != 8000 {
		t.Fatalf("Cumulative: got %d want 8000", got)
	}
}

func TestCounterCombine(t *testing.T) {
	var a, b CounterCell
	a.Inc(3)
	b.Inc(4)
	a.Combine(&b)
	if got := a.Cumulative(); got != 7 {
		t.Fatalf("Combine: got %d want 7", got)
	}
}

func TestDistributionCell(t *testing.T) {
	var d DistributionCell
	for _, v := range []int64{4, -2, 10} {
		d.Update(v)
	}
	got := d.Cumulative()
	want := DistributionData{Sum: 12, Count: 3, Min: -2, Max: 10}
	if got != want {
		t.Fatalf("Cumulative: got %+v want %+v", got, want)
	}
	if got.Mean() != 4 {
		t.Fatalf("Mean: got %g want 4", got.Mean())
	}
}

func TestDistributionCombineIdentity(t *testing.T) {
	empty := DistributionData{}
	full := DistributionData{Sum: 5, Count: 2, Min: 1, Max: 4}

	if got := empty.Combine(full); got != full {
		t.Fatalf("identity left: %+v", got)
	}
	if got := full.Combine(empty); got != full {
		t.Fatalf("identity right: %+v", got)
	}

	other := DistributionData{Sum: -3, Count: 1, Min: -3, Max: -3}
	want := DistributionData{Sum: 2, Count: 3, Min: -3, Max: 4}
	if got := full.Combine(other); got != want {
		t.Fatalf("Combine: got %+v want %+v", got, want)
	}
}

func TestGaugeCell(t *testing.T) {
	var g GaugeCell
	if d := g.Cumulative(); !d.Timestamp.IsZero() {
		t.Fatalf("unset gauge has timestamp: %+v", d)
	}
	g.Set(11)
	d := g.Cumulative()
	if d.Value != 11 || d.Timestamp.IsZero() {
		t.Fatalf("Set: %+v", d)
	}

	var later GaugeCell
	later.Set(22)
	g.Combine(&later)
	if got := g.Cumulative().Value; got != 22 {
		t.Fatalf("Combine should keep latest: got %d", got)
	}
}
