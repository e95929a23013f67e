package queue

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFIFOOrder(t *testing.T) {
	q := New(1) // serialize so completion order equals submission order

	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		q.Enqueue(func(uint64) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	q.Wait()

	for i, got := range order {
		if got != i {
			t.Fatalf("completion order = %v, want ascending", order)
		}
	}
}

func TestConcurrencyCap(t *testing.T) {
	const limit = 2
	q := New(limit)

	var running, peak atomic.Int64
	release := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 6; i++ {
		wg.Add(1)
		q.Enqueue(func(uint64) {
			defer wg.Done()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			running.Add(-1)
		})
	}

	// Give the drainer a moment to start what it is allowed to.
	time.Sleep(50 * time.Millisecond)
	if a := q.Active(); a != limit {
		t.Errorf("Active() = %d, want %d", a, limit)
	}
	if p := q.Pending(); p != 6-limit {
		t.Errorf("Pending() = %d, want %d", p, 6-limit)
	}

	close(release)
	wg.Wait()
	q.Wait()

	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrency = %d, want <= %d", p, limit)
	}
}

func TestDefaultConcurrency(t *testing.T) {
	if q := New(0); q.limit != DefaultConcurrency {
		t.Errorf("New(0).limit = %d, want %d", q.limit, DefaultConcurrency)
	}
	if q := New(-3); q.limit != DefaultConcurrency {
		t.Errorf("New(-3).limit = %d, want %d", q.limit, DefaultConcurrency)
	}
}

func TestClearDropsPending(t *testing.T) {
	q := New(1)

	block := make(chan struct{})
	started := make(chan struct{})
	q.Enqueue(func(uint64) {
		close(started)
		<-block
	})
	<-started

	var ran atomic.Int64
	for i := 0; i < 3; i++ {
		q.Enqueue(func(uint64) { ran.Add(1) })
	}

	q.Clear()
	close(block)
	q.Wait()

	if n := ran.Load(); n != 0 {
		t.Errorf("%d pending tasks ran after Clear", n)
	}
}

func TestClearAdvancesEpoch(t *testing.T) {
	q := New(1)

	before := q.Epoch()
	q.Clear()
	after := q.Epoch()

	if after != before+1 {
		t.Errorf("epoch went %d -> %d, want +1", before, after)
	}
	if !q.Stale(before) {
		t.Error("pre-Clear epoch not reported stale")
	}
	if q.Stale(after) {
		t.Error("current epoch reported stale")
	}
}

func TestInFlightTaskSeesStaleEpoch(t *testing.T) {
	q := New(1)

	block := make(chan struct{})
	started := make(chan struct{})
	stale := make(chan bool, 1)

	q.Enqueue(func(epoch uint64) {
		close(started)
		<-block
		stale <- q.Stale(epoch)
	})

	<-started
	q.Clear() // task is mid-flight; its captured epoch must go stale
	close(block)

	if !<-stale {
		t.Error("task survived Clear with a fresh epoch")
	}
	q.Wait()
}

func TestInFlightKeys(t *testing.T) {
	q := New(1)

	if q.IsInFlight("paper-1") {
		t.Error("fresh queue reports in-flight key")
	}

	q.AddInFlight("paper-1")
	if !q.IsInFlight("paper-1") {
		t.Error("key not in flight after AddInFlight")
	}
	if q.IsInFlight("paper-2") {
		t.Error("unrelated key reported in flight")
	}

	q.RemoveInFlight("paper-1", q.Epoch())
	if q.IsInFlight("paper-1") {
		t.Error("key still in flight after RemoveInFlight")
	}

	q.AddInFlight("paper-3")
	q.Clear()
	if q.IsInFlight("paper-3") {
		t.Error("in-flight keys survived Clear")
	}
}

func TestRemoveInFlightIgnoresStaleEpoch(t *testing.T) {
	q := New(1)

	q.AddInFlight("paper-1")
	stale := q.Epoch()

	// Reset while the first task is still running, then register a fresh
	// task for the same key.
	q.Clear()
	q.AddInFlight("paper-1")

	// The first task completes and tries to clean up; the record now
	// belongs to the newer task and must survive.
	q.RemoveInFlight("paper-1", stale)
	if !q.IsInFlight("paper-1") {
		t.Error("stale completion erased the live in-flight record")
	}

	q.RemoveInFlight("paper-1", q.Epoch())
	if q.IsInFlight("paper-1") {
		t.Error("current-epoch removal left the key in flight")
	}
}

func TestWaitIdleQueue(t *testing.T) {
	q := New(2)

	done := make(chan struct{})
	go func() {
		q.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked on an idle queue")
	}
}

func TestWaitBlocksUntilDrained(t *testing.T) {
	q := New(2)

	var completed atomic.Int64
	for i := 0; i < 10; i++ {
		q.Enqueue(func(uint64) {
			time.Sleep(5 * time.Millisecond)
			completed.Add(1)
		})
	}
	q.Wait()

	if n := completed.Load(); n != 10 {
		t.Errorf("Wait returned with %d/10 tasks complete", n)
	}
}
