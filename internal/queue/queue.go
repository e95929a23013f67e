// Package queue provides a FIFO task queue with a fixed concurrency cap
// and epoch-based cooperative cancellation.
package queue

import "sync"

// DefaultConcurrency is the default number of simultaneously running
// tasks.
const DefaultConcurrency = 2

// Task is one unit of queued work. It receives the epoch captured when it
// was enqueued; before applying side effects it must confirm the epoch is
// still current via Stale.
type Task func(epoch uint64)

// Queue drains tasks in submission order, running at most the configured
// number at a time. Clear empties the pending queue and bumps the epoch:
// in-flight tasks keep running, but their captured epoch goes stale and
// they are expected to discard their own results.
type Queue struct {
	mu       sync.Mutex
	idle     *sync.Cond
	pending  []Task
	active   int
	limit    int
	epoch    uint64
	inflight map[string]uint64 // key -> epoch it was registered under
}

// New creates a queue with the given concurrency cap. A cap <= 0 uses
// DefaultConcurrency.
func New(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	q := &Queue{
		limit:    limit,
		inflight: make(map[string]uint64),
	}
	q.idle = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends a task and triggers draining.
func (q *Queue) Enqueue(task Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, task)
	q.drainLocked()
}

// drainLocked starts pending tasks while capacity remains. Caller holds
// the lock.
func (q *Queue) drainLocked() {
	for q.active < q.limit && len(q.pending) > 0 {
		task := q.pending[0]
		q.pending = q.pending[1:]
		q.active++
		epoch := q.epoch

		go func() {
			task(epoch)

			q.mu.Lock()
			q.active--
			q.drainLocked()
			if q.active == 0 && len(q.pending) == 0 {
				q.idle.Broadcast()
			}
			q.mu.Unlock()
		}()
	}
}

// Clear discards all pending tasks and advances the epoch, invalidating
// the effects of every task still in flight.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
	q.epoch++
	q.inflight = make(map[string]uint64)
	if q.active == 0 {
		q.idle.Broadcast()
	}
}

// Epoch returns the current epoch.
func (q *Queue) Epoch() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.epoch
}

// Stale reports whether a captured epoch no longer matches the current
// one.
func (q *Queue) Stale(epoch uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return epoch != q.epoch
}

// IsInFlight reports whether key already has a task queued or running.
func (q *Queue) IsInFlight(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.inflight[key]
	return ok
}

// AddInFlight records key as having a task in flight under the current
// epoch.
func (q *Queue) AddInFlight(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.inflight[key] = q.epoch
}

// RemoveInFlight clears the in-flight record for key. The caller passes
// the epoch its task captured: a completion from an earlier epoch must
// not erase a record re-registered after a Clear.
func (q *Queue) RemoveInFlight(key string, epoch uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if cur, ok := q.inflight[key]; ok && cur == epoch {
		delete(q.inflight, key)
	}
}

// Pending returns the number of tasks waiting to start.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Active returns the number of tasks currently running.
func (q *Queue) Active() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active
}

// Wait blocks until the queue has no pending or running tasks.
func (q *Queue) Wait() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.active > 0 || len(q.pending) > 0 {
		q.idle.Wait()
	}
}
