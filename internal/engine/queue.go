package engine

import "github.com/eapache/queue"

// updateQueue buffers mutations requested while the program is actively
// executing. Each entry is a closure that overwrites one slot's stored
// value with the value computed at enqueue time.
//
// The engine installs a fresh queue at the start of every pass, so a
// drained queue is never reused and re-entrant runs cannot see an outer
// context's updates.
type updateQueue struct {
	q *queue.Queue
}

func newUpdateQueue() *updateQueue {
	return &updateQueue{q: queue.New()}
}

// Push appends an update to the back of the queue.
func (u *updateQueue) Push(apply func()) {
	u.q.Add(apply)
}

// Len returns the number of pending updates.
func (u *updateQueue) Len() int {
	return u.q.Length()
}

// Drain applies every queued update in enqueue order.
func (u *updateQueue) Drain() {
	for u.q.Length() > 0 {
		u.q.Remove().(func())()
	}
}
