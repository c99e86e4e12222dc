package engine

import "container/heap"

// Task is a deferred one-shot callback
type Task func()

type scheduled struct {
	due  int64
	seq  uint64 // insertion order, FIFO among equal due ticks
	task Task
}

type taskHeap []scheduled

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(scheduled)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduled{}
	*h = old[:n-1]
	return item
}

// Scheduler holds one-shot tasks keyed by absolute due tick
// Not cancellable: every scheduled task eventually runs once its tick is reached
// Single-threaded: owned by the simulation loop
type Scheduler struct {
	queue taskHeap
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules task to run on the given tick
func (s *Scheduler) At(due int64, task Task) {
	s.seq++
	heap.Push(&s.queue, scheduled{due: due, seq: s.seq, task: task})
}

// RunDue runs every task due at or before now in (due, insertion) order
// Tasks scheduled by a running task for a tick <= now run in the same pass
// Returns the number of tasks executed
func (s *Scheduler) RunDue(now int64) int {
	ran := 0
	for len(s.queue) > 0 && s.queue[0].due <= now {
		item := heap.Pop(&s.queue).(scheduled)
		item.task()
		ran++
	}
	return ran
}

// Pending returns the number of tasks not yet run
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// NextDue returns the earliest due tick, ok=false when empty
func (s *Scheduler) NextDue() (int64, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}
