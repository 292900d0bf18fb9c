package gamemaster

import "sync"

// Scheduler defers work to a later tick so the caller can return (and a
// presentation layer can repaint) before an expensive search starts.
type Scheduler interface {
	Defer(task func())
}

type SchedulerFunc func(task func())

func (f SchedulerFunc) Defer(task func()) {
	f(task)
}

// GoScheduler runs each deferred task on its own goroutine.
func GoScheduler() Scheduler {
	return SchedulerFunc(func(task func()) {
		go task()
	})
}

// QueueScheduler holds deferred tasks until RunPending is called, for callers
// that drive a session from a single loop.
type QueueScheduler struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *QueueScheduler) Defer(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

func (q *QueueScheduler) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunPending runs the queued tasks in order, including any they queue.
func (q *QueueScheduler) RunPending() {
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
	}
}
