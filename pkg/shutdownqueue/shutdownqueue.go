// Package shutdownqueue collects cleanup tasks and drains them in LIFO
// order at process exit.
//
// Register tasks as resources come up, then drain once at the end of
// main:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	_ = shutdownqueue.Shutdown(ctx)
//
// Tasks run once each; panics are recovered; Shutdown is idempotent and
// returns task errors joined with errors.Join.
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is a shutdown function. It should honor ctx and return an error
// if it cannot finish in time.
type Task func(ctx context.Context) error

// Queue is a LIFO list of shutdown tasks, safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	tasks  []Task
	closed bool
}

// Add registers a task. Nil tasks and adds after Shutdown are no-ops.
func (q *Queue) Add(t Task) {
	if t == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.tasks = append(q.tasks, t)
}

// Shutdown drains registered tasks in reverse registration order. It
// stops early if ctx expires, folding the context error into the result.
// Calling it again is a no-op.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()

	tasks := q.tasks
	q.tasks = nil
	q.closed = true

	q.mu.Unlock()

	var errs []error

	for i := len(tasks) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))

			return errors.Join(errs...)
		default:
		}

		err := runTask(ctx, tasks[i])
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func runTask(ctx context.Context, t Task) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task: %v", r)
		}
	}()

	return t(ctx)
}

// Default is the process-wide queue used by the package-level helpers.
var Default = new(Queue)

// Add registers a task on the Default queue.
func Add(t Task) { Default.Add(t) }

// Shutdown drains the Default queue.
func Shutdown(ctx context.Context) error { return Default.Shutdown(ctx) }
