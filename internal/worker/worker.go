// Package worker runs bounded numbers of tasks concurrently and collects their errors.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gruntwork-io/notecards/internal/errors"
)

// DefaultWorkers is used when a pool is created with a non-positive size.
const DefaultWorkers = 8

// Task is a unit of work. It must return promptly once ctx is done.
type Task func(ctx context.Context) error

// Pool executes submitted tasks with at most Size of them running at once.
// A pool is reusable: after Wait returns, new tasks may be submitted.
type Pool struct {
	ctx       context.Context
	semaphore chan struct{}
	errs      *errors.MultiError
	wg        sync.WaitGroup
	errsMu    sync.Mutex
	size      int
	closed    atomic.Bool
	skipped   atomic.Int64
}

// NewPool creates a pool bound to ctx. Tasks still queued when ctx is done are skipped.
func NewPool(ctx context.Context, size int) *Pool {
	if size <= 0 {
		size = DefaultWorkers
	}

	return &Pool{
		ctx:       ctx,
		size:      size,
		semaphore: make(chan struct{}, size),
		errs:      &errors.MultiError{},
	}
}

// Size returns the maximum number of concurrently running tasks.
func (p *Pool) Size() int {
	return p.size
}

// Submit schedules a task. It returns false if the pool is closed.
func (p *Pool) Submit(task Task) bool {
	if p.closed.Load() {
		return false
	}

	p.wg.Add(1)

	go func() {
		defer p.wg.Done()

		select {
		case p.semaphore <- struct{}{}:
		case <-p.ctx.Done():
			p.skipped.Add(1)
			return
		}

		defer func() { <-p.semaphore }()

		if p.ctx.Err() != nil {
			p.skipped.Add(1)
			return
		}

		if err := task(p.ctx); err != nil {
			p.appendError(err)
		}
	}()

	return true
}

// Wait blocks until every submitted task has finished or been skipped and
// returns the collected task errors. The error set is reset afterwards.
func (p *Pool) Wait() error {
	p.wg.Wait()

	p.errsMu.Lock()
	defer p.errsMu.Unlock()

	err := p.errs.ErrorOrNil()
	p.errs = &errors.MultiError{}

	return err
}

// Close refuses further submissions and waits for running tasks.
func (p *Pool) Close() error {
	p.closed.Store(true)
	return p.Wait()
}

// Skipped returns how many tasks never ran because the context was done.
func (p *Pool) Skipped() int64 {
	return p.skipped.Load()
}

func (p *Pool) appendError(err error) {
	p.errsMu.Lock()
	p.errs = p.errs.Append(err)
	p.errsMu.Unlock()
}
