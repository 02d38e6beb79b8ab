package vubresto

import "sync"

// Pool is a bounded worker pool for fanning independent tasks over the
// small set of restaurants. Tasks share no mutable state, so there is no
// cancellation, timeout, or backpressure: callers submit everything and
// then block on Wait until the stage has drained.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// NewPool creates a pool running at most size tasks concurrently.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Go schedules fn on the pool, blocking while all workers are busy.
func (p *Pool) Go(fn func()) {
	p.sem <- struct{}{} // acquire
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }() // release
		fn()
	}()
}

// Wait blocks until every scheduled task has completed.
func (p *Pool) Wait() {
	p.wg.Wait()
}
