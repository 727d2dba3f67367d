// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is reported for jobs submitted to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// Job is one unit of work. Jobs handed to the same Run call must not share
// mutable state.
type Job func() error

// WorkerPool is a pool of goroutines for running independent jobs, such as
// filtering a batch of image files.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, which balances batches where some jobs are much slower than others.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				work()
			}
		}
	}
}

// drainQueue runs whatever is left in queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one queued item from another worker, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run executes jobs across the workers and waits for all of them.
// The returned slice holds each job's error at the job's index; it is nil
// when every job succeeded. A panicking job does not stop the others; its
// panic is re-raised after the batch has finished.
//
// On a closed pool every job reports ErrClosed.
func (p *WorkerPool) Run(jobs []Job) []error {
	if len(jobs) == 0 {
		return nil
	}

	errs := make([]error, len(jobs))
	if !p.running.Load() {
		for i := range errs {
			errs[i] = ErrClosed
		}
		return errs
	}

	var (
		completion sync.WaitGroup
		panicOnce  sync.Once
		panicVal   any
	)
	completion.Add(len(jobs))

	for i, job := range jobs {
		wrapped := func() {
			defer completion.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { panicVal = r })
				}
			}()
			errs[i] = job()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			errs[i] = ErrClosed
			completion.Done()
		}
	}

	completion.Wait()

	if panicVal != nil {
		panic(panicVal)
	}
	for _, err := range errs {
		if err != nil {
			return errs
		}
	}
	return nil
}

// Close stops accepting work, waits for queued jobs and stops the workers.
// Close is safe to call multiple times but must not race with Run.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
