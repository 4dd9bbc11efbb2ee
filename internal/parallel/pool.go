// Package parallel provides the data-parallel fan-out used by render
// data extraction.
//
// Work is partitioned into grain-sized index ranges and distributed
// over a pool of workers, each with its own queue. Idle workers steal
// from the others, which keeps the pool balanced when some ranges are
// slower than others (dense faces next to empty ones).
//
// Thread safety: Pool is safe for concurrent use.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of worker goroutines with per-worker queues and work
// stealing. Workers start immediately and idle until work arrives.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// Zero or negative means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued items per worker hides submission latency without
	// holding much work hostage in a single queue.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

// Workers returns the worker count.
func (p *Pool) Workers() int { return p.workers }

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			if job != nil {
				job()
			}
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			// Nothing to steal anywhere; block on the own queue.
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				if job != nil {
					job()
				}
			}
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *Pool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run distributes the jobs round-robin across the workers and blocks
// until every one of them has finished. A closed pool runs nothing.
func (p *Pool) Run(jobs []func()) {
	if len(jobs) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))

	for i, job := range jobs {
		job := job
		wrapped := func() {
			defer pending.Done()
			job()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
		}
	}
	pending.Wait()
}

// Close stops accepting work, finishes what is queued, and stops the
// workers. Safe to call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
