// Package worker provides a worker pool that splits perft searches across
// root moves.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// WorkItem is one root move to search below.
type WorkItem struct {
	Board chess.Board // Position before Move; each item owns its copy
	Move  chess.Move
	Depth int // Depth counted from Board, so Move itself is ply 1
	Index int // Position of Move in the root move list
}

// ProcessResult is the node count below one root move.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes int64
	Error error
}

// ProcessFunc searches one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted root moves on a fixed set of
// goroutines.
type Pool struct {
	workers int
	backlog int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of searching goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets how many items and results may be queued. Values
// below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.backlog = size
		}
	}
}

// NewPoolWithOptions creates a pool that runs process. By default it has
// one worker and a backlog of 10.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		backlog: 10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.backlog)
	p.results = make(chan ProcessResult, p.backlog)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the backlog is full. It returns
// false without queueing once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop makes workers skip every item not yet started and makes Submit
// refuse new ones.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results delivers one result per processed item, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
