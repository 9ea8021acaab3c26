// Package worker runs transcripts through a pool of goroutines and hands the
// reports back in submission order.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/movecheck/internal/processing"
)

// WorkItem names one transcript to play.
type WorkItem struct {
	Source string // path, or "" for standard input
	Index  int    // submission order
}

// ProcessResult is the outcome of playing one transcript.
type ProcessResult struct {
	Source string
	Index  int
	Report *processing.Report
	Err    error // the transcript could not be read or set up
}

// ProcessFunc plays one work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a fixed set of worker goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is done, workers drain the
// remaining items without processing them.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip items not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run plays every source through a pool and returns the results sorted by
// submission order. Sources skipped after cancellation have no result.
func Run(ctx context.Context, sources []string, fn ProcessFunc, opts ...PoolOption) []ProcessResult {
	p := NewPool(fn, opts...)
	p.Start(ctx)

	go func() {
		for i, src := range sources {
			p.Submit(WorkItem{Source: src, Index: i})
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(sources))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
