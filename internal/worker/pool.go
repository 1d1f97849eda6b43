// Package worker plays batches of computer matches on a pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/textchess-go/internal/game"
	"github.com/lgbarn/textchess-go/internal/hashing"
)

// WorkItem is one match waiting to be played.
type WorkItem struct {
	Index int // position in the batch
	Match game.MatchOptions
}

// ProcessResult is the outcome of a played match.
type ProcessResult struct {
	Index     int
	Result    game.Result
	Duplicate bool // same final position as an earlier match in the batch
	Error     error
}

// ProcessFunc plays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// PlayMatch is the default ProcessFunc. It plays the item's match to the end.
func PlayMatch(item WorkItem) ProcessResult {
	res, err := game.PlayMatch(item.Match)
	return ProcessResult{Index: item.Index, Result: res, Error: err}
}

// Pool runs matches on a fixed number of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	detector    *hashing.ThreadSafeDuplicateDetector
	stopOnError bool
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithProcessFunc replaces PlayMatch as the function run for each item.
func WithProcessFunc(fn ProcessFunc) PoolOption {
	return func(p *Pool) {
		if fn != nil {
			p.processFunc = fn
		}
	}
}

// WithDuplicateDetector marks results whose final position the detector
// has already seen.
func WithDuplicateDetector(d *hashing.ThreadSafeDuplicateDetector) PoolOption {
	return func(p *Pool) {
		p.detector = d
	}
}

// WithStopOnError stops the pool after the first match that fails.
func WithStopOnError() PoolOption {
	return func(p *Pool) {
		p.stopOnError = true
	}
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10, PlayMatch as the process function.
func NewPoolWithOptions(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: PlayMatch,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without playing
		}
		res := p.processFunc(item)
		if p.detector != nil && res.Error == nil {
			res.Duplicate = p.detector.CheckAndAdd(res.Result.Signature)
		}
		if res.Error != nil && p.stopOnError {
			p.Stop()
		}
		p.resultChan <- res
	}
}

// Submit queues a match. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip any match they have not started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of played matches.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
