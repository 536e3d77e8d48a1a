package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofhir/models/r4"
)

// Decoder is the interface the pool uses to decode documents.
// *fhirmodels.Decoder implements it.
type Decoder interface {
	Decode(ctx context.Context, doc []byte) (r4.Structure, error)
}

// ErrNoDecoder is returned for every job of a pool created without a decoder.
var ErrNoDecoder = errors.New("worker: no decoder configured")

// Pool manages a pool of worker goroutines for parallel decoding.
type Pool struct {
	workers    int
	jobsChan   chan Job
	resultChan chan *JobResult
	decoder    Decoder
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     atomic.Bool

	// mu orders sends on jobsChan before its close: senders hold the read
	// lock, closers the write lock.
	mu sync.RWMutex

	// Metrics
	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	jobsFailed    atomic.Uint64
	totalDuration atomic.Uint64
}

// NewPool creates a new worker pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(decoder Decoder, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan Job, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		decoder:    decoder,
		ctx:        ctx,
		cancel:     cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit submits a job to the pool for processing.
// This method blocks if the job queue is full.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync submits a job without blocking.
// Returns false if the job queue is full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel for receiving job results.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// Close stops the pool. Queued jobs that have not started are dropped and
// undelivered results are discarded.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	p.cancel()
	p.mu.Lock()
	close(p.jobsChan)
	p.mu.Unlock()

	// Drain results in background to prevent worker deadlock
	done := make(chan struct{})
	go func() {
		for range p.resultChan {
		}
		close(done)
	}()

	p.wg.Wait()
	close(p.resultChan)
	<-done
}

// CloseAndWait stops accepting jobs, waits for every queued job to finish,
// and returns the results not yet received from Results().
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	// Collect while closing so a Submit blocked on a full queue can finish.
	collected := make(chan []*JobResult)
	go func() {
		results := make([]*JobResult, 0)
		for result := range p.resultChan {
			results = append(results, result)
		}
		collected <- results
	}()

	p.mu.Lock()
	close(p.jobsChan)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.resultChan)
	results := <-collected
	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		FailedJobs:    int(p.jobsFailed.Load()),
		TotalDuration: time.Duration(p.totalDuration.Load()), //nolint:gosec // Safe: nanoseconds within int64 range
	}
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		JobsFailed:    p.jobsFailed.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	JobsFailed    uint64
	AvgDuration   time.Duration
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobsChan {
		if p.ctx.Err() != nil {
			return
		}

		result := p.processJob(job)
		p.jobsCompleted.Add(1)
		if result.Error != nil {
			p.jobsFailed.Add(1)
		}
		p.totalDuration.Add(uint64(result.Duration)) //nolint:gosec // Safe: durations are positive

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

func (p *Pool) processJob(job Job) *JobResult {
	start := time.Now()
	result := &JobResult{
		ID:    job.ID,
		Index: job.Index,
	}

	if p.decoder == nil {
		result.Error = ErrNoDecoder
	} else {
		result.Resource, result.Error = p.decoder.Decode(p.ctx, job.Document)
	}

	result.Duration = time.Since(start)
	return result
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / completed) //nolint:gosec // Safe: nanoseconds within int64 range
}
