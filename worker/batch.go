package worker

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/gofhir/models/r4"
)

// DecodeFunc decodes a single document.
type DecodeFunc func(ctx context.Context, doc []byte) (r4.Structure, error)

// BatchDecoder decodes slices of documents in parallel.
type BatchDecoder struct {
	decode  DecodeFunc
	workers int
}

// NewBatchDecoder creates a batch decoder. If workers <= 0, it defaults to
// runtime.NumCPU().
func NewBatchDecoder(decode DecodeFunc, workers int) *BatchDecoder {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchDecoder{
		decode:  decode,
		workers: workers,
	}
}

// DecodeBatch decodes docs and returns one result per document, in input
// order. Documents not reached before ctx is done fail with ctx.Err().
func (bd *BatchDecoder) DecodeBatch(ctx context.Context, docs [][]byte) *BatchResult {
	if len(docs) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	var results []*JobResult
	// For small batches, don't use parallelism
	if len(docs) <= 2 || bd.workers == 1 {
		results = bd.decodeSequential(ctx, docs)
	} else {
		results = bd.decodeParallel(ctx, docs)
	}

	br := &BatchResult{Results: results, TotalJobs: len(docs)}
	for i, r := range results {
		if r == nil {
			results[i] = &JobResult{ID: strconv.Itoa(i), Index: i, Error: ctx.Err()}
			br.FailedJobs++
			continue
		}
		br.CompletedJobs++
		br.TotalDuration += r.Duration
		if r.Error != nil {
			br.FailedJobs++
		}
	}
	return br
}

func (bd *BatchDecoder) run(ctx context.Context, index int, doc []byte) *JobResult {
	start := time.Now()
	v, err := bd.decode(ctx, doc)
	return &JobResult{
		ID:       strconv.Itoa(index),
		Index:    index,
		Resource: v,
		Error:    err,
		Duration: time.Since(start),
	}
}

func (bd *BatchDecoder) decodeSequential(ctx context.Context, docs [][]byte) []*JobResult {
	results := make([]*JobResult, len(docs))
	for i, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		results[i] = bd.run(ctx, i, doc)
	}
	return results
}

func (bd *BatchDecoder) decodeParallel(ctx context.Context, docs [][]byte) []*JobResult {
	numWorkers := bd.workers
	if numWorkers > len(docs) {
		numWorkers = len(docs)
	}

	jobs := make(chan int, len(docs))
	results := make([]*JobResult, len(docs))

	// Each worker writes only to the slots of the indexes it receives.
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				results[idx] = bd.run(ctx, idx, docs[idx])
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// DecodeBatchSimple decodes docs with runtime.NumCPU() workers.
func DecodeBatchSimple(ctx context.Context, decode DecodeFunc, docs [][]byte) *BatchResult {
	return NewBatchDecoder(decode, runtime.NumCPU()).DecodeBatch(ctx, docs)
}
