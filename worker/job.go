package worker

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofhir/models/r4"
)

// Job is one document to decode.
type Job struct {
	// ID identifies the document in results, e.g. a file name.
	ID string

	// Index is the position of the document in its batch.
	Index int

	// Document is the FHIR JSON to decode.
	Document []byte
}

// JobResult is the outcome of decoding one Job.
type JobResult struct {
	ID    string
	Index int

	// Resource is the decoded structure; nil when Error is set.
	Resource r4.Structure

	Error    error
	Duration time.Duration
}

// BatchResult aggregates the results of many jobs.
type BatchResult struct {
	// Results contains one entry per job. Batch decoding keeps input order;
	// a Pool returns results in completion order.
	Results []*JobResult

	TotalJobs     int
	CompletedJobs int
	FailedJobs    int

	// TotalDuration is the sum of the per-job durations.
	TotalDuration time.Duration
}

// HasErrors returns true if any job failed.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r != nil && r.Error != nil {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed jobs.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Error != nil {
			count++
		}
	}
	return count
}

// Resources returns the decoded structures of the successful jobs.
func (br *BatchResult) Resources() []r4.Structure {
	out := make([]r4.Structure, 0, len(br.Results))
	for _, r := range br.Results {
		if r != nil && r.Error == nil {
			out = append(out, r.Resource)
		}
	}
	return out
}

// Err joins the errors of all failed jobs, each prefixed with the job ID.
// It returns nil when every job succeeded.
func (br *BatchResult) Err() error {
	var errs []error
	for _, r := range br.Results {
		if r != nil && r.Error != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.ID, r.Error))
		}
	}
	return errors.Join(errs...)
}
