// Package stream decodes the entries of large FHIR Bundles one at a time.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/buger/jsonparser"
	json "github.com/goccy/go-json"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/pool"
	"github.com/gofhir/models/r4"
)

// EntryResult is the outcome of decoding a single bundle entry.
type EntryResult struct {
	// Index is the position of the entry in the bundle, or -1 for errors
	// that concern the bundle itself
	Index int

	// FullURL is the fullUrl of the entry (if present)
	FullURL string

	// ResourceType is the type of resource in the entry
	ResourceType string

	// ResourceID is the id of the resource (if present)
	ResourceID string

	// Entry is the decoded entry; nil when Error is set
	Entry *r4.BundleEntry

	// Error is set if the entry could not be read or decoded
	Error error
}

// Resource returns the entry's resource, if any.
func (e *EntryResult) Resource() r4.Resource {
	if e.Entry == nil {
		return nil
	}
	return e.Entry.Resource
}

// BundleDecoder decodes bundles in a streaming fashion.
type BundleDecoder struct {
	opts        *codec.Options
	bufferSize  int
	workerCount int
}

// NewBundleDecoder creates a streaming bundle decoder using the codec
// options of dec. A nil dec uses the default decoder.
func NewBundleDecoder(dec *fm.Decoder) *BundleDecoder {
	if dec == nil {
		dec = fm.DefaultDecoder()
	}
	return &BundleDecoder{
		opts:        dec.CodecOptions(),
		bufferSize:  100,
		workerCount: dec.Options().WorkerCount,
	}
}

// WithBufferSize sets the channel buffer size.
func (d *BundleDecoder) WithBufferSize(size int) *BundleDecoder {
	if size > 0 {
		d.bufferSize = size
	}
	return d
}

// WithWorkerCount sets the number of parallel workers.
func (d *BundleDecoder) WithWorkerCount(count int) *BundleDecoder {
	if count > 0 {
		d.workerCount = count
	}
	return d
}

// DecodeStream reads a bundle from r, emitting one result per entry as the
// entries are read. Only one entry is held in memory at a time. Results are
// emitted in bundle order.
func (d *BundleDecoder) DecodeStream(ctx context.Context, r io.Reader) <-chan *EntryResult {
	results := make(chan *EntryResult, d.bufferSize)

	go func() {
		defer close(results)
		emit := func(res *EntryResult) bool {
			select {
			case <-ctx.Done():
				return false
			case results <- res:
				return true
			}
		}
		fail := func(index int, err error) {
			emit(&EntryResult{Index: index, Error: err})
		}

		dec := json.NewDecoder(r)

		if err := expectDelim(dec, '{'); err != nil {
			fail(-1, fmt.Errorf("read bundle: %w", err))
			return
		}

		for dec.More() {
			if err := ctx.Err(); err != nil {
				fail(-1, err)
				return
			}

			token, err := dec.Token()
			if err != nil {
				fail(-1, fmt.Errorf("read member name: %w", err))
				return
			}
			name, ok := token.(string)
			if !ok {
				fail(-1, fmt.Errorf("read member name: unexpected %v", token))
				return
			}

			switch name {
			case "entry":
				d.streamEntries(ctx, dec, emit, fail)
				return
			case codec.DiscriminatorKey:
				var rt string
				if err := dec.Decode(&rt); err != nil {
					fail(-1, fmt.Errorf("read resourceType: %w", err))
					return
				}
				if rt != "Bundle" {
					fail(-1, &codec.DecodeError{
						Kind:      codec.ErrTypeMismatch,
						Structure: "Bundle",
						Field:     codec.DiscriminatorKey,
						Expected:  "Bundle",
						Value:     rt,
					})
					return
				}
			default:
				var skip json.RawMessage
				if err := dec.Decode(&skip); err != nil {
					fail(-1, fmt.Errorf("skip member %s: %w", name, err))
					return
				}
			}
		}
		// No entry member: empty bundle
	}()

	return results
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	token, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %v, got %v", want, token)
	}
	return nil
}

// streamEntries decodes the entry array one element at a time.
func (d *BundleDecoder) streamEntries(ctx context.Context, dec *json.Decoder, emit func(*EntryResult) bool, fail func(int, error)) {
	if err := expectDelim(dec, '['); err != nil {
		fail(-1, fmt.Errorf("read entry array: %w", err))
		return
	}

	index := 0
	for dec.More() {
		if err := ctx.Err(); err != nil {
			fail(index, err)
			return
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			fail(index, fmt.Errorf("read entry %d: %w", index, err))
			return
		}
		if !emit(d.decodeEntry(raw, index)) {
			return
		}
		index++
	}
}

// decodeEntry decodes one entry. Errors are located as in a whole-bundle
// decode, e.g. "Bundle.entry[3].resource".
func (d *BundleDecoder) decodeEntry(raw []byte, index int) *EntryResult {
	result := &EntryResult{Index: index}
	result.FullURL, _ = jsonparser.GetString(raw, "fullUrl")
	result.ResourceType, _ = jsonparser.GetString(raw, "resource", codec.DiscriminatorKey)
	result.ResourceID, _ = jsonparser.GetString(raw, "resource", "id")

	o, err := codec.NewObject(raw, "BundleEntry", pool.ElementPath("Bundle", "entry", index), d.opts)
	if err != nil {
		result.Error = err
		return result
	}
	var entry r4.BundleEntry
	if err := entry.DecodeFHIR(o); err != nil {
		result.Error = err
		return result
	}
	result.Entry = &entry
	return result
}

// DecodeStreamParallel reads the whole bundle, decodes its entries in
// parallel and emits the results in bundle order. Once ctx is cancelled all
// goroutines exit, even if the caller stops reading.
func (d *BundleDecoder) DecodeStreamParallel(ctx context.Context, r io.Reader) <-chan *EntryResult {
	results := make(chan *EntryResult, d.bufferSize)

	go func() {
		defer close(results)
		emit := func(res *EntryResult) bool {
			select {
			case <-ctx.Done():
				return false
			case results <- res:
				return true
			}
		}

		data, err := io.ReadAll(r)
		if err != nil {
			emit(&EntryResult{Index: -1, Error: fmt.Errorf("read bundle: %w", err)})
			return
		}

		rt, err := fm.ResourceType(data)
		if err == nil && rt != "Bundle" {
			err = &codec.DecodeError{Kind: codec.ErrTypeMismatch, Structure: "Bundle", Field: codec.DiscriminatorKey, Expected: "Bundle", Value: rt}
		}
		if err != nil {
			emit(&EntryResult{Index: -1, Error: err})
			return
		}

		var entries [][]byte
		_, err = jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
			entries = append(entries, value)
		}, "entry")
		switch {
		case errors.Is(err, jsonparser.KeyPathNotFoundError):
			return
		case err != nil:
			emit(&EntryResult{Index: -1, Error: fmt.Errorf("read entries: %w", err)})
			return
		}

		type workItem struct {
			index int
			raw   []byte
		}

		workChan := make(chan workItem, d.bufferSize)
		resultChan := make(chan *EntryResult, d.bufferSize)

		var wg sync.WaitGroup
		for i := 0; i < d.workerCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for work := range workChan {
					select {
					case <-ctx.Done():
						return
					case resultChan <- d.decodeEntry(work.raw, work.index):
					}
				}
			}()
		}

		go func() {
			defer func() {
				close(workChan)
				wg.Wait()
				close(resultChan)
			}()
			for i, raw := range entries {
				select {
				case <-ctx.Done():
					return
				case workChan <- workItem{index: i, raw: raw}:
				}
			}
		}()

		// Collect results and reorder. After cancellation the loop keeps
		// draining resultChan so the workers can finish.
		pending := make(map[int]*EntryResult)
		nextIndex := 0
		stopped := false
		for res := range resultChan {
			if stopped {
				continue
			}
			pending[res.Index] = res
			for {
				r, ok := pending[nextIndex]
				if !ok {
					break
				}
				if !emit(r) {
					stopped = true
					break
				}
				delete(pending, nextIndex)
				nextIndex++
			}
		}
	}()

	return results
}

// BundleStreamResult aggregates the results of a streaming decode.
type BundleStreamResult struct {
	// TotalEntries is the number of entries processed
	TotalEntries int

	// EntriesWithErrors is the count of entries that failed to decode
	EntriesWithErrors int

	// ResourceTypes counts the decoded entries per resource type
	ResourceTypes map[string]int

	// ProcessingErrors are errors that concern the bundle itself
	ProcessingErrors []error

	// Issues holds the issues of each failed entry, by entry index
	Issues map[int][]fm.Issue
}

// Aggregate collects all results from a streaming decode.
func Aggregate(results <-chan *EntryResult) *BundleStreamResult {
	agg := &BundleStreamResult{
		ResourceTypes: make(map[string]int),
		Issues:        make(map[int][]fm.Issue),
	}

	for result := range results {
		if result.Index < 0 {
			agg.ProcessingErrors = append(agg.ProcessingErrors, result.Error)
			continue
		}

		agg.TotalEntries++
		if result.Error != nil {
			agg.EntriesWithErrors++
			agg.Issues[result.Index] = fm.IssuesFromError(result.Error)
			continue
		}
		if res := result.Resource(); res != nil {
			agg.ResourceTypes[res.ResourceType()]++
		}
	}

	return agg
}

// HasErrors returns true if any entry or the bundle itself failed.
func (r *BundleStreamResult) HasErrors() bool {
	return r.EntriesWithErrors > 0 || len(r.ProcessingErrors) > 0
}

// Summary returns a human-readable summary of the decode.
func (r *BundleStreamResult) Summary() string {
	return fmt.Sprintf(
		"Decoded %d entries: %d with errors, %d resource types",
		r.TotalEntries,
		r.EntriesWithErrors,
		len(r.ResourceTypes),
	)
}
