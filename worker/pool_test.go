package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

// dispatchDecoder implements Decoder on top of the codec dispatcher.
type dispatchDecoder struct {
	callCount atomic.Int32
	delay     time.Duration
}

func (d *dispatchDecoder) Decode(ctx context.Context, doc []byte) (r4.Structure, error) {
	d.callCount.Add(1)
	if d.delay > 0 {
		select {
		case <-time.After(d.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	v, err := codec.Dispatch(doc, r4.Lookup, nil)
	if err != nil {
		return nil, err
	}
	return v.(r4.Structure), nil
}

var (
	patientDoc = []byte(`{"resourceType":"Patient","id":"p1","active":true}`)
	badDoc     = []byte(`{"resourceType":"Patient","gender":"robot"}`)
)

func TestPool_NewPool(t *testing.T) {
	pool := NewPool(&dispatchDecoder{}, 2)
	defer pool.Close()

	if pool.workers != 2 {
		t.Errorf("workers = %d; want 2", pool.workers)
	}

	def := NewPool(&dispatchDecoder{}, 0)
	defer def.Close()
	if def.workers <= 0 {
		t.Errorf("workers = %d; want > 0", def.workers)
	}
}

func TestPool_SubmitAndReceive(t *testing.T) {
	pool := NewPool(&dispatchDecoder{}, 2)
	defer pool.Close()

	if !pool.Submit(Job{ID: "patient.json", Index: 3, Document: patientDoc}) {
		t.Fatal("expected job to be submitted")
	}

	select {
	case result := <-pool.Results():
		if result.ID != "patient.json" || result.Index != 3 {
			t.Errorf("ID/Index = %q/%d; want patient.json/3", result.ID, result.Index)
		}
		if result.Error != nil {
			t.Fatalf("Error = %v", result.Error)
		}
		p, ok := result.Resource.(*r4.Patient)
		if !ok || *p.ID != "p1" {
			t.Errorf("Resource = %#v; want Patient p1", result.Resource)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
}

func TestPool_DecodeError(t *testing.T) {
	pool := NewPool(&dispatchDecoder{}, 1)
	pool.Submit(Job{ID: "bad", Document: badDoc})

	batch := pool.CloseAndWait()
	if len(batch.Results) != 1 {
		t.Fatalf("len(Results) = %d; want 1", len(batch.Results))
	}
	if !errors.Is(batch.Results[0].Error, codec.ErrInvalidEnumValue) {
		t.Errorf("Error = %v; want ErrInvalidEnumValue", batch.Results[0].Error)
	}
	if batch.FailedJobs != 1 {
		t.Errorf("FailedJobs = %d; want 1", batch.FailedJobs)
	}
}

func TestPool_CloseAndWaitFinishesQueuedJobs(t *testing.T) {
	dec := &dispatchDecoder{delay: 5 * time.Millisecond}
	pool := NewPool(dec, 2)

	for i := 0; i < 8; i++ {
		if !pool.Submit(Job{Index: i, Document: patientDoc}) {
			t.Fatalf("submit %d failed", i)
		}
	}

	batch := pool.CloseAndWait()
	if len(batch.Results) != 8 {
		t.Errorf("len(Results) = %d; want 8", len(batch.Results))
	}
	if batch.TotalJobs != 8 || batch.CompletedJobs != 8 {
		t.Errorf("TotalJobs/CompletedJobs = %d/%d; want 8/8", batch.TotalJobs, batch.CompletedJobs)
	}
	if batch.HasErrors() {
		t.Errorf("unexpected errors: %v", batch.Err())
	}
	if got := int(dec.callCount.Load()); got != 8 {
		t.Errorf("callCount = %d; want 8", got)
	}
}

func TestPool_SubmitToClosedPool(t *testing.T) {
	pool := NewPool(&dispatchDecoder{}, 2)
	pool.Close()

	if pool.Submit(Job{ID: "after-close"}) {
		t.Error("expected submit to fail after close")
	}
	if pool.SubmitAsync(Job{ID: "after-close"}) {
		t.Error("expected async submit to fail after close")
	}
}

func TestPool_SubmitDuringClose(t *testing.T) {
	for round := 0; round < 50; round++ {
		pool := NewPool(&dispatchDecoder{}, 2)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					pool.SubmitAsync(Job{Index: i*20 + j, Document: patientDoc})
					pool.Submit(Job{Index: i*20 + j, Document: patientDoc})
				}
			}(i)
		}

		if round%2 == 0 {
			pool.Close()
		} else {
			batch := pool.CloseAndWait()
			if batch.TotalJobs < len(batch.Results) {
				t.Errorf("TotalJobs = %d; fewer than %d results", batch.TotalJobs, len(batch.Results))
			}
		}
		wg.Wait()

		if pool.Submit(Job{ID: "late"}) {
			t.Error("expected submit to fail after close")
		}
	}
}

func TestPool_DoubleClose(t *testing.T) {
	pool := NewPool(&dispatchDecoder{}, 2)

	pool.Close()
	pool.Close() // Should not panic
	if got := pool.CloseAndWait(); len(got.Results) != 0 {
		t.Errorf("CloseAndWait after Close returned %d results", len(got.Results))
	}
}

func TestPool_NilDecoder(t *testing.T) {
	pool := NewPool(nil, 2)
	defer pool.Close()

	pool.Submit(Job{ID: "nil-decoder"})

	select {
	case result := <-pool.Results():
		if !errors.Is(result.Error, ErrNoDecoder) {
			t.Errorf("Error = %v; want ErrNoDecoder", result.Error)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
}

func TestPool_Stats(t *testing.T) {
	pool := NewPool(&dispatchDecoder{}, 2)
	defer pool.Close()

	pool.Submit(Job{ID: "stats-test", Document: badDoc})

	select {
	case <-pool.Results():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}

	stats := pool.Stats()
	if stats.Workers != 2 {
		t.Errorf("Workers = %d; want 2", stats.Workers)
	}
	if stats.JobsSubmitted != 1 || stats.JobsCompleted != 1 || stats.JobsFailed != 1 {
		t.Errorf("stats = %+v; want 1 submitted, completed and failed", stats)
	}
}
