package stream

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

const twoPatients = `{
	"resourceType": "Bundle",
	"type": "collection",
	"entry": [
		{
			"fullUrl": "urn:uuid:patient-1",
			"resource": {"resourceType": "Patient", "id": "1", "name": [{"family": "Test"}]}
		},
		{
			"fullUrl": "urn:uuid:patient-2",
			"resource": {"resourceType": "Patient", "id": "2"}
		}
	]
}`

func collect(ch <-chan *EntryResult) []*EntryResult {
	var out []*EntryResult
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestBundleDecoder_DecodeStream(t *testing.T) {
	results := collect(NewBundleDecoder(nil).DecodeStream(context.Background(), strings.NewReader(twoPatients)))
	require.Len(t, results, 2)

	for i, r := range results {
		require.NoError(t, r.Error)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, "Patient", r.ResourceType)
		assert.Equal(t, fmt.Sprint(i+1), r.ResourceID)
		assert.Equal(t, fmt.Sprintf("urn:uuid:patient-%d", i+1), r.FullURL)

		p, ok := r.Resource().(*r4.Patient)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprint(i+1), *p.ID)
	}
	assert.Equal(t, "Test", *results[0].Resource().(*r4.Patient).Name[0].Family)
}

func TestBundleDecoder_EntryErrorsAreLocated(t *testing.T) {
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[
		{"resource":{"resourceType":"Patient","id":"ok"}},
		{"resource":{"resourceType":"Patient","gender":"robot"}},
		{"resource":{"resourceType":"Money","value":1}}
	]}`

	for name, decode := range map[string]func(*BundleDecoder) <-chan *EntryResult{
		"stream":   func(d *BundleDecoder) <-chan *EntryResult { return d.DecodeStream(context.Background(), strings.NewReader(bundle)) },
		"parallel": func(d *BundleDecoder) <-chan *EntryResult { return d.DecodeStreamParallel(context.Background(), strings.NewReader(bundle)) },
	} {
		t.Run(name, func(t *testing.T) {
			results := collect(decode(NewBundleDecoder(nil).WithWorkerCount(2)))
			require.Len(t, results, 3)

			assert.NoError(t, results[0].Error)

			require.ErrorIs(t, results[1].Error, codec.ErrInvalidEnumValue)
			de, _ := codec.AsDecodeError(results[1].Error)
			assert.Equal(t, "Bundle.entry[1].resource.gender", de.Location())
			assert.Equal(t, "Patient", results[1].ResourceType)

			require.ErrorIs(t, results[2].Error, codec.ErrUnknownResourceType)
			de, _ = codec.AsDecodeError(results[2].Error)
			assert.Equal(t, "Bundle.entry[2].resource.resourceType", de.Location())
		})
	}
}

func TestBundleDecoder_DecodeStreamParallel(t *testing.T) {
	entries := make([]string, 40)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"fullUrl":"urn:uuid:%d","resource":{"resourceType":"Basic","id":"b%d","code":{"text":"x"}}}`, i, i)
	}
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[` + strings.Join(entries, ",") + `]}`

	results := collect(NewBundleDecoder(nil).WithWorkerCount(4).WithBufferSize(3).
		DecodeStreamParallel(context.Background(), strings.NewReader(bundle)))
	require.Len(t, results, 40)

	for i, r := range results {
		require.NoError(t, r.Error)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, fmt.Sprintf("b%d", i), *r.Resource().(*r4.Basic).ID)
	}
}

func TestBundleDecoder_StrictOptions(t *testing.T) {
	dec, err := fm.NewDecoder(fm.WithStrict(true))
	require.NoError(t, err)

	bundle := `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Patient","nickname":"Pete"}}]}`
	results := collect(NewBundleDecoder(dec).DecodeStream(context.Background(), strings.NewReader(bundle)))
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Error, codec.ErrUnknownElement)
}

func TestBundleDecoder_EmptyBundle(t *testing.T) {
	bundle := `{"resourceType": "Bundle", "type": "collection"}`

	assert.Empty(t, collect(NewBundleDecoder(nil).DecodeStream(context.Background(), strings.NewReader(bundle))))
	assert.Empty(t, collect(NewBundleDecoder(nil).DecodeStreamParallel(context.Background(), strings.NewReader(bundle))))
}

func TestBundleDecoder_NotABundle(t *testing.T) {
	doc := `{"resourceType":"Patient","entry":[]}`

	for _, results := range [][]*EntryResult{
		collect(NewBundleDecoder(nil).DecodeStream(context.Background(), strings.NewReader(doc))),
		collect(NewBundleDecoder(nil).DecodeStreamParallel(context.Background(), strings.NewReader(doc))),
	} {
		require.Len(t, results, 1)
		assert.Equal(t, -1, results[0].Index)
		require.ErrorIs(t, results[0].Error, codec.ErrTypeMismatch)
	}
}

func TestBundleDecoder_InvalidJSON(t *testing.T) {
	results := collect(NewBundleDecoder(nil).DecodeStream(context.Background(), strings.NewReader(`not valid json`)))
	require.NotEmpty(t, results)
	assert.Error(t, results[0].Error)

	results = collect(NewBundleDecoder(nil).DecodeStreamParallel(context.Background(), strings.NewReader(`not valid json`)))
	require.NotEmpty(t, results)
	assert.Error(t, results[0].Error)
}

func TestBundleDecoder_ContextCancellation(t *testing.T) {
	entries := make([]string, 100)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"fullUrl":"urn:uuid:%d","resource":{"resourceType":"Patient","id":"p%d"}}`, i, i)
	}
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[` + strings.Join(entries, ",") + `]}`

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	count := 0
	for range NewBundleDecoder(nil).WithBufferSize(1).DecodeStream(ctx, strings.NewReader(bundle)) {
		count++
		if count == 1 {
			cancel()
		}
	}
	assert.Less(t, count, 100)
}

func TestBundleDecoder_AbandonedStreamStops(t *testing.T) {
	entries := make([]string, 200)
	for i := range entries {
		entries[i] = fmt.Sprintf(`{"resource":{"resourceType":"Basic","id":"b%d","code":{"text":"x"}}}`, i)
	}
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[` + strings.Join(entries, ",") + `]}`

	streams := map[string]func(*BundleDecoder, context.Context) <-chan *EntryResult{
		"sequential": func(d *BundleDecoder, ctx context.Context) <-chan *EntryResult {
			return d.DecodeStream(ctx, strings.NewReader(bundle))
		},
		"parallel": func(d *BundleDecoder, ctx context.Context) <-chan *EntryResult {
			return d.DecodeStreamParallel(ctx, strings.NewReader(bundle))
		},
	}
	for name, open := range streams {
		t.Run(name, func(t *testing.T) {
			before := runtime.NumGoroutine()

			ctx, cancel := context.WithCancel(context.Background())
			ch := open(NewBundleDecoder(nil).WithBufferSize(1).WithWorkerCount(4), ctx)
			first := <-ch
			require.NotNil(t, first)
			assert.Equal(t, 0, first.Index)
			cancel()

			assert.Eventually(t, func() bool {
				return runtime.NumGoroutine() <= before
			}, 2*time.Second, 10*time.Millisecond)
		})
	}
}

func TestBundleDecoder_EntryWithoutResource(t *testing.T) {
	bundle := `{"resourceType":"Bundle","type":"batch-response","entry":[{"fullUrl":"urn:uuid:1","response":{"status":"200 OK"}}]}`

	results := collect(NewBundleDecoder(nil).DecodeStream(context.Background(), strings.NewReader(bundle)))
	require.Len(t, results, 1)
	require.NoError(t, results[0].Error)
	assert.Nil(t, results[0].Resource())
	assert.Equal(t, "200 OK", results[0].Entry.Response.Status)
	assert.Empty(t, results[0].ResourceType)
}

func TestAggregate(t *testing.T) {
	ch := make(chan *EntryResult, 5)
	ch <- &EntryResult{Index: 0, Entry: &r4.BundleEntry{Resource: &r4.Patient{}}}
	ch <- &EntryResult{Index: 1, Entry: &r4.BundleEntry{Resource: &r4.Patient{}}}
	ch <- &EntryResult{Index: 2, Entry: &r4.BundleEntry{Resource: &r4.Basic{}}}
	ch <- &EntryResult{Index: 3, Error: &codec.DecodeError{Kind: codec.ErrMissingRequiredField, Path: "Bundle.entry[3].resource", Field: "status"}}
	ch <- &EntryResult{Index: -1, Error: errors.New("read bundle: unexpected EOF")}
	close(ch)

	agg := Aggregate(ch)
	assert.Equal(t, 4, agg.TotalEntries)
	assert.Equal(t, 1, agg.EntriesWithErrors)
	assert.Equal(t, map[string]int{"Patient": 2, "Basic": 1}, agg.ResourceTypes)
	require.Len(t, agg.ProcessingErrors, 1)
	require.Len(t, agg.Issues[3], 1)
	assert.Equal(t, fm.IssueTypeRequired, agg.Issues[3][0].Code)
	assert.Equal(t, []string{"Bundle.entry[3].resource.status"}, agg.Issues[3][0].Expression)
	assert.True(t, agg.HasErrors())
	assert.Equal(t, "Decoded 4 entries: 1 with errors, 2 resource types", agg.Summary())
}
