package fhirmodels

import (
	"sync"
	"testing"
	"time"

	"github.com/gofhir/models/codec"
)

var errAmbiguous = &codec.DecodeError{Kind: codec.ErrAmbiguousChoice, Field: "value"}

func TestMetrics_Basic(t *testing.T) {
	m := NewMetrics()

	if m.DecodesTotal() != 0 {
		t.Errorf("DecodesTotal() = %d; want 0", m.DecodesTotal())
	}
	if rate := m.SuccessRate(); rate != 0 {
		t.Errorf("SuccessRate() = %f; want 0", rate)
	}

	m.RecordDecode("Patient", 100*time.Millisecond, nil)
	m.RecordDecode("Patient", 100*time.Millisecond, nil)
	m.RecordDecode("Observation", 100*time.Millisecond, errAmbiguous)

	if m.DecodesTotal() != 3 {
		t.Errorf("DecodesTotal() = %d; want 3", m.DecodesTotal())
	}
	if m.DecodesFailed() != 1 {
		t.Errorf("DecodesFailed() = %d; want 1", m.DecodesFailed())
	}
	rate := m.SuccessRate()
	expected := 2.0 / 3.0
	if rate < expected-0.01 || rate > expected+0.01 {
		t.Errorf("SuccessRate() = %f; want ~%f", rate, expected)
	}
	if got := m.ErrorKindCount("AmbiguousChoice"); got != 1 {
		t.Errorf("ErrorKindCount(AmbiguousChoice) = %d; want 1", got)
	}
	if got := m.ErrorKindCount("TypeMismatch"); got != 0 {
		t.Errorf("ErrorKindCount(TypeMismatch) = %d; want 0", got)
	}
}

func TestMetrics_DecodeTime(t *testing.T) {
	m := NewMetrics()

	if avg := m.AverageDecodeTime(); avg != 0 {
		t.Errorf("AverageDecodeTime() = %v; want 0", avg)
	}
	if minT := m.MinDecodeTime(); minT != 0 {
		t.Errorf("MinDecodeTime() = %v; want 0", minT)
	}

	m.RecordDecode("Patient", 100*time.Millisecond, nil)
	m.RecordDecode("Patient", 200*time.Millisecond, nil)
	m.RecordDecode("Patient", 300*time.Millisecond, nil)

	if avg := m.AverageDecodeTime(); avg != 200*time.Millisecond {
		t.Errorf("AverageDecodeTime() = %v; want 200ms", avg)
	}
	if minT := m.MinDecodeTime(); minT != 100*time.Millisecond {
		t.Errorf("MinDecodeTime() = %v; want 100ms", minT)
	}
	if maxT := m.MaxDecodeTime(); maxT != 300*time.Millisecond {
		t.Errorf("MaxDecodeTime() = %v; want 300ms", maxT)
	}
}

func TestMetrics_Encode(t *testing.T) {
	m := NewMetrics()
	m.RecordEncode(10 * time.Millisecond)
	m.RecordEncode(30 * time.Millisecond)

	if m.EncodesTotal() != 2 {
		t.Errorf("EncodesTotal() = %d; want 2", m.EncodesTotal())
	}
	if avg := m.AverageEncodeTime(); avg != 20*time.Millisecond {
		t.Errorf("AverageEncodeTime() = %v; want 20ms", avg)
	}
}

func TestMetrics_TypeStats(t *testing.T) {
	m := NewMetrics()
	m.RecordDecode("Patient", 10*time.Millisecond, nil)
	m.RecordDecode("Patient", 30*time.Millisecond, errAmbiguous)
	m.RecordDecode("", 5*time.Millisecond, errAmbiguous)

	stats, ok := m.TypeStats("Patient")
	if !ok {
		t.Fatal("TypeStats(Patient) not found")
	}
	if stats.Decodes != 2 || stats.Failures != 1 {
		t.Errorf("Decodes/Failures = %d/%d; want 2/1", stats.Decodes, stats.Failures)
	}
	if stats.AvgTime != 20*time.Millisecond {
		t.Errorf("AvgTime = %v; want 20ms", stats.AvgTime)
	}

	if _, ok := m.TypeStats("unknown"); !ok {
		t.Error("empty resource type should be recorded as unknown")
	}
	if _, ok := m.TypeStats("Bundle"); ok {
		t.Error("TypeStats(Bundle) should not exist")
	}

	all := m.AllTypeStats()
	if len(all) != 2 || all[0].ResourceType != "Patient" || all[1].ResourceType != "unknown" {
		t.Errorf("AllTypeStats() = %+v", all)
	}
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordDecode("Patient", 100*time.Millisecond, nil)
	m.RecordDecode("Observation", 50*time.Millisecond, errAmbiguous)
	m.RecordEncode(time.Millisecond)

	s := m.Snapshot()
	if s.Timestamp.IsZero() {
		t.Error("Snapshot Timestamp should not be zero")
	}
	if s.DecodesTotal != 2 || s.DecodesFailed != 1 || s.EncodesTotal != 1 {
		t.Errorf("Snapshot counts = %d/%d/%d", s.DecodesTotal, s.DecodesFailed, s.EncodesTotal)
	}
	if s.MinDecodeTimeNs != uint64(50*time.Millisecond) {
		t.Errorf("MinDecodeTimeNs = %d", s.MinDecodeTimeNs)
	}
	if s.ErrorKinds["AmbiguousChoice"] != 1 {
		t.Errorf("ErrorKinds = %v", s.ErrorKinds)
	}
	if len(s.ResourceTypes) != 2 {
		t.Errorf("len(ResourceTypes) = %d; want 2", len(s.ResourceTypes))
	}
}

func TestMetrics_Export(t *testing.T) {
	m := NewMetrics()
	m.RecordDecode("Patient", 100*time.Millisecond, nil)
	m.RecordDecode("Patient", 100*time.Millisecond, errAmbiguous)

	exported := m.Export()

	for _, key := range []string{"decodes_total", "decodes_failed", "success_rate", "encodes_total", "avg_decode_time_ns"} {
		if _, ok := exported[key]; !ok {
			t.Errorf("Export missing key %q", key)
		}
	}
	if exported["errors_AmbiguousChoice"] != uint64(1) {
		t.Errorf("errors_AmbiguousChoice = %v; want 1", exported["errors_AmbiguousChoice"])
	}
	if exported["decodes_Patient"] != uint64(2) {
		t.Errorf("decodes_Patient = %v; want 2", exported["decodes_Patient"])
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.RecordDecode("Patient", 100*time.Millisecond, errAmbiguous)
	m.RecordEncode(time.Millisecond)

	m.Reset()

	if m.DecodesTotal() != 0 || m.DecodesFailed() != 0 || m.EncodesTotal() != 0 {
		t.Error("counters should be 0 after Reset")
	}
	if m.MinDecodeTime() != 0 || m.MaxDecodeTime() != 0 {
		t.Error("timings should be 0 after Reset")
	}
	if m.ErrorKindCount("AmbiguousChoice") != 0 {
		t.Error("error kinds should be cleared after Reset")
	}
	if len(m.AllTypeStats()) != 0 {
		t.Error("resource types should be cleared after Reset")
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	n := 100

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				err = errAmbiguous
			}
			m.RecordDecode("Observation", time.Duration(i)*time.Millisecond, err)
			m.RecordEncode(time.Millisecond)
		}(i)
	}
	wg.Wait()

	if m.DecodesTotal() != uint64(n) {
		t.Errorf("DecodesTotal() = %d; want %d", m.DecodesTotal(), n)
	}
	if m.ErrorKindCount("AmbiguousChoice") != uint64(n/2) {
		t.Errorf("ErrorKindCount() = %d; want %d", m.ErrorKindCount("AmbiguousChoice"), n/2)
	}
	stats, _ := m.TypeStats("Observation")
	if stats.Decodes != uint64(n) {
		t.Errorf("Observation decodes = %d; want %d", stats.Decodes, n)
	}
	if m.EncodesTotal() != uint64(n) {
		t.Errorf("EncodesTotal() = %d; want %d", m.EncodesTotal(), n)
	}
}

func BenchmarkMetrics_RecordDecode(b *testing.B) {
	m := NewMetrics()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.RecordDecode("Patient", time.Millisecond, nil)
		}
	})
}
