package fhirmodels

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks decode and encode statistics using lock-free atomic
// operations. All methods are safe for concurrent use.
type Metrics struct {
	decodesTotal  atomic.Uint64
	decodesFailed atomic.Uint64
	encodesTotal  atomic.Uint64

	// Timing (stored as nanoseconds)
	decodeTimeTotal atomic.Uint64
	decodeTimeMin   atomic.Uint64
	decodeTimeMax   atomic.Uint64
	encodeTimeTotal atomic.Uint64

	resourceTypes sync.Map // map[string]*typeMetrics
	errorKinds    sync.Map // map[string]*atomic.Uint64
}

// typeMetrics tracks decodes of a single resource type.
type typeMetrics struct {
	decodes   atomic.Uint64
	failures  atomic.Uint64
	totalTime atomic.Uint64 // nanoseconds
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.decodeTimeMin.Store(^uint64(0))
	return m
}

// --- Recording Methods ---

// RecordDecode records one decoded document. resourceType may be empty
// when the discriminator could not be read.
func (m *Metrics) RecordDecode(resourceType string, duration time.Duration, err error) {
	m.decodesTotal.Add(1)
	ns := uint64(duration.Nanoseconds()) //nolint:gosec // Safe: nanoseconds are always positive for valid durations
	m.decodeTimeTotal.Add(ns)

	for {
		old := m.decodeTimeMin.Load()
		if ns >= old || m.decodeTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.decodeTimeMax.Load()
		if ns <= old || m.decodeTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}

	if resourceType == "" {
		resourceType = "unknown"
	}
	tm := loadOrCreate(&m.resourceTypes, resourceType, func() *typeMetrics { return &typeMetrics{} })
	tm.decodes.Add(1)
	tm.totalTime.Add(ns)

	if err != nil {
		m.decodesFailed.Add(1)
		tm.failures.Add(1)
		loadOrCreate(&m.errorKinds, ErrorKind(err), func() *atomic.Uint64 { return &atomic.Uint64{} }).Add(1)
	}
}

// RecordEncode records one encoded document.
func (m *Metrics) RecordEncode(duration time.Duration) {
	m.encodesTotal.Add(1)
	m.encodeTimeTotal.Add(uint64(duration.Nanoseconds())) //nolint:gosec // Safe: nanoseconds are always positive
}

func loadOrCreate[V any](sm *sync.Map, key string, create func() *V) *V {
	if v, ok := sm.Load(key); ok {
		return v.(*V)
	}
	actual, _ := sm.LoadOrStore(key, create())
	return actual.(*V)
}

// --- Query Methods ---

// DecodesTotal returns the number of documents decoded, failed or not.
func (m *Metrics) DecodesTotal() uint64 {
	return m.decodesTotal.Load()
}

// DecodesFailed returns the number of documents that failed to decode.
func (m *Metrics) DecodesFailed() uint64 {
	return m.decodesFailed.Load()
}

// EncodesTotal returns the number of documents encoded.
func (m *Metrics) EncodesTotal() uint64 {
	return m.encodesTotal.Load()
}

// SuccessRate returns the fraction of successful decodes (0.0 to 1.0).
func (m *Metrics) SuccessRate() float64 {
	total := m.decodesTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(total-m.decodesFailed.Load()) / float64(total)
}

// AverageDecodeTime returns the average decode duration.
func (m *Metrics) AverageDecodeTime() time.Duration {
	total := m.decodesTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.decodeTimeTotal.Load() / total) //nolint:gosec // Safe: nanoseconds within int64 range
}

// MinDecodeTime returns the minimum decode duration.
func (m *Metrics) MinDecodeTime() time.Duration {
	minVal := m.decodeTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal) //nolint:gosec // Safe: nanoseconds within int64 range
}

// MaxDecodeTime returns the maximum decode duration.
func (m *Metrics) MaxDecodeTime() time.Duration {
	return time.Duration(m.decodeTimeMax.Load()) //nolint:gosec // Safe: nanoseconds within int64 range
}

// AverageEncodeTime returns the average encode duration.
func (m *Metrics) AverageEncodeTime() time.Duration {
	total := m.encodesTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.encodeTimeTotal.Load() / total) //nolint:gosec // Safe: nanoseconds within int64 range
}

// ErrorKindCount returns how many decodes failed with the given kind, as
// named by ErrorKind.
func (m *Metrics) ErrorKindCount(kind string) uint64 {
	v, ok := m.errorKinds.Load(kind)
	if !ok {
		return 0
	}
	return v.(*atomic.Uint64).Load()
}

// TypeStats holds decode statistics for one resource type.
type TypeStats struct {
	ResourceType string        `json:"resource_type"`
	Decodes      uint64        `json:"decodes"`
	Failures     uint64        `json:"failures"`
	AvgTime      time.Duration `json:"avg_time_ns"`
}

func (tm *typeMetrics) stats(name string) TypeStats {
	decodes := tm.decodes.Load()
	var avg time.Duration
	if decodes > 0 {
		avg = time.Duration(tm.totalTime.Load() / decodes) //nolint:gosec // Safe: nanoseconds within int64 range
	}
	return TypeStats{
		ResourceType: name,
		Decodes:      decodes,
		Failures:     tm.failures.Load(),
		AvgTime:      avg,
	}
}

// TypeStats returns statistics for a resource type.
func (m *Metrics) TypeStats(resourceType string) (TypeStats, bool) {
	v, ok := m.resourceTypes.Load(resourceType)
	if !ok {
		return TypeStats{ResourceType: resourceType}, false
	}
	return v.(*typeMetrics).stats(resourceType), true
}

// AllTypeStats returns statistics for all resource types, sorted by name.
func (m *Metrics) AllTypeStats() []TypeStats {
	var stats []TypeStats
	m.resourceTypes.Range(func(key, value any) bool {
		stats = append(stats, value.(*typeMetrics).stats(key.(string)))
		return true
	})
	sort.Slice(stats, func(i, j int) bool { return stats[i].ResourceType < stats[j].ResourceType })
	return stats
}

// --- Export Methods ---

// Snapshot represents a point-in-time snapshot of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	DecodesTotal  uint64  `json:"decodes_total"`
	DecodesFailed uint64  `json:"decodes_failed"`
	SuccessRate   float64 `json:"success_rate"`
	EncodesTotal  uint64  `json:"encodes_total"`

	// Timing metrics (in nanoseconds for precision)
	AvgDecodeTimeNs uint64 `json:"avg_decode_time_ns"`
	MinDecodeTimeNs uint64 `json:"min_decode_time_ns"`
	MaxDecodeTimeNs uint64 `json:"max_decode_time_ns"`
	AvgEncodeTimeNs uint64 `json:"avg_encode_time_ns"`

	ErrorKinds    map[string]uint64 `json:"error_kinds,omitempty"`
	ResourceTypes []TypeStats       `json:"resource_types,omitempty"`
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	kinds := make(map[string]uint64)
	m.errorKinds.Range(func(key, value any) bool {
		kinds[key.(string)] = value.(*atomic.Uint64).Load()
		return true
	})

	return Snapshot{
		Timestamp:       time.Now(),
		DecodesTotal:    m.decodesTotal.Load(),
		DecodesFailed:   m.decodesFailed.Load(),
		SuccessRate:     m.SuccessRate(),
		EncodesTotal:    m.encodesTotal.Load(),
		AvgDecodeTimeNs: uint64(m.AverageDecodeTime()), //nolint:gosec // Safe: durations here are positive
		MinDecodeTimeNs: uint64(m.MinDecodeTime()),     //nolint:gosec // Safe: durations here are positive
		MaxDecodeTimeNs: m.decodeTimeMax.Load(),
		AvgEncodeTimeNs: uint64(m.AverageEncodeTime()), //nolint:gosec // Safe: durations here are positive
		ErrorKinds:      kinds,
		ResourceTypes:   m.AllTypeStats(),
	}
}

// Export returns metrics as a flat map suitable for external systems.
// Error kinds are exported as "errors_<Kind>" and resource types as
// "decodes_<Type>".
func (m *Metrics) Export() map[string]any {
	s := m.Snapshot()
	out := map[string]any{
		"decodes_total":      s.DecodesTotal,
		"decodes_failed":     s.DecodesFailed,
		"success_rate":       s.SuccessRate,
		"encodes_total":      s.EncodesTotal,
		"avg_decode_time_ns": s.AvgDecodeTimeNs,
		"min_decode_time_ns": s.MinDecodeTimeNs,
		"max_decode_time_ns": s.MaxDecodeTimeNs,
		"avg_encode_time_ns": s.AvgEncodeTimeNs,
	}
	for kind, n := range s.ErrorKinds {
		out["errors_"+kind] = n
	}
	for _, ts := range s.ResourceTypes {
		out["decodes_"+ts.ResourceType] = ts.Decodes
	}
	return out
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.decodesTotal.Store(0)
	m.decodesFailed.Store(0)
	m.encodesTotal.Store(0)
	m.decodeTimeTotal.Store(0)
	m.decodeTimeMin.Store(^uint64(0))
	m.decodeTimeMax.Store(0)
	m.encodeTimeTotal.Store(0)

	m.resourceTypes.Range(func(key, _ any) bool {
		m.resourceTypes.Delete(key)
		return true
	})
	m.errorKinds.Range(func(key, _ any) bool {
		m.errorKinds.Delete(key)
		return true
	})
}
