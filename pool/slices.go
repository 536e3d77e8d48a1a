package pool

import "sync"

// byteSlicePool holds encoder output buffers.
var byteSlicePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 4096)
		return &b
	},
}

// AcquireByteSlice gets a byte slice from the pool.
func AcquireByteSlice() *[]byte {
	b := byteSlicePool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// ReleaseByteSlice returns a byte slice to the pool.
func ReleaseByteSlice(b *[]byte) {
	if b == nil {
		return
	}
	// Don't keep buffers grown by very large documents
	if cap(*b) <= 1<<20 {
		byteSlicePool.Put(b)
	}
}

// MapPool provides pooled maps for temporary use, such as the set of member
// names consumed while decoding one object.
type MapPool[K comparable, V any] struct {
	pool sync.Pool
	cap  int
}

// NewMapPool creates a new pool for maps with the given initial capacity.
func NewMapPool[K comparable, V any](initialCap int) *MapPool[K, V] {
	return &MapPool[K, V]{
		pool: sync.Pool{
			New: func() any {
				return make(map[K]V, initialCap)
			},
		},
		cap: initialCap,
	}
}

// Acquire gets an empty map from the pool.
func (p *MapPool[K, V]) Acquire() map[K]V {
	return p.pool.Get().(map[K]V)
}

// Release clears the map and returns it to the pool.
func (p *MapPool[K, V]) Release(m map[K]V) {
	if m == nil {
		return
	}
	size := len(m)
	clear(m)
	if size <= p.cap*4 {
		p.pool.Put(m)
	}
}
