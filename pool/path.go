// Package pool provides sync.Pool wrappers for reducing GC pressure while
// decoding and encoding documents.
package pool

import (
	"strconv"
	"sync"
)

// PathBuilder builds instance paths such as "Bundle.entry[2].resource".
// It uses a byte buffer that grows as needed and is reused via sync.Pool.
type PathBuilder struct {
	buf []byte
}

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{
			buf: make([]byte, 0, 128),
		}
	},
}

// AcquirePathBuilder gets a PathBuilder from the pool.
// Call Release() when done to return it to the pool.
func AcquirePathBuilder() *PathBuilder {
	pb := pathBuilderPool.Get().(*PathBuilder)
	pb.Reset()
	return pb
}

// Release returns the PathBuilder to the pool.
func (b *PathBuilder) Release() {
	if b == nil {
		return
	}
	// Don't return oversized buffers to the pool
	if cap(b.buf) <= 4096 {
		pathBuilderPool.Put(b)
	}
}

// Reset clears the buffer without deallocating.
func (b *PathBuilder) Reset() {
	b.buf = b.buf[:0]
}

// Len returns the current length of the path.
func (b *PathBuilder) Len() int {
	return len(b.buf)
}

// WriteString appends a raw string to the path.
func (b *PathBuilder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendMember appends a member name with a leading dot if the path is not empty.
func (b *PathBuilder) AppendMember(name string) {
	if len(b.buf) > 0 {
		b.buf = append(b.buf, '.')
	}
	b.buf = append(b.buf, name...)
}

// AppendIndex appends an array index in brackets [n].
func (b *PathBuilder) AppendIndex(index int) {
	b.buf = append(b.buf, '[')
	b.buf = strconv.AppendInt(b.buf, int64(index), 10)
	b.buf = append(b.buf, ']')
}

// String returns the built path as a string.
func (b *PathBuilder) String() string {
	return string(b.buf)
}

// BuildPath builds a path using a callback. The PathBuilder is returned to
// the pool after the callback.
//
// Example:
//
//	path := pool.BuildPath(func(b *pool.PathBuilder) {
//	    b.WriteString("Patient")
//	    b.AppendMember("name")
//	    b.AppendIndex(0)
//	})
func BuildPath(fn func(*PathBuilder)) string {
	pb := AcquirePathBuilder()
	defer pb.Release()
	fn(pb)
	return pb.String()
}

// MemberPath returns base + "." + name.
func MemberPath(base, name string) string {
	if base == "" {
		return name
	}
	return BuildPath(func(b *PathBuilder) {
		b.WriteString(base)
		b.AppendMember(name)
	})
}

// ElementPath returns base + "." + name + "[index]".
func ElementPath(base, name string, index int) string {
	return BuildPath(func(b *PathBuilder) {
		b.WriteString(base)
		b.AppendMember(name)
		b.AppendIndex(index)
	})
}
