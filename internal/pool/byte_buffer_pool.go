// Package pool provides pooled byte buffers for encode paths.
//
// Encoding output sizes are proportional to input sizes and typically small,
// so a sync.Pool of growable buffers removes most per-call allocations without
// holding on to unbounded memory.
package pool

import "sync"

const (
	// BufferDefaultSize is the initial capacity of a pooled buffer.
	BufferDefaultSize = 1024 * 4 // 4KiB
	// BufferMaxThreshold is the largest buffer returned to the pool; bigger
	// ones are dropped so a single huge encode does not pin memory.
	BufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a minimal growable byte buffer designed for pooling.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Reset empties the buffer, retaining allocated memory for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte to the buffer. It always returns nil,
// matching the io.ByteWriter signature.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by BufferDefaultSize to amortize
// reallocation; larger ones grow by 25% of capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := BufferDefaultSize
	if cap(bb.B) > 4*BufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

var bufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BufferDefaultSize)
	},
}

// GetBuffer retrieves an empty ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)

	return bb
}

// PutBuffer returns a ByteBuffer to the pool, dropping oversized buffers.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > BufferMaxThreshold {
		return
	}
	bb.Reset()
	bufferPool.Put(bb)
}
