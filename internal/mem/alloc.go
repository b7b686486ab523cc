package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every allocation (one cache line).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// It returns nil when size <= 0.
//
// The underlying array is slightly larger than requested and is kept alive by
// the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // address arithmetic only
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// Slice allocates n zeroed elements of T starting on a 64-byte boundary.
// T must not contain pointers; the memory is typed as bytes to the collector.
func Slice[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	size := int(unsafe.Sizeof(*new(T))) * n
	if size == 0 {
		return make([]T, n)
	}
	b := AllocAligned(size)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n) //nolint:gosec // b is aligned and sized for n elements
}
