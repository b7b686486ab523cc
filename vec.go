package staticvec

import (
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"
)

// Vec is the exclusive handle to a region: a vector with a fixed capacity.
//
// It behaves like a slice that can never grow past the region's size. Every
// capacity or bounds violation panics with a *BoundsError; Pop is the only
// operation that reports absence instead. A Vec is not safe for concurrent use.
//
// Elements at and beyond Len are stale storage and are only visible through
// the raw accessors (Raw, Pointer, Descriptor).
type Vec[T any] struct {
	region   *Region[T]
	data     []T
	offset   int
	lease    *lease
	cleanup  runtime.Cleanup
	acquired time.Time
}

// lease is shared with the garbage collection cleanup so that exactly one of
// Release and reclaim frees the flag.
type lease struct {
	released atomic.Bool
}

// Release returns the region's access flag to free. It is idempotent; only the
// first call has an effect. The handle must not be used afterwards.
func (v *Vec[T]) Release() {
	if !v.lease.released.CompareAndSwap(false, true) {
		return
	}
	v.cleanup.Stop()
	v.region.release(time.Since(v.acquired))
}

// expect is the single precondition check behind every operation. It panics
// with a *BoundsError unless ok holds and the handle is still live.
func (v *Vec[T]) expect(op string, ok bool, kind error, index, want int) {
	if ok && !v.lease.released.Load() {
		return
	}
	if v.lease.released.Load() {
		kind, index, want = ErrReleased, -1, 0
	}
	v.violate(op, kind, index, want)
}

func (v *Vec[T]) violate(op string, kind error, index, want int) {
	be := &BoundsError{
		Region: v.region.name,
		Op:     op,
		Kind:   kind,
		Index:  index,
		Want:   want,
		Len:    v.offset,
		Cap:    len(v.data),
	}
	v.region.metrics.RecordViolation(be.Region, op, kind)
	v.region.logger.LogViolation(be)
	panic(be)
}

// Name returns the name of the region the handle belongs to.
func (v *Vec[T]) Name() string { return v.region.name }

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int { return len(v.data) }

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.offset }

// IsEmpty reports whether Len is 0.
func (v *Vec[T]) IsEmpty() bool { return v.offset == 0 }

// Push appends value. It panics with ErrFull when Len == Cap.
func (v *Vec[T]) Push(value T) {
	v.expect("push", v.offset < len(v.data), ErrFull, -1, 1)
	v.data[v.offset] = value
	v.offset++
}

// Pop removes and returns the last element, or false if the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.expect("pop", true, nil, -1, 0)
	if v.offset == 0 {
		var zero T
		return zero, false
	}
	v.offset--
	return v.data[v.offset], true
}

// Insert places value at index i, shifting [i, Len) up by one.
// It panics with ErrFull when the vector is full and with ErrOutOfRange
// unless 0 <= i <= Len.
func (v *Vec[T]) Insert(i int, value T) {
	v.expect("insert", v.offset < len(v.data), ErrFull, i, 1)
	v.expect("insert", i >= 0 && i <= v.offset, ErrOutOfRange, i, 0)
	copy(v.data[i+1:v.offset+1], v.data[i:v.offset])
	v.data[i] = value
	v.offset++
}

// Remove deletes and returns the element at i, shifting (i, Len) down by one.
// It panics with ErrOutOfRange unless 0 <= i < Len.
func (v *Vec[T]) Remove(i int) T {
	v.expect("remove", i >= 0 && i < v.offset, ErrOutOfRange, i, 0)
	value := v.data[i]
	copy(v.data[i:v.offset-1], v.data[i+1:v.offset])
	v.offset--
	return value
}

// SwapRemove deletes and returns the element at i, replacing it with the last
// element. It does not preserve order but runs in constant time.
func (v *Vec[T]) SwapRemove(i int) T {
	v.expect("swap_remove", i >= 0 && i < v.offset, ErrOutOfRange, i, 0)
	value := v.data[i]
	v.data[i] = v.data[v.offset-1]
	v.offset--
	return value
}

// Truncate shortens the vector to n elements. It is a no-op when n >= Len.
func (v *Vec[T]) Truncate(n int) {
	v.expect("truncate", n >= 0, ErrOutOfRange, n, 0)
	if n < v.offset {
		v.offset = n
	}
}

// Append copies all elements of other to the end of v. other is unchanged.
// It panics with ErrInsufficientSpace when other does not fit.
func (v *Vec[T]) Append(other *Vec[T]) {
	other.expect("append", true, nil, -1, 0)
	v.extend("append", other.data[:other.offset])
}

// Extend copies values to the end of v.
// It panics with ErrInsufficientSpace when they do not fit.
func (v *Vec[T]) Extend(values ...T) {
	v.extend("extend", values)
}

func (v *Vec[T]) extend(op string, values []T) {
	n := len(values)
	v.expect(op, len(v.data)-v.offset >= n, ErrInsufficientSpace, -1, n)
	copy(v.data[v.offset:v.offset+n], values)
	v.offset += n
}

// AppendBytes appends elements from their in-memory byte representation, as
// produced by Bytes. len(b) must be a multiple of the element size.
func (v *Vec[T]) AppendBytes(b []byte) {
	size := int(v.region.elemSize)
	v.expect("append_bytes", len(b)%size == 0, ErrPartialElement, -1, 0)
	n := len(b) / size
	v.expect("append_bytes", len(v.data)-v.offset >= n, ErrInsufficientSpace, -1, n)
	if n == 0 {
		return
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&v.data[v.offset])), len(b)) //nolint:gosec // n elements fit after offset
	copy(dst, b)
	v.offset += n
}

// Clear sets Len to 0. Storage is not zeroed.
func (v *Vec[T]) Clear() {
	v.expect("clear", true, nil, -1, 0)
	v.offset = 0
}

// At returns the element at i. It panics with ErrOutOfRange unless 0 <= i < Len.
func (v *Vec[T]) At(i int) T {
	v.expect("at", i >= 0 && i < v.offset, ErrOutOfRange, i, 0)
	return v.data[i]
}

// Set overwrites the element at i. It panics with ErrOutOfRange unless 0 <= i < Len.
func (v *Vec[T]) Set(i int, value T) {
	v.expect("set", i >= 0 && i < v.offset, ErrOutOfRange, i, 0)
	v.data[i] = value
}

// Ref returns a pointer to the element at i for in-place updates.
// It panics with ErrOutOfRange unless 0 <= i < Len.
func (v *Vec[T]) Ref(i int) *T {
	v.expect("ref", i >= 0 && i < v.offset, ErrOutOfRange, i, 0)
	return &v.data[i]
}

// Slice returns the elements [0, Len) as a slice aliasing the region.
// Its capacity is clipped to Len, so appending to it never writes into the region.
// The slice must not be used after the handle is released.
func (v *Vec[T]) Slice() []T {
	v.expect("slice", true, nil, -1, 0)
	return v.data[:v.offset:v.offset]
}
