package staticvec

import (
	"unsafe"
)

// Descriptor describes a region's storage for code outside the Go type system,
// such as DMA transfer descriptors or cgo calls.
//
// Addr stays valid for the life of the process, but the exclusivity it was
// obtained under ends with the handle: using it after Release is outside the
// region's safety contract.
type Descriptor struct {
	Addr     uintptr // address of element 0
	Len      int     // elements in use
	Cap      int     // elements in the region
	ElemSize uintptr // bytes per element
}

// LenBytes returns the number of bytes in use.
func (d Descriptor) LenBytes() int { return d.Len * int(d.ElemSize) }

// CapBytes returns the size of the region in bytes.
func (d Descriptor) CapBytes() int { return d.Cap * int(d.ElemSize) }

// Descriptor returns the address, length and capacity of the storage.
func (v *Vec[T]) Descriptor() Descriptor {
	v.expect("descriptor", true, nil, -1, 0)
	return Descriptor{
		Addr:     uintptr(unsafe.Pointer(unsafe.SliceData(v.data))),
		Len:      v.offset,
		Cap:      len(v.data),
		ElemSize: v.region.elemSize,
	}
}

// Pointer returns the address of the first element of the storage.
func (v *Vec[T]) Pointer() unsafe.Pointer {
	v.expect("pointer", true, nil, -1, 0)
	return unsafe.Pointer(unsafe.SliceData(v.data))
}

// Raw returns the whole storage, including the stale elements beyond Len.
func (v *Vec[T]) Raw() []T {
	v.expect("raw", true, nil, -1, 0)
	return v.data[:len(v.data):len(v.data)]
}

// Bytes returns the in-memory representation of the elements [0, Len).
// The bytes alias the region and use the host byte order.
func (v *Vec[T]) Bytes() []byte {
	v.expect("bytes", true, nil, -1, 0)
	n := v.offset * int(v.region.elemSize)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v.data))), n) //nolint:gosec // n bytes lie within the region
}
