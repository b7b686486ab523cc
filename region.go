package staticvec

import (
	"fmt"
	"reflect"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hupe1980/staticvec/internal/conv"
	"github.com/hupe1980/staticvec/internal/layout"
	"github.com/hupe1980/staticvec/internal/mem"
	"github.com/hupe1980/staticvec/internal/mmap"
)

// Backing identifies where a region's storage lives.
type Backing uint8

const (
	// BackingStatic is caller-provided storage, typically a package-level array.
	BackingStatic Backing = iota
	// BackingHeap is storage allocated once by Alloc.
	BackingHeap
	// BackingMapped is an anonymous off-heap mapping created by Map.
	BackingMapped
)

func (b Backing) String() string {
	switch b {
	case BackingStatic:
		return "static"
	case BackingHeap:
		return "heap"
	case BackingMapped:
		return "mapped"
	default:
		return fmt.Sprintf("backing(%d)", uint8(b))
	}
}

// Region is a fixed block of storage guarded by an access flag.
//
// At most one *Vec[T] may be live for a region at any time. Acquire hands it
// out; Release (or Region.With) gives it back. Regions are never destroyed.
type Region[T any] struct {
	id       uint32
	name     string
	typ      string
	backing  Backing
	capacity int
	elemSize uintptr
	def      T
	data     []T
	mapping  *mmap.Mapping

	held   atomic.Bool
	locked *LockedError
	scrub  bool

	logger  *Logger
	metrics MetricsCollector
}

// Declare turns caller-provided storage into a region:
//
//	var numbersBuf [1024]uint32
//	var numbers = staticvec.MustDeclare("numbers", numbersBuf[:], 0)
//
// storage is filled with def. The caller must not touch storage directly
// afterwards; all access goes through the handles Acquire returns.
func Declare[T any](name string, storage []T, def T, opts ...Option) (*Region[T], error) {
	o := buildOptions(opts)
	return declare(o, name, len(storage), def, BackingStatic, func(*Region[T]) ([]T, *mmap.Mapping, error) {
		return storage[:len(storage):len(storage)], nil, nil
	})
}

// Alloc declares a region of n elements allocated once, up front, starting on
// a 64-byte boundary.
func Alloc[T any](name string, n int, def T, opts ...Option) (*Region[T], error) {
	o := buildOptions(opts)
	return declare(o, name, n, def, BackingHeap, func(*Region[T]) ([]T, *mmap.Mapping, error) {
		return mem.Slice[T](n), nil, nil
	})
}

// Map declares a region of n elements in anonymous off-heap memory. The
// mapping stays at a fixed address for the life of the process; with
// WithLockedPages it is also pinned in physical memory.
func Map[T any](name string, n int, def T, opts ...Option) (*Region[T], error) {
	o := buildOptions(opts)
	return declare(o, name, n, def, BackingMapped, func(r *Region[T]) ([]T, *mmap.Mapping, error) {
		size, err := conv.MulInt(n, int(r.elemSize))
		if err != nil {
			return nil, nil, err
		}
		m, err := mmap.MapAnon(size)
		if err != nil {
			return nil, nil, err
		}
		// Prefault so the first accesses do not page fault.
		_ = m.Advise(mmap.AccessWillNeed)
		if o.lockPages {
			if err := m.Lock(); err != nil {
				_ = m.Close()
				return nil, nil, fmt.Errorf("lock pages: %w", err)
			}
		}
		data := unsafe.Slice((*T)(unsafe.Pointer(&m.Bytes()[0])), n) //nolint:gosec // mapping is page aligned and outlives the region
		return data, m, nil
	})
}

// MustDeclare is like Declare but panics on error.
// It simplifies package-level declarations.
func MustDeclare[T any](name string, storage []T, def T, opts ...Option) *Region[T] {
	return must(Declare(name, storage, def, opts...))
}

// MustAlloc is like Alloc but panics on error.
func MustAlloc[T any](name string, n int, def T, opts ...Option) *Region[T] {
	return must(Alloc(name, n, def, opts...))
}

// MustMap is like Map but panics on error.
func MustMap[T any](name string, n int, def T, opts ...Option) *Region[T] {
	return must(Map(name, n, def, opts...))
}

func must[T any](r *Region[T], err error) *Region[T] {
	if err != nil {
		panic(err)
	}
	return r
}

type storageFunc[T any] func(r *Region[T]) ([]T, *mmap.Mapping, error)

func declare[T any](o options, name string, n int, def T, backing Backing, storage storageFunc[T]) (*Region[T], error) {
	r, bytes, err := newRegion(o, name, n, def, backing)
	if err == nil {
		err = r.attach(o, bytes, storage)
	}
	o.logger.LogDeclare(name, backing, n, bytes, err)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newRegion[T any](o options, name string, n int, def T, backing Backing) (*Region[T], int64, error) {
	if name == "" {
		return nil, 0, ErrInvalidName
	}
	if n <= 0 {
		return nil, 0, fmt.Errorf("%w: region %q has %d elements", ErrInvalidCapacity, name, n)
	}
	info, err := layout.Of[T]()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrElementType, err)
	}
	size, err := conv.MulInt(n, int(info.Size))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: region %q: %w", ErrInvalidCapacity, name, err)
	}

	r := &Region[T]{
		name:     name,
		typ:      reflect.TypeFor[T]().String(),
		backing:  backing,
		capacity: n,
		elemSize: info.Size,
		def:      def,
		locked:   &LockedError{Region: name},
		scrub:    o.scrub,
		logger:   o.logger,
		metrics:  o.metrics,
	}
	return r, int64(size), nil
}

// attach registers r and sets up its storage, rolling back the registration
// if the storage cannot be created.
func (r *Region[T]) attach(o options, bytes int64, storage storageFunc[T]) error {
	id, err := o.registry.add(r.name, bytes, r)
	if err != nil {
		return err
	}

	data, m, err := storage(r)
	if err != nil {
		o.registry.remove(id, r.name, bytes)
		return fmt.Errorf("region %q: %w", r.name, err)
	}
	r.data = data
	r.mapping = m

	// Fresh heap and mapped memory is already zeroed.
	if r.backing == BackingStatic || !isZero(r.def) {
		r.fill()
	}
	return nil
}

func (r *Region[T]) fill() {
	for i := range r.data {
		r.data[i] = r.def
	}
}

func isZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}

// Acquire returns the region's handle if no other handle is live.
//
// It is a single compare-and-swap on the access flag and never blocks.
// When the region is held it returns a *LockedError (matching ErrLocked);
// retrying is up to the caller (see package retry).
//
// The handle starts empty. Previous contents stay in storage unless the region
// was declared WithScrubOnAcquire. The handle must be released, usually with
// defer v.Release().
func (r *Region[T]) Acquire() (*Vec[T], error) {
	if !r.held.CompareAndSwap(false, true) {
		r.metrics.RecordAcquire(r.name, r.locked)
		r.logger.LogAcquire(r.name, r.locked)
		return nil, r.locked
	}

	if r.scrub {
		r.fill()
	}

	l := &lease{}
	v := &Vec[T]{
		region:   r,
		data:     r.data,
		lease:    l,
		acquired: time.Now(),
	}
	v.cleanup = runtime.AddCleanup(v, r.reclaim, l)

	r.metrics.RecordAcquire(r.name, nil)
	r.logger.LogAcquire(r.name, nil)
	return v, nil
}

// With acquires the region, runs fn and releases the region on every exit
// path, including a panic in fn. Acquire errors are returned unchanged.
func (r *Region[T]) With(fn func(v *Vec[T]) error) error {
	v, err := r.Acquire()
	if err != nil {
		return err
	}
	defer v.Release()
	return fn(v)
}

// reclaim frees the flag for a handle that became unreachable without Release.
func (r *Region[T]) reclaim(l *lease) {
	if !l.released.CompareAndSwap(false, true) {
		return
	}
	r.held.Store(false)
	r.metrics.RecordLeak(r.name)
	r.logger.LogLeak(r.name)
}

func (r *Region[T]) release(held time.Duration) {
	r.held.Store(false)
	r.metrics.RecordRelease(r.name, held)
	r.logger.LogRelease(r.name, held)
}

// Name returns the name the region was declared with.
func (r *Region[T]) Name() string { return r.name }

// ID returns the region's slot ID in its registry.
func (r *Region[T]) ID() uint32 { return r.id }

// Cap returns the number of elements the region holds.
func (r *Region[T]) Cap() int { return r.capacity }

// Backing returns where the region's storage lives.
func (r *Region[T]) Backing() Backing { return r.backing }

// Held reports whether a handle is currently live.
func (r *Region[T]) Held() bool { return r.held.Load() }

// PagesLocked reports whether a mapped region is pinned in physical memory.
func (r *Region[T]) PagesLocked() bool {
	return r.mapping != nil && r.mapping.Locked()
}

func (r *Region[T]) isHeld() bool { return r.held.Load() }

func (r *Region[T]) setID(id uint32) { r.id = id }

func (r *Region[T]) info() SlotInfo {
	return SlotInfo{
		ID:       r.id,
		Name:     r.name,
		Type:     r.typ,
		Backing:  r.backing,
		Cap:      r.capacity,
		ElemSize: r.elemSize,
		Bytes:    int64(r.capacity) * int64(r.elemSize),
		Held:     r.held.Load(),
	}
}

var _ slot = (*Region[uint8])(nil)
