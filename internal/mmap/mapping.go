package mmap

import (
	"sync/atomic"
)

// Mapping is an anonymous read-write memory mapping.
// It owns the underlying memory and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	locked atomic.Bool
	// unmap is the platform-specific function to release the memory.
	unmap func([]byte) error
}

// MapAnon maps size bytes of zeroed anonymous memory.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		unmap: unmapFunc,
	}, nil
}

// Close unlocks and unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.locked.Swap(false) {
		_ = osUnlock(m.data)
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the mapped memory.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Lock pins the mapping in physical memory so it is never paged out.
func (m *Mapping) Lock() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if err := osLock(m.data); err != nil {
		return err
	}
	m.locked.Store(true)
	return nil
}

// Locked reports whether Lock succeeded and the mapping is still pinned.
func (m *Mapping) Locked() bool {
	return m.locked.Load()
}

// Unlock reverses Lock.
func (m *Mapping) Unlock() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if !m.locked.Swap(false) {
		return nil
	}
	return osUnlock(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(m.data, pattern)
}
