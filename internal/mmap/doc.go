// Package mmap provides anonymous memory mappings used as off-heap region storage.
//
// # Overview
//
// A mapping is a page-aligned, read-write block of memory obtained directly from
// the operating system. The Go garbage collector neither scans nor moves it, so
// its address stays fixed for as long as it is mapped. That makes it a good
// stand-in for statically allocated memory on hosted platforms, and its address
// can be handed to code that expects a stable buffer (DMA descriptors, cgo).
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Keep the pages resident (best effort, subject to RLIMIT_MEMLOCK)
//	_ = m.Lock()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix: mmap(2) with MAP_ANON|MAP_PRIVATE, mlock(2), madvise(2)
//   - Windows: VirtualAlloc/VirtualLock (advice is a no-op)
//   - Other targets: MapAnon returns ErrUnsupported
//
// # Thread Safety
//
// Close is idempotent and guarded by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close returns.
package mmap
