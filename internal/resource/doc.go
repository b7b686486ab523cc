// Package resource implements the memory budget shared by the regions of a registry.
//
// Every region declared in a registry reserves its full storage size
// (capacity times element size) once, at declaration. A Controller configured
// with a limit refuses reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 10, // 64 KiB of region storage
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - the declaration fails
//	}
//
// Reservations are non-blocking and fail fast. The weighted semaphore is only
// consulted when a limit is configured; otherwise usage is tracked with an
// atomic counter.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
