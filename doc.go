// Package staticvec provides fixed-capacity vectors over storage that is
// declared once and never reallocated, with exclusive, revocable access.
//
// It targets code that must not allocate on its hot paths: firmware-style
// loops, interrupt-like callbacks, and buffers whose address is handed to
// hardware or foreign code.
//
// # Regions and Handles
//
// A Region is a named block of N elements plus an atomic access flag. Regions
// are declared once, usually at package level, and live for the whole process:
//
//	var numbersBuf [1024]uint32
//	var numbers = staticvec.MustDeclare("numbers", numbersBuf[:], 0)
//
// Acquire flips the flag with a single compare-and-swap and returns the only
// live handle, a *Vec, or a *LockedError if someone else holds it:
//
//	v, err := numbers.Acquire()
//	if errors.Is(err, staticvec.ErrLocked) {
//	    // caller decides: retry, poll, escalate
//	}
//	defer v.Release()
//
//	v.Push(123)
//	v.Push(456)
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// Region.With wraps acquire and release around a function and releases on
// every exit path, panics included. A handle that is dropped without Release
// is reclaimed after it has been garbage collected, and the leak is logged.
//
// # Backings
//
//   - Declare: caller storage, typically a package-level array (BackingStatic)
//   - Alloc: allocated once at declaration (BackingHeap)
//   - Map: anonymous off-heap mapping, optionally page-locked (BackingMapped)
//
// Element types must be plain data: numbers, booleans, and arrays or structs of
// them. Pointers, strings, slices, maps and interfaces are rejected at declaration.
//
// # Error Tiers
//
// Acquire is the only operation with a recoverable error (ErrLocked).
// Capacity and bounds violations (Push on a full vector, an index out of range,
// Append without room, use after Release) are programming defects and panic
// with a *BoundsError. Pop reports an empty vector with ok == false.
//
// # Concurrency
//
// Acquire and Release are lock-free and never block. All flag transitions use
// sync/atomic, which is sequentially consistent, so acquisitions and releases
// are totally ordered across goroutines. A Vec itself is single-owner and not
// safe for concurrent use.
//
// # Registry
//
// Every region is a slot in a Registry (Default unless WithRegistry is given).
// The registry enforces unique names, an optional memory budget, and offers
// introspection (Slots, Lookup, Held) without touching the acquire path.
package staticvec
