// Package conv provides checked integer conversions.
//
// Snapshot headers carry element sizes and counts as fixed-width unsigned
// integers. Decoding them into Go ints, and multiplying counts by element sizes,
// must not silently wrap, or a corrupted header could size a buffer wrongly.
//
// For conversions that are provably safe (loop indices, values already checked
// against a capacity), use direct casts instead.
package conv
