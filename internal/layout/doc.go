// Package layout validates element types for fixed storage regions.
//
// A region copies elements bit for bit, may live outside the Go heap and may be
// handed to foreign code by address. That only works for types the garbage
// collector never has to trace: booleans, numbers, and arrays or structs built
// from them. Pointers, strings, slices, maps, channels, funcs and interfaces are
// rejected, as are zero-sized types.
package layout
