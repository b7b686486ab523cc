// Package hash provides the CRC32-Castagnoli checksum used by snapshots.
//
// Snapshots store the CRC32C of the uncompressed element bytes so a restore
// can reject truncated or corrupted input before any element reaches a region.
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension for this polynomial
// when available.
//
//	sum := hash.CRC32C(payload)
package hash
