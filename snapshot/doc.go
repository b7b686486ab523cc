// Package snapshot writes the live elements of a staticvec.Vec to a stream and
// appends them back into a held vector.
//
// # Format
//
// A snapshot is a 24-byte little-endian header followed by the payload:
//
//	[Magic "SVEC" 4][Version 1][Compression 1][ByteOrder 1][Reserved 1]
//	[ElemSize uint32][Count uint32][PayloadLen uint32][CRC32C uint32]
//	[Payload PayloadLen]
//
// The payload is the in-memory representation of Count elements, optionally
// compressed with LZ4 or Zstandard. The checksum covers the uncompressed bytes.
// Elements are stored in the byte order of the writing machine; Read refuses
// snapshots taken on a machine of the other order.
//
// Snapshots are a diagnostic aid (dumping a DMA buffer, replaying a captured
// frame); they do not describe the element type beyond its size.
package snapshot
