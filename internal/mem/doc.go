// Package mem allocates heap storage for fixed regions.
//
// # Aligned Allocation
//
// Storage starts on a cache line boundary (64 bytes) so that descriptors handed
// to foreign code never straddle a line at element zero.
package mem
