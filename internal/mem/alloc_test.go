package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 10, 63, 64, 65, 100, 1024} {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf), "capacity must not expose the padding")

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr%Alignment, "size %d", size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestSlice(t *testing.T) {
	type pair struct {
		A uint16
		B uint64
	}

	s := Slice[pair](17)
	assert.Len(t, s, 17)
	assert.Zero(t, uintptr(unsafe.Pointer(&s[0]))%Alignment)
	for _, p := range s {
		assert.Zero(t, p)
	}

	s[16] = pair{A: 1, B: 2}
	assert.Equal(t, pair{A: 1, B: 2}, s[16])

	u := Slice[uint32](3)
	assert.Len(t, u, 3)

	assert.Nil(t, Slice[uint32](0))
}
