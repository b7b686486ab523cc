package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32s(t *testing.T) {
	rng := NewRNG(7)
	vals := rng.Uint32s(32)
	assert.Len(t, vals, 32)
	assert.Len(t, rng.Bytes(5), 5)
}

func TestPerm(t *testing.T) {
	rng := NewRNG(7)
	p := rng.Perm(10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p)
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	assert.Equal(t, int64(42), rng.Seed())

	first := rng.Uint32s(8)
	idx := rng.Intn(100)

	rng.Reset()
	assert.Equal(t, first, rng.Uint32s(8))
	assert.Equal(t, idx, rng.Intn(100))
}
