package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon_ReadWriteClose(t *testing.T) {
	m, err := MapAnon(8192)
	require.NoError(t, err)

	data := m.Bytes()
	require.Len(t, data, 8192)
	assert.Equal(t, 8192, m.Size())

	// Fresh anonymous memory is zeroed.
	for _, b := range data[:64] {
		assert.Zero(t, b)
	}

	data[0] = 0xAB
	data[8191] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[8191])

	require.NoError(t, m.Advise(AccessRandom))

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "Close must be idempotent")
	assert.Nil(t, m.Bytes())
}

func TestMapAnon_InvalidSize(t *testing.T) {
	_, err := MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMapping_LockUnlock(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	defer m.Close()

	// mlock can be refused by RLIMIT_MEMLOCK on CI machines.
	if err := m.Lock(); err != nil {
		t.Skipf("mlock not permitted: %v", err)
	}
	assert.True(t, m.Locked())

	require.NoError(t, m.Unlock())
	assert.False(t, m.Locked())
	require.NoError(t, m.Unlock())
}

func TestMapping_AfterClose(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	assert.ErrorIs(t, m.Advise(AccessSequential), ErrClosed)
	assert.ErrorIs(t, m.Lock(), ErrClosed)
	assert.ErrorIs(t, m.Unlock(), ErrClosed)
}
