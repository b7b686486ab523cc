package staticvec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DuplicateName(t *testing.T) {
	reg := NewRegistry(RegistryConfig{})

	_, err := Alloc[uint32]("dup", 4, 0, WithRegistry(reg))
	require.NoError(t, err)

	_, err = Alloc[uint64]("dup", 4, 0, WithRegistry(reg))
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, reg.Len())

	// Names are scoped to a registry.
	_, err = Alloc[uint32]("dup", 4, 0, WithRegistry(NewRegistry(RegistryConfig{})))
	require.NoError(t, err)
}

func TestRegistry_MemoryLimit(t *testing.T) {
	reg := NewRegistry(RegistryConfig{MemoryLimitBytes: 64})
	assert.Equal(t, int64(64), reg.MemoryLimit())

	_, err := Alloc[uint32]("a", 8, 0, WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, int64(32), reg.MemoryUsage())

	_, err = Alloc[uint64]("b", 5, 0, WithRegistry(reg))
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(32), reg.MemoryUsage(), "a refused declaration must not consume budget")

	// The refused name stays available.
	_, err = Alloc[uint64]("b", 4, 0, WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, int64(64), reg.MemoryUsage())
}

func TestRegistry_UnlimitedByDefault(t *testing.T) {
	reg := NewRegistry(RegistryConfig{})
	assert.Zero(t, reg.MemoryLimit())

	_, err := Alloc[uint64]("big", 1<<16, 0, WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, int64(8<<16), reg.MemoryUsage())
}

func TestRegistry_SlotsAndLookup(t *testing.T) {
	reg := NewRegistry(RegistryConfig{})
	a := MustAlloc[uint32]("a", 4, 0, WithRegistry(reg))
	_, err := Alloc[string]("bad", 4, "", WithRegistry(reg))
	require.Error(t, err)
	b := MustAlloc[[4]float32]("b", 2, [4]float32{}, WithRegistry(reg))

	slots := reg.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, a.ID(), slots[0].ID)
	assert.Equal(t, b.ID(), slots[1].ID)
	assert.Less(t, slots[0].ID, slots[1].ID)

	info, ok := reg.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, SlotInfo{
		ID:       b.ID(),
		Name:     "b",
		Type:     "[4]float32",
		Backing:  BackingHeap,
		Cap:      2,
		ElemSize: 16,
		Bytes:    32,
	}, info)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_Held(t *testing.T) {
	reg := NewRegistry(RegistryConfig{})
	a := MustAlloc[uint32]("a", 4, 0, WithRegistry(reg))
	b := MustAlloc[uint32]("b", 4, 0, WithRegistry(reg))

	assert.True(t, reg.Held().IsEmpty())

	vb, err := b.Acquire()
	require.NoError(t, err)

	held := reg.Held()
	assert.Equal(t, uint64(1), held.GetCardinality())
	assert.True(t, held.Contains(b.ID()))
	assert.False(t, held.Contains(a.ID()))

	info, _ := reg.Lookup("b")
	assert.True(t, info.Held)

	vb.Release()
	assert.True(t, reg.Held().IsEmpty())
}

func TestRegistry_ConcurrentDeclare(t *testing.T) {
	reg := NewRegistry(RegistryConfig{})

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = Alloc[uint32]("same", 4, 0, WithRegistry(reg))
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, ErrDuplicateName)
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_DefaultsFlowToRegions(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	reg := NewRegistry(RegistryConfig{Metrics: metrics})
	r := MustAlloc[uint32]("r", 1, 0, WithRegistry(reg))

	require.NoError(t, r.With(func(*Vec[uint32]) error { return nil }))
	assert.Equal(t, int64(1), metrics.AcquireCount.Load())
	assert.Equal(t, int64(1), metrics.ReleaseCount.Load())
}
