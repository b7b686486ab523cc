package layout

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    uint32
	Flags [4]uint8
	Pos   struct{ X, Y float32 }
}

type withString struct {
	ID   uint32
	Name string
}

type nested struct {
	Inner [2]struct{ P *int }
}

func TestCheck_Plain(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[[16]byte](),
		reflect.TypeFor[sample](),
	}
	for _, typ := range types {
		assert.NoError(t, Check(typ), typ.String())
	}
}

func TestCheck_Rejects(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		path string
		kind reflect.Kind
	}{
		{reflect.TypeFor[*int](), "", reflect.Pointer},
		{reflect.TypeFor[string](), "", reflect.String},
		{reflect.TypeFor[[]byte](), "", reflect.Slice},
		{reflect.TypeFor[map[int]int](), "", reflect.Map},
		{reflect.TypeFor[any](), "", reflect.Interface},
		{reflect.TypeFor[withString](), "Name", reflect.String},
		{reflect.TypeFor[nested](), "Inner[].P", reflect.Pointer},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			err := Check(tt.typ)
			var te *TypeError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.path, te.Path)
			assert.Equal(t, tt.kind, te.Kind)
		})
	}
}

func TestCheck_ZeroSize(t *testing.T) {
	assert.ErrorIs(t, Check(reflect.TypeFor[struct{}]()), ErrZeroSize)
	assert.ErrorIs(t, Check(reflect.TypeFor[[0]uint64]()), ErrZeroSize)
}

func TestOf(t *testing.T) {
	info, err := Of[uint64]()
	require.NoError(t, err)
	assert.Equal(t, uintptr(8), info.Size)

	info, err = Of[sample]()
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[sample]().Size(), info.Size)

	_, err = Of[withString]()
	assert.Error(t, err)
}
