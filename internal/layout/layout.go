package layout

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrZeroSize is returned for element types that occupy no memory.
var ErrZeroSize = errors.New("layout: zero-sized element type")

// TypeError reports a field or element that is not plain data.
type TypeError struct {
	Type reflect.Type // the checked element type
	Path string       // location of the offending part, "" for the type itself
	Kind reflect.Kind
}

func (e *TypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("layout: %s is not plain data (kind %s)", e.Type, e.Kind)
	}
	return fmt.Sprintf("layout: %s is not plain data: %s has kind %s", e.Type, e.Path, e.Kind)
}

// Info describes the memory layout of an element type.
type Info struct {
	Size  uintptr
	Align uintptr
}

// Of validates T and returns its layout.
func Of[T any]() (Info, error) {
	t := reflect.TypeFor[T]()
	if err := Check(t); err != nil {
		return Info{}, err
	}
	return Info{Size: t.Size(), Align: uintptr(t.Align())}, nil
}

// Check returns nil if t is plain data with a non-zero size.
func Check(t reflect.Type) error {
	if t == nil {
		return &TypeError{Kind: reflect.Invalid}
	}
	if err := check(t, t, ""); err != nil {
		return err
	}
	if t.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrZeroSize, t)
	}
	return nil
}

func check(root, t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return check(root, t.Elem(), path+"[]")
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			p := f.Name
			if path != "" {
				p = path + "." + f.Name
			}
			if err := check(root, f.Type, p); err != nil {
				return err
			}
		}
		return nil
	default:
		return &TypeError{Type: root, Path: path, Kind: t.Kind()}
	}
}
