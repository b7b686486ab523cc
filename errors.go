package staticvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/staticvec/internal/resource"
)

// Recoverable errors.
var (
	// ErrLocked is matched by every error Acquire returns when the region
	// already has a live handle.
	ErrLocked = errors.New("staticvec: region is locked")

	// ErrInvalidName is returned when a region is declared with an empty name.
	ErrInvalidName = errors.New("staticvec: invalid region name")
	// ErrDuplicateName is returned when a registry already has a region with the name.
	ErrDuplicateName = errors.New("staticvec: duplicate region name")
	// ErrInvalidCapacity is returned for regions without any element.
	ErrInvalidCapacity = errors.New("staticvec: capacity must be positive")
	// ErrElementType is returned when the element type is not plain data.
	ErrElementType = errors.New("staticvec: element type is not trivially copyable")
	// ErrMemoryLimitExceeded is returned when a declaration would exceed the
	// registry's memory budget.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// Fatal violation kinds. They only ever appear inside a *BoundsError panic.
var (
	// ErrViolation is matched by every *BoundsError.
	ErrViolation = errors.New("staticvec: bounds violation")
	// ErrFull reports an insertion into a vector at capacity.
	ErrFull = errors.New("vector is full")
	// ErrOutOfRange reports an index outside the valid range of the operation.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInsufficientSpace reports a bulk append larger than the remaining capacity.
	ErrInsufficientSpace = errors.New("insufficient space")
	// ErrPartialElement reports a raw byte append that is not a whole number of elements.
	ErrPartialElement = errors.New("partial element")
	// ErrReleased reports use of a handle after Release.
	ErrReleased = errors.New("handle already released")
)

// LockedError is returned by Acquire when the region is held.
// It matches ErrLocked via errors.Is.
type LockedError struct {
	Region string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("staticvec: region %q is locked", e.Region)
}

func (e *LockedError) Unwrap() error { return ErrLocked }

// BoundsError is the panic value of every capacity or bounds violation.
//
// It matches its Kind and ErrViolation via errors.Is, never ErrLocked.
type BoundsError struct {
	Region string
	Op     string
	Kind   error
	Index  int // offending index, -1 when the operation takes none
	Want   int // elements requested by bulk operations, 0 otherwise
	Len    int
	Cap    int
}

func (e *BoundsError) Error() string {
	msg := fmt.Sprintf("staticvec: %s on region %q: %v (len %d, cap %d", e.Op, e.Region, e.Kind, e.Len, e.Cap)
	if e.Index >= 0 {
		msg += fmt.Sprintf(", index %d", e.Index)
	}
	if e.Want > 0 {
		msg += fmt.Sprintf(", want %d", e.Want)
	}
	return msg + ")"
}

func (e *BoundsError) Unwrap() []error { return []error{e.Kind, ErrViolation} }

// AsViolation reports whether a value obtained from recover is a bounds violation.
//
//	defer func() {
//	    if be, ok := staticvec.AsViolation(recover()); ok {
//	        log.Printf("defect: %v", be)
//	        panic(be)
//	    }
//	}()
func AsViolation(recovered any) (*BoundsError, bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var be *BoundsError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
