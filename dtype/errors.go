package dtype

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownName is returned when a name does not match any data type.
	ErrUnknownName = errors.New("unknown data type name")
	// ErrUnknownCode is returned when a code does not match any data type.
	ErrUnknownCode = errors.New("unknown data type code")
	// ErrUnknownFamily is returned by ParseFamily.
	ErrUnknownFamily = errors.New("unknown data type family")
	// ErrNegativeCount is returned by StorageBytes for a negative element count.
	ErrNegativeCount = errors.New("negative element count")
	// ErrOverflow is returned by StorageBytes when the byte size does not fit in an int.
	ErrOverflow = errors.New("storage size overflows int")
)

// UnknownTypeError reports a DataType value outside the registered set.
// Reaching it means a caller converted an arbitrary integer to DataType
// or a tag was added without updating every lookup, so the registry
// panics with it instead of returning it.
type UnknownTypeError struct {
	Code uint32
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("dtype: unrecognized data type 0x%08X", e.Code)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownCode
}

func mustValid(d DataType) {
	if !d.Valid() {
		panic(&UnknownTypeError{Code: uint32(d)})
	}
}
