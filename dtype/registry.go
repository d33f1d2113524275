package dtype

import "fmt"

// Bits returns the physical width of one element of d in bits.
// Sub-byte types report their real width (INT4 is 4, not 8).
// BOOL occupies a full byte. Panics on an unknown tag.
func (d DataType) Bits() int {
	switch d {
	case INT4, UINT4, FP4, HF4:
		return 4
	case BOOL, INT8, UINT8, FP8, HF8:
		return 8
	case INT16, UINT16, FP16, BF16:
		return 16
	case INT32, UINT32, FP32:
		return 32
	case INT64, UINT64:
		return 64
	}
	panic(&UnknownTypeError{Code: uint32(d)})
}

// String returns the canonical name of d, e.g. "INT4" or "BF16".
// Unknown values render as DataType(0x...) so that formatting never panics;
// use Name for a fail-fast lookup.
func (d DataType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DataType(0x%08X)", uint32(d))
	}
	return d.Name()
}

// Name returns the canonical name of d. Panics on an unknown tag.
func (d DataType) Name() string {
	switch d {
	case BOOL:
		return "BOOL"
	case INT4:
		return "INT4"
	case INT8:
		return "INT8"
	case INT16:
		return "INT16"
	case INT32:
		return "INT32"
	case INT64:
		return "INT64"
	case UINT4:
		return "UINT4"
	case UINT8:
		return "UINT8"
	case UINT16:
		return "UINT16"
	case UINT32:
		return "UINT32"
	case UINT64:
		return "UINT64"
	case FP4:
		return "FP4"
	case FP8:
		return "FP8"
	case FP16:
		return "FP16"
	case FP32:
		return "FP32"
	case BF16:
		return "BF16"
	case HF4:
		return "HF4"
	case HF8:
		return "HF8"
	}
	panic(&UnknownTypeError{Code: uint32(d)})
}

// Description returns a short human description of d.
func (d DataType) Description() string {
	switch d {
	case BOOL:
		return "Boolean (true/false)"
	case INT4:
		return "4-bit signed integer"
	case INT8:
		return "8-bit signed integer"
	case INT16:
		return "16-bit signed integer"
	case INT32:
		return "32-bit signed integer"
	case INT64:
		return "64-bit signed integer"
	case UINT4:
		return "4-bit unsigned integer"
	case UINT8:
		return "8-bit unsigned integer"
	case UINT16:
		return "16-bit unsigned integer"
	case UINT32:
		return "32-bit unsigned integer"
	case UINT64:
		return "64-bit unsigned integer"
	case FP4:
		return "4-bit floating point"
	case FP8:
		return "8-bit floating point"
	case FP16:
		return "16-bit floating point (IEEE 754 half precision)"
	case FP32:
		return "32-bit floating point (IEEE 754 single precision)"
	case BF16:
		return "16-bit brain floating point"
	case HF4:
		return "4-bit hybrid float"
	case HF8:
		return "8-bit hybrid float"
	}
	panic(&UnknownTypeError{Code: uint32(d)})
}

// Parse returns the data type whose canonical name is s.
// Matching is exact and case-sensitive.
func Parse(s string) (DataType, error) {
	for _, d := range all {
		if d.Name() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}

// IsFloat reports whether d is a floating point type. Hybrid floats count.
func (d DataType) IsFloat() bool {
	f := d.Family()
	return f == FamilyFloat || f == FamilyHybridFloat
}

// IsSignedInt reports whether d is a signed integer type.
func (d DataType) IsSignedInt() bool {
	return d.Family() == FamilySignedInt
}

// IsUnsignedInt reports whether d is an unsigned integer type.
func (d DataType) IsUnsignedInt() bool {
	return d.Family() == FamilyUnsignedInt
}

// IsInt reports whether d is any integer type.
func (d DataType) IsInt() bool {
	return d.IsSignedInt() || d.IsUnsignedInt()
}

// IsSubByte reports whether an element of d is narrower than a byte.
func (d DataType) IsSubByte() bool {
	return d.Bits() < 8
}
