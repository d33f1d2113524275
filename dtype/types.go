// Package dtype defines the closed set of element data types used by the
// tensor runtime, together with their bit widths, canonical names and
// numeric classification.
//
// A DataType is a bit-packed uint32: the family lives in the high 16 bits
// and an ordinal within the family in the low 16 bits. The packed value is
// the stable code used by persisted formats.
package dtype

import "fmt"

// DataType identifies one physical numeric representation format
type DataType uint32

// Family groups data types by numeric category
type Family uint32

// Type families (high 16 bits)
const (
	FamilyBoolean     Family = 0x0001_0000 // 0x0001_XXXX
	FamilySignedInt   Family = 0x0002_0000 // 0x0002_XXXX
	FamilyUnsignedInt Family = 0x0003_0000 // 0x0003_XXXX
	FamilyFloat       Family = 0x0004_0000 // 0x0004_XXXX
	FamilyHybridFloat Family = 0x0005_0000 // 0x0005_XXXX
)

const familyMask = 0xFFFF_0000

// DataType constants using bit-packed encoding.
// IMPORTANT: these values are persisted. Never renumber an existing tag;
// new tags take the next free ordinal in their family.
const (
	// Boolean, stored one value per byte (0x0001_XXXX)
	BOOL DataType = DataType(FamilyBoolean) | 0x0001

	// Signed integers (0x0002_XXXX)
	INT4  DataType = DataType(FamilySignedInt) | 0x0001
	INT8  DataType = DataType(FamilySignedInt) | 0x0002
	INT16 DataType = DataType(FamilySignedInt) | 0x0003
	INT32 DataType = DataType(FamilySignedInt) | 0x0004
	INT64 DataType = DataType(FamilySignedInt) | 0x0005

	// Unsigned integers (0x0003_XXXX)
	UINT4  DataType = DataType(FamilyUnsignedInt) | 0x0001
	UINT8  DataType = DataType(FamilyUnsignedInt) | 0x0002
	UINT16 DataType = DataType(FamilyUnsignedInt) | 0x0003
	UINT32 DataType = DataType(FamilyUnsignedInt) | 0x0004
	UINT64 DataType = DataType(FamilyUnsignedInt) | 0x0005

	// Floating point (0x0004_XXXX)
	FP4  DataType = DataType(FamilyFloat) | 0x0001
	FP8  DataType = DataType(FamilyFloat) | 0x0002
	FP16 DataType = DataType(FamilyFloat) | 0x0003 // IEEE 754 half precision
	FP32 DataType = DataType(FamilyFloat) | 0x0004 // IEEE 754 single precision
	BF16 DataType = DataType(FamilyFloat) | 0x0005

	// Hybrid float (0x0005_XXXX)
	HF4 DataType = DataType(FamilyHybridFloat) | 0x0001
	HF8 DataType = DataType(FamilyHybridFloat) | 0x0002
)

// all is the registry: every tag in declaration order. Valid, Values and
// Parse read it, and registry_test.go fails if a declared constant is
// missing here or from any lookup.
var all = [...]DataType{
	BOOL,
	INT4, INT8, INT16, INT32, INT64,
	UINT4, UINT8, UINT16, UINT32, UINT64,
	FP4, FP8, FP16, FP32, BF16,
	HF4, HF8,
}

// Values returns every registered data type in declaration order.
// The returned slice is a copy.
func Values() []DataType {
	out := make([]DataType, len(all))
	copy(out, all[:])
	return out
}

// Valid reports whether d is one of the registered tags.
func (d DataType) Valid() bool {
	for _, t := range all {
		if t == d {
			return true
		}
	}
	return false
}

// Code returns the stable integer code of d.
func (d DataType) Code() uint32 {
	return uint32(d)
}

// FromCode returns the data type with the given stable code.
func FromCode(code uint32) (DataType, error) {
	d := DataType(code)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: 0x%08X", ErrUnknownCode, code)
	}
	return d, nil
}

// Family returns the numeric family of d. Panics on an unknown tag.
func (d DataType) Family() Family {
	mustValid(d)
	return Family(uint32(d) & familyMask)
}

func (f Family) String() string {
	switch f {
	case FamilyBoolean:
		return "boolean"
	case FamilySignedInt:
		return "signed_int"
	case FamilyUnsignedInt:
		return "unsigned_int"
	case FamilyFloat:
		return "float"
	case FamilyHybridFloat:
		return "hybrid_float"
	default:
		return "unknown"
	}
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, error) {
	for _, f := range [...]Family{FamilyBoolean, FamilySignedInt, FamilyUnsignedInt, FamilyFloat, FamilyHybridFloat} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}
