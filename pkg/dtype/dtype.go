// Package dtype exposes the data type registry with its tags flattened into
// package scope and the lookups as plain functions, for binding layers that
// want to call BitWidth(INT4) rather than dtype.INT4.Bits().
package dtype

import core "github.com/miretskiy/dtypes/dtype"

type (
	// DataType is dtype.DataType.
	DataType = core.DataType
	// Family is dtype.Family.
	Family = core.Family
	// UnknownTypeError is dtype.UnknownTypeError.
	UnknownTypeError = core.UnknownTypeError
)

const (
	BOOL = core.BOOL

	INT4  = core.INT4
	INT8  = core.INT8
	INT16 = core.INT16
	INT32 = core.INT32
	INT64 = core.INT64

	UINT4  = core.UINT4
	UINT8  = core.UINT8
	UINT16 = core.UINT16
	UINT32 = core.UINT32
	UINT64 = core.UINT64

	FP4  = core.FP4
	FP8  = core.FP8
	FP16 = core.FP16
	FP32 = core.FP32
	BF16 = core.BF16

	HF4 = core.HF4
	HF8 = core.HF8
)

var (
	// ErrUnknownName is returned by Parse for a name that matches no data type.
	ErrUnknownName = core.ErrUnknownName
	// ErrUnknownCode is wrapped by UnknownTypeError and returned for unregistered codes.
	ErrUnknownCode = core.ErrUnknownCode
)

// BitWidth returns the size of dtype in bits. Sub-byte types return their
// real width (4 for INT4).
func BitWidth(dtype DataType) int { return dtype.Bits() }

// ToString returns the canonical name of dtype. Panics on an unknown tag.
func ToString(dtype DataType) string { return dtype.Name() }

// IsFloat reports whether dtype is FP4, FP8, FP16, FP32, BF16, HF4 or HF8.
func IsFloat(dtype DataType) bool { return dtype.IsFloat() }

// IsSignedInt reports whether dtype is INT4, INT8, INT16, INT32 or INT64.
func IsSignedInt(dtype DataType) bool { return dtype.IsSignedInt() }

// IsUnsignedInt reports whether dtype is UINT4, UINT8, UINT16, UINT32 or UINT64.
func IsUnsignedInt(dtype DataType) bool { return dtype.IsUnsignedInt() }

// IsInt reports whether dtype is any integer type, signed or unsigned.
func IsInt(dtype DataType) bool { return IsSignedInt(dtype) || IsUnsignedInt(dtype) }

// Values returns every registered data type in declaration order.
func Values() []DataType { return core.Values() }

// Parse returns the data type named name. Matching is case-sensitive.
func Parse(name string) (DataType, error) { return core.Parse(name) }
