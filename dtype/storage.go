package dtype

import (
	"fmt"
	"math"
)

// StorageBytes returns the number of bytes needed to hold n densely packed
// elements of d, rounding a trailing partial byte up. Two INT4 values share
// a byte, so StorageBytes(3) for INT4 is 2. Panics on an unknown tag.
func (d DataType) StorageBytes(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	bits := d.Bits()
	if n > (math.MaxInt-7)/bits {
		return 0, fmt.Errorf("%w: %d x %s", ErrOverflow, n, d)
	}
	return (n*bits + 7) / 8, nil
}
