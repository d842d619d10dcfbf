// Package hdl is the in-memory intermediate representation for hardware
// designs: bit-vector types, an expression algebra over them, a statement IR,
// black-box instance and memory metadata, and the Fragment composition
// algebra that bundles all of it per clock domain.  The package only
// constructs and composes the representation; interpreting it (netlist
// emission, HDL text generation, simulation) belongs to downstream backends.
package hdl

import (
	"errors"
	"fmt"

	"fhdl/report"
)

// BitVector describes the storage type of a hardware value: a bit width and a
// signedness.  The zero value is not valid; widths are always at least 1.
type BitVector struct {
	// The number of bits.
	Width int

	// Whether the value is interpreted as two's complement.
	Signed bool
}

// Unsigned returns an unsigned bit vector of the given width.
func Unsigned(width int) BitVector {
	return BitVector{Width: width}
}

// Signed returns a signed bit vector of the given width.
func Signed(width int) BitVector {
	return BitVector{Width: width, Signed: true}
}

// Repr returns the representative string for the type: eg. `8'd` for an
// unsigned 8-bit vector and `8'sd` for a signed one.
func (bv BitVector) Repr() string {
	if bv.Signed {
		return fmt.Sprintf("%d'sd", bv.Width)
	}

	return fmt.Sprintf("%d'd", bv.Width)
}

func (bv BitVector) String() string {
	return bv.Repr()
}

// -----------------------------------------------------------------------------

// BitsFor returns the minimum width able to represent the given value: 1 for
// zero, the smallest w with n <= 2^w - 1 for positive n, and one extra sign
// bit on top of BitsFor(-n) for negative n.  If the argument is already a
// typed constant, its declared width is returned unchanged.  This function
// governs the width of every raw integer coerced into a Constant without an
// explicit type.
func BitsFor(x interface{}) int {
	switch n := x.(type) {
	case *Constant:
		return n.Type.Width
	case int:
		if n < 0 {
			return BitsFor(-n) + 1
		} else if n == 0 {
			return 1
		}

		w := 0
		for v := n; v > 0; v >>= 1 {
			w++
		}
		return w
	default:
		report.RaiseUsage("cannot infer a bit width for %T", x)
		return 0
	}
}

// ErrNotPowerOfTwo is returned by Log2Int for arguments that are not an exact
// power of two.
var ErrNotPowerOfTwo = errors.New("not a power of 2")

// Log2Int returns the unique r such that 2^r == n, or ErrNotPowerOfTwo if no
// such r exists.  It is used wherever an address or selector width must be
// derived from a memory depth or choice count.
func Log2Int(n int) (int, error) {
	l, r := 1, 0
	for l < n {
		l *= 2
		r++
	}

	if l != n {
		return 0, ErrNotPowerOfTwo
	}

	return r, nil
}
