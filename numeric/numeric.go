// SPDX-License-Identifier: MIT

package numeric

// Signed lists the signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned lists the unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer lists every integer type.
type Integer interface {
	Signed | Unsigned
}

// Float lists the floating-point types.
type Float interface {
	~float32 | ~float64
}

// Numeric is the element capability of the matrix engine.
// Any type in this set supports + += - -= * *= / /= natively, a zero value,
// == and copy by assignment; the remainder is provided by Rem.
type Numeric interface {
	Integer | Float
}

// Kind classifies the underlying representation of a Numeric type.
type Kind uint8

// Kinds reported by KindOf.
const (
	KindUnsigned Kind = iota // unsigned integer (wraps below zero)
	KindSigned               // signed integer
	KindFloat32              // 32-bit IEEE-754
	KindFloat64              // 64-bit IEEE-754
)

// String returns a short lower-case name for k.
func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether k is one of the floating-point kinds.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// KindOf classifies T by probing its arithmetic, so that defined types such
// as `type Weight float64` are classified by their underlying type.
// Complexity: O(1).
func KindOf[T Numeric]() Kind {
	// Integer division truncates 1/3 to 0; floats keep a fraction.
	var third T = 1
	third /= 3
	if third != 0 {
		// 1/3 is not exactly representable in float32, so only a float32
		// survives the round trip unchanged.
		if float64(float32(third)) == float64(third) {
			return KindFloat32
		}

		return KindFloat64
	}
	// Decrementing zero goes negative only for signed integers.
	var below T
	below--
	if below < 0 {
		return KindSigned
	}

	return KindUnsigned
}

// Zero returns the additive identity of T.
func Zero[T Numeric]() T {
	var z T

	return z
}
