// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"github.com/chewxy/math32"
)

// Rem returns the remainder of a / b with the sign of a.
//   - integers: Go's truncated %, panicking on b == 0 (runtime divide error);
//   - float64: math.Mod;
//   - float32: math32.Mod.
//
// Complexity: O(1).
func Rem[T Numeric](a, b T) T {
	switch KindOf[T]() {
	case KindFloat32:
		return T(math32.Mod(float32(a), float32(b)))
	case KindFloat64:
		return T(math.Mod(float64(a), float64(b)))
	case KindSigned:
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// RemAssign stores Rem(*a, b) into *a.
func RemAssign[T Numeric](a *T, b T) { *a = Rem(*a, b) }

// Exp returns e**x, using the float32 implementation for 32-bit kinds so the
// computation never widens.
func Exp[T Float](x T) T {
	if KindOf[T]() == KindFloat32 {
		return T(math32.Exp(float32(x)))
	}

	return T(math.Exp(float64(x)))
}

// IsFinite reports whether x is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[T Numeric](x T) bool {
	switch KindOf[T]() {
	case KindFloat32:
		f := float32(x)
		return !math32.IsNaN(f) && !math32.IsInf(f, 0)
	case KindFloat64:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Abs returns |x|. For unsigned kinds it is the identity.
func Abs[T Numeric](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
