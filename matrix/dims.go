// SPDX-License-Identifier: MIT

package matrix

// Dim is a compile-time dimension. Implementations are zero-size types with
// a value receiver; the zero value's N reports the extent:
//
//	type D784 struct{}
//
//	func (D784) N() int { return 784 }
//
// A Dim reporting N() <= 0 makes every constructor panic with
// ErrInvalidDimensions.
type Dim interface {
	N() int
}

// Predeclared dimensions.
type (
	D1   struct{}
	D2   struct{}
	D3   struct{}
	D4   struct{}
	D5   struct{}
	D6   struct{}
	D7   struct{}
	D8   struct{}
	D9   struct{}
	D10  struct{}
	D11  struct{}
	D12  struct{}
	D13  struct{}
	D14  struct{}
	D15  struct{}
	D16  struct{}
	D32  struct{}
	D64  struct{}
	D128 struct{}
)

func (D1) N() int   { return 1 }
func (D2) N() int   { return 2 }
func (D3) N() int   { return 3 }
func (D4) N() int   { return 4 }
func (D5) N() int   { return 5 }
func (D6) N() int   { return 6 }
func (D7) N() int   { return 7 }
func (D8) N() int   { return 8 }
func (D9) N() int   { return 9 }
func (D10) N() int  { return 10 }
func (D11) N() int  { return 11 }
func (D12) N() int  { return 12 }
func (D13) N() int  { return 13 }
func (D14) N() int  { return 14 }
func (D15) N() int  { return 15 }
func (D16) N() int  { return 16 }
func (D32) N() int  { return 32 }
func (D64) N() int  { return 64 }
func (D128) N() int { return 128 }

// Extent returns the size reported by the dimension D.
func Extent[D Dim]() int {
	var d D

	return d.N()
}
