// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/matrix"
)

// AlgebraSuite checks algebraic laws over seeded random integer matrices.
// Integers keep every law exact (no rounding), so Equal is used throughout.
type AlgebraSuite struct {
	suite.Suite
	rng *rand.Rand
}

const propertyTrials = 50

func (s *AlgebraSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(20240601))
}

// TestAddCommutative verifies A + B == B + A.
func (s *AlgebraSuite) TestAddCommutative() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D3, matrix.D4](s.rng)
		b := randInts[matrix.D3, matrix.D4](s.rng)
		require.True(s.T(), matrix.Add(a, b).Equal(matrix.Add(b, a)))
	}
}

// TestAddAssociative verifies (A + B) + C == A + (B + C).
func (s *AlgebraSuite) TestAddAssociative() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D4, matrix.D2](s.rng)
		b := randInts[matrix.D4, matrix.D2](s.rng)
		c := randInts[matrix.D4, matrix.D2](s.rng)
		require.True(s.T(), matrix.Add(matrix.Add(a, b), c).Equal(matrix.Add(a, matrix.Add(b, c))))
	}
}

// TestAdditiveIdentity verifies A + 0 == A and A - A == 0.
func (s *AlgebraSuite) TestAdditiveIdentity() {
	zero := matrix.Zeros[matrix.D5, matrix.D5, int]()
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D5, matrix.D5](s.rng)
		require.True(s.T(), matrix.Add(a, zero).Equal(a))
		require.True(s.T(), matrix.Sub(a, a).Equal(zero))
	}
}

// TestMulAssociative verifies (A×B)×C == A×(B×C) across three different shapes.
func (s *AlgebraSuite) TestMulAssociative() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D2, matrix.D3](s.rng)
		b := randInts[matrix.D3, matrix.D4](s.rng)
		c := randInts[matrix.D4, matrix.D5](s.rng)
		left := matrix.Mul(matrix.Mul(a, b), c)
		right := matrix.Mul(a, matrix.Mul(b, c))
		require.True(s.T(), left.Equal(right))
	}
}

// TestMulTransposeReverses verifies (A×B)ᵀ == Bᵀ×Aᵀ.
func (s *AlgebraSuite) TestMulTransposeReverses() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D3, matrix.D2](s.rng)
		b := randInts[matrix.D2, matrix.D6](s.rng)
		require.True(s.T(), matrix.Mul(a, b).T().Equal(matrix.Mul(b.T(), a.T())))
	}
}

// TestTransposeInvolution verifies T(T(A)) == A.
func (s *AlgebraSuite) TestTransposeInvolution() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D3, d20](s.rng)
		require.True(s.T(), a.T().T().Equal(a))
	}
}

// TestEqualitySymmetric verifies A == B ⇔ B == A, including the equal case.
func (s *AlgebraSuite) TestEqualitySymmetric() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D2, matrix.D2](s.rng)
		b := randInts[matrix.D2, matrix.D2](s.rng)
		require.Equal(s.T(), a.Equal(b), b.Equal(a))
		c := a.Clone()
		require.True(s.T(), a.Equal(c) && c.Equal(a))
	}
}

// TestScaleDistributes verifies k(A + B) == kA + kB.
func (s *AlgebraSuite) TestScaleDistributes() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D3, matrix.D3](s.rng)
		b := randInts[matrix.D3, matrix.D3](s.rng)
		k := s.rng.Intn(7) - 3
		require.True(s.T(), matrix.Scale(matrix.Add(a, b), k).Equal(matrix.Add(matrix.Scale(a, k), matrix.Scale(b, k))))
	}
}

// TestDetTriangular verifies that det of an upper-triangular A equals the
// product of its diagonal: every scaler is 0, so integer division is exact.
func (s *AlgebraSuite) TestDetTriangular() {
	for trial := 0; trial < propertyTrials; trial++ {
		a := randInts[matrix.D4, matrix.D4](s.rng).MapIndexed(func(i, j int, v int) int {
			switch {
			case i > j:
				return 0
			case i == j && v == 0:
				return 1
			default:
				return v
			}
		})
		require.Equal(s.T(), diagProduct(a), matrix.Det(a))
	}
}

func diagProduct(m *matrix.Matrix[matrix.D4, matrix.D4, int]) int {
	p := 1
	for i := 0; i < m.Rows(); i++ {
		p *= m.At(i, i)
	}
	return p
}

func TestAlgebraSuite(t *testing.T) {
	suite.Run(t, new(AlgebraSuite))
}
