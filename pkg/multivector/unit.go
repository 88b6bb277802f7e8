package multivector

import (
	"math"
	"math/bits"

	"github.com/funvibe/funalg/pkg/algebra"
)

// UnitVolume returns the unit pseudoscalar of the receiver's space:
// coefficient 1 on the blade spanning every basis vector. This is the
// value the universal pseudoscalar materializes into.
func (m *MV) UnitVolume() algebra.Element {
	out := New(m.tag)
	out.coef[len(out.coef)-1] = 1
	return out
}

// Norm returns the Euclidean norm of the coefficient vector. It is
// metric-independent, so it stays useful in degenerate signatures
// where the quadratic form vanishes.
func (m *MV) Norm() float64 {
	sum := 0.0
	for _, c := range m.coef {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// ScalarPart returns the grade-0 coefficient.
func (m *MV) ScalarPart() float64 { return m.coef[0] }

// Reverse flips each grade-k component by (-1)^(k(k-1)/2).
func (m *MV) Reverse() algebra.Element {
	return m.gradeSigned(func(k int) bool { return k*(k-1)/2%2 == 1 })
}

// Involute flips each grade-k component by (-1)^k.
func (m *MV) Involute() algebra.Element {
	return m.gradeSigned(func(k int) bool { return k%2 == 1 })
}

// Conjugate flips each grade-k component by (-1)^(k(k+1)/2), the
// composition of Reverse and Involute.
func (m *MV) Conjugate() algebra.Element {
	return m.gradeSigned(func(k int) bool { return k*(k+1)/2%2 == 1 })
}

func (m *MV) gradeSigned(flip func(k int) bool) *MV {
	out := New(m.tag)
	for blade, c := range m.coef {
		if flip(bits.OnesCount(uint(blade))) {
			out.coef[blade] = -c
		} else {
			out.coef[blade] = c
		}
	}
	return out
}

// Even reports whether no odd-grade component is nonzero. The zero
// multivector is both even and odd.
func (m *MV) Even() bool { return m.parityClear(1) }

// Odd reports whether no even-grade component is nonzero.
func (m *MV) Odd() bool { return m.parityClear(0) }

func (m *MV) parityClear(parity int) bool {
	for blade, c := range m.coef {
		if c != 0 && bits.OnesCount(uint(blade))%2 == parity {
			return false
		}
	}
	return true
}
