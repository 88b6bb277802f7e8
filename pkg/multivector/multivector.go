// Package multivector implements a dense Clifford/Grassmann algebra
// family over the funalg interop protocol. A value holds one float64
// coefficient per basis blade of its space; blades are indexed by
// bitmap, bit i standing for basis vector i of the space tag.
//
// The family implements every capability the algebra core routes to:
// homogeneous binary operations, form application (left contraction),
// the unit pseudoscalar, the standard involutions and the grade-parity
// predicates. Values are immutable; every operation returns a new
// value.
package multivector

import (
	"fmt"
	"math/bits"

	"github.com/funvibe/funalg/pkg/algebra"
	"github.com/funvibe/funalg/pkg/space"
)

const familyName = "multivector"

// MV is a dense multivector. The zero value is not usable; construct
// with New, FromScalar, Basis or FromCoefficients.
type MV struct {
	tag  space.Tag
	coef []float64
}

// New returns the zero multivector of the given space.
func New(tag space.Tag) *MV {
	return &MV{tag: tag, coef: make([]float64, tag.Blades())}
}

// FromScalar returns the multivector with scalar part s and no other
// components.
func FromScalar(tag space.Tag, s float64) *MV {
	m := New(tag)
	m.coef[0] = s
	return m
}

// Basis returns the unit blade spanned by the given 1-based basis
// vector indices. Indices may appear in any order; odd permutations
// flip the orientation. Repeated or out-of-range indices are an error.
func Basis(tag space.Tag, indices ...int) (*MV, error) {
	blade := 0
	sign := 1.0
	seen := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > tag.Dim() {
			return nil, fmt.Errorf("multivector: basis index %d out of range for %s", idx, tag)
		}
		bit := 1 << (idx - 1)
		if blade&bit != 0 {
			return nil, fmt.Errorf("multivector: repeated basis index %d", idx)
		}
		// Count inversions against the indices already placed.
		for _, prev := range seen {
			if prev > idx {
				sign = -sign
			}
		}
		seen = append(seen, idx)
		blade |= bit
	}
	m := New(tag)
	m.coef[blade] = sign
	return m, nil
}

// FromCoefficients builds a multivector from a full coefficient slice,
// one entry per blade bitmap. The slice is copied.
func FromCoefficients(tag space.Tag, coef []float64) (*MV, error) {
	if len(coef) != tag.Blades() {
		return nil, fmt.Errorf("multivector: %d coefficients for %s, want %d", len(coef), tag, tag.Blades())
	}
	m := New(tag)
	copy(m.coef, coef)
	return m, nil
}

// Space returns the value's space tag.
func (m *MV) Space() space.Tag { return m.tag }

// Coefficient returns the coefficient of the blade with the given
// bitmap, or 0 when the bitmap is out of range.
func (m *MV) Coefficient(blade int) float64 {
	if blade < 0 || blade >= len(m.coef) {
		return 0
	}
	return m.coef[blade]
}

// Equal reports componentwise equality of two multivectors in the same
// space.
func (m *MV) Equal(o *MV) bool {
	if m.tag != o.tag {
		return false
	}
	for i := range m.coef {
		if m.coef[i] != o.coef[i] {
			return false
		}
	}
	return true
}

func (m *MV) clone() *MV {
	out := New(m.tag)
	copy(out.coef, m.coef)
	return out
}

// Convert re-expresses the value in the target space. Each basis
// vector maps to the target slot of the same metric sign, preserving
// block order, so embeddings never change orientation. Shrinking is
// allowed only when every dropped blade has a zero coefficient;
// anything else is a conversion error.
func (m *MV) Convert(target space.Tag) (algebra.Element, error) {
	if target == m.tag {
		return m.clone(), nil
	}
	if target.Dual != m.tag.Dual {
		return nil, algebra.NewConvertError(familyName, m.tag, target, "primal/dual mismatch")
	}
	im := indexMap(m.tag, target)
	out := New(target)
	for blade, c := range m.coef {
		if c == 0 {
			continue
		}
		tb := 0
		ok := true
		for rest := blade; rest != 0; rest &= rest - 1 {
			i := bits.TrailingZeros(uint(rest))
			if im[i] < 0 {
				ok = false
				break
			}
			tb |= 1 << im[i]
		}
		if !ok {
			return nil, algebra.NewConvertError(familyName, m.tag, target, "nonzero component outside target space")
		}
		out.coef[tb] = c
	}
	return out, nil
}

// indexMap maps each basis index of from to its slot in to, or -1 when
// to has no slot of the same metric sign left. The map is strictly
// increasing where defined, so blade orientation is preserved.
func indexMap(from, to space.Tag) []int {
	dim := from.Dim()
	im := make([]int, dim)
	fromOff := [3]int{0, int(from.P), int(from.P) + int(from.Q)}
	toOff := [3]int{0, int(to.P), int(to.P) + int(to.Q)}
	toCount := [3]int{int(to.P), int(to.Q), int(to.R)}
	for i := 0; i < dim; i++ {
		class := 0
		switch {
		case i < fromOff[1]:
			class = 0
		case i < fromOff[2]:
			class = 1
		default:
			class = 2
		}
		pos := i - fromOff[class]
		if pos < toCount[class] {
			im[i] = toOff[class] + pos
		} else {
			im[i] = -1
		}
	}
	return im
}
