// Package vector is a deliberately small algebra family: tagged
// grade-1 vectors with one float64 component per basis vector. It
// exists alongside the multivector family to exercise the interop
// protocol between independently written families; the only thing
// the two share is the algebra contract.
//
// Vectors handle addition and subtraction themselves; every richer
// operation lifts into the multivector family.
package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/funvibe/funalg/pkg/algebra"
	"github.com/funvibe/funalg/pkg/multivector"
	"github.com/funvibe/funalg/pkg/space"
)

const familyName = "vector"

// Vec is a tagged grade-1 vector. Values are immutable.
type Vec struct {
	tag   space.Tag
	comps []float64
}

// New builds a vector in the given space. Missing trailing components
// are zero; extra components are an error.
func New(tag space.Tag, comps ...float64) (*Vec, error) {
	if len(comps) > tag.Dim() {
		return nil, fmt.Errorf("vector: %d components for %s", len(comps), tag)
	}
	v := &Vec{tag: tag, comps: make([]float64, tag.Dim())}
	copy(v.comps, comps)
	return v, nil
}

// Space returns the value's space tag.
func (v *Vec) Space() space.Tag { return v.tag }

// Component returns the i-th (0-based) component, or 0 out of range.
func (v *Vec) Component(i int) float64 {
	if i < 0 || i >= len(v.comps) {
		return 0
	}
	return v.comps[i]
}

// Equal reports componentwise equality in the same space.
func (v *Vec) Equal(o *Vec) bool {
	if v.tag != o.tag {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != o.comps[i] {
			return false
		}
	}
	return true
}

// Convert re-expresses the vector in the target space. Each component
// maps to the target slot of the same metric sign, block order
// preserved, so a negative-metric component never lands on a positive
// slot. Shrinking is allowed only when the dropped components are
// zero.
func (v *Vec) Convert(target space.Tag) (algebra.Element, error) {
	if target == v.tag {
		out, _ := New(v.tag, v.comps...)
		return out, nil
	}
	if target.Dual != v.tag.Dual {
		return nil, algebra.NewConvertError(familyName, v.tag, target, "primal/dual mismatch")
	}
	if !target.Contains(v.tag) && !v.tag.Contains(target) {
		return nil, algebra.NewConvertError(familyName, v.tag, target, "signatures do not nest")
	}
	im := indexMap(v.tag, target)
	out, _ := New(target)
	for i, c := range v.comps {
		if im[i] < 0 {
			if c != 0 {
				return nil, algebra.NewConvertError(familyName, v.tag, target, "nonzero component outside target space")
			}
			continue
		}
		out.comps[im[i]] = c
	}
	return out, nil
}

// indexMap maps each basis index of from to its slot in to, or -1 when
// to has no slot of the same metric sign left. Components never move
// across sign blocks, matching the blade mapping of the multivector
// family so both conversion routes agree.
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

// Binary adds and subtracts vectors directly; everything else is left
// to the lift into the multivector family.
func (v *Vec) Binary(op algebra.Op, rhs algebra.Element) (algebra.Element, error) {
	o, ok := rhs.(*Vec)
	if !ok {
		return nil, algebra.NewOpError(op, v, rhs)
	}
	switch op {
	case algebra.OpAdd, algebra.OpSub:
		factor := 1.0
		if op == algebra.OpSub {
			factor = -1
		}
		out, _ := New(v.tag)
		for i := range out.comps {
			out.comps[i] = v.comps[i] + factor*o.comps[i]
		}
		return out, nil
	default:
		return nil, algebra.NewOpError(op, v, rhs)
	}
}

// Lift re-expresses the vector as a multivector with the same tag and
// grade-1 coefficients. Basis vector i lands on blade bitmap 1<<i.
func (v *Vec) Lift() algebra.Element {
	coef := make([]float64, v.tag.Blades())
	for i, c := range v.comps {
		coef[1<<i] = c
	}
	m, _ := multivector.FromCoefficients(v.tag, coef)
	return m
}

// UnitVolume materializes the pseudoscalar in the multivector family:
// a grade-1 type has no unit volume of its own once the space has more
// than one dimension.
func (v *Vec) UnitVolume() algebra.Element {
	return multivector.New(v.tag).UnitVolume()
}

// Norm returns the Euclidean length of the component vector.
func (v *Vec) Norm() float64 {
	sum := 0.0
	for _, c := range v.comps {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// ScalarPart of a pure vector is always 0.
func (v *Vec) ScalarPart() float64 { return 0 }

// Even reports false for any nonzero vector.
func (v *Vec) Even() bool { return v.isZero() }

// Odd reports true: a vector has only grade-1 components.
func (v *Vec) Odd() bool { return true }

func (v *Vec) isZero() bool {
	for _, c := range v.comps {
		if c != 0 {
			return false
		}
	}
	return true
}

func (v *Vec) String() string {
	parts := make([]string, len(v.comps))
	for i, c := range v.comps {
		parts[i] = fmt.Sprintf("%g", c)
	}
	return "[" + strings.Join(parts, ", ") + "]@" + v.tag.String()
}
