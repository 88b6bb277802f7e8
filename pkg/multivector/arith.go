package multivector

import (
	"math/bits"

	"github.com/funvibe/funalg/pkg/algebra"
	"github.com/funvibe/funalg/pkg/space"
)

// Binary implements the space-homogeneous operations. rhs always
// carries the same tag as the receiver; the resolver guarantees it.
func (m *MV) Binary(op algebra.Op, rhs algebra.Element) (algebra.Element, error) {
	o, ok := rhs.(*MV)
	if !ok {
		return nil, algebra.NewOpError(op, m, rhs)
	}
	switch op {
	case algebra.OpAdd:
		return m.addScaled(o, 1), nil
	case algebra.OpSub:
		return m.addScaled(o, -1), nil
	case algebra.OpMul:
		return m.product(o, keepAll), nil
	case algebra.OpWedge:
		return m.wedge(o), nil
	case algebra.OpDot:
		return m.product(o, keepContraction), nil
	default:
		return nil, algebra.NewOpError(op, m, rhs)
	}
}

// Apply treats the receiver as a form evaluated on arg: the left
// contraction m | arg.
func (m *MV) Apply(arg algebra.Element) (algebra.Element, error) {
	o, ok := arg.(*MV)
	if !ok {
		return nil, algebra.NewOpError(algebra.OpApply, m, arg)
	}
	return m.product(o, keepContraction), nil
}

func (m *MV) addScaled(o *MV, factor float64) *MV {
	out := New(m.tag)
	for i := range out.coef {
		out.coef[i] = m.coef[i] + factor*o.coef[i]
	}
	return out
}

// Scale returns m with every coefficient multiplied by s.
func (m *MV) Scale(s float64) *MV {
	out := New(m.tag)
	for i, c := range m.coef {
		out.coef[i] = s * c
	}
	return out
}

// Grade returns the projection of m onto grade k.
func (m *MV) Grade(k int) *MV {
	out := New(m.tag)
	for blade, c := range m.coef {
		if bits.OnesCount(uint(blade)) == k {
			out.coef[blade] = c
		}
	}
	return out
}

func keepAll(a, b, out int) bool { return true }

// keepContraction keeps the terms of the left contraction a | b:
// those whose output grade is grade(b) - grade(a).
func keepContraction(a, b, out int) bool {
	ga, gb := bits.OnesCount(uint(a)), bits.OnesCount(uint(b))
	return gb >= ga && bits.OnesCount(uint(out)) == gb-ga
}

// product accumulates the metric blade products of all coefficient
// pairs, filtered by keep.
func (m *MV) product(o *MV, keep func(a, b, out int) bool) *MV {
	out := New(m.tag)
	for a, ca := range m.coef {
		if ca == 0 {
			continue
		}
		for b, cb := range o.coef {
			if cb == 0 {
				continue
			}
			sign, blade := bladeProduct(a, b, m.tag)
			if sign == 0 || !keep(a, b, blade) {
				continue
			}
			out.coef[blade] += sign * ca * cb
		}
	}
	return out
}

// wedge is the outer product: blade pairs sharing a basis vector
// vanish and the metric never enters.
func (m *MV) wedge(o *MV) *MV {
	out := New(m.tag)
	for a, ca := range m.coef {
		if ca == 0 {
			continue
		}
		for b, cb := range o.coef {
			if cb == 0 || a&b != 0 {
				continue
			}
			out.coef[a^b] += reorderSign(a, b) * ca * cb
		}
	}
	return out
}

// bladeProduct multiplies two basis blades under the space's metric:
// the reordering sign times the metric square of every shared basis
// vector. A shared null vector annihilates the term.
func bladeProduct(a, b int, tag space.Tag) (float64, int) {
	sign := reorderSign(a, b)
	for rest := a & b; rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros(uint(rest))
		switch tag.Sign(i) {
		case 0:
			return 0, 0
		case -1:
			sign = -sign
		}
	}
	return sign, a ^ b
}

// reorderSign counts the basis-vector transpositions needed to bring
// the concatenation of blades a and b into canonical order.
func reorderSign(a, b int) float64 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount(uint(a & b))
		a >>= 1
	}
	if swaps&1 == 1 {
		return -1
	}
	return 1
}
