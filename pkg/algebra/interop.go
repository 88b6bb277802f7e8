package algebra

import (
	"errors"

	"github.com/funvibe/funalg/pkg/space"
)

// BinaryFunc is a binary operation over two algebra values sharing a
// space tag.
type BinaryFunc func(a, b Element) (Element, error)

// Interop resolves op over two operands with differing space tags. It
// computes the union of the tags, converts both operands into the
// union space, then invokes op on the converted pair. The result's tag
// is the union of the input tags.
//
// Both conversions are performed unconditionally, even when one tag
// already equals the union; callers with equal-tag operands should
// invoke the homogeneous operation directly instead of coming here.
// Any error from the union or either conversion is returned verbatim.
func Interop(op BinaryFunc, a, b Element) (Element, error) {
	u, err := space.Union(a.Space(), b.Space())
	if err != nil {
		return nil, err
	}
	ca, err := a.Convert(u)
	if err != nil {
		return nil, err
	}
	cb, err := b.Convert(u)
	if err != nil {
		return nil, err
	}
	return op(ca, cb)
}

// Combine is the front door for the enumerated binary operations. It
// materializes universal pseudoscalar operands, routes equal-tag pairs
// straight to the homogeneous implementation, and resolves unequal
// tags through Interop.
func Combine(op Op, a, b Element) (Element, error) {
	a, b, err := materialize(a, b)
	if err != nil {
		return nil, err
	}
	if a.Space() == b.Space() {
		return homogeneous(op, a, b)
	}
	return Interop(func(x, y Element) (Element, error) {
		return homogeneous(op, x, y)
	}, a, b)
}

// Add returns a + b, resolving space tags as needed.
func Add(a, b Element) (Element, error) { return Combine(OpAdd, a, b) }

// Sub returns a - b, resolving space tags as needed.
func Sub(a, b Element) (Element, error) { return Combine(OpSub, a, b) }

// Mul returns the geometric product a * b, resolving space tags as
// needed.
func Mul(a, b Element) (Element, error) { return Combine(OpMul, a, b) }

// Wedge returns the outer product a ^ b, resolving space tags as
// needed.
func Wedge(a, b Element) (Element, error) { return Combine(OpWedge, a, b) }

// Dot returns the left contraction a | b, resolving space tags as
// needed.
func Dot(a, b Element) (Element, error) { return Combine(OpDot, a, b) }

// homogeneous dispatches op on two operands that share a space tag.
// When the left operand's Binary reports an unimplemented operation,
// one lift attempt is made on each side before the failure stands.
func homogeneous(op Op, a, b Element) (Element, error) {
	if c, ok := a.(Combiner); ok {
		res, err := c.Binary(op, b)
		if err == nil || !isOpError(err) {
			return res, err
		}
	}
	la, aLifts := a.(Lifter)
	lb, bLifts := b.(Lifter)
	if !aLifts && !bLifts {
		return nil, NewOpError(op, a, b)
	}
	x, y := a, b
	if aLifts {
		x = la.Lift()
	}
	if bLifts {
		y = lb.Lift()
	}
	if c, ok := x.(Combiner); ok {
		return c.Binary(op, y)
	}
	return nil, NewOpError(op, a, b)
}

func isOpError(err error) bool {
	var oe *OpError
	return errors.As(err, &oe)
}
