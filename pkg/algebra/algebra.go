// Package algebra is the interoperability core for tensor-algebra values.
//
// Concrete algebra families live in their own packages and know nothing
// about each other. Each family tags its values with a space.Tag and
// supplies a conversion into other tags; this package contains the
// resolution protocol that makes binary operations between values with
// differing tags well-defined: compute the union of the two tags,
// convert both operands into the union space, then invoke the
// space-homogeneous operation.
//
// The package holds no state. Every resolution is a pure function of
// its operands, and collaborator failures propagate to the caller
// unchanged: there is no fallback, no retry and no logging here.
package algebra

import "github.com/funvibe/funalg/pkg/space"

// Element is the contract every algebra value satisfies. Values are
// immutable: Convert returns a new value and never mutates the
// receiver. The space tag of a value is fixed for its lifetime.
type Element interface {
	// Space returns the tag of the space the value lives in.
	Space() space.Tag

	// Convert returns an equivalent value tagged with target. The
	// mapping is supplied by the concrete family; when no sensible
	// mapping exists for the (source, target) pair it fails with a
	// *ConvertError. Converting to the value's own tag returns an
	// equal value.
	Convert(target space.Tag) (Element, error)
}

// Combiner is the capability for space-homogeneous binary operations.
// Binary is only ever invoked with rhs tagged identically to the
// receiver; the resolver guarantees this. An unsupported op or operand
// type fails with a *OpError.
type Combiner interface {
	Element
	Binary(op Op, rhs Element) (Element, error)
}

// Form is the capability for applying one value to another, treating
// the receiver as a functional acting on its argument. Apply is only
// ever invoked with arg tagged identically to the receiver.
type Form interface {
	Element
	Apply(arg Element) (Element, error)
}

// Volumetric is the capability of producing the unit pseudoscalar of
// the receiver's own space and family. It is how the universal
// pseudoscalar I materializes against a concrete operand.
type Volumetric interface {
	Element
	UnitVolume() Element
}

// Lifter lets a family re-express its values in a richer family. When
// a homogeneous Binary reports an unimplemented operation, the
// resolver makes exactly one lift attempt on each operand before
// giving up; families that interoperate with a reference family
// implement Lift to opt in.
type Lifter interface {
	Element
	Lift() Element
}

// The element-local utility capabilities below are implemented by
// concrete families for their own values; this core only routes to
// them. They need no interop resolution since each acts on a single
// value.

// Normed yields the magnitude of a value.
type Normed interface {
	Norm() float64
}

// Scalarer projects out the grade-0 part of a value.
type Scalarer interface {
	ScalarPart() float64
}

// Involutive provides the three standard involutions.
type Involutive interface {
	Reverse() Element
	Involute() Element
	Conjugate() Element
}

// Graded exposes grade-parity predicates. A value may be neither even
// nor odd when it mixes parities.
type Graded interface {
	Even() bool
	Odd() bool
}
