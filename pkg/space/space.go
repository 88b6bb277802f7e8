// Package space defines the vector-space tags that parameterize algebra
// values, and the union operation that makes mixed-space arithmetic
// well-defined.
//
// A Tag names a quadratic space by its metric signature: P basis vectors
// squaring to +1, Q squaring to -1 and R squaring to 0, plus a flag for
// the dual space. Tags are plain comparable values; two tags are the same
// space exactly when they are ==.
package space

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag identifies an algebraic space. The zero Tag is the 0-dimensional
// space of scalars. Construct tags with Euclidean, Cl or Parse, which
// bound the signature components (see MaxDim).
type Tag struct {
	P uint8 // basis vectors squaring to +1
	Q uint8 // basis vectors squaring to -1
	R uint8 // basis vectors squaring to 0
	// Dual marks the dual (covector) space. Unions across the
	// dual/primal boundary are undefined.
	Dual bool
}

// MaxDim caps the dimension of constructed tags. Every tag built with
// Euclidean, Cl or Parse keeps each signature component within MaxDim,
// so any chain of unions stays within 3*MaxDim basis vectors and blade
// bitmaps never overflow an int.
const MaxDim = 20

// Euclidean returns the positive-definite n-dimensional space. It
// panics when n is negative or exceeds MaxDim.
func Euclidean(n int) Tag {
	if n < 0 || n > MaxDim {
		panic(fmt.Sprintf("space: dimension %d out of range [0, %d]", n, MaxDim))
	}
	return Tag{P: uint8(n)}
}

// Cl returns the Clifford space with signature (p, q, r). It panics
// when a component is negative or the dimension exceeds MaxDim.
func Cl(p, q, r int) Tag {
	if p < 0 || q < 0 || r < 0 || p+q+r > MaxDim {
		panic(fmt.Sprintf("space: signature (%d,%d,%d) out of range, at most %d dimensions", p, q, r, MaxDim))
	}
	return Tag{P: uint8(p), Q: uint8(q), R: uint8(r)}
}

// Dim returns the number of basis vectors.
func (t Tag) Dim() int {
	return int(t.P) + int(t.Q) + int(t.R)
}

// Blades returns the number of basis blades, 2^Dim.
func (t Tag) Blades() int {
	return 1 << t.Dim()
}

// Sign returns the metric square of basis vector i: +1, -1 or 0.
// Basis vectors are ordered positive block, negative block, null block.
// Sign panics if i is out of range.
func (t Tag) Sign(i int) int {
	switch {
	case i < 0 || i >= t.Dim():
		panic(fmt.Sprintf("space: basis index %d out of range for %s", i, t))
	case i < int(t.P):
		return 1
	case i < int(t.P)+int(t.Q):
		return -1
	default:
		return 0
	}
}

func (t Tag) String() string {
	base := ""
	switch {
	case t.Q == 0 && t.R == 0:
		base = fmt.Sprintf("%dD", t.P)
	case t.R == 0:
		base = fmt.Sprintf("cl(%d,%d)", t.P, t.Q)
	default:
		base = fmt.Sprintf("cl(%d,%d,%d)", t.P, t.Q, t.R)
	}
	if t.Dual {
		return base + "'"
	}
	return base
}

// UnionError reports that two tags have no common superspace.
type UnionError struct {
	A, B Tag
}

func (e *UnionError) Error() string {
	return fmt.Sprintf("space: no union of %s and %s", e.A, e.B)
}

// Union returns the smallest space containing both a and b: the
// componentwise maximum of the two signatures. It is commutative,
// deterministic and idempotent (Union(v, v) == v). It fails when one
// tag is dual and the other is not, since primal and dual spaces have
// no common superspace.
func Union(a, b Tag) (Tag, error) {
	if a.Dual != b.Dual {
		return Tag{}, &UnionError{A: a, B: b}
	}
	return Tag{
		P:    maxU8(a.P, b.P),
		Q:    maxU8(a.Q, b.Q),
		R:    maxU8(a.R, b.R),
		Dual: a.Dual,
	}, nil
}

// Contains reports whether every basis vector of sub has a slot of the
// same metric sign in t.
func (t Tag) Contains(sub Tag) bool {
	return t.Dual == sub.Dual && t.P >= sub.P && t.Q >= sub.Q && t.R >= sub.R
}

// Parse reads a tag in the forms produced by String: "3D", "cl(3,1)",
// "cl(1,3,1)", each with an optional trailing "'" for the dual space.
func Parse(s string) (Tag, error) {
	input := strings.TrimSpace(s)
	t := Tag{}
	body := input
	if strings.HasSuffix(body, "'") {
		t.Dual = true
		body = strings.TrimSuffix(body, "'")
	}
	if n, ok := strings.CutSuffix(body, "D"); ok && !strings.Contains(n, "(") {
		p, err := strconv.ParseUint(n, 10, 8)
		if err != nil {
			return Tag{}, fmt.Errorf("space: invalid tag %q", s)
		}
		t.P = uint8(p)
		if t.Dim() > MaxDim {
			return Tag{}, fmt.Errorf("space: tag %q exceeds %d dimensions", s, MaxDim)
		}
		return t, nil
	}
	inner, ok := strings.CutPrefix(body, "cl(")
	if !ok {
		return Tag{}, fmt.Errorf("space: invalid tag %q", s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return Tag{}, fmt.Errorf("space: invalid tag %q", s)
	}
	parts := strings.Split(inner, ",")
	if len(parts) < 1 || len(parts) > 3 {
		return Tag{}, fmt.Errorf("space: invalid tag %q", s)
	}
	dst := []*uint8{&t.P, &t.Q, &t.R}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Tag{}, fmt.Errorf("space: invalid tag %q", s)
		}
		*dst[i] = uint8(v)
	}
	if t.Dim() > MaxDim {
		return Tag{}, fmt.Errorf("space: tag %q exceeds %d dimensions", s, MaxDim)
	}
	return t, nil
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
