package algebra

import (
	"fmt"

	"github.com/funvibe/funalg/pkg/space"
)

// Universal is the space-independent unit pseudoscalar. It has no tag
// of its own and is only meaningful once instantiated against a
// concrete operand, at which point it becomes that operand family's
// unit-volume value in the operand's space. Use the package-level I.
type Universal struct{}

// I is the universal pseudoscalar.
var I = Universal{}

// Space returns the zero tag. The universal pseudoscalar has no space
// of its own; the zero tag is a placeholder, not a claim of living in
// the scalar space.
func (Universal) Space() space.Tag { return space.Tag{} }

// Convert fails: with no family to materialize in, the universal
// pseudoscalar cannot be converted directly. Combine it with a tagged
// operand, or instantiate it explicitly with Instantiate.
func (Universal) Convert(target space.Tag) (Element, error) {
	return nil, NewConvertError("pseudoscalar", space.Tag{}, target, "universal pseudoscalar has no family")
}

// Instantiate materializes the universal pseudoscalar against like:
// the result is like's family's unit pseudoscalar in like's space.
// like must satisfy Volumetric.
func Instantiate(like Element) (Element, error) {
	v, ok := like.(Volumetric)
	if !ok {
		return nil, fmt.Errorf("algebra: cannot instantiate pseudoscalar against %T (no unit volume)", like)
	}
	return v.UnitVolume(), nil
}

// materialize replaces universal pseudoscalar operands with concrete
// unit-volume values in the other operand's space. This bypasses the
// union resolver: the pseudoscalar has no tag to union against. Two
// universal operands cannot be materialized.
func materialize(a, b Element) (Element, Element, error) {
	_, ua := a.(Universal)
	_, ub := b.(Universal)
	if ua && ub {
		return nil, nil, fmt.Errorf("algebra: cannot combine two universal pseudoscalars")
	}
	var err error
	if ua {
		if a, err = Instantiate(b); err != nil {
			return nil, nil, err
		}
	}
	if ub {
		if b, err = Instantiate(a); err != nil {
			return nil, nil, err
		}
	}
	return a, b, nil
}
