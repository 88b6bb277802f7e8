package algebra

import "github.com/funvibe/funalg/pkg/space"

// Interform resolves form application for operands with differing
// space tags: union, convert both, then apply the converted a to the
// converted b. Unlike Interop the operand roles are fixed: a stays the
// form, b stays the argument. The converted a must still satisfy Form;
// otherwise the application is unimplemented for these operands.
func Interform(a, b Element) (Element, error) {
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
	form, ok := ca.(Form)
	if !ok {
		return nil, NewOpError(OpApply, ca, cb)
	}
	return form.Apply(cb)
}

// Apply is the front door for form application, mirroring Combine:
// pseudoscalar operands are materialized first, equal tags apply
// directly, and unequal tags resolve through Interform.
func Apply(a, b Element) (Element, error) {
	a, b, err := materialize(a, b)
	if err != nil {
		return nil, err
	}
	if a.Space() == b.Space() {
		form, ok := a.(Form)
		if !ok {
			return nil, NewOpError(OpApply, a, b)
		}
		return form.Apply(b)
	}
	return Interform(a, b)
}
