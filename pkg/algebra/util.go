package algebra

// Element-local utility front doors. Each acts on a single value and
// needs no space resolution: the receiving family does all the work.
// A value whose family lacks the capability fails with a *OpError.

// Norm returns the magnitude of a.
func Norm(a Element) (float64, error) {
	n, ok := a.(Normed)
	if !ok {
		return 0, NewUtilError("norm", a)
	}
	return n.Norm(), nil
}

// ScalarPart returns the grade-0 component of a.
func ScalarPart(a Element) (float64, error) {
	s, ok := a.(Scalarer)
	if !ok {
		return 0, NewUtilError("scalar", a)
	}
	return s.ScalarPart(), nil
}

// Reverse returns the reversion of a.
func Reverse(a Element) (Element, error) {
	inv, ok := a.(Involutive)
	if !ok {
		return nil, NewUtilError("reverse", a)
	}
	return inv.Reverse(), nil
}

// Involute returns the grade involution of a.
func Involute(a Element) (Element, error) {
	inv, ok := a.(Involutive)
	if !ok {
		return nil, NewUtilError("involute", a)
	}
	return inv.Involute(), nil
}

// Conjugate returns the Clifford conjugate of a.
func Conjugate(a Element) (Element, error) {
	inv, ok := a.(Involutive)
	if !ok {
		return nil, NewUtilError("conjugate", a)
	}
	return inv.Conjugate(), nil
}

// IsEven reports whether a has only even-grade components.
func IsEven(a Element) (bool, error) {
	g, ok := a.(Graded)
	if !ok {
		return false, NewUtilError("even", a)
	}
	return g.Even(), nil
}

// IsOdd reports whether a has only odd-grade components.
func IsOdd(a Element) (bool, error) {
	g, ok := a.(Graded)
	if !ok {
		return false, NewUtilError("odd", a)
	}
	return g.Odd(), nil
}
