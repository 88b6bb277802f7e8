package algebra

import (
	"fmt"

	"github.com/funvibe/funalg/pkg/space"
)

// ConvertError indicates a family was asked to convert a value into a
// space it has no mapping for.
type ConvertError struct {
	Family string
	From   space.Tag
	To     space.Tag
	Reason string
}

func (e *ConvertError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("no conversion of %s value from %s to %s: %s", e.Family, e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("no conversion of %s value from %s to %s", e.Family, e.From, e.To)
}

func NewConvertError(family string, from, to space.Tag, reason string) *ConvertError {
	return &ConvertError{Family: family, From: from, To: to, Reason: reason}
}

// OpError indicates no implementation of an operation exists for the
// given operands, even after resolution. Name is the operation symbol
// (for the enumerated slots) or the utility name (for element-local
// utilities).
type OpError struct {
	Name  string
	Left  string
	Right string
}

func (e *OpError) Error() string {
	if e.Right == "" {
		return fmt.Sprintf("operation %s not implemented for %s", e.Name, e.Left)
	}
	return fmt.Sprintf("operation %s not implemented for %s and %s", e.Name, e.Left, e.Right)
}

// NewOpError builds an OpError for an enumerated operation slot.
func NewOpError(op Op, left, right Element) *OpError {
	e := &OpError{Name: op.String(), Left: fmt.Sprintf("%T", left)}
	if right != nil {
		e.Right = fmt.Sprintf("%T", right)
	}
	return e
}

// NewUtilError builds an OpError for an element-local utility.
func NewUtilError(name string, a Element) *OpError {
	return &OpError{Name: name, Left: fmt.Sprintf("%T", a)}
}
