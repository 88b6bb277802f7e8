package algebra

// Op enumerates the binary operation slots the resolver understands.
// Families implement any subset; an unimplemented slot fails with a
// *OpError at dispatch time.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul // geometric product
	OpWedge
	OpDot // left contraction
	// OpApply names form application in errors and diagnostics. It is
	// never routed through Combiner.Binary; see Interform.
	OpApply
)

var opSymbols = [...]string{
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "*",
	OpWedge: "^",
	OpDot:   "|",
	OpApply: "@",
}

func (op Op) String() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return "op?"
}
