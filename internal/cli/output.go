package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/funalg/pkg/algebra"
	"github.com/funvibe/funalg/pkg/space"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// printer renders results and errors, optionally colored.
type printer struct {
	color     bool
	precision int
}

func newPrinter(mode string, precision int) *printer {
	p := &printer{precision: precision}
	switch mode {
	case "always":
		p.color = true
	case "never":
		p.color = false
	default:
		p.color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	return p
}

// renderResult formats an algebra element with its space tag, e.g.
// "e1 + e2  (2D)".
func (p *printer) renderResult(e algebra.Element) string {
	if _, ok := e.(algebra.Universal); ok {
		return p.paint(ansiGreen, "I") + p.paint(ansiDim, "  (any space)")
	}
	return p.paint(ansiGreen, fmt.Sprintf("%v", e)) + p.paint(ansiDim, fmt.Sprintf("  (%s)", e.Space()))
}

func (p *printer) renderError(err error) string {
	return p.paint(ansiRed, "error: "+err.Error())
}

// renderScalar formats a scalar quantity like a norm with the
// configured number of fractional digits.
func (p *printer) renderScalar(v float64) string {
	return p.paint(ansiGreen, strconv.FormatFloat(v, 'f', p.precision, 64))
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

// widen converts a result into the union of its own tag and the
// ambient space, when one is configured. The universal pseudoscalar
// passes through untouched.
func widen(e algebra.Element, ambient string) (algebra.Element, error) {
	if ambient == "" {
		return e, nil
	}
	if _, ok := e.(algebra.Universal); ok {
		return e, nil
	}
	tag, err := space.Parse(ambient)
	if err != nil {
		return nil, err
	}
	u, err := space.Union(e.Space(), tag)
	if err != nil {
		return nil, err
	}
	if u == e.Space() {
		return e, nil
	}
	return e.Convert(u)
}
