package evaluator

import (
	"strings"
	"testing"

	"github.com/funvibe/funalg/internal/parser"
	"github.com/funvibe/funalg/pkg/multivector"
	"github.com/funvibe/funalg/pkg/space"
)

func eval(t *testing.T, input string) *multivector.MV {
	t.Helper()
	expr, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	res, err := Eval(expr)
	if err != nil {
		t.Fatalf("Eval(%q): %v", input, err)
	}
	mv, ok := res.(*multivector.MV)
	if !ok {
		t.Fatalf("Eval(%q) = %T, want *multivector.MV", input, res)
	}
	return mv
}

func TestEval(t *testing.T) {
	tests := []struct {
		input   string
		wantTag space.Tag
		want    string
	}{
		{"1 + 2", space.Tag{}, "3"},
		{"e1 + e2", space.Euclidean(2), "e1 + e2"},
		{"e1 * e2", space.Euclidean(2), "e12"},
		{"e2 * e1", space.Euclidean(2), "-e12"},
		{"e1 ^ e1", space.Euclidean(1), "0"},
		{"2e12 + 3", space.Euclidean(2), "3 + 2e12"},
		{"-e1", space.Euclidean(1), "-e1"},
		{"~e12", space.Euclidean(2), "-e12"},
		{"e1 | e12", space.Euclidean(2), "e2"},
		{"e1 @ e12", space.Euclidean(2), "e2"},
		{"(1 + e12) * e1", space.Euclidean(2), "e1 - e2"},
		// Mixed minimal spaces resolve through the union.
		{"e1 + e123", space.Euclidean(3), "e1 + e123"},
		{"2 + e12", space.Euclidean(2), "2 + e12"},
		// The pseudoscalar materializes in the other operand's space.
		{"I * e1", space.Euclidean(1), "1"},
		{"e1 * I", space.Euclidean(1), "1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mv := eval(t, tt.input)
			if mv.Space() != tt.wantTag {
				t.Errorf("tag = %s, want %s", mv.Space(), tt.wantTag)
			}
			if got := mv.String(); got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantSub string
	}{
		{"-I", "tagged operand"},
		{"~I", "tagged operand"},
		{"I + I", "universal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			_, err = Eval(expr)
			if err == nil {
				t.Fatalf("Eval(%q) should fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}
