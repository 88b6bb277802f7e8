package parser

import (
	"strings"
	"testing"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2", "(1 + 2)"},
		{"e1 + e2 * e3", "(e1 + (e2 * e3))"},
		{"e1 ^ e2 | e3", "((e1 ^ e2) | e3)"},
		{"e1 | e2 ^ e3", "(e1 | (e2 ^ e3))"},
		{"-e1 + ~e2", "((-e1) + (~e2))"},
		{"(e1 + e2) * e3", "((e1 + e2) * e3)"},
		{"2e12 + 3", "(2e12 + 3)"},
		{"I * e1", "(I * e1)"},
		{"e1 @ e12 + 1", "((e1 @ e12) + 1)"},
		{"-2.5", "(-2.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := expr.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantSub string
	}{
		{"", "unexpected"},
		{"e1 +", "unexpected"},
		{"(e1 + e2", "expected )"},
		{"e1 e2", "unexpected"},
		{"e0", "blade index 0"},
		{"e21", "ascend"},
		{"1..2", "invalid number"},
		{"x + 1", "unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Parse(%q) error = %q, want substring %q", tt.input, err, tt.wantSub)
			}
		})
	}
}

func TestParseBladeIndices(t *testing.T) {
	expr, err := Parse("e134")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if expr.String() != "e134" {
		t.Errorf("String() = %q", expr.String())
	}
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"e1 + e2",
		"2e12 * (I - 3)",
		"~e123 @ e1 ^ e2",
		"-(-1)",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		// The parser must never panic; errors are fine.
		expr, err := Parse(input)
		if err == nil && expr == nil {
			t.Error("nil expression without error")
		}
	})
}
