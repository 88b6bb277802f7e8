package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// A .funalg.yaml in the real home directory must not leak into
	// the expected output.
	t.Setenv("HOME", t.TempDir())
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "simple sum",
			args: []string{"eval", "--color", "never", "e1 + e2"},
			want: "e1 + e2  (2D)",
		},
		{
			name: "mixed spaces resolve",
			args: []string{"eval", "--color", "never", "2 + e12"},
			want: "2 + e12  (2D)",
		},
		{
			name: "ambient space widens the result",
			args: []string{"eval", "--color", "never", "--space", "3D", "e1"},
			want: "e1  (3D)",
		},
		{
			name: "pseudoscalar result",
			args: []string{"eval", "--color", "never", "I"},
			want: "I  (any space)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q, want substring %q", out, tt.want)
			}
		})
	}
}

func TestEvalCommandErrors(t *testing.T) {
	_, err := runCommand(t, "", "eval", "--color", "never", "e1 +")
	if err == nil {
		t.Fatal("parse failure should surface as a command error")
	}

	_, err = runCommand(t, "", "eval", "--color", "never", "--space", "nope", "e1")
	if err == nil {
		t.Fatal("invalid ambient space should surface as a command error")
	}
}

func TestReplSession(t *testing.T) {
	stdin := strings.Join([]string{
		"e1 * e2",
		":space 3D",
		"e1",
		":norm 3 + 4e1",
		"bogus $",
		":quit",
	}, "\n") + "\n"

	out, err := runCommand(t, stdin, "repl", "--color", "never")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for _, want := range []string{
		"e12  (2D)",
		"ambient space: 3D",
		"e1  (3D)",
		"5.0000",
		"error:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("repl output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(out, "funalg") {
		t.Errorf("version output = %q", out)
	}
}
