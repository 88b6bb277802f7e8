package space

import (
	"errors"
	"testing"
)

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Tag
		want Tag
	}{
		{
			name: "equal tags are idempotent",
			a:    Euclidean(3),
			b:    Euclidean(3),
			want: Euclidean(3),
		},
		{
			name: "2D embeds in 3D",
			a:    Euclidean(2),
			b:    Euclidean(3),
			want: Euclidean(3),
		},
		{
			name: "signatures merge componentwise",
			a:    Cl(2, 0, 0),
			b:    Cl(0, 1, 0),
			want: Cl(2, 1, 0),
		},
		{
			name: "degenerate block merges",
			a:    Cl(3, 0, 1),
			b:    Cl(1, 1, 0),
			want: Cl(3, 1, 1),
		},
		{
			name: "dual spaces union with dual spaces",
			a:    Tag{P: 2, Dual: true},
			b:    Tag{P: 3, Dual: true},
			want: Tag{P: 3, Dual: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Union(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Union(%s, %s) error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Union(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}

			// Commutativity must hold for every pair.
			flipped, err := Union(tt.b, tt.a)
			if err != nil {
				t.Fatalf("Union(%s, %s) error: %v", tt.b, tt.a, err)
			}
			if flipped != got {
				t.Errorf("Union is not commutative: %s vs %s", got, flipped)
			}
		})
	}
}

func TestUnionDualMismatch(t *testing.T) {
	_, err := Union(Euclidean(2), Tag{P: 2, Dual: true})
	if err == nil {
		t.Fatal("expected union error for primal/dual pair")
	}
	var ue *UnionError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnionError, got %T", err)
	}
}

func TestSign(t *testing.T) {
	tag := Cl(2, 1, 1)
	want := []int{1, 1, -1, 0}
	for i, w := range want {
		if got := tag.Sign(i); got != w {
			t.Errorf("Sign(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestContains(t *testing.T) {
	if !Euclidean(3).Contains(Euclidean(2)) {
		t.Error("3D should contain 2D")
	}
	if Euclidean(3).Contains(Cl(2, 1, 0)) {
		t.Error("3D should not contain cl(2,1)")
	}
	if Euclidean(2).Contains(Tag{P: 2, Dual: true}) {
		t.Error("primal space should not contain its dual")
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  Tag
	}{
		{"3D", Euclidean(3)},
		{"0D", Tag{}},
		{"cl(3,1)", Cl(3, 1, 0)},
		{"cl(1,3,1)", Cl(1, 3, 1)},
		{"cl(2,0,1)'", Tag{P: 2, R: 1, Dual: true}},
		{"2D'", Tag{P: 2, Dual: true}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
		back, err := Parse(got.String())
		if err != nil || back != got {
			t.Errorf("String/Parse round trip failed for %q: %v", tt.input, err)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "three", "cl()", "cl(1,2,3,4)", "cl(300)", "-1D"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

func TestDimensionCap(t *testing.T) {
	// The blade count of the largest constructible tag must not wrap.
	if got := Euclidean(MaxDim).Blades(); got != 1<<MaxDim {
		t.Errorf("Blades() = %d, want %d", got, 1<<MaxDim)
	}

	mustPanic(t, "Euclidean(64)", func() { Euclidean(64) })
	mustPanic(t, "Euclidean(300)", func() { Euclidean(300) })
	mustPanic(t, "Euclidean(-1)", func() { Euclidean(-1) })
	mustPanic(t, "Cl(10,10,10)", func() { Cl(10, 10, 10) })
	mustPanic(t, "Cl(-1,0,0)", func() { Cl(-1, 0, 0) })

	for _, input := range []string{"64D", "cl(20,1)", "cl(7,7,7)"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should fail the dimension cap", input)
		}
	}
}
