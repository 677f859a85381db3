package spatial

import "testing"

func TestComposeOrder(t *testing.T) {
	// Compose(a, b) applies b first, matching b nested inside a.
	rot, err := Rotate(P3(0, 0, 1), 90)
	if err != nil {
		t.Fatal(err)
	}
	move := Translate(P3(10, 0, 0))

	p := P3(1, 0, 0)
	// Rotate first, then translate: (1,0,0) -> (0,1,0) -> (10,1,0).
	if got := Compose(move, rot).Apply(p); !pt3Near(got, P3(10, 1, 0)) {
		t.Errorf("translate after rotate = %v, want (10, 1, 0)", got)
	}
	// Translate first, then rotate: (1,0,0) -> (11,0,0) -> (0,11,0).
	if got := Compose(rot, move).Apply(p); !pt3Near(got, P3(0, 11, 0)) {
		t.Errorf("rotate after translate = %v, want (0, 11, 0)", got)
	}
}

func TestTransformKinds(t *testing.T) {
	rot, err := Rotate(P3(1, 0, 0), 45)
	if err != nil {
		t.Fatal(err)
	}
	mir, err := Mirror(P3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		tr   Transform
		kind TransformKind
		name string
	}{
		{Translate(P3(1, 2, 3)), TransformTranslate, "translate"},
		{rot, TransformRotate, "rotate"},
		{RotateXYZ(P3(10, 20, 30)), TransformRotate, "rotate"},
		{Scale(P3(2, 2, 2)), TransformScale, "scale"},
		{mir, TransformMirror, "mirror"},
		{Matrix(Ident4()), TransformMatrix, "matrix"},
	}
	for _, tt := range tests {
		if tt.tr.Kind != tt.kind {
			t.Errorf("kind = %v, want %v", tt.tr.Kind, tt.kind)
		}
		if tt.tr.Kind.String() != tt.name {
			t.Errorf("kind string = %q, want %q", tt.tr.Kind.String(), tt.name)
		}
	}
	if !RotateXYZ(P3(10, 20, 30)).Euler {
		t.Error("RotateXYZ should mark the transform as euler")
	}
}

func TestTransformInverseRoundTrip(t *testing.T) {
	rot, err := Rotate(P3(1, 1, 0), 60)
	if err != nil {
		t.Fatal(err)
	}
	mir, err := Mirror(P3(1, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		tr   Transform
	}{
		{"translate", Translate(P3(4, -5, 6))},
		{"rotate axis", rot},
		{"rotate euler", RotateXYZ(P3(30, 40, 50))},
		{"scale", Scale(P3(2, 0.5, 4))},
		{"mirror", mir},
		{"matrix", Matrix(Translation(P3(1, 1, 1)).Mul(RotationY(20)))},
	}
	points := []Pt3{P3(0, 0, 0), P3(1, 2, 3), P3(-4, 0.5, 9)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.tr.Inverse()
			if err != nil {
				t.Fatalf("Inverse returned error: %v", err)
			}
			for _, p := range points {
				if got := inv.Apply(tt.tr.Apply(p)); !pt3Near(got, p) {
					t.Errorf("round trip of %v = %v", p, got)
				}
			}
		})
	}
}

func TestTransformInverseKindPreserved(t *testing.T) {
	inv, err := Translate(P3(1, 2, 3)).Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if inv.Kind != TransformTranslate {
		t.Errorf("inverse kind = %v, want %v", inv.Kind, TransformTranslate)
	}
	if !pt3Near(inv.Vec, P3(-1, -2, -3)) {
		t.Errorf("inverse vector = %v, want (-1, -2, -3)", inv.Vec)
	}

	inv, err = Scale(P3(2, 4, 8)).Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if inv.Kind != TransformScale || !pt3Near(inv.Vec, P3(0.5, 0.25, 0.125)) {
		t.Errorf("scale inverse = %+v", inv)
	}

	if _, err := Scale(P3(0, 1, 1)).Inverse(); err == nil {
		t.Fatal("expected error inverting zero scale")
	}
}

func TestTransformApplyMatchesMatrix(t *testing.T) {
	tr := Translate(P3(3, 0, 0))
	p := P3(1, 1, 1)
	if got, want := tr.Apply(p), tr.M.MulPt3(p); !pt3Near(got, want) {
		t.Errorf("Apply = %v, matrix = %v", got, want)
	}
}
