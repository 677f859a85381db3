package scad

import (
	"strings"
	"testing"

	"github.com/chazu/treen/pkg/spatial"
)

func TestValidateCleanTree(t *testing.T) {
	root := Union(
		mustNode(t)(Cube(spatial.P3(1, 1, 1), false)),
		Translate(spatial.P3(0.5, 0, 0), mustNode(t)(Sphere(0.5))),
	)
	if errs := Validate(root); len(errs) != 0 {
		t.Errorf("findings = %v, want none", errs)
	}
}

func TestValidateNilRoot(t *testing.T) {
	errs := Validate(nil)
	if len(errs) != 1 {
		t.Fatalf("findings = %d, want 1", len(errs))
	}
	if !strings.Contains(errs[0].Message, "root node is nil") {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestValidateRejectsAliasedNode(t *testing.T) {
	shared := mustNode(t)(Sphere(1))
	root := Union(shared, Translate(spatial.P3(1, 0, 0), shared))

	errs := Validate(root)
	if len(errs) == 0 {
		t.Fatal("expected a finding for a node attached twice")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e.Message, "attached more than once") {
			found = true
		}
	}
	if !found {
		t.Errorf("findings = %v, want an ownership finding", errs)
	}
}

func TestValidateNilChild(t *testing.T) {
	root := Union()
	root.Children = append(root.Children, nil)
	errs := Validate(root)
	if len(errs) != 1 {
		t.Fatalf("findings = %v, want exactly one", errs)
	}
	if errs[0].Field != "children" {
		t.Errorf("field = %q, want %q", errs[0].Field, "children")
	}
}

func TestValidateHandBuiltPayloads(t *testing.T) {
	tests := []struct {
		name string
		data OpData
	}{
		{"sphere", SphereData{R: -1}},
		{"circle", CircleData{R: -2}},
		{"cube", CubeData{Size: spatial.P3(-1, 1, 1)}},
		{"cylinder", CylinderData{H: -1, R1: 1, R2: 1}},
		{"polyhedron", PolyhedronData{Points: []spatial.Pt3{{}}, Faces: [][]int{{0, 0, 9}}}},
		{"linear extrude", LinearExtrudeData{Height: 0, Scale: spatial.P2(1, 1)}},
		{"rotate extrude", RotateExtrudeData{Angle: 400}},
		{"color", ColorData{Name: "nonesuch"}},
		{"import", ImportData{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Union(&Node{Data: tt.data})
			if errs := Validate(root); len(errs) == 0 {
				t.Error("expected findings for invalid payload")
			}
		})
	}
}

func TestValidateRecursesIntoChildren(t *testing.T) {
	bad := &Node{Data: SphereData{R: -1}}
	root := Union(Translate(spatial.P3(0, 0, 1), Rotate(30, bad)))
	errs := Validate(root)
	if len(errs) != 1 {
		t.Fatalf("findings = %v, want exactly one", errs)
	}
	if errs[0].Op != "sphere" {
		t.Errorf("op = %q, want %q", errs[0].Op, "sphere")
	}
}

func TestViewerMarkers(t *testing.T) {
	v, err := NewViewer(0.25, 16)
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}
	v.AddPt3(spatial.P3(1, 2, 3))
	v.AddPt2s([]spatial.Pt2{{X: 4, Y: 5}})

	want := "union() {\n" +
		"  translate(v=[1, 2, 3]) {\n" +
		"    sphere(r=0.25, $fn=16);\n" +
		"  }\n" +
		"  translate(v=[4, 5, 0]) {\n" +
		"    sphere(r=0.25, $fn=16);\n" +
		"  }\n" +
		"}\n"
	if got := v.Node().Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}

func TestViewerValidation(t *testing.T) {
	if _, err := NewViewer(0, 16); err == nil {
		t.Error("expected error for zero point radius")
	}
	if _, err := NewViewer(0.5, 2); err == nil {
		t.Error("expected error for too few segments")
	}
}
