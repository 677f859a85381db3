package solid

import (
	"strings"
	"testing"

	"github.com/chazu/treen/pkg/spatial"
)

const eps = 1e-9

func near(a, b float64) bool { return spatial.ApproxEq(a, b, eps) }

func pt3Near(a, b spatial.Pt3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// tetra builds the unit tetrahedron with faces wound clockwise viewed from
// outside.
func tetra() *Polyhedron {
	return &Polyhedron{
		Points: []spatial.Pt3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		},
		Faces: [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	}
}

func TestTetrahedronIsClean(t *testing.T) {
	p := tetra()
	if errs := p.Validate(); len(errs) != 0 {
		t.Fatalf("Validate returned %d errors: %v", len(errs), errs)
	}
	if !p.Watertight() {
		t.Error("Watertight() = false, want true")
	}
	if open := p.OpenEdges(); len(open) != 0 {
		t.Errorf("OpenEdges() = %v, want none", open)
	}
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Polyhedron)
		message string
	}{
		{
			"too few points",
			func(p *Polyhedron) { p.Points = p.Points[:3] },
			"need at least 4",
		},
		{
			"short face",
			func(p *Polyhedron) { p.Faces[0] = []int{0, 1} },
			"need at least 3",
		},
		{
			"index out of range",
			func(p *Polyhedron) { p.Faces[0] = []int{0, 1, 9} },
			"references point 9",
		},
		{
			"repeated corner",
			func(p *Polyhedron) { p.Faces[0] = []int{0, 1, 1} },
			"repeats vertex 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tetra()
			tt.mutate(p)
			errs := p.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate returned no errors")
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e.Message, tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.message)
			}
		})
	}
}

func TestValidateTopology(t *testing.T) {
	t.Run("missing face", func(t *testing.T) {
		p := tetra()
		p.Faces = p.Faces[:3]
		errs := p.Validate()
		count := 0
		for _, e := range errs {
			if strings.Contains(e.Message, "not watertight") {
				count++
			}
		}
		if count != 3 {
			t.Errorf("got %d open-edge errors, want 3: %v", count, errs)
		}
	})
	t.Run("flipped face", func(t *testing.T) {
		p := tetra()
		p.Faces[3] = []int{2, 3, 1}
		errs := p.Validate()
		found := false
		for _, e := range errs {
			if strings.Contains(e.Message, "winding is inconsistent") {
				found = true
			}
		}
		if !found {
			t.Errorf("errors %v do not mention inconsistent winding", errs)
		}
	})
}

func TestOpenEdgesReportsBoundary(t *testing.T) {
	p := tetra()
	p.Faces = p.Faces[:3]
	want := [][2]int{{1, 2}, {3, 1}, {2, 3}}
	got := p.OpenEdges()
	if len(got) != len(want) {
		t.Fatalf("OpenEdges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("open edge %d = %v, want %v", i, got[i], want[i])
		}
	}
	if p.Watertight() {
		t.Error("Watertight() = true for open mesh")
	}
}

func TestWatertightRejectsDoubledFace(t *testing.T) {
	p := tetra()
	p.Faces = append(p.Faces, []int{0, 1, 2})
	if p.Watertight() {
		t.Error("Watertight() = true with a doubled face")
	}
}

func TestNodeBridge(t *testing.T) {
	node, err := tetra().Node(2)
	if err != nil {
		t.Fatalf("Node returned error: %v", err)
	}
	script := node.String()
	if !strings.Contains(script, "polyhedron(points=") {
		t.Errorf("script %q does not open a polyhedron", script)
	}
	if !strings.Contains(script, "convexity=2") {
		t.Errorf("script %q does not carry convexity", script)
	}

	bad := tetra()
	bad.Faces[0] = []int{0, 1, 9}
	if _, err := bad.Node(1); err == nil {
		t.Error("Node accepted an out-of-range face index")
	}
}

func TestMeshMutators(t *testing.T) {
	p := tetra().Translate(spatial.P3(1, 2, 3))
	if !pt3Near(p.Points[0], spatial.P3(1, 2, 3)) {
		t.Errorf("translated origin = %v, want (1, 2, 3)", p.Points[0])
	}

	p = tetra().RotateZ(90)
	if !pt3Near(p.Points[1], spatial.P3(0, 1, 0)) {
		t.Errorf("rotated point = %v, want (0, 1, 0)", p.Points[1])
	}

	p = tetra().Apply(spatial.Translation(spatial.P3(0, 0, 5)))
	if !pt3Near(p.Points[3], spatial.P3(0, 0, 6)) {
		t.Errorf("matrix-moved point = %v, want (0, 0, 6)", p.Points[3])
	}

	p = tetra().RotateX(90).RotateY(-90).Translate(spatial.P3(1, 0, 0))
	if !p.Watertight() {
		t.Error("mutators broke the mesh topology")
	}
}
