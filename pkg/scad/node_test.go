package scad

import (
	"errors"
	"testing"

	"github.com/chazu/treen/pkg/spatial"
)

func TestConstructorValidation(t *testing.T) {
	badText := DefaultText("x")
	badText.HAlign = "middle"
	badDir := DefaultText("x")
	badDir.Direction = "up"

	tests := []struct {
		name  string
		build func() (*Node, error)
		field string
	}{
		{"negative sphere", func() (*Node, error) { return Sphere(-1) }, "r"},
		{"negative circle", func() (*Node, error) { return Circle(-0.1) }, "r"},
		{"negative square", func() (*Node, error) { return Square(spatial.P2(-1, 1), false) }, "size"},
		{"negative cube", func() (*Node, error) { return Cube(spatial.P3(1, -2, 1), false) }, "size"},
		{"negative cylinder height", func() (*Node, error) { return Cylinder(-1, 1, 1, false) }, "h"},
		{"negative cylinder radius", func() (*Node, error) { return Cylinder(1, -1, 1, false) }, "r"},
		{"short polygon", func() (*Node, error) { return Polygon([]spatial.Pt2{{}, {X: 1}}) }, "points"},
		{"empty paths", func() (*Node, error) { return PolygonPaths([]spatial.Pt2{{}, {X: 1}, {Y: 1}}, nil, 1) }, "paths"},
		{"path out of range", func() (*Node, error) {
			return PolygonPaths([]spatial.Pt2{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1, 3}}, 1)
		}, "paths"},
		{"short path", func() (*Node, error) {
			return PolygonPaths([]spatial.Pt2{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1}}, 1)
		}, "paths"},
		{"short face", func() (*Node, error) {
			return Polyhedron([]spatial.Pt3{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1}}, 1)
		}, "faces"},
		{"face out of range", func() (*Node, error) {
			return Polyhedron([]spatial.Pt3{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1, 5}}, 1)
		}, "faces"},
		{"face negative index", func() (*Node, error) {
			return Polyhedron([]spatial.Pt3{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1, -1}}, 1)
		}, "faces"},
		{"zero text size", func() (*Node, error) {
			d := DefaultText("x")
			d.Size = 0
			return TextWith(d)
		}, "size"},
		{"bad halign", func() (*Node, error) { return TextWith(badText) }, "halign"},
		{"bad direction", func() (*Node, error) { return TextWith(badDir) }, "direction"},
		{"empty import", func() (*Node, error) { return Import("", 1) }, "file"},
		{"empty surface", func() (*Node, error) { return Surface("", false, false, 1) }, "file"},
		{"zero extrude height", func() (*Node, error) {
			return LinearExtrude(0, false, 1, 0, spatial.P2(1, 1))
		}, "height"},
		{"negative extrude scale", func() (*Node, error) {
			return LinearExtrude(1, false, 1, 0, spatial.P2(-1, 1))
		}, "scale"},
		{"zero revolve angle", func() (*Node, error) { return RotateExtrude(0, 1) }, "angle"},
		{"overfull revolve angle", func() (*Node, error) { return RotateExtrude(361, 1) }, "angle"},
		{"color component range", func() (*Node, error) { return ColorRGBA(1.5, 0, 0, 1) }, "c"},
		{"unknown color name", func() (*Node, error) { return ColorName("Browns") }, "name"},
		{"bad hex color", func() (*Node, error) { return ColorHex("ff8800") }, "hex"},
		{"short hex color", func() (*Node, error) { return ColorHex("#ff88") }, "hex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build()
			if err == nil {
				t.Fatalf("expected error, got node %v", n)
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
			if ve.Severity != SeverityError {
				t.Errorf("severity = %v, want %v", ve.Severity, SeverityError)
			}
		})
	}
}

func TestZeroSizedShapesAllowed(t *testing.T) {
	if _, err := Sphere(0); err != nil {
		t.Errorf("zero sphere rejected: %v", err)
	}
	if _, err := Cylinder(5, 2, 0, false); err != nil {
		t.Errorf("cone with zero top radius rejected: %v", err)
	}
	if _, err := Cube(spatial.P3(0, 0, 0), true); err != nil {
		t.Errorf("zero cube rejected: %v", err)
	}
}

func TestValidationErrorText(t *testing.T) {
	_, err := Sphere(-1)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "[error] sphere r: radius is -1.0000, must be non-negative"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestAddKeepsOrder(t *testing.T) {
	a := mustNode(t)(Cube(spatial.P3(1, 1, 1), false))
	b := mustNode(t)(Sphere(1))
	c := mustNode(t)(Cylinder(1, 1, 1, false))
	root := Difference()
	root.Add(a).Add(b, c)

	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(root.Children))
	}
	if root.Children[0] != a || root.Children[1] != b || root.Children[2] != c {
		t.Error("children out of order")
	}
}

func TestFacetSettersIgnoreUnsupportedOps(t *testing.T) {
	n := Translate(spatial.P3(1, 0, 0))
	n.Fn(32).FacetAngle(4).FacetSize(0.5)
	want := "translate(v=[1, 0, 0]);\n"
	if got := n.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}

func TestAlphaOnlyAppliesToNamedAndHexColors(t *testing.T) {
	rgba := mustNode(t)(ColorRGBA(1, 0, 0, 1))
	rgba.Alpha(0.5)
	want := "color(c=[1, 0, 0, 1]);\n"
	if got := rgba.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}

func TestColorNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"peru", "Peru", "PERU"} {
		n, err := ColorName(name)
		if err != nil {
			t.Fatalf("ColorName(%q) returned error: %v", name, err)
		}
		if got, want := n.Script(DefaultFormat()), `color("`+name+`");`+"\n"; got != want {
			t.Errorf("script = %q, want %q", got, want)
		}
	}
}
