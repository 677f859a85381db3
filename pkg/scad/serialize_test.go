package scad

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/treen/pkg/spatial"
)

func mustNode(t *testing.T) func(n *Node, err error) *Node {
	return func(n *Node, err error) *Node {
		t.Helper()
		if err != nil {
			t.Fatalf("building node: %v", err)
		}
		return n
	}
}

func TestUnionOfCubeAndMovedSphere(t *testing.T) {
	cube := mustNode(t)(Cube(spatial.P3(1, 1, 1), false))
	sphere := mustNode(t)(Sphere(0.5))
	root := Union(cube, Translate(spatial.P3(0.5, 0, 0), sphere))

	want := "union() {\n" +
		"  cube(size=[1, 1, 1], center=false);\n" +
		"  translate(v=[0.5, 0, 0]) {\n" +
		"    sphere(r=0.5);\n" +
		"  }\n" +
		"}\n"
	if got := root.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}

func TestEmptyBooleansSerializeAsStatements(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"union", Union(), "union();\n"},
		{"difference", Difference(), "difference();\n"},
		{"intersection", Intersection(), "intersection();\n"},
		{"hull", Hull(), "hull();\n"},
		{"minkowski", Minkowski(1), "minkowski(convexity=1);\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Script(DefaultFormat()); got != tt.want {
				t.Errorf("script = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScriptDeterministic(t *testing.T) {
	cyl := mustNode(t)(Cylinder(10, 2, 1.5, true))
	root := Difference(
		Union(
			mustNode(t)(Cube(spatial.P3(4, 4, 4), true)),
			Translate(spatial.P3(0, 0, 2), cyl),
		),
		mustNode(t)(Sphere(1.25)),
	)
	first := root.Script(DefaultFormat())
	for i := 0; i < 10; i++ {
		if got := root.Script(DefaultFormat()); got != first {
			t.Fatalf("serialization %d differs from first", i)
		}
	}
	if first != root.String() {
		t.Error("String() differs from Script(DefaultFormat())")
	}
}

func TestFloatFormatting(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1, 8, "1"},
		{1.5, 8, "1.5"},
		{-1.5, 8, "-1.5"},
		{0.5, 8, "0.5"},
		{1.00000001, 8, "1.00000001"},
		{0.123456789, 8, "0.12345679"},
		{0.123456789, 2, "0.12"},
		{10.100, 8, "10.1"},
		{1e-12, 8, "0"},
		{-1e-12, 8, "0"},
		{1234567, 8, "1234567"},
	}
	for _, tt := range tests {
		w := &writer{opts: FormatOptions{Indent: "  ", Precision: tt.prec}}
		if got := w.f(tt.v); got != tt.want {
			t.Errorf("f(%v) at precision %d = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestIndentOptions(t *testing.T) {
	sphere := mustNode(t)(Sphere(1))
	root := Union(Union(sphere))

	tab := root.Script(FormatOptions{Indent: "\t", Precision: 8})
	want := "union() {\n\tunion() {\n\t\tsphere(r=1);\n\t}\n}\n"
	if tab != want {
		t.Errorf("tab indent = %q, want %q", tab, want)
	}

	// The zero value falls back to the defaults.
	if got, def := root.Script(FormatOptions{}), root.Script(DefaultFormat()); got != def {
		t.Errorf("zero options = %q, default options = %q", got, def)
	}
}

func TestStatementForms(t *testing.T) {
	up := spatial.P3(0, 0, 1)
	alpha := mustNode(t)(ColorName("Peru"))
	alpha.Alpha(0.5)
	hex := mustNode(t)(ColorHex("#ff8800"))
	rgba := mustNode(t)(ColorRGBA(1, 0.5, 0.25, 1))
	poly := mustNode(t)(Polygon([]spatial.Pt2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}))
	paths := mustNode(t)(PolygonPaths(
		[]spatial.Pt2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
		[][]int{{0, 1, 2, 3}},
		2,
	))
	ph := mustNode(t)(Polyhedron(
		[]spatial.Pt3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}},
		[][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}},
		1,
	))
	le := mustNode(t)(LinearExtrude(5, false, 2, 90, spatial.P2(1, 1)))
	re := mustNode(t)(RotateExtrude(270, 4))
	txt := mustNode(t)(Text("Treen"))
	imp := mustNode(t)(Import("gear.stl", 3))
	srf := mustNode(t)(Surface("relief.png", true, false, 5))

	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"circle", mustNode(t)(Circle(3)), "circle(r=3);\n"},
		{"circle fn", mustNode(t)(Circle(3)).Fn(64), "circle(r=3, $fn=64);\n"},
		{"square", mustNode(t)(Square(spatial.P2(2, 3), true)), "square(size=[2, 3], center=true);\n"},
		{"polygon", poly, "polygon(points=[[0, 0], [1, 0], [1, 1]]);\n"},
		{"polygon paths", paths, "polygon(points=[[0, 0], [2, 0], [2, 2], [0, 2]], paths=[[0, 1, 2, 3]], convexity=2);\n"},
		{"text", txt, `text(text="Treen", size=10, font="Liberation Sans", halign="left", valign="baseline", spacing=1, direction="ltr", language="en", script="latin");` + "\n"},
		{"sphere facets", mustNode(t)(Sphere(2)).FacetAngle(6).FacetSize(0.4).Fn(32), "sphere(r=2, $fa=6, $fs=0.4, $fn=32);\n"},
		{"cylinder", mustNode(t)(Cylinder(10, 2, 2, false)), "cylinder(h=10, r1=2, r2=2, center=false);\n"},
		{"polyhedron", ph, "polyhedron(points=[[0, 0, 0], [1, 0, 0], [0, 1, 0], [0, 0, 1]], faces=[[0, 2, 1], [0, 1, 3], [1, 2, 3], [2, 0, 3]], convexity=1);\n"},
		{"import", imp, `import("gear.stl", convexity=3);` + "\n"},
		{"surface", srf, `surface(file="relief.png", center=true, invert=false, convexity=5);` + "\n"},
		{"offset r", Offset(1.5), "offset(r=1.5);\n"},
		{"offset delta", OffsetDelta(-0.5, true), "offset(delta=-0.5, chamfer=true);\n"},
		{"projection", Projection(true), "projection(cut=true);\n"},
		{"linear extrude", le, "linear_extrude(height=5, center=false, convexity=2, twist=90, scale=[1, 1]);\n"},
		{"rotate extrude", re, "rotate_extrude(angle=270, convexity=4);\n"},
		{"translate", Translate(spatial.P3(1, 2, 3)), "translate(v=[1, 2, 3]);\n"},
		{"rotate z", Rotate(45), "rotate(a=45);\n"},
		{"rotate axis", RotateAxis(45, up), "rotate(a=45, v=[0, 0, 1]);\n"},
		{"rotate euler", RotateXYZ(spatial.P3(90, 0, 45)), "rotate(a=[90, 0, 45]);\n"},
		{"scale", Scale(spatial.P3(2, 1, 1)), "scale(v=[2, 1, 1]);\n"},
		{"resize", Resize(spatial.P3(10, 0, 0), true, 1), "resize(newsize=[10, 0, 0], auto=true, convexity=1);\n"},
		{"resize xyz", ResizeXYZ(spatial.P3(10, 0, 0), [3]bool{true, false, true}, 1), "resize(newsize=[10, 0, 0], auto=[true, false, true], convexity=1);\n"},
		{"mirror", Mirror(spatial.P3(1, 0, 0)), "mirror(v=[1, 0, 0]);\n"},
		{"color name alpha", alpha, `color("Peru", alpha=0.5);` + "\n"},
		{"color hex", hex, `color("#ff8800");` + "\n"},
		{"color rgba", rgba, "color(c=[1, 0.5, 0.25, 1]);\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Script(DefaultFormat()); got != tt.want {
				t.Errorf("script = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMultMatrixRows(t *testing.T) {
	n := MultMatrix(spatial.Translation(spatial.P3(1, 2, 3)))
	want := "multmatrix(m=[[1, 0, 0, 1], [0, 1, 0, 2], [0, 0, 1, 3], [0, 0, 0, 1]]);\n"
	if got := n.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}

func TestModifierPrefixes(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Node) *Node
		want string
	}{
		{"disable", (*Node).Disable, "*sphere(r=1);\n"},
		{"show only", (*Node).ShowOnly, "!sphere(r=1);\n"},
		{"highlight", (*Node).Highlight, "#sphere(r=1);\n"},
		{"background", (*Node).Background, "%sphere(r=1);\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustNode(t)(Sphere(1))
			if got := tt.mod(n).Script(DefaultFormat()); got != tt.want {
				t.Errorf("script = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformedPicksStatement(t *testing.T) {
	rot, err := spatial.Rotate(spatial.P3(0, 0, 1), 90)
	if err != nil {
		t.Fatal(err)
	}
	mir, err := spatial.Mirror(spatial.P3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		tr   spatial.Transform
		want string
	}{
		{"translate", spatial.Translate(spatial.P3(1, 0, 0)), "translate(v=[1, 0, 0]);\n"},
		{"rotate axis", rot, "rotate(a=90, v=[0, 0, 1]);\n"},
		{"rotate euler", spatial.RotateXYZ(spatial.P3(10, 20, 30)), "rotate(a=[10, 20, 30]);\n"},
		{"scale", spatial.Scale(spatial.P3(2, 2, 2)), "scale(v=[2, 2, 2]);\n"},
		{"mirror", mir, "mirror(v=[0, 1, 0]);\n"},
		{"matrix", spatial.Matrix(spatial.Ident4()), "multmatrix(m=[[1, 0, 0, 0], [0, 1, 0, 0], [0, 0, 1, 0], [0, 0, 0, 1]]);\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transformed(tt.tr).Script(DefaultFormat()); got != tt.want {
				t.Errorf("script = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileHeaderAndSave(t *testing.T) {
	f := NewFile(Union(mustNode(t)(Sphere(1))))
	f.FA = 2
	f.FS = 0.25
	f.FN = 64

	want := "$fa=2;\n$fs=0.25;\n$fn=64;\nunion() {\n  sphere(r=1);\n}\n"
	if got := f.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}

	path := filepath.Join(t.TempDir(), "out.scad")
	if err := f.Save(path, DefaultFormat()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("saved file = %q, want %q", string(data), want)
	}
}

func TestFileWithoutHeader(t *testing.T) {
	f := NewFile(mustNode(t)(Cube(spatial.P3(1, 2, 3), false)))
	want := "cube(size=[1, 2, 3], center=false);\n"
	if got := f.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}

func TestSaveBadPath(t *testing.T) {
	f := NewFile(Union())
	err := f.Save(filepath.Join(t.TempDir(), "missing", "out.scad"), DefaultFormat())
	if err == nil {
		t.Fatal("expected error saving into missing directory")
	}
	if !strings.Contains(err.Error(), "writing script") {
		t.Errorf("error = %q, want write context", err)
	}
}

func TestDeepNestingIndent(t *testing.T) {
	inner := mustNode(t)(Sphere(1))
	root := Translate(spatial.P3(1, 0, 0),
		Rotate(45,
			Scale(spatial.P3(2, 2, 2), inner)))
	want := "translate(v=[1, 0, 0]) {\n" +
		"  rotate(a=45) {\n" +
		"    scale(v=[2, 2, 2]) {\n" +
		"      sphere(r=1);\n" +
		"    }\n" +
		"  }\n" +
		"}\n"
	if got := root.Script(DefaultFormat()); got != want {
		t.Errorf("script = %q, want %q", got, want)
	}
}
