package scad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/treen/pkg/spatial"
)

// FormatOptions controls script layout. The zero value is usable and means
// the defaults: two-space indentation and eight decimal places.
type FormatOptions struct {
	// Indent is one level of block indentation.
	Indent string
	// Precision is the number of fixed decimal places a float is written
	// with before trailing zeros are trimmed. Values smaller than the
	// precision therefore round; 0.123456789 at the default precision
	// emits as 0.12345679.
	Precision int
}

// DefaultFormat returns the standard layout: two-space indent, eight decimal
// places.
func DefaultFormat() FormatOptions {
	return FormatOptions{Indent: "  ", Precision: 8}
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.Indent == "" {
		o.Indent = "  "
	}
	if o.Precision <= 0 {
		o.Precision = 8
	}
	return o
}

// Script serializes the subtree rooted at n. Output is a pure function of
// the tree and options: the same tree always yields identical bytes. Leaf
// statements end with ";", statements with children open a block; a block
// statement without children still emits a complete "op();" line.
func (n *Node) Script(opts FormatOptions) string {
	w := &writer{opts: opts.withDefaults()}
	w.node(n, 0)
	return w.sb.String()
}

func (n *Node) String() string {
	return n.Script(DefaultFormat())
}

type writer struct {
	sb   strings.Builder
	opts FormatOptions
}

func (w *writer) node(n *Node, depth int) {
	for i := 0; i < depth; i++ {
		w.sb.WriteString(w.opts.Indent)
	}
	w.sb.WriteString(n.Mod.String())
	w.sb.WriteString(w.statement(n.Data))
	if len(n.Children) == 0 {
		w.sb.WriteString(";\n")
		return
	}
	w.sb.WriteString(" {\n")
	for _, c := range n.Children {
		w.node(c, depth+1)
	}
	for i := 0; i < depth; i++ {
		w.sb.WriteString(w.opts.Indent)
	}
	w.sb.WriteString("}\n")
}

// statement renders one payload without modifier, children or terminator.
func (w *writer) statement(d OpData) string {
	switch d := d.(type) {
	case CircleData:
		return fmt.Sprintf("circle(r=%s%s)", w.f(d.R), w.facets(d.FA, d.FS, d.FN))
	case SquareData:
		return fmt.Sprintf("square(size=%s, center=%t)", w.pt2(d.Size), d.Center)
	case PolygonData:
		if d.Paths == nil {
			return fmt.Sprintf("polygon(points=%s)", w.pt2s(d.Points))
		}
		return fmt.Sprintf("polygon(points=%s, paths=%s, convexity=%d)", w.pt2s(d.Points), w.indexLists(d.Paths), d.Convexity)
	case TextData:
		var fn string
		if d.FN > 0 {
			fn = fmt.Sprintf(", $fn=%d", d.FN)
		}
		return fmt.Sprintf(
			"text(text=%s, size=%s, font=%s, halign=%q, valign=%q, spacing=%s, direction=%q, language=%q, script=%q%s)",
			strconv.Quote(d.Text), w.f(d.Size), strconv.Quote(d.Font), d.HAlign, d.VAlign,
			w.f(d.Spacing), d.Direction, d.Language, d.Script, fn)
	case SphereData:
		return fmt.Sprintf("sphere(r=%s%s)", w.f(d.R), w.facets(d.FA, d.FS, d.FN))
	case CubeData:
		return fmt.Sprintf("cube(size=%s, center=%t)", w.pt3(d.Size), d.Center)
	case CylinderData:
		return fmt.Sprintf("cylinder(h=%s, r1=%s, r2=%s, center=%t%s)",
			w.f(d.H), w.f(d.R1), w.f(d.R2), d.Center, w.facets(d.FA, d.FS, d.FN))
	case PolyhedronData:
		return fmt.Sprintf("polyhedron(points=%s, faces=%s, convexity=%d)",
			w.pt3s(d.Points), w.indexLists(d.Faces), d.Convexity)
	case ImportData:
		return fmt.Sprintf("import(%s, convexity=%d)", strconv.Quote(d.File), d.Convexity)
	case SurfaceData:
		return fmt.Sprintf("surface(file=%s, center=%t, invert=%t, convexity=%d)",
			strconv.Quote(d.File), d.Center, d.Invert, d.Convexity)
	case OffsetData:
		if d.UseDelta {
			return fmt.Sprintf("offset(delta=%s, chamfer=%t)", w.f(d.Delta), d.Chamfer)
		}
		return fmt.Sprintf("offset(r=%s)", w.f(d.R))
	case ProjectionData:
		return fmt.Sprintf("projection(cut=%t)", d.Cut)
	case LinearExtrudeData:
		var opt string
		if d.Slices > 0 {
			opt += fmt.Sprintf(", slices=%d", d.Slices)
		}
		if d.FN > 0 {
			opt += fmt.Sprintf(", $fn=%d", d.FN)
		}
		return fmt.Sprintf("linear_extrude(height=%s, center=%t, convexity=%d, twist=%s, scale=%s%s)",
			w.f(d.Height), d.Center, d.Convexity, w.f(d.Twist), w.pt2(d.Scale), opt)
	case RotateExtrudeData:
		return fmt.Sprintf("rotate_extrude(angle=%s, convexity=%d%s)",
			w.f(d.Angle), d.Convexity, w.facets(d.FA, d.FS, d.FN))
	case UnionData:
		return "union()"
	case DifferenceData:
		return "difference()"
	case IntersectionData:
		return "intersection()"
	case HullData:
		return "hull()"
	case MinkowskiData:
		return fmt.Sprintf("minkowski(convexity=%d)", d.Convexity)
	case TranslateData:
		return fmt.Sprintf("translate(v=%s)", w.pt3(d.V))
	case RotateData:
		switch {
		case d.Angles != nil:
			return fmt.Sprintf("rotate(a=%s)", w.pt3(*d.Angles))
		case d.Axis != nil:
			return fmt.Sprintf("rotate(a=%s, v=%s)", w.f(d.Angle), w.pt3(*d.Axis))
		default:
			return fmt.Sprintf("rotate(a=%s)", w.f(d.Angle))
		}
	case ScaleData:
		return fmt.Sprintf("scale(v=%s)", w.pt3(d.V))
	case ResizeData:
		auto := strconv.FormatBool(d.Auto)
		if d.AutoXYZ != nil {
			auto = fmt.Sprintf("[%t, %t, %t]", d.AutoXYZ[0], d.AutoXYZ[1], d.AutoXYZ[2])
		}
		return fmt.Sprintf("resize(newsize=%s, auto=%s, convexity=%d)", w.pt3(d.NewSize), auto, d.Convexity)
	case MirrorData:
		return fmt.Sprintf("mirror(v=%s)", w.pt3(d.V))
	case MultMatrixData:
		return fmt.Sprintf("multmatrix(m=%s)", w.mat(d.M))
	case ColorData:
		switch {
		case d.RGBA != nil:
			return fmt.Sprintf("color(c=[%s, %s, %s, %s])",
				w.f(d.RGBA[0]), w.f(d.RGBA[1]), w.f(d.RGBA[2]), w.f(d.RGBA[3]))
		case d.Hex != "":
			if d.Alpha != nil {
				return fmt.Sprintf("color(%q, alpha=%s)", d.Hex, w.f(*d.Alpha))
			}
			return fmt.Sprintf("color(%q)", d.Hex)
		default:
			if d.Alpha != nil {
				return fmt.Sprintf("color(%q, alpha=%s)", d.Name, w.f(*d.Alpha))
			}
			return fmt.Sprintf("color(%q)", d.Name)
		}
	default:
		panic(fmt.Sprintf("scad: unknown op payload %T", d))
	}
}

// facets renders the optional $fa/$fs/$fn suffix carried by the round
// primitives, in that order, skipping unset values.
func (w *writer) facets(fa, fs float64, fn int) string {
	var sb strings.Builder
	if fa > 0 {
		sb.WriteString(", $fa=")
		sb.WriteString(w.f(fa))
	}
	if fs > 0 {
		sb.WriteString(", $fs=")
		sb.WriteString(w.f(fs))
	}
	if fn > 0 {
		sb.WriteString(", $fn=")
		sb.WriteString(strconv.Itoa(fn))
	}
	return sb.String()
}

// f formats a float with fixed precision, trailing zeros trimmed and
// negative zero normalized.
func (w *writer) f(v float64) string {
	s := strconv.FormatFloat(v, 'f', w.opts.Precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (w *writer) pt2(p spatial.Pt2) string {
	return fmt.Sprintf("[%s, %s]", w.f(p.X), w.f(p.Y))
}

func (w *writer) pt3(p spatial.Pt3) string {
	return fmt.Sprintf("[%s, %s, %s]", w.f(p.X), w.f(p.Y), w.f(p.Z))
}

func (w *writer) pt2s(ps []spatial.Pt2) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.pt2(p))
	}
	sb.WriteString("]")
	return sb.String()
}

func (w *writer) pt3s(ps []spatial.Pt3) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.pt3(p))
	}
	sb.WriteString("]")
	return sb.String()
}

func (w *writer) indexLists(lists [][]int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, list := range lists {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j, idx := range list {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(idx))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

// mat renders a matrix in row-major nested-list form.
func (w *writer) mat(m spatial.Mt4) string {
	var sb strings.Builder
	sb.WriteString("[")
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for c := 0; c < 4; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(w.f(m.At(r, c)))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
