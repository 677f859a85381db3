package script

import (
	"fmt"
	"strings"

	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/spatial"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Shape values
// ---------------------------------------------------------------------------

// sexpShape carries a scene node through the interpreter so shapes can be
// bound, passed and nested like any other value.
type sexpShape struct {
	node *scad.Node
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	head := s.node.String()
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	head = strings.TrimSuffix(head, " {")
	head = strings.TrimSuffix(head, ";")
	return "(shape " + head + ")"
}

func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix marks keyword names rewritten by preprocess.
const kwPrefix = "__kw_"

// splitArgs separates a call's arguments into positional values and
// :keyword options. A trailing keyword without a value maps to nil.
func splitArgs(args []zygo.Sexp) (positional []zygo.Sexp, kw map[string]zygo.Sexp) {
	kw = make(map[string]zygo.Sexp)
	for i := 0; i < len(args); {
		if str, ok := args[i].(*zygo.SexpStr); ok && strings.HasPrefix(str.S, kwPrefix) {
			name := str.S[len(kwPrefix):]
			if i+1 < len(args) {
				kw[name] = args[i+1]
				i += 2
			} else {
				kw[name] = zygo.SexpNull
				i++
			}
			continue
		}
		positional = append(positional, args[i])
		i++
	}
	return positional, kw
}

// allowKw rejects options the builtin does not take, so a misspelled
// :center does not silently vanish.
func allowKw(name string, kw map[string]zygo.Sexp, allowed ...string) error {
	for k := range kw {
		known := false
		for _, a := range allowed {
			if k == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%s: unknown option :%s", name, k)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction
// ---------------------------------------------------------------------------

func toFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("want a number, got %s", kindOf(s))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("want an integer, got %s", kindOf(s))
}

func toBool(s zygo.Sexp) (bool, error) {
	if v, ok := s.(*zygo.SexpBool); ok {
		return v.Val, nil
	}
	return false, fmt.Errorf("want true or false, got %s", kindOf(s))
}

func toStr(s zygo.Sexp) (string, error) {
	if v, ok := s.(*zygo.SexpStr); ok && !strings.HasPrefix(v.S, kwPrefix) {
		return v.S, nil
	}
	return "", fmt.Errorf("want a string, got %s", kindOf(s))
}

func toShape(s zygo.Sexp) (*scad.Node, error) {
	if v, ok := s.(*sexpShape); ok {
		return v.node, nil
	}
	return nil, fmt.Errorf("want a shape, got %s", kindOf(s))
}

// toShapes converts a run of child arguments, naming the offender by
// position.
func toShapes(name string, args []zygo.Sexp) ([]*scad.Node, error) {
	nodes := make([]*scad.Node, len(args))
	for i, a := range args {
		n, err := toShape(a)
		if err != nil {
			return nil, fmt.Errorf("%s: child %d: %w", name, i+1, err)
		}
		nodes[i] = n
	}
	return nodes, nil
}

// toElems flattens an array or list literal.
func toElems(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("want an array like [1 2 3], got %s", kindOf(s))
}

func toVec2(s zygo.Sexp) (spatial.Pt2, error) {
	elems, err := toElems(s)
	if err != nil {
		return spatial.Pt2{}, err
	}
	if len(elems) != 2 {
		return spatial.Pt2{}, fmt.Errorf("want 2 components, got %d", len(elems))
	}
	x, err := toFloat(elems[0])
	if err != nil {
		return spatial.Pt2{}, err
	}
	y, err := toFloat(elems[1])
	if err != nil {
		return spatial.Pt2{}, err
	}
	return spatial.P2(x, y), nil
}

func toVec3(s zygo.Sexp) (spatial.Pt3, error) {
	elems, err := toElems(s)
	if err != nil {
		return spatial.Pt3{}, err
	}
	if len(elems) != 3 {
		return spatial.Pt3{}, fmt.Errorf("want 3 components, got %d", len(elems))
	}
	x, err := toFloat(elems[0])
	if err != nil {
		return spatial.Pt3{}, err
	}
	y, err := toFloat(elems[1])
	if err != nil {
		return spatial.Pt3{}, err
	}
	z, err := toFloat(elems[2])
	if err != nil {
		return spatial.Pt3{}, err
	}
	return spatial.P3(x, y, z), nil
}

// toPoints reads an outline written as [[x y] [x y] ...].
func toPoints(s zygo.Sexp) ([]spatial.Pt2, error) {
	elems, err := toElems(s)
	if err != nil {
		return nil, err
	}
	pts := make([]spatial.Pt2, len(elems))
	for i, e := range elems {
		p, err := toVec2(e)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		pts[i] = p
	}
	return pts, nil
}

func kindOf(s zygo.Sexp) string {
	switch v := s.(type) {
	case *sexpShape:
		return "a shape"
	case *zygo.SexpInt:
		return "an integer"
	case *zygo.SexpFloat:
		return "a float"
	case *zygo.SexpStr:
		if strings.HasPrefix(v.S, kwPrefix) {
			return ":" + v.S[len(kwPrefix):]
		}
		return "a string"
	case *zygo.SexpBool:
		return "a bool"
	case *zygo.SexpArray:
		return "an array"
	case *zygo.SexpPair:
		return "a list"
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return "nil"
		}
	}
	return fmt.Sprintf("%T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the shape vocabulary into a fresh interpreter.
// Source must run through preprocess first so :keyword tokens and
// kebab-case names arrive in the form the builtins expect.
func registerBuiltins(env *zygo.Zlisp) {

	// -----------------------------------------------------------------------
	// (sphere 4)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("sphere", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 1 {
			return zygo.SexpNull, fmt.Errorf("sphere: want (sphere radius), got %d arguments", len(pos))
		}
		r, err := toFloat(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: radius: %w", err)
		}
		node, err := scad.Sphere(r)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (cube [10 20 5] :center true)
	// -----------------------------------------------------------------------
	env.AddFunction("cube", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("cube", kw, "center"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 1 {
			return zygo.SexpNull, fmt.Errorf("cube: want (cube [x y z]), got %d arguments", len(pos))
		}
		size, err := toVec3(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cube: size: %w", err)
		}
		center := false
		if v, ok := kw["center"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cube: center: %w", err)
			}
			center = b
		}
		node, err := scad.Cube(size, center)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder 20 4) straight, (cylinder 20 4 2) cone, :center true
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("cylinder", kw, "center"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 2 && len(pos) != 3 {
			return zygo.SexpNull, fmt.Errorf("cylinder: want (cylinder height radius) or (cylinder height r1 r2), got %d arguments", len(pos))
		}
		h, err := toFloat(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: height: %w", err)
		}
		r1, err := toFloat(pos[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: radius: %w", err)
		}
		r2 := r1
		if len(pos) == 3 {
			r2, err = toFloat(pos[2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: top radius: %w", err)
			}
		}
		center := false
		if v, ok := kw["center"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: center: %w", err)
			}
			center = b
		}
		node, err := scad.Cylinder(h, r1, r2, center)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (circle 5)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("circle", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 1 {
			return zygo.SexpNull, fmt.Errorf("circle: want (circle radius), got %d arguments", len(pos))
		}
		r, err := toFloat(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: radius: %w", err)
		}
		node, err := scad.Circle(r)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (square [4 5] :center true)
	// -----------------------------------------------------------------------
	env.AddFunction("square", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("square", kw, "center"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 1 {
			return zygo.SexpNull, fmt.Errorf("square: want (square [x y]), got %d arguments", len(pos))
		}
		size, err := toVec2(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("square: size: %w", err)
		}
		center := false
		if v, ok := kw["center"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("square: center: %w", err)
			}
			center = b
		}
		node, err := scad.Square(size, center)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (polygon [[0 0] [10 0] [5 8]])
	// -----------------------------------------------------------------------
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("polygon", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 1 {
			return zygo.SexpNull, fmt.Errorf("polygon: want (polygon [[x y] ...]), got %d arguments", len(pos))
		}
		points, err := toPoints(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: points: %w", err)
		}
		node, err := scad.Polygon(points)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (text "M8" :size 7 :font "Liberation Mono" :halign "center")
	// -----------------------------------------------------------------------
	env.AddFunction("text", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("text", kw, "size", "font", "halign", "valign", "spacing", "direction", "language", "script"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) != 1 {
			return zygo.SexpNull, fmt.Errorf("text: want (text \"string\"), got %d arguments", len(pos))
		}
		s, err := toStr(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("text: string: %w", err)
		}
		d := scad.DefaultText(s)
		if v, ok := kw["size"]; ok {
			f, err := toFloat(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("text: size: %w", err)
			}
			d.Size = f
		}
		if v, ok := kw["spacing"]; ok {
			f, err := toFloat(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("text: spacing: %w", err)
			}
			d.Spacing = f
		}
		for opt, into := range map[string]*string{
			"font":      &d.Font,
			"halign":    &d.HAlign,
			"valign":    &d.VAlign,
			"direction": &d.Direction,
			"language":  &d.Language,
			"script":    &d.Script,
		} {
			if v, ok := kw[opt]; ok {
				s, err := toStr(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("text: %s: %w", opt, err)
				}
				*into = s
			}
		}
		node, err := scad.TextWith(d)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (union a b ...), (difference a b ...), (intersection a b ...),
	// (hull a b ...)
	// -----------------------------------------------------------------------
	env.AddFunction("union", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("union", kw); err != nil {
			return zygo.SexpNull, err
		}
		kids, err := toShapes("union", pos)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Union(kids...)}, nil
	})

	env.AddFunction("difference", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("difference", kw); err != nil {
			return zygo.SexpNull, err
		}
		kids, err := toShapes("difference", pos)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Difference(kids...)}, nil
	})

	env.AddFunction("intersection", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("intersection", kw); err != nil {
			return zygo.SexpNull, err
		}
		kids, err := toShapes("intersection", pos)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Intersection(kids...)}, nil
	})

	env.AddFunction("hull", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("hull", kw); err != nil {
			return zygo.SexpNull, err
		}
		kids, err := toShapes("hull", pos)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Hull(kids...)}, nil
	})

	// -----------------------------------------------------------------------
	// (minkowski a b :convexity 3)
	// -----------------------------------------------------------------------
	env.AddFunction("minkowski", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("minkowski", kw, "convexity"); err != nil {
			return zygo.SexpNull, err
		}
		convexity := 1
		if v, ok := kw["convexity"]; ok {
			c, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("minkowski: convexity: %w", err)
			}
			convexity = c
		}
		kids, err := toShapes("minkowski", pos)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Minkowski(convexity, kids...)}, nil
	})

	// -----------------------------------------------------------------------
	// (translate [0 0 5] shape ...)
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("translate", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) < 1 {
			return zygo.SexpNull, fmt.Errorf("translate: want (translate [x y z] shape ...)")
		}
		v, err := toVec3(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: offset: %w", err)
		}
		kids, err := toShapes("translate", pos[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Translate(v, kids...)}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate 45 shape ...) about +Z, (rotate [90 0 45] shape ...) Euler
	// -----------------------------------------------------------------------
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("rotate", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) < 1 {
			return zygo.SexpNull, fmt.Errorf("rotate: want (rotate degrees shape ...) or (rotate [x y z] shape ...)")
		}
		kids, err := toShapes("rotate", pos[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		switch pos[0].(type) {
		case *zygo.SexpInt, *zygo.SexpFloat:
			deg, err := toFloat(pos[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: degrees: %w", err)
			}
			return &sexpShape{node: scad.Rotate(deg, kids...)}, nil
		default:
			angles, err := toVec3(pos[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: angles: %w", err)
			}
			return &sexpShape{node: scad.RotateXYZ(angles, kids...)}, nil
		}
	})

	// -----------------------------------------------------------------------
	// (scale [2 1 1] shape ...)
	// -----------------------------------------------------------------------
	env.AddFunction("scale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("scale", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) < 1 {
			return zygo.SexpNull, fmt.Errorf("scale: want (scale [x y z] shape ...)")
		}
		v, err := toVec3(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale: factors: %w", err)
		}
		kids, err := toShapes("scale", pos[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Scale(v, kids...)}, nil
	})

	// -----------------------------------------------------------------------
	// (mirror [1 0 0] shape ...)
	// -----------------------------------------------------------------------
	env.AddFunction("mirror", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("mirror", kw); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) < 1 {
			return zygo.SexpNull, fmt.Errorf("mirror: want (mirror [x y z] shape ...)")
		}
		v, err := toVec3(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mirror: normal: %w", err)
		}
		kids, err := toShapes("mirror", pos[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: scad.Mirror(v, kids...)}, nil
	})

	// -----------------------------------------------------------------------
	// (color "red" shape ...), (color "#0af" shape ... :alpha 0.5),
	// (color [1 0 0 0.5] shape ...)
	// -----------------------------------------------------------------------
	env.AddFunction("color", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("color", kw, "alpha"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) < 1 {
			return zygo.SexpNull, fmt.Errorf("color: want (color spec shape ...)")
		}
		kids, err := toShapes("color", pos[1:])
		if err != nil {
			return zygo.SexpNull, err
		}

		if spec, ok := pos[0].(*zygo.SexpStr); ok {
			var node *scad.Node
			var err error
			if strings.HasPrefix(spec.S, "#") {
				node, err = scad.ColorHex(spec.S, kids...)
			} else {
				node, err = scad.ColorName(spec.S, kids...)
			}
			if err != nil {
				return zygo.SexpNull, err
			}
			if v, ok := kw["alpha"]; ok {
				a, err := toFloat(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("color: alpha: %w", err)
				}
				node.Alpha(a)
			}
			return &sexpShape{node: node}, nil
		}

		comps, err := toElems(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("color: components: %w", err)
		}
		if len(comps) != 3 && len(comps) != 4 {
			return zygo.SexpNull, fmt.Errorf("color: want [r g b] or [r g b a], got %d components", len(comps))
		}
		if _, ok := kw["alpha"]; ok {
			return zygo.SexpNull, fmt.Errorf("color: give alpha as the fourth component")
		}
		vals := [4]float64{0, 0, 0, 1}
		for i, c := range comps {
			f, err := toFloat(c)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("color: component %d: %w", i+1, err)
			}
			vals[i] = f
		}
		node, err := scad.ColorRGBA(vals[0], vals[1], vals[2], vals[3], kids...)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (linear-extrude 10 profile :center true :twist 90 :scale [2 2]
	//                 :convexity 10)
	//
	// Registered as "linear_extrude"; the preprocessor rewrites the
	// kebab-case spelling.
	// -----------------------------------------------------------------------
	env.AddFunction("linear_extrude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("linear-extrude", kw, "center", "twist", "scale", "convexity"); err != nil {
			return zygo.SexpNull, err
		}
		if len(pos) < 1 {
			return zygo.SexpNull, fmt.Errorf("linear-extrude: want (linear-extrude height shape ...)")
		}
		height, err := toFloat(pos[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("linear-extrude: height: %w", err)
		}
		kids, err := toShapes("linear-extrude", pos[1:])
		if err != nil {
			return zygo.SexpNull, err
		}
		center := false
		if v, ok := kw["center"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("linear-extrude: center: %w", err)
			}
			center = b
		}
		twist := 0.0
		if v, ok := kw["twist"]; ok {
			f, err := toFloat(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("linear-extrude: twist: %w", err)
			}
			twist = f
		}
		scale := spatial.P2(1, 1)
		if v, ok := kw["scale"]; ok {
			p, err := toVec2(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("linear-extrude: scale: %w", err)
			}
			scale = p
		}
		convexity := 1
		if v, ok := kw["convexity"]; ok {
			c, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("linear-extrude: convexity: %w", err)
			}
			convexity = c
		}
		node, err := scad.LinearExtrude(height, center, convexity, twist, scale, kids...)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate-extrude profile :angle 180 :convexity 2)
	//
	// Registered as "rotate_extrude"; the preprocessor rewrites the
	// kebab-case spelling.
	// -----------------------------------------------------------------------
	env.AddFunction("rotate_extrude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pos, kw := splitArgs(args)
		if err := allowKw("rotate-extrude", kw, "angle", "convexity"); err != nil {
			return zygo.SexpNull, err
		}
		angle := 360.0
		if v, ok := kw["angle"]; ok {
			f, err := toFloat(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate-extrude: angle: %w", err)
			}
			angle = f
		}
		convexity := 1
		if v, ok := kw["convexity"]; ok {
			c, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate-extrude: convexity: %w", err)
			}
			convexity = c
		}
		kids, err := toShapes("rotate-extrude", pos)
		if err != nil {
			return zygo.SexpNull, err
		}
		node, err := scad.RotateExtrude(angle, convexity, kids...)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpShape{node: node}, nil
	})
}
