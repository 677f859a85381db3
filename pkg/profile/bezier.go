package profile

import "github.com/chazu/treen/pkg/spatial"

// QuadraticBezier samples a quadratic bezier curve into segments+1 points
// including both endpoints.
func QuadraticBezier(start, control, end spatial.Pt2, segments int) ([]spatial.Pt2, error) {
	if segments < 1 {
		return nil, invalidf("bezier", "segments", "segments is %d, need at least 1", segments)
	}
	delta := 1 / float64(segments)
	points := make([]spatial.Pt2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) * delta
		u := 1 - t
		p := start.Mul(u * u).
			Add(control.Mul(2 * t * u)).
			Add(end.Mul(t * t))
		points = append(points, p)
	}
	return points, nil
}

// CubicBezier samples a cubic bezier curve into segments+1 points including
// both endpoints.
func CubicBezier(start, control1, control2, end spatial.Pt2, segments int) ([]spatial.Pt2, error) {
	if segments < 1 {
		return nil, invalidf("bezier", "segments", "segments is %d, need at least 1", segments)
	}
	delta := 1 / float64(segments)
	points := make([]spatial.Pt2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) * delta
		u := 1 - t
		p := start.Mul(u * u * u).
			Add(control1.Mul(3 * t * u * u)).
			Add(control2.Mul(3 * t * t * u)).
			Add(end.Mul(t * t * t))
		points = append(points, p)
	}
	return points, nil
}

// QuadraticBezier2D is a quadratic bezier curve in the XY plane.
type QuadraticBezier2D struct {
	Start    spatial.Pt2
	Control  spatial.Pt2
	End      spatial.Pt2
	Segments int
}

// Points samples the curve.
func (b QuadraticBezier2D) Points() ([]spatial.Pt2, error) {
	return QuadraticBezier(b.Start, b.Control, b.End, b.Segments)
}

// CubicBezier2D is a cubic bezier curve in the XY plane.
type CubicBezier2D struct {
	Start    spatial.Pt2
	Control1 spatial.Pt2
	Control2 spatial.Pt2
	End      spatial.Pt2
	Segments int
}

// Points samples the curve.
func (b CubicBezier2D) Points() ([]spatial.Pt2, error) {
	return CubicBezier(b.Start, b.Control1, b.Control2, b.End, b.Segments)
}

// CubicBezierChain2D strings cubic bezier curves end to end. Each added
// curve starts where the last one ended, with its first control point placed
// on the outgoing tangent so the joint stays smooth.
type CubicBezierChain2D struct {
	curves []CubicBezier2D
	closed bool
}

// NewCubicBezierChain2D starts a chain with one explicit curve.
func NewCubicBezierChain2D(start, control1, control2, end spatial.Pt2, segments int) (*CubicBezierChain2D, error) {
	if segments < 1 {
		return nil, invalidf("bezier_chain", "segments", "segments is %d, need at least 1", segments)
	}
	return &CubicBezierChain2D{
		curves: []CubicBezier2D{{Start: start, Control1: control1, Control2: control2, End: end, Segments: segments}},
	}, nil
}

// Add extends the chain to end. The new curve's first control point sits
// control1Length along the previous curve's exit tangent; control2 is
// explicit.
func (c *CubicBezierChain2D) Add(control1Length float64, control2, end spatial.Pt2, segments int) error {
	if segments < 1 {
		return invalidf("bezier_chain", "segments", "segments is %d, need at least 1", segments)
	}
	last := c.curves[len(c.curves)-1]
	dir, err := last.End.Sub(last.Control2).Normalized()
	if err != nil {
		return err
	}
	c.curves = append(c.curves, CubicBezier2D{
		Start:    last.End,
		Control1: last.End.Add(dir.Mul(control1Length)),
		Control2: control2,
		End:      end,
		Segments: segments,
	})
	return nil
}

// Close joins the chain back to its starting point and re-aims the first
// curve's control point along the closing tangent, so the seam is as smooth
// as every other joint.
func (c *CubicBezierChain2D) Close(control1Length float64, control2 spatial.Pt2, startControl1Length float64, segments int) error {
	if err := c.Add(control1Length, control2, c.curves[0].Start, segments); err != nil {
		return err
	}
	last := c.curves[len(c.curves)-1]
	dir, err := last.End.Sub(last.Control2).Normalized()
	if err != nil {
		return err
	}
	c.curves[0].Control1 = last.End.Add(dir.Mul(startControl1Length))
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *CubicBezierChain2D) Closed() bool {
	return c.closed
}

// Points samples every curve, dropping duplicate joint points. A closed
// chain also drops the final point, which coincides with the first.
func (c *CubicBezierChain2D) Points() []spatial.Pt2 {
	var points []spatial.Pt2
	for i, curve := range c.curves {
		// Curves are validated on entry, sampling cannot fail.
		pts, err := curve.Points()
		if err != nil {
			continue
		}
		if i > 0 {
			pts = pts[1:]
		}
		points = append(points, pts...)
	}
	if c.closed && len(points) > 0 {
		points = points[:len(points)-1]
	}
	return points
}
