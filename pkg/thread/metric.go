package thread

import (
	"math"

	"github.com/chazu/treen/pkg/profile"
	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/solid"
	"github.com/chazu/treen/pkg/spatial"
)

const (
	// coreOverlap widens the core cylinder a hair past the tooth roots so
	// the union never meets the tooth tube face to face.
	coreOverlap = 0.0001

	// boreOverrun is how far a nut's tap runs past either face of the
	// blank so the difference cuts clean through.
	boreOverrun = 10.0
)

// Height returns the ISO thread height H for a pitch, the depth of the
// sharp 60 degree V before truncation.
func Height(pitch float64) float64 {
	return math.Sqrt(3) / 2 * pitch
}

// MinorDiameter derives the minor diameter of an ISO thread from its major
// diameter and pitch, dMaj - 2*(5/8)*H.
func MinorDiameter(dMaj, pitch float64) float64 {
	return dMaj - 2*5.0/8.0*Height(pitch)
}

// ISOTooth returns the four-point ISO 60 degree tooth cross section in the
// radius/height plane, wound clockwise: up the root, out the top flank,
// down the crest, back in along the bottom flank.
func ISOTooth(dMin, dMaj, pitch float64) []spatial.Pt2 {
	return isoTooth(dMin/2, dMaj/2, pitch, 1)
}

// isoTooth builds the tooth with the crest pulled toward the root radius
// by the taper factor t in (0, 1]; t=1 is the full profile.
func isoTooth(rMin, rMaj, pitch, t float64) []spatial.Pt2 {
	crest := rMin + (rMaj-rMin)*t
	return []spatial.Pt2{
		{X: rMin, Y: 0},
		{X: rMin, Y: 3.0 / 4.0 * pitch},
		{X: crest, Y: 7.0 / 16.0 * pitch},
		{X: crest, Y: 5.0 / 16.0 * pitch},
	}
}

// ThreadedCylinder builds a thread as a helical tooth polyhedron unioned
// with a core cylinder of the minor diameter, running from z=0 to length.
// leadIn and leadOut give the spans, in degrees of rotation, over which
// the crest tapers up from and back down to the root at either end.
func ThreadedCylinder(dMin, dMaj, pitch, length float64, segments int, leadIn, leadOut float64, leftHand, center bool) (*scad.Node, error) {
	mesh, err := threadedMesh(dMin, dMaj, pitch, length, segments, leadIn, leadOut)
	if err != nil {
		return nil, err
	}
	if leftHand {
		mirrorAcrossXZ(mesh)
	}
	teeth, err := mesh.Node(int(length/pitch) + 1)
	if err != nil {
		return nil, err
	}
	core, err := scad.Cylinder(length, dMin/2+coreOverlap, dMin/2+coreOverlap, false)
	if err != nil {
		return nil, err
	}
	result := scad.Union(teeth, core.Fn(segments))
	if center {
		result = scad.Translate(spatial.P3(0, 0, -length/2), result)
	}
	return result, nil
}

// threadedMesh sweeps the ISO tooth from z=0 through the usable thread
// length, tapering the crest over the lead-in and lead-out spans. The
// sweep is right-handed; the caller mirrors it for left-hand threads.
func threadedMesh(dMin, dMaj, pitch, length float64, segments int, leadIn, leadOut float64) (*solid.Polyhedron, error) {
	if pitch <= 0 {
		return nil, invalidf("threaded cylinder", "pitch", "pitch is %.4f, must be positive", pitch)
	}
	if dMin <= 0 {
		return nil, invalidf("threaded cylinder", "dMin", "minor diameter is %.4f, must be positive", dMin)
	}
	if dMaj <= dMin {
		return nil, invalidf("threaded cylinder", "dMaj", "major diameter is %.4f, must exceed the minor diameter %.4f", dMaj, dMin)
	}
	if segments < 3 {
		return nil, invalidf("threaded cylinder", "segments", "have %d segments, need at least 3", segments)
	}
	if leadIn < 0 {
		return nil, invalidf("threaded cylinder", "leadIn", "lead-in is %.4f degrees, must be non-negative", leadIn)
	}
	if leadOut < 0 {
		return nil, invalidf("threaded cylinder", "leadOut", "lead-out is %.4f degrees, must be non-negative", leadOut)
	}
	threadLength := length - 0.7*pitch
	if threadLength <= 0 {
		return nil, invalidf("threaded cylinder", "length", "length is %.4f, must exceed 0.7*pitch (%.4f)", length, 0.7*pitch)
	}
	steps := int(threadLength / pitch * float64(segments))
	if steps < 1 {
		return nil, invalidf("threaded cylinder", "length", "thread is %.4f long, too short for a single helix step", threadLength)
	}
	nIn := int(math.Round(float64(segments) * leadIn / 360))
	nOut := int(math.Round(float64(segments) * leadOut / 360))
	if nIn+nOut > steps {
		return nil, invalidf("threaded cylinder", "leadIn",
			"lead-in and lead-out need %d helix steps, thread only has %d", nIn+nOut, steps)
	}

	// The taper never collapses the crest all the way to the root, which
	// would degenerate the end caps into a line.
	taper := func(k int) float64 {
		if k < nIn {
			return float64(k+1) / float64(nIn+1)
		}
		if left := steps - k; left < nOut {
			return float64(left+1) / float64(nOut+1)
		}
		return 1
	}

	rMin, rMaj := dMin/2, dMaj/2
	zStep := threadLength / float64(steps)
	stepAngle := 360.0 / float64(segments)
	rings := make([][]spatial.Pt3, 0, steps+1)
	for k := 0; k <= steps; k++ {
		tooth := isoTooth(rMin, rMaj, pitch, taper(k))
		rings = append(rings, profileRing(tooth, stepAngle*float64(k), zStep*float64(k)))
	}
	startCap, err := solid.Triangulate(isoTooth(rMin, rMaj, pitch, taper(0)))
	if err != nil {
		return nil, err
	}
	endCap, err := solid.Triangulate(isoTooth(rMin, rMaj, pitch, taper(steps)))
	if err != nil {
		return nil, err
	}
	return stitchTube(rings, startCap, endCap), nil
}

// ThreadedRod builds a threaded rod for a standard metric designation,
// standing on the XY plane unless centered.
func ThreadedRod(m int, length float64, segments int, leadIn, leadOut float64, leftHand, center bool) (*scad.Node, error) {
	size, err := MTable(m)
	if err != nil {
		return nil, err
	}
	dMaj := size.ExternalMajor
	return ThreadedCylinder(MinorDiameter(dMaj, size.Pitch), dMaj, size.Pitch, length, segments, leadIn, leadOut, leftHand, center)
}

// HexBolt builds a hex head bolt: a hexagonal head from z=0 to headHeight
// with the threaded shaft of the given length on top of it. leadOut tapers
// the thread over that many degrees at the free end; chamfered bevels the
// head rims.
func HexBolt(m int, length, headHeight float64, segments int, leadOut float64, chamfered, leftHand, center bool) (*scad.Node, error) {
	size, err := MTable(m)
	if err != nil {
		return nil, err
	}
	if headHeight <= 0 {
		return nil, invalidf("hex bolt", "headHeight", "head height is %.4f, must be positive", headHeight)
	}
	dMaj := size.ExternalMajor
	rod, err := ThreadedCylinder(MinorDiameter(dMaj, size.Pitch), dMaj, size.Pitch, length, segments, 0, leadOut, leftHand, false)
	if err != nil {
		return nil, err
	}
	head, err := hexBlank(size.NutWidth, headHeight)
	if err != nil {
		return nil, err
	}
	if chamfered {
		bevel, err := ExternalCylinderChamfer(size.ChamferSize, 1, hexChamferRadius(size.NutWidth), headHeight, segments, false)
		if err != nil {
			return nil, err
		}
		head = scad.Difference(head, bevel)
	}

	bolt := scad.Union(scad.Translate(spatial.P3(0, 0, headHeight), rod), head)
	if center {
		bolt = scad.Translate(spatial.P3(0, 0, -(headHeight+length)/2), bolt)
	}
	return bolt, nil
}

// Tap builds the negative of an internal thread, for cutting threaded
// holes out of parts. It uses the oversized internal major diameter so a
// matching bolt clears the result.
func Tap(m int, length float64, segments int, leftHand, center bool) (*scad.Node, error) {
	size, err := MTable(m)
	if err != nil {
		return nil, err
	}
	dMaj := size.InternalMajor
	return ThreadedCylinder(MinorDiameter(dMaj, size.Pitch), dMaj, size.Pitch, length, segments, 0, 0, leftHand, center)
}

// HexNut builds a hex nut by cutting a tap through a hexagonal blank.
func HexNut(m int, height float64, segments int, chamfered, leftHand, center bool) (*scad.Node, error) {
	size, err := MTable(m)
	if err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, invalidf("hex nut", "height", "height is %.4f, must be positive", height)
	}
	bore, err := Tap(m, height+2*boreOverrun, segments, leftHand, false)
	if err != nil {
		return nil, err
	}
	blank, err := hexBlank(size.NutWidth, height)
	if err != nil {
		return nil, err
	}

	nut := scad.Difference(blank, scad.Translate(spatial.P3(0, 0, -boreOverrun), bore))
	if chamfered {
		bevel, err := ExternalCylinderChamfer(size.ChamferSize, 1, hexChamferRadius(size.NutWidth), height, segments, false)
		if err != nil {
			return nil, err
		}
		nut = scad.Difference(nut, bevel)
	}
	if center {
		nut = scad.Translate(spatial.P3(0, 0, -height/2), nut)
	}
	return nut, nil
}

// hexBlank extrudes a hexagon of the given width across flats from z=0 to
// the given height.
func hexBlank(width, height float64) (*scad.Node, error) {
	hex, err := profile.CircumscribedPolygon(6, width/2)
	if err != nil {
		return nil, err
	}
	mesh, err := solid.LinearExtrude(hex, height)
	if err != nil {
		return nil, err
	}
	return mesh.Node(2)
}

// hexChamferRadius is where the chamfer cone crosses a hex of the given
// width across flats, between its inscribed and circumscribed circles.
func hexChamferRadius(width float64) float64 {
	return math.Sqrt(0.0625+0.25) * width
}
