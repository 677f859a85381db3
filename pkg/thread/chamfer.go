package thread

import (
	"github.com/chazu/treen/pkg/profile"
	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/spatial"
)

// ExternalCircleChamfer revolves a chamfer wedge around a circle of the
// given radius, for cutting a bevel into an outside rim. The wedge runs
// oversize past the rim on the flat sides so the difference leaves no
// sliver.
func ExternalCircleChamfer(size, oversize, radius, degrees float64, segments int) (*scad.Node, error) {
	outline, err := profile.Chamfer(size, oversize)
	if err != nil {
		return nil, err
	}
	wedge, err := scad.Polygon(outline)
	if err != nil {
		return nil, err
	}
	ring, err := scad.RotateExtrude(degrees, 5,
		scad.Translate(spatial.P3(radius+size/2+oversize/2, -oversize, 0),
			scad.Rotate(90, wedge)))
	if err != nil {
		return nil, err
	}
	return ring.Fn(segments), nil
}

// ExternalCylinderChamfer pairs two full-circle chamfers to bevel the
// bottom and top rims of a cylinder of the given radius and height.
func ExternalCylinderChamfer(size, oversize, radius, height float64, segments int, center bool) (*scad.Node, error) {
	bottom, err := ExternalCircleChamfer(size, oversize, radius, 360, segments)
	if err != nil {
		return nil, err
	}
	top, err := ExternalCircleChamfer(size, oversize, radius, 360, segments)
	if err != nil {
		return nil, err
	}
	result := scad.Union(bottom,
		scad.Translate(spatial.P3(0, 0, height),
			scad.RotateXYZ(spatial.P3(180, 0, 0), top)))
	if center {
		result = scad.Translate(spatial.P3(0, 0, -height/2), result)
	}
	return result, nil
}
