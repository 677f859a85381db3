package solid

import (
	"errors"
	"reflect"
	"testing"

	"github.com/chazu/treen/pkg/scad"
	"github.com/chazu/treen/pkg/spatial"
)

func TestTriangulateSquareExact(t *testing.T) {
	square := []spatial.Pt2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	tris, err := Triangulate(square)
	if err != nil {
		t.Fatalf("Triangulate returned error: %v", err)
	}
	want := []int{3, 0, 1, 3, 1, 2}
	if !reflect.DeepEqual(tris, want) {
		t.Errorf("triangles = %v, want %v", tris, want)
	}
}

func TestTriangulateCounts(t *testing.T) {
	tests := []struct {
		name   string
		points []spatial.Pt2
	}{
		{"triangle", []spatial.Pt2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}},
		{"square", []spatial.Pt2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
		{"concave L", []spatial.Pt2{
			{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, err := Triangulate(tt.points)
			if err != nil {
				t.Fatalf("Triangulate returned error: %v", err)
			}
			if got, want := len(tris), (len(tt.points)-2)*3; got != want {
				t.Fatalf("index count = %d, want %d", got, want)
			}
			for i := 0; i < len(tris); i += 3 {
				a, b, c := tt.points[tris[i]], tt.points[tris[i+1]], tt.points[tris[i+2]]
				if ccw(a, b, c) {
					t.Errorf("triangle %v %v %v winds counterclockwise", a, b, c)
				}
			}
		})
	}
}

func TestTriangulateReversedFlipsWinding(t *testing.T) {
	square := []spatial.Pt2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	tris, err := TriangulateReversed(square)
	if err != nil {
		t.Fatalf("TriangulateReversed returned error: %v", err)
	}
	want := []int{1, 0, 3, 2, 1, 3}
	if !reflect.DeepEqual(tris, want) {
		t.Errorf("triangles = %v, want %v", tris, want)
	}
	for i := 0; i < len(tris); i += 3 {
		a, b, c := square[tris[i]], square[tris[i+1]], square[tris[i+2]]
		if !ccw(a, b, c) {
			t.Errorf("triangle %v %v %v should wind counterclockwise", a, b, c)
		}
	}
}

func TestTriangulateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		points []spatial.Pt2
	}{
		{"too few points", []spatial.Pt2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"counterclockwise", []spatial.Pt2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
		{"collinear", []spatial.Pt2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Triangulate(tt.points)
			var verr scad.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if verr.Op != "triangulate" {
				t.Errorf("op = %q, want %q", verr.Op, "triangulate")
			}
		})
	}
}

func TestTriangulateFaceProjections(t *testing.T) {
	tests := []struct {
		name   string
		points []spatial.Pt3
		normal spatial.Pt3
	}{
		{
			"facing +X",
			[]spatial.Pt3{{X: 5, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 1}, {X: 5, Y: 1, Z: 1}, {X: 5, Y: 1, Z: 0}},
			spatial.P3(1, 0, 0),
		},
		{
			"facing -Y",
			[]spatial.Pt3{{X: 0, Y: 3, Z: 0}, {X: 0, Y: 3, Z: 1}, {X: 1, Y: 3, Z: 1}, {X: 1, Y: 3, Z: 0}},
			spatial.P3(0, -1, 0),
		},
		{
			"facing +Z",
			[]spatial.Pt3{{X: 0, Y: 0, Z: 7}, {X: 0, Y: 1, Z: 7}, {X: 1, Y: 1, Z: 7}, {X: 1, Y: 0, Z: 7}},
			spatial.P3(0, 0, 1),
		},
		{
			"facing -Z",
			[]spatial.Pt3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
			spatial.P3(0, 0, -1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, err := TriangulateFace(tt.points, tt.normal)
			if err != nil {
				t.Fatalf("TriangulateFace returned error: %v", err)
			}
			if len(tris) != 6 {
				t.Fatalf("index count = %d, want 6", len(tris))
			}
			used := make(map[int]bool)
			for _, idx := range tris {
				if idx < 0 || idx >= len(tt.points) {
					t.Fatalf("index %d out of range", idx)
				}
				used[idx] = true
			}
			if len(used) != len(tt.points) {
				t.Errorf("used %d distinct vertices, want %d", len(used), len(tt.points))
			}
		})
	}
}

func TestTriangulateFaceRejectsFlippedNormal(t *testing.T) {
	// Clockwise from +Z means counterclockwise from -Z.
	points := []spatial.Pt3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}}
	if _, err := TriangulateFace(points, spatial.P3(0, 0, -1)); err == nil {
		t.Fatal("expected winding error for flipped normal, got nil")
	}
}
