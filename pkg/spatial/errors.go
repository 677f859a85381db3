package spatial

import "fmt"

// DegenerateGeometryError reports an operation that has no numeric answer,
// such as normalizing a zero-length vector or inverting a singular matrix.
// Callers that construct inputs from user data should expect and surface it.
type DegenerateGeometryError struct {
	Op     string
	Detail string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry in %s: %s", e.Op, e.Detail)
}
