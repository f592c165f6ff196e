// Package mesh models the structured Cartesian mesh the deck generator
// consumes: per-axis division coordinates and the discretization records
// that tie mesh voxels to material regions.
package mesh

// Axis identifies one axis of the structured mesh.
type Axis string

// The three Cartesian axes. AxisOrder fixes the order in which axes are
// tested for activity; the first active axis becomes the row dimension of
// the zone array downstream.
const (
	X Axis = "x"
	Y Axis = "y"
	Z Axis = "z"
)

// AxisOrder ...
var AxisOrder = []Axis{X, Y, Z}

// Mesh is a structured-mesh handle. Divisions returns the ordered boundary
// coordinates of one axis; a sequence of length 2 or less means the axis is
// not subdivided.
type Mesh interface {
	Divisions(axis Axis) []float64
}

// StructuredMesh is an in-memory Mesh.
type StructuredMesh struct {
	X []float64
	Y []float64
	Z []float64
}

// Divisions implements Mesh.
func (m StructuredMesh) Divisions(axis Axis) []float64 {
	switch axis {
	case X:
		return m.X
	case Y:
		return m.Y
	case Z:
		return m.Z
	}
	return nil
}
