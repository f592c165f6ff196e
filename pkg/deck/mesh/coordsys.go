package mesh

import (
	"sndeck/pkg/deck"
)

// GeometryKind is the symbolic geometry tag of the solver input, derived
// from how many axes are subdivided.
type GeometryKind string

// Geometry kinds by active-axis count.
const (
	Slab GeometryKind = "slab"
	XY   GeometryKind = "x-y"
	XYZ  GeometryKind = "x-y-z"
)

// Bounds maps each active axis to its ordered boundary coordinates.
type Bounds map[Axis][]float64

// Intervals returns the fine-mesh interval count of the axis, or 1 when the
// axis is inactive.
func (b Bounds) Intervals(axis Axis) int {
	divisions, active := b[axis]
	if !active {
		return 1
	}
	return len(divisions) - 1
}

// ActiveAxes returns the active axes in x, y, z order.
func (b Bounds) ActiveAxes() []Axis {
	axes := []Axis{}
	for _, axis := range AxisOrder {
		if _, active := b[axis]; active {
			axes = append(axes, axis)
		}
	}
	return axes
}

// ResolveCoordSystem derives the geometry kind and the per-axis boundary
// coordinates from the mesh divisions. An axis is active when it has more
// than two division points, i.e. at least one interior boundary. A mesh
// without any active axis is a 0-D problem and is rejected.
func ResolveCoordSystem(m Mesh) (GeometryKind, Bounds, error) {
	bounds := Bounds{}
	activeCount := 0
	for _, axis := range AxisOrder {
		divisions := m.Divisions(axis)
		if len(divisions) > 2 {
			bounds[axis] = divisions
			activeCount++
		}
	}

	switch activeCount {
	case 1:
		return Slab, bounds, nil
	case 2:
		return XY, bounds, nil
	case 3:
		return XYZ, bounds, nil
	}
	return "", nil, deck.GeneralGeomError("mesh has no subdivided axis, 0-D geometry is unsupported")
}
