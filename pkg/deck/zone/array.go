package zone

import (
	"sndeck/pkg/deck"
	"sndeck/pkg/deck/mesh"
)

// BuildArray lays the voxel zone assignments into a dense 2-D array shaped
// (intervals on the first active axis) x (product of the remaining active
// intervals), with inactive dimensions collapsed to size 1. Voxel indices
// are consumed in increasing order filling row-major, which must equal the
// enumeration order the discretization step used to number voxels; the
// shape is validated against the voxel count before anything is allocated,
// because a silently misaligned array has no detectable symptom downstream.
func BuildArray(voxelZone map[int]int, bounds mesh.Bounds) ([][]int, error) {
	axes := bounds.ActiveAxes()
	if len(axes) == 0 {
		return nil, deck.GeneralGeomError("mesh has no subdivided axis, 0-D geometry is unsupported")
	}

	rows := bounds.Intervals(axes[0])
	cols := 1
	for _, axis := range axes[1:] {
		cols *= bounds.Intervals(axis)
	}

	if len(voxelZone) != rows*cols {
		return nil, deck.GeneralZoneError(
			"voxel count %d does not match the %dx%d grid shape",
			len(voxelZone), rows, cols,
		)
	}

	array := make([][]int, rows)
	voxel := 0
	for i := range array {
		array[i] = make([]int, cols)
		for j := range array[i] {
			zoneNumber, found := voxelZone[voxel]
			if !found {
				return nil, deck.VoxelIDError(voxel, "missing zone assignment")
			}
			array[i][j] = zoneNumber
			voxel++
		}
	}

	return array, nil
}
