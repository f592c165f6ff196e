package zone

import (
	"sort"
)

// VoidZone is the reserved zone number for void/graveyard voxels.
const VoidZone = 0

type registryEntry struct {
	zone        int
	composition Composition
}

// Deduplicate collapses voxels with matching compositions into zones.
// Voxels are consumed in increasing index order; that order is the only
// thing deciding which composition gets which zone number, so it must be
// stable across runs. Numbers are assigned greedily at first encounter,
// starting at 1 with no gaps. Void voxels get VoidZone immediately and are
// never registered, so later voxels cannot match against them.
//
// Returns the voxel to zone-number mapping and the composition of every
// zone >= 1.
func Deduplicate(compositions map[int]Composition) (map[int]int, map[int]Composition) {
	voxelZone := make(map[int]int, len(compositions))
	zoneCompositions := map[int]Composition{}

	// Appended to in creation order, never reordered; the linear scan below
	// therefore resolves ties in favor of the earliest-registered zone.
	registry := []registryEntry{}

	for _, voxel := range sortedVoxels(compositions) {
		composition := compositions[voxel]

		if composition.IsVoid() {
			voxelZone[voxel] = VoidZone
			continue
		}

		assigned := false
		for _, entry := range registry {
			if entry.composition.Matches(composition) {
				voxelZone[voxel] = entry.zone
				assigned = true
				break
			}
		}
		if !assigned {
			next := len(registry) + 1
			registry = append(registry, registryEntry{zone: next, composition: composition})
			zoneCompositions[next] = composition
			voxelZone[voxel] = next
		}
	}

	return voxelZone, zoneCompositions
}

func sortedVoxels(compositions map[int]Composition) []int {
	voxels := make([]int, 0, len(compositions))
	for voxel := range compositions {
		voxels = append(voxels, voxel)
	}
	sort.Ints(voxels)
	return voxels
}
