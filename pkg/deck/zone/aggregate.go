package zone

import (
	"sndeck/pkg/deck"
	"sndeck/pkg/deck/mesh"
)

// Aggregate merges the raw discretization records into one Composition per
// voxel. Region ids are resolved to material names through the assignment
// table; a record whose material is already present in the voxel adds its
// volume fraction to the existing entry, so each material appears at most
// once per voxel, in first-seen order. A region without an assignment is
// fatal: the assignment table is authoritative.
func Aggregate(records []mesh.Record, assignments map[int]string) (map[int]Composition, error) {
	compositions := map[int]Composition{}

	for _, record := range records {
		name, found := assignments[record.Region]
		if !found {
			return nil, deck.RegionIDError(record.Region, "no material assigned")
		}

		composition := compositions[record.Voxel]
		merged := false
		for i := range composition {
			if composition[i].Material == name {
				composition[i].Fraction += record.Fraction
				merged = true
				break
			}
		}
		if !merged {
			composition = append(composition, Entry{Material: name, Fraction: record.Fraction})
		}
		compositions[record.Voxel] = composition
	}

	return compositions, nil
}
