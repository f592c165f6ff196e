package partisn

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sndeck/pkg/deck"
	"sndeck/pkg/deck/material"
	"sndeck/pkg/deck/mesh"
	"sndeck/pkg/deck/zone"
)

// Params are the solver parameters passed through into the deck.
type Params struct {
	NGroup int // energy groups in the cross-section library
	ISN    int // S_n quadrature order
	NMQ    int // moments in the P_n source expansion
}

// GenerateDeck runs the whole conversion pipeline: coordinate-system
// resolution, per-voxel composition aggregation, zone deduplication, the
// dense zone array, then the numbered blocks. The pipeline is strictly
// one-directional; every step only consumes the outputs of the previous
// ones. Non-fatal diagnostics come back as warnings next to the deck.
func GenerateDeck(
	m mesh.Mesh,
	records []mesh.Record,
	assignments map[int]string,
	library material.Library,
	names material.XSNames,
	params Params,
	titleName string,
) (Deck, []deck.Warning, error) {
	kind, bounds, err := mesh.ResolveCoordSystem(m)
	if err != nil {
		return Deck{}, nil, err
	}

	compositions, err := zone.Aggregate(records, assignments)
	if err != nil {
		return Deck{}, nil, err
	}

	voxelZone, zoneCompositions := zone.Deduplicate(compositions)

	zones, err := zone.BuildArray(voxelZone, bounds)
	if err != nil {
		return Deck{}, nil, err
	}

	if err := checkZoneMaterials(zoneCompositions, library); err != nil {
		return Deck{}, nil, err
	}

	matls, warnings := material.Translate(library, names)
	xsNames := names.Names()

	result := Deck{
		Title: Title{Name: titleName, Generated: time.Now()},
		Block1: Block1{
			IGEOM:  string(kind),
			NGroup: params.NGroup,
			ISN:    params.ISN,
			NISO:   len(xsNames),
			MT:     len(library),
			NZone:  len(zoneCompositions),
		},
		Block2: Block2{Zones: zones},
		Block3: Block3{Names: xsNames},
		Block4: Block4{Matls: matls, Assign: zoneCompositions},
		Block5: Block5{
			IEVT:   0, // fixed source problem
			Source: NewMoments(params.NGroup, params.NMQ),
		},
	}

	for _, axis := range bounds.ActiveAxes() {
		intervals := bounds.Intervals(axis)
		switch axis {
		case mesh.X:
			result.Block1.IM = intervals
			result.Block1.IT = intervals
			result.Block2.XMesh = bounds[axis]
			result.Block2.XInts = 1
			result.Block5.SourceX = NewMoments(intervals, params.NMQ)
		case mesh.Y:
			result.Block1.JM = intervals
			result.Block1.JT = intervals
			result.Block2.YMesh = bounds[axis]
			result.Block2.YInts = 1
			result.Block5.SourceY = NewMoments(intervals, params.NMQ)
		case mesh.Z:
			result.Block1.KM = intervals
			result.Block1.KT = intervals
			result.Block2.ZMesh = bounds[axis]
			result.Block2.ZInts = 1
			result.Block5.SourceZ = NewMoments(intervals, params.NMQ)
		}
	}

	return result, warnings, nil
}

// checkZoneMaterials verifies every non-void material referenced by a zone
// exists in the library. A missing material would leave the MATLS block
// without the composition the ASSIGN block points at; that is structural
// and fatal, unlike a missing cross-section name.
func checkZoneMaterials(zoneCompositions map[int]zone.Composition, library material.Library) error {
	numbers := make([]int, 0, len(zoneCompositions))
	for number := range zoneCompositions {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	for _, number := range numbers {
		for _, entry := range zoneCompositions[number] {
			if zone.IsVoidMaterial(entry.Material) {
				continue
			}
			if _, found := library[entry.Material]; !found {
				return deck.MaterialIDError(
					entry.Material, "assigned in zone %d but missing from the material library", number,
				)
			}
		}
	}
	return nil
}

// TitleName derives the deck title from the problem file name, the base
// name with its extension stripped.
func TitleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
