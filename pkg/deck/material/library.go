package material

import (
	"sndeck/pkg/deck"
)

// avogadro is Avogadro's number [atoms/mol].
const avogadro = 6.02214076e23

// barnCm scales atom densities from [atoms/cc] to [atoms/barn-cm].
const barnCm = 1e-24

// Library maps material name to nuclide id to atom density [atoms/barn-cm].
type Library map[string]map[int]float64

// BuildLibrary converts the stored mass-fraction compositions to atom
// densities: massfrac * rho * N_A / A gives [atoms/cc], scaled by 1e-24 to
// the [atoms/barn-cm] the solver wants. Each material gets its own fresh
// accumulator; nuclides never leak between materials.
func BuildLibrary(stored []StoredMaterial) (Library, error) {
	library := Library{}
	for _, material := range stored {
		if material.Density <= 0 {
			return nil, deck.MaterialIDError(material.Name, "density must be positive")
		}
		densities := map[int]float64{}
		for _, nuclide := range material.Nuclides {
			if nuclide.AtomicMass <= 0 {
				return nil, deck.MaterialIDError(
					material.Name, "nuclide %d has non-positive atomic mass", nuclide.ID,
				)
			}
			atomDensity := nuclide.MassFraction * material.Density * avogadro / nuclide.AtomicMass
			densities[nuclide.ID] = atomDensity * barnCm
		}
		library[material.Name] = densities
	}
	return library, nil
}
