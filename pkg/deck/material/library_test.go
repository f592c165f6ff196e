package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLibrary(t *testing.T) {
	t.Run("ConvertsMassFractionToAtomDensity", func(t *testing.T) {
		library, err := BuildLibrary([]StoredMaterial{
			{
				Name:    "water",
				Density: 1.0,
				Nuclides: []Nuclide{
					{ID: 10010000, MassFraction: 0.111915, AtomicMass: 1.008},
					{ID: 80160000, MassFraction: 0.888085, AtomicMass: 15.999},
				},
			},
		})

		require.NoError(t, err)
		require.Contains(t, library, "water")

		// massfrac * rho * N_A / A, scaled to [atoms/barn-cm].
		expectedH := 0.111915 * 1.0 * avogadro / 1.008 * barnCm
		expectedO := 0.888085 * 1.0 * avogadro / 15.999 * barnCm
		assert.InDelta(t, expectedH, library["water"][10010000], 1e-12)
		assert.InDelta(t, expectedO, library["water"][80160000], 1e-12)
		// Sanity: water hydrogen density is about 6.7e-2 atoms/barn-cm.
		assert.InDelta(t, 6.69e-2, library["water"][10010000], 1e-3)
	})

	t.Run("FreshAccumulatorPerMaterial", func(t *testing.T) {
		// Nuclides of one material must not leak into the next.
		library, err := BuildLibrary([]StoredMaterial{
			{
				Name:     "water",
				Density:  1.0,
				Nuclides: []Nuclide{{ID: 10010000, MassFraction: 1.0, AtomicMass: 1.008}},
			},
			{
				Name:     "iron",
				Density:  7.874,
				Nuclides: []Nuclide{{ID: 260560000, MassFraction: 1.0, AtomicMass: 55.845}},
			},
		})

		require.NoError(t, err)
		assert.NotContains(t, library["iron"], 10010000)
		assert.NotContains(t, library["water"], 260560000)
		assert.Len(t, library["water"], 1)
		assert.Len(t, library["iron"], 1)
	})

	t.Run("NonPositiveDensityFails", func(t *testing.T) {
		_, err := BuildLibrary([]StoredMaterial{{Name: "broken", Density: 0}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("NonPositiveAtomicMassFails", func(t *testing.T) {
		_, err := BuildLibrary([]StoredMaterial{
			{
				Name:     "broken",
				Density:  1.0,
				Nuclides: []Nuclide{{ID: 10010000, MassFraction: 1.0, AtomicMass: 0}},
			},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "atomic mass")
	})
}
