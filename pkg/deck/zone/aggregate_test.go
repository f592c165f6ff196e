package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sndeck/pkg/deck/mesh"
)

func TestAggregate(t *testing.T) {
	assignments := map[int]string{
		1: "steel",
		2: "water",
		3: "steel",
	}

	t.Run("SingleRegionPerVoxel", func(t *testing.T) {
		compositions, err := Aggregate([]mesh.Record{
			{Voxel: 0, Region: 1, Fraction: 1.0},
			{Voxel: 1, Region: 2, Fraction: 1.0},
		}, assignments)

		require.NoError(t, err)
		assert.Equal(t, map[int]Composition{
			0: {{Material: "steel", Fraction: 1.0}},
			1: {{Material: "water", Fraction: 1.0}},
		}, compositions)
	})

	t.Run("MergesDuplicateMaterialWithinVoxel", func(t *testing.T) {
		// Regions 1 and 3 both map to steel; their fractions add up into
		// the one steel entry.
		compositions, err := Aggregate([]mesh.Record{
			{Voxel: 0, Region: 1, Fraction: 0.25},
			{Voxel: 0, Region: 2, Fraction: 0.5},
			{Voxel: 0, Region: 3, Fraction: 0.25},
		}, assignments)

		require.NoError(t, err)
		assert.Equal(t, map[int]Composition{
			0: {{Material: "steel", Fraction: 0.5}, {Material: "water", Fraction: 0.5}},
		}, compositions)
	})

	t.Run("PreservesFirstSeenOrder", func(t *testing.T) {
		compositions, err := Aggregate([]mesh.Record{
			{Voxel: 0, Region: 2, Fraction: 0.3},
			{Voxel: 0, Region: 1, Fraction: 0.7},
		}, assignments)

		require.NoError(t, err)
		assert.Equal(t, Composition{
			{Material: "water", Fraction: 0.3},
			{Material: "steel", Fraction: 0.7},
		}, compositions[0])
	})

	t.Run("InterleavedVoxels", func(t *testing.T) {
		compositions, err := Aggregate([]mesh.Record{
			{Voxel: 0, Region: 1, Fraction: 0.5},
			{Voxel: 1, Region: 2, Fraction: 1.0},
			{Voxel: 0, Region: 3, Fraction: 0.5},
		}, assignments)

		require.NoError(t, err)
		assert.Equal(t, map[int]Composition{
			0: {{Material: "steel", Fraction: 1.0}},
			1: {{Material: "water", Fraction: 1.0}},
		}, compositions)
	})

	t.Run("UnassignedRegionFails", func(t *testing.T) {
		_, err := Aggregate([]mesh.Record{
			{Voxel: 0, Region: 99, Fraction: 1.0},
		}, assignments)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "99")
	})
}
