package problem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sndeck/pkg/deck/mesh"
)

func writeProblem(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validProblem = `
mesh:
  x: [0, 1, 2]
  y: [0, 1]
  z: [0, 1]
assignments:
  1: steel
  2: vacuum
records:
  - {voxel: 0, region: 1, fraction: 1.0}
  - {voxel: 1, region: 2, fraction: 1.0}
ngroup: 6
isn: 8
nmq: 4
`

func TestLoad(t *testing.T) {
	loaded, err := Load(writeProblem(t, validProblem))

	require.NoError(t, err)
	assert.Equal(t, mesh.StructuredMesh{
		X: []float64{0, 1, 2},
		Y: []float64{0, 1},
		Z: []float64{0, 1},
	}, loaded.StructuredMesh())
	assert.Equal(t, map[int]string{1: "steel", 2: "vacuum"}, loaded.Assignments)
	assert.Equal(t, []mesh.Record{
		{Voxel: 0, Region: 1, Fraction: 1.0},
		{Voxel: 1, Region: 2, Fraction: 1.0},
	}, loaded.MeshRecords())
	assert.Equal(t, 6, loaded.NGroup)
	assert.Equal(t, 8, loaded.ISN)
	assert.Equal(t, 4, loaded.NMQ)
}

func TestLoadFailures(t *testing.T) {
	type testCase struct {
		Name     string
		Content  string
		Expected string
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()

		_, err := Load(writeProblem(t, tc.Content))

		require.Error(t, err)
		assert.Contains(t, err.Error(), tc.Expected)
	}

	cases := []testCase{
		{
			Name: "NonMonotoneDivisions",
			Content: `
mesh:
  x: [0, 2, 1]
ngroup: 1
isn: 2
nmq: 1
`,
			Expected: "strictly increasing",
		},
		{
			Name: "DuplicateDivision",
			Content: `
mesh:
  x: [0, 1, 1, 2]
ngroup: 1
isn: 2
nmq: 1
`,
			Expected: "strictly increasing",
		},
		{
			Name: "MissingNGroup",
			Content: `
mesh:
  x: [0, 1, 2]
isn: 2
nmq: 1
`,
			Expected: "ngroup",
		},
		{
			Name: "NegativeFraction",
			Content: `
mesh:
  x: [0, 1, 2]
records:
  - {voxel: 0, region: 1, fraction: -0.25}
ngroup: 1
isn: 2
nmq: 1
`,
			Expected: "fraction",
		},
		{
			Name: "NegativeVoxelIndex",
			Content: `
mesh:
  x: [0, 1, 2]
records:
  - {voxel: -1, region: 1, fraction: 0.5}
ngroup: 1
isn: 2
nmq: 1
`,
			Expected: "negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			check(t, tc)
		})
	}

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := Load(writeProblem(t, "mesh: [not: a mapping\n"))

		require.Error(t, err)
	})
}
