// Package problem reads the YAML problem description: the structured mesh
// divisions, the region to material assignments, the discretization records
// and the solver parameters.
package problem

import (
	"os"

	"gopkg.in/yaml.v3"

	"sndeck/pkg/deck"
	"sndeck/pkg/deck/mesh"
)

// MeshSpec is the per-axis division coordinates of the structured mesh.
// An axis with 2 or fewer division points is not subdivided.
type MeshSpec struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
	Z []float64 `yaml:"z"`
}

// RecordSpec is one discretization record.
type RecordSpec struct {
	Voxel    int     `yaml:"voxel"`
	Region   int     `yaml:"region"`
	Fraction float64 `yaml:"fraction"`
}

// Problem is one deck-generation job.
type Problem struct {
	Mesh        MeshSpec       `yaml:"mesh"`
	Assignments map[int]string `yaml:"assignments"`
	Records     []RecordSpec   `yaml:"records"`
	NGroup      int            `yaml:"ngroup"`
	ISN         int            `yaml:"isn"`
	NMQ         int            `yaml:"nmq"`
}

// Load reads and validates a problem file.
func Load(path string) (Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, deck.GeneralProblemError("cannot read %s: %s", path, err)
	}

	loaded := Problem{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Problem{}, deck.GeneralProblemError("cannot parse %s: %s", path, err)
	}

	if err := loaded.validate(); err != nil {
		return Problem{}, err
	}
	return loaded, nil
}

func (p Problem) validate() error {
	for _, axis := range mesh.AxisOrder {
		divisions := p.StructuredMesh().Divisions(axis)
		for i := 1; i < len(divisions); i++ {
			if divisions[i] <= divisions[i-1] {
				return deck.GeneralProblemError(
					"%s divisions must be strictly increasing (%g after %g)",
					axis, divisions[i], divisions[i-1],
				)
			}
		}
	}

	if p.NGroup <= 0 {
		return deck.GeneralProblemError("ngroup must be positive, got %d", p.NGroup)
	}
	if p.ISN <= 0 {
		return deck.GeneralProblemError("isn must be positive, got %d", p.ISN)
	}
	if p.NMQ <= 0 {
		return deck.GeneralProblemError("nmq must be positive, got %d", p.NMQ)
	}

	for _, record := range p.Records {
		if record.Voxel < 0 {
			return deck.VoxelIDError(record.Voxel, "voxel index must not be negative")
		}
		if record.Fraction < 0 || record.Fraction > 1 {
			return deck.VoxelIDError(
				record.Voxel, "volume fraction %g outside [0, 1]", record.Fraction,
			)
		}
	}
	return nil
}

// StructuredMesh returns the mesh handle.
func (p Problem) StructuredMesh() mesh.StructuredMesh {
	return mesh.StructuredMesh{X: p.Mesh.X, Y: p.Mesh.Y, Z: p.Mesh.Z}
}

// MeshRecords returns the discretization records in file order.
func (p Problem) MeshRecords() []mesh.Record {
	records := make([]mesh.Record, 0, len(p.Records))
	for _, record := range p.Records {
		records = append(records, mesh.Record{
			Voxel:    record.Voxel,
			Region:   record.Region,
			Fraction: record.Fraction,
		})
	}
	return records
}
