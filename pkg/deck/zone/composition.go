// Package zone collapses per-voxel material loadings into the smallest set
// of distinct zone definitions and lays the assignments into the dense zone
// array of the solver input.
package zone

import (
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute volume-fraction tolerance used when matching
// voxel compositions. Matching is absolute, not relative, so fractions near
// zero stay comparable.
const Tolerance = 1e-8

// Entry is one material contribution to a voxel.
type Entry struct {
	Material string  `json:"material"`
	Fraction float64 `json:"fraction"`
}

// Composition is the ordered material loading of one voxel. Entries keep
// the first-seen order of the discretization records and each material
// appears at most once.
type Composition []Entry

// Matches reports whether two compositions describe the same zone: material
// lists element-wise equal and every fraction pair within Tolerance.
// The comparison is positional, so identical materials recorded in a
// different order stay distinct zones. That mirrors the historical matching
// behavior the deck format grew up with and must not be relaxed to
// set-based comparison, which would renumber zones silently.
func (c Composition) Matches(other Composition) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i].Material != other[i].Material {
			return false
		}
		if !scalar.EqualWithinAbs(c[i].Fraction, other[i].Fraction, Tolerance) {
			return false
		}
	}
	return true
}

// IsVoid reports whether the composition reduces to a single void or
// graveyard material. The empty composition, a voxel fully outside the
// modeled cells, counts as void too.
func (c Composition) IsVoid() bool {
	if len(c) == 0 {
		return true
	}
	return len(c) == 1 && IsVoidMaterial(c[0].Material)
}

var voidMaterials = map[string]bool{
	"vacuum":    true,
	"graveyard": true,
}

// IsVoidMaterial matches a material name against the void/graveyard
// sentinels, case-insensitively and ignoring the "mat:" prefix geometry
// tools attach to assignment names.
func IsVoidMaterial(name string) bool {
	normalized := strings.TrimPrefix(strings.ToLower(name), "mat:")
	return voidMaterials[normalized]
}
