package mesh

// Record is one discretization result: the volume fraction one material
// region occupies inside one voxel. A voxel straddling several regions
// produces one record per region, and records for one voxel may be
// interleaved with records for other voxels. Voxel indices are dense,
// starting at 0, assigned by the discretization step in the same traversal
// order the zone array is filled in.
type Record struct {
	Voxel    int
	Region   int
	Fraction float64
}
