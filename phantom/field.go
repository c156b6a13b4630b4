package phantom

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/jorge-borbinha/ReadPhantom/errors"
)

// Field holds the three parallel per-voxel arrays in canonical
// flattening order. Read-only after Build returns.
type Field struct {
	Organ    []int32
	Material []int32
	Density  []float64
}

// Stats carries the field statistics reported after a build.
type Stats struct {
	MaxOrganID    int32
	MaxMaterialID int32
	MaxDensity    float64

	// NegativeDensities counts the voxels whose density came from a
	// negative table entry and was stored as its absolute value.
	NegativeDensities int
}

// Build applies the lookup table across the organ field and returns
// the parallel material and density arrays plus statistics.
//
// The organ field length is checked against the grid before any other
// work; a mismatch would silently corrupt every downstream projection.
// Voxels whose tag is absent from the table keep material 0 and
// density 0.0. Running Build twice on the same inputs yields identical
// arrays.
func Build(grid Grid, organ []int32, table LookupTable) (*Field, Stats, error) {
	if err := grid.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if len(organ) != grid.VoxelCount() {
		return nil, Stats{}, errors.CardinalityMismatch{
			Actual:   len(organ),
			Expected: grid.VoxelCount(),
		}
	}

	field := &Field{
		Organ:    organ,
		Material: make([]int32, len(organ)),
		Density:  make([]float64, len(organ)),
	}

	stats := Stats{}
	for i, tag := range organ {
		assignment, ok := table[tag]
		if !ok {
			continue
		}
		density := assignment.Density
		if density < 0 {
			density = math.Abs(density)
			stats.NegativeDensities++
		}
		field.Material[i] = assignment.MaterialID
		field.Density[i] = density
	}

	for i := range organ {
		if field.Organ[i] > stats.MaxOrganID {
			stats.MaxOrganID = field.Organ[i]
		}
		if field.Material[i] > stats.MaxMaterialID {
			stats.MaxMaterialID = field.Material[i]
		}
	}
	stats.MaxDensity = floats.Max(field.Density)

	return field, stats, nil
}
