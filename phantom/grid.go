// Package phantom models a voxelized anatomical phantom: the grid
// geometry, the organ lookup table and the material/density field
// built from them.
package phantom

import (
	"github.com/jorge-borbinha/ReadPhantom/errors"
)

// Grid describes the voxel grid: counts per axis and physical voxel
// size per axis in cm.
type Grid struct {
	Nx, Ny, Nz int
	Rx, Ry, Rz float64
}

// VoxelCount returns the total number of voxels.
func (g Grid) VoxelCount() int {
	return g.Nx * g.Ny * g.Nz
}

// LenX returns the physical extent of the phantom along x in cm.
func (g Grid) LenX() float64 { return g.Rx * float64(g.Nx) }

// LenY returns the physical extent of the phantom along y in cm.
func (g Grid) LenY() float64 { return g.Ry * float64(g.Ny) }

// LenZ returns the physical extent of the phantom along z in cm.
func (g Grid) LenZ() float64 { return g.Rz * float64(g.Nz) }

// Index returns the linear index of voxel (x, y, z). The flattening
// order is the canonical contract of every phantom array: x varies
// fastest, then y, then z.
func (g Grid) Index(x, y, z int) int {
	return x + g.Nx*(y+g.Ny*z)
}

// Validate rejects grids that cannot hold a phantom.
func (g Grid) Validate() error {
	if g.Nx <= 0 || g.Ny <= 0 || g.Nz <= 0 {
		return errors.NewInvalidConfiguration(
			"voxel counts must be positive, got %d %d %d", g.Nx, g.Ny, g.Nz,
		)
	}
	if g.Rx <= 0 || g.Ry <= 0 || g.Rz <= 0 {
		return errors.NewInvalidConfiguration(
			"voxel resolutions must be positive, got %g %g %g", g.Rx, g.Ry, g.Rz,
		)
	}
	return nil
}
