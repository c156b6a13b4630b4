package penelope

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jorge-borbinha/ReadPhantom/format"
	"github.com/jorge-borbinha/ReadPhantom/phantom"
)

// Plane selects one of the three orthogonal projection planes.
type Plane int

// The three projections through the grid's own index space.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// String ...
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	}
	return "unknown"
}

// Axis identifiers used by the plane loop table: which of x, y, z runs
// at each loop depth.
const (
	axisX = iota
	axisY
	axisZ
)

// planeLoopAxes maps each plane to the axis running at the (outer,
// middle, inner) loop slots. One table instead of three loop bodies;
// the emitted iteration order is contractual.
var planeLoopAxes = map[Plane][3]int{
	PlaneXY: {axisZ, axisY, axisX},
	PlaneXZ: {axisY, axisX, axisZ},
	PlaneYZ: {axisX, axisZ, axisY},
}

// Outer-loop milestones reported while a projection is emitted.
var sliceProgressMilestones = map[int]bool{
	50: true, 100: true, 200: true, 300: true, 350: true, 400: true,
}

// SerializeProjection returns one ct-den-mat dump of the field along
// plane: a descriptive header, then one line per voxel with 1-based
// bin indices, density, material ID and organ ID. Voxels are visited
// with the plane's inner axis varying fastest; a separator line closes
// each inner scan and a second one closes each outer block (the
// gnuplot two-blank-lines page convention). Array access always uses
// the canonical linear index, whatever the loop order.
//
// The whole output is assembled in memory and returned as one string;
// at realistic grid sizes per-line file writes dominate the cost.
func SerializeProjection(field *phantom.Field, grid phantom.Grid, plane Plane) string {
	writer := &bytes.Buffer{}
	writer.Grow(grid.VoxelCount() * 36)

	serializeProjectionHeader(writer, grid)

	axes := planeLoopAxes[plane]
	dims := [3]int{grid.Nx, grid.Ny, grid.Nz}

	// c[axisX], c[axisY], c[axisZ] are the voxel coordinates of the
	// current loop position.
	var c [3]int
	for outer := 0; outer < dims[axes[0]]; outer++ {
		c[axes[0]] = outer
		for middle := 0; middle < dims[axes[1]]; middle++ {
			c[axes[1]] = middle
			for inner := 0; inner < dims[axes[2]]; inner++ {
				c[axes[2]] = inner
				i := grid.Index(c[axisX], c[axisY], c[axisZ])
				fmt.Fprintf(writer, " %s %s %s %s %s %s\n",
					format.Int(c[axisX]+1, 3),
					format.Int(c[axisY]+1, 3),
					format.Int(c[axisZ]+1, 3),
					format.Scientific(field.Density[i], 5),
					format.Int(int(field.Material[i]), 4),
					format.Int(int(field.Organ[i]), 4),
				)
			}
			writer.WriteString(" \n")
		}
		writer.WriteString(" \n")

		if sliceProgressMilestones[outer] {
			log.Debugf(" > Number of slices written (%s): %d", plane, outer)
		}
	}

	return writer.String()
}

func serializeProjectionHeader(writer io.Writer, grid phantom.Grid) {
	fmt.Fprintln(writer, "#  CT structure (GNUPLOT format).")
	fmt.Fprintf(writer, "#  CT enclosure limits:  XL = %.6e cm,  XU = %.6e cm\n", 0.0, grid.LenX())
	fmt.Fprintf(writer, "#                       YL = %.6e cm,  YU = %.6e cm\n", 0.0, grid.LenY())
	fmt.Fprintf(writer, "#                       ZL = %.6e cm,  ZU = %.6e cm\n", 0.0, grid.LenZ())
	fmt.Fprintf(writer, "#  Numbers of voxels:    NVX = %d, NVY = %d, NVZ = %d\n", grid.Nx, grid.Ny, grid.Nz)
	fmt.Fprintln(writer, "#")
	fmt.Fprintln(writer, "#")
	fmt.Fprintln(writer, "#  columns 1 to 3: bin indices IX, IY and IZ")
	fmt.Fprintln(writer, "#  4th column: density (g/cm**3).")
	fmt.Fprintln(writer, "#  5th column: material. 6th column: organ ID")
	fmt.Fprintln(writer, "#  CT structure (GNUPLOT format).")
}
