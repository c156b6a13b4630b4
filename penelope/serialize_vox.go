// Package penelope serializes a built phantom field into the text
// artifacts consumed by the PENELOPE/penEasy framework: the .vox
// volume read by the simulator and the ct-den-mat projection dumps
// read by its gnuplot scripts.
package penelope

import (
	"bytes"
	"fmt"
	"io"

	conf "github.com/jorge-borbinha/ReadPhantom/config"
	"github.com/jorge-borbinha/ReadPhantom/format"
	"github.com/jorge-borbinha/ReadPhantom/phantom"
)

var log = conf.NamedLogger("penelope")

const (
	voxSectionHeader = "[SECTION VOXELS HEADER v.2008-04-13]"
	voxSectionEnd    = "[END OF VXH SECTION]"
)

// SerializeVox returns the .vox phantom content: the fixed seven-line
// header followed by one "material density" row per voxel, in the
// canonical flattening order of the field arrays. The simulator
// reconstructs voxel positions from row order alone, so the order is
// part of the format.
func SerializeVox(field *phantom.Field, grid phantom.Grid) string {
	writer := &bytes.Buffer{}
	writer.Grow(len(field.Material) * 12)

	serializeVoxHeader(writer, grid)
	for i := range field.Material {
		fmt.Fprintf(writer, "%s %s\n",
			format.Int(int(field.Material[i]), 3),
			format.Float(field.Density[i], 7, 4),
		)
	}

	return writer.String()
}

func serializeVoxHeader(writer io.Writer, grid phantom.Grid) {
	fmt.Fprintf(writer, "%s\n", voxSectionHeader)
	fmt.Fprintf(writer, " %s%s%s\n",
		format.Int(grid.Nx, 4), format.Int(grid.Ny, 4), format.Int(grid.Nz, 4))
	fmt.Fprintf(writer, " %s %s %s\n",
		format.Float(grid.Rx, 7, 5), format.Float(grid.Ry, 7, 5), format.Float(grid.Rz, 7, 5))
	fmt.Fprintln(writer, " 1")
	fmt.Fprintln(writer, " 2")
	fmt.Fprintln(writer, " 0")
	fmt.Fprintf(writer, "%s\n", voxSectionEnd)
}
