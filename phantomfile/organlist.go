package phantomfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jorge-borbinha/ReadPhantom/errors"
	"github.com/jorge-borbinha/ReadPhantom/phantom"
)

// OrganListLayout describes how to interpret the organ list table:
// the ordered column names, the number of leading rows to skip
// (headers included) and which columns carry the organ tag, material
// ID and density roles.
type OrganListLayout struct {
	Columns        []string
	SkipRows       int
	OrganColumn    string
	MaterialColumn string
	DensityColumn  string
}

// ReadOrganList parses the organ list table at path into lookup table
// rows. Fields are whitespace-separated, so column names and organ
// names must not contain spaces. A missing file or a file with no data
// rows yields errors.MissingLookupSource.
func ReadOrganList(path string, layout OrganListLayout) ([]phantom.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.MissingLookupSource{Path: path}
	}
	defer file.Close()

	organIdx, err := columnIndex(layout.Columns, layout.OrganColumn)
	if err != nil {
		return nil, err
	}
	materialIdx, err := columnIndex(layout.Columns, layout.MaterialColumn)
	if err != nil {
		return nil, err
	}
	densityIdx, err := columnIndex(layout.Columns, layout.DensityColumn)
	if err != nil {
		return nil, err
	}

	rows := []phantom.Row{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= layout.SkipRows {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(layout.Columns) {
			return nil, fmt.Errorf(
				"organ list %s line %d: expected %d columns, got %d",
				path, lineNo, len(layout.Columns), len(fields),
			)
		}

		row, err := parseRow(fields, organIdx, materialIdx, densityIdx)
		if err != nil {
			return nil, fmt.Errorf("organ list %s line %d: %w", path, lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read organ list %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, errors.MissingLookupSource{Path: path}
	}
	return rows, nil
}

func parseRow(fields []string, organIdx, materialIdx, densityIdx int) (phantom.Row, error) {
	organID, err := strconv.ParseInt(fields[organIdx], 10, 32)
	if err != nil {
		return phantom.Row{}, fmt.Errorf("organ ID %q is not an integer", fields[organIdx])
	}
	materialID, err := strconv.ParseInt(fields[materialIdx], 10, 32)
	if err != nil {
		return phantom.Row{}, fmt.Errorf("material ID %q is not an integer", fields[materialIdx])
	}
	density, err := strconv.ParseFloat(fields[densityIdx], 64)
	if err != nil {
		return phantom.Row{}, fmt.Errorf("density %q is not a number", fields[densityIdx])
	}
	return phantom.Row{
		OrganID:    int32(organID),
		MaterialID: int32(materialID),
		Density:    density,
	}, nil
}

func columnIndex(columns []string, name string) (int, error) {
	for i, column := range columns {
		if column == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not present in organ list columns %v", name, columns)
}
