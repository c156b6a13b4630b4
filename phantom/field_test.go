package phantom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-borbinha/ReadPhantom/errors"
)

func testGrid() Grid {
	return Grid{Nx: 2, Ny: 2, Nz: 2, Rx: 0.5, Ry: 0.5, Rz: 0.5}
}

func testTable() LookupTable {
	return BuildTable([]Row{
		Row{OrganID: 1, MaterialID: 1, Density: 1.0},
		Row{OrganID: 2, MaterialID: 2, Density: 2.0},
		Row{OrganID: 3, MaterialID: 3, Density: 3.0},
		Row{OrganID: 4, MaterialID: 4, Density: 4.0},
	})
}

func TestBuildRoundTrip(t *testing.T) {
	organ := []int32{1, 1, 2, 2, 3, 3, 4, 4}

	field, stats, err := Build(testGrid(), organ, testTable())
	require.NoError(t, err)

	require.Len(t, field.Material, 8)
	require.Len(t, field.Density, 8)
	for i, tag := range organ {
		assert.Equal(t, tag, field.Material[i])
		assert.Equal(t, float64(tag), field.Density[i])
	}

	assert.Equal(t, int32(4), stats.MaxOrganID)
	assert.Equal(t, int32(4), stats.MaxMaterialID)
	assert.Equal(t, 4.0, stats.MaxDensity)
	assert.Equal(t, 0, stats.NegativeDensities)
}

func TestBuildAbsentTagsYieldZeroAssignment(t *testing.T) {
	organ := []int32{1, 9, 9, 9, 9, 9, 9, 1}

	field, _, err := Build(testGrid(), organ, testTable())
	require.NoError(t, err)

	for _, i := range []int{1, 2, 3, 4, 5, 6} {
		assert.Equal(t, int32(0), field.Material[i])
		assert.Equal(t, 0.0, field.Density[i])
	}
	assert.Equal(t, int32(1), field.Material[0])
	assert.Equal(t, 1.0, field.Density[0])
}

func TestBuildCorrectsNegativeDensities(t *testing.T) {
	table := BuildTable([]Row{
		Row{OrganID: 1, MaterialID: 1, Density: -1.05},
		Row{OrganID: 2, MaterialID: 2, Density: 0.26},
	})
	organ := []int32{1, 1, 1, 2, 2, 2, 2, 2}

	field, stats, err := Build(testGrid(), organ, table)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.NegativeDensities)
	for _, density := range field.Density {
		assert.GreaterOrEqual(t, density, 0.0)
	}
	assert.Equal(t, 1.05, field.Density[0])
}

func TestBuildCardinalityMismatch(t *testing.T) {
	organ := []int32{1, 1, 2, 2, 3, 3, 4}

	field, _, err := Build(testGrid(), organ, testTable())

	assert.Nil(t, field)
	require.IsType(t, errors.CardinalityMismatch{}, err)
	mismatch := err.(errors.CardinalityMismatch)
	assert.Equal(t, 7, mismatch.Actual)
	assert.Equal(t, 8, mismatch.Expected)
}

func TestBuildInvalidGrid(t *testing.T) {
	_, _, err := Build(Grid{Nx: 0, Ny: 2, Nz: 2, Rx: 1, Ry: 1, Rz: 1}, []int32{}, testTable())
	assert.IsType(t, errors.InvalidConfiguration{}, err)
}

func TestBuildIsIdempotent(t *testing.T) {
	organ := []int32{1, 1, 2, 2, 3, 3, 4, 4}

	first, firstStats, err := Build(testGrid(), organ, testTable())
	require.NoError(t, err)
	second, secondStats, err := Build(testGrid(), organ, testTable())
	require.NoError(t, err)

	assert.Equal(t, first.Material, second.Material)
	assert.Equal(t, first.Density, second.Density)
	assert.Equal(t, firstStats, secondStats)
}
