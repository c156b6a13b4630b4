package phantom

// Row is one organ list entry: the organ tag and the material/density
// pair assigned to every voxel carrying that tag.
type Row struct {
	OrganID    int32
	MaterialID int32
	Density    float64
}

// Assignment is the material/density pair for one organ tag.
type Assignment struct {
	MaterialID int32
	Density    float64
}

// LookupTable maps an organ tag to its material assignment.
type LookupTable map[int32]Assignment

// BuildTable builds the lookup table from organ list rows. Duplicate
// organ tags keep the last row seen.
func BuildTable(rows []Row) LookupTable {
	table := LookupTable{}
	for _, row := range rows {
		table[row.OrganID] = Assignment{
			MaterialID: row.MaterialID,
			Density:    row.Density,
		}
	}
	return table
}
