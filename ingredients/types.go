package ingredients

// Range is a closed interval of ingredient IDs.
type Range struct {
	Start, End int
}

// Contains reports whether id lies in r.
func (r Range) Contains(id int) bool {
	return r.Start <= id && id <= r.End
}

// Len is the number of IDs in r; 0 when End < Start.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

// Inventory is a parsed inventory file.
type Inventory struct {
	Fresh       []Range
	Ingredients []int
}
