package forklift

const (
	// Roll marks a cell occupied by a paper roll.
	Roll = '@'

	// CrowdLimit is the neighbour count at which a roll is blocked.
	CrowdLimit = 4
)
