package products

// Mode selects which repetitions make an ID invalid.
type Mode int

const (
	// ModeRepeated rejects IDs made of a block repeated at least twice.
	ModeRepeated Mode = iota
	// ModeDoubled rejects IDs made of a block repeated exactly twice.
	ModeDoubled
)

// IDRange is a closed range of product IDs.
type IDRange struct {
	First, Last int
}

// Options configures SumInvalid.
type Options struct {
	Mode Mode
}

// DefaultOptions returns ModeRepeated.
func DefaultOptions() Options {
	return Options{Mode: ModeRepeated}
}
