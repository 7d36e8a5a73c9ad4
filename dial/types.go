package dial

import "errors"

// ErrBadOptions indicates an impossible dial configuration.
var ErrBadOptions = errors.New("dial: start must lie within 0..max value")

// Direction is the turning direction of a rotation.
type Direction int

const (
	// Left turns towards lower numbers.
	Left Direction = iota
	// Right turns towards higher numbers.
	Right
)

// String returns "L" or "R".
func (d Direction) String() string {
	if d == Left {
		return "L"
	}

	return "R"
}

// Rotation is one parsed instruction.
type Rotation struct {
	Direction Direction
	Distance  int
}

// Step records the dial after one rotation.
//
//	Dial  : position after the rotation.
//	Clicks: clicks during the rotation that left the dial at 0.
//	Zeros : running answer after this rotation under the chosen mode.
type Step struct {
	Dial   int
	Clicks int
	Zeros  int
}

// Result is the full simulation: Steps[0] is the starting position.
type Result struct {
	Steps []Step
	Zeros int
}

// Options configures the simulation.
type Options struct {
	// Start is the initial dial position.
	Start int
	// MaxValue is the highest number on the dial.
	MaxValue int
	// AnyClick counts every click at 0 instead of only rotation endings.
	AnyClick bool
}

// DefaultOptions returns Start=50, MaxValue=99, AnyClick=false.
func DefaultOptions() Options {
	return Options{
		Start:    50,
		MaxValue: 99,
		AnyClick: false,
	}
}

// Validate reports ErrBadOptions for an impossible configuration.
func (o Options) Validate() error {
	if o.MaxValue < 0 || o.Start < 0 || o.Start > o.MaxValue {
		return ErrBadOptions
	}

	return nil
}
