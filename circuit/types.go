package circuit

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when Options hold an invalid value.
var ErrOptionViolation = errors.New("circuit: invalid option supplied")

// Position is a junction box location.
type Position struct {
	X, Y, Z int
}

// Distance2 returns the squared Euclidean distance between p and q.
func (p Position) Distance2(q Position) int {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return dx*dx + dy*dy + dz*dz
}

// Pair is a candidate connection between boxes I and J (I < J).
type Pair struct {
	A, B      Position
	I, J      int
	Distance2 int
}

// Order is the order in which candidate pairs are consumed.
type Order int

const (
	// OrderAscending connects the closest pairs first.
	OrderAscending Order = iota
	// OrderDescending connects the farthest pairs first.
	OrderDescending
)

// Options configures Wire.
//
// Fields:
//
//	Connections: number of candidate pairs to use; 0 means "until one circuit".
//	Order      : OrderAscending (default) or OrderDescending.
type Options struct {
	Connections int
	Order       Order
}

// DefaultOptions returns Connections=0, OrderAscending.
func DefaultOptions() Options {
	return Options{Connections: 0, Order: OrderAscending}
}

// Validate reports ErrOptionViolation for negative Connections or an unknown Order.
func (o Options) Validate() error {
	if o.Connections < 0 {
		return fmt.Errorf("%w: Connections cannot be negative (%d)", ErrOptionViolation, o.Connections)
	}
	if o.Order != OrderAscending && o.Order != OrderDescending {
		return fmt.Errorf("%w: unknown Order %d", ErrOptionViolation, o.Order)
	}

	return nil
}

// Wiring is the outcome of Wire.
//
//	Circuits: boxes grouped by circuit, largest circuit first; isolated
//	           boxes are singleton circuits.
//	Last    : the last pair that merged two circuits; nil if none did.
type Wiring struct {
	Circuits [][]Position
	Last     *Pair
}
