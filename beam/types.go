package beam

import "errors"

// ErrNoStart indicates the manifold has no 'S'.
var ErrNoStart = errors.New("beam: manifold has no start marker")

const (
	// Start marks where the beam enters.
	Start = 'S'
	// Splitter splits a beam into left and right beams.
	Splitter = '^'
)
