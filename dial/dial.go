package dial

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/internal/input"
)

var rotationRx = regexp.MustCompile(`^([LR])(\d+)$`)

// ParseRotations reads one rotation per line. Lines that are not of the
// form L<n> or R<n> are skipped.
func ParseRotations(r io.Reader) ([]Rotation, error) {
	var rots []Rotation
	err := input.ForLines(r, func(y int, line string) error {
		m := rotationRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("dial: line %d: %w", y+1, err)
		}
		dir := Right
		if m[1] == "L" {
			dir = Left
		}
		rots = append(rots, Rotation{Direction: dir, Distance: n})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rots, nil
}

// Spin turns the dial from current by rot on a ring of maxValue+1 positions.
// The returned Step carries the new position and the number of clicks
// 1..Distance at which the dial pointed at 0 (the final click included).
// Zeros is left for the caller.
//
// Complexity: O(1).
func Spin(current int, rot Rotation, maxValue int) Step {
	size := maxValue + 1
	d := rot.Distance

	if rot.Direction == Right {
		// Positions current+1 .. current+d; every multiple of size is a 0.
		return Step{
			Dial:   (current + d) % size,
			Clicks: (current + d) / size,
		}
	}

	// Turning left, the first 0 is reached after `current` clicks
	// (after a full turn when already at 0), then every size clicks.
	clicks := 0
	switch {
	case current == 0:
		clicks = d / size
	case d >= current:
		clicks = (d-current)/size + 1
	}

	return Step{
		Dial:   ((current-d)%size + size) % size,
		Clicks: clicks,
	}
}

// CountZeros runs rots from opts.Start and counts zeros according to
// opts.AnyClick.
//
// Steps:
//  1. Validate opts.
//  2. Record the starting position as Steps[0].
//  3. Spin once per rotation; a landing on 0 adds one, or in AnyClick mode
//     every click at 0 adds one.
//
// Complexity: O(R) time and memory.
func CountZeros(rots []Rotation, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	dial, zeros := opts.Start, 0
	steps := make([]Step, 0, len(rots)+1)
	steps = append(steps, Step{Dial: dial})

	for _, rot := range rots {
		step := Spin(dial, rot, opts.MaxValue)
		dial = step.Dial
		switch {
		case opts.AnyClick:
			zeros += step.Clicks
		case dial == 0:
			zeros++
		}
		step.Zeros = zeros
		steps = append(steps, step)
	}

	return Result{Steps: steps, Zeros: zeros}, nil
}

// Solve parses r and returns the zero count.
func Solve(r io.Reader, opts Options) (int, error) {
	rots, err := ParseRotations(r)
	if err != nil {
		return 0, err
	}
	res, err := CountZeros(rots, opts)
	if err != nil {
		return 0, err
	}

	return res.Zeros, nil
}
