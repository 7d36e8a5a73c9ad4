// Package input reads the line-oriented puzzle inputs.
//
// Every puzzle package parses from an io.Reader; this package only owns the
// scanner setup and the file handling used by the command line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single input line. Puzzle rows rarely exceed a few
// kilobytes, but product ID ranges arrive as one long comma-separated line.
const maxLineBytes = 4 << 20

// ErrStop may be returned from a ForLines callback to end the scan early
// without reporting an error.
var ErrStop = errors.New("input: stop")

// Scanner returns a line scanner over r with an enlarged buffer.
func Scanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return s
}

// ForLines calls onLine for each line of r, without its line terminator.
// The y value is the row number, starting with 0.
func ForLines(r io.Reader, onLine func(y int, line string) error) error {
	s := Scanner(r)
	for y := 0; s.Scan(); y++ {
		if err := onLine(y, s.Text()); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}

			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("input: scan: %w", err)
	}

	return nil
}

// Lines returns all lines of r.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	err := ForLines(r, func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// TrimTrailingBlank drops trailing empty lines, which editors like to leave
// at the end of grid inputs.
func TrimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}

	return lines[:end]
}

// Open opens the input file at path. The caller closes it.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return f, nil
}
