package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/katalvlaran/advent/internal/input"
)

var (
	// ErrUnknownPuzzle indicates a name with no registered solver.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")

	// ErrDuplicate indicates a second registration under the same name.
	ErrDuplicate = errors.New("puzzle: already registered")
)

// Solver answers a puzzle from its input.
type Solver func(r io.Reader, p Params) (int, error)

// Entry is a registered solver.
type Entry struct {
	Name    string
	Summary string
	Solve   Solver
}

var (
	mu       sync.RWMutex
	registry = map[string]Entry{}
)

// Register adds e under e.Name.
//
// Error Conditions:
//   - ErrDuplicate : e.Name is taken.
func Register(e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[e.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, e.Name)
	}
	registry[e.Name] = e

	return nil
}

// mustRegister is Register for init-time wiring.
func mustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownPuzzle, name)
	}

	return e, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Solve opens path and answers the puzzle registered under name.
// The context is checked before the file is read; solvers themselves run
// to completion.
func Solve(ctx context.Context, name, path string, p Params) (int, error) {
	e, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	f, err := input.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	answer, err := e.Solve(f, p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return answer, nil
}
