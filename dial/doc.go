// Package dial simulates a numbered safe dial driven by rotation
// instructions and counts how often it points at zero.
//
// What:
//
//   - The dial is a ring of positions 0..MaxValue (default 0..99) starting
//     at Start (default 50).
//   - Each instruction is "L<n>" or "R<n>": n clicks towards lower or
//     higher numbers, wrapping around the ring.
//
// Counting modes:
//
//   - Default: count the rotations that end with the dial at 0.
//   - AnyClick: count every single click that leaves the dial at 0,
//     including the ones in the middle of a rotation and full turns.
//
// Complexity: O(R) for R rotations; a rotation is O(1) regardless of its
// distance.
//
// Errors:
//
//   - ErrBadOptions: MaxValue < 0 or Start outside 0..MaxValue.
package dial
