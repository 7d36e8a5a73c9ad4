// Package homework solves column arithmetic worksheets.
//
// A worksheet is a block of rows of numbers followed by one row of
// operators ('+' or '*'). Each problem is a vertical group; its answer is
// the sum or product of its numbers, and the worksheet answer is the sum of
// all problem answers. Several worksheets may follow each other.
//
// Two readings of the same sheet are supported:
//
//   - SolveRows: numbers are whitespace separated; the i-th operator applies
//     to the i-th number of every row.
//   - SolveTransposed: every character column is one number, its digits
//     read top to bottom. Problems are separated by blank columns and the
//     operator sits under the leftmost column of its problem.
//
// Example:
//
//	123 328  51 64
//	 45 64  387 23
//	  6 98  215 314
//	*   +   *   +
//
// SolveRows gives 4277556; SolveTransposed gives 3263827.
//
// Complexity: O(W×H) for both.
package homework
