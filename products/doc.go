// Package products scans product ID ranges for invalid IDs: IDs whose
// decimal digits are one block repeated.
//
// Input is one or more lines of comma-separated "first-last" ranges, e.g.
//
//	11-22,95-115,998-1012
//
// Tokens that are not ranges are skipped.
//
// Modes:
//
//   - ModeRepeated (default): a block repeated two or more times
//     (123123123, 1111111).
//   - ModeDoubled: a block repeated exactly twice (123123, 1111).
//
// Complexity: SumInvalid is O(N·d) for N IDs of d digits each; ranges are
// scanned ID by ID.
package products
