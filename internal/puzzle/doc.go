// Package puzzle registers every solver under a short name and runs them,
// one at a time or as a bounded parallel batch.
//
// A Solver reads its input from an io.Reader and picks the fields of Params
// it cares about; the registry is filled at init time and read-only after.
//
// Batch runs are independent: one failing run is recorded in its Outcome and
// does not cancel the others. Only context cancellation stops a batch early.
package puzzle
