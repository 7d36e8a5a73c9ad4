// Package commands defines the aoc CLI.
//
// Commands
//
//   - dial         Count the times the dial points at 0
//   - products     Sum invalid product IDs
//   - joltage      Sum the largest joltage of every bank
//   - forklift     Count removable paper rolls
//   - ingredients  Count fresh ingredients
//   - homework     Total a column-wise worksheet
//   - beam         Count beam splits or timelines
//   - circuit      Wire junction boxes into circuits
//   - tiles        Find the largest red-tile rectangle
//   - batch        Solve every run of a YAML manifest in parallel
//   - list         List the registered puzzles
//
// Every puzzle command takes one input file and prints a single integer.
//
// # Implementation
//
// The root command loads the optional YAML config and builds a zap logger
// before any subcommand runs; logs go to stderr so stdout carries only
// answers. Solving itself goes through the puzzle registry, the same path
// the batch runner uses.
package commands
