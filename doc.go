// Package advent holds solvers for the Advent of Code 2025 puzzles, one
// top-level package per puzzle, plus the aoc command that runs them.
//
// Packages:
//
//	dial/        rotating safe dial; counts landings on (or passes over) 0
//	products/    invalid product IDs made of a repeated digit block
//	joltage/     largest number kept from a digit bank, greedy selection
//	forklift/    paper rolls with fewer than four neighbours, repeated removal
//	ingredients/ fresh ID ranges: merge, membership and coverage
//	homework/    column-wise worksheets read by rows or by digit columns
//	beam/        a downward beam through splitters; splits and timelines
//	circuit/     junction boxes wired closest-first with a disjoint set
//	tiles/       rectangles between red tiles, inside a traced outline
//	gridgraph/   the character grid shared by forklift, homework and beam
//
// Each puzzle package parses from an io.Reader, exposes pure functions over
// the parsed value and a Solve entry point. None of them log or keep global
// state; internal/puzzle registers them for cmd/aoc.
//
// Quick start:
//
//	go run ./cmd/aoc dial input.txt --any-click
//	go run ./cmd/aoc batch aoc.yaml --jobs 4
package advent
