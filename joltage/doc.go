// Package joltage picks batteries from banks to maximise joltage.
//
// A bank is a line of digits, one digit per battery. Turning on n
// batteries produces the n-digit number formed by their digits in bank
// order; the answer is the sum of every bank's best number.
//
// Algorithm (greedy):
//
//	For output digit i (0-based) the choice is limited to the window
//	bank[start : len(bank)-n+i+1], which leaves enough batteries for the
//	remaining digits. Take the first maximal digit of the window and
//	continue right after it. Once the batteries left equal the digits
//	still needed, the rest of the bank is taken as is.
//
// Complexity: O(n·len(bank)) per bank, O(len(bank)) for n = 2.
package joltage
