package joltage

import "errors"

var (
	// ErrInvalidDigit indicates a bank holds something other than 0-9.
	ErrInvalidDigit = errors.New("joltage: bank must contain only digits")

	// ErrBadBatteryCount indicates n < 1.
	ErrBadBatteryCount = errors.New("joltage: number of batteries must be positive")
)

// DefaultBatteries is the number of batteries turned on per bank.
const DefaultBatteries = 2
