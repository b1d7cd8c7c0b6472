// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

// config is the 1 byte configuration register. The driver keeps a shadow
// copy so partial bit edits never require a read-modify-write bus cycle.
type config byte

const (
	// Bit masks for the configuration register fields. The fields must not
	// overlap.
	maskShutdown   byte = 0x01
	maskOsMode     byte = 0x02
	maskOsPolarity byte = 0x04
	maskFaultQueue byte = 0x18
)

// withHigh returns the register value with all bits in mask forced to 1,
// the rest unchanged.
func (c config) withHigh(mask byte) config {
	return c | config(mask)
}

// withLow returns the register value with all bits in mask forced to 0,
// the rest unchanged.
func (c config) withLow(mask byte) config {
	return c &^ config(mask)
}

// FaultQueue is the number of consecutive faults necessary to trigger an
// OS condition.
type FaultQueue byte

const (
	// FaultQueue1 asserts OS after a single fault. Power-up default.
	FaultQueue1 FaultQueue = 1
	// FaultQueue2 asserts OS after 2 consecutive faults.
	FaultQueue2 FaultQueue = 2
	// FaultQueue4 asserts OS after 4 consecutive faults.
	FaultQueue4 FaultQueue = 4
	// FaultQueue6 asserts OS after 6 consecutive faults.
	FaultQueue6 FaultQueue = 6
)

// The hardware encoding is a fixed table, not a binary count. Keep the two
// directions as literal lookups of each other.
var faultQueueBits = map[FaultQueue]byte{
	FaultQueue1: 0x00,
	FaultQueue2: 0x08,
	FaultQueue4: 0x10,
	FaultQueue6: 0x18,
}

var faultQueueCounts = map[byte]FaultQueue{
	0x00: FaultQueue1,
	0x08: FaultQueue2,
	0x10: FaultQueue4,
	0x18: FaultQueue6,
}

// OsPolarity is the active level of the OS output pin.
type OsPolarity byte

const (
	// ActiveLow drives OS low on an alert. Power-up default.
	ActiveLow OsPolarity = 0
	// ActiveHigh drives OS high on an alert.
	ActiveHigh OsPolarity = 1
)

// OsMode is the OS output operation mode.
type OsMode byte

const (
	// ModeComparator makes OS behave like a thermostat: asserted above TOS,
	// released below THYST. Power-up default.
	ModeComparator OsMode = 0
	// ModeInterrupt makes OS assert once per threshold crossing; it is
	// cleared by reading any register.
	ModeInterrupt OsMode = 1
)
