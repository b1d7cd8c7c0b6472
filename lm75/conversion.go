// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"periph.io/x/conn/v3/physic"
)

// Resolution is the number of significant bits the chip exposes in its
// 2 byte temperature registers. It is a property of the physical part and
// is fixed for the lifetime of a Dev.
type Resolution byte

const (
	// Resolution9Bit is the LM75 format: 0.5°C per count, the low 7 bits
	// of the register are undefined.
	Resolution9Bit Resolution = iota
	// Resolution11Bit is the PCT2075 format: 0.125°C per count, the low
	// 5 bits of the register are undefined.
	Resolution11Bit
)

// step returns the temperature value of one count at this resolution.
func (r Resolution) step() physic.Temperature {
	if r == Resolution11Bit {
		return 125 * physic.MilliKelvin
	}
	return 500 * physic.MilliKelvin
}

// shift returns the count's position within the 16 bit register word. The
// same value drives both conversion directions so they cannot disagree on
// which bits are significant.
func (r Resolution) shift() uint {
	if r == Resolution11Bit {
		return 5
	}
	return 7
}

// mask returns the word mask covering the defined register bits.
func (r Resolution) mask() uint16 {
	return 0xffff << r.shift()
}

// temperatureToCount converts a temperature into the 2 byte big-endian
// register format used by the TOS and THYST registers. The value is rounded
// to the nearest representable count. No range check is performed;
// temperatures outside the chip's span wrap through two's complement.
func temperatureToCount(temp physic.Temperature, res Resolution) (byte, byte) {
	delta := int64(temp - physic.ZeroCelsius)
	step := int64(res.step())
	var n int64
	if delta >= 0 {
		n = (delta + step/2) / step
	} else {
		n = (delta - step/2) / step
	}
	count := uint16(int16(n)<<res.shift()) & res.mask()
	return byte(count >> 8), byte(count & 0xff)
}

// countToTemperature converts the raw register bytes into a temperature.
// The top bit of the word is the sign bit; the arithmetic shift pulls the
// count back down with the sign intact.
func countToTemperature(msb, lsb byte, res Resolution) physic.Temperature {
	count := uint16(msb)<<8 | uint16(lsb)
	n := int16(count&res.mask()) >> res.shift()
	return physic.ZeroCelsius + physic.Temperature(n)*res.step()
}
