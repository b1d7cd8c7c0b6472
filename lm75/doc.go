// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// lm75 provides a package for interfacing an LM75 I2C temperature sensor
// and thermal watchdog. The chip compares each temperature reading against
// a programmable overtemperature threshold (TOS) and drives its open-drain
// OS output when the threshold is exceeded, releasing it again once the
// temperature falls below the hysteresis threshold (THYST). The OS output
// operates in either comparator or interrupt mode, and a fault queue sets
// how many consecutive faults are required before it asserts.
//
// This driver is also compatible with the large family of pin-compatible
// parts, among them the LM75A/LM75B/LM75C, AT30TS75A, DS1775, DS75, DS7505,
// G751, MAX7500-MAX7504, MAX6625, MCP9800-MCP9803, STDS75, TCN75 and the
// NXP PCT2075. The PCT2075 additionally offers 11-bit resolution and a
// programmable sample period register.
//
// Range: -55°C - 125°C
//
// Accuracy: +/- 2°C
//
// Resolution: 0.5°C (9-bit parts), 0.125°C (PCT2075)
//
// Power-up defaults are comparator mode, TOS = +80°C and THYST = +75°C.
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://datasheets.maximintegrated.com/en/ds/LM75.pdf
package lm75
