// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"testing"
)

// withHigh followed by withLow on the same mask must zero exactly the bits
// inside the mask and restore nothing else.
func TestConfigBitIsolation(t *testing.T) {
	masks := []byte{maskShutdown, maskOsMode, maskOsPolarity, maskFaultQueue}
	for start := 0; start <= 0xff; start++ {
		c := config(start)
		for _, mask := range masks {
			got := c.withHigh(mask).withLow(mask)
			if byte(got)&^mask != byte(start)&^mask {
				t.Fatalf("mask 0x%02x on 0x%02x: bits outside the mask changed: 0x%02x", mask, start, got)
			}
			if byte(got)&mask != 0 {
				t.Fatalf("mask 0x%02x on 0x%02x: bits inside the mask not cleared: 0x%02x", mask, start, got)
			}
		}
	}
}

func TestConfigFieldMasksDoNotOverlap(t *testing.T) {
	var seen byte
	for _, mask := range []byte{maskShutdown, maskOsMode, maskOsPolarity, maskFaultQueue} {
		if seen&mask != 0 {
			t.Fatalf("mask 0x%02x overlaps 0x%02x", mask, seen)
		}
		seen |= mask
	}
}

// The fault queue encoding is a fixed bijection between {1, 2, 4, 6} and the
// four 2-bit patterns.
func TestFaultQueueBijection(t *testing.T) {
	expected := map[FaultQueue]byte{
		FaultQueue1: 0x00,
		FaultQueue2: 0x08,
		FaultQueue4: 0x10,
		FaultQueue6: 0x18,
	}
	if len(faultQueueBits) != len(expected) {
		t.Fatalf("expected %d fault queue encodings, got %d", len(expected), len(faultQueueBits))
	}
	for fq, bits := range expected {
		if got := faultQueueBits[fq]; got != bits {
			t.Errorf("FaultQueue%d: got bits 0x%02x, expected 0x%02x", fq, got, bits)
		}
		if got := faultQueueCounts[bits]; got != fq {
			t.Errorf("bits 0x%02x: decoded to FaultQueue%d, expected FaultQueue%d", bits, got, fq)
		}
		if bits&^maskFaultQueue != 0 {
			t.Errorf("FaultQueue%d: bits 0x%02x outside the field mask", fq, bits)
		}
	}
}
