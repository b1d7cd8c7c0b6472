// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Variant represents the model of the device.
type Variant string

const (
	LM75    Variant = "LM75"    // 9-bit resolution. Datasheet: https://datasheets.maximintegrated.com/en/ds/LM75.pdf
	LM75A   Variant = "LM75A"   // 9-bit resolution. Datasheet: https://www.nxp.com/docs/en/data-sheet/LM75A.pdf
	PCT2075 Variant = "PCT2075" // 11-bit resolution, sample period register. Datasheet: https://www.nxp.com/docs/en/data-sheet/PCT2075.pdf
)

type variant struct {
	resolution    Resolution
	hasSampleRate bool
	// Power-up content of the T_idle register, for parts that have one.
	defaultSampleRate byte
}

var variants = map[Variant]variant{
	LM75:    {resolution: Resolution9Bit},
	LM75A:   {resolution: Resolution9Bit},
	PCT2075: {resolution: Resolution11Bit, hasSampleRate: true, defaultSampleRate: 1},
}

const (
	// DefaultAddress is the power-up I²C address (0x48), with the A2, A1
	// and A0 pins all tied low.
	DefaultAddress uint16 = 0x48

	// Addresses of registers to read/write.
	regTemperature   byte = 0x00
	regConfiguration byte = 0x01
	regTHyst         byte = 0x02
	regTOS           byte = 0x03
	regTIdle         byte = 0x04

	// T_idle is a 5 bit field, in units of 100ms.
	maxSampleRate byte = 0x1f

	// The minimum temperature the device can read.
	MinimumTemperature physic.Temperature = physic.ZeroCelsius - 55*physic.Kelvin
	// The maximum temperature the device can read.
	MaximumTemperature physic.Temperature = physic.ZeroCelsius + 125*physic.Kelvin
)

var (
	errInvalidVariant      = errors.New("lm75: invalid variant")
	errInvalidFaultQueue   = errors.New("lm75: invalid fault queue value")
	errInvalidSampleRate   = errors.New("lm75: invalid sample rate value")
	errUnsupportedRegister = errors.New("lm75: register not available on this variant")
)

// PinAddr returns the bus address selected by the A2, A1 and A0 address
// pin straps. All pins low select DefaultAddress.
func PinAddr(a2, a1, a0 bool) uint16 {
	addr := DefaultAddress
	if a2 {
		addr |= 1 << 2
	}
	if a1 {
		addr |= 1 << 1
	}
	if a0 {
		addr |= 1
	}
	return addr
}

// Dev represents an LM75 sensor.
type Dev struct {
	d          *i2c.Dev
	mu         sync.Mutex
	shutdown   chan struct{}
	variant    Variant
	resolution Resolution
	// Shadow copy of the configuration register, updated only after a
	// write has been confirmed by the bus.
	config config
	// Shadow copy of the T_idle register. Meaningless on variants without
	// one.
	sampleRate    byte
	hasSampleRate bool
}

// NewI2C returns a new LM75 sensor using the specified bus, address and
// variant. Non-standard addresses are accepted as-is to support base
// address variants of compatible parts; use PinAddr for strapped addresses.
//
// The device is not touched during construction: the shadow configuration
// assumes the chip still holds its power-up defaults. Callers that cannot
// guarantee this should set the configuration explicitly.
func NewI2C(b i2c.Bus, addr uint16, v Variant) (*Dev, error) {
	info, ok := variants[v]
	if !ok {
		return nil, errInvalidVariant
	}
	return &Dev{
		d:             &i2c.Dev{Bus: b, Addr: addr},
		variant:       v,
		resolution:    info.resolution,
		sampleRate:    info.defaultSampleRate,
		hasSampleRate: info.hasSampleRate,
	}, nil
}

// writeConfig writes the configuration register and commits the shadow
// copy only once the bus transaction has succeeded.
func (d *Dev) writeConfig(c config) error {
	if err := d.d.Tx([]byte{regConfiguration, byte(c)}, nil); err != nil {
		return fmt.Errorf("lm75: %w", err)
	}
	d.config = c
	return nil
}

func (d *Dev) writeThreshold(reg byte, t physic.Temperature) error {
	msb, lsb := temperatureToCount(t, d.resolution)
	if err := d.d.Tx([]byte{reg, msb, lsb}, nil); err != nil {
		return fmt.Errorf("lm75: %w", err)
	}
	return nil
}

func (d *Dev) readThreshold(reg byte) (physic.Temperature, error) {
	r := make([]byte, 2)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, fmt.Errorf("lm75: %w", err)
	}
	return countToTemperature(r[0], r[1], d.resolution), nil
}

// Enable takes the device out of shutdown mode and resumes conversions.
func (d *Dev) Enable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeConfig(d.config.withLow(maskShutdown))
}

// Disable puts the device in shutdown mode. The temperature register keeps
// its last value and the I²C interface stays active.
func (d *Dev) Disable() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeConfig(d.config.withHigh(maskShutdown))
}

// ReadTemperature returns the current temperature reading.
func (d *Dev) ReadTemperature() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readThreshold(regTemperature)
}

// SetOsTemperature sets the overtemperature threshold (TOS) above which
// the OS output asserts. The value is quantized to the variant's
// resolution; its physical plausibility is not validated.
func (d *Dev) SetOsTemperature(t physic.Temperature) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeThreshold(regTOS, t)
}

// ReadOsTemperature returns the overtemperature threshold (TOS).
func (d *Dev) ReadOsTemperature() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readThreshold(regTOS)
}

// SetHysteresisTemperature sets the hysteresis threshold (THYST) below
// which an OS condition clears.
func (d *Dev) SetHysteresisTemperature(t physic.Temperature) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeThreshold(regTHyst, t)
}

// ReadHysteresisTemperature returns the hysteresis threshold (THYST).
func (d *Dev) ReadHysteresisTemperature() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readThreshold(regTHyst)
}

// SetFaultQueue sets the number of consecutive faults required before the
// OS output asserts.
func (d *Dev) SetFaultQueue(fq FaultQueue) error {
	bits, ok := faultQueueBits[fq]
	if !ok {
		return errInvalidFaultQueue
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeConfig(d.config.withLow(maskFaultQueue).withHigh(bits))
}

// FaultQueue returns the configured fault queue depth.
func (d *Dev) FaultQueue() FaultQueue {
	d.mu.Lock()
	defer d.mu.Unlock()
	return faultQueueCounts[byte(d.config)&maskFaultQueue]
}

// SetOsMode sets the OS output operation mode.
func (d *Dev) SetOsMode(m OsMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m == ModeInterrupt {
		return d.writeConfig(d.config.withHigh(maskOsMode))
	}
	return d.writeConfig(d.config.withLow(maskOsMode))
}

// OsMode returns the configured OS output operation mode.
func (d *Dev) OsMode() OsMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	if byte(d.config)&maskOsMode != 0 {
		return ModeInterrupt
	}
	return ModeComparator
}

// SetOsPolarity sets the active level of the OS output pin.
func (d *Dev) SetOsPolarity(p OsPolarity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p == ActiveHigh {
		return d.writeConfig(d.config.withHigh(maskOsPolarity))
	}
	return d.writeConfig(d.config.withLow(maskOsPolarity))
}

// OsPolarity returns the configured active level of the OS output pin.
func (d *Dev) OsPolarity() OsPolarity {
	d.mu.Lock()
	defer d.mu.Unlock()
	if byte(d.config)&maskOsPolarity != 0 {
		return ActiveHigh
	}
	return ActiveLow
}

// ReadConfiguration returns the device's configuration register. The shadow
// copy is left untouched. Refer to the datasheet for interpretation.
func (d *Dev) ReadConfiguration() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{regConfiguration}, r); err != nil {
		return 0, fmt.Errorf("lm75: %w", err)
	}
	return r[0], nil
}

// SetSampleRate sets the T_idle register, the conversion period in units
// of 100ms. Periods above 31 are rejected. The write is skipped when the
// register already holds the requested period. On variants without a
// sample rate register the call is a no-op: the part samples at its fixed
// rate and there is no register to write.
func (d *Dev) SetSampleRate(period byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasSampleRate {
		return nil
	}
	if period > maxSampleRate {
		return errInvalidSampleRate
	}
	if period == d.sampleRate {
		return nil
	}
	if err := d.d.Tx([]byte{regTIdle, period}, nil); err != nil {
		return fmt.Errorf("lm75: %w", err)
	}
	d.sampleRate = period
	return nil
}

// ReadSampleRate returns the T_idle register. Variants without a sample
// rate register fail rather than issue an undefined bus transaction.
func (d *Dev) ReadSampleRate() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasSampleRate {
		return 0, errUnsupportedRegister
	}
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{regTIdle}, r); err != nil {
		return 0, fmt.Errorf("lm75: %w", err)
	}
	return r[0], nil
}

// Sense reads the temperature from the device and writes the value to the
// specified env variable. Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	t, err := d.ReadTemperature()
	if err == nil {
		env.Temperature = t
	}
	return err
}

// SenseContinuous continuously reads from the device and writes the value
// to the returned channel. Implements physic.SenseEnv. To terminate the
// continuous read, call Halt().
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		return nil, errors.New("lm75: SenseContinuous already running")
	}
	d.shutdown = make(chan struct{})
	channel := make(chan physic.Env, 16)
	go func(ch chan physic.Env, shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				env := physic.Env{}
				if err := d.Sense(&env); err == nil && len(ch) < cap(ch) {
					ch <- env
				}
			}
		}
	}(channel, d.shutdown)
	return channel, nil
}

// Precision returns the smallest temperature step the variant can
// represent. Implements physic.SenseEnv. Note that the accuracy of the
// device is +/- 2 degrees Celsius.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = d.resolution.step()
	env.Pressure = 0
	env.Humidity = 0
}

// Halt stops a SenseContinuous operation if one is in progress. Implements
// conn.Resource. The device itself keeps converting; use Disable to put it
// in shutdown mode.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s: %s", d.variant, d.d.String())
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
