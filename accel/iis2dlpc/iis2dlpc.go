// Package iis2dlpc drives the ST IIS2DLPC 3-axis MEMS accelerometer over any register bus.
package iis2dlpc

import (
	"context"

	"github.com/mklimuk/mems"
	"github.com/mklimuk/mems/i2c"
)

// ID is the content of the WHO_AM_I register.
const ID = 0x44

const (
	PropertyDisable uint8 = 0
	PropertyEnable  uint8 = 1
)

// I2CAddress is the 7 bit bus address selected by the SA0 pin.
type I2CAddress uint8

const (
	I2CAddressLow  I2CAddress = 0x18
	I2CAddressHigh I2CAddress = 0x19
)

// Dev is an IIS2DLPC on a register bus. It keeps no shadow copy of device state:
// every getter goes to the bus. A Dev is not safe for concurrent use.
type Dev struct {
	bus   mems.RegisterBus
	delay mems.Delayer
}

func New(bus mems.RegisterBus, delay mems.Delayer) *Dev {
	if delay == nil {
		delay = mems.SleepDelay{}
	}
	return &Dev{bus: bus, delay: delay}
}

// NewI2C attaches to the device at addr on an addressable I2C bus.
func NewI2C(bus mems.I2CBus, addr I2CAddress, delay mems.Delayer) *Dev {
	return New(i2c.NewRegisterBus(bus, byte(addr)), delay)
}

// ReadFromRegister reads len(buffer) consecutive registers starting at reg.
func (d *Dev) ReadFromRegister(ctx context.Context, reg byte, buffer []byte) error {
	if err := d.bus.ReadRegister(ctx, reg, buffer); err != nil {
		return &mems.BusError{Op: "read", Reg: reg, Err: err}
	}
	return nil
}

// WriteToRegister writes buffer to consecutive registers starting at reg.
func (d *Dev) WriteToRegister(ctx context.Context, reg byte, buffer []byte) error {
	if err := d.bus.WriteRegister(ctx, reg, buffer); err != nil {
		return &mems.BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

func (d *Dev) DelayMs(ms uint32) {
	d.delay.DelayMs(ms)
}

// GetDeviceID returns WHO_AM_I. Callers compare it with ID.
func (d *Dev) GetDeviceID(ctx context.Context) (uint8, error) {
	var buf [1]byte
	if err := d.ReadFromRegister(ctx, byte(RegWhoAmI), buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ResetAndWait issues a soft reset and polls until the device clears the reset bit.
// The poll has no bound: a device that never clears the bit blocks the caller.
func (d *Dev) ResetAndWait(ctx context.Context) error {
	if err := d.Reset(ctx); err != nil {
		return err
	}
	for {
		rst, err := d.GetReset(ctx)
		if err != nil {
			return err
		}
		if rst == PropertyDisable {
			return nil
		}
	}
}
