package mems

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// ErrUnexpectedValue is available to callers validating register content.
// No register operation of the drivers in this module returns it.
var ErrUnexpectedValue = errors.New("unexpected value read from register")

type BusReader interface {
	Read(ctx context.Context, buffer []byte) error
}

type BusWriter interface {
	Write(ctx context.Context, buffer []byte) error
}

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

type I2CBus interface {
	AddressableReader
	AddressableWriter
}

// I2CTransactor is implemented by buses able to write and read in a single
// transaction with a repeated start.
type I2CTransactor interface {
	TxAddr(ctx context.Context, address byte, w, r []byte) error
}

// RegisterBus reads and writes consecutive device registers starting at reg.
// Multi-byte access relies on the device auto-incrementing the register address.
type RegisterBus interface {
	ReadRegister(ctx context.Context, reg byte, buffer []byte) error
	WriteRegister(ctx context.Context, reg byte, buffer []byte) error
}

// Delayer blocks the caller for the given number of milliseconds.
type Delayer interface {
	DelayMs(ms uint32)
}

// SleepDelay is a Delayer backed by time.Sleep.
type SleepDelay struct{}

func (SleepDelay) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// BusError marks a failure as originating in the bus layer.
type BusError struct {
	Op  string
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bus %s at register %#02x failed: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
