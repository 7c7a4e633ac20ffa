// Package regbank is an in-memory register file used to test register drivers.
package regbank

import (
	"context"
	"fmt"
)

var ErrInjected = fmt.Errorf("injected bus failure")

// Access is one recorded bus transaction.
type Access struct {
	Write bool
	Reg   byte
	Data  []byte
}

// Bank implements mems.RegisterBus over 256 byte-wide registers.
// Multi-byte access auto-increments the address.
type Bank struct {
	Regs [256]byte
	Log  []Access

	failRead  map[byte]bool
	failWrite map[byte]bool
	// OnRead, when set, runs before each read and may mutate Regs.
	OnRead func(reg byte)
}

func New() *Bank {
	return &Bank{failRead: map[byte]bool{}, failWrite: map[byte]bool{}}
}

func (b *Bank) FailRead(reg byte)  { b.failRead[reg] = true }
func (b *Bank) FailWrite(reg byte) { b.failWrite[reg] = true }

func (b *Bank) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	if b.failRead[reg] {
		return ErrInjected
	}
	if b.OnRead != nil {
		b.OnRead(reg)
	}
	for i := range buffer {
		buffer[i] = b.Regs[reg+byte(i)]
	}
	b.Log = append(b.Log, Access{Reg: reg, Data: append([]byte(nil), buffer...)})
	return nil
}

func (b *Bank) WriteRegister(ctx context.Context, reg byte, buffer []byte) error {
	if b.failWrite[reg] {
		return ErrInjected
	}
	copy(b.Regs[reg:], buffer)
	b.Log = append(b.Log, Access{Write: true, Reg: reg, Data: append([]byte(nil), buffer...)})
	return nil
}

// Writes returns the addresses written, in order.
func (b *Bank) Writes() []byte {
	var out []byte
	for _, a := range b.Log {
		if a.Write {
			out = append(out, a.Reg)
		}
	}
	return out
}

func (b *Bank) Reset() {
	b.Log = nil
}
