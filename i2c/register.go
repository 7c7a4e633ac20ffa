package i2c

import (
	"context"
	"fmt"

	"github.com/mklimuk/mems"
	"github.com/mklimuk/mems/snsctx"
)

var _ mems.RegisterBus = &RegisterBus{}

// RegisterBus addresses the registers of one device on an I2C bus. A write sends the register
// address followed by the data; a read sets the register pointer and then reads.
type RegisterBus struct {
	bus  mems.I2CBus
	addr byte
}

func NewRegisterBus(bus mems.I2CBus, addr byte) *RegisterBus {
	return &RegisterBus{bus: bus, addr: addr}
}

func (r *RegisterBus) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	snsctx.Trace(ctx, "register read", "addr", fmt.Sprintf("%#02x", r.addr), "reg", fmt.Sprintf("%#02x", reg), "len", len(buffer))
	if tx, ok := r.bus.(mems.I2CTransactor); ok {
		return tx.TxAddr(ctx, r.addr, []byte{reg}, buffer)
	}
	err := r.bus.WriteToAddr(ctx, r.addr, []byte{reg})
	if err != nil {
		return fmt.Errorf("could not set register pointer: %w", err)
	}
	err = r.bus.ReadFromAddr(ctx, r.addr, buffer)
	if err != nil {
		return fmt.Errorf("could not read register content: %w", err)
	}
	return nil
}

func (r *RegisterBus) WriteRegister(ctx context.Context, reg byte, buffer []byte) error {
	snsctx.Trace(ctx, "register write", "addr", fmt.Sprintf("%#02x", r.addr), "reg", fmt.Sprintf("%#02x", reg), "data", fmt.Sprintf("% x", buffer))
	frame := make([]byte, 0, len(buffer)+1)
	frame = append(frame, reg)
	frame = append(frame, buffer...)
	err := r.bus.WriteToAddr(ctx, r.addr, frame)
	if err != nil {
		return fmt.Errorf("could not write register: %w", err)
	}
	return nil
}
