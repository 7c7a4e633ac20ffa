package spi

import (
	"context"
	"fmt"

	"github.com/mklimuk/mems"
	gspi "gobot.io/x/gobot/v2/drivers/spi"
)

var _ mems.RegisterBus = &GobotBus{}

// gobotOps is the subset of a gobot SPI connection used for register access.
type gobotOps interface {
	ReadCommandData(command []byte, data []byte) error
	WriteBytes(data []byte) error
}

// GobotBus is a register bus over a gobot SPI driver.
type GobotBus struct {
	driver *gspi.Driver
	ops    gobotOps
}

// NewGobotBus starts a gobot SPI driver in mode 3. The speed defaults to 10 MHz unless set by opts.
func NewGobotBus(adaptor gspi.Connector, name string, opts ...func(gspi.Config)) (*GobotBus, error) {
	d := gspi.NewDriver(adaptor, name, opts...)
	d.SetMode(3)
	if d.GetSpeedOrDefault(0) == 0 {
		d.SetSpeed(10_000_000)
	}
	if err := d.Start(); err != nil {
		return nil, fmt.Errorf("SPI device start error: %w", err)
	}
	ops, ok := d.Connection().(gobotOps)
	if !ok {
		_ = d.Halt()
		return nil, fmt.Errorf("spi connection does not support required operations")
	}
	return &GobotBus{driver: d, ops: ops}, nil
}

func newGobotBusFrom(ops gobotOps) *GobotBus {
	return &GobotBus{ops: ops}
}

func (g *GobotBus) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	err := g.ops.ReadCommandData([]byte{readFlag | reg}, buffer)
	if err != nil {
		return fmt.Errorf("could not read from spi register %x: %w", reg, err)
	}
	return nil
}

func (g *GobotBus) WriteRegister(ctx context.Context, reg byte, buffer []byte) error {
	err := g.ops.WriteBytes(append([]byte{reg &^ readFlag}, buffer...))
	if err != nil {
		return fmt.Errorf("could not write to spi register %x: %w", reg, err)
	}
	return nil
}

func (g *GobotBus) Halt() error {
	if g.driver == nil {
		return nil
	}
	return g.driver.Halt()
}
