package i2c

import (
	"context"
	"fmt"

	"github.com/mklimuk/mems"
	gi2c "gobot.io/x/gobot/v2/drivers/i2c"
)

var _ mems.RegisterBus = &GobotBus{}

// GobotDevice is the part of a gobot I2C driver used for register access.
type GobotDevice interface {
	Write(data []byte) error
	Read(data []byte) error
}

// GobotBus reaches device registers through a gobot I2C driver bound to one address.
type GobotBus struct {
	dev GobotDevice
}

// NewGobotBus starts a generic gobot driver for the device at addr on the adaptor bus busNr.
func NewGobotBus(adaptor gi2c.Connector, addr byte, busNr int) (*GobotBus, *gi2c.GenericDriver, error) {
	driver := gi2c.NewGenericDriver(adaptor, "iis2dlpc", int(addr), func(c gi2c.Config) {
		c.SetBus(busNr)
	})
	err := driver.Start()
	if err != nil {
		return nil, nil, fmt.Errorf("start error: %w", err)
	}
	return &GobotBus{dev: driver}, driver, nil
}

func NewGobotBusFrom(dev GobotDevice) *GobotBus {
	return &GobotBus{dev: dev}
}

func (g *GobotBus) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	err := g.dev.Write([]byte{reg})
	if err != nil {
		return fmt.Errorf("could not set register pointer: %w", err)
	}
	err = g.dev.Read(buffer)
	if err != nil {
		return fmt.Errorf("could not read register content: %w", err)
	}
	return nil
}

func (g *GobotBus) WriteRegister(ctx context.Context, reg byte, buffer []byte) error {
	err := g.dev.Write(append([]byte{reg}, buffer...))
	if err != nil {
		return fmt.Errorf("could not write register: %w", err)
	}
	return nil
}
