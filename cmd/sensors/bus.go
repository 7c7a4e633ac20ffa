package main

import (
	"fmt"
	"io"

	"github.com/mklimuk/mems/accel/iis2dlpc"
	"github.com/mklimuk/mems/adapter"
	"github.com/mklimuk/mems/i2c"
	"github.com/mklimuk/mems/spi"
	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"
)

var busFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "bus",
		Aliases: []string{"b"},
		Value:   "i2c",
		Usage:   "transport: i2c, spi, mcp2221, gobot-i2c or gobot-spi",
	},
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"d"},
		Usage:   "periph bus or port name (e.g. /dev/i2c-1, SPI0.0); empty opens the first available",
	},
	&cli.StringFlag{
		Name:    "addr",
		Aliases: []string{"a"},
		Value:   "h",
		Usage:   "I2C address select: l (SA0 low, 0x18) or h (SA0 high, 0x19)",
	},
	&cli.IntFlag{
		Name:  "gobot-bus",
		Value: 0,
		Usage: "bus number on the gobot I2C adaptor",
	},
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func parseAddress(text string) (iis2dlpc.I2CAddress, error) {
	switch text {
	case "l", "low":
		return iis2dlpc.I2CAddressLow, nil
	case "h", "high":
		return iis2dlpc.I2CAddressHigh, nil
	}
	return 0, fmt.Errorf("unknown address select %q (valid: l, h)", text)
}

// openDevice connects to the accelerometer over the transport selected by the global flags.
// The returned closer releases the transport.
func openDevice(c *cli.Context) (*iis2dlpc.Dev, io.Closer, error) {
	addr, err := parseAddress(c.String("addr"))
	if err != nil {
		return nil, nil, err
	}
	switch c.String("bus") {
	case "i2c":
		bus, err := i2c.NewGenericBus(c.String("device"))
		if err != nil {
			return nil, nil, err
		}
		return iis2dlpc.NewI2C(bus, addr, nil), bus, nil
	case "mcp2221":
		if err = adapter.Init(); err != nil {
			return nil, nil, err
		}
		bridge := adapter.NewMCP2221()
		return iis2dlpc.NewI2C(bridge, addr, nil), closerFunc(func() error { return nil }), nil
	case "spi":
		bus, err := spi.Open(c.String("device"))
		if err != nil {
			return nil, nil, err
		}
		return iis2dlpc.New(bus, nil), bus, nil
	case "gobot-i2c":
		npi := nanopi.NewNeoAdaptor()
		if err = npi.I2cBusAdaptor.Connect(); err != nil {
			return nil, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		bus, driver, err := i2c.NewGobotBus(npi, byte(addr), c.Int("gobot-bus"))
		if err != nil {
			_ = npi.I2cBusAdaptor.Finalize()
			return nil, nil, err
		}
		return iis2dlpc.New(bus, nil), closerFunc(func() error {
			_ = driver.Halt()
			return npi.I2cBusAdaptor.Finalize()
		}), nil
	case "gobot-spi":
		npi := nanopi.NewNeoAdaptor()
		if err = npi.SpiBusAdaptor.Connect(); err != nil {
			return nil, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		bus, err := spi.NewGobotBus(npi, "iis2dlpc")
		if err != nil {
			_ = npi.SpiBusAdaptor.Finalize()
			return nil, nil, err
		}
		return iis2dlpc.New(bus, nil), closerFunc(func() error {
			_ = bus.Halt()
			return npi.SpiBusAdaptor.Finalize()
		}), nil
	}
	return nil, nil, fmt.Errorf("unknown bus %q", c.String("bus"))
}
