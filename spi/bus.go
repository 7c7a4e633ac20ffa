// Package spi carries register access over 4-wire SPI. Reads set bit 7 of the address byte.
package spi

import (
	"context"
	"fmt"

	"github.com/mklimuk/mems"
	"github.com/mklimuk/mems/snsctx"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

const (
	readFlag = 0x80

	DefaultSpeed = 10 * physic.MegaHertz
	DefaultMode  = spi.Mode3
)

var _ mems.RegisterBus = &Bus{}

// Bus is a register bus over a periph.io SPI connection.
type Bus struct {
	conn spi.Conn
	port spi.PortCloser
}

// Open initializes the host drivers and connects to the named port (e.g. "SPI0.0")
// at 10 MHz, mode 3, 8 bits per word.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open spi port: %w", err)
	}
	conn, err := port.Connect(DefaultSpeed, DefaultMode, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("could not connect to spi port: %w", err)
	}
	return &Bus{conn: conn, port: port}, nil
}

// NewBus wraps an established connection.
func NewBus(conn spi.Conn) *Bus {
	return &Bus{conn: conn}
}

func (b *Bus) ReadRegister(ctx context.Context, reg byte, buffer []byte) error {
	w := make([]byte, len(buffer)+1)
	r := make([]byte, len(buffer)+1)
	w[0] = readFlag | reg
	snsctx.Trace(ctx, "register read", "reg", fmt.Sprintf("%#02x", reg), "len", len(buffer))
	err := b.conn.Tx(w, r)
	if err != nil {
		return fmt.Errorf("could not read from spi register %x: %w", reg, err)
	}
	copy(buffer, r[1:])
	return nil
}

func (b *Bus) WriteRegister(ctx context.Context, reg byte, buffer []byte) error {
	w := append([]byte{reg &^ readFlag}, buffer...)
	snsctx.Trace(ctx, "register write", "reg", fmt.Sprintf("%#02x", reg), "data", fmt.Sprintf("% x", buffer))
	err := b.conn.Tx(w, nil)
	if err != nil {
		return fmt.Errorf("could not write to spi register %x: %w", reg, err)
	}
	return nil
}

func (b *Bus) Close() error {
	if b.port == nil {
		return nil
	}
	return b.port.Close()
}
