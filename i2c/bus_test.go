package i2c

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestGenericBus_RegisterAccess(t *testing.T) {
	ctx := context.Background()
	playback := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: 0x19, W: []byte{0x0F}, R: []byte{0x44}},
		{Addr: 0x19, W: []byte{0x25, 0x14}},
		{Addr: 0x19, W: []byte{0x28}, R: []byte{0xFC, 0xFF, 0x04, 0x00}},
	}}
	bus := NewGenericBusFrom(playback)
	rb := NewRegisterBus(bus, 0x19)

	id := make([]byte, 1)
	require.NoError(t, rb.ReadRegister(ctx, 0x0F, id))
	assert.Equal(t, byte(0x44), id[0])
	require.NoError(t, rb.WriteRegister(ctx, 0x25, []byte{0x14}))
	out := make([]byte, 4)
	require.NoError(t, rb.ReadRegister(ctx, 0x28, out))
	assert.Equal(t, []byte{0xFC, 0xFF, 0x04, 0x00}, out)
	require.NoError(t, bus.Close())
}

func TestGenericBus_Failure(t *testing.T) {
	bus := NewGenericBusFrom(&i2ctest.Playback{DontPanic: true})
	err := bus.WriteToAddr(context.Background(), 0x18, []byte{0x20, 0x00})
	assert.ErrorContains(t, err, "could not write to i2c bus 18")
}
