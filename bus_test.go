package mems

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusError(t *testing.T) {
	cause := fmt.Errorf("could not set register pointer: %w", ErrBusBusy)
	var err error = &BusError{Op: "read", Reg: 0x0F, Err: cause}

	assert.EqualError(t, err, "bus read at register 0x0f failed: could not set register pointer: I2C engine is busy (command not completed)")
	assert.ErrorIs(t, err, ErrBusBusy)
	assert.False(t, errors.Is(err, ErrUnexpectedValue))

	var busErr *BusError
	require.ErrorAs(t, fmt.Errorf("could not reset device: %w", err), &busErr)
	assert.Equal(t, byte(0x0F), busErr.Reg)
	assert.Equal(t, "read", busErr.Op)
}

type countingDelay struct{ total uint32 }

func (c *countingDelay) DelayMs(ms uint32) { c.total += ms }

func TestDelayer(t *testing.T) {
	var d Delayer = &countingDelay{}
	d.DelayMs(5)
	d.DelayMs(10)
	assert.Equal(t, uint32(15), d.(*countingDelay).total)
	SleepDelay{}.DelayMs(0)
}
