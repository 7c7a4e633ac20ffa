package i2c

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/mems"
	"github.com/mklimuk/mems/snsctx"
)

// MockI2CBus is a mock implementation of mems.I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
		copy(buffer, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTransactor adds combined transactions to MockI2CBus.
type MockTransactor struct {
	MockI2CBus
}

func (m *MockTransactor) TxAddr(ctx context.Context, address byte, w, r []byte) error {
	args := m.Called(ctx, address, w, r)
	if data, ok := args.Get(0).([]byte); ok {
		copy(r, data)
	}
	return args.Error(1)
}

func TestRegisterBus_Read(t *testing.T) {
	ctx := snsctx.SetVerbose(context.Background(), true)
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", ctx, byte(0x19), []byte{0x28}).Return(nil).Once()
	bus.On("ReadFromAddr", ctx, byte(0x19), mock.Anything).Return([]byte{0x00, 0x80}, nil).Once()

	buf := make([]byte, 2)
	require.NoError(t, NewRegisterBus(bus, 0x19).ReadRegister(ctx, 0x28, buf))
	assert.Equal(t, []byte{0x00, 0x80}, buf)
	bus.AssertExpectations(t)
}

func TestRegisterBus_ReadUsesTransaction(t *testing.T) {
	ctx := context.Background()
	bus := &MockTransactor{}
	bus.On("TxAddr", ctx, byte(0x18), []byte{0x0F}, mock.Anything).Return([]byte{0x44}, nil).Once()

	buf := make([]byte, 1)
	require.NoError(t, NewRegisterBus(bus, 0x18).ReadRegister(ctx, 0x0F, buf))
	assert.Equal(t, byte(0x44), buf[0])
	bus.AssertExpectations(t)
	bus.AssertNotCalled(t, "WriteToAddr", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterBus_Write(t *testing.T) {
	ctx := context.Background()
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", ctx, byte(0x19), []byte{0x20, 0x44, 0x01}).Return(nil).Once()

	require.NoError(t, NewRegisterBus(bus, 0x19).WriteRegister(ctx, 0x20, []byte{0x44, 0x01}))
	bus.AssertExpectations(t)
}

func TestRegisterBus_Errors(t *testing.T) {
	ctx := context.Background()
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", ctx, byte(0x19), mock.Anything).Return(mems.ErrBusBusy)

	rb := NewRegisterBus(bus, 0x19)
	err := rb.ReadRegister(ctx, 0x27, make([]byte, 1))
	assert.True(t, errors.Is(err, mems.ErrBusBusy))
	assert.ErrorContains(t, err, "could not set register pointer")
	bus.AssertNotCalled(t, "ReadFromAddr", mock.Anything, mock.Anything, mock.Anything)

	err = rb.WriteRegister(ctx, 0x20, []byte{0x00})
	assert.ErrorIs(t, err, mems.ErrBusBusy)
}

type fakeGobotDevice struct {
	written [][]byte
	regs    [256]byte
	pointer byte
	err     error
}

func (f *fakeGobotDevice) Write(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, append([]byte(nil), data...))
	f.pointer = data[0]
	copy(f.regs[f.pointer:], data[1:])
	return nil
}

func (f *fakeGobotDevice) Read(data []byte) error {
	if f.err != nil {
		return f.err
	}
	copy(data, f.regs[f.pointer:])
	return nil
}

func TestGobotBus(t *testing.T) {
	ctx := context.Background()
	dev := &fakeGobotDevice{}
	bus := NewGobotBusFrom(dev)
	require.NoError(t, bus.WriteRegister(ctx, 0x3C, []byte{0x01, 0x02, 0x03}))
	buf := make([]byte, 3)
	require.NoError(t, bus.ReadRegister(ctx, 0x3C, buf))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, buf)
	assert.Equal(t, [][]byte{{0x3C, 0x01, 0x02, 0x03}, {0x3C}}, dev.written)

	dev.err = errors.New("nack")
	assert.ErrorContains(t, bus.ReadRegister(ctx, 0x0F, buf), "nack")
}
