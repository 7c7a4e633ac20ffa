package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/mems/accel/iis2dlpc"
	"github.com/mklimuk/mems/internal/regbank"
)

const sample = `
full_scale: 4g
data_rate: 50hz
power_mode: high-performance
block_data_update: true
filter_path: lpf
bandwidth: odr/4
fifo: {mode: stream, watermark: 16}
`

func newDev() (*iis2dlpc.Dev, *regbank.Bank) {
	bank := regbank.New()
	// the device clears the reset bit as soon as it is read back
	bank.OnRead = func(reg byte) {
		if reg == byte(iis2dlpc.RegCtrl2) {
			r := iis2dlpc.Ctrl2(bank.Regs[reg])
			r.SetSoftReset(0)
			bank.Regs[reg] = byte(r)
		}
	}
	return iis2dlpc.New(bank, nil), bank
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "4g", p.FullScale)
	require.NotNil(t, p.FIFO)
	assert.Equal(t, uint8(16), p.FIFO.Watermark)

	fs, mode := p.Settings()
	assert.Equal(t, iis2dlpc.FullScale4g, fs)
	assert.Equal(t, iis2dlpc.ModeHighPerformance, mode)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"bad scale", "full_scale: 3g", "invalid full_scale"},
		{"bad mode", "power_mode: turbo", "invalid power_mode"},
		{"bad fifo", "fifo: {mode: ring}", "invalid fifo.mode"},
		{"watermark", "fifo: {mode: fifo, watermark: 40}", "exceeds 31"},
		{"unknown key", "odr: 50hz", "field odr not found"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.doc))
			assert.ErrorContains(t, err, test.msg)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	fs, mode := p.Settings()
	assert.Equal(t, iis2dlpc.FullScale2g, fs)
	assert.Equal(t, iis2dlpc.ModeContLowPwr12bit, mode)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "50hz", p.DataRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "could not read profile")
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	p, err := Parse([]byte(sample))
	require.NoError(t, err)
	dev, bank := newDev()
	require.NoError(t, p.Apply(ctx, dev))

	fs, err := dev.GetFullScale(ctx)
	require.NoError(t, err)
	assert.Equal(t, iis2dlpc.FullScale4g, fs)
	odr, err := dev.GetDataRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, iis2dlpc.ODR50Hz, odr)
	mode, err := dev.GetPowerMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, iis2dlpc.ModeHighPerformance, mode)
	bw, err := dev.GetFilterBandwidth(ctx)
	require.NoError(t, err)
	assert.Equal(t, iis2dlpc.BandwidthODRDiv4, bw)
	bdu, err := dev.GetBlockDataUpdate(ctx)
	require.NoError(t, err)
	assert.Equal(t, iis2dlpc.PropertyEnable, bdu)
	fm, err := dev.GetFIFOMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, iis2dlpc.FIFOStream, fm)
	wtm, err := dev.GetFIFOWatermark(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(16), wtm)

	writes := bank.Writes()
	require.NotEmpty(t, writes)
	assert.Equal(t, byte(iis2dlpc.RegCtrl2), writes[0], "reset comes first")
	assert.Equal(t, byte(iis2dlpc.RegFifoCtrl), writes[len(writes)-1])
}

func TestApply_StopsOnFailure(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)
	dev, bank := newDev()
	bank.FailWrite(byte(iis2dlpc.RegCtrl1))
	err = p.Apply(context.Background(), dev)
	assert.ErrorContains(t, err, "could not set power mode")
	assert.ErrorIs(t, err, regbank.ErrInjected)
	assert.Equal(t, byte(0), bank.Regs[iis2dlpc.RegFifoCtrl])
}
