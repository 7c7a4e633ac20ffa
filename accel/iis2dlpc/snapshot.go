package iis2dlpc

import (
	"context"
	"fmt"
)

const (
	snapshotFirst = RegCtrl1
	snapshotLast  = RegCtrl7
)

// Snapshot is a decoded view of the configuration registers, suitable for YAML output.
type Snapshot struct {
	DeviceID     string            `yaml:"device_id"`
	PowerMode    string            `yaml:"power_mode"`
	DataRate     string            `yaml:"data_rate"`
	FullScale    string            `yaml:"full_scale"`
	FilterPath   string            `yaml:"filter_path"`
	Bandwidth    string            `yaml:"bandwidth"`
	ActivityMode string            `yaml:"activity_mode"`
	FIFOMode     string            `yaml:"fifo_mode"`
	Watermark    uint8             `yaml:"fifo_watermark"`
	Registers    map[string]string `yaml:"registers"`
}

// ReadSnapshot reads CTRL1 through CTRL7 in one burst and decodes the composite settings from it.
// The burst relies on register address auto-increment.
func (d *Dev) ReadSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	id, err := d.GetDeviceID(ctx)
	if err != nil {
		return snap, err
	}
	snap.DeviceID = fmt.Sprintf("%#02x", id)
	buf := make([]byte, snapshotLast-snapshotFirst+1)
	if err = d.ReadFromRegister(ctx, byte(snapshotFirst), buf); err != nil {
		return snap, err
	}
	at := func(r Reg) uint8 { return buf[r-snapshotFirst] }
	ctrl1, ctrl3, ctrl6, ctrl7 := Ctrl1(at(RegCtrl1)), Ctrl3(at(RegCtrl3)), Ctrl6(at(RegCtrl6)), Ctrl7(at(RegCtrl7))
	ths, dur, fifo := WakeUpThs(at(RegWakeUpThs)), WakeUpDur(at(RegWakeUpDur)), FifoCtrl(at(RegFifoCtrl))

	snap.PowerMode = NewMode(ctrl1.Mode(), ctrl1.LpMode(), ctrl6.LowNoise()).String()
	snap.DataRate = NewODR(ctrl1.Odr(), ctrl3.SlpMode()).String()
	snap.FullScale = lookup(FullScaleNames, FullScale(ctrl6.Fs()), FullScale2g).String()
	snap.FilterPath = NewFilterPath(ctrl6.Fds(), ctrl7.UsrOffOnOut()).String()
	snap.Bandwidth = lookup(BandwidthNames, Bandwidth(ctrl6.BwFilt()), BandwidthODRDiv2).String()
	snap.ActivityMode = NewActivityMode(ths.SleepOn(), dur.Stationary()).String()
	snap.FIFOMode = lookup(FIFOModeNames, FIFOMode(fifo.Fmode()), FIFOBypass).String()
	snap.Watermark = fifo.Fth()
	snap.Registers = make(map[string]string, len(buf))
	for i, b := range buf {
		snap.Registers[fmt.Sprintf("%#02x", int(snapshotFirst)+i)] = fmt.Sprintf("%#02x", b)
	}
	return snap, nil
}
