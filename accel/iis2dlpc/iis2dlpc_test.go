package iis2dlpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/mems"
	"github.com/mklimuk/mems/bitfield"
	"github.com/mklimuk/mems/internal/regbank"
)

type noDelay struct{ total uint32 }

func (n *noDelay) DelayMs(ms uint32) { n.total += ms }

func newTestDev() (*Dev, *regbank.Bank) {
	bank := regbank.New()
	return New(bank, &noDelay{}), bank
}

func TestFieldIsolation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		reg   Reg
		field bitfield.Field
		want  uint8
		op    func(d *Dev) error
	}{
		{"full scale", RegCtrl6, ctrl6Layout[3], 2, func(d *Dev) error { return d.SetFullScale(ctx, FullScale8g) }},
		{"bandwidth", RegCtrl6, ctrl6Layout[4], 3, func(d *Dev) error { return d.SetFilterBandwidth(ctx, BandwidthODRDiv20) }},
		{"bdu", RegCtrl2, flagsLayout[3], 1, func(d *Dev) error { return d.SetBlockDataUpdate(ctx, PropertyEnable) }},
		{"auto increment", RegCtrl2, flagsLayout[2], 0, func(d *Dev) error { return d.SetAutoIncrement(ctx, PropertyDisable) }},
		{"spi mode", RegCtrl2, flagsLayout[0], 1, func(d *Dev) error { return d.SetSPIMode(ctx, SPI3Wire) }},
		{"i2c interface", RegCtrl2, flagsLayout[1], 1, func(d *Dev) error { return d.SetI2CInterface(ctx, I2CDisabled) }},
		{"cs mode", RegCtrl2, flagsLayout[4], 1, func(d *Dev) error { return d.SetCSMode(ctx, CSPullUpDisconnected) }},
		{"self test", RegCtrl3, ctrl3Layout[5], 2, func(d *Dev) error { return d.SetSelfTest(ctx, SelfTestNegative) }},
		{"pin polarity", RegCtrl3, ctrl3Layout[2], 1, func(d *Dev) error { return d.SetPinPolarity(ctx, ActiveLow) }},
		{"notification", RegCtrl3, ctrl3Layout[3], 1, func(d *Dev) error { return d.SetIntNotification(ctx, NotificationLatched) }},
		{"pin mode", RegCtrl3, ctrl3Layout[4], 1, func(d *Dev) error { return d.SetPinMode(ctx, OpenDrain) }},
		{"drdy mode", RegCtrl7, flagsLayout[7], 1, func(d *Dev) error { return d.SetDataReadyMode(ctx, DataReadyPulsed) }},
		{"offset weight", RegCtrl7, flagsLayout[2], 1, func(d *Dev) error { return d.SetOffsetWeight(ctx, OffsetWeight15mg6) }},
		{"reference mode", RegCtrl7, flagsLayout[1], 1, func(d *Dev) error { return d.SetReferenceMode(ctx, PropertyEnable) }},
		{"all on int1", RegCtrl7, flagsLayout[6], 1, func(d *Dev) error { return d.SetAllOnInt1(ctx, PropertyEnable) }},
		{"wake-up feed", RegCtrl7, flagsLayout[3], 1, func(d *Dev) error { return d.SetWakeUpFeed(ctx, WakeUpFeedUserOffset) }},
		{"6d feed", RegCtrl7, flagsLayout[0], 1, func(d *Dev) error { return d.SetSixDFeed(ctx, SixDFeedLowPass2) }},
		{"wake-up threshold", RegWakeUpThs, wakeUpThsLayout[0], 0x2A, func(d *Dev) error { return d.SetWakeUpThreshold(ctx, 0x2A) }},
		{"tap mode", RegWakeUpThs, wakeUpThsLayout[2], 1, func(d *Dev) error { return d.SetTapMode(ctx, TapSingleAndDouble) }},
		{"wake-up duration", RegWakeUpDur, wakeUpDurLayout[2], 3, func(d *Dev) error { return d.SetWakeUpDuration(ctx, 3) }},
		{"sleep duration", RegWakeUpDur, wakeUpDurLayout[0], 9, func(d *Dev) error { return d.SetActivitySleepDuration(ctx, 9) }},
		{"tap threshold x", RegTapThsX, tapThsXLayout[0], 0x11, func(d *Dev) error { return d.SetTapThresholdX(ctx, 0x11) }},
		{"6d threshold", RegTapThsX, tapThsXLayout[1], 2, func(d *Dev) error { return d.SetSixDThreshold(ctx, 2) }},
		{"4d mode", RegTapThsX, tapThsXLayout[2], 1, func(d *Dev) error { return d.SetFourDMode(ctx, PropertyEnable) }},
		{"tap threshold y", RegTapThsY, tapThsYLayout[0], 0x0C, func(d *Dev) error { return d.SetTapThresholdY(ctx, 0x0C) }},
		{"tap priority", RegTapThsY, tapThsYLayout[1], 6, func(d *Dev) error { return d.SetTapAxisPriority(ctx, TapPriorityZXY) }},
		{"tap threshold z", RegTapThsZ, tapThsZLayout[0], 0x1F, func(d *Dev) error { return d.SetTapThresholdZ(ctx, 0x1F) }},
		{"tap on z", RegTapThsZ, tapThsZLayout[1], 1, func(d *Dev) error { return d.SetTapDetectionOnZ(ctx, 1) }},
		{"tap on y", RegTapThsZ, tapThsZLayout[2], 0, func(d *Dev) error { return d.SetTapDetectionOnY(ctx, 0) }},
		{"tap on x", RegTapThsZ, tapThsZLayout[3], 1, func(d *Dev) error { return d.SetTapDetectionOnX(ctx, 1) }},
		{"tap shock", RegIntDur, intDurLayout[0], 2, func(d *Dev) error { return d.SetTapShock(ctx, 2) }},
		{"tap quiet", RegIntDur, intDurLayout[1], 1, func(d *Dev) error { return d.SetTapQuiet(ctx, 1) }},
		{"tap duration", RegIntDur, intDurLayout[2], 7, func(d *Dev) error { return d.SetTapDuration(ctx, 7) }},
		{"free-fall threshold", RegFreeFall, freeFallLayout[0], 3, func(d *Dev) error { return d.SetFreeFallThreshold(ctx, FreeFall10LSB) }},
		{"fifo watermark", RegFifoCtrl, fifoCtrlLayout[0], 0x10, func(d *Dev) error { return d.SetFIFOWatermark(ctx, 0x10) }},
		{"fifo mode", RegFifoCtrl, fifoCtrlLayout[1], 6, func(d *Dev) error { return d.SetFIFOMode(ctx, FIFOStream) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mask := uint8(test.field.Mask() << test.field.Offset)
			for initial := 0; initial < 256; initial++ {
				d, bank := newTestDev()
				bank.Regs[test.reg] = byte(initial)
				require.NoError(t, test.op(d))
				got := bank.Regs[test.reg]
				if got&^mask != byte(initial)&^mask {
					t.Fatalf("initial %#02x: bits outside the field changed, got %#02x", initial, got)
				}
				assert.Equal(t, test.want, uint8(test.field.Get(uint16(got))))
			}
		})
	}
}

func TestCompositeRoundTrip(t *testing.T) {
	ctx := context.Background()
	t.Run("power mode", func(t *testing.T) {
		for m := range ModeNames {
			assert.Equal(t, m, NewMode(m.Mode(), m.LpMode(), m.LowNoise()))
			d, bank := newTestDev()
			bank.Regs[RegCtrl1], bank.Regs[RegCtrl6] = 0xFF, 0xFF
			require.NoError(t, d.SetPowerMode(ctx, m))
			got, err := d.GetPowerMode(ctx)
			require.NoError(t, err)
			assert.Equal(t, m, got)
			assert.Equal(t, uint8(0xF), Ctrl1(bank.Regs[RegCtrl1]).Odr(), "odr clobbered by %v", m)
		}
	})
	t.Run("data rate", func(t *testing.T) {
		for o := range ODRNames {
			assert.Equal(t, o, NewODR(o.Odr(), o.SlpMode()))
			d, bank := newTestDev()
			bank.Regs[RegCtrl3] = 0xFF
			require.NoError(t, d.SetDataRate(ctx, o))
			got, err := d.GetDataRate(ctx)
			require.NoError(t, err)
			assert.Equal(t, o, got)
			assert.Equal(t, uint8(3), Ctrl3(bank.Regs[RegCtrl3]).St())
		}
	})
	t.Run("filter path", func(t *testing.T) {
		for f := range FilterPathNames {
			assert.Equal(t, f, NewFilterPath(f.Fds(), f.UsrOffOnOut()))
			d, _ := newTestDev()
			require.NoError(t, d.SetFilterPath(ctx, f))
			got, err := d.GetFilterPath(ctx)
			require.NoError(t, err)
			assert.Equal(t, f, got)
		}
	})
	t.Run("activity mode", func(t *testing.T) {
		for a := range ActivityModeNames {
			assert.Equal(t, a, NewActivityMode(a.SleepOn(), a.Stationary()))
			d, _ := newTestDev()
			require.NoError(t, d.SetActivityMode(ctx, a))
			got, err := d.GetActivityMode(ctx)
			require.NoError(t, err)
			assert.Equal(t, a, got)
		}
	})
}

func TestPowerMode_LowNoiseRoundTrip(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	m := NewMode(0x1, 0x0, 0x1)
	require.Equal(t, ModeHighPerformanceLowNoise, m)
	require.NoError(t, d.SetPowerMode(ctx, m))
	assert.Equal(t, uint8(1), Ctrl1(bank.Regs[RegCtrl1]).Mode())
	assert.Equal(t, uint8(0), Ctrl1(bank.Regs[RegCtrl1]).LpMode())
	assert.Equal(t, uint8(1), Ctrl6(bank.Regs[RegCtrl6]).LowNoise())
	got, err := d.GetPowerMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, m, got)
	assert.Equal(t, []byte{byte(RegCtrl1), byte(RegCtrl6)}, bank.Writes())
}

func TestDefaultFallback(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ModeContLowPwr12bit, NewMode(1, 1, 0))
	assert.Equal(t, ModeContLowPwr12bit, NewMode(3, 0, 1))
	assert.Equal(t, ODROff, NewODR(0x0A, 0))
	assert.Equal(t, ODROff, NewODR(0x03, 3))
	assert.Equal(t, FilterLowPassOnOut, NewFilterPath(1, 1))
	assert.Equal(t, ActivityNoDetection, NewActivityMode(0, 1))

	d, bank := newTestDev()
	var fifo FifoCtrl
	fifo.SetFmode(5)
	bank.Regs[RegFifoCtrl] = byte(fifo)
	var thsY TapThsY
	thsY.SetTapPrior(4)
	bank.Regs[RegTapThsY] = byte(thsY)
	var ctrl1 Ctrl1
	ctrl1.SetMode(3)
	bank.Regs[RegCtrl1] = byte(ctrl1)

	fm, err := d.GetFIFOMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, FIFOBypass, fm)
	tp, err := d.GetTapAxisPriority(ctx)
	require.NoError(t, err)
	assert.Equal(t, TapPriorityXYZ, tp)
	pm, err := d.GetPowerMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, ModeContLowPwr12bit, pm)
}

func TestInterruptsEnableInvariant(t *testing.T) {
	ctx := context.Background()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := PropertyDisable
			if a|b != 0 {
				want = PropertyEnable
			}

			d, bank := newTestDev()
			bank.Regs[RegCtrl5Int2PadCtrl] = byte(b)
			bank.Regs[RegCtrl7] = 0xFF
			require.NoError(t, d.SetInt1Route(ctx, Ctrl4Int1PadCtrl(a)))
			ctrl7 := Ctrl7(bank.Regs[RegCtrl7])
			if ctrl7.InterruptsEnable() != want {
				t.Fatalf("int1=%#02x int2=%#02x: interrupts enable %d", a, b, ctrl7.InterruptsEnable())
			}
			if ctrl7|Ctrl7(flagsLayout[5].Mask()<<flagsLayout[5].Offset) != 0xFF {
				t.Fatalf("int1 route clobbered ctrl7: %#02x", ctrl7)
			}
			assert.Equal(t, byte(a), bank.Regs[RegCtrl4Int1PadCtrl])

			d, bank = newTestDev()
			bank.Regs[RegCtrl4Int1PadCtrl] = byte(a)
			require.NoError(t, d.SetInt2Route(ctx, Ctrl5Int2PadCtrl(b)))
			if got := Ctrl7(bank.Regs[RegCtrl7]).InterruptsEnable(); got != want {
				t.Fatalf("int2=%#02x int1=%#02x: interrupts enable %d", b, a, got)
			}
			assert.Equal(t, byte(b), bank.Regs[RegCtrl5Int2PadCtrl])
		}
	}
}

func TestSetInt1Route_ReadsBeforeWrites(t *testing.T) {
	d, bank := newTestDev()
	var route Ctrl4Int1PadCtrl
	route.SetInt1Tap(PropertyEnable)
	require.NoError(t, d.SetInt1Route(context.Background(), route))
	require.Len(t, bank.Log, 4)
	assert.Equal(t, regbank.Access{Reg: byte(RegCtrl5Int2PadCtrl), Data: []byte{0}}, bank.Log[0])
	assert.Equal(t, byte(RegCtrl7), bank.Log[1].Reg)
	assert.Equal(t, []byte{byte(RegCtrl4Int1PadCtrl), byte(RegCtrl7)}, bank.Writes())

	got, err := d.GetInt1Route(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint8(1), got.Int1Tap())
}

func TestFreeFallDurationSplit(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	bank.Regs[RegFreeFall] = 0xFF
	require.NoError(t, d.SetFreeFallDuration(ctx, 0x25))
	assert.Equal(t, uint8(1), WakeUpDur(bank.Regs[RegWakeUpDur]).FfDur())
	assert.Equal(t, uint8(0x05), FreeFall(bank.Regs[RegFreeFall]).FfDur())
	assert.Equal(t, uint8(7), FreeFall(bank.Regs[RegFreeFall]).FfThs())
	assert.Equal(t, []byte{byte(RegWakeUpDur), byte(RegFreeFall)}, bank.Writes())

	got, err := d.GetFreeFallDuration(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x25), got)
}

func TestFIFO_WatermarkIndependentOfMode(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDev()
	require.NoError(t, d.SetFIFOMode(ctx, FIFOStream))
	require.NoError(t, d.SetFIFOWatermark(ctx, 21))
	require.NoError(t, d.SetFIFOMode(ctx, FIFOBypass))
	wtm, err := d.GetFIFOWatermark(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(21), wtm)
	mode, err := d.GetFIFOMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, FIFOBypass, mode)
}

func TestFIFO_Samples(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	var s uint16
	s = fifoSamplesLayout[0].Set(s, 32)
	s = fifoSamplesLayout[1].Set(s, 1)
	bank.Regs[RegFifoSamples] = byte(s)

	level, err := d.GetFIFODataLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(32), level)
	ovr, err := d.GetFIFOOverrunFlag(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), ovr)
	wtm, err := d.GetFIFOWatermarkFlag(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), wtm)
}

func putAxis(bank *regbank.Bank, reg Reg, v int16) {
	w := outAxisLayout[1].SetSigned(0, v)
	bank.Regs[reg] = byte(w)
	bank.Regs[reg+1] = byte(w >> 8)
}

func TestRawSamples_SignExtension(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	putAxis(bank, RegOutXL, -8192)
	putAxis(bank, RegOutYL, 8191)
	putAxis(bank, RegOutZL, -1)
	acc, err := d.GetAccelerationRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, [3]int16{-8192, 8191, -1}, acc)

	if !bitfield.MSBFirst {
		bank.Regs[RegOutXL], bank.Regs[RegOutXH] = 0x00, 0x80
		acc, err = d.GetAccelerationRaw(ctx)
		require.NoError(t, err)
		assert.Equal(t, int16(-8192), acc[0])

		bank.Regs[RegOutTL], bank.Regs[RegOutTH] = 0xF0, 0xFF
		temp, err := d.GetTemperatureRaw(ctx)
		require.NoError(t, err)
		assert.Equal(t, int16(-1), temp)
	}
}

func TestUserOffsets(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	require.NoError(t, d.SetUserOffsetX(ctx, -5))
	require.NoError(t, d.SetUserOffsetY(ctx, 127))
	require.NoError(t, d.SetUserOffsetZ(ctx, -128))
	assert.Len(t, bank.Log, 3, "offsets are written without a read")

	x, err := d.GetUserOffsetX(ctx)
	require.NoError(t, err)
	y, err := d.GetUserOffsetY(ctx)
	require.NoError(t, err)
	z, err := d.GetUserOffsetZ(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int8{-5, 127, -128}, []int8{x, y, z})
}

func TestPartialFailure_NoRollback(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	bank.FailWrite(byte(RegCtrl6))
	err := d.SetPowerMode(ctx, ModeHighPerformanceLowNoise)
	require.Error(t, err)

	var busErr *mems.BusError
	require.True(t, errors.As(err, &busErr))
	assert.Equal(t, "write", busErr.Op)
	assert.Equal(t, byte(RegCtrl6), busErr.Reg)
	assert.ErrorIs(t, err, regbank.ErrInjected)
	assert.Equal(t, uint8(1), Ctrl1(bank.Regs[RegCtrl1]).Mode(), "ctrl1 stays written")
}

func TestReadFailure(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	bank.FailRead(byte(RegWakeUpSrc))
	_, err := d.GetAllSources(ctx)
	var busErr *mems.BusError
	require.True(t, errors.As(err, &busErr))
	assert.Equal(t, "read", busErr.Op)
	assert.Equal(t, byte(RegWakeUpSrc), busErr.Reg)
	assert.Empty(t, bank.Writes())
}

func TestGetAllSources_Order(t *testing.T) {
	d, bank := newTestDev()
	var tap uint16
	tap = flagsLayout[6].Set(tap, 1)
	tap = flagsLayout[2].Set(tap, 1)
	bank.Regs[RegTapSrc] = byte(tap)

	src, err := d.GetAllSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint8(1), src.TapSrc.TapIa())
	assert.Equal(t, uint8(1), src.TapSrc.XTap())
	var regs []byte
	for _, a := range bank.Log {
		regs = append(regs, a.Reg)
	}
	assert.Equal(t, []byte{0x37, 0x38, 0x39, 0x3A, 0x3B}, regs)
}

func TestResetAndWait(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	polls := 0
	bank.OnRead = func(reg byte) {
		if reg != byte(RegCtrl2) || Ctrl2(bank.Regs[reg]).SoftReset() == 0 {
			return
		}
		polls++
		if polls > 3 {
			r := Ctrl2(bank.Regs[reg])
			r.SetSoftReset(0)
			bank.Regs[reg] = byte(r)
		}
	}
	require.NoError(t, d.ResetAndWait(ctx))
	assert.Equal(t, 4, polls)
	rst, err := d.GetReset(ctx)
	require.NoError(t, err)
	assert.Equal(t, PropertyDisable, rst)
}

func TestBoot(t *testing.T) {
	ctx := context.Background()
	d, bank := newTestDev()
	require.NoError(t, d.Boot(ctx))
	assert.Equal(t, uint8(1), Ctrl2(bank.Regs[RegCtrl2]).Boot())
	boot, err := d.GetBoot(ctx)
	require.NoError(t, err)
	assert.Equal(t, PropertyEnable, boot)
}

func TestGetDeviceID(t *testing.T) {
	d, bank := newTestDev()
	bank.Regs[RegWhoAmI] = ID
	id, err := d.GetDeviceID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint8(ID), id)
}

func TestTypedGetters(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDev()
	require.NoError(t, d.SetFullScale(ctx, FullScale16g))
	require.NoError(t, d.SetFilterBandwidth(ctx, BandwidthODRDiv10))
	require.NoError(t, d.SetTapMode(ctx, TapSingleAndDouble))
	require.NoError(t, d.SetFreeFallThreshold(ctx, FreeFall16LSB))
	require.NoError(t, d.SetSixDFeed(ctx, SixDFeedLowPass2))
	require.NoError(t, d.SetWakeUpFeed(ctx, WakeUpFeedUserOffset))
	require.NoError(t, d.SetPinMode(ctx, OpenDrain))

	fs, err := d.GetFullScale(ctx)
	require.NoError(t, err)
	assert.Equal(t, FullScale16g, fs)
	bw, err := d.GetFilterBandwidth(ctx)
	require.NoError(t, err)
	assert.Equal(t, BandwidthODRDiv10, bw)
	tm, err := d.GetTapMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, TapSingleAndDouble, tm)
	ff, err := d.GetFreeFallThreshold(ctx)
	require.NoError(t, err)
	assert.Equal(t, FreeFall16LSB, ff)
	feed, err := d.GetSixDFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, SixDFeedLowPass2, feed)
	wu, err := d.GetWakeUpFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, WakeUpFeedUserOffset, wu)
	pm, err := d.GetPinMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, OpenDrain, pm)
}
