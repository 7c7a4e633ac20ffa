package iis2dlpc

import (
	"context"
	"encoding/binary"

	"github.com/mklimuk/mems/bitfield"
)

// Reg is a register address.
type Reg byte

const (
	RegOutTL            Reg = 0x0D
	RegOutTH            Reg = 0x0E
	RegWhoAmI           Reg = 0x0F
	RegCtrl1            Reg = 0x20
	RegCtrl2            Reg = 0x21
	RegCtrl3            Reg = 0x22
	RegCtrl4Int1PadCtrl Reg = 0x23
	RegCtrl5Int2PadCtrl Reg = 0x24
	RegCtrl6            Reg = 0x25
	RegOutT             Reg = 0x26
	RegStatus           Reg = 0x27
	RegOutXL            Reg = 0x28
	RegOutXH            Reg = 0x29
	RegOutYL            Reg = 0x2A
	RegOutYH            Reg = 0x2B
	RegOutZL            Reg = 0x2C
	RegOutZH            Reg = 0x2D
	RegFifoCtrl         Reg = 0x2E
	RegFifoSamples      Reg = 0x2F
	RegTapThsX          Reg = 0x30
	RegTapThsY          Reg = 0x31
	RegTapThsZ          Reg = 0x32
	RegIntDur           Reg = 0x33
	RegWakeUpThs        Reg = 0x34
	RegWakeUpDur        Reg = 0x35
	RegFreeFall         Reg = 0x36
	RegStatusDup        Reg = 0x37
	RegWakeUpSrc        Reg = 0x38
	RegTapSrc           Reg = 0x39
	RegSixdSrc          Reg = 0x3A
	RegAllIntSrc        Reg = 0x3B
	RegXOfsUsr          Reg = 0x3C
	RegYOfsUsr          Reg = 0x3D
	RegZOfsUsr          Reg = 0x3E
	RegCtrl7            Reg = 0x3F
)

// Register8 is a one byte register with a fixed address.
type Register8 interface {
	~uint8
	Address() Reg
}

// Register16 is a two byte little-endian register with a fixed address.
type Register16 interface {
	~uint16
	Address() Reg
}

// Read fetches a one byte register.
func Read[R Register8](ctx context.Context, d *Dev) (R, error) {
	var r R
	var buf [1]byte
	if err := d.ReadFromRegister(ctx, byte(r.Address()), buf[:]); err != nil {
		return r, err
	}
	return R(buf[0]), nil
}

// Write stores a one byte register.
func Write[R Register8](ctx context.Context, d *Dev, r R) error {
	return d.WriteToRegister(ctx, byte(r.Address()), []byte{byte(r)})
}

// Read16 fetches a two byte register starting at its low byte.
func Read16[R Register16](ctx context.Context, d *Dev) (R, error) {
	var r R
	var buf [2]byte
	if err := d.ReadFromRegister(ctx, byte(r.Address()), buf[:]); err != nil {
		return r, err
	}
	return R(binary.LittleEndian.Uint16(buf[:])), nil
}

// Write16 stores a two byte register, low byte first.
func Write16[R Register16](ctx context.Context, d *Dev, r R) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(r))
	return d.WriteToRegister(ctx, byte(r.Address()), buf[:])
}

func get[R ~uint8](f bitfield.Field, r R) uint8 {
	return uint8(f.Get(uint16(r)))
}

func set[R ~uint8](f bitfield.Field, r *R, v uint8) {
	*r = R(f.Set(uint16(*r), uint16(v)))
}

// Field layouts in declaration order; unused spans are declared so that offsets match
// the datasheet under both bit orders.
var (
	// not_used, temp
	outTLayout = bitfield.Layout(16, bitfield.U(4), bitfield.S(12))
	// lp_mode, mode, odr
	ctrl1Layout = bitfield.Layout(8, bitfield.U(2), bitfield.U(2), bitfield.U(4))
	// slp_mode, not_used, h_lactive, lir, pp_od, st
	ctrl3Layout = bitfield.Layout(8, bitfield.U(2), bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(2))
	// not_used, low_noise, fds, fs, bw_filt
	ctrl6Layout = bitfield.Layout(8, bitfield.U(2), bitfield.U(1), bitfield.U(1), bitfield.U(2), bitfield.U(2))
	// eight single bit flags: CTRL2, pad control, status, sources, CTRL7
	flagsLayout = bitfield.Layout(8, bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(1), bitfield.U(1))
	// not_used, axis value
	outAxisLayout = bitfield.Layout(16, bitfield.U(2), bitfield.S(14))
	// fth, fmode
	fifoCtrlLayout = bitfield.Layout(8, bitfield.U(5), bitfield.U(3))
	// diff, fifo_ovr, fifo_fth
	fifoSamplesLayout = bitfield.Layout(8, bitfield.U(6), bitfield.U(1), bitfield.U(1))
	// tap_thsx, 6d_ths, 4d_en
	tapThsXLayout = bitfield.Layout(8, bitfield.U(5), bitfield.U(2), bitfield.U(1))
	// tap_thsy, tap_prior
	tapThsYLayout = bitfield.Layout(8, bitfield.U(5), bitfield.U(3))
	// tap_thsz, tap_z_en, tap_y_en, tap_x_en
	tapThsZLayout = bitfield.Layout(8, bitfield.U(5), bitfield.U(1), bitfield.U(1), bitfield.U(1))
	// shock, quiet, latency
	intDurLayout = bitfield.Layout(8, bitfield.U(2), bitfield.U(2), bitfield.U(4))
	// wk_ths, sleep_on, single_double_tap
	wakeUpThsLayout = bitfield.Layout(8, bitfield.U(6), bitfield.U(1), bitfield.U(1))
	// sleep_dur, stationary, wake_dur, ff_dur
	wakeUpDurLayout = bitfield.Layout(8, bitfield.U(4), bitfield.U(1), bitfield.U(2), bitfield.U(1))
	// ff_ths, ff_dur
	freeFallLayout = bitfield.Layout(8, bitfield.U(3), bitfield.U(5))
	// user offset
	offsetLayout = bitfield.Layout(8, bitfield.S(8))
)

// OutT holds the 12 bit left-justified temperature sample.
type OutT uint16

func (OutT) Address() Reg { return RegOutTL }
func (r OutT) Temp() int16 { return outTLayout[1].GetSigned(uint16(r)) }

type Ctrl1 uint8

func (Ctrl1) Address() Reg { return RegCtrl1 }
func (r Ctrl1) LpMode() uint8 { return get(ctrl1Layout[0], r) }
func (r *Ctrl1) SetLpMode(v uint8) { set(ctrl1Layout[0], r, v) }
func (r Ctrl1) Mode() uint8 { return get(ctrl1Layout[1], r) }
func (r *Ctrl1) SetMode(v uint8) { set(ctrl1Layout[1], r, v) }
func (r Ctrl1) Odr() uint8 { return get(ctrl1Layout[2], r) }
func (r *Ctrl1) SetOdr(v uint8) { set(ctrl1Layout[2], r, v) }

type Ctrl2 uint8

func (Ctrl2) Address() Reg { return RegCtrl2 }
func (r Ctrl2) Sim() uint8 { return get(flagsLayout[0], r) }
func (r *Ctrl2) SetSim(v uint8) { set(flagsLayout[0], r, v) }
func (r Ctrl2) I2cDisable() uint8 { return get(flagsLayout[1], r) }
func (r *Ctrl2) SetI2cDisable(v uint8) { set(flagsLayout[1], r, v) }
func (r Ctrl2) IfAddInc() uint8 { return get(flagsLayout[2], r) }
func (r *Ctrl2) SetIfAddInc(v uint8) { set(flagsLayout[2], r, v) }
func (r Ctrl2) Bdu() uint8 { return get(flagsLayout[3], r) }
func (r *Ctrl2) SetBdu(v uint8) { set(flagsLayout[3], r, v) }
func (r Ctrl2) CsPuDisc() uint8 { return get(flagsLayout[4], r) }
func (r *Ctrl2) SetCsPuDisc(v uint8) { set(flagsLayout[4], r, v) }
func (r Ctrl2) SoftReset() uint8 { return get(flagsLayout[6], r) }
func (r *Ctrl2) SetSoftReset(v uint8) { set(flagsLayout[6], r, v) }
func (r Ctrl2) Boot() uint8 { return get(flagsLayout[7], r) }
func (r *Ctrl2) SetBoot(v uint8) { set(flagsLayout[7], r, v) }

type Ctrl3 uint8

func (Ctrl3) Address() Reg { return RegCtrl3 }
func (r Ctrl3) SlpMode() uint8 { return get(ctrl3Layout[0], r) }
func (r *Ctrl3) SetSlpMode(v uint8) { set(ctrl3Layout[0], r, v) }
func (r Ctrl3) HLactive() uint8 { return get(ctrl3Layout[2], r) }
func (r *Ctrl3) SetHLactive(v uint8) { set(ctrl3Layout[2], r, v) }
func (r Ctrl3) Lir() uint8 { return get(ctrl3Layout[3], r) }
func (r *Ctrl3) SetLir(v uint8) { set(ctrl3Layout[3], r, v) }
func (r Ctrl3) PpOd() uint8 { return get(ctrl3Layout[4], r) }
func (r *Ctrl3) SetPpOd(v uint8) { set(ctrl3Layout[4], r, v) }
func (r Ctrl3) St() uint8 { return get(ctrl3Layout[5], r) }
func (r *Ctrl3) SetSt(v uint8) { set(ctrl3Layout[5], r, v) }

// Ctrl4Int1PadCtrl routes events to the INT1 pin.
type Ctrl4Int1PadCtrl uint8

func (Ctrl4Int1PadCtrl) Address() Reg { return RegCtrl4Int1PadCtrl }
func (r Ctrl4Int1PadCtrl) Int1Drdy() uint8 { return get(flagsLayout[0], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1Drdy(v uint8) { set(flagsLayout[0], r, v) }
func (r Ctrl4Int1PadCtrl) Int1Fth() uint8 { return get(flagsLayout[1], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1Fth(v uint8) { set(flagsLayout[1], r, v) }
func (r Ctrl4Int1PadCtrl) Int1Diff5() uint8 { return get(flagsLayout[2], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1Diff5(v uint8) { set(flagsLayout[2], r, v) }
func (r Ctrl4Int1PadCtrl) Int1Tap() uint8 { return get(flagsLayout[3], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1Tap(v uint8) { set(flagsLayout[3], r, v) }
func (r Ctrl4Int1PadCtrl) Int1Ff() uint8 { return get(flagsLayout[4], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1Ff(v uint8) { set(flagsLayout[4], r, v) }
func (r Ctrl4Int1PadCtrl) Int1Wu() uint8 { return get(flagsLayout[5], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1Wu(v uint8) { set(flagsLayout[5], r, v) }
func (r Ctrl4Int1PadCtrl) Int1SingleTap() uint8 { return get(flagsLayout[6], r) }
func (r *Ctrl4Int1PadCtrl) SetInt1SingleTap(v uint8) { set(flagsLayout[6], r, v) }
func (r Ctrl4Int1PadCtrl) Int16d() uint8 { return get(flagsLayout[7], r) }
func (r *Ctrl4Int1PadCtrl) SetInt16d(v uint8) { set(flagsLayout[7], r, v) }

// Ctrl5Int2PadCtrl routes events to the INT2 pin.
type Ctrl5Int2PadCtrl uint8

func (Ctrl5Int2PadCtrl) Address() Reg { return RegCtrl5Int2PadCtrl }
func (r Ctrl5Int2PadCtrl) Int2Drdy() uint8 { return get(flagsLayout[0], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2Drdy(v uint8) { set(flagsLayout[0], r, v) }
func (r Ctrl5Int2PadCtrl) Int2Fth() uint8 { return get(flagsLayout[1], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2Fth(v uint8) { set(flagsLayout[1], r, v) }
func (r Ctrl5Int2PadCtrl) Int2Diff5() uint8 { return get(flagsLayout[2], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2Diff5(v uint8) { set(flagsLayout[2], r, v) }
func (r Ctrl5Int2PadCtrl) Int2Ovr() uint8 { return get(flagsLayout[3], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2Ovr(v uint8) { set(flagsLayout[3], r, v) }
func (r Ctrl5Int2PadCtrl) Int2DrdyT() uint8 { return get(flagsLayout[4], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2DrdyT(v uint8) { set(flagsLayout[4], r, v) }
func (r Ctrl5Int2PadCtrl) Int2Boot() uint8 { return get(flagsLayout[5], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2Boot(v uint8) { set(flagsLayout[5], r, v) }
func (r Ctrl5Int2PadCtrl) Int2SleepChg() uint8 { return get(flagsLayout[6], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2SleepChg(v uint8) { set(flagsLayout[6], r, v) }
func (r Ctrl5Int2PadCtrl) Int2SleepState() uint8 { return get(flagsLayout[7], r) }
func (r *Ctrl5Int2PadCtrl) SetInt2SleepState(v uint8) { set(flagsLayout[7], r, v) }

type Ctrl6 uint8

func (Ctrl6) Address() Reg { return RegCtrl6 }
func (r Ctrl6) LowNoise() uint8 { return get(ctrl6Layout[1], r) }
func (r *Ctrl6) SetLowNoise(v uint8) { set(ctrl6Layout[1], r, v) }
func (r Ctrl6) Fds() uint8 { return get(ctrl6Layout[2], r) }
func (r *Ctrl6) SetFds(v uint8) { set(ctrl6Layout[2], r, v) }
func (r Ctrl6) Fs() uint8 { return get(ctrl6Layout[3], r) }
func (r *Ctrl6) SetFs(v uint8) { set(ctrl6Layout[3], r, v) }
func (r Ctrl6) BwFilt() uint8 { return get(ctrl6Layout[4], r) }
func (r *Ctrl6) SetBwFilt(v uint8) { set(ctrl6Layout[4], r, v) }

// Status is read-only.
type Status uint8

func (Status) Address() Reg { return RegStatus }
func (r Status) Drdy() uint8 { return get(flagsLayout[0], r) }
func (r Status) FfIa() uint8 { return get(flagsLayout[1], r) }
func (r Status) SixDIa() uint8 { return get(flagsLayout[2], r) }
func (r Status) SingleTap() uint8 { return get(flagsLayout[3], r) }
func (r Status) DoubleTap() uint8 { return get(flagsLayout[4], r) }
func (r Status) SleepState() uint8 { return get(flagsLayout[5], r) }
func (r Status) WuIa() uint8 { return get(flagsLayout[6], r) }
func (r Status) FifoThs() uint8 { return get(flagsLayout[7], r) }

// OutX, OutY and OutZ hold 14 bit left-justified acceleration samples.
type OutX uint16

func (OutX) Address() Reg { return RegOutXL }
func (r OutX) X() int16 { return outAxisLayout[1].GetSigned(uint16(r)) }

type OutY uint16

func (OutY) Address() Reg { return RegOutYL }
func (r OutY) Y() int16 { return outAxisLayout[1].GetSigned(uint16(r)) }

type OutZ uint16

func (OutZ) Address() Reg { return RegOutZL }
func (r OutZ) Z() int16 { return outAxisLayout[1].GetSigned(uint16(r)) }

type FifoCtrl uint8

func (FifoCtrl) Address() Reg { return RegFifoCtrl }
func (r FifoCtrl) Fth() uint8 { return get(fifoCtrlLayout[0], r) }
func (r *FifoCtrl) SetFth(v uint8) { set(fifoCtrlLayout[0], r, v) }
func (r FifoCtrl) Fmode() uint8 { return get(fifoCtrlLayout[1], r) }
func (r *FifoCtrl) SetFmode(v uint8) { set(fifoCtrlLayout[1], r, v) }

// FifoSamples is read-only.
type FifoSamples uint8

func (FifoSamples) Address() Reg { return RegFifoSamples }
func (r FifoSamples) Diff() uint8 { return get(fifoSamplesLayout[0], r) }
func (r FifoSamples) FifoOvr() uint8 { return get(fifoSamplesLayout[1], r) }
func (r FifoSamples) FifoFth() uint8 { return get(fifoSamplesLayout[2], r) }

type TapThsX uint8

func (TapThsX) Address() Reg { return RegTapThsX }
func (r TapThsX) TapThsx() uint8 { return get(tapThsXLayout[0], r) }
func (r *TapThsX) SetTapThsx(v uint8) { set(tapThsXLayout[0], r, v) }
func (r TapThsX) SixDThs() uint8 { return get(tapThsXLayout[1], r) }
func (r *TapThsX) SetSixDThs(v uint8) { set(tapThsXLayout[1], r, v) }
func (r TapThsX) FourDEn() uint8 { return get(tapThsXLayout[2], r) }
func (r *TapThsX) SetFourDEn(v uint8) { set(tapThsXLayout[2], r, v) }

type TapThsY uint8

func (TapThsY) Address() Reg { return RegTapThsY }
func (r TapThsY) TapThsy() uint8 { return get(tapThsYLayout[0], r) }
func (r *TapThsY) SetTapThsy(v uint8) { set(tapThsYLayout[0], r, v) }
func (r TapThsY) TapPrior() uint8 { return get(tapThsYLayout[1], r) }
func (r *TapThsY) SetTapPrior(v uint8) { set(tapThsYLayout[1], r, v) }

type TapThsZ uint8

func (TapThsZ) Address() Reg { return RegTapThsZ }
func (r TapThsZ) TapThsz() uint8 { return get(tapThsZLayout[0], r) }
func (r *TapThsZ) SetTapThsz(v uint8) { set(tapThsZLayout[0], r, v) }
func (r TapThsZ) TapZEn() uint8 { return get(tapThsZLayout[1], r) }
func (r *TapThsZ) SetTapZEn(v uint8) { set(tapThsZLayout[1], r, v) }
func (r TapThsZ) TapYEn() uint8 { return get(tapThsZLayout[2], r) }
func (r *TapThsZ) SetTapYEn(v uint8) { set(tapThsZLayout[2], r, v) }
func (r TapThsZ) TapXEn() uint8 { return get(tapThsZLayout[3], r) }
func (r *TapThsZ) SetTapXEn(v uint8) { set(tapThsZLayout[3], r, v) }

type IntDur uint8

func (IntDur) Address() Reg { return RegIntDur }
func (r IntDur) Shock() uint8 { return get(intDurLayout[0], r) }
func (r *IntDur) SetShock(v uint8) { set(intDurLayout[0], r, v) }
func (r IntDur) Quiet() uint8 { return get(intDurLayout[1], r) }
func (r *IntDur) SetQuiet(v uint8) { set(intDurLayout[1], r, v) }
func (r IntDur) Latency() uint8 { return get(intDurLayout[2], r) }
func (r *IntDur) SetLatency(v uint8) { set(intDurLayout[2], r, v) }

type WakeUpThs uint8

func (WakeUpThs) Address() Reg { return RegWakeUpThs }
func (r WakeUpThs) WkThs() uint8 { return get(wakeUpThsLayout[0], r) }
func (r *WakeUpThs) SetWkThs(v uint8) { set(wakeUpThsLayout[0], r, v) }
func (r WakeUpThs) SleepOn() uint8 { return get(wakeUpThsLayout[1], r) }
func (r *WakeUpThs) SetSleepOn(v uint8) { set(wakeUpThsLayout[1], r, v) }
func (r WakeUpThs) SingleDoubleTap() uint8 { return get(wakeUpThsLayout[2], r) }
func (r *WakeUpThs) SetSingleDoubleTap(v uint8) { set(wakeUpThsLayout[2], r, v) }

type WakeUpDur uint8

func (WakeUpDur) Address() Reg { return RegWakeUpDur }
func (r WakeUpDur) SleepDur() uint8 { return get(wakeUpDurLayout[0], r) }
func (r *WakeUpDur) SetSleepDur(v uint8) { set(wakeUpDurLayout[0], r, v) }
func (r WakeUpDur) Stationary() uint8 { return get(wakeUpDurLayout[1], r) }
func (r *WakeUpDur) SetStationary(v uint8) { set(wakeUpDurLayout[1], r, v) }
func (r WakeUpDur) WakeDur() uint8 { return get(wakeUpDurLayout[2], r) }
func (r *WakeUpDur) SetWakeDur(v uint8) { set(wakeUpDurLayout[2], r, v) }
func (r WakeUpDur) FfDur() uint8 { return get(wakeUpDurLayout[3], r) }
func (r *WakeUpDur) SetFfDur(v uint8) { set(wakeUpDurLayout[3], r, v) }

type FreeFall uint8

func (FreeFall) Address() Reg { return RegFreeFall }
func (r FreeFall) FfThs() uint8 { return get(freeFallLayout[0], r) }
func (r *FreeFall) SetFfThs(v uint8) { set(freeFallLayout[0], r, v) }
func (r FreeFall) FfDur() uint8 { return get(freeFallLayout[1], r) }
func (r *FreeFall) SetFfDur(v uint8) { set(freeFallLayout[1], r, v) }

// StatusDup mirrors Status with overrun and temperature data-ready flags.
type StatusDup uint8

func (StatusDup) Address() Reg { return RegStatusDup }
func (r StatusDup) Drdy() uint8 { return get(flagsLayout[0], r) }
func (r StatusDup) FfIa() uint8 { return get(flagsLayout[1], r) }
func (r StatusDup) SixDIa() uint8 { return get(flagsLayout[2], r) }
func (r StatusDup) SingleTap() uint8 { return get(flagsLayout[3], r) }
func (r StatusDup) DoubleTap() uint8 { return get(flagsLayout[4], r) }
func (r StatusDup) SleepStateIa() uint8 { return get(flagsLayout[5], r) }
func (r StatusDup) DrdyT() uint8 { return get(flagsLayout[6], r) }
func (r StatusDup) Ovr() uint8 { return get(flagsLayout[7], r) }

type WakeUpSrc uint8

func (WakeUpSrc) Address() Reg { return RegWakeUpSrc }
func (r WakeUpSrc) ZWu() uint8 { return get(flagsLayout[0], r) }
func (r WakeUpSrc) YWu() uint8 { return get(flagsLayout[1], r) }
func (r WakeUpSrc) XWu() uint8 { return get(flagsLayout[2], r) }
func (r WakeUpSrc) WuIa() uint8 { return get(flagsLayout[3], r) }
func (r WakeUpSrc) SleepStateIa() uint8 { return get(flagsLayout[4], r) }
func (r WakeUpSrc) FfIa() uint8 { return get(flagsLayout[5], r) }

type TapSrc uint8

func (TapSrc) Address() Reg { return RegTapSrc }
func (r TapSrc) ZTap() uint8 { return get(flagsLayout[0], r) }
func (r TapSrc) YTap() uint8 { return get(flagsLayout[1], r) }
func (r TapSrc) XTap() uint8 { return get(flagsLayout[2], r) }
func (r TapSrc) TapSign() uint8 { return get(flagsLayout[3], r) }
func (r TapSrc) DoubleTap() uint8 { return get(flagsLayout[4], r) }
func (r TapSrc) SingleTap() uint8 { return get(flagsLayout[5], r) }
func (r TapSrc) TapIa() uint8 { return get(flagsLayout[6], r) }

type SixdSrc uint8

func (SixdSrc) Address() Reg { return RegSixdSrc }
func (r SixdSrc) XL() uint8 { return get(flagsLayout[0], r) }
func (r SixdSrc) XH() uint8 { return get(flagsLayout[1], r) }
func (r SixdSrc) YL() uint8 { return get(flagsLayout[2], r) }
func (r SixdSrc) YH() uint8 { return get(flagsLayout[3], r) }
func (r SixdSrc) ZL() uint8 { return get(flagsLayout[4], r) }
func (r SixdSrc) ZH() uint8 { return get(flagsLayout[5], r) }
func (r SixdSrc) SixDIa() uint8 { return get(flagsLayout[6], r) }

type AllIntSrc uint8

func (AllIntSrc) Address() Reg { return RegAllIntSrc }
func (r AllIntSrc) FfIa() uint8 { return get(flagsLayout[0], r) }
func (r AllIntSrc) WuIa() uint8 { return get(flagsLayout[1], r) }
func (r AllIntSrc) SingleTap() uint8 { return get(flagsLayout[2], r) }
func (r AllIntSrc) DoubleTap() uint8 { return get(flagsLayout[3], r) }
func (r AllIntSrc) SixDIa() uint8 { return get(flagsLayout[4], r) }
func (r AllIntSrc) SleepChangeIa() uint8 { return get(flagsLayout[5], r) }

// XOfsUsr, YOfsUsr and ZOfsUsr hold signed user offsets, one per byte.
type XOfsUsr uint8

func (XOfsUsr) Address() Reg { return RegXOfsUsr }
func (r XOfsUsr) XOfsUsr() int8 { return int8(offsetLayout[0].GetSigned(uint16(r))) }

type YOfsUsr uint8

func (YOfsUsr) Address() Reg { return RegYOfsUsr }
func (r YOfsUsr) YOfsUsr() int8 { return int8(offsetLayout[0].GetSigned(uint16(r))) }

type ZOfsUsr uint8

func (ZOfsUsr) Address() Reg { return RegZOfsUsr }
func (r ZOfsUsr) ZOfsUsr() int8 { return int8(offsetLayout[0].GetSigned(uint16(r))) }

type Ctrl7 uint8

func (Ctrl7) Address() Reg { return RegCtrl7 }
func (r Ctrl7) LpassOn6d() uint8 { return get(flagsLayout[0], r) }
func (r *Ctrl7) SetLpassOn6d(v uint8) { set(flagsLayout[0], r, v) }
func (r Ctrl7) HpRefMode() uint8 { return get(flagsLayout[1], r) }
func (r *Ctrl7) SetHpRefMode(v uint8) { set(flagsLayout[1], r, v) }
func (r Ctrl7) UsrOffW() uint8 { return get(flagsLayout[2], r) }
func (r *Ctrl7) SetUsrOffW(v uint8) { set(flagsLayout[2], r, v) }
func (r Ctrl7) UsrOffOnWu() uint8 { return get(flagsLayout[3], r) }
func (r *Ctrl7) SetUsrOffOnWu(v uint8) { set(flagsLayout[3], r, v) }
func (r Ctrl7) UsrOffOnOut() uint8 { return get(flagsLayout[4], r) }
func (r *Ctrl7) SetUsrOffOnOut(v uint8) { set(flagsLayout[4], r, v) }
func (r Ctrl7) InterruptsEnable() uint8 { return get(flagsLayout[5], r) }
func (r *Ctrl7) SetInterruptsEnable(v uint8) { set(flagsLayout[5], r, v) }
func (r Ctrl7) Int2OnInt1() uint8 { return get(flagsLayout[6], r) }
func (r *Ctrl7) SetInt2OnInt1(v uint8) { set(flagsLayout[6], r, v) }
func (r Ctrl7) DrdyPulsed() uint8 { return get(flagsLayout[7], r) }
func (r *Ctrl7) SetDrdyPulsed(v uint8) { set(flagsLayout[7], r, v) }
