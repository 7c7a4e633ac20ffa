package iis2dlpc

import "context"

// modify reads register R, applies fn and writes it back.
func modify[R Register8](ctx context.Context, d *Dev, fn func(*R)) error {
	r, err := Read[R](ctx, d)
	if err != nil {
		return err
	}
	fn(&r)
	return Write(ctx, d, r)
}

// SetPowerMode writes mode and lp_mode to CTRL1, then low_noise to CTRL6.
// A failed CTRL6 access leaves CTRL1 already updated.
func (d *Dev) SetPowerMode(ctx context.Context, m Mode) error {
	err := modify(ctx, d, func(r *Ctrl1) {
		r.SetMode(m.Mode())
		r.SetLpMode(m.LpMode())
	})
	if err != nil {
		return err
	}
	return modify(ctx, d, func(r *Ctrl6) { r.SetLowNoise(m.LowNoise()) })
}

func (d *Dev) GetPowerMode(ctx context.Context) (Mode, error) {
	ctrl1, err := Read[Ctrl1](ctx, d)
	if err != nil {
		return ModeContLowPwr12bit, err
	}
	ctrl6, err := Read[Ctrl6](ctx, d)
	if err != nil {
		return ModeContLowPwr12bit, err
	}
	return NewMode(ctrl1.Mode(), ctrl1.LpMode(), ctrl6.LowNoise()), nil
}

// SetDataRate writes odr to CTRL1, then slp_mode to CTRL3.
func (d *Dev) SetDataRate(ctx context.Context, o ODR) error {
	if err := modify(ctx, d, func(r *Ctrl1) { r.SetOdr(o.Odr()) }); err != nil {
		return err
	}
	return modify(ctx, d, func(r *Ctrl3) { r.SetSlpMode(o.SlpMode()) })
}

func (d *Dev) GetDataRate(ctx context.Context) (ODR, error) {
	ctrl1, err := Read[Ctrl1](ctx, d)
	if err != nil {
		return ODROff, err
	}
	ctrl3, err := Read[Ctrl3](ctx, d)
	if err != nil {
		return ODROff, err
	}
	return NewODR(ctrl1.Odr(), ctrl3.SlpMode()), nil
}

func (d *Dev) SetBlockDataUpdate(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetBdu(v) })
}

func (d *Dev) GetBlockDataUpdate(ctx context.Context) (uint8, error) {
	r, err := Read[Ctrl2](ctx, d)
	return r.Bdu(), err
}

func (d *Dev) SetFullScale(ctx context.Context, fs FullScale) error {
	return modify(ctx, d, func(r *Ctrl6) { r.SetFs(uint8(fs)) })
}

func (d *Dev) GetFullScale(ctx context.Context) (FullScale, error) {
	r, err := Read[Ctrl6](ctx, d)
	return lookup(FullScaleNames, FullScale(r.Fs()), FullScale2g), err
}

func (d *Dev) GetStatus(ctx context.Context) (Status, error) {
	return Read[Status](ctx, d)
}

func (d *Dev) GetDataReadyFlag(ctx context.Context) (uint8, error) {
	r, err := d.GetStatus(ctx)
	return r.Drdy(), err
}

// AllSources is the content of the five event source registers.
type AllSources struct {
	StatusDup StatusDup
	WakeUpSrc WakeUpSrc
	TapSrc    TapSrc
	SixdSrc   SixdSrc
	AllIntSrc AllIntSrc
}

// GetAllSources reads STATUS_DUP, WAKE_UP_SRC, TAP_SRC, SIXD_SRC and ALL_INT_SRC in that order.
// Reading the sources clears latched interrupts.
func (d *Dev) GetAllSources(ctx context.Context) (AllSources, error) {
	var src AllSources
	var err error
	if src.StatusDup, err = Read[StatusDup](ctx, d); err != nil {
		return src, err
	}
	if src.WakeUpSrc, err = Read[WakeUpSrc](ctx, d); err != nil {
		return src, err
	}
	if src.TapSrc, err = Read[TapSrc](ctx, d); err != nil {
		return src, err
	}
	if src.SixdSrc, err = Read[SixdSrc](ctx, d); err != nil {
		return src, err
	}
	src.AllIntSrc, err = Read[AllIntSrc](ctx, d)
	return src, err
}

// User offsets occupy the whole register and are written without a read.

func (d *Dev) SetUserOffsetX(ctx context.Context, v int8) error {
	return Write(ctx, d, XOfsUsr(uint8(v)))
}

func (d *Dev) GetUserOffsetX(ctx context.Context) (int8, error) {
	r, err := Read[XOfsUsr](ctx, d)
	return r.XOfsUsr(), err
}

func (d *Dev) SetUserOffsetY(ctx context.Context, v int8) error {
	return Write(ctx, d, YOfsUsr(uint8(v)))
}

func (d *Dev) GetUserOffsetY(ctx context.Context) (int8, error) {
	r, err := Read[YOfsUsr](ctx, d)
	return r.YOfsUsr(), err
}

func (d *Dev) SetUserOffsetZ(ctx context.Context, v int8) error {
	return Write(ctx, d, ZOfsUsr(uint8(v)))
}

func (d *Dev) GetUserOffsetZ(ctx context.Context) (int8, error) {
	r, err := Read[ZOfsUsr](ctx, d)
	return r.ZOfsUsr(), err
}

func (d *Dev) SetOffsetWeight(ctx context.Context, w OffsetWeight) error {
	return modify(ctx, d, func(r *Ctrl7) { r.SetUsrOffW(uint8(w)) })
}

func (d *Dev) GetOffsetWeight(ctx context.Context) (OffsetWeight, error) {
	r, err := Read[Ctrl7](ctx, d)
	return lookup(OffsetWeightNames, OffsetWeight(r.UsrOffW()), OffsetWeight977ug), err
}

// GetTemperatureRaw returns the sign-extended 12 bit temperature sample.
func (d *Dev) GetTemperatureRaw(ctx context.Context) (int16, error) {
	r, err := Read16[OutT](ctx, d)
	return r.Temp(), err
}

// GetAccelerationRaw returns sign-extended 14 bit samples for X, Y and Z.
func (d *Dev) GetAccelerationRaw(ctx context.Context) ([3]int16, error) {
	var out [3]int16
	x, err := Read16[OutX](ctx, d)
	if err != nil {
		return out, err
	}
	y, err := Read16[OutY](ctx, d)
	if err != nil {
		return out, err
	}
	z, err := Read16[OutZ](ctx, d)
	if err != nil {
		return out, err
	}
	return [3]int16{x.X(), y.Y(), z.Z()}, nil
}

func (d *Dev) SetAutoIncrement(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetIfAddInc(v) })
}

func (d *Dev) GetAutoIncrement(ctx context.Context) (uint8, error) {
	r, err := Read[Ctrl2](ctx, d)
	return r.IfAddInc(), err
}

// Reset starts a software reset. The device clears the bit when done.
func (d *Dev) Reset(ctx context.Context) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetSoftReset(PropertyEnable) })
}

func (d *Dev) GetReset(ctx context.Context) (uint8, error) {
	r, err := Read[Ctrl2](ctx, d)
	return r.SoftReset(), err
}

// Boot reloads the calibration parameters.
func (d *Dev) Boot(ctx context.Context) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetBoot(PropertyEnable) })
}

func (d *Dev) GetBoot(ctx context.Context) (uint8, error) {
	r, err := Read[Ctrl2](ctx, d)
	return r.Boot(), err
}

func (d *Dev) SetSelfTest(ctx context.Context, st SelfTestMode) error {
	return modify(ctx, d, func(r *Ctrl3) { r.SetSt(uint8(st)) })
}

func (d *Dev) GetSelfTest(ctx context.Context) (SelfTestMode, error) {
	r, err := Read[Ctrl3](ctx, d)
	return lookup(SelfTestModeNames, SelfTestMode(r.St()), SelfTestDisable), err
}

func (d *Dev) SetDataReadyMode(ctx context.Context, m DataReadyMode) error {
	return modify(ctx, d, func(r *Ctrl7) { r.SetDrdyPulsed(uint8(m)) })
}

func (d *Dev) GetDataReadyMode(ctx context.Context) (DataReadyMode, error) {
	r, err := Read[Ctrl7](ctx, d)
	return lookup(DataReadyModeNames, DataReadyMode(r.DrdyPulsed()), DataReadyLatched), err
}

// SetFilterPath writes fds to CTRL6, then usr_off_on_out to CTRL7.
func (d *Dev) SetFilterPath(ctx context.Context, f FilterPath) error {
	if err := modify(ctx, d, func(r *Ctrl6) { r.SetFds(f.Fds()) }); err != nil {
		return err
	}
	return modify(ctx, d, func(r *Ctrl7) { r.SetUsrOffOnOut(f.UsrOffOnOut()) })
}

func (d *Dev) GetFilterPath(ctx context.Context) (FilterPath, error) {
	ctrl6, err := Read[Ctrl6](ctx, d)
	if err != nil {
		return FilterLowPassOnOut, err
	}
	ctrl7, err := Read[Ctrl7](ctx, d)
	if err != nil {
		return FilterLowPassOnOut, err
	}
	return NewFilterPath(ctrl6.Fds(), ctrl7.UsrOffOnOut()), nil
}

func (d *Dev) SetFilterBandwidth(ctx context.Context, b Bandwidth) error {
	return modify(ctx, d, func(r *Ctrl6) { r.SetBwFilt(uint8(b)) })
}

func (d *Dev) GetFilterBandwidth(ctx context.Context) (Bandwidth, error) {
	r, err := Read[Ctrl6](ctx, d)
	return lookup(BandwidthNames, Bandwidth(r.BwFilt()), BandwidthODRDiv2), err
}

// SetReferenceMode enables the high-pass filter reference mode.
func (d *Dev) SetReferenceMode(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *Ctrl7) { r.SetHpRefMode(v) })
}

func (d *Dev) GetReferenceMode(ctx context.Context) (uint8, error) {
	r, err := Read[Ctrl7](ctx, d)
	return r.HpRefMode(), err
}
