package iis2dlpc

import "context"

func (d *Dev) SetWakeUpThreshold(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *WakeUpThs) { r.SetWkThs(v) })
}

func (d *Dev) GetWakeUpThreshold(ctx context.Context) (uint8, error) {
	r, err := Read[WakeUpThs](ctx, d)
	return r.WkThs(), err
}

func (d *Dev) SetWakeUpDuration(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *WakeUpDur) { r.SetWakeDur(v) })
}

func (d *Dev) GetWakeUpDuration(ctx context.Context) (uint8, error) {
	r, err := Read[WakeUpDur](ctx, d)
	return r.WakeDur(), err
}

func (d *Dev) SetWakeUpFeed(ctx context.Context, f WakeUpFeed) error {
	return modify(ctx, d, func(r *Ctrl7) { r.SetUsrOffOnWu(uint8(f)) })
}

func (d *Dev) GetWakeUpFeed(ctx context.Context) (WakeUpFeed, error) {
	r, err := Read[Ctrl7](ctx, d)
	return lookup(WakeUpFeedNames, WakeUpFeed(r.UsrOffOnWu()), WakeUpFeedHighPass), err
}

// SetActivityMode reads WAKE_UP_THS and WAKE_UP_DUR, then writes sleep_on and stationary in that order.
func (d *Dev) SetActivityMode(ctx context.Context, m ActivityMode) error {
	ths, err := Read[WakeUpThs](ctx, d)
	if err != nil {
		return err
	}
	dur, err := Read[WakeUpDur](ctx, d)
	if err != nil {
		return err
	}
	ths.SetSleepOn(m.SleepOn())
	dur.SetStationary(m.Stationary())
	if err = Write(ctx, d, ths); err != nil {
		return err
	}
	return Write(ctx, d, dur)
}

func (d *Dev) GetActivityMode(ctx context.Context) (ActivityMode, error) {
	ths, err := Read[WakeUpThs](ctx, d)
	if err != nil {
		return ActivityNoDetection, err
	}
	dur, err := Read[WakeUpDur](ctx, d)
	if err != nil {
		return ActivityNoDetection, err
	}
	return NewActivityMode(ths.SleepOn(), dur.Stationary()), nil
}

func (d *Dev) SetActivitySleepDuration(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *WakeUpDur) { r.SetSleepDur(v) })
}

func (d *Dev) GetActivitySleepDuration(ctx context.Context) (uint8, error) {
	r, err := Read[WakeUpDur](ctx, d)
	return r.SleepDur(), err
}

func (d *Dev) SetTapThresholdX(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsX) { r.SetTapThsx(v) })
}

func (d *Dev) GetTapThresholdX(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsX](ctx, d)
	return r.TapThsx(), err
}

func (d *Dev) SetTapThresholdY(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsY) { r.SetTapThsy(v) })
}

func (d *Dev) GetTapThresholdY(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsY](ctx, d)
	return r.TapThsy(), err
}

func (d *Dev) SetTapAxisPriority(ctx context.Context, p TapPriority) error {
	return modify(ctx, d, func(r *TapThsY) { r.SetTapPrior(uint8(p)) })
}

func (d *Dev) GetTapAxisPriority(ctx context.Context) (TapPriority, error) {
	r, err := Read[TapThsY](ctx, d)
	return lookup(TapPriorityNames, TapPriority(r.TapPrior()), TapPriorityXYZ), err
}

func (d *Dev) SetTapThresholdZ(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsZ) { r.SetTapThsz(v) })
}

func (d *Dev) GetTapThresholdZ(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsZ](ctx, d)
	return r.TapThsz(), err
}

func (d *Dev) SetTapDetectionOnZ(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsZ) { r.SetTapZEn(v) })
}

func (d *Dev) GetTapDetectionOnZ(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsZ](ctx, d)
	return r.TapZEn(), err
}

func (d *Dev) SetTapDetectionOnY(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsZ) { r.SetTapYEn(v) })
}

func (d *Dev) GetTapDetectionOnY(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsZ](ctx, d)
	return r.TapYEn(), err
}

func (d *Dev) SetTapDetectionOnX(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsZ) { r.SetTapXEn(v) })
}

func (d *Dev) GetTapDetectionOnX(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsZ](ctx, d)
	return r.TapXEn(), err
}

// SetTapShock sets the maximum overthreshold event duration.
func (d *Dev) SetTapShock(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *IntDur) { r.SetShock(v) })
}

func (d *Dev) GetTapShock(ctx context.Context) (uint8, error) {
	r, err := Read[IntDur](ctx, d)
	return r.Shock(), err
}

// SetTapQuiet sets the quiet time after a tap.
func (d *Dev) SetTapQuiet(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *IntDur) { r.SetQuiet(v) })
}

func (d *Dev) GetTapQuiet(ctx context.Context) (uint8, error) {
	r, err := Read[IntDur](ctx, d)
	return r.Quiet(), err
}

// SetTapDuration sets the maximum time between the two taps of a double tap.
func (d *Dev) SetTapDuration(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *IntDur) { r.SetLatency(v) })
}

func (d *Dev) GetTapDuration(ctx context.Context) (uint8, error) {
	r, err := Read[IntDur](ctx, d)
	return r.Latency(), err
}

func (d *Dev) SetTapMode(ctx context.Context, m TapMode) error {
	return modify(ctx, d, func(r *WakeUpThs) { r.SetSingleDoubleTap(uint8(m)) })
}

func (d *Dev) GetTapMode(ctx context.Context) (TapMode, error) {
	r, err := Read[WakeUpThs](ctx, d)
	return lookup(TapModeNames, TapMode(r.SingleDoubleTap()), TapOnlySingle), err
}

func (d *Dev) GetTapSource(ctx context.Context) (TapSrc, error) {
	return Read[TapSrc](ctx, d)
}

func (d *Dev) SetSixDThreshold(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsX) { r.SetSixDThs(v) })
}

func (d *Dev) GetSixDThreshold(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsX](ctx, d)
	return r.SixDThs(), err
}

func (d *Dev) SetFourDMode(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *TapThsX) { r.SetFourDEn(v) })
}

func (d *Dev) GetFourDMode(ctx context.Context) (uint8, error) {
	r, err := Read[TapThsX](ctx, d)
	return r.FourDEn(), err
}

func (d *Dev) GetSixDSource(ctx context.Context) (SixdSrc, error) {
	return Read[SixdSrc](ctx, d)
}

func (d *Dev) SetSixDFeed(ctx context.Context, f SixDFeed) error {
	return modify(ctx, d, func(r *Ctrl7) { r.SetLpassOn6d(uint8(f)) })
}

func (d *Dev) GetSixDFeed(ctx context.Context) (SixDFeed, error) {
	r, err := Read[Ctrl7](ctx, d)
	return lookup(SixDFeedNames, SixDFeed(r.LpassOn6d()), SixDFeedODRDiv2), err
}

// SetFreeFallDuration splits the 6 bit duration: bit 5 goes to WAKE_UP_DUR, bits 0-4 to FREE_FALL.
// Both registers are read before WAKE_UP_DUR and then FREE_FALL are written.
func (d *Dev) SetFreeFallDuration(ctx context.Context, v uint8) error {
	dur, err := Read[WakeUpDur](ctx, d)
	if err != nil {
		return err
	}
	ff, err := Read[FreeFall](ctx, d)
	if err != nil {
		return err
	}
	dur.SetFfDur((v & 0x20) >> 5)
	ff.SetFfDur(v & 0x1F)
	if err = Write(ctx, d, dur); err != nil {
		return err
	}
	return Write(ctx, d, ff)
}

func (d *Dev) GetFreeFallDuration(ctx context.Context) (uint8, error) {
	dur, err := Read[WakeUpDur](ctx, d)
	if err != nil {
		return 0, err
	}
	ff, err := Read[FreeFall](ctx, d)
	if err != nil {
		return 0, err
	}
	return dur.FfDur()<<5 | ff.FfDur(), nil
}

func (d *Dev) SetFreeFallThreshold(ctx context.Context, t FreeFallThreshold) error {
	return modify(ctx, d, func(r *FreeFall) { r.SetFfThs(uint8(t)) })
}

func (d *Dev) GetFreeFallThreshold(ctx context.Context) (FreeFallThreshold, error) {
	r, err := Read[FreeFall](ctx, d)
	return lookup(FreeFallThresholdNames, FreeFallThreshold(r.FfThs()), FreeFall5LSB), err
}
