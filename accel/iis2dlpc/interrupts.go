package iis2dlpc

import "context"

func (d *Dev) SetSPIMode(ctx context.Context, m SPIMode) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetSim(uint8(m)) })
}

func (d *Dev) GetSPIMode(ctx context.Context) (SPIMode, error) {
	r, err := Read[Ctrl2](ctx, d)
	return lookup(SPIModeNames, SPIMode(r.Sim()), SPI4Wire), err
}

func (d *Dev) SetI2CInterface(ctx context.Context, v I2CInterface) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetI2cDisable(uint8(v)) })
}

func (d *Dev) GetI2CInterface(ctx context.Context) (I2CInterface, error) {
	r, err := Read[Ctrl2](ctx, d)
	return lookup(I2CInterfaceNames, I2CInterface(r.I2cDisable()), I2CEnabled), err
}

func (d *Dev) SetCSMode(ctx context.Context, v CSPullUp) error {
	return modify(ctx, d, func(r *Ctrl2) { r.SetCsPuDisc(uint8(v)) })
}

func (d *Dev) GetCSMode(ctx context.Context) (CSPullUp, error) {
	r, err := Read[Ctrl2](ctx, d)
	return lookup(CSPullUpNames, CSPullUp(r.CsPuDisc()), CSPullUpConnected), err
}

func (d *Dev) SetPinPolarity(ctx context.Context, p PinPolarity) error {
	return modify(ctx, d, func(r *Ctrl3) { r.SetHLactive(uint8(p)) })
}

func (d *Dev) GetPinPolarity(ctx context.Context) (PinPolarity, error) {
	r, err := Read[Ctrl3](ctx, d)
	return lookup(PinPolarityNames, PinPolarity(r.HLactive()), ActiveHigh), err
}

func (d *Dev) SetIntNotification(ctx context.Context, n Notification) error {
	return modify(ctx, d, func(r *Ctrl3) { r.SetLir(uint8(n)) })
}

func (d *Dev) GetIntNotification(ctx context.Context) (Notification, error) {
	r, err := Read[Ctrl3](ctx, d)
	return lookup(NotificationNames, Notification(r.Lir()), NotificationPulsed), err
}

func (d *Dev) SetPinMode(ctx context.Context, m PinMode) error {
	return modify(ctx, d, func(r *Ctrl3) { r.SetPpOd(uint8(m)) })
}

func (d *Dev) GetPinMode(ctx context.Context) (PinMode, error) {
	r, err := Read[Ctrl3](ctx, d)
	return lookup(PinModeNames, PinMode(r.PpOd()), PushPull), err
}

// interruptsEnable is set when any routing bit of either pad is set.
func interruptsEnable(int1 Ctrl4Int1PadCtrl, int2 Ctrl5Int2PadCtrl) uint8 {
	if int1 != 0 || int2 != 0 {
		return PropertyEnable
	}
	return PropertyDisable
}

// SetInt1Route writes the INT1 routing and recomputes CTRL7.INTERRUPTS_ENABLE from both pads.
// INT2 and CTRL7 are read first; INT1 is written before CTRL7.
func (d *Dev) SetInt1Route(ctx context.Context, route Ctrl4Int1PadCtrl) error {
	int2, err := Read[Ctrl5Int2PadCtrl](ctx, d)
	if err != nil {
		return err
	}
	ctrl7, err := Read[Ctrl7](ctx, d)
	if err != nil {
		return err
	}
	ctrl7.SetInterruptsEnable(interruptsEnable(route, int2))
	if err = Write(ctx, d, route); err != nil {
		return err
	}
	return Write(ctx, d, ctrl7)
}

func (d *Dev) GetInt1Route(ctx context.Context) (Ctrl4Int1PadCtrl, error) {
	return Read[Ctrl4Int1PadCtrl](ctx, d)
}

// SetInt2Route is the INT2 counterpart of SetInt1Route.
func (d *Dev) SetInt2Route(ctx context.Context, route Ctrl5Int2PadCtrl) error {
	int1, err := Read[Ctrl4Int1PadCtrl](ctx, d)
	if err != nil {
		return err
	}
	ctrl7, err := Read[Ctrl7](ctx, d)
	if err != nil {
		return err
	}
	ctrl7.SetInterruptsEnable(interruptsEnable(int1, route))
	if err = Write(ctx, d, route); err != nil {
		return err
	}
	return Write(ctx, d, ctrl7)
}

func (d *Dev) GetInt2Route(ctx context.Context) (Ctrl5Int2PadCtrl, error) {
	return Read[Ctrl5Int2PadCtrl](ctx, d)
}

// SetAllOnInt1 routes every INT2 signal to INT1 as well.
func (d *Dev) SetAllOnInt1(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *Ctrl7) { r.SetInt2OnInt1(v) })
}

func (d *Dev) GetAllOnInt1(ctx context.Context) (uint8, error) {
	r, err := Read[Ctrl7](ctx, d)
	return r.Int2OnInt1(), err
}
