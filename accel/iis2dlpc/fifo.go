package iis2dlpc

import "context"

// Watermark and mode share FIFO_CTRL but are set independently.

func (d *Dev) SetFIFOWatermark(ctx context.Context, v uint8) error {
	return modify(ctx, d, func(r *FifoCtrl) { r.SetFth(v) })
}

func (d *Dev) GetFIFOWatermark(ctx context.Context) (uint8, error) {
	r, err := Read[FifoCtrl](ctx, d)
	return r.Fth(), err
}

func (d *Dev) SetFIFOMode(ctx context.Context, m FIFOMode) error {
	return modify(ctx, d, func(r *FifoCtrl) { r.SetFmode(uint8(m)) })
}

func (d *Dev) GetFIFOMode(ctx context.Context) (FIFOMode, error) {
	r, err := Read[FifoCtrl](ctx, d)
	return lookup(FIFOModeNames, FIFOMode(r.Fmode()), FIFOBypass), err
}

// GetFIFODataLevel returns the number of unread samples.
func (d *Dev) GetFIFODataLevel(ctx context.Context) (uint8, error) {
	r, err := Read[FifoSamples](ctx, d)
	return r.Diff(), err
}

func (d *Dev) GetFIFOOverrunFlag(ctx context.Context) (uint8, error) {
	r, err := Read[FifoSamples](ctx, d)
	return r.FifoOvr(), err
}

func (d *Dev) GetFIFOWatermarkFlag(ctx context.Context) (uint8, error) {
	r, err := Read[FifoSamples](ctx, d)
	return r.FifoFth(), err
}
