package iis2dlpc

import (
	"context"
	"fmt"
	"math"
)

const (
	selfTestSamples = 5
	// accepted |self-test - normal| per axis, in mg
	SelfTestMinMg = 70.0
	SelfTestMaxMg = 1500.0
)

// SelfTestResult holds the per axis averages in mg.
type SelfTestResult struct {
	Normal   [3]float32
	SelfTest [3]float32
	Delta    [3]float32
	Passed   bool
}

// SelfTest runs the positive self-test at ±4g, high-performance, 50 Hz.
// The device is reset first and left with ODR off and self-test disabled.
// Waiting for samples polls the data-ready flag without a bound.
func (d *Dev) SelfTest(ctx context.Context) (SelfTestResult, error) {
	var res SelfTestResult
	if err := d.ResetAndWait(ctx); err != nil {
		return res, fmt.Errorf("could not reset device: %w", err)
	}
	if err := d.SetBlockDataUpdate(ctx, PropertyEnable); err != nil {
		return res, err
	}
	if err := d.SetFullScale(ctx, FullScale4g); err != nil {
		return res, err
	}
	if err := d.SetPowerMode(ctx, ModeHighPerformance); err != nil {
		return res, err
	}
	if err := d.SetDataRate(ctx, ODR50Hz); err != nil {
		return res, err
	}
	d.DelayMs(100)
	var err error
	if res.Normal, err = d.averageSamples(ctx); err != nil {
		return res, fmt.Errorf("could not sample normal mode: %w", err)
	}
	if err = d.SetSelfTest(ctx, SelfTestPositive); err != nil {
		return res, err
	}
	d.DelayMs(100)
	if res.SelfTest, err = d.averageSamples(ctx); err != nil {
		return res, fmt.Errorf("could not sample self-test mode: %w", err)
	}
	res.Passed = true
	for i := range res.Delta {
		res.Delta[i] = float32(math.Abs(float64(res.SelfTest[i] - res.Normal[i])))
		if res.Delta[i] < SelfTestMinMg || res.Delta[i] > SelfTestMaxMg {
			res.Passed = false
		}
	}
	if err = d.SetDataRate(ctx, ODROff); err != nil {
		return res, err
	}
	return res, d.SetSelfTest(ctx, SelfTestDisable)
}

// averageSamples drops one stale sample and averages the next selfTestSamples.
func (d *Dev) averageSamples(ctx context.Context) ([3]float32, error) {
	var sum [3]float32
	if _, err := d.nextSample(ctx); err != nil {
		return sum, err
	}
	for n := 0; n < selfTestSamples; n++ {
		raw, err := d.nextSample(ctx)
		if err != nil {
			return sum, err
		}
		for i, v := range raw {
			sum[i] += FromFs4ToMg(v)
		}
	}
	for i := range sum {
		sum[i] /= selfTestSamples
	}
	return sum, nil
}

func (d *Dev) nextSample(ctx context.Context) ([3]int16, error) {
	for {
		drdy, err := d.GetDataReadyFlag(ctx)
		if err != nil {
			return [3]int16{}, err
		}
		if drdy == PropertyEnable {
			return d.GetAccelerationRaw(ctx)
		}
	}
}
