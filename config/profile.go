// Package config loads IIS2DLPC start-up profiles from YAML.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mklimuk/mems/accel/iis2dlpc"
)

// Profile names a device configuration by its semantic values. Empty fields leave the
// power-on default in place.
type Profile struct {
	FullScale       string `yaml:"full_scale,omitempty"`
	DataRate        string `yaml:"data_rate,omitempty"`
	PowerMode       string `yaml:"power_mode,omitempty"`
	BlockDataUpdate bool   `yaml:"block_data_update"`
	FilterPath      string `yaml:"filter_path,omitempty"`
	Bandwidth       string `yaml:"bandwidth,omitempty"`
	FIFO            *FIFO  `yaml:"fifo,omitempty"`
}

type FIFO struct {
	Mode      string `yaml:"mode"`
	Watermark uint8  `yaml:"watermark"`
}

type settings struct {
	fs        *iis2dlpc.FullScale
	odr       *iis2dlpc.ODR
	mode      *iis2dlpc.Mode
	path      *iis2dlpc.FilterPath
	bw        *iis2dlpc.Bandwidth
	fifo      *iis2dlpc.FIFOMode
	watermark uint8
}

func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a profile and checks every enum name. Unknown keys are rejected.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode profile: %w", err)
	}
	if _, err := p.resolve(); err != nil {
		return nil, err
	}
	return &p, nil
}

func optional[E any](field, text string, parse func(string) (E, error)) (*E, error) {
	if text == "" {
		return nil, nil
	}
	v, err := parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return &v, nil
}

func (p *Profile) resolve() (settings, error) {
	var s settings
	var err error
	if s.fs, err = optional("full_scale", p.FullScale, iis2dlpc.ParseFullScale); err != nil {
		return s, err
	}
	if s.odr, err = optional("data_rate", p.DataRate, iis2dlpc.ParseODR); err != nil {
		return s, err
	}
	if s.mode, err = optional("power_mode", p.PowerMode, iis2dlpc.ParseMode); err != nil {
		return s, err
	}
	if s.path, err = optional("filter_path", p.FilterPath, iis2dlpc.ParseFilterPath); err != nil {
		return s, err
	}
	if s.bw, err = optional("bandwidth", p.Bandwidth, iis2dlpc.ParseBandwidth); err != nil {
		return s, err
	}
	if p.FIFO != nil {
		if p.FIFO.Watermark > 0x1F {
			return s, fmt.Errorf("invalid fifo.watermark: %d exceeds 31", p.FIFO.Watermark)
		}
		if s.fifo, err = optional("fifo.mode", p.FIFO.Mode, iis2dlpc.ParseFIFOMode); err != nil {
			return s, err
		}
		s.watermark = p.FIFO.Watermark
	}
	return s, nil
}

// Apply resets the device, waits for the reset to complete and writes the profile:
// block data update, full scale, filter path, bandwidth, power mode, data rate, FIFO.
// A failure leaves the steps before it applied.
func (p *Profile) Apply(ctx context.Context, dev *iis2dlpc.Dev) error {
	s, err := p.resolve()
	if err != nil {
		return err
	}
	if err = dev.ResetAndWait(ctx); err != nil {
		return fmt.Errorf("could not reset device: %w", err)
	}
	bdu := iis2dlpc.PropertyDisable
	if p.BlockDataUpdate {
		bdu = iis2dlpc.PropertyEnable
	}
	if err = dev.SetBlockDataUpdate(ctx, bdu); err != nil {
		return fmt.Errorf("could not set block data update: %w", err)
	}
	if s.fs != nil {
		if err = dev.SetFullScale(ctx, *s.fs); err != nil {
			return fmt.Errorf("could not set full scale: %w", err)
		}
	}
	if s.path != nil {
		if err = dev.SetFilterPath(ctx, *s.path); err != nil {
			return fmt.Errorf("could not set filter path: %w", err)
		}
	}
	if s.bw != nil {
		if err = dev.SetFilterBandwidth(ctx, *s.bw); err != nil {
			return fmt.Errorf("could not set bandwidth: %w", err)
		}
	}
	if s.mode != nil {
		if err = dev.SetPowerMode(ctx, *s.mode); err != nil {
			return fmt.Errorf("could not set power mode: %w", err)
		}
	}
	if s.odr != nil {
		if err = dev.SetDataRate(ctx, *s.odr); err != nil {
			return fmt.Errorf("could not set data rate: %w", err)
		}
	}
	if p.FIFO != nil {
		if err = dev.SetFIFOWatermark(ctx, s.watermark); err != nil {
			return fmt.Errorf("could not set fifo watermark: %w", err)
		}
		if s.fifo != nil {
			if err = dev.SetFIFOMode(ctx, *s.fifo); err != nil {
				return fmt.Errorf("could not set fifo mode: %w", err)
			}
		}
	}
	return nil
}

// Settings returns the resolved full scale and power mode, the pair needed to convert samples.
func (p *Profile) Settings() (iis2dlpc.FullScale, iis2dlpc.Mode) {
	s, _ := p.resolve()
	fs, mode := iis2dlpc.FullScale2g, iis2dlpc.ModeContLowPwr12bit
	if s.fs != nil {
		fs = *s.fs
	}
	if s.mode != nil {
		mode = *s.mode
	}
	return fs, mode
}
