package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mklimuk/mems/accel/iis2dlpc"
	"github.com/mklimuk/mems/cmd/sensors/console"
	"github.com/urfave/cli/v2"
)

type step func(ctx context.Context, d *iis2dlpc.Dev) error

// watcher configures the device for one kind of event and turns the
// sources read on every poll into report lines.
type watcher struct {
	usage  string
	setup  []step
	report func(ctx context.Context, d *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error)
}

func (w watcher) configure(ctx context.Context, d *iis2dlpc.Dev) error {
	if err := d.ResetAndWait(ctx); err != nil {
		return fmt.Errorf("could not reset device: %w", err)
	}
	for _, s := range w.setup {
		if err := s(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func fullScale(fs iis2dlpc.FullScale) step {
	return func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetFullScale(ctx, fs) }
}

func powerMode(m iis2dlpc.Mode) step {
	return func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetPowerMode(ctx, m) }
}

func dataRate(o iis2dlpc.ODR) step {
	return func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetDataRate(ctx, o) }
}

func lowPass(ctx context.Context, d *iis2dlpc.Dev) error {
	if err := d.SetFilterPath(ctx, iis2dlpc.FilterLowPassOnOut); err != nil {
		return err
	}
	return d.SetFilterBandwidth(ctx, iis2dlpc.BandwidthODRDiv4)
}

func route(enable func(r *iis2dlpc.Ctrl4Int1PadCtrl)) step {
	return func(ctx context.Context, d *iis2dlpc.Dev) error {
		r, err := d.GetInt1Route(ctx)
		if err != nil {
			return err
		}
		enable(&r)
		return d.SetInt1Route(ctx, r)
	}
}

func tap(threshold, shock, quiet, latency uint8, mode iis2dlpc.TapMode) step {
	return func(ctx context.Context, d *iis2dlpc.Dev) error {
		for _, set := range []func(context.Context, uint8) error{
			d.SetTapDetectionOnZ, d.SetTapDetectionOnY, d.SetTapDetectionOnX,
		} {
			if err := set(ctx, iis2dlpc.PropertyEnable); err != nil {
				return err
			}
		}
		for _, set := range []func(context.Context, uint8) error{
			d.SetTapThresholdX, d.SetTapThresholdY, d.SetTapThresholdZ,
		} {
			if err := set(ctx, threshold); err != nil {
				return err
			}
		}
		if latency > 0 {
			if err := d.SetTapDuration(ctx, latency); err != nil {
				return err
			}
		}
		if err := d.SetTapQuiet(ctx, quiet); err != nil {
			return err
		}
		if err := d.SetTapShock(ctx, shock); err != nil {
			return err
		}
		return d.SetTapMode(ctx, mode)
	}
}

func axes(x, y, z uint8) string {
	var b strings.Builder
	for i, set := range []uint8{x, y, z} {
		if set == 1 {
			b.WriteByte("XYZ"[i])
		}
	}
	return b.String()
}

func tapReport(kind string, flag func(iis2dlpc.TapSrc) uint8) func(context.Context, *iis2dlpc.Dev, iis2dlpc.AllSources) ([]string, error) {
	return func(_ context.Context, _ *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error) {
		if flag(src.TapSrc) != 1 {
			return nil, nil
		}
		sign := "negative"
		if src.TapSrc.TapSign() == 1 {
			sign = "positive"
		}
		var lines []string
		for i, hit := range []uint8{src.TapSrc.XTap(), src.TapSrc.YTap(), src.TapSrc.ZTap()} {
			if hit == 1 {
				lines = append(lines, fmt.Sprintf("%s detected: sign %s on %c axis", kind, sign, "XYZ"[i]))
			}
		}
		return lines, nil
	}
}

var watchers = map[string]watcher{
	"tap": {
		usage: "single tap on any axis",
		setup: []step{
			fullScale(iis2dlpc.FullScale2g),
			powerMode(iis2dlpc.ModeContLowPwrLowNoise12bit),
			dataRate(iis2dlpc.ODR400Hz),
			tap(9, 2, 1, 0, iis2dlpc.TapOnlySingle),
			route(func(r *iis2dlpc.Ctrl4Int1PadCtrl) { r.SetInt1SingleTap(iis2dlpc.PropertyEnable) }),
		},
		report: tapReport("tap", iis2dlpc.TapSrc.SingleTap),
	},
	"double-tap": {
		usage: "double tap on any axis",
		setup: []step{
			fullScale(iis2dlpc.FullScale2g),
			powerMode(iis2dlpc.ModeContLowPwrLowNoise12bit),
			dataRate(iis2dlpc.ODR400Hz),
			tap(12, 3, 3, 7, iis2dlpc.TapSingleAndDouble),
			route(func(r *iis2dlpc.Ctrl4Int1PadCtrl) { r.SetInt1Tap(iis2dlpc.PropertyEnable) }),
		},
		report: tapReport("double tap", iis2dlpc.TapSrc.DoubleTap),
	},
	"free-fall": {
		usage: "free fall, latched",
		setup: []step{
			powerMode(iis2dlpc.ModeHighPerformanceLowNoise),
			dataRate(iis2dlpc.ODR200Hz),
			fullScale(iis2dlpc.FullScale2g),
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetFreeFallDuration(ctx, 0x06) },
			func(ctx context.Context, d *iis2dlpc.Dev) error {
				return d.SetFreeFallThreshold(ctx, iis2dlpc.FreeFall10LSB)
			},
			route(func(r *iis2dlpc.Ctrl4Int1PadCtrl) { r.SetInt1Ff(iis2dlpc.PropertyEnable) }),
			func(ctx context.Context, d *iis2dlpc.Dev) error {
				return d.SetIntNotification(ctx, iis2dlpc.NotificationLatched)
			},
		},
		report: func(_ context.Context, _ *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error) {
			if src.WakeUpSrc.FfIa() == 1 {
				return []string{"free fall detected"}, nil
			}
			return nil, nil
		},
	},
	"wake-up": {
		usage: "wake-up on any axis above 2 LSB (FS/64)",
		setup: []step{
			fullScale(iis2dlpc.FullScale2g),
			powerMode(iis2dlpc.ModeContLowPwrLowNoise12bit),
			dataRate(iis2dlpc.ODR200Hz),
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetWakeUpDuration(ctx, 0) },
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetWakeUpThreshold(ctx, 2) },
			route(func(r *iis2dlpc.Ctrl4Int1PadCtrl) { r.SetInt1Wu(iis2dlpc.PropertyEnable) }),
		},
		report: func(_ context.Context, _ *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error) {
			w := src.WakeUpSrc
			if w.WuIa() != 1 {
				return nil, nil
			}
			return []string{fmt.Sprintf("wake-up event on %s direction", axes(w.XWu(), w.YWu(), w.ZWu()))}, nil
		},
	},
	"activity": {
		usage: "activity and inactivity transitions",
		setup: []step{
			fullScale(iis2dlpc.FullScale2g),
			lowPass,
			powerMode(iis2dlpc.ModeContLowPwrLowNoise12bit),
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetWakeUpDuration(ctx, 2) },
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetActivitySleepDuration(ctx, 2) },
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetWakeUpThreshold(ctx, 2) },
			func(ctx context.Context, d *iis2dlpc.Dev) error {
				return d.SetWakeUpFeed(ctx, iis2dlpc.WakeUpFeedHighPass)
			},
			func(ctx context.Context, d *iis2dlpc.Dev) error {
				return d.SetActivityMode(ctx, iis2dlpc.ActivityInactivity)
			},
			route(func(r *iis2dlpc.Ctrl4Int1PadCtrl) { r.SetInt1Wu(iis2dlpc.PropertyEnable) }),
			dataRate(iis2dlpc.ODR200Hz),
		},
		report: func(_ context.Context, _ *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error) {
			var lines []string
			if src.WakeUpSrc.SleepStateIa() == 1 {
				lines = append(lines, "inactivity detected")
			}
			if src.WakeUpSrc.WuIa() == 1 {
				lines = append(lines, "activity detected")
			}
			return lines, nil
		},
	},
	"orientation": {
		usage: "6D orientation changes",
		setup: []step{
			fullScale(iis2dlpc.FullScale2g),
			powerMode(iis2dlpc.ModeContLowPwrLowNoise12bit),
			func(ctx context.Context, d *iis2dlpc.Dev) error { return d.SetSixDThreshold(ctx, 0x02) },
			func(ctx context.Context, d *iis2dlpc.Dev) error {
				return d.SetSixDFeed(ctx, iis2dlpc.SixDFeedLowPass2)
			},
			route(func(r *iis2dlpc.Ctrl4Int1PadCtrl) { r.SetInt16d(iis2dlpc.PropertyEnable) }),
			dataRate(iis2dlpc.ODR200Hz),
		},
		report: func(_ context.Context, _ *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error) {
			s := src.SixdSrc
			if s.SixDIa() != 1 {
				return nil, nil
			}
			var pos []string
			for _, f := range []struct {
				name string
				set  uint8
			}{{"XH", s.XH()}, {"XL", s.XL()}, {"YH", s.YH()}, {"YL", s.YL()}, {"ZH", s.ZH()}, {"ZL", s.ZL()}} {
				if f.set == 1 {
					pos = append(pos, f.name)
				}
			}
			return []string{"6D orientation switched to " + strings.Join(pos, "")}, nil
		},
	},
	"poll": {
		usage: "acceleration samples at 25 Hz in 8g range",
		setup: []step{
			func(ctx context.Context, d *iis2dlpc.Dev) error {
				return d.SetBlockDataUpdate(ctx, iis2dlpc.PropertyEnable)
			},
			fullScale(iis2dlpc.FullScale8g),
			lowPass,
			powerMode(iis2dlpc.ModeContLowPwrLowNoise12bit),
			dataRate(iis2dlpc.ODR25Hz),
		},
		report: func(ctx context.Context, d *iis2dlpc.Dev, src iis2dlpc.AllSources) ([]string, error) {
			if src.StatusDup.Drdy() != 1 {
				return nil, nil
			}
			raw, err := d.GetAccelerationRaw(ctx)
			if err != nil {
				return nil, err
			}
			return []string{fmt.Sprintf("acceleration [mg]: %4.2f\t%4.2f\t%4.2f",
				iis2dlpc.FromFs8ToMg(raw[0]), iis2dlpc.FromFs8ToMg(raw[1]), iis2dlpc.FromFs8ToMg(raw[2]))}, nil
		},
	},
}

func watcherNames() []string {
	names := make([]string, 0, len(watchers))
	for n := range watchers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// watch polls the event sources until ctx is done.
func watch(ctx context.Context, d *iis2dlpc.Dev, w watcher, interval time.Duration, out func(string)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for ctx.Err() == nil {
		src, err := d.GetAllSources(ctx)
		if err != nil {
			return err
		}
		lines, err := w.report(ctx, d, src)
		if err != nil {
			return err
		}
		for _, l := range lines {
			out(l)
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	return nil
}

var accelWatchCmd = cli.Command{
	Name:      "watch",
	Usage:     "configure an event detector and print events as they occur",
	ArgsUsage: "<" + strings.Join(watcherNames(), "|") + ">",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "interval",
			Value: 10 * time.Millisecond,
			Usage: "source polling interval",
		},
	},
	Action: func(c *cli.Context) error {
		w, ok := watchers[c.Args().First()]
		if !ok {
			return console.Exit(1, "unknown event %q (valid: %s)", c.Args().First(), strings.Join(watcherNames(), ", "))
		}
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			if err := w.configure(ctx, dev); err != nil {
				return console.Fail("could not configure device", err)
			}
			console.Infof("watching %s, press Ctrl+C to stop", console.Bold(w.usage))
			err := watch(ctx, dev, w, c.Duration("interval"), func(line string) {
				console.Printf("%s %s\n", console.White(time.Now().Format(time.TimeOnly)), console.Yellow(line))
			})
			if err != nil {
				return console.Fail("could not read event sources", err)
			}
			return nil
		})
	},
}
