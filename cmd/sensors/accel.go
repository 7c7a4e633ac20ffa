package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mklimuk/mems/accel/iis2dlpc"
	"github.com/mklimuk/mems/cmd/sensors/console"
	"github.com/mklimuk/mems/config"
	"github.com/mklimuk/mems/snsctx"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var ErrWrongDevice = errors.New("wrong device")

var accelCmd = cli.Command{
	Name:  "accel",
	Usage: "IIS2DLPC accelerometer",
	Flags: busFlags,
	Subcommands: cli.Commands{
		&accelIDCmd,
		&accelReadCmd,
		&accelDumpCmd,
		&accelApplyCmd,
		&accelSelfTestCmd,
		&accelWatchCmd,
		&accelResetCmd,
	},
}

// withDevice opens the device, checks WHO_AM_I and runs fn.
func withDevice(c *cli.Context, fn func(ctx context.Context, dev *iis2dlpc.Dev) error) error {
	ctx := snsctx.SetVerbose(c.Context, c.Bool("verbose"))
	dev, closer, err := openDevice(c)
	if err != nil {
		return console.Fail("could not open bus", err)
	}
	defer func() { _ = closer.Close() }()
	if err = checkID(ctx, dev); err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	return fn(ctx, dev)
}

func checkID(ctx context.Context, dev *iis2dlpc.Dev) error {
	id, err := dev.GetDeviceID(ctx)
	if err != nil {
		return fmt.Errorf("could not read device id: %w", err)
	}
	if id != iis2dlpc.ID {
		return fmt.Errorf("%w: WHO_AM_I is %#02x, expected %#02x", ErrWrongDevice, id, iis2dlpc.ID)
	}
	return nil
}

var accelIDCmd = cli.Command{
	Name:  "id",
	Usage: "check the device identifier",
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			console.Printf("device id: %s\n", console.Green(fmt.Sprintf("%#02x", iis2dlpc.ID)))
			return nil
		})
	},
}

var accelReadCmd = cli.Command{
	Name:  "read",
	Usage: "read acceleration and temperature samples",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "samples", Aliases: []string{"n"}, Value: 1},
		&cli.DurationFlag{Name: "interval", Value: 100 * time.Millisecond},
	},
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			fs, err := dev.GetFullScale(ctx)
			if err != nil {
				return console.Fail("could not read full scale", err)
			}
			mode, err := dev.GetPowerMode(ctx)
			if err != nil {
				return console.Fail("could not read power mode", err)
			}
			for i := 0; i < c.Int("samples"); i++ {
				if i > 0 {
					time.Sleep(c.Duration("interval"))
				}
				raw, err := dev.GetAccelerationRaw(ctx)
				if err != nil {
					return console.Fail("could not read acceleration", err)
				}
				t, err := dev.GetTemperatureRaw(ctx)
				if err != nil {
					return console.Fail("could not read temperature", err)
				}
				console.Printf("x: %s mg  y: %s mg  z: %s mg  %s %s°C\n",
					console.White(fmt.Sprintf("%8.2f", iis2dlpc.FromLsbToMg(fs, mode, raw[0]))),
					console.White(fmt.Sprintf("%8.2f", iis2dlpc.FromLsbToMg(fs, mode, raw[1]))),
					console.White(fmt.Sprintf("%8.2f", iis2dlpc.FromLsbToMg(fs, mode, raw[2]))),
					console.PictoThermometer,
					console.White(fmt.Sprintf("%.2f", iis2dlpc.FromLsbToCelsius(t))))
			}
			return nil
		})
	},
}

var accelDumpCmd = cli.Command{
	Name:  "dump",
	Usage: "print the decoded configuration and raw registers as YAML",
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			snap, err := dev.ReadSnapshot(ctx)
			if err != nil {
				return console.Fail("could not read registers", err)
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer func() { _ = enc.Close() }()
			if err = enc.Encode(snap); err != nil {
				return console.Fail("encoding error", err)
			}
			return nil
		})
	},
}

var accelApplyCmd = cli.Command{
	Name:      "apply",
	Usage:     "reset the device and apply a YAML profile",
	ArgsUsage: "<profile.yaml>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return console.Exit(1, "expected exactly one profile path")
		}
		profile, err := config.Load(c.Args().First())
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			if err := profile.Apply(ctx, dev); err != nil {
				return console.Fail("could not apply profile", err)
			}
			console.PInfof(console.PictoPin, "profile %s applied", console.Bold(c.Args().First()))
			return nil
		})
	},
}

var accelSelfTestCmd = cli.Command{
	Name:  "selftest",
	Usage: "run the positive self-test and compare the deltas against the allowed window",
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			res, err := dev.SelfTest(ctx)
			if err != nil {
				return console.Fail("self-test error", err)
			}
			for i, axis := range []string{"x", "y", "z"} {
				console.Printf("%s: normal %8.2f mg  self-test %8.2f mg  delta %8.2f mg\n",
					axis, res.Normal[i], res.SelfTest[i], res.Delta[i])
			}
			if !res.Passed {
				return console.Exit(2, "self-test %s (allowed delta %.0f..%.0f mg)",
					console.Verdict(false), iis2dlpc.SelfTestMinMg, iis2dlpc.SelfTestMaxMg)
			}
			console.PInfof(console.PictoFinish, "self-test %s", console.Verdict(true))
			return nil
		})
	},
}

var accelResetCmd = cli.Command{
	Name:  "reset",
	Usage: "restore the default configuration",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
	},
	Action: func(c *cli.Context) error {
		if !c.Bool("yes") {
			ok, err := console.Confirm("reset the accelerometer configuration?")
			if err != nil {
				return console.Fail("prompt error", err)
			}
			if !ok {
				console.PInfof(console.PictoStop, "aborted")
				return nil
			}
		}
		return withDevice(c, func(ctx context.Context, dev *iis2dlpc.Dev) error {
			if err := dev.ResetAndWait(ctx); err != nil {
				return console.Fail("could not reset device", err)
			}
			console.Info("device reset")
			return nil
		})
	},
}
