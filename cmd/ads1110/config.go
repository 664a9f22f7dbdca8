package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/ads1110"
	"github.com/mklimuk/ads1110/cmd/ads1110/console"
)

var configCmd = cli.Command{
	Name:  "config",
	Usage: "inspect or program the device configuration register",
	Subcommands: cli.Commands{
		&configGetCmd,
		&configSetCmd,
	},
}

type deviceConfig struct {
	Address string `yaml:"address"`
	Mode    string `yaml:"mode"`
	Rate    string `yaml:"rate"`
	Gain    string `yaml:"gain"`
}

var configGetCmd = cli.Command{
	Name:  "get",
	Usage: "read and decode the current device configuration",
	Flags: []cli.Flag{
		adapterFlag,
		addressFlag,
		busFlag,
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	},
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		addr, err := parseAddress(c.String("address"))
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		adc, err := ads1110.New(ctx, bus, addr)
		if err != nil {
			return console.Exit(1, "device initialization error: %s", console.Red(err))
		}
		defer func() {
			transport := adc.Release()
			_ = transport.Release(ctx)
		}()

		enc := yaml.NewEncoder(os.Stdout)
		err = enc.Encode(deviceConfig{
			Address: c.String("address"),
			Mode:    adc.Mode().String(),
			Rate:    adc.Rate().String(),
			Gain:    adc.Gain().String(),
		})
		if err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	},
}

var configSetCmd = cli.Command{
	Name:  "set",
	Usage: "program conversion mode, data rate and gain",
	Flags: []cli.Flag{
		adapterFlag,
		addressFlag,
		busFlag,
		&cli.StringFlag{
			Name:  "mode",
			Value: "continuous",
			Usage: "conversion mode: continuous or oneshot",
		},
		&cli.StringFlag{
			Name:  "rate",
			Value: "15",
			Usage: "data rate in samples per second: 15, 30, 60 or 240",
		},
		&cli.StringFlag{
			Name:  "gain",
			Value: "1",
			Usage: "PGA gain: 1, 2, 4 or 8",
		},
		&cli.BoolFlag{
			Name:  "yes",
			Usage: "skip the confirmation prompt",
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	},
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))

		addr, err := parseAddress(c.String("address"))
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		mode, err := parseMode(c.String("mode"))
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		rate, err := parseRate(c.String("rate"))
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		gain, err := parseGain(c.String("gain"))
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}

		if !c.Bool("yes") {
			answer, err := console.YesOrNo("write settings to the device?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer != console.Yes {
				console.Print("aborted")
				return nil
			}
		}

		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		adc, err := ads1110.New(ctx, bus, addr)
		if err != nil {
			return console.Exit(1, "device initialization error: %s", console.Red(err))
		}
		defer func() {
			transport := adc.Release()
			_ = transport.Release(ctx)
		}()

		err = adc.WriteSettings(ctx, ads1110.WriteSettings{
			Start: ads1110.DontStart,
			Mode:  mode,
			Rate:  rate,
			Gain:  gain,
		})
		if err != nil {
			return console.Exit(1, "settings write error: %s", console.Red(err))
		}
		console.PInfof(console.PictoGauge, "configured %s %s %s", adc.Mode(), adc.Rate(), adc.Gain())
		return nil
	},
}
