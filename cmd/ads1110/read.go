package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/ads1110"
	"github.com/mklimuk/ads1110/cmd/ads1110/console"
)

var readCmd = cli.Command{
	Name:  "read",
	Usage: "read conversion results from the ADC",
	Flags: []cli.Flag{
		adapterFlag,
		addressFlag,
		busFlag,
		&cli.BoolFlag{
			Name:    "normalized",
			Aliases: []string{"n"},
			Usage:   "scale results to the full 16-bit range regardless of rate",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "keep reading until interrupted",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: time.Second,
			Usage: "delay between reads in watch mode",
		},
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

		read := adc.ReadValueRaw
		if c.Bool("normalized") {
			read = adc.ReadValueNormalized
		}
		for {
			value, err := read(ctx)
			if err != nil {
				return console.Exit(1, "read error: %s", console.Red(err))
			}
			console.Printf("%s %s counts (%s, %s)\n", console.PictoChart, console.White(value), adc.Rate(), adc.Mode())
			if !c.Bool("watch") {
				return nil
			}
			time.Sleep(c.Duration("interval"))
		}
	},
}
