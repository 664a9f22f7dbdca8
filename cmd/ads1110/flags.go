package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/ads1110"
	"github.com/mklimuk/ads1110/adapter"
	"github.com/mklimuk/ads1110/i2c"
)

var addressFlag = &cli.StringFlag{
	Name:    "address",
	Aliases: []string{"A"},
	Value:   "a0",
	Usage:   "device address variant (a0..a7, per part number)",
}

var adapterFlag = &cli.StringFlag{
	Name:    "adapter",
	Aliases: []string{"a"},
	Value:   "mcp2221",
	Usage:   "bus adapter: mcp2221, periph or gobot",
}

var busFlag = &cli.StringFlag{
	Name:  "bus",
	Usage: "bus selector for the periph adapter, e.g. /dev/i2c-1",
}

// openBus builds the transport selected with --adapter.
func openBus(c *cli.Context) (ads1110.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		return adapter.NewMCP2221(), nil
	case "periph":
		return i2c.NewGenericBus(c.String("bus"))
	case "gobot":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		return adapter.NewGobotBus(npi, -1), nil
	}
	return nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
}

func parseAddress(value string) (ads1110.Address, error) {
	addresses := map[string]ads1110.Address{
		"a0": ads1110.AddressA0,
		"a1": ads1110.AddressA1,
		"a2": ads1110.AddressA2,
		"a3": ads1110.AddressA3,
		"a4": ads1110.AddressA4,
		"a5": ads1110.AddressA5,
		"a6": ads1110.AddressA6,
		"a7": ads1110.AddressA7,
	}
	addr, ok := addresses[value]
	if !ok {
		return 0, fmt.Errorf("unknown address variant %q", value)
	}
	return addr, nil
}

func parseRate(value string) (ads1110.DataRate, error) {
	rates := map[string]ads1110.DataRate{
		"15":  ads1110.Rate15SPS,
		"30":  ads1110.Rate30SPS,
		"60":  ads1110.Rate60SPS,
		"240": ads1110.Rate240SPS,
	}
	rate, ok := rates[value]
	if !ok {
		return 0, fmt.Errorf("unknown data rate %q (use 15, 30, 60 or 240)", value)
	}
	return rate, nil
}

func parseGain(value string) (ads1110.Gain, error) {
	gains := map[string]ads1110.Gain{
		"1": ads1110.GainX1,
		"2": ads1110.GainX2,
		"4": ads1110.GainX4,
		"8": ads1110.GainX8,
	}
	gain, ok := gains[value]
	if !ok {
		return 0, fmt.Errorf("unknown gain %q (use 1, 2, 4 or 8)", value)
	}
	return gain, nil
}

func parseMode(value string) (ads1110.ConversionMode, error) {
	switch value {
	case "continuous":
		return ads1110.Continuous, nil
	case "oneshot", "one-shot":
		return ads1110.OneShot, nil
	}
	return 0, fmt.Errorf("unknown conversion mode %q (use continuous or oneshot)", value)
}
