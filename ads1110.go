package ads1110

import (
	"context"
	"encoding/binary"
	"fmt"
)

// ErrTimeout is returned when the device keeps reporting stale data past the
// polling budget of five quarter-intervals.
var ErrTimeout = fmt.Errorf("ads1110: timed out waiting for a fresh sample")

// ADS1110 drives a TI ADS1110 16-bit delta-sigma ADC over I2C.
//
// The driver keeps a cache of the configuration last confirmed on the wire:
// it is filled by an initial read in New and replaced only after a successful
// WriteSettings. A failed transport operation never touches it.
//
// Typical usage:
//
//	adc, err := ads1110.New(ctx, bus, ads1110.AddressA0)
//	if err != nil { ... }
//	value, err := adc.ReadValueRaw(ctx)
type ADS1110 struct {
	transport I2CBus
	sleeper   Sleeper
	addr      byte

	mode ConversionMode
	rate DataRate
	gain Gain
}

type Config struct {
	Sleeper Sleeper
}

type ConfigOption func(*Config)

// WithSleeper replaces the real-time sleeper used between polls.
func WithSleeper(s Sleeper) ConfigOption {
	return func(c *Config) {
		c.Sleeper = s
	}
}

// New resolves the address variant, reads the device once to seed the
// configuration cache, and returns the driver holding the bus.
//
// On error the bus was never adopted: the caller keeps full ownership of the
// handle it passed in and may reuse it.
func New(ctx context.Context, transport I2CBus, addr Address, opts ...ConfigOption) (*ADS1110, error) {
	config := &Config{
		Sleeper: timerSleeper{},
	}
	for _, opt := range opts {
		opt(config)
	}
	var buf [3]byte
	err := transport.ReadFromAddr(ctx, addr.Addr(), buf[:])
	if err != nil {
		return nil, fmt.Errorf("ads1110: could not read initial configuration: %w", err)
	}
	settings := DecodeReadSettings(buf[2])
	return &ADS1110{
		transport: transport,
		sleeper:   config.Sleeper,
		addr:      addr.Addr(),
		mode:      settings.Mode,
		rate:      settings.Rate,
		gain:      settings.Gain,
	}, nil
}

// Mode returns the cached conversion mode.
func (d *ADS1110) Mode() ConversionMode { return d.mode }

// Rate returns the cached data rate.
func (d *ADS1110) Rate() DataRate { return d.rate }

// Gain returns the cached PGA setting.
func (d *ADS1110) Gain() Gain { return d.gain }

// WriteSettings programs the configuration register and, if the write went
// through, replaces the cached mode/rate/gain. Start is a one-shot command
// bit and is never cached.
func (d *ADS1110) WriteSettings(ctx context.Context, settings WriteSettings) error {
	buf := [1]byte{settings.Encode()}
	err := d.transport.WriteToAddr(ctx, d.addr, buf[:])
	if err != nil {
		return fmt.Errorf("ads1110: could not write settings: %w", err)
	}
	d.mode = settings.Mode
	d.rate = settings.Rate
	d.gain = settings.Gain
	return nil
}

// ReadValueRaw obtains one conversion result as raw ADC counts.
//
// In one-shot mode a conversion is triggered first and the driver sleeps a
// full sampling interval before polling, since nothing can be ready earlier.
// It then polls the data-ready flag every quarter-interval, giving up with
// ErrTimeout once 5 quarter-intervals were spent waiting. In continuous mode
// the whole 5-quarter budget goes to polling, so a fresh sample is waited on
// for at most 5/4 of the sampling interval.
//
// The result width depends on the configured rate (16 bits at 15sps down to
// 12 bits at 240sps); gain is not applied.
func (d *ADS1110) ReadValueRaw(ctx context.Context) (int16, error) {
	quarterWaits := 0

	if d.mode == OneShot {
		trigger := WriteSettings{
			Start: StartConversion,
			Mode:  d.mode,
			Rate:  d.rate,
			Gain:  d.gain,
		}
		buf := [1]byte{trigger.Encode()}
		err := d.transport.WriteToAddr(ctx, d.addr, buf[:])
		if err != nil {
			return 0, fmt.Errorf("ads1110: could not trigger conversion: %w", err)
		}
		// No point polling before a full conversion could have finished.
		err = d.sleeper.Sleep(ctx, d.rate.Interval())
		if err != nil {
			return 0, err
		}
		quarterWaits = 4
	}

	qperiod := d.rate.QuarterInterval()
	for {
		var buf [3]byte
		err := d.transport.ReadFromAddr(ctx, d.addr, buf[:])
		if err != nil {
			return 0, fmt.Errorf("ads1110: could not read conversion result: %w", err)
		}
		status := DecodeReadSettings(buf[2])
		if status.NDrdy == FreshData {
			return int16(binary.BigEndian.Uint16(buf[:2])), nil
		}
		if quarterWaits >= 5 {
			return 0, ErrTimeout
		}
		quarterWaits++
		err = d.sleeper.Sleep(ctx, qperiod)
		if err != nil {
			return 0, err
		}
	}
}

// ReadValueNormalized reads the ADC and shifts the result onto the full
// 16-bit scale, compensating for the reduced bit width at faster rates
// (1 bit at 30sps, 2 at 60sps, 4 at 240sps).
//
// The shift assumes the device sign-extends the unused high-order bits of
// lower-resolution results; that convention has not been verified against
// hardware and is reproduced here as-is.
func (d *ADS1110) ReadValueNormalized(ctx context.Context) (int16, error) {
	raw, err := d.ReadValueRaw(ctx)
	if err != nil {
		return 0, err
	}
	return raw << d.rate.normShift(), nil
}

// Release hands the bus back to the caller. The driver must not be used
// afterwards.
func (d *ADS1110) Release() I2CBus {
	transport := d.transport
	d.transport = nil
	return transport
}
