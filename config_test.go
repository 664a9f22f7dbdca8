package ads1110

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Addr(t *testing.T) {
	expected := map[Address]byte{
		AddressA0: 0x48,
		AddressA1: 0x49,
		AddressA2: 0x4A,
		AddressA3: 0x4B,
		AddressA4: 0x4C,
		AddressA5: 0x4D,
		AddressA6: 0x4E,
		AddressA7: 0x4F,
	}
	for addr, want := range expected {
		assert.Equal(t, want, addr.Addr())
	}
}

func TestWriteSettings_Encode(t *testing.T) {
	tests := []struct {
		given    WriteSettings
		expected byte
	}{
		{DefaultWriteSettings(), 0b0000_1100},
		{WriteSettings{Start: StartConversion, Mode: OneShot, Rate: Rate15SPS, Gain: GainX1}, 0b1001_1100},
		{WriteSettings{Start: DontStart, Mode: OneShot, Rate: Rate240SPS, Gain: GainX8}, 0b0001_0011},
		{WriteSettings{Start: StartConversion, Mode: Continuous, Rate: Rate30SPS, Gain: GainX2}, 0b1000_1001},
		{WriteSettings{Start: DontStart, Mode: Continuous, Rate: Rate60SPS, Gain: GainX4}, 0b0000_0110},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#08b", test.expected), func(t *testing.T) {
			assert.Equal(t, test.expected, test.given.Encode())
		})
	}
}

func TestDecodeReadSettings(t *testing.T) {
	tests := []struct {
		given    byte
		expected ReadSettings
	}{
		{0b0000_0000, ReadSettings{NDrdy: FreshData, Mode: Continuous, Rate: Rate240SPS, Gain: GainX1}},
		{0b1000_0000, ReadSettings{NDrdy: StaleData, Mode: Continuous, Rate: Rate240SPS, Gain: GainX1}},
		{0b0001_1100, ReadSettings{NDrdy: FreshData, Mode: OneShot, Rate: Rate15SPS, Gain: GainX1}},
		{0b1001_1111, ReadSettings{NDrdy: StaleData, Mode: OneShot, Rate: Rate15SPS, Gain: GainX8}},
		{0b0000_1010, ReadSettings{NDrdy: FreshData, Mode: Continuous, Rate: Rate30SPS, Gain: GainX4}},
		{0b0000_0101, ReadSettings{NDrdy: FreshData, Mode: Continuous, Rate: Rate60SPS, Gain: GainX2}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#08b", test.given), func(t *testing.T) {
			assert.Equal(t, test.expected, DecodeReadSettings(test.given))
		})
	}
}

// Unused bits 6:5 must not influence decoding.
func TestDecodeReadSettings_IgnoresUnusedBits(t *testing.T) {
	assert.Equal(t, DecodeReadSettings(0b0000_1100), DecodeReadSettings(0b0110_1100))
}

func TestSettings_RoundTrip(t *testing.T) {
	modes := []ConversionMode{Continuous, OneShot}
	rates := []DataRate{Rate15SPS, Rate30SPS, Rate60SPS, Rate240SPS}
	gains := []Gain{GainX1, GainX2, GainX4, GainX8}
	starts := []Start{DontStart, StartConversion}
	for _, mode := range modes {
		for _, rate := range rates {
			for _, gain := range gains {
				for _, start := range starts {
					w := WriteSettings{Start: start, Mode: mode, Rate: rate, Gain: gain}
					r := DecodeReadSettings(w.Encode())
					assert.Equal(t, w.Mode, r.Mode)
					assert.Equal(t, w.Rate, r.Rate)
					assert.Equal(t, w.Gain, r.Gain)
				}
			}
		}
	}
}

func TestDataRate_Intervals(t *testing.T) {
	tests := []struct {
		rate     DataRate
		interval time.Duration
		quarter  time.Duration
	}{
		{Rate15SPS, 66667 * time.Microsecond, 16667 * time.Microsecond},
		{Rate30SPS, 33333 * time.Microsecond, 8333 * time.Microsecond},
		{Rate60SPS, 16667 * time.Microsecond, 4167 * time.Microsecond},
		{Rate240SPS, 4167 * time.Microsecond, 1042 * time.Microsecond},
	}
	for _, test := range tests {
		t.Run(test.rate.String(), func(t *testing.T) {
			assert.Equal(t, test.interval, test.rate.Interval())
			assert.Equal(t, test.quarter, test.rate.QuarterInterval())
		})
	}
}
