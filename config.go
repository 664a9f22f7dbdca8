package ads1110

import "time"

// Address selects one of the eight factory-programmed ADS1110 variants. The
// part number carries the address: an ADS1110A3 answers on 0x4B. There is no
// address pin; pick the variant matching the marking on your package.
type Address int

const (
	AddressA0 Address = iota
	AddressA1
	AddressA2
	AddressA3
	AddressA4
	AddressA5
	AddressA6
	AddressA7
)

// Addr returns the right-aligned 7-bit bus address of the variant.
func (a Address) Addr() byte {
	switch a {
	case AddressA0:
		return 0x48
	case AddressA1:
		return 0x49
	case AddressA2:
		return 0x4A
	case AddressA3:
		return 0x4B
	case AddressA4:
		return 0x4C
	case AddressA5:
		return 0x4D
	case AddressA6:
		return 0x4E
	case AddressA7:
		return 0x4F
	}
	return 0x48
}

// DataRate is the conversion rate. Lower rates trade speed for resolution:
// 15sps yields full 16-bit results, 30sps 15-bit, 60sps 14-bit, 240sps 12-bit.
type DataRate int

const (
	Rate15SPS DataRate = iota
	Rate30SPS
	Rate60SPS
	Rate240SPS
)

// Interval returns the time between samples at this rate.
func (r DataRate) Interval() time.Duration {
	switch r {
	case Rate15SPS:
		return 66667 * time.Microsecond
	case Rate30SPS:
		return 33333 * time.Microsecond
	case Rate60SPS:
		return 16667 * time.Microsecond
	case Rate240SPS:
		return 4167 * time.Microsecond
	}
	return 66667 * time.Microsecond
}

// QuarterInterval returns a quarter of the time between samples, the
// granularity at which the driver polls for fresh data.
func (r DataRate) QuarterInterval() time.Duration {
	switch r {
	case Rate15SPS:
		return 16667 * time.Microsecond
	case Rate30SPS:
		return 8333 * time.Microsecond
	case Rate60SPS:
		return 4167 * time.Microsecond
	case Rate240SPS:
		return 1042 * time.Microsecond
	}
	return 16667 * time.Microsecond
}

// normShift is the left shift that places this rate's reduced-resolution
// output on the full 16-bit scale.
func (r DataRate) normShift() uint {
	switch r {
	case Rate30SPS:
		return 1
	case Rate60SPS:
		return 2
	case Rate240SPS:
		return 4
	}
	return 0
}

func (r DataRate) String() string {
	switch r {
	case Rate15SPS:
		return "15sps"
	case Rate30SPS:
		return "30sps"
	case Rate60SPS:
		return "60sps"
	case Rate240SPS:
		return "240sps"
	}
	return "unknown"
}

// Gain is the PGA setting. It is programmed and reported but the driver never
// applies it to returned counts.
type Gain int

const (
	GainX1 Gain = iota
	GainX2
	GainX4
	GainX8
)

func (g Gain) String() string {
	switch g {
	case GainX1:
		return "x1"
	case GainX2:
		return "x2"
	case GainX4:
		return "x4"
	case GainX8:
		return "x8"
	}
	return "unknown"
}

// ConversionMode selects between free-running and triggered sampling.
type ConversionMode int

const (
	Continuous ConversionMode = iota
	OneShot
)

func (m ConversionMode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case OneShot:
		return "one-shot"
	}
	return "unknown"
}

// Start is the write-only trigger bit. It has no read-back representation;
// the corresponding bit reads back as the data-ready status.
type Start int

const (
	DontStart Start = iota
	StartConversion
)

// DataReady is the read-only status flag in bit 7 of the configuration byte.
type DataReady int

const (
	// FreshData means the latest conversion result has not been read yet.
	FreshData DataReady = iota
	// StaleData means the result was already consumed by a previous read.
	StaleData
)

func (d DataReady) String() string {
	switch d {
	case FreshData:
		return "fresh"
	case StaleData:
		return "stale"
	}
	return "unknown"
}

// WriteSettings is the full set of fields programmable into the single
// configuration register.
type WriteSettings struct {
	Start Start
	Mode  ConversionMode
	Rate  DataRate
	Gain  Gain
}

// DefaultWriteSettings mirrors the device power-on configuration.
func DefaultWriteSettings() WriteSettings {
	return WriteSettings{
		Start: DontStart,
		Mode:  Continuous,
		Rate:  Rate15SPS,
		Gain:  GainX1,
	}
}

// Encode packs the settings into the register byte:
//
//	bit 7   start (0 = don't start, 1 = start conversion)
//	bit 6:5 unused
//	bit 4   mode  (0 = continuous, 1 = one-shot)
//	bit 3:2 rate  (11 = 15sps, 10 = 30sps, 01 = 60sps, 00 = 240sps)
//	bit 1:0 gain  (00 = x1, 01 = x2, 10 = x4, 11 = x8)
func (s WriteSettings) Encode() byte {
	var out byte
	if s.Start == StartConversion {
		out |= 0b1000_0000
	}
	if s.Mode == OneShot {
		out |= 0b0001_0000
	}
	switch s.Rate {
	case Rate15SPS:
		out |= 0b0000_1100
	case Rate30SPS:
		out |= 0b0000_1000
	case Rate60SPS:
		out |= 0b0000_0100
	case Rate240SPS:
	}
	switch s.Gain {
	case GainX1:
	case GainX2:
		out |= 0b0000_0001
	case GainX4:
		out |= 0b0000_0010
	case GainX8:
		out |= 0b0000_0011
	}
	return out
}

// ReadSettings is the configuration and status decoded from the third byte of
// a read transaction. NDrdy occupies the bit position Start uses on writes.
type ReadSettings struct {
	NDrdy DataReady
	Mode  ConversionMode
	Rate  DataRate
	Gain  Gain
}

// DecodeReadSettings unpacks a status byte. Every field is covered by an
// exhaustive 1 or 2-bit encoding, so any byte value decodes.
func DecodeReadSettings(value byte) ReadSettings {
	s := ReadSettings{NDrdy: FreshData, Mode: Continuous}
	if value&0b1000_0000 != 0 {
		s.NDrdy = StaleData
	}
	if value&0b0001_0000 != 0 {
		s.Mode = OneShot
	}
	switch value & 0b0000_1100 {
	case 0b0000_0000:
		s.Rate = Rate240SPS
	case 0b0000_0100:
		s.Rate = Rate60SPS
	case 0b0000_1000:
		s.Rate = Rate30SPS
	case 0b0000_1100:
		s.Rate = Rate15SPS
	}
	switch value & 0b0000_0011 {
	case 0b0000_0000:
		s.Gain = GainX1
	case 0b0000_0001:
		s.Gain = GainX2
	case 0b0000_0010:
		s.Gain = GainX4
	case 0b0000_0011:
		s.Gain = GainX8
	}
	return s
}
