package ads1110

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockI2CBus is a mock implementation of I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if args.Get(0) != nil {
		if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
			copy(buffer, data)
		}
	}
	return args.Error(1)
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeSleeper records requested sleep durations instead of waiting.
type fakeSleeper struct {
	sleeps []time.Duration
}

func (s *fakeSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.sleeps = append(s.sleeps, d)
	return nil
}

// statusByte builds the third byte of a read transaction.
func statusByte(drdy DataReady, mode ConversionMode, rate DataRate, gain Gain) byte {
	b := WriteSettings{Mode: mode, Rate: rate, Gain: gain}.Encode()
	if drdy == StaleData {
		b |= 0b1000_0000
	}
	return b
}

// newTestDriver bootstraps a driver whose cache holds the given settings.
func newTestDriver(t *testing.T, bus *MockI2CBus, addr Address, mode ConversionMode, rate DataRate, gain Gain) (*ADS1110, *fakeSleeper) {
	t.Helper()
	sleeper := &fakeSleeper{}
	bus.On("ReadFromAddr", mock.Anything, addr.Addr(), mock.Anything).
		Return([]byte{0x00, 0x00, statusByte(StaleData, mode, rate, gain)}, nil).Once()
	adc, err := New(context.Background(), bus, addr, WithSleeper(sleeper))
	assert.NoError(t, err)
	return adc, sleeper
}

func TestNew_SeedsCache(t *testing.T) {
	bus := new(MockI2CBus)
	adc, _ := newTestDriver(t, bus, AddressA3, OneShot, Rate60SPS, GainX4)

	assert.Equal(t, OneShot, adc.Mode())
	assert.Equal(t, Rate60SPS, adc.Rate())
	assert.Equal(t, GainX4, adc.Gain())
	bus.AssertExpectations(t)
}

func TestNew_TransportError(t *testing.T) {
	bus := new(MockI2CBus)
	bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
		Return(nil, errors.New("i2c read failed")).Once()

	adc, err := New(context.Background(), bus, AddressA0)
	assert.Nil(t, adc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not read initial configuration: i2c read failed")
	bus.AssertExpectations(t)
}

func TestWriteSettings_UpdatesCache(t *testing.T) {
	bus := new(MockI2CBus)
	adc, _ := newTestDriver(t, bus, AddressA0, Continuous, Rate15SPS, GainX1)

	want := WriteSettings{Start: StartConversion, Mode: OneShot, Rate: Rate240SPS, Gain: GainX8}
	bus.On("WriteToAddr", mock.Anything, byte(0x48), []byte{want.Encode()}).
		Return(nil).Once()

	err := adc.WriteSettings(context.Background(), want)
	assert.NoError(t, err)
	assert.Equal(t, OneShot, adc.Mode())
	assert.Equal(t, Rate240SPS, adc.Rate())
	assert.Equal(t, GainX8, adc.Gain())
	bus.AssertExpectations(t)
}

func TestWriteSettings_FailureLeavesCache(t *testing.T) {
	bus := new(MockI2CBus)
	adc, _ := newTestDriver(t, bus, AddressA0, Continuous, Rate15SPS, GainX1)

	bus.On("WriteToAddr", mock.Anything, byte(0x48), mock.Anything).
		Return(errors.New("i2c write failed")).Once()

	err := adc.WriteSettings(context.Background(), WriteSettings{Mode: OneShot, Rate: Rate240SPS, Gain: GainX8})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not write settings: i2c write failed")
	assert.Equal(t, Continuous, adc.Mode())
	assert.Equal(t, Rate15SPS, adc.Rate())
	assert.Equal(t, GainX1, adc.Gain())
	bus.AssertExpectations(t)
}

func TestReadValueRaw_Continuous_FreshAfterStalePolls(t *testing.T) {
	for _, stalePolls := range []int{0, 1, 4} {
		bus := new(MockI2CBus)
		adc, sleeper := newTestDriver(t, bus, AddressA0, Continuous, Rate30SPS, GainX1)

		if stalePolls > 0 {
			bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
				Return([]byte{0x00, 0x00, statusByte(StaleData, Continuous, Rate30SPS, GainX1)}, nil).Times(stalePolls)
		}
		bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
			Return([]byte{0x12, 0x34, statusByte(FreshData, Continuous, Rate30SPS, GainX1)}, nil).Once()

		value, err := adc.ReadValueRaw(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int16(0x1234), value)
		assert.Len(t, sleeper.sleeps, stalePolls)
		for _, d := range sleeper.sleeps {
			assert.Equal(t, Rate30SPS.QuarterInterval(), d)
		}
		bus.AssertExpectations(t)
	}
}

func TestReadValueRaw_Continuous_Timeout(t *testing.T) {
	bus := new(MockI2CBus)
	adc, sleeper := newTestDriver(t, bus, AddressA0, Continuous, Rate15SPS, GainX1)

	// initial read plus 5 retries, all stale
	bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
		Return([]byte{0x00, 0x00, statusByte(StaleData, Continuous, Rate15SPS, GainX1)}, nil).Times(6)

	_, err := adc.ReadValueRaw(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Len(t, sleeper.sleeps, 5)
	for _, d := range sleeper.sleeps {
		assert.Equal(t, Rate15SPS.QuarterInterval(), d)
	}
	bus.AssertExpectations(t)
}

func TestReadValueRaw_OneShot_TriggersConversion(t *testing.T) {
	bus := new(MockI2CBus)
	adc, sleeper := newTestDriver(t, bus, AddressA5, OneShot, Rate60SPS, GainX2)

	trigger := WriteSettings{Start: StartConversion, Mode: OneShot, Rate: Rate60SPS, Gain: GainX2}
	bus.On("WriteToAddr", mock.Anything, byte(0x4D), []byte{trigger.Encode()}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(0x4D), mock.Anything).
		Return([]byte{0xFF, 0x38, statusByte(FreshData, OneShot, Rate60SPS, GainX2)}, nil).Once()

	value, err := adc.ReadValueRaw(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int16(-200), value)
	// only the coarse full-interval wait
	assert.Equal(t, []time.Duration{Rate60SPS.Interval()}, sleeper.sleeps)
	bus.AssertExpectations(t)
}

func TestReadValueRaw_OneShot_Timeout(t *testing.T) {
	bus := new(MockI2CBus)
	adc, sleeper := newTestDriver(t, bus, AddressA0, OneShot, Rate240SPS, GainX1)

	bus.On("WriteToAddr", mock.Anything, byte(0x48), mock.Anything).
		Return(nil).Once()
	// the coarse wait already consumed 4 quarters of the budget
	bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
		Return([]byte{0x00, 0x00, statusByte(StaleData, OneShot, Rate240SPS, GainX1)}, nil).Times(2)

	_, err := adc.ReadValueRaw(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, []time.Duration{Rate240SPS.Interval(), Rate240SPS.QuarterInterval()}, sleeper.sleeps)
	bus.AssertExpectations(t)
}

func TestReadValueRaw_OneShot_TriggerWriteError(t *testing.T) {
	bus := new(MockI2CBus)
	adc, sleeper := newTestDriver(t, bus, AddressA0, OneShot, Rate15SPS, GainX1)

	bus.On("WriteToAddr", mock.Anything, byte(0x48), mock.Anything).
		Return(errors.New("i2c write failed")).Once()

	_, err := adc.ReadValueRaw(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not trigger conversion: i2c write failed")
	assert.Empty(t, sleeper.sleeps)
	bus.AssertExpectations(t)
}

func TestReadValueRaw_ReadErrorAborts(t *testing.T) {
	bus := new(MockI2CBus)
	adc, sleeper := newTestDriver(t, bus, AddressA0, Continuous, Rate15SPS, GainX1)

	bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
		Return(nil, errors.New("i2c read failed")).Once()

	_, err := adc.ReadValueRaw(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not read conversion result: i2c read failed")
	assert.Empty(t, sleeper.sleeps)
	bus.AssertExpectations(t)
}

func TestReadValueNormalized_Shifts(t *testing.T) {
	tests := []struct {
		rate     DataRate
		raw      [2]byte
		expected int16
	}{
		// 15sps already spans the full range
		{Rate15SPS, [2]byte{0x12, 0x34}, 0x1234},
		// 30sps shifts by one
		{Rate30SPS, [2]byte{0x12, 0x34}, 0x2468},
		// 60sps shifts by two
		{Rate60SPS, [2]byte{0x01, 0x00}, 0x0400},
		// 240sps shifts by four
		{Rate240SPS, [2]byte{0x01, 0x00}, 0x1000},
		// shift wraps per two's-complement arithmetic
		{Rate240SPS, [2]byte{0x10, 0x00}, 0},
		// 12-bit minimum lands on the 16-bit minimum
		{Rate240SPS, [2]byte{0xF8, 0x00}, -32768},
	}
	for _, test := range tests {
		t.Run(test.rate.String(), func(t *testing.T) {
			bus := new(MockI2CBus)
			adc, _ := newTestDriver(t, bus, AddressA0, Continuous, test.rate, GainX1)

			bus.On("ReadFromAddr", mock.Anything, byte(0x48), mock.Anything).
				Return([]byte{test.raw[0], test.raw[1], statusByte(FreshData, Continuous, test.rate, GainX1)}, nil).Once()

			value, err := adc.ReadValueNormalized(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, test.expected, value)
			bus.AssertExpectations(t)
		})
	}
}

func TestRelease_ReturnsBus(t *testing.T) {
	bus := new(MockI2CBus)
	adc, _ := newTestDriver(t, bus, AddressA0, Continuous, Rate15SPS, GainX1)

	released := adc.Release()
	assert.Same(t, bus, released)
}
