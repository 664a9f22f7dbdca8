package ads1110

import "context"

// Converter is the read surface of the driver, useful for hosts that only
// consume samples and want to swap the hardware out in tests.
type Converter interface {
	ReadValueRaw(ctx context.Context) (int16, error)
	ReadValueNormalized(ctx context.Context) (int16, error)
}

var _ Converter = &ADS1110{}

// ConverterBehaviorFunc defines the function signature for mock converter
// behavior. It returns ADC counts or an error.
type ConverterBehaviorFunc func(ctx context.Context) (int16, error)

// MockConverter is a Converter driven by behavior functions, producing
// results without requiring any hardware.
//
// Example usage:
//
//	// Static value
//	adc := NewMockConverter(
//		func(ctx context.Context) (int16, error) { return 1024, nil },
//		func(ctx context.Context) (int16, error) { return 4096, nil },
//	)
//
//	// Error simulation
//	adc := NewMockConverter(
//		func(ctx context.Context) (int16, error) { return 0, ErrTimeout },
//		func(ctx context.Context) (int16, error) { return 0, ErrTimeout },
//	)
type MockConverter struct {
	rawBehavior        ConverterBehaviorFunc
	normalizedBehavior ConverterBehaviorFunc
}

// NewMockConverter creates a mock converter with the given behavior
// functions. The first is called by ReadValueRaw, the second by
// ReadValueNormalized.
func NewMockConverter(rawBehavior, normalizedBehavior ConverterBehaviorFunc) *MockConverter {
	return &MockConverter{
		rawBehavior:        rawBehavior,
		normalizedBehavior: normalizedBehavior,
	}
}

// ReadValueRaw returns ADC counts by calling the raw behavior function.
func (m *MockConverter) ReadValueRaw(ctx context.Context) (int16, error) {
	return m.rawBehavior(ctx)
}

// ReadValueNormalized returns ADC counts by calling the normalized behavior
// function.
func (m *MockConverter) ReadValueNormalized(ctx context.Context) (int16, error) {
	return m.normalizedBehavior(ctx)
}
