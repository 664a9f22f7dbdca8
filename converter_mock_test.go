package ads1110

import (
	"context"
	"errors"
	"testing"
)

func TestMockConverter_StaticValues(t *testing.T) {
	adc := NewMockConverter(
		func(ctx context.Context) (int16, error) { return 1024, nil },
		func(ctx context.Context) (int16, error) { return 4096, nil },
	)

	ctx := context.Background()
	raw, err := adc.ReadValueRaw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != 1024 {
		t.Errorf("expected 1024 counts, got %d", raw)
	}

	normalized, err := adc.ReadValueNormalized(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized != 4096 {
		t.Errorf("expected 4096 counts, got %d", normalized)
	}
}

func TestMockConverter_DynamicBehavior(t *testing.T) {
	callCount := int16(0)
	behavior := func(ctx context.Context) (int16, error) {
		callCount++
		return callCount * 100, nil
	}
	adc := NewMockConverter(behavior, behavior)

	ctx := context.Background()
	first, err := adc.ReadValueRaw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 100 {
		t.Errorf("first call: expected 100 counts, got %d", first)
	}

	second, err := adc.ReadValueRaw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != 200 {
		t.Errorf("second call: expected 200 counts, got %d", second)
	}
}

func TestMockConverter_ErrorHandling(t *testing.T) {
	failing := func(ctx context.Context) (int16, error) {
		return 0, ErrTimeout
	}
	adc := NewMockConverter(failing, failing)

	_, err := adc.ReadValueRaw(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}
