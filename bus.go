package ads1110

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// I2CBus is the transport the driver talks through. Implementations live in
// the i2c and adapter packages; any transport that can address a 7-bit slave
// and move raw bytes qualifies.
//
// The driver owns the bus exclusively between New and Release. Callers must
// not issue their own transactions on it while the driver holds it.
type I2CBus interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}
