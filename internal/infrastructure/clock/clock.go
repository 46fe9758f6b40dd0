package clock

import (
	"time"

	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewSystemClock creates a new system clock.
func NewSystemClock() usecasecontract.IClock {
	return &SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ usecasecontract.IClock = (*SystemClock)(nil)
