package latency

import (
	"time"

	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

// FixedDelay blocks for a fixed duration, standing in for the network round
// trip a real backend would cost. The delay always runs to completion once
// started. A zero duration makes Wait a no-op, which tests rely on.
type FixedDelay struct {
	d time.Duration
}

// NewFixedDelay creates a delay of d.
func NewFixedDelay(d time.Duration) usecasecontract.ILatency {
	return &FixedDelay{d: d}
}

func (f *FixedDelay) Wait() {
	if f.d > 0 {
		time.Sleep(f.d)
	}
}

var _ usecasecontract.ILatency = (*FixedDelay)(nil)
