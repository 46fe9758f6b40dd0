package idgen

import (
	"strconv"
	"sync"
	"time"

	"github.com/cleanwave/cleanwave/internal/domain/contract"
)

// Generator allocates ids the way the original client did: the current Unix
// time in milliseconds as a decimal string. Persisted data holds ids in that
// format, so the shape must not change. The last value is tracked so two
// allocations in the same millisecond still produce distinct, increasing ids.
type Generator struct {
	mu   sync.Mutex
	last int64
}

// NewGenerator creates a new id generator.
func NewGenerator() contract.IIDGenerator {
	return &Generator{}
}

// NewID returns a fresh time-derived id.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}

var _ contract.IIDGenerator = (*Generator)(nil)
