package numerator

import (
	"context"
	"sync"
	"time"
)

// Mock is an in-memory Generator for tests and local wiring.
// Safe for concurrent use.
type Mock struct {
	mu       sync.Mutex
	counters map[CounterKey]int64
}

var _ Generator = (*Mock)(nil)

// NewMock creates an empty in-memory generator.
func NewMock() *Mock {
	return &Mock{counters: make(map[CounterKey]int64)}
}

// AllocateNext implements Generator.
func (m *Mock) AllocateNext(_ context.Context, key CounterKey) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

// NextRadicado implements Generator.
func (m *Mock) NextRadicado(ctx context.Context, cfg Config, at time.Time) (string, error) {
	period := PeriodFor(at)
	n, err := m.AllocateNext(ctx, CounterKey{Area: cfg.Area, Period: period})
	if err != nil {
		return "", err
	}
	return FormatRadicado(cfg, period, n), nil
}

// Current returns the last value allocated for a key (0 if none).
func (m *Mock) Current(key CounterKey) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}
