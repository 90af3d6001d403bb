package metrics

import (
	"sync"
	"time"
)

// EndpointStats aggregates observations for one endpoint path.
type EndpointStats struct {
	Requests      uint64
	Errors        uint64
	Retries       uint64
	TotalDuration time.Duration
	LastStatus    int
}

// InMemory is a Collector that aggregates per-endpoint counters in
// memory. Snapshot returns a copy, so holding onto one is cheap.
type InMemory struct {
	mu    sync.Mutex
	stats map[string]*EndpointStats
}

var _ Collector = &InMemory{}

func NewInMemory() *InMemory {
	return &InMemory{
		stats: make(map[string]*EndpointStats),
	}
}

func (m *InMemory) ObserveRequest(endpoint string, httpStatus int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.endpoint(endpoint)
	s.Requests++
	s.TotalDuration += duration
	s.LastStatus = httpStatus
}

func (m *InMemory) ObserveRetry(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.endpoint(endpoint).Retries++
}

func (m *InMemory) ObserveError(endpoint string, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.endpoint(endpoint).Errors++
}

// Snapshot returns a copy of the current per-endpoint stats.
func (m *InMemory) Snapshot() map[string]EndpointStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]EndpointStats, len(m.stats))
	for k, v := range m.stats {
		out[k] = *v
	}
	return out
}

func (m *InMemory) endpoint(endpoint string) *EndpointStats {
	s, ok := m.stats[endpoint]
	if !ok {
		s = &EndpointStats{}
		m.stats[endpoint] = s
	}
	return s
}
