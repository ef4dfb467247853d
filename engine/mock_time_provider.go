package engine

import "time"

// MockTimeProvider is a manually driven time source for tick-driven tests
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a mock time provider starting at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// AdvanceTicks moves time forward by n tick intervals at speed ticks per second
func (m *MockTimeProvider) AdvanceTicks(n int, speed float64) {
	m.currentTime = m.currentTime.Add(time.Duration(n) * TickInterval(speed))
}
