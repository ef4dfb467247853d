package engine

import "time"

// PausableClock measures play time for a round, excluding pauses
// Owned by the game loop; not safe for concurrent use
type PausableClock struct {
	provider TimeProvider

	startTime       time.Time
	pauseStartTime  time.Time     // Zero when not paused
	totalPausedTime time.Duration // Cumulative pause duration

	stopped   bool
	stoppedAt time.Duration
}

// NewPausableClock creates a running clock starting at provider.Now()
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns play time: real elapsed minus paused time, frozen once stopped
func (pc *PausableClock) Elapsed() time.Duration {
	if pc.stopped {
		return pc.stoppedAt
	}
	now := pc.provider.Now()
	if !pc.pauseStartTime.IsZero() {
		// Frozen at the pause point
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops play time advancement
func (pc *PausableClock) Pause() {
	if pc.stopped || !pc.pauseStartTime.IsZero() {
		return
	}
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues play time advancement
func (pc *PausableClock) Resume() {
	if pc.pauseStartTime.IsZero() {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return !pc.pauseStartTime.IsZero()
}

// Stop freezes the clock at its current reading
func (pc *PausableClock) Stop() {
	if pc.stopped {
		return
	}
	pc.stoppedAt = pc.Elapsed()
	pc.stopped = true
}

// Reset restarts the clock from zero
func (pc *PausableClock) Reset() {
	pc.startTime = pc.provider.Now()
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
	pc.stopped = false
	pc.stoppedAt = 0
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
