package engine

import "time"

// ClockScheduler tracks tick deadlines for a speed given in ticks per second
// Handles drift correction: deadlines advance by whole intervals from the previous one
type ClockScheduler struct {
	provider         TimeProvider
	nextTickDeadline time.Time
	tickCount        uint64
}

// NewClockScheduler creates a scheduler whose first tick is one interval away
func NewClockScheduler(provider TimeProvider, speed float64) *ClockScheduler {
	cs := &ClockScheduler{provider: provider}
	cs.Restart(speed)
	return cs
}

// TickInterval converts ticks per second into a tick period
// Non-positive speeds are treated as one tick per second
func TickInterval(speed float64) time.Duration {
	if speed <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / speed)
}

// Restart schedules the next tick one full interval from now
// Used after resume and restart so the first tick is never immediate
func (cs *ClockScheduler) Restart(speed float64) {
	cs.nextTickDeadline = cs.provider.Now().Add(TickInterval(speed))
}

// Until returns the wait before the next tick is due, never negative
func (cs *ClockScheduler) Until() time.Duration {
	d := cs.nextTickDeadline.Sub(cs.provider.Now())
	if d < 0 {
		return 0
	}
	return d
}

// Due reports whether the next tick deadline has passed
func (cs *ClockScheduler) Due() bool {
	return !cs.provider.Now().Before(cs.nextTickDeadline)
}

// Advance records a tick and moves the deadline forward by the current interval
// If the loop fell behind by more than an interval, the schedule re-anchors on now
// instead of firing a burst of catch-up ticks
func (cs *ClockScheduler) Advance(speed float64) {
	cs.tickCount++
	interval := TickInterval(speed)
	now := cs.provider.Now()

	cs.nextTickDeadline = cs.nextTickDeadline.Add(interval)
	if !cs.nextTickDeadline.After(now) {
		cs.nextTickDeadline = now.Add(interval)
	}
}

// TickCount returns the number of ticks advanced since creation
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}
