package manager

import "time"

// TickManager gates simulation steps to a fixed interval measured on a
// monotonic clock supplied by the host.
type TickManager struct {
	interval   time.Duration
	lastUpdate time.Duration
}

func NewTickManager(interval time.Duration) *TickManager {
	return &TickManager{interval: interval}
}

// Ready reports whether a tick is due at now, and if so starts the next
// interval from now.
func (tm *TickManager) Ready(now time.Duration) bool {
	if now-tm.lastUpdate >= tm.interval {
		tm.lastUpdate = now
		return true
	}
	return false
}
