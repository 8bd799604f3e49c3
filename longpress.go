package gesture

import "time"

// LongPressDetector fires a long press when a contact stays down and within
// the touch slop for TapTimeout + LongPressTimeout. It is frame-ticked: the
// callback runs from Tick.
type LongPressDetector struct {
	cfg    Config
	onFire func(*MotionSample)

	currentDown *MotionSample
	// fireAt is the pending deadline in uptime; zero when none is scheduled.
	fireAt      time.Duration
	inLongPress bool
}

var (
	_ LongPressTimer = (*LongPressDetector)(nil)
	_ Ticker         = (*LongPressDetector)(nil)
)

// NewLongPressDetector creates a detector that calls onFire with the down
// sample when a long press is recognized.
func NewLongPressDetector(cfg Config, onFire func(*MotionSample)) *LongPressDetector {
	return &LongPressDetector{cfg: cfg.withDefaults(), onFire: onFire}
}

// StartIfNeeded schedules the long press for a Down, unless one is already
// pending for the same sequence.
func (d *LongPressDetector) StartIfNeeded(s *MotionSample) {
	if s.Action != ActionDown {
		return
	}
	if d.fireAt != 0 && d.currentDown != nil && d.currentDown.DownTime == s.DownTime {
		return
	}
	d.currentDown = s.Clone()
	d.fireAt = s.DownTime + d.cfg.TapTimeout + d.cfg.LongPressTimeout
	d.inLongPress = false
}

// CancelIfNeeded cancels the pending long press when s shows the contact
// moving past the slop, lifting, or gaining a second pointer.
func (d *LongPressDetector) CancelIfNeeded(s *MotionSample) {
	if d.fireAt == 0 || d.currentDown == nil || s.DownTime != d.currentDown.DownTime {
		return
	}
	switch s.Action {
	case ActionMove:
		dx := s.X() - d.currentDown.X()
		dy := s.Y() - d.currentDown.Y()
		if dx*dx+dy*dy > d.cfg.touchSlopSquare() {
			d.Cancel()
		}
	case ActionUp, ActionCancel, ActionPointerDown:
		d.Cancel()
	}
}

// Cancel drops any pending long press and leaves the long-press state.
func (d *LongPressDetector) Cancel() {
	d.fireAt = 0
	d.inLongPress = false
}

// InLongPress reports whether a long press fired for the current contact.
// It stays set after the up so a late tap confirmation can be ignored.
func (d *LongPressDetector) InLongPress() bool {
	return d.inLongPress
}

// Pending reports whether a long press is scheduled.
func (d *LongPressDetector) Pending() bool {
	return d.fireAt != 0
}

// Tick fires the long press once its deadline has passed.
func (d *LongPressDetector) Tick(now time.Duration) {
	if d.fireAt == 0 || now < d.fireAt {
		return
	}
	d.fireAt = 0
	d.inLongPress = true
	if d.onFire != nil && d.currentDown != nil {
		d.onFire(d.currentDown)
	}
}
