package gesture

import (
	"math"
	"time"
)

// doubleTapMinTime is the shortest up-to-down gap that still counts as a
// second tap. Anything quicker is a bounce.
const doubleTapMinTime = 40 * time.Millisecond

// velocityWindow is how far back the velocity tracker looks.
const velocityWindow = 100 * time.Millisecond

// PatternDetector recognizes taps, scrolls, flings, show-press and double taps
// from a single contact sequence and reports them to a DetectorListener.
// Timed callbacks (show press, tap confirmation) fire from Tick, so the
// detector must be ticked once per frame.
type PatternDetector struct {
	cfg      Config
	listener DetectorListener

	doubleTapEnabled bool

	currentDown *MotionSample
	previousUp  *MotionSample

	downFocusX, downFocusY float64
	lastFocusX, lastFocusY float64

	stillDown               bool
	alwaysInTapRegion       bool
	alwaysInBiggerTapRegion bool
	deferConfirmSingleTap   bool
	isDoubleTapping         bool

	// Deadlines in uptime; zero when not scheduled.
	showPressAt  time.Duration
	tapConfirmAt time.Duration

	velocity velocityTracker
}

var (
	_ Detector = (*PatternDetector)(nil)
	_ Ticker   = (*PatternDetector)(nil)
)

// NewPatternDetector creates a detector reporting to listener, with double
// taps enabled.
func NewPatternDetector(cfg Config, listener DetectorListener) *PatternDetector {
	return &PatternDetector{
		cfg:              cfg.withDefaults(),
		listener:         listener,
		doubleTapEnabled: true,
	}
}

// SetDoubleTapEnabled turns double-tap detection on or off. While off, single
// taps are confirmed on up without waiting.
func (d *PatternDetector) SetDoubleTapEnabled(enabled bool) {
	d.doubleTapEnabled = enabled
	if !enabled {
		d.tapConfirmAt = 0
		d.deferConfirmSingleTap = false
	}
}

// Tick fires the callbacks whose deadline has passed.
func (d *PatternDetector) Tick(now time.Duration) {
	if d.showPressAt != 0 && now >= d.showPressAt {
		d.showPressAt = 0
		if d.currentDown != nil {
			d.listener.OnShowPress(d.currentDown)
		}
	}
	if d.tapConfirmAt != 0 && now >= d.tapConfirmAt {
		d.tapConfirmAt = 0
		if !d.doubleTapEnabled || d.currentDown == nil {
			return
		}
		if d.stillDown {
			d.deferConfirmSingleTap = true
		} else {
			d.listener.OnSingleTapConfirmed(d.currentDown)
		}
	}
}

// OnTouchEvent feeds one sample and reports whether a listener handled it.
func (d *PatternDetector) OnTouchEvent(s *MotionSample) bool {
	d.velocity.add(s)

	focusX, focusY := focusPoint(s)
	handled := false

	switch s.Action {
	case ActionPointerDown:
		d.downFocusX, d.lastFocusX = focusX, focusX
		d.downFocusY, d.lastFocusY = focusY, focusY
		d.cancelTaps()

	case ActionPointerUp:
		d.downFocusX, d.lastFocusX = focusX, focusX
		d.downFocusY, d.lastFocusY = focusY, focusY

	case ActionDown:
		if d.doubleTapEnabled {
			hadTapPending := d.tapConfirmAt != 0
			d.tapConfirmAt = 0
			if hadTapPending && d.currentDown != nil && d.previousUp != nil &&
				d.isConsideredDoubleTap(d.currentDown, d.previousUp, s) {
				d.isDoubleTapping = true
				handled = d.listener.OnDoubleTapEvent(s) || handled
			} else {
				d.tapConfirmAt = s.EventTime + d.cfg.DoubleTapTimeout
			}
		}

		d.downFocusX, d.lastFocusX = focusX, focusX
		d.downFocusY, d.lastFocusY = focusY, focusY
		d.currentDown = s.Clone()
		d.alwaysInTapRegion = true
		d.alwaysInBiggerTapRegion = true
		d.stillDown = true
		d.deferConfirmSingleTap = false
		d.showPressAt = s.DownTime + d.cfg.TapTimeout
		handled = d.listener.OnDown(s) || handled

	case ActionMove:
		if d.currentDown == nil {
			break
		}
		scrollX := d.lastFocusX - focusX
		scrollY := d.lastFocusY - focusY
		switch {
		case d.isDoubleTapping:
			handled = d.listener.OnDoubleTapEvent(s) || handled
		case d.alwaysInTapRegion:
			dx := focusX - d.downFocusX
			dy := focusY - d.downFocusY
			if dx*dx+dy*dy > d.cfg.touchSlopSquare() {
				handled = d.listener.OnScroll(d.currentDown, s, scrollX, scrollY)
				d.lastFocusX = focusX
				d.lastFocusY = focusY
				d.alwaysInTapRegion = false
				d.alwaysInBiggerTapRegion = false
				d.tapConfirmAt = 0
				d.showPressAt = 0
			}
		case math.Abs(scrollX) >= 1 || math.Abs(scrollY) >= 1:
			handled = d.listener.OnScroll(d.currentDown, s, scrollX, scrollY)
			d.lastFocusX = focusX
			d.lastFocusY = focusY
		}

	case ActionUp:
		d.stillDown = false
		switch {
		case d.currentDown == nil:
		case d.isDoubleTapping:
			handled = d.listener.OnDoubleTapEvent(s) || handled
		case d.alwaysInTapRegion:
			handled = d.listener.OnSingleTapUp(s)
			if d.deferConfirmSingleTap && d.doubleTapEnabled {
				d.listener.OnSingleTapConfirmed(s)
			}
		default:
			vx, vy := d.velocity.compute(d.cfg.MaxFlingVelocity)
			if math.Abs(vx) > d.cfg.MinFlingVelocity || math.Abs(vy) > d.cfg.MinFlingVelocity {
				handled = d.listener.OnFling(d.currentDown, s, vx, vy)
			}
		}
		d.previousUp = s.Clone()
		d.velocity.reset()
		d.isDoubleTapping = false
		d.deferConfirmSingleTap = false
		d.showPressAt = 0

	case ActionCancel:
		if d.isDoubleTapping {
			d.listener.OnDoubleTapEvent(s)
		}
		d.cancel()
	}

	return handled
}

func (d *PatternDetector) cancel() {
	d.showPressAt = 0
	d.tapConfirmAt = 0
	d.velocity.reset()
	d.isDoubleTapping = false
	d.stillDown = false
	d.alwaysInTapRegion = false
	d.alwaysInBiggerTapRegion = false
	d.deferConfirmSingleTap = false
}

func (d *PatternDetector) cancelTaps() {
	d.showPressAt = 0
	d.tapConfirmAt = 0
	d.isDoubleTapping = false
	d.alwaysInTapRegion = false
	d.alwaysInBiggerTapRegion = false
	d.deferConfirmSingleTap = false
}

func (d *PatternDetector) isConsideredDoubleTap(firstDown, firstUp, secondDown *MotionSample) bool {
	if !d.alwaysInBiggerTapRegion {
		return false
	}
	gap := secondDown.EventTime - firstUp.EventTime
	if gap > d.cfg.DoubleTapTimeout || gap < doubleTapMinTime {
		return false
	}
	dx := firstDown.X() - secondDown.X()
	dy := firstDown.Y() - secondDown.Y()
	return dx*dx+dy*dy < d.cfg.DoubleTapSlop*d.cfg.DoubleTapSlop
}

// focusPoint averages the pointers still down. A lifting pointer is left out.
func focusPoint(s *MotionSample) (float64, float64) {
	skip := -1
	if s.Action == ActionPointerUp {
		skip = s.ActionIndex
	}
	var sumX, sumY float64
	n := 0
	for i, p := range s.Pointers {
		if i == skip {
			continue
		}
		sumX += p.X
		sumY += p.Y
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sumX / float64(n), sumY / float64(n)
}

// --- Velocity ---

type velocitySample struct {
	t    time.Duration
	x, y float64
}

// velocityTracker estimates the primary pointer's velocity over the last
// velocityWindow of movement, including batched history.
type velocityTracker struct {
	samples []velocitySample
}

func (v *velocityTracker) add(s *MotionSample) {
	switch s.Action {
	case ActionDown:
		v.reset()
	case ActionCancel:
		return
	}
	for _, b := range s.History {
		if len(b.Pointers) > 0 {
			v.push(b.EventTime, b.Pointers[0].X, b.Pointers[0].Y)
		}
	}
	if len(s.Pointers) > 0 {
		v.push(s.EventTime, s.X(), s.Y())
	}
}

func (v *velocityTracker) push(t time.Duration, x, y float64) {
	v.samples = append(v.samples, velocitySample{t: t, x: x, y: y})
	// Drop what fell out of the window.
	cut := 0
	for cut < len(v.samples) && t-v.samples[cut].t > velocityWindow {
		cut++
	}
	if cut > 0 {
		n := copy(v.samples, v.samples[cut:])
		v.samples = v.samples[:n]
	}
}

// compute returns the velocity in px/s, each axis clamped to limit.
func (v *velocityTracker) compute(limit float64) (float64, float64) {
	if len(v.samples) < 2 {
		return 0, 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := (last.t - first.t).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	vx := clampAbs((last.x-first.x)/dt, limit)
	vy := clampAbs((last.y-first.y)/dt, limit)
	return vx, vy
}

func (v *velocityTracker) reset() {
	v.samples = v.samples[:0]
}

func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
