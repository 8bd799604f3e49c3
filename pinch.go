package gesture

import (
	"math"
	"time"
)

// PinchSink receives the pinch session a PinchDetector recognizes. Handler
// implements it.
type PinchSink interface {
	PinchBegin(t time.Duration, x, y int)
	PinchBy(t time.Duration, x, y int, delta float64)
	PinchEnd(t time.Duration)
}

// PinchDetector tracks the span between the first two pointers and reports
// its relative change as a pinch around their midpoint. A pinch begins once
// the span has changed by more than the touch slop.
type PinchDetector struct {
	cfg  Config
	sink PinchSink

	tracking    bool
	active      bool
	initialSpan float64
	prevSpan    float64
}

var _ ScaleDetector = (*PinchDetector)(nil)

// NewPinchDetector creates a detector reporting to sink.
func NewPinchDetector(cfg Config, sink PinchSink) *PinchDetector {
	return &PinchDetector{cfg: cfg.withDefaults(), sink: sink}
}

// InProgress reports whether a pinch has begun and not yet ended.
func (d *PinchDetector) InProgress() bool {
	return d.active
}

// ProcessSample feeds a locally recognized sample. It reports whether the
// sample was part of a pinch.
func (d *PinchDetector) ProcessSample(s *MotionSample) bool {
	switch s.Action {
	case ActionDown:
		d.reset()
		return false

	case ActionPointerDown:
		if s.PointerCount() >= 2 && !d.tracking {
			d.tracking = true
			d.initialSpan, _, _ = pinchGeometry(s)
			d.prevSpan = d.initialSpan
		}
		return d.active

	case ActionMove:
		if !d.tracking || s.PointerCount() < 2 {
			return false
		}
		span, cx, cy := pinchGeometry(s)
		if !d.active {
			if math.Abs(span-d.initialSpan) <= d.cfg.TouchSlop {
				return false
			}
			d.active = true
			d.prevSpan = span
			d.sink.PinchBegin(s.EventTime, roundInt(cx), roundInt(cy))
			return true
		}
		if span > 0 && d.prevSpan > 0 {
			d.sink.PinchBy(s.EventTime, roundInt(cx), roundInt(cy), span/d.prevSpan)
		}
		d.prevSpan = span
		return true

	case ActionPointerUp:
		// Fewer than two pointers remain.
		if s.PointerCount() > 2 {
			return d.active
		}
		return d.end(s.EventTime)

	case ActionUp, ActionCancel:
		return d.end(s.EventTime)
	}
	return false
}

// PassThrough keeps the span current for a sample the consumer claimed, so
// local recognition resumes without a jump.
func (d *PinchDetector) PassThrough(s *MotionSample) {
	switch s.Action {
	case ActionPointerDown:
		if s.PointerCount() >= 2 && !d.tracking {
			d.tracking = true
			d.initialSpan, _, _ = pinchGeometry(s)
			d.prevSpan = d.initialSpan
		}
	case ActionMove:
		if d.tracking && s.PointerCount() >= 2 {
			d.prevSpan, _, _ = pinchGeometry(s)
		}
	case ActionDown, ActionPointerUp, ActionUp, ActionCancel:
		if s.Action != ActionPointerUp || s.PointerCount() <= 2 {
			d.reset()
		}
	}
}

func (d *PinchDetector) end(t time.Duration) bool {
	wasActive := d.active
	d.reset()
	if wasActive {
		d.sink.PinchEnd(t)
	}
	return wasActive
}

func (d *PinchDetector) reset() {
	d.tracking = false
	d.active = false
	d.initialSpan = 0
	d.prevSpan = 0
}

// pinchGeometry returns the distance between the first two pointers and
// their midpoint.
func pinchGeometry(s *MotionSample) (span, cx, cy float64) {
	p0, p1 := s.Pointers[0], s.Pointers[1]
	cx = (p0.X + p1.X) / 2
	cy = (p0.Y + p1.Y) / 2
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	return math.Sqrt(dx*dx + dy*dy), cx, cy
}
