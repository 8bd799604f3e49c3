package gesture

import (
	"errors"
	"math"
	"time"
)

// ErrConversion is returned when a sample cannot be converted to touch points.
var ErrConversion = errors.New("gesture: sample cannot be converted to touch points")

// Pointer is one contact's position within a MotionSample, in raw pixels.
type Pointer struct {
	ID   int
	X, Y float64
}

// Batch is an older set of pointer coordinates folded into a Move sample by
// coalescing.
type Batch struct {
	EventTime time.Duration
	Pointers  []Pointer
}

// MotionSample is one raw touch update. EventTime and DownTime are uptime
// offsets; DownTime identifies the contact sequence the sample belongs to.
//
// For PointerDown and PointerUp, ActionIndex is the index into Pointers of the
// pointer that changed. Pointers always holds the most recent coordinates;
// History holds coordinates merged in by coalescing, oldest first.
type MotionSample struct {
	EventTime   time.Duration
	DownTime    time.Duration
	Action      Action
	ActionIndex int
	Pointers    []Pointer
	History     []Batch
}

// PointerCount returns the number of pointers in the sample.
func (s *MotionSample) PointerCount() int {
	return len(s.Pointers)
}

// X returns the x coordinate of the first pointer, or 0 if there is none.
func (s *MotionSample) X() float64 {
	if len(s.Pointers) == 0 {
		return 0
	}
	return s.Pointers[0].X
}

// Y returns the y coordinate of the first pointer, or 0 if there is none.
func (s *MotionSample) Y() float64 {
	if len(s.Pointers) == 0 {
		return 0
	}
	return s.Pointers[0].Y
}

// Clone returns a deep copy of s.
func (s *MotionSample) Clone() *MotionSample {
	c := &MotionSample{}
	s.copyInto(c)
	return c
}

// copyInto overwrites dst with a deep copy of s, reusing dst's slices.
func (s *MotionSample) copyInto(dst *MotionSample) {
	dst.EventTime = s.EventTime
	dst.DownTime = s.DownTime
	dst.Action = s.Action
	dst.ActionIndex = s.ActionIndex
	dst.Pointers = append(dst.Pointers[:0], s.Pointers...)
	dst.History = dst.History[:0]
	for _, b := range s.History {
		dst.History = append(dst.History, Batch{
			EventTime: b.EventTime,
			Pointers:  append([]Pointer(nil), b.Pointers...),
		})
	}
}

// addBatch folds next into s: the current coordinates of s move into History
// and s adopts next's time and coordinates. Action and DownTime are left
// untouched. Both samples must carry the same number of pointers.
func (s *MotionSample) addBatch(next *MotionSample) {
	s.History = append(s.History, Batch{
		EventTime: s.EventTime,
		Pointers:  append([]Pointer(nil), s.Pointers...),
	})
	for _, b := range next.History {
		s.History = append(s.History, Batch{
			EventTime: b.EventTime,
			Pointers:  append([]Pointer(nil), b.Pointers...),
		})
	}
	s.EventTime = next.EventTime
	copy(s.Pointers, next.Pointers)
}

// TouchEventType is the wire-level classification of a forwarded sample.
type TouchEventType uint8

const (
	TouchStart TouchEventType = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// TouchPointState is the per-pointer state in a forwarded sample.
type TouchPointState uint8

const (
	TouchPointPressed TouchPointState = iota
	TouchPointMoved
	TouchPointReleased
	TouchPointStationary
	TouchPointCancelled
)

// TouchPoint is the wire shape of a single pointer sent to the consumer.
type TouchPoint struct {
	ID    int
	X, Y  float64
	State TouchPointState
}

// toTouchPoints converts s to its wire shape.
func (s *MotionSample) toTouchPoints() (TouchEventType, []TouchPoint, error) {
	if len(s.Pointers) == 0 {
		return 0, nil, ErrConversion
	}
	for _, p := range s.Pointers {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return 0, nil, ErrConversion
		}
	}

	var typ TouchEventType
	var state TouchPointState
	switch s.Action {
	case ActionDown, ActionPointerDown:
		typ, state = TouchStart, TouchPointPressed
	case ActionUp, ActionPointerUp:
		typ, state = TouchEnd, TouchPointReleased
	case ActionMove:
		typ, state = TouchMove, TouchPointMoved
	case ActionCancel:
		typ, state = TouchCancel, TouchPointCancelled
	default:
		return 0, nil, ErrConversion
	}

	indexed := s.Action == ActionPointerDown || s.Action == ActionPointerUp
	if indexed && (s.ActionIndex < 0 || s.ActionIndex >= len(s.Pointers)) {
		return 0, nil, ErrConversion
	}

	pts := make([]TouchPoint, len(s.Pointers))
	for i, p := range s.Pointers {
		st := state
		if indexed && i != s.ActionIndex {
			st = TouchPointStationary
		}
		pts[i] = TouchPoint{ID: p.ID, X: p.X, Y: p.Y, State: st}
	}
	return typ, pts, nil
}
