package gesture

import (
	"time"
)

// ---- Test doubles ----------------------------------------------------------

type sentSample struct {
	typ    TouchEventType
	time   time.Duration
	points []TouchPoint
}

// recorder is a Delegate that records everything it is sent.
type recorder struct {
	// notForward makes SendSample report the sample as not forwarded.
	notForward bool
	// rejectGestures makes SendGesture report failure.
	rejectGestures bool
	// onSend runs inside SendSample, after recording, to model an ack that
	// arrives synchronously.
	onSend func()

	samples  []sentSample
	gestures []Gesture

	singleTaps []SingleTapKind
	dtActions  []DoubleTapAction
	zoomPicks  int
}

func (r *recorder) SendSample(t time.Duration, typ TouchEventType, pts []TouchPoint) bool {
	r.samples = append(r.samples, sentSample{typ: typ, time: t, points: pts})
	if r.onSend != nil {
		r.onSend()
	}
	return !r.notForward
}

func (r *recorder) SendGesture(g Gesture) bool {
	if r.rejectGestures {
		return false
	}
	r.gestures = append(r.gestures, g)
	return true
}

func (r *recorder) ReportSingleTap(kind SingleTapKind) {
	r.singleTaps = append(r.singleTaps, kind)
}

func (r *recorder) ReportActionAfterDoubleTap(action DoubleTapAction, _ bool) {
	r.dtActions = append(r.dtActions, action)
}

func (r *recorder) InvokeZoomPicker() {
	r.zoomPicks++
}

func (r *recorder) types() []GestureType {
	out := make([]GestureType, len(r.gestures))
	for i, g := range r.gestures {
		out[i] = g.Type
	}
	return out
}

func (r *recorder) count(typ GestureType) int {
	n := 0
	for _, g := range r.gestures {
		if g.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) last(typ GestureType) (Gesture, bool) {
	for i := len(r.gestures) - 1; i >= 0; i-- {
		if r.gestures[i].Type == typ {
			return r.gestures[i], true
		}
	}
	return Gesture{}, false
}

func (r *recorder) reset() {
	r.samples = nil
	r.gestures = nil
}

// ---- Sample builders -------------------------------------------------------

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func sample(action Action, t, down time.Duration, x, y float64) *MotionSample {
	return &MotionSample{
		EventTime: t,
		DownTime:  down,
		Action:    action,
		Pointers:  []Pointer{{X: x, Y: y}},
	}
}

func twoPointer(action Action, t, down time.Duration, index int, x0, y0, x1, y1 float64) *MotionSample {
	return &MotionSample{
		EventTime:   t,
		DownTime:    down,
		Action:      action,
		ActionIndex: index,
		Pointers:    []Pointer{{ID: 0, X: x0, Y: y0}, {ID: 1, X: x1, Y: y1}},
	}
}

// newTestHandler returns a handler on a manual clock at 1ms, with rec as its
// delegate.
func newTestHandler(rec *recorder) (*Handler, *ManualClock) {
	h := NewHandler(rec, DefaultConfig())
	clock := NewManualClock(ms(1))
	h.SetClock(clock)
	return h, clock
}

// feed delivers samples in order.
func feed(h *Handler, samples ...*MotionSample) {
	for _, s := range samples {
		h.OnSampleArrived(s)
	}
}

// tick advances the clock to t and runs one frame.
func tick(h *Handler, clock *ManualClock, t time.Duration) {
	clock.Set(t)
	h.Update(t)
}
