package gesture

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// doubleTapPrefix is what a first tap followed by a second down produces.
var doubleTapPrefix = []GestureType{
	GestureTapDown, GestureSingleTapUnconfirmed, GestureTapCancel, GestureTapDown,
}

func TestAdapter_DoubleTap(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)

	feed(h,
		sample(ActionDown, ms(10), ms(10), 100, 100),
		sample(ActionUp, ms(50), ms(10), 100, 100),
		sample(ActionDown, ms(150), ms(150), 102, 100),
		sample(ActionUp, ms(190), ms(150), 102, 100),
	)

	want := append(append([]GestureType(nil), doubleTapPrefix...), GestureDoubleTap)
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
	if h.DoubleTapMode() != DoubleTapNone {
		t.Errorf("mode = %s after double tap", h.DoubleTapMode())
	}
	if h.NeedsTapEndingEvent() {
		t.Error("tap bracket left open")
	}
}

func TestAdapter_DoubleTapDragZoom(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)

	feed(h,
		sample(ActionDown, ms(10), ms(10), 100, 100),
		sample(ActionUp, ms(50), ms(10), 100, 100),
		sample(ActionDown, ms(150), ms(150), 102, 100),
	)
	if h.DoubleTapMode() != DoubleTapDragDetecting {
		t.Fatalf("mode = %s, want drag-detecting", h.DoubleTapMode())
	}

	feed(h, sample(ActionMove, ms(170), ms(150), 102, 130))
	if h.DoubleTapMode() != DoubleTapDragZoom {
		t.Fatalf("mode = %s, want drag-zoom", h.DoubleTapMode())
	}
	feed(h,
		sample(ActionMove, ms(190), ms(150), 102, 150),
		sample(ActionMove, ms(210), ms(150), 102, 140),
		sample(ActionUp, ms(230), ms(150), 102, 140),
	)

	want := append(append([]GestureType(nil), doubleTapPrefix...),
		GestureTapCancel, GestureScrollStart, GesturePinchBegin,
		GestureScrollBy, GesturePinchBy,
		GestureScrollBy, GesturePinchBy,
		GesturePinchEnd, GestureScrollEnd,
	)
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}

	begin, _ := rec.last(GesturePinchBegin)
	if begin.X != 102 || begin.Y != 100 {
		t.Errorf("pinch anchored at (%d,%d), want the second down", begin.X, begin.Y)
	}

	var deltas []float64
	for _, g := range rec.gestures {
		if g.Type == GesturePinchBy {
			deltas = append(deltas, g.Params.Delta)
		}
	}
	// Dragging down zooms in, dragging up zooms out.
	wantDeltas := []float64{math.Pow(1+doubleTapDragZoomSpeed, 20), math.Pow(1-doubleTapDragZoomSpeed, 10)}
	if diff := cmp.Diff(wantDeltas, deltas, cmpApprox); diff != "" {
		t.Errorf("pinch deltas (-want +got):\n%s", diff)
	}
	if h.DoubleTapMode() != DoubleTapNone || h.IsNativePinching() {
		t.Errorf("mode=%s pinching=%v", h.DoubleTapMode(), h.IsNativePinching())
	}
}

var cmpApprox = cmp.Comparer(func(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
})

func TestAdapter_ScrollRoundingNeverDrifts(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)
	slop := h.Config().TouchSlop

	h.OnSampleArrived(sample(ActionDown, ms(10), ms(10), 0, 0))
	total, seen := 0, 0
	y := 0.0
	for i := 1; i <= 40; i++ {
		y += 1.3
		h.OnSampleArrived(sample(ActionMove, ms(10+i), ms(10), 0, 20+y))

		for _, g := range rec.gestures[seen:] {
			if g.Type != GestureScrollBy {
				continue
			}
			if g.Params.DistanceX == 0 && g.Params.DistanceY == 0 {
				t.Error("emitted an empty ScrollBy")
			}
			total += g.Params.DistanceY
		}
		seen = len(rec.gestures)

		// The slop comes off the first delta only.
		exact := -(20 + y - slop)
		if math.Abs(float64(total)-exact) >= 1 {
			t.Fatalf("move %d: cumulative scroll %d drifted from %.2f", i, total, exact)
		}
	}
	if rec.count(GestureScrollStart) != 1 {
		t.Errorf("scroll starts = %d", rec.count(GestureScrollStart))
	}
}

func TestAdapter_ScrollInvokesZoomPicker(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)
	feed(h,
		sample(ActionDown, ms(10), ms(10), 0, 0),
		sample(ActionMove, ms(20), ms(10), 0, 30),
		sample(ActionMove, ms(30), ms(10), 0, 40),
	)
	if rec.zoomPicks != 2 {
		t.Errorf("zoom picker invoked %d times, want 2", rec.zoomPicks)
	}
}

func TestAdapter_ScrollEndsOnUpWithoutFling(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)
	feed(h,
		sample(ActionDown, ms(10), ms(10), 0, 0),
		sample(ActionMove, ms(20), ms(10), 0, 30),
		sample(ActionUp, ms(500), ms(10), 0, 30),
	)
	want := []GestureType{GestureTapDown, GestureTapCancel, GestureScrollStart, GestureScrollBy, GestureScrollEnd}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
}

func TestAdapter_LongPress(t *testing.T) {
	rec := &recorder{}
	h, clock := newTestHandler(rec)

	h.OnSampleArrived(sample(ActionDown, ms(10), ms(10), 20, 20))
	tick(h, clock, ms(120))
	if rec.count(GestureShowPressedState) != 1 {
		t.Fatalf("show press not emitted: %v", rec.types())
	}
	tick(h, clock, ms(700))
	if rec.count(GestureLongPress) != 1 {
		t.Fatalf("long press not emitted: %v", rec.types())
	}

	h.OnSampleArrived(sample(ActionUp, ms(800), ms(10), 20, 20))
	tick(h, clock, ms(1200))

	want := []GestureType{
		GestureTapDown, GestureShowPressedState, GestureLongPress,
		GestureTapCancel, GestureLongTap,
	}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
	if h.NeedsTapEndingEvent() {
		t.Error("tap bracket left open")
	}
}

func TestAdapter_WindowFocusLostAfterLongPress(t *testing.T) {
	rec := &recorder{}
	h, clock := newTestHandler(rec)

	h.OnSampleArrived(sample(ActionDown, ms(10), ms(10), 20, 20))
	tick(h, clock, ms(700))
	h.OnWindowFocusLost()

	want := []GestureType{GestureTapDown, GestureShowPressedState, GestureLongPress, GestureTapCancel}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
}

func TestAdapter_HeldTapResolvesOnUp(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)
	// Held past the double-tap timeout, released before the long press.
	feed(h,
		sample(ActionDown, ms(10), ms(10), 5, 5),
		sample(ActionUp, ms(400), ms(10), 5, 5),
	)
	want := []GestureType{GestureTapDown, GestureSingleTapUp}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
}

func TestAdapter_DisableClickDelayConfirmsOnUp(t *testing.T) {
	rec := &recorder{}
	cfg := DefaultConfig()
	cfg.DisableClickDelay = true
	h := NewHandler(rec, cfg)
	h.SetClock(NewManualClock(ms(1)))

	feed(h,
		sample(ActionDown, ms(10), ms(10), 5, 5),
		sample(ActionUp, ms(50), ms(10), 5, 5),
	)
	want := []GestureType{GestureTapDown, GestureSingleTapConfirmed}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
}

func TestAdapter_DoubleTapDisabledConfirmsOnUp(t *testing.T) {
	rec := &recorder{}
	h, clock := newTestHandler(rec)
	h.UpdateDoubleTapSupport(false)
	if h.DoubleTapMode() != DoubleTapDisabled {
		t.Fatalf("mode = %s", h.DoubleTapMode())
	}

	feed(h,
		sample(ActionDown, ms(10), ms(10), 5, 5),
		sample(ActionUp, ms(50), ms(10), 5, 5),
		sample(ActionDown, ms(150), ms(150), 5, 5),
		sample(ActionUp, ms(190), ms(150), 5, 5),
	)
	tick(h, clock, ms(1000))

	want := []GestureType{
		GestureTapDown, GestureSingleTapConfirmed,
		GestureTapDown, GestureSingleTapConfirmed,
	}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]SingleTapKind{SingleTapUndelayed, SingleTapUndelayed}, rec.singleTaps); diff != "" {
		t.Errorf("telemetry (-want +got):\n%s", diff)
	}
}

func TestAdapter_TapDownForceClosesOpenBracket(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)

	h.OnSampleArrived(sample(ActionDown, ms(10), ms(10), 5, 5))
	// A new sequence starts without the first being resolved.
	h.OnSampleArrived(sample(ActionDown, ms(500), ms(500), 300, 300))

	want := []GestureType{GestureTapDown, GestureTapCancel, GestureTapDown}
	if diff := cmp.Diff(want, rec.types()); diff != "" {
		t.Fatalf("gestures (-want +got):\n%s", diff)
	}
}

func TestAdapter_RejectedTapDownLeavesBracketClosed(t *testing.T) {
	rec := &recorder{rejectGestures: true}
	h, _ := newTestHandler(rec)
	h.OnSampleArrived(sample(ActionDown, ms(10), ms(10), 5, 5))
	if h.NeedsTapEndingEvent() {
		t.Error("bracket opened for a rejected TapDown")
	}
}

func TestAdapter_DownClosesStrandedSessions(t *testing.T) {
	rec := &recorder{}
	h, _ := newTestHandler(rec)

	// The first sequence never delivers its Up.
	feed(h,
		sample(ActionDown, ms(10), ms(10), 0, 0),
		twoPointer(ActionPointerDown, ms(20), ms(10), 1, 0, 0, 100, 0),
		twoPointer(ActionMove, ms(30), ms(10), 0, 0, 0, 150, 0),
	)
	if !h.IsNativeScrolling() || !h.IsNativePinching() {
		t.Fatalf("scrolling=%v pinching=%v: %v", h.IsNativeScrolling(), h.IsNativePinching(), rec.types())
	}

	h.OnSampleArrived(sample(ActionDown, ms(500), ms(500), 5, 5))
	if h.IsNativeScrolling() || h.IsNativePinching() {
		t.Errorf("scrolling=%v pinching=%v after a new down", h.IsNativeScrolling(), h.IsNativePinching())
	}
	if rec.count(GestureScrollEnd) != 1 || rec.count(GesturePinchEnd) != 1 {
		t.Errorf("gestures = %v", rec.types())
	}
	if g := rec.gestures[len(rec.gestures)-1]; g.Type != GestureTapDown {
		t.Errorf("last gesture = %s, want the new tap down", g.Type)
	}
}
