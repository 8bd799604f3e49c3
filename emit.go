package gesture

import (
	"math"
	"time"
)

// doubleTapDragZoomSpeed is the zoom factor change per device unit of
// vertical drag during double-tap drag zoom.
const doubleTapDragZoomSpeed = 0.005

// sendGesture delivers one gesture. Gestures must carry a non-zero time.
func (h *Handler) sendGesture(typ GestureType, t time.Duration, x, y int, params GestureParams) bool {
	if t == 0 {
		h.violation("%s gesture with zero timestamp", typ)
		return false
	}
	h.updateDoubleTapTimer(h.now())
	if typ == GestureDoubleTap {
		h.reportDoubleTap(h.now())
	}

	g := Gesture{Type: typ, Time: t, X: x, Y: y, Params: params}
	if !h.delegate.SendGesture(g) {
		return false
	}
	if h.store != nil {
		h.store.EmitGesture(g)
	}
	return true
}

func (h *Handler) sendSampleAsGesture(typ GestureType, e *MotionSample, params GestureParams) bool {
	return h.sendGesture(typ, e.EventTime, int(e.X()), int(e.Y()), params)
}

// sendTapEndingGesture sends a gesture that closes the tap bracket.
func (h *Handler) sendTapEndingGesture(typ GestureType, e *MotionSample, params GestureParams) bool {
	if !h.sendSampleAsGesture(typ, e, params) {
		return false
	}
	if typ.endsTap() {
		h.sess.needsTapEnding = false
	}
	return true
}

// sendTapCancelIfNecessary closes an open tap bracket with TapCancel.
func (h *Handler) sendTapCancelIfNecessary(e *MotionSample) {
	if !h.sess.needsTapEnding {
		return
	}
	if !h.sendTapEndingGesture(GestureTapCancel, e, GestureParams{}) {
		return
	}
	h.sess.lastLongPress = nil
}

// sendTapDown opens the tap bracket, force-closing a bracket left open.
func (h *Handler) sendTapDown(e *MotionSample) {
	if h.sess.needsTapEnding {
		h.debugTrace("tap down with an open tap bracket, cancelling it")
		h.sendTapCancelIfNecessary(e)
		h.sess.needsTapEnding = false
	}
	if h.sendSampleAsGesture(GestureTapDown, e, GestureParams{}) {
		h.sess.needsTapEnding = true
	}
}

// --- Fling ---

// Fling starts a fling from (x, y) with the given velocity in px/s. A zero
// velocity ends the scroll session instead. A ScrollStart is synthesized
// first when no scroll session is open.
func (h *Handler) Fling(t time.Duration, x, y, velocityX, velocityY int) {
	h.EndFlingIfNecessary(t)

	if velocityX == 0 && velocityY == 0 {
		h.endTouchScrollIfNecessary(t, true)
		return
	}

	if !h.sess.scroll.active {
		// The distance travelled in one second is a reasonable scroll hint.
		h.sendGesture(GestureScrollStart, t, x, y, GestureParams{
			DeltaHintX: velocityX,
			DeltaHintY: velocityY,
		})
	}
	h.endTouchScrollIfNecessary(t, false)

	h.sess.flinging = true
	h.sendGesture(GestureFlingStart, t, x, y, GestureParams{
		VelocityX: velocityX,
		VelocityY: velocityY,
	})
}

// EndFlingIfNecessary sends FlingCancel if a fling was started and not yet
// cancelled.
func (h *Handler) EndFlingIfNecessary(t time.Duration) {
	if !h.sess.flinging {
		return
	}
	h.sess.flinging = false
	h.sendGesture(GestureFlingCancel, t, 0, 0, GestureParams{})
}

// --- Scroll ---

// endTouchScrollIfNecessary closes the scroll session, optionally sending
// ScrollEnd. A fling closes the session without one.
func (h *Handler) endTouchScrollIfNecessary(t time.Duration, sendScrollEnd bool) {
	if !h.sess.scroll.active {
		return
	}
	h.sess.scroll.active = false
	if sendScrollEnd {
		h.sendGesture(GestureScrollEnd, t, 0, 0, GestureParams{})
	}
}

// --- Pinch ---

// PinchBegin opens a pinch session anchored at (x, y).
func (h *Handler) PinchBegin(t time.Duration, x, y int) {
	if h.sendGesture(GesturePinchBegin, t, x, y, GestureParams{}) {
		h.sess.pinching = true
	}
}

// PinchBy scales by delta around the anchor (x, y).
func (h *Handler) PinchBy(t time.Duration, x, y int, delta float64) {
	h.sendGesture(GesturePinchBy, t, x, y, GestureParams{Delta: delta})
	h.sess.pinching = true
}

// PinchEnd closes the pinch session.
func (h *Handler) PinchEnd(t time.Duration) {
	h.sendGesture(GesturePinchEnd, t, 0, 0, GestureParams{})
	h.sess.pinching = false
}

// --- Double tap drag ---

// dragZoomDelta returns the multiplicative zoom for a vertical move of dy
// pixels: dragging up (dy > 0, finger moving toward the top) zooms out.
func (h *Handler) dragZoomDelta(dy float64) float64 {
	base := 1.0 + doubleTapDragZoomSpeed
	if dy > 0 {
		base = 1.0 - doubleTapDragZoomSpeed
	}
	return math.Pow(base, math.Abs(dy/h.cfg.Density))
}

// endDoubleTapDragIfNecessary closes a double-tap session, ending the
// drag-zoom pinch and scroll when one was started.
func (h *Handler) endDoubleTapDragIfNecessary(e *MotionSample) {
	if !h.isDoubleTapActive() {
		return
	}
	if h.sess.doubleTap.mode == DoubleTapDragZoom {
		h.PinchEnd(e.EventTime)
		h.sendSampleAsGesture(GestureScrollEnd, e, GestureParams{})
	}
	h.sess.doubleTap.mode = DoubleTapNone
	h.updateDoubleTapListener()
}

// --- Long tap ---

// triggerLongTapIfNeeded sends LongTap for an up following a long press.
func (h *Handler) triggerLongTapIfNeeded(e *MotionSample) bool {
	if h.longPress.InLongPress() && e.Action == ActionUp && !h.scale.InProgress() {
		h.sendTapCancelIfNecessary(e)
		h.sendSampleAsGesture(GestureLongTap, e, GestureParams{})
		return true
	}
	return false
}

// OnWindowFocusLost removes pressed styling left by a long press whose
// context menu took focus.
func (h *Handler) OnWindowFocusLost() {
	if h.longPress.InLongPress() && h.sess.lastLongPress != nil {
		h.sendTapCancelIfNecessary(h.sess.lastLongPress)
	}
}

// --- Reset ---

// resetGestureHandlers feeds a synthetic cancel to the recognizers and
// closes every open session, as if the contact had lifted.
func (h *Handler) resetGestureHandlers(t time.Duration) {
	cancel := h.syntheticCancel(t)
	h.sendTapCancelIfNecessary(cancel)
	if h.detector != nil {
		h.detector.OnTouchEvent(cancel)
	}
	h.scale.ProcessSample(cancel)
	h.longPress.Cancel()
	h.endDoubleTapDragIfNecessary(cancel)
	h.endTouchScrollIfNecessary(t, true)
	if h.sess.pinching {
		h.PinchEnd(t)
	}
}

// syntheticCancel builds a Cancel sample for the current sequence.
func (h *Handler) syntheticCancel(t time.Duration) *MotionSample {
	if t == 0 {
		t = h.now()
	}
	down := t
	if h.currentDown != nil {
		down = h.currentDown.DownTime
	}
	return &MotionSample{
		EventTime: t,
		DownTime:  down,
		Action:    ActionCancel,
		Pointers:  []Pointer{{}},
	}
}

func (h *Handler) now() time.Duration {
	return h.clock.Now()
}
