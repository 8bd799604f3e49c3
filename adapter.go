package gesture

import "math"

// recognizerAdapter turns Detector signals into session transitions and
// gestures. It holds the session state it mutates explicitly and emits
// through its Handler.
type recognizerAdapter struct {
	h    *Handler
	sess *sessionState
}

var _ DetectorListener = (*recognizerAdapter)(nil)

func (a *recognizerAdapter) OnDown(e *MotionSample) bool {
	// A sequence whose end was never seen can leave a scroll or pinch open.
	a.h.endTouchScrollIfNecessary(e.EventTime, true)
	if a.sess.pinching {
		a.h.PinchEnd(e.EventTime)
	}
	a.sess.resetForDown(e.X(), e.Y())
	a.h.sendTapDown(e)
	return true
}

func (a *recognizerAdapter) OnScroll(e1, e2 *MotionSample, rawDistanceX, rawDistanceY float64) bool {
	h := a.h
	sc := &a.sess.scroll

	distanceX, distanceY := rawDistanceX, rawDistanceY
	if !sc.seenFirst {
		// Remove the slop region from the first delta so the content does
		// not jump by the slop distance.
		sc.seenFirst = true
		distance := math.Hypot(distanceX, distanceY)
		if distance > 1e-3 {
			ratio := math.Max(0, distance-h.cfg.TouchSlop) / distance
			distanceX *= ratio
			distanceY *= ratio
		}
	}
	h.snap.updateSnapScrollMode(distanceX, distanceY)
	if h.snap.isSnappingScrolls() {
		if h.snap.isSnapHorizontal() {
			distanceY = 0
		} else {
			distanceX = 0
		}
	}

	sc.lastX = e2.X()
	sc.lastY = e2.Y()
	if !sc.active {
		h.sendTapCancelIfNecessary(e1)
		h.EndFlingIfNecessary(e2.EventTime)
		// Hints are in distance travelled, deltas in the opposite direction.
		if h.sendGesture(GestureScrollStart, e2.EventTime, int(e1.X()), int(e1.Y()), GestureParams{
			DeltaHintX: int(-rawDistanceX),
			DeltaHintY: int(-rawDistanceY),
		}) {
			sc.active = true
		}
	}

	dx := int(distanceX + sc.errX)
	dy := int(distanceY + sc.errY)
	sc.errX = distanceX + sc.errX - float64(dx)
	sc.errY = distanceY + sc.errY - float64(dy)

	if dx != 0 || dy != 0 {
		h.sendGesture(GestureScrollBy, e2.EventTime, int(e2.X()), int(e2.Y()), GestureParams{
			DistanceX: dx,
			DistanceY: dy,
		})
	}

	if h.picker != nil {
		h.picker.InvokeZoomPicker()
	}
	return true
}

func (a *recognizerAdapter) OnFling(e1, e2 *MotionSample, velocityX, velocityY float64) bool {
	h := a.h
	if h.snap.isSnappingScrolls() {
		if h.snap.isSnapHorizontal() {
			velocityY = 0
		} else {
			velocityX = 0
		}
	}
	h.Fling(e2.EventTime, int(e1.X()), int(e1.Y()), int(velocityX), int(velocityY))
	return true
}

func (a *recognizerAdapter) OnShowPress(e *MotionSample) {
	a.sess.showPressCalled = true
	a.h.sendSampleAsGesture(GestureShowPressedState, e, GestureParams{})
}

func (a *recognizerAdapter) OnSingleTapUp(e *MotionSample) bool {
	h := a.h
	if a.upTooFarFromDown(e) {
		// The consumer likely scrolled in between; this is no tap.
		h.sendTapCancelIfNecessary(e)
		a.sess.ignoreSingleTap = true
		return true
	}

	if !a.sess.ignoreSingleTap && !h.longPress.InLongPress() {
		switch {
		case e.EventTime-e.DownTime > h.cfg.DoubleTapTimeout:
			// Held past the double-tap window, so the confirmation would
			// never come. Resolve the tap now.
			if h.sendTapEndingGesture(GestureSingleTapUp, e, GestureParams{}) {
				a.sess.ignoreSingleTap = true
			}
			a.setClick(e)
			a.reportSingleTap()
			return true
		case h.isDoubleTapDisabled() || h.cfg.DisableClickDelay:
			return a.OnSingleTapConfirmed(e)
		default:
			h.sendSampleAsGesture(GestureSingleTapUnconfirmed, e, GestureParams{})
		}
	}

	return h.triggerLongTapIfNeeded(e)
}

func (a *recognizerAdapter) OnSingleTapConfirmed(e *MotionSample) bool {
	h := a.h
	// A confirmation can arrive after the up of a long press; ignore it.
	if h.longPress.InLongPress() || a.sess.ignoreSingleTap {
		return true
	}

	a.reportSingleTap()
	if h.sendTapEndingGesture(GestureSingleTapConfirmed, e, GestureParams{ShowPress: a.sess.showPressCalled}) {
		a.sess.ignoreSingleTap = true
	}
	a.setClick(e)
	return true
}

func (a *recognizerAdapter) OnDoubleTapEvent(e *MotionSample) bool {
	h := a.h
	dt := &a.sess.doubleTap

	switch e.Action {
	case ActionDown:
		h.sendTapCancelIfNecessary(e)
		dt.anchorX = e.X()
		dt.anchorY = e.Y()
		dt.mode = DoubleTapDragDetecting
	case ActionMove:
		switch dt.mode {
		case DoubleTapDragDetecting:
			distanceX := dt.anchorX - e.X()
			distanceY := dt.anchorY - e.Y()
			if distanceX*distanceX+distanceY*distanceY > h.cfg.touchSlopSquare() {
				h.sendTapCancelIfNecessary(e)
				h.sendGesture(GestureScrollStart, e.EventTime, int(e.X()), int(e.Y()), GestureParams{
					DeltaHintX: int(-distanceX),
					DeltaHintY: int(-distanceY),
				})
				h.PinchBegin(e.EventTime, roundInt(dt.anchorX), roundInt(dt.anchorY))
				dt.mode = DoubleTapDragZoom
			}
		case DoubleTapDragZoom:
			h.sendSampleAsGesture(GestureScrollBy, e, GestureParams{})
			h.PinchBy(e.EventTime, roundInt(dt.anchorX), roundInt(dt.anchorY), h.dragZoomDelta(dt.lastY-e.Y()))
		}
	case ActionUp:
		if dt.mode == DoubleTapDragDetecting {
			h.sendTapEndingGesture(GestureDoubleTap, e, GestureParams{})
		}
		h.endDoubleTapDragIfNecessary(e)
	case ActionCancel:
		h.sendTapCancelIfNecessary(e)
		h.endDoubleTapDragIfNecessary(e)
	}
	dt.lastY = e.Y()
	return true
}

func (a *recognizerAdapter) OnLongPress(e *MotionSample) {
	h := a.h
	if h.scale.InProgress() {
		return
	}
	if a.sess.doubleTap.mode != DoubleTapNone && !h.isDoubleTapDisabled() {
		return
	}
	a.sess.lastLongPress = e.Clone()
	h.sendSampleAsGesture(GestureLongPress, e, GestureParams{})
}

// upTooFarFromDown reports whether the up landed beyond the slop from where
// the contact last settled.
func (a *recognizerAdapter) upTooFarFromDown(e *MotionSample) bool {
	dx := a.sess.scroll.lastX - e.X()
	dy := a.sess.scroll.lastY - e.Y()
	return dx*dx+dy*dy > a.h.cfg.touchSlopSquare()
}

func (a *recognizerAdapter) setClick(e *MotionSample) {
	a.sess.singleTapX = int(e.X())
	a.sess.singleTapY = int(e.Y())
}

func (a *recognizerAdapter) reportSingleTap() {
	if a.h.telemetry == nil {
		return
	}
	kind := SingleTapDelayed
	if a.h.isDoubleTapDisabled() {
		kind = SingleTapUndelayed
	}
	a.h.telemetry.ReportSingleTap(kind)
}

// roundInt rounds half away from zero.
func roundInt(v float64) int {
	return int(math.Round(v))
}
