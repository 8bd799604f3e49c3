package gesture

// processSample runs s through local gesture recognition. It reports whether
// any recognizer handled it.
func (h *Handler) processSample(s *MotionSample) bool {
	wasScrolling := h.sess.scroll.active

	h.snap.setSnapScrollingMode(s, h.scale.InProgress())

	if s.Action == ActionPointerDown {
		h.endDoubleTapDragIfNecessary(s)
	}

	h.longPress.CancelIfNeeded(s)
	h.longPress.StartIfNeeded(s)

	handled := false
	if h.canHandle(s) {
		if h.detector.OnTouchEvent(s) {
			handled = true
		}
		if s.Action == ActionDown {
			h.currentDown = s.Clone()
		}
	}

	if h.scale.ProcessSample(s) {
		handled = true
	}

	if s.Action == ActionUp || s.Action == ActionCancel {
		h.currentDown = nil
		if s.Action == ActionCancel {
			h.sendTapCancelIfNecessary(s)
		}
		// Lifting the last finger ends the scroll unless it flung, which
		// already closed the session.
		if wasScrolling && h.sess.scroll.active {
			h.endTouchScrollIfNecessary(s.EventTime, true)
		}
	}

	return handled
}

// canHandle reports whether the detector may observe s: the start of a new
// sequence, or a continuation of the one it is tracking.
func (h *Handler) canHandle(s *MotionSample) bool {
	return s.Action == ActionDown ||
		(h.currentDown != nil && h.currentDown.DownTime == s.DownTime)
}
