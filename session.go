package gesture

// --- Session state ---

// scrollSession tracks one scroll from ScrollStart to ScrollEnd.
type scrollSession struct {
	active bool
	// seenFirst is set once the first delta of the session had the touch
	// slop removed.
	seenFirst bool
	// errX and errY carry the fractional part lost when deltas are truncated
	// to whole pixels, so the cumulative drift stays below one pixel.
	errX, errY float64
	// lastX and lastY are the most recent scroll position, used to tell
	// whether an up landed too far from where the contact settled.
	lastX, lastY float64
}

// doubleTapSession tracks the second tap of a double tap and its drag-zoom.
type doubleTapSession struct {
	mode             DoubleTapMode
	anchorX, anchorY float64
	lastY            float64
	// pageDisabled is the page-level suppression signal; it is tracked apart
	// from mode so it can be lifted without touching explicit suppression.
	pageDisabled bool
}

// sessionState is everything the recognizer adapter and the emitters share.
// It is owned by exactly one Handler.
type sessionState struct {
	// needsTapEnding is the tap bracket: set when TapDown is emitted, cleared
	// by the first successful SingleTapUp, SingleTapConfirmed, DoubleTap or
	// TapCancel.
	needsTapEnding bool
	// showPressCalled records whether ShowPressedState was emitted for the
	// current tap.
	showPressCalled bool
	// ignoreSingleTap suppresses further single-tap resolution for the
	// current sequence once one has been emitted or ruled out.
	ignoreSingleTap bool

	scroll    scrollSession
	flinging  bool
	pinching  bool
	doubleTap doubleTapSession

	// lastLongPress is the sample that triggered the last LongPress, kept so
	// losing focus can cancel its pressed styling.
	lastLongPress *MotionSample

	singleTapX, singleTapY int
}

// resetForDown clears the per-tap state at the start of a sequence.
func (s *sessionState) resetForDown(x, y float64) {
	s.showPressCalled = false
	s.ignoreSingleTap = false
	s.scroll.active = false
	s.scroll.seenFirst = false
	s.scroll.lastX = x
	s.scroll.lastY = y
	s.scroll.errX = 0
	s.scroll.errY = 0
}

// --- Queries ---

// IsNativeScrolling reports whether a scroll session is open.
func (h *Handler) IsNativeScrolling() bool {
	return h.sess.scroll.active
}

// IsNativePinching reports whether a pinch session is open.
func (h *Handler) IsNativePinching() bool {
	return h.sess.pinching
}

// IsFlingActive reports whether a fling was started and not yet cancelled.
func (h *Handler) IsFlingActive() bool {
	return h.sess.flinging
}

// NeedsTapEndingEvent reports whether a TapDown is still waiting for its
// closing tap gesture.
func (h *Handler) NeedsTapEndingEvent() bool {
	return h.sess.needsTapEnding
}

// DoubleTapMode returns the current double-tap session mode. Page-level
// suppression reports as DoubleTapDisabled once no double tap is active.
func (h *Handler) DoubleTapMode() DoubleTapMode {
	if h.sess.doubleTap.pageDisabled && !h.isDoubleTapActive() {
		return DoubleTapDisabled
	}
	return h.sess.doubleTap.mode
}

// SingleTapX returns the x coordinate of the last resolved single tap.
func (h *Handler) SingleTapX() int {
	return h.sess.singleTapX
}

// SingleTapY returns the y coordinate of the last resolved single tap.
func (h *Handler) SingleTapY() int {
	return h.sess.singleTapY
}

// SetIgnoreSingleTap suppresses (or re-allows) single-tap resolution for the
// current sequence.
func (h *Handler) SetIgnoreSingleTap(ignore bool) {
	h.sess.ignoreSingleTap = ignore
}

// --- Double tap support ---

// UpdateDoubleTapSupport explicitly enables or disables double-tap
// detection. It must not be called while a double tap is in progress.
func (h *Handler) UpdateDoubleTapSupport(supported bool) {
	if h.isDoubleTapActive() {
		h.violation("double-tap support changed during %s", h.sess.doubleTap.mode)
		return
	}
	mode := DoubleTapNone
	if !supported {
		mode = DoubleTapDisabled
	}
	if h.sess.doubleTap.mode == mode {
		return
	}
	h.sess.doubleTap.mode = mode
	h.updateDoubleTapListener()
}

// UpdateShouldDisableDoubleTap applies the page-level suppression signal,
// for pages whose viewport makes double-tap zoom meaningless. Suppression
// takes effect once any double tap in progress has finished.
func (h *Handler) UpdateShouldDisableDoubleTap(disable bool) {
	if h.sess.doubleTap.pageDisabled == disable {
		return
	}
	h.sess.doubleTap.pageDisabled = disable
	h.updateDoubleTapListener()
}

func (h *Handler) isDoubleTapDisabled() bool {
	return h.sess.doubleTap.mode == DoubleTapDisabled || h.sess.doubleTap.pageDisabled
}

func (h *Handler) isDoubleTapActive() bool {
	m := h.sess.doubleTap.mode
	return m == DoubleTapDragDetecting || m == DoubleTapDragZoom
}

// updateDoubleTapListener tells the detector whether to look for double
// taps. Disabling is deferred until an active double tap completes.
func (h *Handler) updateDoubleTapListener() {
	if h.detector == nil {
		return
	}
	if h.isDoubleTapDisabled() {
		if h.isDoubleTapActive() {
			return
		}
		h.detector.SetDoubleTapEnabled(false)
		return
	}
	h.detector.SetDoubleTapEnabled(true)
}
