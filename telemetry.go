package gesture

import "time"

// doubleTapActionWindow is how long after a double tap a user action is
// attributed to it.
const doubleTapActionWindow = 5 * time.Second

// doubleTapActionTimer tracks the last double tap awaiting a follow-up
// action. Zero last means none is pending.
type doubleTapActionTimer struct {
	last time.Duration
}

// reportDoubleTap opens a new window, first reporting no action for a
// previous double tap that is still pending.
func (h *Handler) reportDoubleTap(now time.Duration) {
	if h.dtTimer.last > 0 {
		h.reportAfterDoubleTap(DoubleTapActionNone)
	}
	h.dtTimer.last = now
}

// updateDoubleTapTimer reports no action once the window has elapsed.
func (h *Handler) updateDoubleTapTimer(now time.Duration) {
	if h.dtTimer.last == 0 {
		return
	}
	if now-h.dtTimer.last >= doubleTapActionWindow {
		h.reportAfterDoubleTap(DoubleTapActionNone)
		h.dtTimer.last = 0
	}
}

// ReportActionAfterDoubleTap attributes action to the most recent double tap
// if it happened within the last five seconds. Each double tap is reported at
// most once.
func (h *Handler) ReportActionAfterDoubleTap(action DoubleTapAction) {
	now := h.now()
	h.updateDoubleTapTimer(now)
	if h.dtTimer.last == 0 {
		return
	}
	if now-h.dtTimer.last < doubleTapActionWindow {
		h.reportAfterDoubleTap(action)
		h.dtTimer.last = 0
	}
}

func (h *Handler) reportAfterDoubleTap(action DoubleTapAction) {
	if h.telemetry == nil {
		return
	}
	h.telemetry.ReportActionAfterDoubleTap(action, !h.cfg.DisableClickDelay)
}
