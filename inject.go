package gesture

import "time"

// syntheticTouch is one injected single-pointer update. Timestamps are
// assigned when it is consumed, so queued input replays at frame pace.
type syntheticTouch struct {
	x, y   float64
	action Action
	// hold keeps the contact still for this many extra frames after the
	// update is delivered.
	hold int
}

// InjectPress queues a Down at (x, y). Queued input is consumed one update
// per Update call.
func (h *Handler) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticTouch{x: x, y: y, action: ActionDown})
}

// InjectMove queues a Move to (x, y) for the contact started by InjectPress.
func (h *Handler) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticTouch{x: x, y: y, action: ActionMove})
}

// InjectRelease queues an Up at (x, y).
func (h *Handler) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticTouch{x: x, y: y, action: ActionUp})
}

// InjectHold keeps the current contact still for the given number of frames.
func (h *Handler) InjectHold(frames int) {
	if frames <= 0 {
		return
	}
	if n := len(h.injectQueue); n > 0 {
		h.injectQueue[n-1].hold += frames
		return
	}
	h.injectHold += frames
}

// InjectTap queues a press followed by a release at the same point. Consumes
// two frames.
func (h *Handler) InjectTap(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDoubleTap queues two taps at the same point. Consumes four frames.
func (h *Handler) InjectDoubleTap(x, y float64) {
	h.InjectTap(x, y)
	h.InjectTap(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (h *Handler) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectPending returns the number of injected updates not yet delivered.
func (h *Handler) InjectPending() int {
	return len(h.injectQueue)
}

// processInjectedInput delivers at most one queued update, stamped with now.
// Reports whether an update was consumed or a hold frame elapsed.
func (h *Handler) processInjectedInput(now time.Duration) bool {
	if h.injectHold > 0 {
		h.injectHold--
		return true
	}
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	if evt.action == ActionDown {
		h.injectDown = now
	}
	h.injectHold = evt.hold
	h.OnSampleArrived(&MotionSample{
		EventTime: now,
		DownTime:  h.injectDown,
		Action:    evt.action,
		Pointers:  []Pointer{{X: evt.x, Y: evt.y}},
	})
	return true
}
