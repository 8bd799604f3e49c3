package gesture

// SetHasRemoteHandlers records whether the consumer has registered touch
// handlers. Registering from NoHandler moves to NoHandlerForGesture so a
// partially seen sequence is never sent to the consumer. Deregistering drops
// every pending sample, which also happens on navigation. Sessions the
// dropped samples would have closed are closed first.
func (h *Handler) SetHasRemoteHandlers(has bool) {
	if has {
		if h.state == StateNoHandler {
			h.state = StateNoHandlerForGesture
		}
		return
	}
	if h.queue.len() > 0 {
		h.resetGestureHandlers(h.now())
	}
	h.state = StateNoHandler
	h.clearPending()
}

// ResetOnNavigation resets all gesture sessions, returns to NoHandler and
// discards the pending queue. Call when the content starts navigating.
func (h *Handler) ResetOnNavigation() {
	h.resetGestureHandlers(h.now())
	h.state = StateNoHandler
	h.clearPending()
}

// clearPending drops the queue. A sample in flight at this point becomes
// stale; its late ack finds nothing in flight and is ignored.
func (h *Handler) clearPending() {
	h.queue.clear()
	h.inFlight = false
}

// OnSampleArrived accepts a raw sample from the platform. It reports whether
// the sample was queued or handled. The caller keeps ownership of s.
func (h *Handler) OnSampleArrived(s *MotionSample) bool {
	if h.ignoreRemaining {
		if s.Action != ActionDown {
			return false
		}
		h.ignoreRemaining = false
	}

	h.longPress.CancelIfNeeded(s)
	// The consumer drops samples while a fling scrolls, so stop it before a new
	// sequence is offered.
	if s.Action == ActionDown {
		h.EndFlingIfNecessary(s.EventTime)
	}
	return h.enqueue(s)
}

// ForceCancelRemaining cancels the current contact sequence and ignores
// every further sample until the next Down. Used when a popup takes over
// input mid-gesture.
func (h *Handler) ForceCancelRemaining() {
	h.OnSampleArrived(h.syntheticCancel(h.now()))
	h.ignoreRemaining = true
}

// enqueue routes s directly to local processing when no consumer exists, and
// otherwise queues (or coalesces) it for forwarding.
func (h *Handler) enqueue(s *MotionSample) bool {
	if h.state == StateNoHandler {
		if h.queue.len() != 0 {
			h.violation("pending queue holds %d samples with no handler", h.queue.len())
			h.clearPending()
		}
		return h.processSample(s)
	}

	if h.queue.coalesce(s) {
		h.debugTrace("coalesced move, queue size %d", h.queue.len())
		return true
	}

	if h.queue.push(s) {
		h.drainPending()
	} else {
		h.debugTrace("queued %s, queue size %d", s.Action, h.queue.len())
	}
	return true
}

// forwardHead tries to hand the queue head to the consumer.
func (h *Handler) forwardHead() forwardResult {
	s := h.queue.peekHead()

	// A new sequence resets the routing decision and is always offered.
	if s.Action == ActionDown {
		h.state = StateHasHandler
		h.moveConfirmed = false
		h.forwardDownX = s.X()
		h.forwardDownY = s.Y()
		h.currentDown = nil
	}

	if h.state == StateNoHandlerForGesture {
		return notForwarded
	}

	if s.Action == ActionMove {
		if !h.moveConfirmed {
			if s.PointerCount() > 1 {
				h.moveConfirmed = true
			} else {
				dx := s.X() - h.forwardDownX
				dy := s.Y() - h.forwardDownY
				if dx*dx+dy*dy > h.cfg.touchSlopSquare() {
					h.moveConfirmed = true
				}
			}
		}
		// Until the consumer claims the sequence, small moves are not worth
		// a round trip.
		if h.state != StateConsumingGesture && !h.moveConfirmed {
			return dropped
		}
	}

	typ, pts, err := s.toTouchPoints()
	if err != nil {
		h.debugTrace("dropping %s: %v", s.Action, err)
		return dropped
	}

	h.inFlight = true
	sent := h.delegate.SendSample(s.EventTime, typ, pts)
	if !h.inFlight {
		// Acked before SendSample returned; the head is already resolved.
		return forwarded
	}
	if !sent {
		h.inFlight = false
		return notForwarded
	}
	return forwarded
}

// drainPending forwards queued samples until one is in flight or the queue
// is empty. A nested call, which happens when an ack arrives synchronously
// from inside SendSample, returns immediately and leaves the work to the
// outer loop.
func (h *Handler) drainPending() {
	if h.draining {
		return
	}
	h.draining = true
	defer func() { h.draining = false }()

	for h.queue.len() > 0 {
		if h.inFlight {
			return
		}
		res := h.forwardHead()
		if res == forwarded {
			// Still awaiting the ack; otherwise it was acked synchronously
			// and the loop continues with the next head.
			if h.inFlight {
				return
			}
			continue
		}

		s, err := h.queue.dequeueHead()
		if err != nil {
			return
		}
		if res == notForwarded && h.state != StateConsumingGesture {
			h.processSample(s)
		}
		h.queue.recycle(s)
	}
}

// drainUntilNextDown recognizes every queued sample of the current sequence
// locally, without offering it to the consumer, then resumes normal draining.
func (h *Handler) drainUntilNextDown() {
	if h.state != StateHasHandler {
		h.debugTrace("drain until next down from state %s", h.state)
	}
	h.state = StateNoHandlerForGesture

	for next := h.queue.peekHead(); next != nil && next.Action != ActionDown; next = h.queue.peekHead() {
		h.processSample(next)
		s, _ := h.queue.dequeueHead()
		h.queue.recycle(s)
	}
	h.drainPending()
}

// OnAckReceived resolves the sample in flight with the consumer's verdict.
func (h *Handler) OnAckReceived(result AckResult) {
	if !h.inFlight || h.queue.len() == 0 {
		logf("warning: ack %s with nothing in flight (queue size %d), ignoring", result, h.queue.len())
		return
	}
	if result == AckUnknown {
		h.violation("ack with unknown result")
		return
	}

	h.inFlight = false
	acked, err := h.queue.dequeueHead()
	if err != nil {
		return
	}
	h.debugTrace("ack %s for %s in state %s", result, acked.Action, h.state)

	switch result {
	case AckConsumed, AckIgnored:
		if h.state != StateConsumingGesture && acked.Action != ActionDown {
			h.sendTapCancelIfNecessary(acked)
			h.resetGestureHandlers(acked.EventTime)
		} else {
			h.scale.PassThrough(acked)
		}
		h.state = StateConsumingGesture
		h.drainPending()
	case AckNotConsumed:
		if h.state != StateConsumingGesture {
			h.processSample(acked)
		}
		h.drainPending()
	case AckNoConsumerExists:
		if h.state != StateConsumingGesture {
			h.processSample(acked)
		}
		if acked.Action == ActionDown {
			h.drainUntilNextDown()
		} else {
			h.drainPending()
		}
	}

	h.cancelLongPressForPending()
	h.queue.recycle(acked)
}

// cancelLongPressForPending lets the long-press timer see the queued samples
// of the current sequence, so a long press does not fire for a contact that
// has already moved or lifted.
func (h *Handler) cancelLongPressForPending() {
	if h.currentDown == nil {
		return
	}
	for _, s := range h.queue.items {
		if s.DownTime != h.currentDown.DownTime {
			break
		}
		h.longPress.CancelIfNeeded(s)
	}
}
