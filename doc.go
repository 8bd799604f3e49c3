// Package gesture turns raw touch samples into high-level gestures (taps,
// double taps, long presses, scrolls, flings and pinches) for a view whose
// content may want to handle the touches itself first.
//
// # Dispatch
//
// A [Handler] sits between the platform and a remote consumer (for example a
// scripted UI layer or a web view). When the consumer has registered touch
// handlers, every sample is offered to it through [Delegate.SendSample] and
// held in a pending queue until the consumer acknowledges it with
// [Handler.OnAckReceived]. Only one sample is in flight at a time; Move
// samples that arrive while waiting are coalesced into the queue tail.
//
// The ack decides who owns the rest of the contact sequence:
//
//   - [AckConsumed] and [AckIgnored]: the consumer claims the sequence and
//     local recognition is reset.
//   - [AckNotConsumed]: the sample is recognized locally.
//   - [AckNoConsumerExists]: the rest of the sequence, up to the next Down,
//     is recognized locally without being offered again.
//
// Without remote handlers, samples go straight to local recognition.
//
// # Gestures
//
// Recognized gestures are delivered through [Delegate.SendGesture] as
// [Gesture] values. Every TapDown is closed by exactly one of SingleTapUp,
// SingleTapConfirmed, DoubleTap or TapCancel. Scrolls are bracketed by
// ScrollStart and ScrollEnd (or FlingStart), pinches by PinchBegin and
// PinchEnd.
//
// # Frame loop
//
// Timed recognition (show press, tap confirmation, long press) runs from
// [Handler.Update], which must be called once per frame:
//
//	src := gesture.NewTouchSource()
//	h := gesture.NewHandler(delegate, gesture.DefaultConfig())
//	clock := gesture.NewUptimeClock()
//
//	func (g *Game) Update() error {
//		now := clock.Now()
//		src.Poll(h, now)
//		h.Update(now)
//		return nil
//	}
//
// # Scripted input
//
// [Handler.InjectTap], [Handler.InjectDrag] and friends queue synthetic
// touches that are delivered one per Update. [LoadTestScript] builds a
// [TestRunner] that replays a JSON scenario, including consumer acks.
//
// # ECS integration
//
// The gesture/ecs sub-package provides a [GestureStore] that publishes every
// accepted gesture into a Donburi world.
package gesture
