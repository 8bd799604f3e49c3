package gesture

import "time"

// Action identifies what happened to the contact sequence in a MotionSample.
type Action uint8

const (
	ActionDown        Action = iota // first pointer touched down, starts a contact sequence
	ActionMove                      // one or more pointers moved
	ActionUp                        // last pointer lifted, ends the contact sequence
	ActionCancel                    // the contact sequence was aborted
	ActionPointerDown               // an additional pointer joined the sequence
	ActionPointerUp                 // a non-final pointer lifted
)

// String returns a short name for the action.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer-down"
	case ActionPointerUp:
		return "pointer-up"
	default:
		return "unknown"
	}
}

// GestureType identifies a kind of synthesized gesture.
type GestureType uint8

const (
	GestureShowPressedState   GestureType = iota // press feedback may be shown
	GestureDoubleTap                             // second tap completed without dragging
	GestureSingleTapUp                           // tap resolved at up, without waiting for a double tap
	GestureSingleTapConfirmed                    // tap resolved after the double-tap window
	GestureSingleTapUnconfirmed                  // tap up seen, final decision deferred
	GestureLongPress                             // contact held past the long-press timeout
	GestureScrollStart                           // a scroll session begins
	GestureScrollBy                              // incremental scroll, integer pixel deltas
	GestureScrollEnd                             // a scroll session ends
	GestureFlingStart                            // fling with non-zero velocity
	GestureFlingCancel                           // a previously started fling must stop
	GesturePinchBegin                            // a pinch session begins
	GesturePinchBy                               // multiplicative zoom delta
	GesturePinchEnd                              // a pinch session ends
	GestureTapCancel                             // an open tap bracket is abandoned
	GestureLongTap                               // up after a long press
	GestureTapDown                               // first contact, opens the tap bracket
)

var gestureNames = [...]string{
	GestureShowPressedState:     "show-pressed-state",
	GestureDoubleTap:            "double-tap",
	GestureSingleTapUp:          "single-tap-up",
	GestureSingleTapConfirmed:   "single-tap-confirmed",
	GestureSingleTapUnconfirmed: "single-tap-unconfirmed",
	GestureLongPress:            "long-press",
	GestureScrollStart:          "scroll-start",
	GestureScrollBy:             "scroll-by",
	GestureScrollEnd:            "scroll-end",
	GestureFlingStart:           "fling-start",
	GestureFlingCancel:          "fling-cancel",
	GesturePinchBegin:           "pinch-begin",
	GesturePinchBy:              "pinch-by",
	GesturePinchEnd:             "pinch-end",
	GestureTapCancel:            "tap-cancel",
	GestureLongTap:              "long-tap",
	GestureTapDown:              "tap-down",
}

// String returns a short name for the gesture type.
func (g GestureType) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return "unknown"
}

// endsTap reports whether g closes an open tap bracket.
func (g GestureType) endsTap() bool {
	switch g {
	case GestureSingleTapUp, GestureSingleTapConfirmed, GestureDoubleTap, GestureTapCancel:
		return true
	}
	return false
}

// GestureParams is the fixed-schema parameter set attached to a Gesture.
// Which fields are meaningful depends on the gesture type:
//
//	FlingStart         VelocityX, VelocityY (px/s)
//	ScrollBy           DistanceX, DistanceY (px, scroll offset direction)
//	ScrollStart        DeltaHintX, DeltaHintY (px, direction of travel)
//	SingleTapConfirmed ShowPress
//	PinchBy            Delta (multiplicative scale)
//
// All other gestures carry the zero value.
type GestureParams struct {
	VelocityX, VelocityY   int
	DistanceX, DistanceY   int
	DeltaHintX, DeltaHintY int
	ShowPress              bool
	Delta                  float64
}

// Gesture is a single synthesized gesture event sent to the Delegate.
type Gesture struct {
	Type   GestureType
	Time   time.Duration
	X, Y   int
	Params GestureParams
}

// AckResult is the remote consumer's verdict on a forwarded sample.
type AckResult uint8

const (
	AckUnknown          AckResult = iota // never expected in steady state
	AckConsumed                          // the consumer claimed the sample
	AckNotConsumed                       // the consumer saw the sample but did not claim it
	AckNoConsumerExists                  // nothing on the consumer side listens to this sequence
	AckIgnored                           // the consumer dropped the sample; treated as claimed
)

// String returns a short name for the ack result.
func (r AckResult) String() string {
	switch r {
	case AckConsumed:
		return "consumed"
	case AckNotConsumed:
		return "not-consumed"
	case AckNoConsumerExists:
		return "no-consumer-exists"
	case AckIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// DispatchState selects how incoming samples are routed.
type DispatchState uint8

const (
	StateNoHandler           DispatchState = iota // samples go straight to gesture recognition
	StateHasHandler                               // samples are offered to the consumer first
	StateNoHandlerForGesture                      // this sequence has no consumer; recognize locally
	StateConsumingGesture                         // the consumer claimed this sequence; no local recognition
)

// String returns a short name for the dispatch state.
func (s DispatchState) String() string {
	switch s {
	case StateNoHandler:
		return "no-handler"
	case StateHasHandler:
		return "has-handler"
	case StateNoHandlerForGesture:
		return "no-handler-for-gesture"
	case StateConsumingGesture:
		return "consuming-gesture"
	default:
		return "unknown"
	}
}

// forwardResult classifies one attempt to hand the queue head to the consumer.
type forwardResult uint8

const (
	forwarded    forwardResult = iota // handed to the consumer, awaiting an ack
	dropped                           // removed without local processing
	notForwarded                      // removed and recognized locally unless consuming
)

// DoubleTapMode is the state of the double-tap session.
type DoubleTapMode uint8

const (
	DoubleTapNone          DoubleTapMode = iota // no double tap in progress
	DoubleTapDragDetecting                      // second tap is down, waiting to see if it drags
	DoubleTapDragZoom                           // second tap is dragging, zooming
	DoubleTapDisabled                           // double tap detection is suppressed
)

// String returns a short name for the double-tap mode.
func (m DoubleTapMode) String() string {
	switch m {
	case DoubleTapNone:
		return "none"
	case DoubleTapDragDetecting:
		return "drag-detecting"
	case DoubleTapDragZoom:
		return "drag-zoom"
	case DoubleTapDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// SingleTapKind classifies a single tap for telemetry.
type SingleTapKind uint8

const (
	SingleTapDelayed   SingleTapKind = iota // waited for the double-tap window
	SingleTapUndelayed                      // resolved without waiting
)

// DoubleTapAction is the user's next classified action after a double tap.
type DoubleTapAction uint8

const (
	DoubleTapActionNone        DoubleTapAction = iota // window elapsed with no action
	DoubleTapActionNavigateBack                       // user navigated back
	DoubleTapActionStopLoading                        // user stopped the page load
)
