package gesture

import "time"

// Delegate is the remote consumer boundary. Samples offered to it are
// acknowledged later through Handler.OnAckReceived, possibly synchronously
// from inside SendSample.
type Delegate interface {
	// SendSample forwards a converted sample. Returning false means the sample
	// was not forwarded and will be recognized locally instead.
	SendSample(eventTime time.Duration, typ TouchEventType, points []TouchPoint) bool
	// SendGesture delivers a synthesized gesture and reports whether it was
	// accepted.
	SendGesture(g Gesture) bool
}

// TelemetryReporter is an optional Delegate extension receiving tap telemetry.
type TelemetryReporter interface {
	ReportSingleTap(kind SingleTapKind)
	ReportActionAfterDoubleTap(action DoubleTapAction, clickDelayEnabled bool)
}

// ZoomPicker is an optional Delegate extension asked to show zoom controls
// whenever the content scrolls.
type ZoomPicker interface {
	InvokeZoomPicker()
}

// GestureStore receives a copy of every gesture the Delegate accepted.
// See the ecs sub-package for a Donburi-backed implementation.
type GestureStore interface {
	EmitGesture(g Gesture)
}

// Detector is the low-level pattern recognizer. It reports what it sees
// through a DetectorListener.
type Detector interface {
	OnTouchEvent(s *MotionSample) bool
	SetDoubleTapEnabled(enabled bool)
}

// DetectorListener receives pattern signals from a Detector. The samples
// passed in are only valid for the duration of the call.
type DetectorListener interface {
	OnDown(e *MotionSample) bool
	OnScroll(e1, e2 *MotionSample, distanceX, distanceY float64) bool
	OnFling(e1, e2 *MotionSample, velocityX, velocityY float64) bool
	OnShowPress(e *MotionSample)
	OnSingleTapUp(e *MotionSample) bool
	OnSingleTapConfirmed(e *MotionSample) bool
	OnDoubleTapEvent(e *MotionSample) bool
	OnLongPress(e *MotionSample)
}

// LongPressTimer schedules and cancels the long-press timeout for a contact
// sequence.
type LongPressTimer interface {
	CancelIfNeeded(s *MotionSample)
	StartIfNeeded(s *MotionSample)
	Cancel()
	InLongPress() bool
}

// ScaleDetector is the secondary scale/zoom recognizer. It sees every locally
// processed sample, and samples claimed by the consumer through PassThrough.
type ScaleDetector interface {
	ProcessSample(s *MotionSample) bool
	PassThrough(s *MotionSample)
	InProgress() bool
}

// Ticker is implemented by collaborators with timed callbacks. Handler.Update
// ticks every collaborator that implements it.
type Ticker interface {
	Tick(now time.Duration)
}

// Handler turns raw touch samples into gestures while coordinating with a
// remote consumer that may claim samples first. One Handler serves one view.
//
// Handler is not safe for concurrent use: every entry point must be called
// from the same goroutine (typically the game or UI loop).
type Handler struct {
	cfg       Config
	debug     bool
	delegate  Delegate
	telemetry TelemetryReporter
	picker    ZoomPicker
	store     GestureStore
	clock     Clock

	// Collaborators
	detector  Detector
	longPress LongPressTimer
	scale     ScaleDetector
	snap      snapScrollController
	adapter   *recognizerAdapter

	// Dispatch state
	state           DispatchState
	pool            *samplePool
	queue           pendingQueue
	draining        bool
	inFlight        bool
	ignoreRemaining bool
	moveConfirmed   bool
	forwardDownX    float64
	forwardDownY    float64
	currentDown     *MotionSample

	sess    sessionState
	dtTimer doubleTapActionTimer

	// Scripted input
	injectQueue []syntheticTouch
	injectHold  int
	injectDown  time.Duration
	testRunner  *TestRunner
}

// NewHandler creates a handler reporting to delegate, with the default
// pattern, long-press and pinch collaborators. Zero config fields take their
// defaults.
func NewHandler(delegate Delegate, cfg Config) *Handler {
	cfg = cfg.withDefaults()
	h := &Handler{
		cfg:      cfg,
		debug:    cfg.Debug,
		delegate: delegate,
		clock:    NewUptimeClock(),
		pool:     newSamplePool(cfg.PoolBucketCap),
	}
	h.queue.pool = h.pool
	if t, ok := delegate.(TelemetryReporter); ok {
		h.telemetry = t
	}
	if p, ok := delegate.(ZoomPicker); ok {
		h.picker = p
	}
	h.adapter = &recognizerAdapter{h: h, sess: &h.sess}
	h.snap = snapScrollController{channelDistance: cfg.SnapChannelDistance}
	h.detector = NewPatternDetector(cfg, h.adapter)
	h.longPress = NewLongPressDetector(cfg, h.OnLongPress)
	h.scale = NewPinchDetector(cfg, h)
	return h
}

// Config returns the effective configuration.
func (h *Handler) Config() Config {
	return h.cfg
}

// Listener returns the DetectorListener that drives gesture synthesis. Custom
// detectors installed with SetDetector must report to it.
func (h *Handler) Listener() DetectorListener {
	return h.adapter
}

// SetDetector replaces the pattern recognizer.
func (h *Handler) SetDetector(d Detector) {
	h.detector = d
	h.updateDoubleTapListener()
}

// SetLongPressTimer replaces the long-press timer. The timer must call
// Handler.OnLongPress when it fires.
func (h *Handler) SetLongPressTimer(t LongPressTimer) {
	h.longPress = t
}

// SetScaleDetector replaces the scale/zoom recognizer.
func (h *Handler) SetScaleDetector(d ScaleDetector) {
	h.scale = d
}

// SetClock replaces the uptime source used for synthetic samples and telemetry.
func (h *Handler) SetClock(c Clock) {
	h.clock = c
}

// SetGestureStore sets the store that mirrors accepted gestures. Pass nil to
// disable.
func (h *Handler) SetGestureStore(store GestureStore) {
	h.store = store
}

// Update advances one frame: it delivers one injected update if any are
// queued, fires the timed callbacks (show press, tap confirmation, long
// press) of the collaborators and expires the double-tap telemetry window.
// Call once per frame with the current uptime.
func (h *Handler) Update(now time.Duration) {
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInjectedInput(now)
	for _, c := range []any{h.detector, h.longPress, h.scale} {
		if t, ok := c.(Ticker); ok {
			t.Tick(now)
		}
	}
	h.updateDoubleTapTimer(now)
}

// OnLongPress is the long-press timer's callback.
func (h *Handler) OnLongPress(e *MotionSample) {
	h.adapter.OnLongPress(e)
}

// State returns the current dispatch state.
func (h *Handler) State() DispatchState {
	return h.state
}

// PendingCount returns the number of samples awaiting forwarding or an ack.
func (h *Handler) PendingCount() int {
	return h.queue.len()
}

// PeekPending returns a copy of the queue head, or nil if the queue is empty.
func (h *Handler) PeekPending() *MotionSample {
	s := h.queue.peekHead()
	if s == nil {
		return nil
	}
	return s.Clone()
}
