package gesture

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxPointers is the number of pointer slots: slot 0 is the emulated mouse,
// slots 1-9 are touches.
const maxPointers = 10

// TouchSource polls Ebitengine touch state once per frame and turns the
// changes into MotionSamples for a Handler. Pointer IDs are stable slot
// numbers, not raw Ebitengine touch IDs.
type TouchSource struct {
	// EmulateMouse reports the left mouse button as a single touch while no
	// real touch is down.
	EmulateMouse bool

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	curr     []Pointer
	prev     []Pointer
	downTime time.Duration
}

// NewTouchSource returns a source with mouse emulation enabled.
func NewTouchSource() *TouchSource {
	return &TouchSource{EmulateMouse: true}
}

// Poll reads this frame's input and feeds the resulting samples to h. Call
// from ebiten.Game.Update before Handler.Update, with the current uptime.
func (t *TouchSource) Poll(h *Handler, now time.Duration) {
	if !ebiten.IsFocused() {
		if s := t.cancel(now); s != nil {
			h.OnSampleArrived(s)
			h.OnWindowFocusLost()
		}
		return
	}
	for _, s := range t.advance(t.read(), now) {
		h.OnSampleArrived(s)
	}
}

// read returns the pointers down this frame, ordered by slot.
func (t *TouchSource) read() []Pointer {
	t.curr = t.curr[:0]

	touchIDs := ebiten.AppendTouchIDs(t.prevTouchIDs[:0])
	t.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := t.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		t.curr = append(t.curr, Pointer{ID: slot, X: float64(tx), Y: float64(ty)})
	}

	// Free slots whose touch has ended.
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && !activeSlots[i] {
			t.touchUsed[i] = false
			t.touchMap[i] = 0
		}
	}

	if t.EmulateMouse && len(t.curr) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		t.curr = append(t.curr, Pointer{ID: 0, X: float64(mx), Y: float64(my)})
	}

	slices.SortFunc(t.curr, func(a, b Pointer) int { return a.ID - b.ID })
	return t.curr
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (t *TouchSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && t.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.touchUsed[i] {
			t.touchUsed[i] = true
			t.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// advance diffs curr against the previous frame. Within one frame, moves are
// reported first, then lifted pointers, then new ones.
func (t *TouchSource) advance(curr []Pointer, now time.Duration) []*MotionSample {
	var out []*MotionSample
	down := slices.Clone(t.prev)

	moved := false
	for i, p := range down {
		if c, ok := findPointer(curr, p.ID); ok && (c.X != p.X || c.Y != p.Y) {
			down[i] = c
			moved = true
		}
	}
	if moved {
		out = append(out, t.sample(now, ActionMove, 0, down))
	}

	for i := 0; i < len(down); {
		if _, ok := findPointer(curr, down[i].ID); ok {
			i++
			continue
		}
		if len(down) > 1 {
			out = append(out, t.sample(now, ActionPointerUp, i, down))
		} else {
			out = append(out, t.sample(now, ActionUp, 0, down))
		}
		down = slices.Delete(down, i, i+1)
	}

	for _, c := range curr {
		if _, ok := findPointer(down, c.ID); ok {
			continue
		}
		down = append(down, c)
		if len(down) == 1 {
			t.downTime = now
			out = append(out, t.sample(now, ActionDown, 0, down))
		} else {
			out = append(out, t.sample(now, ActionPointerDown, len(down)-1, down))
		}
	}

	t.prev = append(t.prev[:0], down...)
	return out
}

// cancel ends the current sequence, returning nil when nothing is down.
func (t *TouchSource) cancel(now time.Duration) *MotionSample {
	if len(t.prev) == 0 {
		return nil
	}
	s := t.sample(now, ActionCancel, 0, t.prev)
	t.prev = t.prev[:0]
	return s
}

func (t *TouchSource) sample(now time.Duration, action Action, index int, pointers []Pointer) *MotionSample {
	return &MotionSample{
		EventTime:   now,
		DownTime:    t.downTime,
		Action:      action,
		ActionIndex: index,
		Pointers:    slices.Clone(pointers),
	}
}

func findPointer(ps []Pointer, id int) (Pointer, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}
