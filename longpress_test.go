package gesture

import "testing"

func newTestLongPress() (*LongPressDetector, *[]*MotionSample) {
	var fired []*MotionSample
	d := NewLongPressDetector(DefaultConfig(), func(s *MotionSample) {
		fired = append(fired, s)
	})
	return d, &fired
}

func TestLongPress_FiresAfterTimeout(t *testing.T) {
	d, fired := newTestLongPress()
	d.StartIfNeeded(sample(ActionDown, ms(10), ms(10), 3, 4))
	if !d.Pending() {
		t.Fatal("long press not scheduled")
	}

	// TapTimeout + LongPressTimeout after the down.
	d.Tick(ms(609))
	if len(*fired) != 0 || d.InLongPress() {
		t.Fatal("fired early")
	}
	d.Tick(ms(610))
	if len(*fired) != 1 || !d.InLongPress() {
		t.Fatalf("fired %d times, in long press %v", len(*fired), d.InLongPress())
	}
	if got := (*fired)[0]; got.X() != 3 || got.Y() != 4 {
		t.Errorf("fired with (%v,%v)", got.X(), got.Y())
	}

	d.Tick(ms(2000))
	if len(*fired) != 1 {
		t.Errorf("fired again: %d", len(*fired))
	}
}

func TestLongPress_CancelledBy(t *testing.T) {
	tests := []struct {
		name   string
		sample *MotionSample
		cancel bool
	}{
		{"small move", sample(ActionMove, ms(20), ms(10), 5, 5), false},
		{"move past slop", sample(ActionMove, ms(20), ms(10), 20, 0), true},
		{"up", sample(ActionUp, ms(20), ms(10), 0, 0), true},
		{"cancel", sample(ActionCancel, ms(20), ms(10), 0, 0), true},
		{"second pointer", twoPointer(ActionPointerDown, ms(20), ms(10), 1, 0, 0, 40, 40), true},
		{"other sequence", sample(ActionUp, ms(20), ms(5), 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, fired := newTestLongPress()
			d.StartIfNeeded(sample(ActionDown, ms(10), ms(10), 0, 0))
			d.CancelIfNeeded(tt.sample)
			d.Tick(ms(1000))
			if got := len(*fired) == 0; got != tt.cancel {
				t.Errorf("cancelled = %v, want %v", got, tt.cancel)
			}
		})
	}
}

func TestLongPress_NewDownReplacesPending(t *testing.T) {
	d, fired := newTestLongPress()
	d.StartIfNeeded(sample(ActionDown, ms(10), ms(10), 0, 0))
	// Same sequence again is a no-op.
	d.StartIfNeeded(sample(ActionDown, ms(300), ms(10), 0, 0))
	d.StartIfNeeded(sample(ActionDown, ms(400), ms(400), 50, 50))

	d.Tick(ms(700))
	if len(*fired) != 0 {
		t.Fatalf("the first down's deadline still fired")
	}
	d.Tick(ms(1000))
	if len(*fired) != 1 || (*fired)[0].X() != 50 {
		t.Fatalf("fired = %d", len(*fired))
	}
}

func TestLongPress_IgnoresNonDown(t *testing.T) {
	d, _ := newTestLongPress()
	d.StartIfNeeded(sample(ActionMove, ms(10), ms(10), 0, 0))
	if d.Pending() {
		t.Error("scheduled for a move")
	}
}

func TestLongPress_CancelLeavesLongPress(t *testing.T) {
	d, _ := newTestLongPress()
	d.StartIfNeeded(sample(ActionDown, ms(10), ms(10), 0, 0))
	d.Tick(ms(700))
	d.Cancel()
	if d.InLongPress() || d.Pending() {
		t.Errorf("in long press %v, pending %v", d.InLongPress(), d.Pending())
	}
}
