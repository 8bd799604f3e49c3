package gesture

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMotionSample_CloneIsDeep(t *testing.T) {
	s := sample(ActionMove, ms(20), ms(10), 1, 2)
	s.History = []Batch{{EventTime: ms(15), Pointers: []Pointer{{X: 0, Y: 1}}}}

	c := s.Clone()
	if diff := cmp.Diff(s, c); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	c.Pointers[0].X = 99
	c.History[0].Pointers[0].X = 99
	if s.Pointers[0].X != 1 {
		t.Error("clone shares Pointers with original")
	}
	if s.History[0].Pointers[0].X != 0 {
		t.Error("clone shares History with original")
	}
}

func TestMotionSample_EmptyAccessors(t *testing.T) {
	s := &MotionSample{}
	if s.X() != 0 || s.Y() != 0 || s.PointerCount() != 0 {
		t.Errorf("empty sample: X=%v Y=%v count=%d", s.X(), s.Y(), s.PointerCount())
	}
}

func TestMotionSample_AddBatch(t *testing.T) {
	tail := sample(ActionMove, ms(20), ms(10), 1, 1)
	next := sample(ActionMove, ms(30), ms(10), 3, 3)
	next.History = []Batch{{EventTime: ms(25), Pointers: []Pointer{{X: 2, Y: 2}}}}

	tail.addBatch(next)

	want := &MotionSample{
		EventTime: ms(30),
		DownTime:  ms(10),
		Action:    ActionMove,
		Pointers:  []Pointer{{X: 3, Y: 3}},
		History: []Batch{
			{EventTime: ms(20), Pointers: []Pointer{{X: 1, Y: 1}}},
			{EventTime: ms(25), Pointers: []Pointer{{X: 2, Y: 2}}},
		},
	}
	if diff := cmp.Diff(want, tail); diff != "" {
		t.Fatalf("addBatch mismatch (-want +got):\n%s", diff)
	}

	// The merged history must not alias next.
	next.History[0].Pointers[0].X = 42
	if tail.History[1].Pointers[0].X != 2 {
		t.Error("addBatch aliased the merged sample's history")
	}
}

func TestToTouchPoints_Single(t *testing.T) {
	tests := []struct {
		action Action
		typ    TouchEventType
		state  TouchPointState
	}{
		{ActionDown, TouchStart, TouchPointPressed},
		{ActionMove, TouchMove, TouchPointMoved},
		{ActionUp, TouchEnd, TouchPointReleased},
		{ActionCancel, TouchCancel, TouchPointCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := sample(tt.action, ms(5), ms(5), 10, 20)
			typ, pts, err := s.toTouchPoints()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if typ != tt.typ {
				t.Errorf("type = %v, want %v", typ, tt.typ)
			}
			want := []TouchPoint{{ID: 0, X: 10, Y: 20, State: tt.state}}
			if diff := cmp.Diff(want, pts); diff != "" {
				t.Errorf("points (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToTouchPoints_PointerUpMarksOthersStationary(t *testing.T) {
	s := twoPointer(ActionPointerUp, ms(5), ms(1), 1, 0, 0, 50, 50)
	typ, pts, err := s.toTouchPoints()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ != TouchEnd {
		t.Errorf("type = %v, want TouchEnd", typ)
	}
	if pts[0].State != TouchPointStationary || pts[1].State != TouchPointReleased {
		t.Errorf("states = %v, %v", pts[0].State, pts[1].State)
	}
}

func TestToTouchPoints_Errors(t *testing.T) {
	tests := map[string]*MotionSample{
		"no pointers":  {EventTime: ms(1), Action: ActionDown},
		"nan":          sample(ActionMove, ms(1), ms(1), math.NaN(), 0),
		"inf":          sample(ActionMove, ms(1), ms(1), 0, math.Inf(1)),
		"bad index":    twoPointer(ActionPointerDown, ms(1), ms(1), 5, 0, 0, 1, 1),
		"bad action":   {EventTime: ms(1), Action: Action(200), Pointers: []Pointer{{}}},
		"negative idx": twoPointer(ActionPointerUp, ms(1), ms(1), -1, 0, 0, 1, 1),
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := s.toTouchPoints(); !errors.Is(err, ErrConversion) {
				t.Errorf("err = %v, want ErrConversion", err)
			}
		})
	}
}
