package gesture

import "math"

type snapMode uint8

const (
	snapNone snapMode = iota
	snapHorizontal
	snapVertical
)

// snapAxisRatio is how dominant one axis must be over the other before a
// scroll locks onto it.
const snapAxisRatio = 2.0

// snapScrollController locks a scroll onto one axis when the initial motion
// is close enough to horizontal or vertical, and releases the lock when the
// contact wanders far enough off-axis.
type snapScrollController struct {
	channelDistance float64

	mode                 snapMode
	deciding             bool
	firstX, firstY       float64
	distanceX, distanceY float64
}

// setSnapScrollingMode classifies the sequence from its first moves.
func (c *snapScrollController) setSnapScrollingMode(s *MotionSample, scaling bool) {
	switch s.Action {
	case ActionDown:
		c.mode = snapNone
		c.deciding = true
		c.firstX = s.X()
		c.firstY = s.Y()
		c.distanceX = 0
		c.distanceY = 0
	case ActionMove:
		if scaling {
			c.deciding = false
			return
		}
		if !c.deciding {
			return
		}
		ax := math.Abs(s.X() - c.firstX)
		ay := math.Abs(s.Y() - c.firstY)
		if ax <= c.channelDistance && ay <= c.channelDistance {
			return
		}
		c.deciding = false
		switch {
		case ax > ay*snapAxisRatio:
			c.mode = snapHorizontal
		case ay > ax*snapAxisRatio:
			c.mode = snapVertical
		default:
			c.mode = snapNone
		}
	case ActionUp, ActionCancel:
		c.deciding = false
		c.distanceX = 0
		c.distanceY = 0
	}
}

// updateSnapScrollMode accumulates scroll distance and breaks the lock once
// the off-axis travel exceeds the channel distance.
func (c *snapScrollController) updateSnapScrollMode(distanceX, distanceY float64) {
	if c.mode == snapNone {
		return
	}
	c.distanceX += math.Abs(distanceX)
	c.distanceY += math.Abs(distanceY)
	if c.mode == snapHorizontal {
		if c.distanceY > c.channelDistance {
			c.mode = snapNone
		} else if c.distanceX > c.channelDistance {
			c.distanceX, c.distanceY = 0, 0
		}
		return
	}
	if c.distanceX > c.channelDistance {
		c.mode = snapNone
	} else if c.distanceY > c.channelDistance {
		c.distanceX, c.distanceY = 0, 0
	}
}

func (c *snapScrollController) isSnappingScrolls() bool {
	return c.mode != snapNone
}

func (c *snapScrollController) isSnapHorizontal() bool {
	return c.mode == snapHorizontal
}
