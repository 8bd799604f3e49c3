package gesture

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config holds the thresholds and timeouts used by a Handler and the default
// collaborators. Zero fields take the value from DefaultConfig.
type Config struct {
	// TouchSlop is the distance in pixels a pointer may wander before the
	// contact counts as movement rather than a stationary tap.
	TouchSlop float64 `json:"touchSlop,omitempty"`
	// DoubleTapSlop is the maximum distance in pixels between the first and
	// second down of a double tap.
	DoubleTapSlop float64 `json:"doubleTapSlop,omitempty"`
	// TapTimeout is the delay after a down before press feedback is shown.
	TapTimeout time.Duration `json:"tapTimeout,omitempty"`
	// DoubleTapTimeout is the window in which a second tap makes a double tap.
	DoubleTapTimeout time.Duration `json:"doubleTapTimeout,omitempty"`
	// LongPressTimeout is added to TapTimeout to get the long-press delay.
	LongPressTimeout time.Duration `json:"longPressTimeout,omitempty"`
	// MinFlingVelocity and MaxFlingVelocity bound fling velocity in px/s.
	MinFlingVelocity float64 `json:"minFlingVelocity,omitempty"`
	MaxFlingVelocity float64 `json:"maxFlingVelocity,omitempty"`
	// Density is device pixels per density-independent unit.
	Density float64 `json:"density,omitempty"`
	// SnapChannelDistance is the distance in pixels used to decide and break
	// snap-scroll axis locking.
	SnapChannelDistance float64 `json:"snapChannelDistance,omitempty"`
	// DisableClickDelay resolves single taps at up without waiting for the
	// double-tap window.
	DisableClickDelay bool `json:"disableClickDelay,omitempty"`
	// PoolBucketCap bounds idle samples kept per pool bucket.
	PoolBucketCap int `json:"poolBucketCap,omitempty"`
	// Debug turns protocol violations into panics and traces dispatch.
	Debug bool `json:"debug,omitempty"`
}

// DefaultConfig returns the standard thresholds for a density-1 display.
func DefaultConfig() Config {
	return Config{
		TouchSlop:           8,
		DoubleTapSlop:       100,
		TapTimeout:          100 * time.Millisecond,
		DoubleTapTimeout:    300 * time.Millisecond,
		LongPressTimeout:    500 * time.Millisecond,
		MinFlingVelocity:    50,
		MaxFlingVelocity:    8000,
		Density:             1,
		SnapChannelDistance: 16,
		PoolBucketCap:       defaultPoolBucketCap,
	}
}

// withDefaults returns c with every zero field replaced by its default.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TouchSlop <= 0 {
		c.TouchSlop = d.TouchSlop
	}
	if c.DoubleTapSlop <= 0 {
		c.DoubleTapSlop = d.DoubleTapSlop
	}
	if c.TapTimeout <= 0 {
		c.TapTimeout = d.TapTimeout
	}
	if c.DoubleTapTimeout <= 0 {
		c.DoubleTapTimeout = d.DoubleTapTimeout
	}
	if c.LongPressTimeout <= 0 {
		c.LongPressTimeout = d.LongPressTimeout
	}
	if c.MinFlingVelocity <= 0 {
		c.MinFlingVelocity = d.MinFlingVelocity
	}
	if c.MaxFlingVelocity <= 0 {
		c.MaxFlingVelocity = d.MaxFlingVelocity
	}
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if c.SnapChannelDistance <= 0 {
		c.SnapChannelDistance = d.SnapChannelDistance
	}
	if c.PoolBucketCap <= 0 {
		c.PoolBucketCap = d.PoolBucketCap
	}
	return c
}

// touchSlopSquare returns TouchSlop squared, for distance comparisons.
func (c Config) touchSlopSquare() float64 {
	return c.TouchSlop * c.TouchSlop
}

// LoadConfig parses a JSON config. Durations are given in nanoseconds or as
// Go duration strings ("300ms"). Missing fields take their defaults.
func LoadConfig(jsonData []byte) (Config, error) {
	var raw struct {
		Config
		TapTimeout       jsonDuration `json:"tapTimeout,omitempty"`
		DoubleTapTimeout jsonDuration `json:"doubleTapTimeout,omitempty"`
		LongPressTimeout jsonDuration `json:"longPressTimeout,omitempty"`
	}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c := raw.Config
	c.TapTimeout = time.Duration(raw.TapTimeout)
	c.DoubleTapTimeout = time.Duration(raw.DoubleTapTimeout)
	c.LongPressTimeout = time.Duration(raw.LongPressTimeout)
	if c.TouchSlop < 0 || c.DoubleTapSlop < 0 || c.Density < 0 {
		return Config{}, fmt.Errorf("parse config: negative distance or density")
	}
	return c.withDefaults(), nil
}

// jsonDuration accepts either a number of nanoseconds or a duration string.
type jsonDuration time.Duration

func (d *jsonDuration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = jsonDuration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or integer: %w", err)
	}
	*d = jsonDuration(n)
	return nil
}
