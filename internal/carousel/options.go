package carousel

import (
	"fmt"
	"math"
	"time"
)

// Public option names, as accepted by Option, SetOption and Invoke.
const (
	OptHeight            = "height"
	OptHideNavigation    = "hideNavigation"
	OptAnimationDuration = "animationDuration"
	OptNoTransitions     = "noTransitions"
	OptTouchDistance     = "touchDistance"
)

// OptionNames lists every public option in display order.
var OptionNames = []string{
	OptHeight,
	OptHideNavigation,
	OptAnimationDuration,
	OptNoTransitions,
	OptTouchDistance,
}

// Options configures a carousel.
type Options struct {
	Height            int           // rows reserved for the items
	HideNavigation    bool          // show prev/next only while hovered
	AnimationDuration time.Duration // duration of a move
	NoTransitions     bool          // never use the surface's native transitions
	TouchDistance     int           // horizontal travel that counts as a swipe
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Height:            7,
		HideNavigation:    false,
		AnimationDuration: time.Second,
		NoTransitions:     false,
		TouchDistance:     4,
	}
}

// Validate reports the first out-of-range field.
func (o Options) Validate() error {
	if o.Height <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidOption, OptHeight, o.Height)
	}
	if o.AnimationDuration < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidOption, OptAnimationDuration, o.AnimationDuration)
	}
	if o.TouchDistance <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidOption, OptTouchDistance, o.TouchDistance)
	}
	return nil
}

// Get returns the value of the named option. Durations are returned as
// time.Duration.
func (o Options) Get(name string) (any, error) {
	switch name {
	case OptHeight:
		return o.Height, nil
	case OptHideNavigation:
		return o.HideNavigation, nil
	case OptAnimationDuration:
		return o.AnimationDuration, nil
	case OptNoTransitions:
		return o.NoTransitions, nil
	case OptTouchDistance:
		return o.TouchDistance, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
}

// With returns a copy of o with the named option set. animationDuration
// accepts a time.Duration or a number of milliseconds.
func (o Options) With(name string, value any) (Options, error) {
	switch name {
	case OptHeight:
		n, err := asInt(name, value)
		if err != nil {
			return o, err
		}
		o.Height = n
	case OptHideNavigation:
		b, err := asBool(name, value)
		if err != nil {
			return o, err
		}
		o.HideNavigation = b
	case OptAnimationDuration:
		d, err := asDuration(name, value)
		if err != nil {
			return o, err
		}
		o.AnimationDuration = d
	case OptNoTransitions:
		b, err := asBool(name, value)
		if err != nil {
			return o, err
		}
		o.NoTransitions = b
	case OptTouchDistance:
		n, err := asInt(name, value)
		if err != nil {
			return o, err
		}
		o.TouchDistance = n
	default:
		return o, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	return o, o.Validate()
}

func asInt(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s wants a whole number, got %v", ErrInvalidOption, name, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s wants a number, got %T", ErrInvalidOption, name, value)
	}
}

// asBool also takes 0 and 1, which a command line parses as numbers.
func asBool(name string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		if v == 0 || v == 1 {
			return v == 1, nil
		}
	}
	return false, fmt.Errorf("%w: %s wants a bool, got %T %v", ErrInvalidOption, name, value, value)
}

func asDuration(name string, value any) (time.Duration, error) {
	if d, ok := value.(time.Duration); ok {
		return d, nil
	}
	ms, err := asInt(name, value)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
