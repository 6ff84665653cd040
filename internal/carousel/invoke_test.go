package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/liquid/internal/window"
)

func TestInvoke(t *testing.T) {
	t.Run("navigation methods", func(t *testing.T) {
		c := newTestCarousel(t, newFakeSurface(120, 50, 50, 50, 50), Config{})

		got, err := c.Invoke(MethodNext)
		require.NoError(t, err)
		assert.Equal(t, true, got)
		assert.Equal(t, window.Window{First: 2, Last: 3}, c.Window())

		got, err = c.Invoke(MethodNext)
		require.NoError(t, err)
		assert.Equal(t, false, got)

		got, err = c.Invoke(MethodPrevious)
		require.NoError(t, err)
		assert.Equal(t, true, got)
		assert.Equal(t, 0, c.Window().First)

		got, err = c.Invoke(MethodRedraw)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown method names the method", func(t *testing.T) {
		c := newTestCarousel(t, newFakeSurface(120, 50), Config{})

		_, err := c.Invoke("jumpTo")
		require.ErrorIs(t, err, ErrUnknownMethod)
		assert.Contains(t, err.Error(), `"jumpTo"`)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		c := newTestCarousel(t, newFakeSurface(120, 50), Config{})

		_, err := c.Invoke(MethodNext, 1)
		require.ErrorIs(t, err, ErrInvalidArguments)

		_, err = c.Invoke(MethodOption)
		require.ErrorIs(t, err, ErrInvalidArguments)

		_, err = c.Invoke(MethodOption, 3)
		require.ErrorIs(t, err, ErrInvalidArguments)
	})

	t.Run("get and set options", func(t *testing.T) {
		c := newTestCarousel(t, newFakeSurface(120, 50), Config{})

		got, err := c.Invoke(MethodOption, OptAnimationDuration)
		require.NoError(t, err)
		assert.Equal(t, time.Second, got)

		_, err = c.Invoke(MethodOption, OptTouchDistance, 9)
		require.NoError(t, err)
		assert.Equal(t, 9, c.Options().TouchDistance)

		_, err = c.Invoke(MethodOption, "speed")
		require.ErrorIs(t, err, ErrUnknownOption)
	})

	t.Run("destroy then redraw", func(t *testing.T) {
		c := newTestCarousel(t, newFakeSurface(120, 50), Config{})

		_, err := c.Invoke(MethodDestroy)
		require.NoError(t, err)
		assert.True(t, c.Destroyed())

		_, err = c.Invoke(MethodRedraw)
		require.ErrorIs(t, err, ErrDestroyed)
	})
}

func TestOptions(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultOptions().Validate())
	})

	t.Run("every public name can be read", func(t *testing.T) {
		opts := DefaultOptions()
		for _, name := range OptionNames {
			_, err := opts.Get(name)
			assert.NoError(t, err, name)
		}
	})

	tests := []struct {
		name    string
		option  string
		value   any
		check   func(t *testing.T, o Options)
		wantErr error
	}{
		{
			name:   "height from int",
			option: OptHeight,
			value:  12,
			check:  func(t *testing.T, o Options) { assert.Equal(t, 12, o.Height) },
		},
		{
			name:   "height from float",
			option: OptHeight,
			value:  float64(9),
			check:  func(t *testing.T, o Options) { assert.Equal(t, 9, o.Height) },
		},
		{
			name:   "duration from duration",
			option: OptAnimationDuration,
			value:  300 * time.Millisecond,
			check:  func(t *testing.T, o Options) { assert.Equal(t, 300*time.Millisecond, o.AnimationDuration) },
		},
		{
			name:   "hide navigation",
			option: OptHideNavigation,
			value:  true,
			check:  func(t *testing.T, o Options) { assert.True(t, o.HideNavigation) },
		},
		{
			name:   "bool from one",
			option: OptNoTransitions,
			value:  1,
			check:  func(t *testing.T, o Options) { assert.True(t, o.NoTransitions) },
		},
		{
			name:   "bool from zero",
			option: OptHideNavigation,
			value:  0,
			check:  func(t *testing.T, o Options) { assert.False(t, o.HideNavigation) },
		},
		{
			name:    "bool option rejects other numbers",
			option:  OptNoTransitions,
			value:   2,
			wantErr: ErrInvalidOption,
		},
		{
			name:    "height rejects a fraction",
			option:  OptHeight,
			value:   1.5,
			wantErr: ErrInvalidOption,
		},
		{
			name:    "bool option rejects strings",
			option:  OptNoTransitions,
			value:   "yes",
			wantErr: ErrInvalidOption,
		},
		{
			name:    "negative duration",
			option:  OptAnimationDuration,
			value:   -5,
			wantErr: ErrInvalidOption,
		},
		{
			name:    "zero touch distance",
			option:  OptTouchDistance,
			value:   0,
			wantErr: ErrInvalidOption,
		},
		{
			name:    "unknown option",
			option:  "loop",
			value:   true,
			wantErr: ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultOptions().With(tt.option, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}
