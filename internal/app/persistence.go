package app

import (
	"slices"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/errmsg"
	"github.com/llehouerou/liquid/internal/state"
)

// restoreOptions applies the option values saved for the deck on top of
// opts, except the pinned ones. Saved values that no longer validate are
// skipped.
func (m *Model) restoreOptions(opts carousel.Options, pinned []string) carousel.Options {
	if m.StateMgr == nil {
		return opts
	}
	saved, err := m.StateMgr.GetOptions(m.Deck.ID())
	if err != nil {
		m.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateRestore, err))
		return opts
	}

	for name, raw := range saved {
		m.session.saved[name] = raw
		if slices.Contains(pinned, name) {
			continue
		}
		next, err := opts.With(name, parseValue(raw))
		if err != nil {
			m.log.Warn().Err(err).Str("option", name).Str("value", raw).Msg("ignoring saved option")
			continue
		}
		opts = next
	}
	return opts
}

// restoreStart returns the first item of the saved window, clamped to the
// deck.
func (m *Model) restoreStart(n int) int {
	if m.StateMgr == nil || n == 0 {
		return 0
	}
	w, err := m.StateMgr.GetWindow(m.Deck.ID())
	if err != nil {
		m.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateRestore, err))
		return 0
	}
	if w == nil {
		return 0
	}
	if w.ItemCount != 0 && w.ItemCount != n {
		m.log.Info().Int("saved", w.ItemCount).Int("cards", n).Msg("deck changed, window restored at a clamped position")
	}
	return min(max(w.First, 0), n-1)
}

// saveWindow persists the current window for the deck.
func (m *Model) saveWindow() {
	if m.StateMgr == nil {
		return
	}
	win := m.Carousel.Window()
	m.StateMgr.SaveWindow(state.WindowState{
		DeckID:    m.Deck.ID(),
		First:     win.First,
		Last:      win.Last,
		ItemCount: m.Carousel.ItemCount(),
	})
}

// rememberOption records an option changed in this session and saves the
// deck's overrides.
func (m *Model) rememberOption(name string, value any) {
	m.session.saved[name] = formatValue(value)
	if m.StateMgr == nil {
		return
	}
	if err := m.StateMgr.SaveOptions(m.Deck.ID(), m.session.saved); err != nil {
		m.log.Error().Err(err).Msg(errmsg.Format(errmsg.OpOptionsSave, err))
	}
}
