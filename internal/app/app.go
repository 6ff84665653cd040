// Package app is the root bubbletea model: a deck shown as a liquid
// carousel, with a header, a status line, a help line and a ":" prompt.
package app

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/deck"
	"github.com/llehouerou/liquid/internal/keymap"
	"github.com/llehouerou/liquid/internal/logging"
	"github.com/llehouerou/liquid/internal/state"
	"github.com/llehouerou/liquid/internal/ui/carouselview"
	"github.com/llehouerou/liquid/internal/ui/cmdline"
	"github.com/llehouerou/liquid/internal/window"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Config holds what New needs.
type Config struct {
	Deck    *deck.Deck
	Options carousel.Options

	// Pinned names options given on the command line. Values saved for the
	// deck do not override them.
	Pinned []string

	// Transitions is the result of capability detection.
	Transitions bool

	// State persists the window and option changes per deck. Nil disables
	// persistence.
	State state.Interface

	Logger zerolog.Logger

	// Initial terminal size, 0 when unknown.
	Width  int
	Height int
}

// Model is the root application model.
type Model struct {
	Deck     *deck.Deck
	Carousel *carousel.Carousel
	Surface  *carouselview.Model
	Cmdline  *cmdline.Model
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Help     help.Model
	Status   Status

	session *session
	log     zerolog.Logger

	Width  int
	Height int
}

// session is the state shared by every copy of the model and by the
// carousel hooks.
type session struct {
	seen     map[int]bool
	moves    int
	lastMove time.Time
	helpOpen bool
	saved    map[string]string // option overrides saved for the deck
}

// New builds the model, restoring the deck's saved window and options.
func New(cfg Config) (Model, error) {
	d := cfg.Deck
	if d == nil {
		d = deck.Builtin()
	}

	m := Model{
		Deck:     d,
		Cmdline:  cmdline.New(),
		StateMgr: cfg.State,
		Keys:     keymap.NewResolver(keymap.Bindings),
		Help:     help.New(),
		session: &session{
			seen:  make(map[int]bool),
			saved: make(map[string]string),
		},
		log:    logging.Component(cfg.Logger, "app"),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	if m.Width <= 0 || m.Height <= 0 {
		m.Width, m.Height = defaultWidth, defaultHeight
	}

	m.Cmdline.SetCompletions(append(slices.Clone(carousel.Methods), carousel.OptionNames...))

	opts := m.restoreOptions(cfg.Options, cfg.Pinned)
	start := m.restoreStart(len(d.Cards))

	m.Surface = carouselview.New(d.Cards, opts.Height)
	m.Surface.SetHideNavigation(opts.HideNavigation)
	m.layout(opts.Height)

	c, err := carousel.New(m.Surface, carousel.Config{
		Options:              opts,
		Hooks:                m.hooks(),
		TransitionsSupported: cfg.Transitions,
		StartIndex:           start,
		Logger:               logging.Component(cfg.Logger, "carousel"),
	})
	if err != nil {
		return Model{}, err
	}
	m.Carousel = c
	m.Surface.SetEdges(c.AtStart(), c.AtEnd())

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Surface.Tick()
}

// Seen returns how many cards have been visible at least once.
func (m Model) Seen() int {
	return len(m.session.seen)
}

// Moves returns how many times the window moved.
func (m Model) Moves() int {
	return m.session.moves
}

// HelpOpen reports whether the full help popup is shown.
func (m Model) HelpOpen() bool {
	return m.session.helpOpen
}

// hooks connects the carousel lifecycle to the session.
func (m Model) hooks() carousel.HookFuncs {
	s := m.session
	log := m.log
	return carousel.HookFuncs{
		OnInit: func(c *carousel.Carousel) {
			log.Info().Int("cards", c.ItemCount()).Bool("transitions", c.UsesTransitions()).Msg("carousel ready")
		},
		OnDestroy: func(*carousel.Carousel) {
			log.Info().Int("moves", s.moves).Int("seen", len(s.seen)).Msg("carousel closed")
		},
		OnBeforeNavigate: func(dir window.Direction, from window.Window) bool {
			if s.helpOpen {
				return false
			}
			s.moves++
			s.lastMove = time.Now()
			log.Debug().Stringer("direction", dir).Int("from", from.First).Msg("navigate")
			return true
		},
		OnItemShown: func(i int) {
			s.seen[i] = true
		},
	}
}
