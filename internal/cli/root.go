// Package cli wires configuration, logging, persistence and the deck into
// the terminal program.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/liquid/internal/app"
	"github.com/llehouerou/liquid/internal/capability"
	"github.com/llehouerou/liquid/internal/carousel"
	"github.com/llehouerou/liquid/internal/config"
	"github.com/llehouerou/liquid/internal/deck"
	"github.com/llehouerou/liquid/internal/errmsg"
	"github.com/llehouerou/liquid/internal/logging"
	"github.com/llehouerou/liquid/internal/state"
)

// Flag names. The option flags map to carousel option names.
const (
	flagConfig            = "config"
	flagDeck              = "deck"
	flagDebug             = "debug"
	flagNoState           = "no-state"
	flagStateFile         = "state-file"
	flagHeight            = "height"
	flagHideNavigation    = "hide-navigation"
	flagAnimationDuration = "animation-duration"
	flagNoTransitions     = "no-transitions"
	flagTouchDistance     = "touch-distance"
)

var optionFlags = []struct {
	flag   string
	option string
}{
	{flagHeight, carousel.OptHeight},
	{flagHideNavigation, carousel.OptHideNavigation},
	{flagAnimationDuration, carousel.OptAnimationDuration},
	{flagNoTransitions, carousel.OptNoTransitions},
	{flagTouchDistance, carousel.OptTouchDistance},
}

type flags struct {
	configPath string
	deckPath   string
	debug      bool
	noState    bool
	stateFile  string

	height            int
	hideNavigation    bool
	animationDuration time.Duration
	noTransitions     bool
	touchDistance     int
}

// env is everything a command needs once flags are resolved.
type env struct {
	cfg     *config.Config
	deck    *deck.Deck
	options carousel.Options
	pinned  []string
	log     zerolog.Logger
	state   state.Interface

	closers []io.Closer
}

func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

// NewRootCmd creates the liquid command.
func NewRootCmd(version string) *cobra.Command {
	f := &flags{}
	defaults := carousel.DefaultOptions()

	cmd := &cobra.Command{
		Use:          "liquid [deck]",
		Short:        "Browse a deck of cards in a liquid carousel",
		Long:         "liquid shows a deck of cards as a horizontal carousel that fits as many cards as the terminal is wide.",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.deckPath = args[0]
			}
			e, err := prepare(cmd, f)
			if err != nil {
				return err
			}
			defer e.Close()
			return run(e)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, flagConfig, "", "config file (default: ~/.config/liquid/config.toml)")
	pf.StringVar(&f.deckPath, flagDeck, "", "deck file (.toml, .yaml or one card per line)")
	pf.BoolVar(&f.debug, flagDebug, false, "enable debug logging")
	pf.BoolVar(&f.noState, flagNoState, false, "do not restore or save the window")
	pf.StringVar(&f.stateFile, flagStateFile, "", "state database (default: XDG data directory)")
	_ = pf.MarkHidden(flagStateFile)

	pf.IntVar(&f.height, flagHeight, defaults.Height, "rows reserved for the cards")
	pf.BoolVar(&f.hideNavigation, flagHideNavigation, defaults.HideNavigation, "show the arrows only while hovered")
	pf.DurationVar(&f.animationDuration, flagAnimationDuration, defaults.AnimationDuration, "duration of a move")
	pf.BoolVar(&f.noTransitions, flagNoTransitions, defaults.NoTransitions, "never use native transitions")
	pf.IntVar(&f.touchDistance, flagTouchDistance, defaults.TouchDistance, "drag distance that counts as a swipe")

	cmd.AddCommand(newOptionsCmd(f))
	return cmd
}

// prepare loads config, deck, logger and state, in that order.
func prepare(cmd *cobra.Command, f *flags) (*env, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}

	e := &env{cfg: cfg}

	e.options, e.pinned, err = resolveOptions(cmd, f, cfg.Options())
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpOptionSet, err)
	}

	if e.deck, err = loadDeck(f.deckPath, cfg.Deck); err != nil {
		return nil, errmsg.Wrap(errmsg.OpDeckLoad, err)
	}

	level := cfg.Logging.Level
	if f.debug {
		level = zerolog.LevelDebugValue
	}
	log, closer, err := logging.Setup(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpLogOpen, err)
	}
	e.log = log
	e.closers = append(e.closers, closer)

	if !f.noState && !cfg.State.Disabled {
		mgr, err := openState(f.stateFile)
		if err != nil {
			// Persistence is optional: run without it.
			e.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateOpen, err))
		} else {
			mgr.SetLogger(logging.Component(e.log, "state"))
			e.state = mgr
			e.closers = append(e.closers, mgr)
		}
	}

	e.log.Info().
		Str("deck", e.deck.ID()).
		Int("cards", len(e.deck.Cards)).
		Strs("pinned", e.pinned).
		Msg("starting")

	return e, nil
}

// resolveOptions applies the option flags given on the command line on top
// of the configured options and returns the names they pin.
func resolveOptions(cmd *cobra.Command, f *flags, opts carousel.Options) (carousel.Options, []string, error) {
	values := map[string]any{
		flagHeight:            f.height,
		flagHideNavigation:    f.hideNavigation,
		flagAnimationDuration: f.animationDuration,
		flagNoTransitions:     f.noTransitions,
		flagTouchDistance:     f.touchDistance,
	}

	var pinned []string
	for _, of := range optionFlags {
		if !cmd.Flags().Changed(of.flag) {
			continue
		}
		next, err := opts.With(of.option, values[of.flag])
		if err != nil {
			return opts, nil, fmt.Errorf("--%s: %w", of.flag, err)
		}
		opts = next
		pinned = append(pinned, of.option)
	}
	return opts, pinned, nil
}

func loadDeck(flagPath, configPath string) (*deck.Deck, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return deck.Builtin(), nil
	}
	return deck.Load(path)
}

func openState(path string) (*state.Manager, error) {
	if path != "" {
		return state.OpenPath(path)
	}
	return state.Open()
}

// run starts the full-screen program.
func run(e *env) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 0, 0
	}

	m, err := app.New(app.Config{
		Deck:        e.deck,
		Options:     e.options,
		Pinned:      e.pinned,
		Transitions: capability.Transitions(),
		State:       e.state,
		Logger:      e.log,
		Width:       width,
		Height:      height,
	})
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		e.log.Error().Err(err).Msg("program exited with an error")
		return err
	}
	return nil
}
