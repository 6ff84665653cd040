// Package capability decides once, at startup, what the terminal can do.
package capability

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvTransitions overrides transition detection: "on" or "off".
const EnvTransitions = "LIQUID_TRANSITIONS"

// Env looks up an environment variable. os.LookupEnv in production.
type Env func(key string) (string, bool)

// Transitions reports whether the terminal can run smooth, frame-driven
// transitions. It is queried once and handed to the carousel as a flag.
func Transitions() bool {
	return TransitionsFor(os.Stdout, os.LookupEnv)
}

// TransitionsFor is Transitions with the output and environment injected.
func TransitionsFor(out *os.File, env Env) bool {
	if override, ok := env(EnvTransitions); ok {
		switch strings.ToLower(strings.TrimSpace(override)) {
		case "on", "1", "true", "yes":
			return true
		case "off", "0", "false", "no":
			return false
		}
	}

	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return false
	}

	return supportsRedraw(env)
}

// supportsRedraw rules out terminals that cannot repaint in place fast
// enough to animate.
func supportsRedraw(env Env) bool {
	termName, _ := env("TERM")
	switch {
	case termName == "" || termName == "dumb":
		return false
	case strings.HasPrefix(termName, "vt52"):
		return false
	}

	// Emacs' M-x shell reports TERM=dumb but some setups override it.
	if _, ok := env("INSIDE_EMACS"); ok && !strings.Contains(termName, "xterm") {
		return false
	}

	return true
}
