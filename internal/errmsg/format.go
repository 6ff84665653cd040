// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad Op = "load configuration"
	OpDeckLoad   Op = "load deck"
	OpStateOpen  Op = "open saved state"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize carousel"

	// Carousel
	OpNavigate     Op = "move the carousel"
	OpRedraw       Op = "redraw the carousel"
	OpOptionGet    Op = "read option"
	OpOptionSet    Op = "set option"
	OpInvoke       Op = "call carousel method"
	OpStateRestore Op = "restore the last window"
	OpOptionsSave  Op = "save options"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// Wrap returns err prefixed with the operation, keeping it matchable with
// errors.Is.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
