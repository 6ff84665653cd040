package carousel

import "fmt"

// Public method names accepted by Invoke.
const (
	MethodNext     = "next"
	MethodPrevious = "previous"
	MethodRedraw   = "redraw"
	MethodOption   = "option"
	MethodDestroy  = "destroy"
)

// Methods lists every method Invoke accepts.
var Methods = []string{MethodNext, MethodPrevious, MethodRedraw, MethodOption, MethodDestroy}

// Invoke calls a public method by name, the way a host that only knows
// strings (a command line, a key binding file) drives the carousel.
//
//	next, previous      -> bool (whether the window moved)
//	redraw, destroy     -> nil
//	option NAME         -> the option value
//	option NAME VALUE   -> nil, after setting it
func (c *Carousel) Invoke(method string, args ...any) (any, error) {
	switch method {
	case MethodNext:
		if err := wantArgs(method, args, 0); err != nil {
			return nil, err
		}
		return c.Next()
	case MethodPrevious:
		if err := wantArgs(method, args, 0); err != nil {
			return nil, err
		}
		return c.Previous()
	case MethodRedraw:
		if err := wantArgs(method, args, 0); err != nil {
			return nil, err
		}
		if c.destroyed {
			return nil, ErrDestroyed
		}
		c.Redraw()
		return nil, nil
	case MethodDestroy:
		if err := wantArgs(method, args, 0); err != nil {
			return nil, err
		}
		c.Destroy()
		return nil, nil
	case MethodOption:
		return c.invokeOption(args)
	default:
		return nil, fmt.Errorf("%w: method %q does not exist on the carousel", ErrUnknownMethod, method)
	}
}

func (c *Carousel) invokeOption(args []any) (any, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, fmt.Errorf("%w: %s takes a name and an optional value, got %d arguments",
			ErrInvalidArguments, MethodOption, len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: option name must be a string, got %T", ErrInvalidArguments, args[0])
	}
	if len(args) == 1 {
		return c.Option(name)
	}
	return nil, c.SetOption(name, args[1])
}

func wantArgs(method string, args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidArguments, method, n, len(args))
	}
	return nil
}
