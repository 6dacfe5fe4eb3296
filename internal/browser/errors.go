package browser

import (
	"context"
	"errors"
	"fmt"
)

type Kind int

const (
	KindLaunch Kind = iota + 1
	KindNavigation
	KindTimeout
	KindNotFound
	KindExtraction
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindLaunch:
		return "launch"
	case KindNavigation:
		return "navigation"
	case KindTimeout:
		return "timeout"
	case KindNotFound:
		return "not found"
	case KindExtraction:
		return "extraction"
	case KindClose:
		return "close"
	default:
		return "unknown"
	}
}

var (
	ErrTimeout  = errors.New("browser: timed out waiting for element")
	ErrNotFound = errors.New("browser: element not found")
)

// Error is returned by every Session and Driver method.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("browser %s: %s failed", e.Op, e.Kind)
	}
	return fmt.Sprintf("browser %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrTimeout and ErrNotFound by kind, whatever the
// engine-specific cause was.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// waitError classifies a failed wait: deadline expiry becomes KindTimeout.
func waitError(op string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(op, KindTimeout, err)
	}
	return newError(op, KindExtraction, err)
}

// KindOf reports the Kind of err, or 0 when err did not come from this package.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return 0
}
