package resize

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension reports a zero or negative width or height.
	ErrDimension = errors.New("invalid dimension")
	// ErrBackend reports a failure of the resampler itself.
	ErrBackend = errors.New("resize failed")
)

// Error is returned by every failing pipeline call.
type Error struct {
	Stage string // "subpixel" or "color"
	Msg   string
	Err   error // ErrDimension or ErrBackend
}

func (e *Error) Error() string {
	return fmt.Sprintf("resize %s: %v: %s", e.Stage, e.Err, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func dimErr(stage, what string, w, h int) error {
	return &Error{Stage: stage, Msg: fmt.Sprintf("%s %dx%d", what, w, h), Err: ErrDimension}
}

func backendErr(stage, format string, args ...any) error {
	return &Error{Stage: stage, Msg: fmt.Sprintf(format, args...), Err: ErrBackend}
}
