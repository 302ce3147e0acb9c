package palette

import "errors"

var (
	// ErrNameRequired means no palette name was given.
	ErrNameRequired = errors.New("palette name required")
	// ErrTooFewObjects means fewer than two objects were selected.
	ErrTooFewObjects = errors.New("too few objects selected")
	// ErrPaletteExists means the target file exists and replacing was not requested.
	ErrPaletteExists = errors.New("palette already exists")
	// ErrNoColours means the selection yielded no usable colours.
	ErrNoColours = errors.New("no colours found")
)

// Abort messages shown to the user. They double as translation keys.
const (
	MsgNameRequired  = "Please enter a palette name."
	MsgTooFewObjects = "Please select at least 2 objects."
	MsgPaletteExists = "Palette already exists!"
	MsgNoColours     = "No colors found in selected objects!"
)

// AbortError is a precondition failure. Nothing has been written when it is
// returned.
type AbortError struct {
	Err     error
	Message string
}

func (e *AbortError) Error() string {
	return e.Message
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

func abort(err error, msg string) error {
	return &AbortError{Err: err, Message: msg}
}
