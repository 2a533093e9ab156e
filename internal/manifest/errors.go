package manifest

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for manifest loading.
const (
	ErrCodeRead        = "MANIFEST_READ"
	ErrCodeFormat      = "MANIFEST_FORMAT"
	ErrCodeParse       = "MANIFEST_PARSE"
	ErrCodeSchema      = "MANIFEST_SCHEMA"
	ErrCodeInvalidCase = "MANIFEST_INVALID_CASE"
)

// Error describes a manifest that could not be loaded.
type Error struct {
	Code    string
	Source  string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// cueError converts a CUE error, keeping the first position.
func cueError(source, code string, err error) *Error {
	out := &Error{Code: code, Source: source, Message: err.Error(), Err: err}
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return out
	}
	out.Message = errs[0].Error()
	if positions := errors.Positions(errs[0]); len(positions) > 0 {
		out.Pos = positions[0]
	}
	return out
}
