package generator

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies failures of a generation call.
type ErrorKind int

const (
	ErrorKindGeneral ErrorKind = iota
	ErrorKindTimeout
	ErrorKindRateLimit
	ErrorKindInvalidAPIKey
	ErrorKindEmptyResponse
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Error wraps a provider failure with its kind.
type Error struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a generation error, ErrorKindGeneral when err is
// not one.
func KindOf(err error) ErrorKind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ErrorKindGeneral
}

func newError(provider string, kind ErrorKind, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = ErrorKindTimeout
	}
	return &Error{Provider: provider, Kind: kind, Err: err}
}
