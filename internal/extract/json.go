// Package extract pulls structured payloads out of free-form model replies.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches the first ``` block, optionally tagged json.
var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ErrParse is matched by every error returned from Decode.
var ErrParse = errors.New("invalid JSON in model response")

// ParseError carries the decoder failure for a model reply.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse.Error(), e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Payload returns the interior of the first fenced block in raw, or raw
// unchanged when there is none.
func Payload(raw string) string {
	if m := fencePattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return raw
}

// Decode parses the JSON payload of raw into a fresh T. On failure the zero
// value is returned together with a *ParseError.
func Decode[T any](raw string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(Payload(raw)), &out); err != nil {
		var zero T
		return zero, &ParseError{Err: err}
	}
	return out, nil
}
