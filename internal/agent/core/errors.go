package core

import (
	"errors"
	"fmt"
)

// UpstreamError means the chat-completion call itself failed. Not
// retried; surfaced to the caller as a gateway-style error.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("LLM error: %v", e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

// ResponseFormatError means the model's final content was not valid
// JSON. Not retried; surfaced as a gateway-style error.
type ResponseFormatError struct {
	Err error
}

func (e *ResponseFormatError) Error() string { return fmt.Sprintf("LLM JSON parse error: %v", e.Err) }
func (e *ResponseFormatError) Unwrap() error { return e.Err }

// ErrLoopExhausted means the bounded tool loop elapsed without a final
// parseable answer.
var ErrLoopExhausted = errors.New("LLM/tool loop did not produce final JSON")

// IsGatewayError reports whether err is one of the loop's failure kinds,
// all of which map to an upstream-gateway HTTP status.
func IsGatewayError(err error) bool {
	var ue *UpstreamError
	var fe *ResponseFormatError
	return errors.As(err, &ue) || errors.As(err, &fe) || errors.Is(err, ErrLoopExhausted)
}
