package entity

import (
	"errors"
	"fmt"
)

// Standard domain errors
var (
	ErrConfiguration     = errors.New("model gateway could not be configured")
	ErrModelUnavailable  = errors.New("model unavailable")
	ErrRateLimitExceeded = errors.New("rate limit exceeded: too many queries")
	ErrInvalidMode       = errors.New("unknown mode")
)

// FailureReason labels why a single generative call did not produce text.
type FailureReason string

const (
	ReasonTimeout       FailureReason = "timeout"
	ReasonCanceled      FailureReason = "canceled"
	ReasonTransport     FailureReason = "transport"
	ReasonAuth          FailureReason = "auth"
	ReasonRateLimit     FailureReason = "rate_limit"
	ReasonMalformed     FailureReason = "malformed"
	ReasonNotConfigured FailureReason = "not_configured"
)

// ModelUnavailableError is the only error shape a ModelGateway hands back.
// The provider error, if any, is kept in Err for logging.
type ModelUnavailableError struct {
	Reason FailureReason
	Err    error
}

func (e *ModelUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("model unavailable (%s)", e.Reason)
	}
	return fmt.Sprintf("model unavailable (%s): %v", e.Reason, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }

func (e *ModelUnavailableError) Is(target error) bool {
	return target == ErrModelUnavailable
}

// Unavailable builds a ModelUnavailableError.
func Unavailable(reason FailureReason, err error) *ModelUnavailableError {
	return &ModelUnavailableError{Reason: reason, Err: err}
}

// ReasonOf extracts the failure reason from err, or "" when err is not a
// ModelUnavailableError.
func ReasonOf(err error) FailureReason {
	var mu *ModelUnavailableError
	if errors.As(err, &mu) {
		return mu.Reason
	}
	return ""
}
