package talentx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"
)

// APIError is a non-2xx answer of the remote service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("talentx api: %d %s (%s)", e.Status, e.Message, e.Code)
	}
	return fmt.Sprintf("talentx api: %d %s", e.Status, e.Message)
}

const (
	CodeCircuitOpen     = "circuit_open"
	CodeCircuitHalfOpen = "circuit_half_open"
)

// breakerError turns a refusal of the circuit breaker into an APIError with status 503,
// keeping the breaker error in the chain. Other errors are returned as they are.
func breakerError(err error) error {
	var code string
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		code = CodeCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		code = CodeCircuitHalfOpen
	default:
		return err
	}

	apiErr := &APIError{
		Status:  http.StatusServiceUnavailable,
		Code:    code,
		Message: "remote service unavailable",
	}
	return fmt.Errorf("%w: %w", apiErr, err)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsNotFound is a shortcut for IsStatus(err, http.StatusNotFound).
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
