package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response from the backoffice. The sync worker
// partitions these into retryable and terminal failures.
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Code)
}

// AsStatusError unwraps err to a *StatusError if there is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsRetryable reports whether a submission failure is worth retrying later.
// Network/transport errors (no status at all) and server-side trouble are
// retryable; client-side rejections are not.
func IsRetryable(err error) bool {
	se, ok := AsStatusError(err)
	if !ok {
		// Could not even get a response: network unreachable, timeout.
		return true
	}
	switch {
	case se.Code >= 500:
		return true
	case se.Code == http.StatusRequestTimeout, se.Code == http.StatusTooManyRequests:
		return true
	default:
		return false
	}
}

// IsIdempotencyConflict reports whether the server signalled that the
// operation's idempotency key was already applied. Treated as success.
func IsIdempotencyConflict(err error) bool {
	se, ok := AsStatusError(err)
	return ok && se.Code == http.StatusConflict
}
