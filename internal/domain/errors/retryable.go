package errors

import (
	"kitchen/internal/errors"
)

// RetryableError marks a failure the caller should redeliver later.
type RetryableError struct {
	err error
}

// NewRetryableError wraps err so IsRetryable reports true for it.
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}

	return &RetryableError{err: err}
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// IsRetryable reports whether err or anything it wraps is a RetryableError.
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*RetryableError](err)

	return ok
}
