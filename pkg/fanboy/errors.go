package fanboy

import (
	"context"
	"errors"
	"fmt"
)

// CodeCancelled is the transport error code reserved for aborted requests.
const CodeCancelled = -999

// Domain errors
var (
	// ErrInvalidTerm is returned synchronously for terms that are empty
	// after trimming whitespace.
	ErrInvalidTerm = errors.New("fanboy: invalid term")

	// ErrCancelledByUser is delivered when a request was cancelled before
	// its result arrived.
	ErrCancelledByUser = errors.New("fanboy: cancelled by user")

	// ErrUnexpectedResult matches any *UnexpectedResultError.
	ErrUnexpectedResult = errors.New("fanboy: unexpected result")
)

// UnexpectedResultError is delivered when the service answered with JSON
// that does not have the shape the operation expects.
type UnexpectedResultError struct {
	Result any
}

func (e *UnexpectedResultError) Error() string {
	return fmt.Sprintf("fanboy: unexpected result of type %T", e.Result)
}

func (e *UnexpectedResultError) Is(target error) bool {
	return target == ErrUnexpectedResult
}

// coder is implemented by transport errors that carry a numeric code.
type coder interface {
	Code() int
}

// classify maps a transport error to a domain error. Errors it does not
// recognize are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var c coder
	if errors.As(err, &c) && c.Code() == CodeCancelled {
		return ErrCancelledByUser
	}
	if errors.Is(err, context.Canceled) {
		return ErrCancelledByUser
	}
	return err
}
