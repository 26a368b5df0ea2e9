package fanboy

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Request is the handle of a single call to the service. The result is
// delivered once, to the callback given when the call was made and to
// anyone blocked in Wait.
type Request[T any] struct {
	id     string
	cancel context.CancelFunc
	cb     func(T, error)

	mu        sync.Mutex
	cancelled bool
	delivered bool

	done   chan struct{}
	result T
	err    error
}

func newRequest[T any](cancel context.CancelFunc, cb func(T, error)) *Request[T] {
	return &Request[T]{
		id:     uuid.NewString(),
		cancel: cancel,
		cb:     cb,
		done:   make(chan struct{}),
	}
}

// ID returns a unique identifier for the request, useful in logs.
func (r *Request[T]) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Cancel aborts the request. If the result has not been delivered yet, it
// will be delivered as ErrCancelledByUser. Cancelling a delivered or nil
// request does nothing.
func (r *Request[T]) Cancel() {
	if r == nil {
		return
	}

	r.mu.Lock()
	if r.delivered || r.cancelled {
		r.mu.Unlock()
		return
	}
	r.cancelled = true
	r.mu.Unlock()

	r.cancel()
}

// Done returns a channel that is closed once the result has been delivered.
func (r *Request[T]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the result has been delivered and returns it.
func (r *Request[T]) Wait() (T, error) {
	<-r.done
	return r.result, r.err
}

// Err returns the delivered error, or nil while the request is in flight.
func (r *Request[T]) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// deliver records the outcome and invokes the callback. Only the first call
// has any effect. A cancelled request always ends with ErrCancelledByUser.
func (r *Request[T]) deliver(v T, err error) {
	r.mu.Lock()
	if r.delivered {
		r.mu.Unlock()
		return
	}
	r.delivered = true
	cancelled := r.cancelled
	r.mu.Unlock()

	if cancelled {
		var zero T
		v, err = zero, ErrCancelledByUser
	}
	if err != nil {
		var zero T
		v = zero
	}

	r.result, r.err = v, err
	close(r.done)

	// Release the context resources of the finished call.
	r.cancel()

	if r.cb != nil {
		r.cb(v, err)
	}
}
