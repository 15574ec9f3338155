// Package status classifies results whose success payload can itself report
// failure, such as API responses shaped like {"success": false, "message": "..."}.
//
// These helpers predate plain tuple inspection and are kept for callers that
// still rely on them. New code should branch on Result.Err directly.
package status

import (
	"github.com/ib-77/trytuple/pkg/rop"
)

const (
	// DefaultField is the name of the status flag consulted when no WithField option is given.
	DefaultField = "success"
	// MessageField is the map key holding a payload's message.
	MessageField = "message"

	NoResult     = "No result"
	Unsuccessful = "Unsuccessful result"
)

// Flagger is a payload that reports a named boolean status flag. ok is false
// when the payload has no flag by that name.
type Flagger interface {
	StatusFlag(name string) (value bool, ok bool)
}

// Messenger is a payload carrying a human readable message.
type Messenger interface {
	StatusMessage() (string, bool)
}

type options struct {
	field string
}

type Option func(*options)

// WithField sets the name of the status flag to consult.
func WithField(name string) Option {
	return func(o *options) {
		o.field = name
	}
}

func newOptions(opts []Option) options {
	o := options{field: DefaultField}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func IsSuccess[T any](r rop.Result[T]) bool {
	return r.IsSuccess()
}

func IsError[T any](r rop.Result[T]) bool {
	return r.IsFailure()
}

// IsFailure reports a failed result, or a successful one whose payload has
// its status flag explicitly set to false.
func IsFailure[T any](r rop.Result[T], opts ...Option) bool {
	if r.IsFailure() {
		return true
	}

	o := newOptions(opts)
	value, ok := flagOf(r.Result(), o.field)
	return ok && !value
}

// IsErrorOrNoData reports a failed result or a successful one without a payload.
func IsErrorOrNoData[T any](r rop.Result[T]) bool {
	return r.IsFailure() || rop.IsNil(r.Result())
}

// FailureReason describes why r is not usable. In order of precedence: the
// error message, NoResult for a missing payload, the payload's own message
// when its status flag is false, and Unsuccessful otherwise.
func FailureReason[T any](r rop.Result[T], opts ...Option) string {
	if r.IsFailure() {
		return r.Err().Error()
	}

	payload := any(r.Result())
	if rop.IsNil(payload) {
		return NoResult
	}

	o := newOptions(opts)
	if value, ok := flagOf(payload, o.field); ok && !value {
		if msg, ok := messageOf(payload); ok && msg != "" {
			return msg
		}
	}

	return Unsuccessful
}
