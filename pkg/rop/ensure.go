package rop

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// UnknownErrorMessage is the message of errors built from causes that cannot be serialized.
const UnknownErrorMessage = "Unknown error"

var (
	// ErrUnknown is matched (errors.Is) by errors built from unserializable causes.
	ErrUnknown = errors.New(UnknownErrorMessage)
	// ErrNilOperation is reported when TryPromise is handed no operation.
	ErrNilOperation = errors.New("nil operation")
)

// EnsureError turns any failure cause into an error.
//
// An error is returned unchanged. Text becomes the message as is. Anything
// else is rendered as JSON, so nil becomes "null" and map[string]int{"a": 1}
// becomes {"a":1}. When the cause cannot be rendered (cycles, channels,
// funcs) the message is "Unknown error". EnsureError never panics.
func EnsureError(cause any) error {
	if err, ok := cause.(error); ok && !IsNil(err) {
		return err
	}

	if s, ok := textOf(cause); ok {
		return errors.New(s)
	}

	return marshalCause(cause)
}

func textOf(cause any) (string, bool) {
	if s, ok := cause.(string); ok {
		return s, true
	}
	if cause == nil {
		return "", false
	}
	v := reflect.ValueOf(cause)
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}

func marshalCause(cause any) (err error) {
	// MarshalJSON implementations may panic.
	defer func() {
		if r := recover(); r != nil {
			err = errors.WithStack(ErrUnknown)
		}
	}()

	if IsNil(cause) {
		cause = nil
	}

	b, mErr := json.Marshal(cause)
	if mErr != nil {
		return errors.WithStack(ErrUnknown)
	}
	return errors.New(string(b))
}
