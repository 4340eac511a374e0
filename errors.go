package zenjson

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDuplicatedTypeName indicates two handlers in one list share a name.
	ErrDuplicatedTypeName = errors.New("duplicated custom type name")

	// ErrTypeNotFound indicates a tagged pair names a handler missing from the active list.
	ErrTypeNotFound = errors.New("custom type not found")

	// ErrKeyNotFound indicates a typed key has no value in the store.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnexpectedSpecialValue indicates the number handler was asked to encode a finite number.
	ErrUnexpectedSpecialValue = errors.New("unexpected special number value")

	// ErrInvalidSerializedSpecialValue indicates a number payload is not NaN, Infinity or -Infinity.
	ErrInvalidSerializedSpecialValue = errors.New("invalid serialized special number")

	// ErrInvalidSerializedDate indicates a date payload is not an ISO-8601 timestamp.
	ErrInvalidSerializedDate = errors.New("invalid serialized date")

	// ErrInvalidPayload indicates a handler received a payload of the wrong shape.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrBlobNotFound indicates a blob id is absent from the blob store.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrBlobCorrupt indicates a stored blob no longer matches its content id.
	ErrBlobCorrupt = errors.New("blob content does not match its id")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// TypeError reports a problem with a handler name.
// Err is ErrDuplicatedTypeName or ErrTypeNotFound.
type TypeError struct {
	Err  error
	Name string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Name)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// KeyError reports a missing typed store entry.
type KeyError struct {
	Err error  // ErrKeyNotFound
	Key string // Display name of the key
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Key)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// ValueError reports a value a handler could not encode or decode.
type ValueError struct {
	Err   error  // Underlying sentinel error
	Type  string // Handler name, empty when not applicable
	Value any    // Offending value or payload
	Cause error  // Original error from a parser or decoder
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Err.Error(), e.Value)
	if e.Type != "" {
		msg = e.Type + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string
	Cause       error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

func newTypeError(sentinel error, name string) error {
	return &TypeError{Err: sentinel, Name: name}
}

func newKeyError(name string) error {
	return &KeyError{Err: ErrKeyNotFound, Key: name}
}

func newValueError(sentinel error, typ string, value any, cause error) error {
	return &ValueError{Err: sentinel, Type: typ, Value: value, Cause: cause}
}

func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{Err: sentinel, ContentType: contentType, Cause: cause}
}
