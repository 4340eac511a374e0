package zenjson

import (
	"math"
	"reflect"
	"time"
)

// Built-in handler names.
const (
	TypeDate      = "date"
	TypeUndefined = "undefined"
	TypeNumber    = "number"
	TypeArray     = "array"
)

// Date payload layouts. Millisecond precision is the common case; the
// nanosecond layout is only used when the value carries sub-millisecond digits.
const (
	dateLayout     = "2006-01-02T15:04:05.000Z"
	dateLayoutNano = "2006-01-02T15:04:05.000000000Z"
)

// UndefinedValue is the type of Undefined.
type UndefinedValue struct{}

// Undefined marks an absent value. It is distinct from nil, which is JSON null.
var Undefined = UndefinedValue{}

// dateHandler encodes time.Time as a UTC ISO-8601 string.
type dateHandler struct{}

// Date returns the "date" handler for time.Time values.
// Restored times are in UTC. Years outside 0000-9999 have no RFC 3339 form
// and fail to encode with ErrInvalidPayload.
func Date() Handler {
	return dateHandler{}
}

func (dateHandler) Name() string { return TypeDate }

func (dateHandler) Check(v any, _ *CheckContext) bool {
	_, ok := v.(time.Time)
	return ok
}

func (dateHandler) Encode(v any, _ *EncodeContext) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeDate, v, nil)
	}
	t = t.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return nil, newValueError(ErrInvalidPayload, TypeDate, v, nil)
	}
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return t.Format(dateLayoutNano), nil
	}
	return t.Format(dateLayout), nil
}

func (dateHandler) Decode(payload any, _ *DecodeContext) (any, error) {
	s, ok := payload.(string)
	if !ok {
		return nil, newValueError(ErrInvalidSerializedDate, TypeDate, payload, nil)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, newValueError(ErrInvalidSerializedDate, TypeDate, s, err)
	}
	return t.UTC(), nil
}

// undefinedHandler encodes Undefined as null.
type undefinedHandler struct{}

// UndefinedType returns the "undefined" handler for Undefined.
func UndefinedType() Handler {
	return undefinedHandler{}
}

func (undefinedHandler) Name() string { return TypeUndefined }

func (undefinedHandler) Check(v any, _ *CheckContext) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

func (undefinedHandler) Encode(any, *EncodeContext) (any, error) {
	return nil, nil
}

func (undefinedHandler) Decode(any, *DecodeContext) (any, error) {
	return Undefined, nil
}

// Special number payloads.
const (
	numberNaN    = "NaN"
	numberPosInf = "Infinity"
	numberNegInf = "-Infinity"
)

// numberHandler encodes NaN and the infinities, which JSON cannot carry.
type numberHandler struct{}

// SpecialNumber returns the "number" handler for NaN, +Inf and -Inf.
// It claims any value of float kind, named float types included; restored
// values are float64.
func SpecialNumber() Handler {
	return numberHandler{}
}

func (numberHandler) Name() string { return TypeNumber }

func (numberHandler) Check(v any, _ *CheckContext) bool {
	f, ok := asFloat(v)
	return ok && (math.IsNaN(f) || math.IsInf(f, 0))
}

func (numberHandler) Encode(v any, _ *EncodeContext) (any, error) {
	f, ok := asFloat(v)
	switch {
	case !ok:
	case math.IsNaN(f):
		return numberNaN, nil
	case math.IsInf(f, 1):
		return numberPosInf, nil
	case math.IsInf(f, -1):
		return numberNegInf, nil
	}
	return nil, newValueError(ErrUnexpectedSpecialValue, TypeNumber, v, nil)
}

func (numberHandler) Decode(payload any, _ *DecodeContext) (any, error) {
	s, _ := payload.(string)
	switch s {
	case numberNaN:
		return math.NaN(), nil
	case numberPosInf:
		return math.Inf(1), nil
	case numberNegInf:
		return math.Inf(-1), nil
	}
	return nil, newValueError(ErrInvalidSerializedSpecialValue, TypeNumber, payload, nil)
}

func asFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// arrayHandler wraps literal arrays that would otherwise read as tagged pairs.
type arrayHandler struct{}

// Array returns the "array" handler. It claims exactly the values that
// IsTaggedPair accepts, so a literal ["date", "x"] survives a round trip
// as an array instead of becoming a date.
func Array() Handler {
	return arrayHandler{}
}

func (arrayHandler) Name() string { return TypeArray }

func (arrayHandler) Check(v any, ctx *CheckContext) bool {
	return IsTaggedPair(v, ctx.Names)
}

func (arrayHandler) Encode(v any, ctx *EncodeContext) (any, error) {
	out, ok, err := mapSequence(v, ctx.Encode)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeArray, v, nil)
	}
	return out, err
}

func (arrayHandler) Decode(payload any, ctx *DecodeContext) (any, error) {
	out, ok, err := mapSequence(payload, ctx.Decode)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeArray, payload, nil)
	}
	return out, err
}
