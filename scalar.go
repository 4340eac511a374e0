package zenjson

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scalar handler names.
const (
	TypeBigInt   = "bigint"
	TypeDecimal  = "decimal"
	TypeUUID     = "uuid"
	TypeDuration = "duration"
)

// textHandler encodes values of one Go type as strings.
type textHandler[T any] struct {
	name   string
	accept func(T) bool
	format func(T) string
	parse  func(string) (T, error)
}

func (h *textHandler[T]) Name() string { return h.name }

func (h *textHandler[T]) Check(v any, _ *CheckContext) bool {
	t, ok := v.(T)
	if !ok {
		return false
	}
	return h.accept == nil || h.accept(t)
}

func (h *textHandler[T]) Encode(v any, _ *EncodeContext) (any, error) {
	t, ok := v.(T)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, h.name, v, nil)
	}
	return h.format(t), nil
}

func (h *textHandler[T]) Decode(payload any, _ *DecodeContext) (any, error) {
	s, ok := payload.(string)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, h.name, payload, nil)
	}
	t, err := h.parse(s)
	if err != nil {
		return nil, newValueError(ErrInvalidPayload, h.name, s, err)
	}
	return t, nil
}

// BigIntType returns the "bigint" handler for non-nil *big.Int values,
// written as base 10 strings.
func BigIntType() Handler {
	return &textHandler[*big.Int]{
		name:   TypeBigInt,
		accept: func(n *big.Int) bool { return n != nil },
		format: func(n *big.Int) string { return n.String() },
		parse: func(s string) (*big.Int, error) {
			n, ok := new(big.Int).SetString(s, 10)
			if !ok {
				return nil, ErrInvalidPayload
			}
			return n, nil
		},
	}
}

// DecimalType returns the "decimal" handler for decimal.Decimal values.
func DecimalType() Handler {
	return &textHandler[decimal.Decimal]{
		name:   TypeDecimal,
		format: decimal.Decimal.String,
		parse:  decimal.NewFromString,
	}
}

// UUIDType returns the "uuid" handler for uuid.UUID values.
// Without it a UUID is a leaf and restores as a plain string.
func UUIDType() Handler {
	return &textHandler[uuid.UUID]{
		name:   TypeUUID,
		format: uuid.UUID.String,
		parse:  uuid.Parse,
	}
}

// DurationType returns the "duration" handler for time.Duration values,
// written in time.Duration.String form.
func DurationType() Handler {
	return &textHandler[time.Duration]{
		name:   TypeDuration,
		format: time.Duration.String,
		parse:  time.ParseDuration,
	}
}
