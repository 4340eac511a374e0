package zenjson

import (
	"context"
	"time"
)

// SanitizeFunc converts a value into a JSON-safe tree.
// A nil store is replaced by a fresh TypedMap for the call.
type SanitizeFunc func(ctx context.Context, v any, store *TypedMap) (any, error)

// NewSanitize validates handlers and returns a SanitizeFunc bound to them.
// It fails with ErrDuplicatedTypeName before any value is processed.
func NewSanitize(handlers ...Handler) (SanitizeFunc, error) {
	types, err := NewTypes(handlers...)
	if err != nil {
		return nil, err
	}
	return types.Sanitize, nil
}

// Sanitize converts v into a JSON-safe tree using DefaultTypes.
func Sanitize(ctx context.Context, v any, store *TypedMap) (any, error) {
	return defaultTypes.Sanitize(ctx, v, store)
}

// sanitizer holds the state of one sanitize traversal.
type sanitizer struct {
	types    *Types
	checkCtx CheckContext
	encCtx   EncodeContext
	tagged   int
}

// Sanitize converts v into a JSON-safe tree.
//
// Each node is offered to the handlers in order; the first whose Check
// returns true encodes it and the node becomes [name, payload]. Unclaimed
// sequences and plain records are rebuilt with their children sanitized.
// Anything else is returned unchanged. v is never mutated.
//
// Handler errors are returned as is.
func (t *Types) Sanitize(ctx context.Context, v any, store *TypedMap) (any, error) {
	if store == nil {
		store = NewTypedMap()
	}

	start := time.Now()
	s := &sanitizer{types: t}
	s.checkCtx = CheckContext{Names: t.names, Store: store}
	s.encCtx = EncodeContext{Names: t.names, Store: store, encode: s.walk}

	out, err := s.walk(v)
	emitSanitizeComplete(ctx, len(t.handlers), s.tagged, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *sanitizer) walk(v any) (any, error) {
	for _, h := range s.types.handlers {
		if !h.Check(v, &s.checkCtx) {
			continue
		}
		payload, err := h.Encode(v, &s.encCtx)
		if err != nil {
			return nil, err
		}
		s.tagged++
		return []any{h.Name(), payload}, nil
	}

	if out, ok, err := walkContainer(v, s.walk); ok {
		return out, err
	}
	return v, nil
}
