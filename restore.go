package zenjson

import (
	"context"
	"time"
)

// RestoreFunc converts a sanitized tree back into the original value.
// A nil store is replaced by a fresh TypedMap for the call.
type RestoreFunc func(ctx context.Context, v any, store *TypedMap) (any, error)

// NewRestore validates handlers and returns a RestoreFunc bound to them.
// Use the same handler list as the paired NewSanitize.
func NewRestore(handlers ...Handler) (RestoreFunc, error) {
	types, err := NewTypes(handlers...)
	if err != nil {
		return nil, err
	}
	return types.Restore, nil
}

// Restore converts a tree produced by Sanitize back into the original value.
func Restore(ctx context.Context, v any, store *TypedMap) (any, error) {
	return defaultTypes.Restore(ctx, v, store)
}

// restorer holds the state of one restore traversal.
type restorer struct {
	types  *Types
	decCtx DecodeContext
	tagged int
}

// Restore converts a sanitized tree back into the original value.
//
// A node that is a tagged pair, a two element sequence whose first element
// is an active handler name, is passed to that handler's Decode. A string
// that is not an active name makes an ordinary array. Other sequences and
// plain records are rebuilt with their children restored.
//
// Pass the same store that was used to sanitize when handlers keep state in it.
func (t *Types) Restore(ctx context.Context, v any, store *TypedMap) (any, error) {
	if store == nil {
		store = NewTypedMap()
	}

	start := time.Now()
	r := &restorer{types: t}
	r.decCtx = DecodeContext{Names: t.names, Store: store, decode: r.walk}

	out, err := r.walk(v)
	emitRestoreComplete(ctx, len(t.handlers), r.tagged, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restorer) walk(v any) (any, error) {
	if name, payload, ok := splitPair(v); ok && r.types.names.Has(name) {
		h, found := r.types.byName[name]
		if !found {
			return nil, newTypeError(ErrTypeNotFound, name)
		}
		r.tagged++
		return h.Decode(payload, &r.decCtx)
	}

	if out, ok, err := walkContainer(v, r.walk); ok {
		return out, err
	}
	return v, nil
}
