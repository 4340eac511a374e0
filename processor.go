package zenjson

import (
	"context"
	"time"
)

// Processor binds a Codec to a validated handler list.
// Marshal sanitizes then encodes; Unmarshal decodes then restores.
//
// Processors are immutable and safe for concurrent use. The stores passed
// to them are not: give each concurrent call its own store.
type Processor struct {
	codec Codec
	types *Types
}

// NewProcessor creates a Processor for codec.
// With no handlers the built-in DefaultTypes are used.
// It fails with ErrDuplicatedTypeName when handler names repeat.
func NewProcessor(codec Codec, handlers ...Handler) (*Processor, error) {
	types := defaultTypes
	if len(handlers) > 0 {
		t, err := NewTypes(handlers...)
		if err != nil {
			return nil, err
		}
		types = t
	}

	p := &Processor{
		codec: codec,
		types: types,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), len(types.handlers))
	return p, nil
}

// ContentType returns the codec's MIME type.
func (p *Processor) ContentType() string {
	return p.codec.ContentType()
}

// Types returns the handler set used by the processor.
func (p *Processor) Types() *Types {
	return p.types
}

// Marshal sanitizes v and encodes the resulting tree.
// Handler errors are returned as is; codec errors are wrapped in *CodecError.
func (p *Processor) Marshal(ctx context.Context, v any, store *TypedMap) ([]byte, error) {
	contentType := p.codec.ContentType()
	start := time.Now()
	emitMarshalStart(ctx, contentType)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, contentType, len(retData), time.Since(start), retErr)
	}()

	tree, err := p.types.Sanitize(ctx, v, store)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	retData, err = p.codec.Marshal(tree)
	if err != nil {
		retErr = newCodecError(ErrMarshal, contentType, err)
		return nil, retErr
	}
	return retData, nil
}

// Unmarshal decodes data and restores the resulting tree.
// Pass the store used by Marshal when handlers keep state in it.
func (p *Processor) Unmarshal(ctx context.Context, data []byte, store *TypedMap) (any, error) {
	contentType := p.codec.ContentType()
	start := time.Now()
	emitUnmarshalStart(ctx, contentType, len(data))

	var retErr error
	defer func() {
		emitUnmarshalComplete(ctx, contentType, len(data), time.Since(start), retErr)
	}()

	var tree any
	if err := p.codec.Unmarshal(data, &tree); err != nil {
		retErr = newCodecError(ErrUnmarshal, contentType, err)
		return nil, retErr
	}

	out, err := p.types.Restore(ctx, tree, store)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return out, nil
}
