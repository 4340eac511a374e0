package zenjson

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for zenjson events.
var (
	SignalSanitizeComplete  = capitan.NewSignal("zenjson.sanitize.complete", "Sanitize traversal finished")
	SignalRestoreComplete   = capitan.NewSignal("zenjson.restore.complete", "Restore traversal finished")
	SignalProcessorCreated  = capitan.NewSignal("zenjson.processor.created", "Processor instantiated")
	SignalMarshalStart      = capitan.NewSignal("zenjson.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete   = capitan.NewSignal("zenjson.marshal.complete", "Marshal operation finished")
	SignalUnmarshalStart    = capitan.NewSignal("zenjson.unmarshal.start", "Unmarshal operation beginning")
	SignalUnmarshalComplete = capitan.NewSignal("zenjson.unmarshal.complete", "Unmarshal operation finished")
)

// Keys for typed event data.
var (
	KeyContentType  = capitan.NewStringKey("content_type")
	KeySize         = capitan.NewIntKey("size")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyErr          = capitan.NewErrorKey("error")
	KeyHandlerCount = capitan.NewIntKey("handler_count")
	KeyTaggedCount  = capitan.NewIntKey("tagged_count")
)

// emitSanitizeComplete emits an event when a sanitize traversal finishes.
func emitSanitizeComplete(ctx context.Context, handlers, tagged int, duration time.Duration, err error) {
	fields := traversalFields(handlers, tagged, duration)
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalSanitizeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSanitizeComplete, fields...)
	}
}

// emitRestoreComplete emits an event when a restore traversal finishes.
func emitRestoreComplete(ctx context.Context, handlers, tagged int, duration time.Duration, err error) {
	fields := traversalFields(handlers, tagged, duration)
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalRestoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRestoreComplete, fields...)
	}
}

func traversalFields(handlers, tagged int, duration time.Duration) []capitan.Field {
	return []capitan.Field{
		KeyHandlerCount.Field(handlers),
		KeyTaggedCount.Field(tagged),
		KeyDuration.Field(duration),
	}
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType string, handlers int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyHandlerCount.Field(handlers),
	)
}

// emitMarshalStart emits an event when marshal begins.
func emitMarshalStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalMarshalStart, KeyContentType.Field(contentType))
}

// emitMarshalComplete emits an event when marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := codecFields(contentType, size, duration)
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}

// emitUnmarshalStart emits an event when unmarshal begins.
func emitUnmarshalStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitUnmarshalComplete emits an event when unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := codecFields(contentType, size, duration)
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, fields...)
	}
}

func codecFields(contentType string, size int, duration time.Duration) []capitan.Field {
	return []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
}
