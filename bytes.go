package zenjson

import (
	"encoding/base64"
	"strings"
)

// TypeBytes is the name of the BytesType handler.
const TypeBytes = "bytes"

// BytesOption configures BytesType.
type BytesOption func(*bytesHandler)

// WithCompression compresses payloads before base64 encoding.
func WithCompression(c Compression) BytesOption {
	return func(h *bytesHandler) {
		h.compression = c
	}
}

// bytesHandler writes []byte inline as base64.
type bytesHandler struct {
	compression Compression
}

// BytesType returns the "bytes" handler, which writes []byte values inline
// as base64 strings. With WithCompression the payload is "<algo>:<base64>".
// Decoding reads the prefix, so any compression setting can restore any payload.
func BytesType(opts ...BytesOption) Handler {
	h := &bytesHandler{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *bytesHandler) Name() string { return TypeBytes }

func (h *bytesHandler) Check(v any, _ *CheckContext) bool {
	_, ok := v.([]byte)
	return ok
}

func (h *bytesHandler) Encode(v any, _ *EncodeContext) (any, error) {
	data, ok := v.([]byte)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeBytes, v, nil)
	}
	packed, err := compress(h.compression, data)
	if err != nil {
		return nil, newValueError(ErrInvalidPayload, TypeBytes, h.compression, err)
	}
	encoded := base64.StdEncoding.EncodeToString(packed)
	if h.compression == CompressNone {
		return encoded, nil
	}
	return string(h.compression) + ":" + encoded, nil
}

func (h *bytesHandler) Decode(payload any, _ *DecodeContext) (any, error) {
	s, ok := payload.(string)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeBytes, payload, nil)
	}

	// The base64 alphabet has no ':' so the prefix is unambiguous.
	c := CompressNone
	if algo, rest, found := strings.Cut(s, ":"); found {
		c = Compression(algo)
		if !IsValidCompression(c) {
			return nil, newValueError(ErrInvalidPayload, TypeBytes, s, nil)
		}
		s = rest
	}

	packed, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newValueError(ErrInvalidPayload, TypeBytes, payload, err)
	}
	data, err := decompress(c, packed)
	if err != nil {
		return nil, newValueError(ErrInvalidPayload, TypeBytes, payload, err)
	}
	return data, nil
}
