package zenjson

import (
	"encoding/base64"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// sealedHandler encrypts another handler's payload.
type sealedHandler struct {
	name  string
	inner Handler
	enc   Encryptor
}

// Sealed wraps inner so its payloads are encrypted on the wire.
//
// The handler claims what inner claims. The inner payload is JSON encoded,
// encrypted with enc and written as base64 under name. Decoding reverses the
// steps and hands the payload to inner.Decode. name must differ from
// inner.Name() when both appear in one list.
func Sealed(name string, inner Handler, enc Encryptor) Handler {
	return &sealedHandler{name: name, inner: inner, enc: enc}
}

func (h *sealedHandler) Name() string { return h.name }

func (h *sealedHandler) Check(v any, ctx *CheckContext) bool {
	return h.inner.Check(v, ctx)
}

func (h *sealedHandler) Encode(v any, ctx *EncodeContext) (any, error) {
	payload, err := h.inner.Encode(v, ctx)
	if err != nil {
		return nil, err
	}
	plaintext, err := jsonAPI.Marshal(payload)
	if err != nil {
		return nil, newValueError(ErrInvalidPayload, h.name, payload, err)
	}
	ciphertext, err := h.enc.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (h *sealedHandler) Decode(payload any, ctx *DecodeContext) (any, error) {
	s, ok := payload.(string)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, h.name, payload, nil)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newValueError(ErrInvalidPayload, h.name, s, err)
	}
	plaintext, err := h.enc.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}
	var inner any
	if err := jsonAPI.Unmarshal(plaintext, &inner); err != nil {
		return nil, newValueError(ErrInvalidPayload, h.name, s, err)
	}
	return h.inner.Decode(inner, ctx)
}
