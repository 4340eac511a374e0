// Package json provides a JSON codec implementation.
package json

import (
	"github.com/dldc-packages/zenjson"
	jsoniter "github.com/json-iterator/go"
)

// api mirrors encoding/json: objects decode to map[string]any, arrays to
// []any and numbers to float64.
var api = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonCodec implements zenjson.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() zenjson.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
