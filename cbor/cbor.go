// Package cbor provides a CBOR codec implementation.
package cbor

import (
	"reflect"

	"github.com/dldc-packages/zenjson"
	"github.com/fxamacker/cbor/v2"
)

// decMode decodes maps as map[string]any so restored records match the
// other codecs. Maps with non-string keys fail to decode; MapType writes
// those as entry lists instead.
var decMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// encMode sorts map keys so equal trees encode to equal bytes.
var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{
		Sort: cbor.SortCanonical,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// cborCodec implements zenjson.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() zenjson.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *cborCodec) Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
