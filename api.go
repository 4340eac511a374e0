// Package zenjson extends JSON-style serialization to round-trip values plain
// JSON cannot represent: Undefined, NaN and the infinities, time.Time, arrays
// that look like tags, and any user-defined type described by a Handler.
//
// # Tagging
//
// A handled value is written as the two element array [name, payload].
// On restore, an array of length two whose first element is the name of an
// active handler is decoded by that handler; every other array is data. The
// built-in "array" handler claims literal arrays of that shape, so
//
//	["undefined", null]
//
// is written as
//
//	["array", ["undefined", null]]
//
// and comes back unchanged.
//
// # Basic Usage
//
//	tree, _ := zenjson.Sanitize(ctx, map[string]any{
//	    "at":    time.Date(2021, 7, 20, 0, 0, 0, 0, time.UTC),
//	    "ratio": math.NaN(),
//	    "gone":  zenjson.Undefined,
//	}, nil)
//	// {"at": ["date", "2021-07-20T00:00:00.000Z"], "ratio": ["number", "NaN"], "gone": ["undefined", null]}
//
//	value, _ := zenjson.Restore(ctx, tree, nil)
//
// # Custom Types
//
// Handlers are tried in order and the first whose Check matches wins. Names
// must be unique; NewSanitize and NewRestore reject duplicates before any value
// is processed. Use the same list on both sides:
//
//	types := append(zenjson.DefaultTypes(), zenjson.MapType(), zenjson.BigIntType())
//	sanitize, err := zenjson.NewSanitize(types...)
//	restore, err := zenjson.NewRestore(types...)
//
// Define builds a handler from three functions. Handlers recurse into nested
// values through EncodeContext.Encode and DecodeContext.Decode.
//
// # Typed Store
//
// A TypedMap carries handler state through a traversal. Keys are created with
// NewKey and compared by identity:
//
//	var filesKey = zenjson.NewKey[map[string][]byte]("files")
//
// Pass the same store to sanitize and restore to share state between them.
// BlobType uses this to move []byte payloads out of the tree:
//
//	store := zenjson.NewTypedMap()
//	tree, _ := sanitize(ctx, data, store)  // blobs now in zenjson.Blobs(store)
//	value, _ := restore(ctx, tree, store)  // same slices as in data
//
// # Values
//
// Any slice or array other than bytes is a sequence and is rebuilt as []any.
// Any map with a string key kind is a record and is rebuilt as map[string]any.
// Everything else is a leaf and passes through unless a handler claims it.
// Recursion depth equals nesting depth; cyclic values are not supported.
//
// # Processors
//
// A Processor pairs a handler list with a Codec:
//
//	proc, _ := zenjson.NewProcessor(json.New())
//	data, _ := proc.Marshal(ctx, value, nil)
//	value, _ = proc.Unmarshal(ctx, data, nil)
//
// Codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - cbor - CBOR encoding (application/cbor)
//
// # Extension Handlers
//
// Not part of DefaultTypes:
//
//   - MapType - maps with non-string keys
//   - BytesType - inline base64 bytes, optionally zstd, lz4 or snappy compressed
//   - BlobType - bytes extracted into the store by content id
//   - BigIntType, DecimalType, UUIDType, DurationType - string-encoded scalars
//   - StructType - a struct type as a record of its fields
//   - Sealed - encrypts another handler's payload (AES, ChaCha20, Age)
package zenjson
