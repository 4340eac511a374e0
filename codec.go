package zenjson

// Codec provides content-type aware marshaling of sanitized trees.
//
// Unmarshal is always called with a pointer to an empty interface. Codecs
// should decode sequences as []any and string-keyed maps as map[string]any
// so that tagged pairs are recognised on restore.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
