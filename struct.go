package zenjson

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/zoobzio/sentinel"
)

// structField is one encoded field of a struct handler.
type structField struct {
	index []int
	key   string
}

// structHandler writes a struct type as a record of its exported fields.
type structHandler[T any] struct {
	name     string
	typ      reflect.Type
	typeName string
	fields   []structField
}

// StructType returns a handler for struct type T registered under name.
//
// Exported fields are written as a record keyed by their json tag name (or
// the Go field name), each value sanitized so nested dates, special numbers
// and other handled types survive. Fields tagged json:"-" are skipped.
// Decoding restores each value and assigns it with weakly typed conversion,
// so numbers read back from JSON land in integer fields.
//
// T must be a struct type.
func StructType[T any](name string) Handler {
	meta := sentinel.Scan[T]()
	typ := reflect.TypeFor[T]()

	h := &structHandler[T]{
		name:     name,
		typ:      typ,
		typeName: meta.TypeName,
	}
	for _, field := range meta.Fields {
		sf := typ.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}
		key := jsonFieldName(sf)
		if key == "-" {
			continue
		}
		h.fields = append(h.fields, structField{index: field.Index, key: key})
	}
	return h
}

// jsonFieldName returns the record key for a struct field.
func jsonFieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "-"
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func (h *structHandler[T]) Name() string { return h.name }

func (h *structHandler[T]) Check(v any, _ *CheckContext) bool {
	return v != nil && reflect.TypeOf(v) == h.typ
}

func (h *structHandler[T]) Encode(v any, ctx *EncodeContext) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Type() != h.typ {
		return nil, newValueError(ErrInvalidPayload, h.name, h.typeName, nil)
	}

	record := make(map[string]any, len(h.fields))
	for _, f := range h.fields {
		encoded, err := ctx.Encode(rv.FieldByIndex(f.index).Interface())
		if err != nil {
			return nil, err
		}
		record[f.key] = encoded
	}
	return record, nil
}

func (h *structHandler[T]) Decode(payload any, ctx *DecodeContext) (any, error) {
	record, ok := payload.(map[string]any)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, h.name, payload, nil)
	}

	restored := make(map[string]any, len(record))
	for k, v := range record {
		r, err := ctx.Decode(v)
		if err != nil {
			return nil, err
		}
		restored[k] = r
	}

	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(restored); err != nil {
		return nil, newValueError(ErrInvalidPayload, h.name, h.typeName, err)
	}
	return out, nil
}
