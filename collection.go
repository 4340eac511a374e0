package zenjson

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// TypeMap is the name of the MapType handler.
const TypeMap = "map"

// mapHandler writes maps whose keys are not strings as entry lists.
type mapHandler struct{}

// MapType returns the "map" handler. It claims maps whose key kind is not
// string, which JSON objects cannot carry, and writes them as
// [[key, value], ...] with keys and values sanitized. Entries are sorted by
// the formatted key, then by key type, so output is stable. Restored maps are
// map[any]any.
func MapType() Handler {
	return mapHandler{}
}

func (mapHandler) Name() string { return TypeMap }

func (mapHandler) Check(v any, _ *CheckContext) bool {
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	return rt.Kind() == reflect.Map && rt.Key().Kind() != reflect.String
}

func (mapHandler) Encode(v any, ctx *EncodeContext) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, newValueError(ErrInvalidPayload, TypeMap, v, nil)
	}

	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return compareKeys(keys[i].Interface(), keys[j].Interface()) < 0
	})

	entries := make([]any, 0, len(keys))
	for _, k := range keys {
		key, err := ctx.Encode(k.Interface())
		if err != nil {
			return nil, err
		}
		val, err := ctx.Encode(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, []any{key, val})
	}
	return entries, nil
}

func compareKeys(a, b any) int {
	if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
		return c
	}
	return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
}

func (mapHandler) Decode(payload any, ctx *DecodeContext) (any, error) {
	entries, ok := sequenceOf(payload)
	if !ok {
		return nil, newValueError(ErrInvalidPayload, TypeMap, payload, nil)
	}

	out := make(map[any]any, entries.Len())
	for i := 0; i < entries.Len(); i++ {
		entry, ok := sequenceOf(entries.Index(i).Interface())
		if !ok || entry.Len() != 2 {
			return nil, newValueError(ErrInvalidPayload, TypeMap, payload, nil)
		}
		key, err := ctx.Decode(entry.Index(0).Interface())
		if err != nil {
			return nil, err
		}
		if key != nil && !reflect.TypeOf(key).Comparable() {
			return nil, newValueError(ErrInvalidPayload, TypeMap, key, nil)
		}
		val, err := ctx.Decode(entry.Index(1).Interface())
		if err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}
