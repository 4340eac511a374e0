package zenjson

import (
	"reflect"
)

// sequenceOf reports whether v is a sequence: any slice or array except
// byte slices and byte arrays, which JSON codecs treat as scalars.
func sequenceOf(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// recordOf reports whether v is a plain record: a map keyed by a string kind.
func recordOf(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	return rv, true
}

// stringOf returns the string held by v, including named string types.
func stringOf(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case nil:
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// splitPair returns the tag and payload of a two element sequence whose
// first element is a string. It does not consult a name set.
func splitPair(v any) (string, any, bool) {
	if s, ok := v.([]any); ok {
		if len(s) != 2 {
			return "", nil, false
		}
		name, ok := stringOf(s[0])
		return name, s[1], ok
	}
	rv, ok := sequenceOf(v)
	if !ok || rv.Len() != 2 {
		return "", nil, false
	}
	name, ok := stringOf(rv.Index(0).Interface())
	if !ok {
		return "", nil, false
	}
	return name, rv.Index(1).Interface(), true
}

// IsTaggedPair reports whether v is the wire form of a handled value:
// a sequence of exactly two elements whose first element is a string
// present in names.
func IsTaggedPair(v any, names NameSet) bool {
	name, _, ok := splitPair(v)
	return ok && names.Has(name)
}

// mapSequence applies fn to every element of a sequence, returning a new []any.
// A nil slice maps to a nil []any.
func mapSequence(v any, fn func(any) (any, error)) (any, bool, error) {
	if s, ok := v.([]any); ok {
		if s == nil {
			return []any(nil), true, nil
		}
		out := make([]any, len(s))
		for i, elem := range s {
			mapped, err := fn(elem)
			if err != nil {
				return nil, true, err
			}
			out[i] = mapped
		}
		return out, true, nil
	}

	rv, ok := sequenceOf(v)
	if !ok {
		return nil, false, nil
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return []any(nil), true, nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		mapped, err := fn(rv.Index(i).Interface())
		if err != nil {
			return nil, true, err
		}
		out[i] = mapped
	}
	return out, true, nil
}

// mapRecord applies fn to every value of a plain record, returning a new
// map[string]any with the same keys. A nil map maps to a nil map[string]any.
func mapRecord(v any, fn func(any) (any, error)) (any, bool, error) {
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return map[string]any(nil), true, nil
		}
		out := make(map[string]any, len(m))
		for k, elem := range m {
			mapped, err := fn(elem)
			if err != nil {
				return nil, true, err
			}
			out[k] = mapped
		}
		return out, true, nil
	}

	rv, ok := recordOf(v)
	if !ok {
		return nil, false, nil
	}
	if rv.IsNil() {
		return map[string]any(nil), true, nil
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		mapped, err := fn(iter.Value().Interface())
		if err != nil {
			return nil, true, err
		}
		out[iter.Key().String()] = mapped
	}
	return out, true, nil
}

// walkContainer rebuilds v with fn applied to each child when v is a
// sequence or a plain record. ok is false for leaves.
func walkContainer(v any, fn func(any) (any, error)) (any, bool, error) {
	if out, ok, err := mapSequence(v, fn); ok {
		return out, true, err
	}
	return mapRecord(v, fn)
}
