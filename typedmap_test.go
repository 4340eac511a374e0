package zenjson

import (
	"errors"
	"testing"
)

func TestTypedMap_SetGet(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[int]("count")

	if _, ok := key.Get(m); ok {
		t.Error("Get() on empty store should report absent")
	}

	key.Set(m, 42)

	got, ok := key.Get(m)
	if !ok || got != 42 {
		t.Errorf("Get() = %v, %v, want 42, true", got, ok)
	}
	if !key.Has(m) || !m.Has(key) {
		t.Error("Has() should report true after Set")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestTypedMap_KeyIdentity(t *testing.T) {
	m := NewTypedMap()
	a := NewKey[string]("name")
	b := NewKey[string]("name")

	a.Set(m, "alice")

	if b.Has(m) {
		t.Error("keys with the same name should be distinct")
	}
	if got, _ := a.Get(m); got != "alice" {
		t.Errorf("Get() = %q, want alice", got)
	}
}

func TestTypedMap_GetOrDefault(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[string]("mode")

	if got := key.GetOrDefault(m, "fallback"); got != "fallback" {
		t.Errorf("GetOrDefault() = %q, want fallback", got)
	}

	key.Set(m, "set")
	if got := key.GetOrDefault(m, "fallback"); got != "set" {
		t.Errorf("GetOrDefault() = %q, want set", got)
	}
}

func TestTypedMap_GetOrFail(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[int]("count")

	_, err := key.GetOrFail(m)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("GetOrFail() error = %v, want ErrKeyNotFound", err)
	}

	var keyErr *KeyError
	if !errors.As(err, &keyErr) || keyErr.Key != "count" {
		t.Errorf("GetOrFail() error = %v, want *KeyError for count", err)
	}
}

func TestTypedMap_ZeroValueIsPresent(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[int]("count")

	key.Set(m, 0)

	got, err := key.GetOrFail(m)
	if err != nil {
		t.Fatalf("GetOrFail() error: %v", err)
	}
	if got != 0 {
		t.Errorf("GetOrFail() = %d, want 0", got)
	}
	if got := key.GetOrDefault(m, 7); got != 0 {
		t.Errorf("GetOrDefault() = %d, want stored 0", got)
	}
}

func TestTypedMap_Delete(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[int]("count")
	key.Set(m, 1)

	key.Delete(m)

	if key.Has(m) {
		t.Error("Has() should report false after Delete")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}

	// Deleting an absent key is a no-op
	key.Delete(m)
}

func TestTypedMap_Update(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[int]("count")

	inc := func(v int, ok bool) int {
		if !ok {
			return 1
		}
		return v + 1
	}

	key.Update(m, inc)
	key.Update(m, inc)

	if got, _ := key.Get(m); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestTypedMap_UpdateOrFail(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[int]("count")
	double := func(v int) int { return v * 2 }

	if err := key.UpdateOrFail(m, double); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("UpdateOrFail() error = %v, want ErrKeyNotFound", err)
	}
	if key.Has(m) {
		t.Error("failed UpdateOrFail should leave the store unchanged")
	}

	key.Set(m, 21)
	if err := key.UpdateOrFail(m, double); err != nil {
		t.Fatalf("UpdateOrFail() error: %v", err)
	}
	if got, _ := key.Get(m); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
}

func TestTypedMap_UpdateOrDefault(t *testing.T) {
	m := NewTypedMap()
	key := NewKey[[]string]("log")
	add := func(s string) func([]string) []string {
		return func(v []string) []string { return append(v, s) }
	}

	key.UpdateOrDefault(m, nil, add("a"))
	key.UpdateOrDefault(m, nil, add("b"))

	got, _ := key.Get(m)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Get() = %v, want [a b]", got)
	}
}

func TestTypedMap_NilStore(t *testing.T) {
	var m *TypedMap
	key := NewKey[int]("count")

	if key.Has(m) || m.Len() != 0 {
		t.Error("nil store should be empty")
	}
	if _, ok := key.Get(m); ok {
		t.Error("Get() on nil store should report absent")
	}
	if _, err := key.GetOrFail(m); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("GetOrFail() on nil store error = %v, want ErrKeyNotFound", err)
	}
	m.Delete(key)

	key.Set(m, 1)
	key.Update(m, func(v int, _ bool) int { return v + 1 })
	key.UpdateOrDefault(m, 0, func(v int) int { return v + 1 })
	if err := key.UpdateOrFail(m, func(v int) int { return v + 1 }); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("UpdateOrFail() on nil store error = %v, want ErrKeyNotFound", err)
	}
	if key.Has(m) {
		t.Error("writes to a nil store should be dropped")
	}
}

func TestKey_Name(t *testing.T) {
	key := NewKey[bool]("enabled")
	if key.Name() != "enabled" {
		t.Errorf("Name() = %q, want enabled", key.Name())
	}
}
